// Package save downloads post media to the local downloads directory.
package save

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/constant"
	"github.com/boorusan-cli/boorusan/filesystem"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/media"
	"github.com/boorusan-cli/boorusan/network"
	"github.com/boorusan-cli/boorusan/util"
	"github.com/boorusan-cli/boorusan/where"
)

// Dir resolves the target directory for saved media, preferring the
// configured override over the platform default.
func Dir() string {
	if dir := viper.GetString(key.DownloadsDir); dir != "" {
		return dir
	}
	return where.Downloads()
}

// Filename derives a stable on-disk name for a post's media.
func Filename(providerName string, post *booru.Post) string {
	stem := fmt.Sprintf("%s_%s", providerName, post.ID)
	if post.MD5 != "" {
		stem += "_" + post.MD5
	}
	return util.SanitizeFilename(stem) + media.Extension(post)
}

// Post downloads the best available media of a post and returns the path it
// was written to.
func Post(providerName string, post *booru.Post) (string, error) {
	assetURL := media.BestURL(post, media.Unknown)
	if assetURL == "" {
		return "", fmt.Errorf("post #%s has no downloadable media", post.ID)
	}

	path := filepath.Join(Dir(), Filename(providerName, post))
	log.Debugf("save: downloading %s to %s", assetURL, path)

	req, err := http.NewRequest(http.MethodGet, assetURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download media: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download media: status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("download media: %w", err)
	}

	if err := filesystem.API().WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write media: %w", err)
	}

	return path, nil
}
