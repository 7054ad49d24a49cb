package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/constant"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/util"
)

// Notify prints a terminal alert when a newer stable release is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/boorusan-cli/boorusan/releases/tag/v"+version),
	)
}
