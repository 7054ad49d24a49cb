package rule34

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/log"
)

type jsonPost struct {
	ID         json.Number `json:"id"`
	FileURL    string      `json:"file_url"`
	SampleURL  string      `json:"sample_url"`
	PreviewURL string      `json:"preview_url"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Tags       string      `json:"tags"`
	Score      int         `json:"score"`
	CreatedAt  string      `json:"created_at"`
	MD5        string      `json:"hash"`
	Rating     string      `json:"rating"`
	Source     string      `json:"source"`
}

// parsePostsJSON decodes a dapi json=1 posts response. Records that fail to
// decode individually are skipped rather than failing the whole page.
func parsePostsJSON(body []byte) ([]*booru.Post, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse posts json: %w", err)
	}

	posts := make([]*booru.Post, 0, len(entries))
	for _, entry := range entries {
		var p jsonPost
		if err := json.Unmarshal(entry, &p); err != nil {
			log.Warnf("%s: skipping malformed post record: %s", Name, err)
			continue
		}

		posts = append(posts, &booru.Post{
			ID:         p.ID.String(),
			FileURL:    p.FileURL,
			SampleURL:  p.SampleURL,
			PreviewURL: p.PreviewURL,
			Width:      p.Width,
			Height:     p.Height,
			Tags:       p.Tags,
			Score:      p.Score,
			CreatedAt:  p.CreatedAt,
			MD5:        p.MD5,
			Rating:     parseRating(p.Rating),
			Source:     p.Source,
		})
	}

	return posts, nil
}

type xmlPosts struct {
	XMLName xml.Name  `xml:"posts"`
	Posts   []xmlPost `xml:"post"`
}

type xmlPost struct {
	ID         string `xml:"id,attr"`
	FileURL    string `xml:"file_url,attr"`
	SampleURL  string `xml:"sample_url,attr"`
	PreviewURL string `xml:"preview_url,attr"`
	Width      string `xml:"width,attr"`
	Height     string `xml:"height,attr"`
	Tags       string `xml:"tags,attr"`
	Score      string `xml:"score,attr"`
	CreatedAt  string `xml:"created_at,attr"`
	MD5        string `xml:"md5,attr"`
	Rating     string `xml:"rating,attr"`
	Source     string `xml:"source,attr"`
}

func parsePostsXML(body []byte) ([]*booru.Post, error) {
	var doc xmlPosts
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse posts xml: %w", err)
	}

	posts := make([]*booru.Post, 0, len(doc.Posts))
	for _, p := range doc.Posts {
		posts = append(posts, &booru.Post{
			ID:         p.ID,
			FileURL:    p.FileURL,
			SampleURL:  p.SampleURL,
			PreviewURL: p.PreviewURL,
			Width:      atoi(p.Width),
			Height:     atoi(p.Height),
			Tags:       p.Tags,
			Score:      atoi(p.Score),
			CreatedAt:  p.CreatedAt,
			MD5:        p.MD5,
			Rating:     parseRating(p.Rating),
			Source:     p.Source,
		})
	}

	return posts, nil
}

type xmlTags struct {
	XMLName xml.Name `xml:"tags"`
	Tags    []xmlTag `xml:"tag"`
}

type xmlTag struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	Count     string `xml:"count,attr"`
	Type      string `xml:"type,attr"`
	Ambiguous string `xml:"ambiguous,attr"`
}

func parseTagsXML(body []byte) ([]*booru.Tag, error) {
	var doc xmlTags
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse tags xml: %w", err)
	}

	tags := make([]*booru.Tag, 0, len(doc.Tags))
	for _, t := range doc.Tags {
		tags = append(tags, &booru.Tag{
			ID:        t.ID,
			Name:      t.Name,
			Count:     atoi(t.Count),
			Category:  booru.ParseCategory(atoi(t.Type)),
			Ambiguous: t.Ambiguous == "true",
		})
	}

	return tags, nil
}

type xmlComments struct {
	XMLName  xml.Name     `xml:"comments"`
	Comments []xmlComment `xml:"comment"`
}

type xmlComment struct {
	ID        string `xml:"id,attr"`
	PostID    string `xml:"post_id,attr"`
	Creator   string `xml:"creator,attr"`
	Body      string `xml:"body,attr"`
	CreatedAt string `xml:"created_at,attr"`
}

func parseCommentsXML(body []byte) ([]*booru.Comment, error) {
	var doc xmlComments
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse comments xml: %w", err)
	}

	comments := make([]*booru.Comment, 0, len(doc.Comments))
	for _, c := range doc.Comments {
		creator := c.Creator
		if creator == "" {
			creator = booru.AnonymousCreator
		}

		comments = append(comments, &booru.Comment{
			ID:        c.ID,
			PostID:    c.PostID,
			Creator:   creator,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}

	return comments, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// parseRating handles the dapi's full-word rating values ("explicit",
// "questionable", "safe") by reducing them to their letter code first.
// "safe" predates the general/sensitive split and is the General-tier
// label, so it must not collapse to the "s" code.
func parseRating(s string) booru.Rating {
	if s == "safe" {
		return booru.RatingGeneral
	}
	if len(s) > 1 {
		s = s[:1]
	}
	return booru.ParseRating(s)
}
