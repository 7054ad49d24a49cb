// Package cookies decodes browser cookie export files into HTTP header values.
//
// Two formats are accepted: structured JSON exports (an array of objects with
// domain/name/value fields) and the Netscape tab-delimited cookie-jar text
// format. The format is detected from the leading character of the content.
package cookies

import (
	"encoding/json"
	"strings"

	"github.com/boorusan-cli/boorusan/filesystem"
	"github.com/boorusan-cli/boorusan/log"
)

// jsonCookie is one entry of a structured JSON cookie export.
type jsonCookie struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// HeaderFromFile reads a cookie export file and builds a Cookie header value
// for the given domain. A missing or unreadable file yields the empty string.
func HeaderFromFile(path, domain string) string {
	if path == "" {
		return ""
	}

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		log.Warnf("cookies: read %s: %v", path, err)
		return ""
	}

	return Header(string(content), domain)
}

// Header parses cookie file content and returns a "name=value; name=value"
// header string containing only cookies whose domain matches the target.
// Malformed or empty input yields the empty string, never an error: the
// caller treats an empty header as "not authenticated".
func Header(content, domain string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return parseJSON(trimmed, domain)
	}
	return parseNetscape(content, domain)
}

func parseJSON(content, domain string) string {
	var entries []jsonCookie
	if err := json.Unmarshal([]byte(content), &entries); err != nil {
		log.Warnf("cookies: malformed JSON export: %v", err)
		return ""
	}

	var pairs []string
	for _, c := range entries {
		if !strings.Contains(c.Domain, domain) {
			continue
		}
		if c.Name == "" || c.Value == "" {
			continue
		}
		pairs = append(pairs, c.Name+"="+c.Value)
	}

	return strings.Join(pairs, "; ")
}

func parseNetscape(content, domain string) string {
	var pairs []string

	for _, line := range strings.FieldsFunc(content, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		// domain, include-subdomains, path, secure, expiry, name, value
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}

		if !strings.Contains(fields[0], domain) {
			continue
		}
		name, value := fields[5], fields[6]
		if name == "" || value == "" {
			continue
		}
		pairs = append(pairs, name+"="+value)
	}

	return strings.Join(pairs, "; ")
}
