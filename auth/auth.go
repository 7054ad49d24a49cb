// Package auth provides key-based authentication helpers and credential persistence.
package auth

import (
	"net/url"
	"strings"
)

// SignURL appends login and api_key query parameters to a request URL,
// using '&' when the URL already carries a query string and '?' otherwise.
// Empty credentials return the URL unchanged (anonymous access).
func SignURL(rawURL, login, apiKey string) string {
	if login == "" || apiKey == "" {
		return rawURL
	}

	separator := "?"
	if strings.Contains(rawURL, "?") {
		separator = "&"
	}

	return rawURL + separator +
		"login=" + url.QueryEscape(login) +
		"&api_key=" + url.QueryEscape(apiKey)
}
