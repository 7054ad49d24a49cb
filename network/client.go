// Package network provides pre-configured HTTP clients for provider communication.
package network

import (
	"net/http"
	"time"
)

// Timeout is the uniform per-request ceiling applied to every provider call.
// Exceeding it is handled identically to a connection failure.
const Timeout = 30 * time.Second

// Client is the shared HTTP client used across the application for efficient resource utilization.
var Client = &http.Client{
	Timeout:   Timeout,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
