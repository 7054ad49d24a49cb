// Package network provides pre-configured HTTP clients for provider communication.
//
// FingerprintClient performs requests with uTLS fingerprint emulation,
// mimicking Chrome's Client Hello signature. Danbooru-family boards sit
// behind anti-bot challenges (Cloudflare, DDoS-Guard) that reject standard
// Go HTTP clients; presenting a browser fingerprint at the TLS layer keeps
// the adapters usable without a headless browser.
//
// Protocol negotiation (ALPN): an HTTP/2 connection is attempted first,
// falling back transparently to a forced HTTP/1.1 transport when the
// handshake fails or the server only speaks h1.
package network

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"

	"github.com/boorusan-cli/boorusan/constant"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
	})
	return h2Transport
}

var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, []string{"http/1.1"})
	},
}

// FingerprintClient returns an HTTP client that presents a Chrome 120 TLS
// fingerprint. The returned client shares pooled transports; callers must
// not mutate it.
func FingerprintClient() *http.Client {
	return &http.Client{
		Timeout:   Timeout,
		Transport: getH2Transport(),
	}
}

// FingerprintFallbackClient returns the HTTP/1.1-only variant used when the
// h2 handshake is rejected.
func FingerprintFallbackClient() *http.Client {
	return &http.Client{
		Timeout:   Timeout,
		Transport: h1Transport,
	}
}

// BrowserHeaders applies the default header set expected to accompany the
// spoofed fingerprint.
func BrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint.
// A nil protos slice advertises both h2 and http/1.1 (natural Chrome behavior).
func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: Timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, err
	}

	return tlsConn, nil
}
