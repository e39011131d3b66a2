package testutil

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

// FreeAddr reserves a loopback port and releases it for the caller to bind.
func FreeAddr(t testing.TB) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := listener.Addr().String()
	if err := listener.Close(); err != nil {
		t.Fatalf("release port: %v", err)
	}
	return addr
}

// TryGet issues a GET request and returns the status and body. Transport
// errors are returned rather than failing the test so callers can poll.
func TryGet(t testing.TB, url string) (int, []byte, error) {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
