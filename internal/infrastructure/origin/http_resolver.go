// Package origin resolves the network origin recorded on a signature.
package origin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"console_comercial/internal/usecase/interfaces"
)

var ErrEmptyOrigin = errors.New("origin lookup returned no ip")

// HTTPResolver trusts a well-formed client hint and otherwise asks a lookup
// service answering {"ip": "..."}.
type HTTPResolver struct {
	url    string
	client *http.Client
}

var _ interfaces.IOriginResolver = (*HTTPResolver)(nil)

func NewHTTPResolver(url string, client *http.Client) *HTTPResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPResolver{url: strings.TrimSpace(url), client: client}
}

func (r *HTTPResolver) Resolve(ctx context.Context, hint string) (string, error) {
	if ip := parseHint(hint); ip != "" {
		return ip, nil
	}
	if r.url == "" {
		return "", ErrEmptyOrigin
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("origin lookup: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil {
		return "", fmt.Errorf("origin lookup: %w", err)
	}
	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", ErrEmptyOrigin
	}
	return ip, nil
}

// parseHint accepts "ip", "ip:port" or the first entry of an X-Forwarded-For
// list. Loopback and unspecified addresses are ignored.
func parseHint(hint string) string {
	hint = strings.TrimSpace(hint)
	if i := strings.IndexByte(hint, ','); i >= 0 {
		hint = strings.TrimSpace(hint[:i])
	}
	if hint == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(hint); err == nil {
		hint = host
	}
	ip := net.ParseIP(hint)
	if ip == nil || ip.IsLoopback() || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
