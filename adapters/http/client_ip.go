package uuidhttp

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIPFunc picks the address a request is rate limited under.
// An empty result means the client is unknown and the request is not limited.
type ClientIPFunc func(r *http.Request) string

// DefaultClientIP limits on RemoteAddr when it is a public address. Private, loopback and
// link-local peers are usually a proxy or ingress and yield "".
func DefaultClientIP() ClientIPFunc {
	return func(r *http.Request) string {
		a, ok := peerAddr(r)
		if !ok || !isPublicAddr(a) {
			return ""
		}
		return a.String()
	}
}

// ClientIPFromForwardedHeaders honours CF-Connecting-IP, then the left-most
// X-Forwarded-For entry, but only when the immediate peer is inside trustedProxies.
// Otherwise it behaves like DefaultClientIP.
func ClientIPFromForwardedHeaders(trustedProxies []netip.Prefix) ClientIPFunc {
	fallback := DefaultClientIP()
	return func(r *http.Request) string {
		peer, ok := peerAddr(r)
		if !ok {
			return ""
		}
		if !trusted(peer, trustedProxies) {
			return fallback(r)
		}
		if a, ok := headerAddr(r.Header.Get("CF-Connecting-IP")); ok {
			return a.String()
		}
		xff := r.Header.Get("X-Forwarded-For")
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		if a, ok := headerAddr(xff); ok {
			return a.String()
		}
		return fallback(r)
	}
}

func trusted(peer netip.Addr, prefixes []netip.Prefix) bool {
	for _, p := range prefixes {
		if p.Contains(peer) {
			return true
		}
	}
	return false
}

func headerAddr(v string) (netip.Addr, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return netip.Addr{}, false
	}
	a, err := netip.ParseAddr(v)
	if err != nil || !isPublicAddr(a) {
		return netip.Addr{}, false
	}
	return a, true
}

func peerAddr(r *http.Request) (netip.Addr, bool) {
	if r == nil || r.RemoteAddr == "" {
		return netip.Addr{}, false
	}
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil && h != "" {
		host = h
	}
	a, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return a.Unmap(), true
}

func isPublicAddr(a netip.Addr) bool {
	if !a.IsValid() {
		return false
	}
	if a.IsLoopback() || a.IsPrivate() || a.IsLinkLocalMulticast() || a.IsLinkLocalUnicast() {
		return false
	}
	return !a.IsMulticast() && !a.IsUnspecified()
}
