// Package proxy picks the proxy an outbound request should be routed
// through, following the HTTP_PROXY, HTTPS_PROXY and NO_PROXY conventions.
//
// [Resolve] is pure: the environment is passed in as an [Env], which
// [FromEnvironment] reads from the process at the boundary.
package proxy

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Env holds the proxy configuration. Empty fields mean unset.
type Env struct {
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// FromEnvironment reads the proxy variables, preferring the upper case
// form of each.
func FromEnvironment() Env {
	return Env{
		HTTPProxy:  getenv("HTTP_PROXY", "http_proxy"),
		HTTPSProxy: getenv("HTTPS_PROXY", "https_proxy"),
		NoProxy:    getenv("NO_PROXY", "no_proxy"),
	}
}

func getenv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// Resolve returns the proxy URI for target, or "" when the target must be
// reached directly.
func Resolve(target string, env Env) string {
	if env.NoProxy == "*" {
		return ""
	}

	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return ""
	}

	if excluded(u, env.NoProxy) {
		return ""
	}

	switch u.Scheme {
	case "http":
		return env.HTTPProxy
	case "https":
		if env.HTTPSProxy != "" {
			return env.HTTPSProxy
		}
		return env.HTTPProxy
	default:
		return ""
	}
}

// excluded reports whether u falls in one of the comma separated
// host[:port] zones of noProxy. Hosts are dot-padded before suffix
// matching so that "example.com" doesn't match "notexample.com".
func excluded(u *url.URL, noProxy string) bool {
	if noProxy == "" {
		return false
	}

	host := "." + strings.ToLower(u.Hostname())
	port := u.Port()
	if port == "" {
		port = defaultPort(u.Scheme)
	}

	for _, zone := range strings.Split(noProxy, ",") {
		zone = strings.TrimSpace(zone)
		if zone == "" {
			continue
		}

		zoneHost, zonePort := splitZone(zone)
		zoneHost = strings.ToLower(zoneHost)
		if !strings.HasPrefix(zoneHost, ".") {
			zoneHost = "." + zoneHost
		}

		if !strings.HasSuffix(host, zoneHost) {
			continue
		}
		if zonePort != "" && zonePort != port {
			continue
		}

		return true
	}

	return false
}

func splitZone(zone string) (string, string) {
	if h, p, err := net.SplitHostPort(zone); err == nil {
		return h, p
	}
	return zone, ""
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

// Func adapts Resolve to [http.Transport.Proxy]. A proxy given without a
// scheme, such as "proxy.corp:3128", is treated as http.
func Func(env Env) func(*http.Request) (*url.URL, error) {
	return func(r *http.Request) (*url.URL, error) {
		p := Resolve(r.URL.String(), env)
		if p == "" {
			return nil, nil
		}
		return parseProxy(p)
	}
}

func parseProxy(p string) (*url.URL, error) {
	u, err := url.Parse(p)
	if err != nil || !knownScheme(u.Scheme) || u.Host == "" {
		if withScheme, err2 := url.Parse("http://" + p); err2 == nil && withScheme.Host != "" {
			return withScheme, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("invalid proxy address %q: %w", p, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid proxy address %q: missing host", p)
	}

	return u, nil
}

func knownScheme(scheme string) bool {
	switch scheme {
	case "http", "https", "socks5", "socks5h":
		return true
	default:
		return false
	}
}
