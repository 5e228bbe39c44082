package httpclient

import (
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"
)

// NewCookieJar returns an in-memory cookie jar that respects public suffix
// boundaries. Pass it with WithCookies to carry cookies across calls.
func NewCookieJar() http.CookieJar {
	// cookiejar.New only fails on a nil PublicSuffixList option.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}
