package credentials

import (
	"net/http"
	"net/url"
	"strings"
)

// Provider is injected into every gateway call that may carry credentials.
type Provider interface {
	Headers(opts ...Option) http.Header
}

// Anonymous sends no Authorization header.
var Anonymous Provider = anonymous{}

type anonymous struct{}

func (anonymous) Headers(opts ...Option) http.Header {
	return build("", resolveOptions(opts))
}

// RequestProvider forwards the credentials of an inbound request: its Authorization
// header when present, otherwise the token cookie as a bearer value.
type RequestProvider struct {
	header      http.Header
	tokenCookie string
}

// FromRequest captures what it needs from r; the request itself is not retained.
func FromRequest(r *http.Request, tokenCookie string) RequestProvider {
	p := RequestProvider{header: http.Header{}}
	if r == nil {
		return p
	}
	if auth := strings.TrimSpace(r.Header.Get(HeaderAuthorization)); auth != "" {
		p.header.Set(HeaderAuthorization, auth)
		return p
	}
	if tokenCookie == "" {
		return p
	}
	if c, err := r.Cookie(tokenCookie); err == nil {
		if token := decodeCookieToken(c.Value); token != "" {
			p.header.Set(HeaderAuthorization, bearer(token))
		}
	}
	return p
}

func (p RequestProvider) Headers(opts ...Option) http.Header {
	return ServerHeaders(p.header, opts...)
}

// Authorization reports the value that will be forwarded, "" when anonymous.
func (p RequestProvider) Authorization() string {
	return p.header.Get(HeaderAuthorization)
}

// StoreProvider is the client-side variant backed by a TokenStore.
type StoreProvider struct {
	Store TokenStore
}

func (p StoreProvider) Headers(opts ...Option) http.Header {
	return ClientHeaders(p.Store, opts...)
}

// StaticToken is a fixed TokenStore, handy for service-to-service calls and tests.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

func decodeCookieToken(raw string) string {
	token, err := url.QueryUnescape(raw)
	if err != nil {
		token = raw
	}
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "Bearer ")
	return strings.TrimSpace(token)
}
