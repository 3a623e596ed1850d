// Package credentials builds the outbound header set for calls to the external API.
package credentials

import (
	"net/http"
	"strings"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"

	jsonMediaType = "application/json"
)

// HeaderGetter is anything with a case-insensitive header lookup; http.Header satisfies it.
type HeaderGetter interface {
	Get(key string) string
}

// TokenStore yields the caller's bare bearer token, or "" when anonymous.
type TokenStore interface {
	Token() string
}

type options struct {
	contentType bool
}

// Option tweaks header construction.
type Option func(*options)

// WithoutContentType drops Content-Type for requests that carry no body.
func WithoutContentType() Option {
	return func(o *options) { o.contentType = false }
}

func resolveOptions(opts []Option) options {
	o := options{contentType: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ServerHeaders forwards the inbound Authorization value untouched.
// A missing value means an anonymous call and the field is omitted.
func ServerHeaders(in HeaderGetter, opts ...Option) http.Header {
	var auth string
	if in != nil {
		auth = strings.TrimSpace(in.Get(HeaderAuthorization))
	}
	return build(auth, resolveOptions(opts))
}

// ClientHeaders reads a bare token from store and sends it as a bearer credential.
func ClientHeaders(store TokenStore, opts ...Option) http.Header {
	return build(bearer(tokenOf(store)), resolveOptions(opts))
}

func build(auth string, o options) http.Header {
	h := make(http.Header, 3)
	h.Set(HeaderAccept, jsonMediaType)
	if o.contentType {
		h.Set(HeaderContentType, jsonMediaType)
	}
	if auth != "" {
		h.Set(HeaderAuthorization, auth)
	}
	return h
}

func tokenOf(store TokenStore) string {
	if store == nil {
		return ""
	}
	return strings.TrimSpace(store.Token())
}

func bearer(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}
