package credentials

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerHeadersForwardsAuthorization(t *testing.T) {
	in := http.Header{}
	in.Set("authorization", "Bearer abc")

	h := ServerHeaders(in)

	assert.Equal(t, "Bearer abc", h.Get(HeaderAuthorization))
	assert.Equal(t, "application/json", h.Get(HeaderContentType))
	assert.Equal(t, "application/json", h.Get(HeaderAccept))
}

func TestServerHeadersOmitsMissingAuthorization(t *testing.T) {
	h := ServerHeaders(http.Header{})

	_, present := h[HeaderAuthorization]
	assert.False(t, present, "authorization must be omitted, not empty")
	assert.Equal(t, "application/json", h.Get(HeaderAccept))
}

func TestServerHeadersNilInputIsAnonymous(t *testing.T) {
	h := ServerHeaders(nil)
	assert.Empty(t, h.Get(HeaderAuthorization))
}

func TestWithoutContentType(t *testing.T) {
	in := http.Header{}
	in.Set(HeaderAuthorization, "Bearer abc")

	h := ServerHeaders(in, WithoutContentType())

	_, present := h[HeaderContentType]
	assert.False(t, present)
	assert.Equal(t, "Bearer abc", h.Get(HeaderAuthorization))
}

func TestClientHeaders(t *testing.T) {
	cases := []struct {
		name  string
		store TokenStore
		want  string
	}{
		{"token", StaticToken("xyz"), "Bearer xyz"},
		{"padded", StaticToken("  xyz "), "Bearer xyz"},
		{"empty", StaticToken(""), ""},
		{"nil store", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := ClientHeaders(tc.store)
			assert.Equal(t, tc.want, h.Get(HeaderAuthorization))
			_, present := h[HeaderAuthorization]
			assert.Equal(t, tc.want != "", present)
		})
	}
}

func TestHeadersAreFreshPerCall(t *testing.T) {
	store := StaticToken("xyz")
	a := ClientHeaders(store)
	a.Set(HeaderAuthorization, "mutated")

	b := ClientHeaders(store)
	assert.Equal(t, "Bearer xyz", b.Get(HeaderAuthorization))
}
