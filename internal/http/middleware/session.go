package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/election-gateway/internal/logging"
)

// SessionGate redirects requests under prefix that carry no session cookie to
// loginPath?from=<path>. It checks presence only; the cookie value is never
// inspected. The login path itself is never gated.
func SessionGate(prefix, loginPath, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtected(r.URL.Path, prefix, loginPath) || hasCookie(r, cookieName) {
				next.ServeHTTP(w, r)
				return
			}

			target := loginPath + "?" + url.Values{"from": {r.URL.Path}}.Encode()
			logging.Info(logging.FromContext(r.Context(), logger), "session gate redirect",
				slog.String(logging.FieldPath, r.URL.Path),
			)
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}

func isProtected(path, prefix, loginPath string) bool {
	if path == loginPath || path == strings.TrimSuffix(loginPath, "/")+"/" {
		return false
	}
	if prefix == "/" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func hasCookie(r *http.Request, name string) bool {
	_, err := r.Cookie(name)
	return err == nil
}
