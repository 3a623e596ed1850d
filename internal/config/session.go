package config

import "strings"

// SessionConfig names the admin cookies and the gated page paths.
type SessionConfig struct {
	CookieName      string
	TokenCookieName string
	ProtectedPrefix string
	LoginPath       string
	UIDir           string
}

func loadSession() SessionConfig {
	return SessionConfig{
		CookieName:      envOrDefault(envSessionCookie, defaultSessionCookie),
		TokenCookieName: envOrDefault(envTokenCookie, defaultTokenCookie),
		ProtectedPrefix: cleanPathPrefix(envOrDefault(envAdminPrefix, defaultAdminPrefix)),
		LoginPath:       envOrDefault(envAdminLoginPath, defaultAdminLoginPath),
		UIDir:           envOrDefault(envAdminUIDir, ""),
	}
}

func cleanPathPrefix(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}
