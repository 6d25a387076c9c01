package middleware

import (
	"net/http"
	"time"
)

// CookieName is the session cookie carrying the bearer token.
const CookieName = "token"

// CookieWriter attaches and clears the session cookie. In production the
// cookie is Secure with SameSite=None so cross-site frontends can send it;
// in development it stays Lax over plain HTTP.
type CookieWriter struct {
	ttl        time.Duration
	production bool
}

func NewCookieWriter(ttl time.Duration, production bool) *CookieWriter {
	return &CookieWriter{ttl: ttl, production: production}
}

func (c *CookieWriter) sameSite() http.SameSite {
	if c.production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func (c *CookieWriter) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(c.ttl),
		HttpOnly: true,
		Secure:   c.production,
		SameSite: c.sameSite(),
	})
}

// Clear overwrites the cookie with a dead value that expires almost
// immediately, invalidating the client-held session.
func (c *CookieWriter) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "loggedout",
		Path:     "/",
		Expires:  time.Now().Add(time.Second),
		HttpOnly: true,
		Secure:   c.production,
		SameSite: c.sameSite(),
	})
}
