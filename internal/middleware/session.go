package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	// SessionIDKey holds the verified session id in the echo context.
	SessionIDKey = "sessionID"
	// UsernameKey holds the authenticated username once RequireSession passed.
	UsernameKey = "username"
)

// Authorizer resolves a session id to the logged-in username.
type Authorizer interface {
	Authorize(ctx context.Context, sessionID string) (string, error)
}

// CookieCodec signs session ids into the session cookie and verifies them on
// the way back in. The cookie only carries the id; session state stays in
// the store.
type CookieCodec struct {
	Name   string
	Secure bool
	secret []byte
}

func NewCookieCodec(name, secret string, secure bool) *CookieCodec {
	return &CookieCodec{Name: name, Secure: secure, secret: []byte(secret)}
}

func (cc *CookieCodec) Encode(sessionID string, expiresAt time.Time) (*http.Cookie, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(cc.secret)
	if err != nil {
		return nil, err
	}

	cookie := cc.base()
	cookie.Value = signed
	cookie.Expires = expiresAt
	cookie.MaxAge = int(time.Until(expiresAt).Seconds())
	return cookie, nil
}

// Decode returns the session id carried by a cookie value. Tampered,
// expired and foreign values all fail.
func (cc *CookieCodec) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return cc.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.ID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.ID, nil
}

// Clear returns a cookie that deletes the session cookie in the browser.
func (cc *CookieCodec) Clear() *http.Cookie {
	cookie := cc.base()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	return cookie
}

func (cc *CookieCodec) base() *http.Cookie {
	cookie := &http.Cookie{
		Name:     cc.Name,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if cc.Secure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// Session reads the session cookie and, when its signature checks out,
// exposes the session id to later handlers. It never rejects a request.
func Session(codec *CookieCodec, log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(codec.Name)
			if err == nil && cookie.Value != "" {
				if sid, err := codec.Decode(cookie.Value); err == nil {
					c.Set(SessionIDKey, sid)
				} else {
					log.WithError(err).Debug("ignoring session cookie")
				}
			}
			return next(c)
		}
	}
}

// RequireSession rejects requests without a logged-in session with 401 and
// stores the username for the handlers behind it. Session store failures
// go to the error handler as they are.
func RequireSession(gate Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, err := gate.Authorize(c.Request().Context(), SessionID(c))
			if errors.Is(err, services.ErrUnauthorized) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized - Please login")
			}
			if err != nil {
				return err
			}
			c.Set(UsernameKey, username)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	sid, _ := c.Get(SessionIDKey).(string)
	return sid
}

func Username(c echo.Context) string {
	username, _ := c.Get(UsernameKey).(string)
	return username
}
