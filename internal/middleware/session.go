package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"study-planner/internal/model"
	"study-planner/pkg/log"
)

const (
	DefaultCookieName = "planner_session"
	sessionIDKey      = "session_id"
)

// Session attaches the caller's session, starting a new one (and setting the
// cookie) on first visit or after the old one expired.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(m.cookieConfig.Name)

		sess, created := m.sessions.GetOrCreate(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     m.cookieConfig.Name,
				Value:    sess.ID,
				Path:     "/",
				MaxAge:   int(m.cookieConfig.MaxAge.Seconds()),
				Secure:   m.cookieConfig.Secure,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			m.l.Debugf(log.WithSessionID(c.Request.Context(), sess.ID), "middleware.Session: started session")
		}

		c.Set(sessionIDKey, sess.ID)
		c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), sess.ID))
		c.Next()
	}
}

// GetScope returns the scope of the session attached by Session.
func GetScope(c *gin.Context) model.Scope {
	return model.Scope{SessionID: c.GetString(sessionIDKey)}
}
