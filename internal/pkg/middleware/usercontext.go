package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Prometheus-first/worldguide/internal/pkg/session"
	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// sessionValues is the read side of a session, satisfied by *session.Session.
type sessionValues interface {
	Get(key string) interface{}
}

// UserContextMiddleware resolves the session identity once per request
// and hands it to handlers as a request-scoped value. Handlers never
// touch the session store directly for identity checks.
func UserContextMiddleware(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	if store == nil {
		return anonymous(c)
	}

	sess, err := store.Get(c)
	if err != nil {
		// Unreadable session counts as anonymous, not as an error
		return anonymous(c)
	}

	userCtx := resolveIdentity(sess)
	if !userCtx.IsLoggedIn {
		return anonymous(c)
	}

	c.Locals(usercontext.KeyUserContext, userCtx)
	c.Locals(usercontext.KeyFromProtected, true)

	return c.Next()
}

// resolveIdentity turns raw session values into the request identity.
// Login writes both the authenticated flag and the user id; a session
// missing either is anonymous.
func resolveIdentity(sess sessionValues) usercontext.UserContext {
	auth, ok := sess.Get(usercontext.AuthKey).(bool)
	if !ok || !auth {
		return usercontext.UserContext{IsLoggedIn: false}
	}

	userID, ok := sess.Get(usercontext.KeyUserID).(uint)
	if !ok || userID == 0 {
		return usercontext.UserContext{IsLoggedIn: false}
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)

	return usercontext.UserContext{
		UserID:     userID,
		Username:   username,
		IsLoggedIn: true,
	}
}

func anonymous(c *fiber.Ctx) error {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		IsLoggedIn: false,
	})
	c.Locals(usercontext.KeyFromProtected, false)

	return c.Next()
}
