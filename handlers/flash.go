package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeySignedIn = "signed_in"
	sessionKeyEmail    = "email"

	flashSuccess = "success"
	flashError   = "error"
)

// Flash is a one-shot notification rendered as a banner on the next
// page load, the server-side stand-in for a toast.
type Flash struct {
	Kind    string
	Message string
}

func flash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	session.Save()
}

func takeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	var flashes []Flash
	for _, kind := range []string{flashSuccess, flashError} {
		for _, f := range session.Flashes(kind) {
			if msg, ok := f.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: msg})
			}
		}
	}
	session.Save()
	return flashes
}

// SignedIn reports whether the session carries the demo sign-in flag.
func SignedIn(c *gin.Context) bool {
	session := sessions.Default(c)
	v, ok := session.Get(sessionKeySignedIn).(bool)
	return ok && v
}
