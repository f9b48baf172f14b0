package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler implements the demo sign-in: any non-empty email and
// password establish a session. This is a placeholder boundary, not a
// security mechanism; there are no accounts and nothing is verified.
type AuthHandler struct{}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if SignedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Email and password are required"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeySignedIn, true)
	session.Set(sessionKeyEmail, email)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
