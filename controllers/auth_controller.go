// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
	"hackathon-hub/services"
)

// AuthController serves signup, login and logout.
type AuthController struct {
	auth services.AuthServiceInterface
}

// NewAuthController creates an AuthController.
func NewAuthController(auth services.AuthServiceInterface) *AuthController {
	return &AuthController{auth: auth}
}

// ------------------ signup ------------------

// ShowSignupPage renders the signup form.
func (ac *AuthController) ShowSignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// PerformSignup creates the account and logs it straight in, matching
// the signup-then-authenticate flow of the site.
func (ac *AuthController) PerformSignup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password1")
	confirm := c.PostForm("password2")

	if username == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error": "Please fill in all fields.",
		})
		return
	}
	if password != confirm {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error": "The two password fields didn't match.",
		})
		return
	}

	user, err := ac.auth.SignUp(username, email, password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{
				"Error": "That username is already taken.",
			})
			return
		}
		logger.Error.Printf("PerformSignup: failed for %s: %v", username, err)
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"Error": "Internal error, please try again later.",
		})
		return
	}

	if err := loginSession(c, user); err != nil {
		logger.Error.Printf("PerformSignup: failed to save session for %s: %v", username, err)
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	logger.Info.Printf("PerformSignup: %s signed up and logged in", username)
	c.Redirect(http.StatusFound, "/home/")
}

// ------------------ login handling ------------------

// ShowLoginPage renders the login form.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// PerformLogin authenticates the user and establishes the session.
// Invalid credentials re-render the form with a single generic error.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		logger.Warn.Println("PerformLogin: missing username or password")
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Please fill in all fields.",
		})
		return
	}

	user, err := ac.auth.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error": "Invalid username or password.",
			})
			return
		}
		logger.Error.Printf("PerformLogin: failed for %s: %v", username, err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal error, please try again later.",
		})
		return
	}

	if err := loginSession(c, user); err != nil {
		logger.Error.Printf("PerformLogin: failed to save session for %s: %v", username, err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}

	logger.Info.Printf("PerformLogin: user %s authenticated", username)
	c.Redirect(http.StatusFound, "/home/")
}

// ------------------ logout ------------------

// Logout clears the session and shows the welcome page.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if user := session.Get("user"); user != nil {
		logger.Info.Printf("Logout: logging out user %v", user)
	}

	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session: %v", err)
	}

	c.HTML(http.StatusOK, "welcome.html", gin.H{})
}
