// file: middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Helper function to create a test router with session middleware
func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	// route that plants a user in the session
	router.GET("/set-session", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user", "alice")
		_ = session.Save()
		c.String(http.StatusOK, "session set")
	})

	router.GET("/protected", AuthRequired, func(c *gin.Context) {
		c.String(http.StatusOK, "welcome")
	})

	return router
}

// Anonymous users are redirected to the login page.
func TestAuthRequired_Unauthenticated(t *testing.T) {
	router := setupAuthTestRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login_user/", w.Header().Get("Location"))
}

// Logged-in users pass through.
func TestAuthRequired_Authenticated(t *testing.T) {
	router := setupAuthTestRouter()

	req1, _ := http.NewRequest("GET", "/set-session", nil)
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, req1)

	var sessionCookie *http.Cookie
	for _, c := range w1.Result().Cookies() {
		if c.Name == "testsession" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("Session cookie not found")
	}

	req2, _ := http.NewRequest("GET", "/protected", nil)
	req2.AddCookie(sessionCookie)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "welcome", w2.Body.String())
}
