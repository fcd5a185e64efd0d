// file: middleware/staff_required_test.go
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

func setupStaffTestRouter(isStaff bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/set-session", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user", "alice")
		session.Set("isStaff", isStaff)
		_ = session.Save()
		c.String(http.StatusOK, "session set")
	})

	router.GET("/staff-only", StaffRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "staff area")
	})

	return router
}

func sessionCookieFrom(t *testing.T, router *gin.Engine) *http.Cookie {
	req, _ := http.NewRequest("GET", "/set-session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	t.Fatal("Session cookie not found")
	return nil
}

func TestStaffRequired_BlocksNonStaff(t *testing.T) {
	router := setupStaffTestRouter(false)
	cookie := sessionCookieFrom(t, router)

	req, _ := http.NewRequest("GET", "/staff-only", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffRequired_BlocksAnonymous(t *testing.T) {
	router := setupStaffTestRouter(true)

	req, _ := http.NewRequest("GET", "/staff-only", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffRequired_AllowsStaff(t *testing.T) {
	router := setupStaffTestRouter(true)
	cookie := sessionCookieFrom(t, router)

	req, _ := http.NewRequest("GET", "/staff-only", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staff area", w.Body.String())
}
