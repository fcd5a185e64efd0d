// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hackathon-hub/database"
	"hackathon-hub/middleware"
	"hackathon-hub/services"
)

// testTemplateNames lists every template the controllers render. The
// dummy files keep c.HTML from panicking without dragging the real
// templates into unit tests.
var testTemplateNames = []string{
	"welcome.html", "login.html", "signup.html", "home.html",
	"profile.html", "settings.html", "request_organizer.html",
	"create_hackaton.html", "hackathon_details.html",
	"register_for_hackathon.html", "manage_requests.html",
	"forbidden.html",
}

func createDummyTemplates(dir string) error {
	for _, name := range testTemplateNames {
		content := []byte("<html><body>" + name + "</body></html>")
		if err := os.WriteFile(filepath.Join(dir, name), content, 0600); err != nil {
			return err
		}
	}
	return nil
}

// setupTestApp wires the full application against an in-memory
// database and returns the router plus the database for seeding.
func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	authService := services.NewAuthService(db)
	organizerService := services.NewOrganizerService(db)
	hackathonService := services.NewHackathonService(db, organizerService, new(services.MockUploader))
	registrationService := services.NewRegistrationService(db, nil)

	authController := NewAuthController(authService)
	pageController := NewPageController(authService, hackathonService, organizerService)
	organizerController := NewOrganizerController(authService, organizerService)
	hackathonController := NewHackathonController(
		authService, hackathonService, registrationService, organizerService, "http://localhost:8080")

	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))

	router.GET("/health", Health)
	router.GET("/", pageController.Welcome)
	router.GET("/login_user/", authController.ShowLoginPage)
	router.POST("/login_user/", authController.PerformLogin)
	router.GET("/logout/", authController.Logout)
	router.GET("/signup/", authController.ShowSignupPage)
	router.POST("/signup/", authController.PerformSignup)

	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/home/", pageController.Home)
		protected.GET("/request_organizer/", organizerController.ShowRequestForm)
		protected.POST("/request_organizer/", organizerController.PerformRequest)
		protected.GET("/create_hackaton/", hackathonController.ShowCreateForm)
		protected.POST("/create_hackaton/", hackathonController.PerformCreate)
		protected.GET("/hackathon/:id/", hackathonController.Details)
		protected.GET("/hackathon/:id/register/", hackathonController.ShowRegisterForm)
		protected.POST("/hackathon/:id/register/", hackathonController.PerformRegister)
		protected.GET("/hackathon/:id/qrcode", hackathonController.QRCode)
	}

	staff := router.Group("/", middleware.AuthRequired, middleware.StaffRequired())
	{
		staff.GET("/manage_requests/", organizerController.ManageRequests)
		staff.POST("/approve_request/:id/", organizerController.ApproveRequest)
	}

	return router, db
}

// postForm sends a form-encoded POST, optionally with a session cookie.
func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// getPath sends a GET, optionally with a session cookie.
func getPath(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signUpAndLogin creates an account through the signup endpoint and
// returns the session cookie issued with it.
func signUpAndLogin(t *testing.T, router *gin.Engine, username string) *http.Cookie {
	form := url.Values{
		"username":  {username},
		"email":     {username + "@example.com"},
		"password1": {"s3cret-pass"},
		"password2": {"s3cret-pass"},
	}
	w := postForm(router, "/signup/", form, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("Signup for %s failed with status %d", username, w.Code)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	t.Fatalf("No session cookie after signup for %s", username)
	return nil
}
