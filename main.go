// main.go
package main

import (
	"log"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"hackathon-hub/config"
	"hackathon-hub/controllers"
	"hackathon-hub/database"
	"hackathon-hub/logger"
	"hackathon-hub/middleware"
	"hackathon-hub/services"
)

func main() {
	cfg := config.Load()
	logger.SetLogLevel(cfg.Env)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise database: %v", err)
	}

	// Services
	var metrics services.MetricsPublisher = services.NoopMetrics{}
	var uploader services.Uploader
	if cfg.Env == "production" {
		metrics = services.NewCloudWatchMetrics(cfg.AWSRegion)
	}
	uploader = services.NewS3Uploader(cfg.S3Bucket, cfg.AWSRegion)

	authService := services.NewAuthService(db)
	organizerService := services.NewOrganizerService(db)
	hackathonService := services.NewHackathonService(db, organizerService, uploader)
	registrationService := services.NewRegistrationService(db, metrics)

	// Controllers
	authController := controllers.NewAuthController(authService)
	pageController := controllers.NewPageController(authService, hackathonService, organizerService)
	organizerController := controllers.NewOrganizerController(authService, organizerService)
	hackathonController := controllers.NewHackathonController(
		authService, hackathonService, registrationService, organizerService, cfg.ApplicationURL)

	router := gin.Default()

	// Health check for the load balancer
	router.GET("/health", controllers.Health)

	// Initialize session store
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("hackathonhub", store))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	router.LoadHTMLGlob(filepath.Join(basepath, "templates", "*.html"))

	// Serve static files under /static
	router.Static("/static", "./static")

	// Public routes
	router.GET("/", pageController.Welcome)
	router.GET("/login_user/", authController.ShowLoginPage)
	router.POST("/login_user/", authController.PerformLogin)
	router.GET("/logout/", authController.Logout)
	router.GET("/signup/", authController.ShowSignupPage)
	router.POST("/signup/", authController.PerformSignup)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/home/", pageController.Home)
		protected.GET("/profile/", pageController.Profile)
		protected.GET("/settings/", pageController.Settings)
		protected.GET("/request_organizer/", organizerController.ShowRequestForm)
		protected.POST("/request_organizer/", organizerController.PerformRequest)
		protected.GET("/create_hackaton/", hackathonController.ShowCreateForm)
		protected.POST("/create_hackaton/", hackathonController.PerformCreate)
		protected.GET("/hackathon/:id/", hackathonController.Details)
		protected.GET("/hackathon/:id/register/", hackathonController.ShowRegisterForm)
		protected.POST("/hackathon/:id/register/", hackathonController.PerformRegister)
		protected.GET("/hackathon/:id/qrcode", hackathonController.QRCode)
	}

	// Staff routes
	staff := router.Group("/", middleware.AuthRequired, middleware.StaffRequired())
	{
		staff.GET("/manage_requests/", organizerController.ManageRequests)
		staff.POST("/approve_request/:id/", organizerController.ApproveRequest)
	}

	logger.Info.Printf("Starting server on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
