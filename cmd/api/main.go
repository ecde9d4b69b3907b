package main

import (
	"log"
	"time"

	"portal-api/config"
	"portal-api/handlers"
	"portal-api/middleware"
	"portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Start service")
	// Load .env if present (ignored in production)
	_ = godotenv.Load()

	cfg := config.Load()

	log.Println("init services")
	githubService, err := services.NewGitHubService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize GitHub service: %v", err)
	}

	var assetStore services.AssetStore
	switch cfg.AssetBackend {
	case "minio":
		minioAssets, err := services.NewMinIOAssetService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO asset service: %v", err)
		}
		assetStore = minioAssets
	default:
		assetStore = services.NewGitHubAssetService(githubService)
	}

	materialService := services.NewMaterialService(githubService, assetStore)
	calendarService := services.NewCalendarService(githubService)
	settingsService := services.NewSettingsService(githubService)
	roleService := services.NewRoleService(cfg)
	academyService := services.NewAcademyService(cfg)
	cacheService := services.NewCacheService(cfg.CacheTTL, 2*cfg.CacheTTL)

	log.Println("init handlers")
	materialHandler := handlers.NewMaterialHandler(materialService, roleService)
	calendarHandler := handlers.NewCalendarHandler(calendarService, roleService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, roleService)
	academyHandler := handlers.NewAcademyHandler(academyService, cacheService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Println("init router")
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(gin.Recovery())

	// API routes
	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})

		// Class materials
		api.GET("/materials", materialHandler.GetMaterials)
		api.POST("/materials", materialHandler.UploadMaterial)
		api.DELETE("/materials/:id", materialHandler.DeleteMaterial)

		// Academic calendar
		api.GET("/calendar/events", calendarHandler.GetEvents)
		api.POST("/calendar/events", calendarHandler.AddEvent)
		api.PUT("/calendar/events/:id", calendarHandler.UpdateEvent)
		api.DELETE("/calendar/events/:id", calendarHandler.DeleteEvent)

		// Semester settings
		api.GET("/settings/semester", settingsHandler.GetSettings)
		api.PUT("/settings/semester", settingsHandler.SaveSettings)

		// Academic records (read-only, cached)
		api.GET("/academy/courses", academyHandler.GetCourses)
		api.GET("/academy/attendance", academyHandler.GetAttendance)
		api.GET("/academy/timetable", academyHandler.GetTimetable)
		api.GET("/academy/seating", academyHandler.GetExamSeating)
		api.GET("/academy/results", academyHandler.GetResults)

		// Cache management
		api.POST("/cache/invalidate", academyHandler.InvalidateCache)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
