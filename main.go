// @title           Cutlist Optimizer API
// @version         1.0
// @description     Cutlist Optimizer Backend API - panel cutting layout optimization.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"cutlist-optimizer/config"
	_ "cutlist-optimizer/docs"
	"cutlist-optimizer/handlers"
	"cutlist-optimizer/services"
	"cutlist-optimizer/storage"
	"cutlist-optimizer/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CORSConfig builds the CORS policy for the API, allowing the configured
// frontend origin plus common local-dev ports.
func CORSConfig(cfg config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		cfg.AllowedOrigin,
		"http://localhost:3000",
		"http://localhost:8080",
		"http://localhost:9000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Authorization", "Content-Type", "X-Total-Count",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

var cronRunning int32

// runRetentionCron prunes optimization_results rows older than the
// retention window, guarded so overlapping runs never execute at once.
func runRetentionCron(db *sql.DB) {
	if !atomic.CompareAndSwapInt32(&cronRunning, 0, 1) {
		log.Println("previous retention cron still running, skipping this tick")
		return
	}
	defer atomic.StoreInt32(&cronRunning, 0)

	if err := storage.CleanupExpiredSessions(db); err != nil {
		log.Printf("CleanupExpiredSessions failed: %v", err)
	}

	cutoff := time.Now().Add(-90 * 24 * time.Hour)
	n, err := storage.PruneOptimizationResults(db, cutoff)
	if err != nil {
		log.Printf("PruneOptimizationResults failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("pruned %d optimization results older than %s", n, cutoff.Format(time.RFC3339))
	}
}

func main() {
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)

	db := storage.InitDB(cfg)
	gdb := storage.InitGormDB(cfg)

	emailService := services.NewEmailService(cfg)

	var fcmService *services.FCMService
	if cfg.FCMCredentialsPath != "" {
		svc, err := services.NewFCMService(cfg.FCMCredentialsPath, db)
		if err != nil {
			log.Printf("warning: failed to initialize FCM service: %v. Push notifications disabled.", err)
		} else {
			fcmService = svc
			log.Println("FCM service initialized")
		}
	}

	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	if _, err := c.AddFunc("30 3 * * *", func() { runRetentionCron(db) }); err != nil {
		log.Fatalf("failed to schedule retention cron job: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20
	r.Use(cors.New(CORSConfig(cfg)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := r.Group("/api")
	{
		// ==================== auth ====================
		api.POST("/login", handlers.LoginHandler(db))
		api.POST("/refresh-token", handlers.RefreshTokenHandler(db))
		api.POST("/validate-session", handlers.ValidateSession(db))
		api.GET("/session/:user_id", handlers.GetSessionHandler(db))
		api.DELETE("/session/:user_id", handlers.DeleteSessionHandler(db))
		api.GET("/active-devices", handlers.GetActiveDevicesHandler(db))
		api.POST("/logout-device", handlers.LogoutDeviceHandler(db))

		api.POST("/auth/forgot-password", handlers.ForgetPasswordHandler(db, emailService, cfg.AllowedOrigin+"/reset-password/"))
		api.POST("/auth/reset-password/:token", handlers.ResetPasswordHandler(db))
		api.POST("/change_password", handlers.ChangePasswordHandler(db))

		// ==================== projects ====================
		api.POST("/projects", handlers.CreateProjectHandler(gdb))
		api.GET("/projects", handlers.ListProjectsHandler(gdb))
		api.GET("/projects/:id", handlers.GetProjectHandler(gdb))
		api.PUT("/projects/:id", handlers.UpdateProjectHandler(gdb))
		api.DELETE("/projects/:id", handlers.DeleteProjectHandler(gdb))
		api.POST("/projects/:id/share", handlers.ShareProjectHandler(gdb))
		api.POST("/projects/:id/pieces", handlers.AddProjectPieceHandler(gdb))
		api.DELETE("/projects/:id/pieces/:piece_id", handlers.DeleteProjectPieceHandler(gdb))
		api.POST("/projects/:id/offcuts", handlers.SaveStockSheetsHandler(gdb))
		api.GET("/projects/:id/offcuts", handlers.ListStockSheetsHandler(gdb))

		// ==================== optimize ====================
		api.POST("/optimize", handlers.OptimizeHandler(db, fcmService))
		api.GET("/projects/:id/results", handlers.GetOptimizationHistoryHandler(db))

		// ==================== export & reporting ====================
		api.GET("/projects/:id/export/xlsx", handlers.ExportXLSXHandler(gdb))
		api.GET("/projects/:id/export/pdf", handlers.ExportPDFHandler(gdb))
		api.GET("/projects/:id/labels", handlers.ExportLabelsHandler(gdb))
	}

	port := cfg.ServerPort
	if port == "" {
		port = "9000"
	}
	if portInt, err := strconv.Atoi(port); err != nil || portInt < 0 || portInt > 65535 {
		log.Fatalf("invalid SERVER_PORT: %q", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("server exiting")
}
