package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/classroomquiz/backend/config"
	"github.com/classroomquiz/backend/database"
	_ "github.com/classroomquiz/backend/docs" // Swagger docs - auto-generated
	"github.com/classroomquiz/backend/internal/controller"
	studentctrl "github.com/classroomquiz/backend/internal/controller/student"
	teacherctrl "github.com/classroomquiz/backend/internal/controller/teacher"
	"github.com/classroomquiz/backend/internal/logger"
	"github.com/classroomquiz/backend/internal/middleware"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/repository"
	"github.com/classroomquiz/backend/internal/service"
	"github.com/classroomquiz/backend/internal/store"
)

// @title Classroom Quiz API
// @version 1.0
// @description API for teachers to publish multiple-choice quizzes and track per-student accuracy, and for students to answer them.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB (nil in degraded mode)
			NewGinEngine,
		),

		// Storage layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewActivityRepository,
			store.NewMemoryActivities,
			store.NewActivityStore,
			store.NewAttemptStore,
		),

		// Services layer
		fx.Provide(
			service.NewGeneratorService,
			service.NewAuthService,
			service.NewActivityService,
			service.NewSubmissionService,
			service.NewStatsService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			teacherctrl.NewTeacherController,
			studentctrl.NewStudentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin request logging through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	teacherCtrl *teacherctrl.TeacherController,
	studentCtrl *studentctrl.StudentController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	activities := api.Group("/activities")
	{
		activities.GET("/public", studentCtrl.PublicList)

		authed := activities.Group("", middleware.AuthMiddleware(cfg))
		{
			authed.POST("/preview", middleware.RequireTeacher(), teacherCtrl.Preview)
			authed.POST("", middleware.RequireTeacher(), teacherCtrl.Publish)
			authed.GET("", middleware.RequireTeacher(), teacherCtrl.ListOwned)
			authed.DELETE("/:id", middleware.RequireTeacher(), teacherCtrl.Delete)
			authed.GET("/teacher/stats", middleware.RequireTeacher(), teacherCtrl.Stats)

			authed.POST("/:id/submit", middleware.RequireStudent(), studentCtrl.Submit)
			authed.GET("/student/history", middleware.RequireStudent(), studentCtrl.History)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Classroom quiz API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	if db == nil {
		log.Warn().Msg("Skipping migrations, no database connection")
		return nil
	}

	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&model.User{},
		&model.Activity{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
