package router

import (
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/seed"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *repository.DB, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Build the in-memory store. All collections live in this single
	// instance for the lifetime of the process.
	db := repository.NewDB()
	if cfg.SeedDemoData {
		if err := seed.Load(db); err != nil {
			logger.Error().Err(err).Msg("Failed to load seed data")
			return nil, nil, err
		}
		logger.Info().Msg("Demo dataset loaded")
	}

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)
	announcementRepo := repository.NewAnnouncementRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	leaderboardRepo := repository.NewLeaderboardRepo(db)

	jwtExpiry := time.Duration(cfg.JWTExpiryHours) * time.Hour
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, jwtExpiry, logger)
	userSvc := service.NewUserService(userRepo, courseRepo, submissionRepo, announcementRepo, leaderboardRepo)
	courseSvc := service.NewCourseService(courseRepo)
	quizSvc := service.NewQuizService(submissionRepo, courseRepo, userRepo, logger)
	announcementSvc := service.NewAnnouncementService(announcementRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo, courseRepo, logger)
	messageSvc := service.NewMessageService(messageRepo, userRepo)
	billingSvc := service.NewBillingService(transactionRepo, logger)

	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	userHandler := handler.NewUserHandler(userSvc, validate)
	courseHandler := handler.NewCourseHandler(courseSvc, quizSvc)
	submissionHandler := handler.NewSubmissionHandler(quizSvc, validate)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc, validate)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, validate)
	messageHandler := handler.NewMessageHandler(messageSvc, validate)
	billingHandler := handler.NewBillingHandler(billingSvc)

	// 4. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// 5. Create ServeMux router with the v1 routes
	apiV1Mux := http.NewServeMux()
	authHandler.RegisterRoutes(apiV1Mux)
	userHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	courseHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	submissionHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	announcementHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	scheduleHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	messageHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	billingHandler.RegisterRoutes(apiV1Mux, authMiddleware)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// Redirect /api/* to /v1/* for backward compatibility
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/")
		http.Redirect(w, r, "/v1/"+rest, http.StatusMovedPermanently)
	})

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), db, nil
}
