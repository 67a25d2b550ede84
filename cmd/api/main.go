package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/adapter/ai"
	dbadapter "github.com/nisargamalap/gridle/internal/adapter/db"
	httpadapter "github.com/nisargamalap/gridle/internal/adapter/http"
	"github.com/nisargamalap/gridle/internal/adapter/http/handlers"
	httpmiddleware "github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/adapter/mail"
	"github.com/nisargamalap/gridle/internal/app/service"
	"github.com/nisargamalap/gridle/internal/config"
	"github.com/nisargamalap/gridle/pkg/session"
	"github.com/nisargamalap/gridle/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepository(db)
	groupRepo := dbadapter.NewGroupRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	noteRepo := dbadapter.NewNoteRepository(db)
	projectRepo := dbadapter.NewProjectRepository(db)
	analyticsRepo := dbadapter.NewAnalyticsRepository(db)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	mailer := mail.NewLogMailer(cfg.MailFrom)
	generative := ai.NewGeminiClient(ai.Config{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
	})

	authService := service.NewAuthService(userRepo, mailer, sessions, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	groupService := service.NewGroupService(groupRepo, userRepo)
	taskService := service.NewTaskService(taskRepo, groupRepo)
	noteService := service.NewNoteService(noteRepo, taskRepo)
	projectService := service.NewProjectService(projectRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	assistantService := service.NewAssistantService(generative, noteRepo)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	limiter := httpmiddleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Auth:      handlers.NewAuthHandler(authService),
		User:      handlers.NewUserHandler(userService),
		Group:     handlers.NewGroupHandler(groupService, taskService),
		Task:      handlers.NewTaskHandler(taskService),
		Note:      handlers.NewNoteHandler(noteService),
		Project:   handlers.NewProjectHandler(projectService),
		Assistant: handlers.NewAssistantHandler(assistantService),

		AdminUser:      handlers.NewAdminUserHandler(userService),
		AdminGroup:     handlers.NewAdminGroupHandler(groupService),
		AdminTask:      handlers.NewAdminTaskHandler(taskService),
		AdminNote:      handlers.NewAdminNoteHandler(noteService),
		AdminAnalytics: handlers.NewAdminAnalyticsHandler(analyticsService),
	}, sessions, limiter)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
