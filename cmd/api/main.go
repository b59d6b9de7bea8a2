package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/cache"
	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/circuitbreaker"
	"github.com/mentorhub/mentorhub-api/pkg/db"
	"github.com/mentorhub/mentorhub-api/pkg/httpclient"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/mailer"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/password"
	"github.com/mentorhub/mentorhub-api/pkg/profiling"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// apiHandlers groups the handlers mounted under /api/v1
type apiHandlers struct {
	auth          *handlers.AuthHandler
	messages      *handlers.MessageHandler
	friends       *handlers.FriendHandler
	mentorship    *handlers.MentorshipHandler
	search        *handlers.SearchHandler
	tasks         *handlers.TaskHandler
	settings      *handlers.SettingsHandler
	passwordReset *handlers.PasswordResetHandler
	contactForm   *handlers.ContactFormHandler
}

// registerAPIRoutes registers the public and session-protected v1 routes
func registerAPIRoutes(group *gin.RouterGroup, h apiHandlers, sessionMiddleware gin.HandlerFunc) {
	// Public routes
	group.POST("/register", h.auth.Register)
	group.POST("/login", h.auth.Login)
	group.GET("/logout", h.auth.Logout)
	group.POST("/logout", h.auth.Logout)
	group.POST("/send-verification-code", h.passwordReset.SendCode)
	group.POST("/verify-code", h.passwordReset.VerifyCode)
	group.POST("/reset-password", h.passwordReset.ResetPassword)
	group.POST("/contact-form", h.contactForm.Submit)

	// Session-protected routes
	authed := group.Group("")
	authed.Use(sessionMiddleware)

	authed.GET("/session", h.auth.Session)

	authed.POST("/send-message", h.messages.Send)
	authed.GET("/inbox/received", h.messages.Received)
	authed.GET("/inbox/sent", h.messages.Sent)
	authed.GET("/inbox/unread-count", h.messages.UnreadCount)
	authed.GET("/messages/:id", h.messages.Get)
	authed.POST("/mark-as-read/:id", h.messages.MarkRead)

	authed.GET("/contacts", h.friends.Contacts)
	authed.POST("/add-friend", h.friends.AddFriend)
	authed.GET("/friend-requests", h.friends.FriendRequests)
	authed.POST("/respond-friend-request/:id", h.friends.Respond)

	authed.POST("/request-mentorship", h.mentorship.Request)
	authed.GET("/requests", h.mentorship.List)
	authed.POST("/respond-request/:id", h.mentorship.Respond)

	authed.POST("/search", h.search.Search)

	authed.GET("/tasks", h.tasks.List)
	authed.POST("/tasks", h.tasks.Create)
	authed.DELETE("/tasks/:id", h.tasks.Delete)

	authed.POST("/update-settings", h.settings.Update)
}

// newMailSender picks the webhook relay when configured and the log sender otherwise.
// The returned func reports the relay's circuit breaker state for the healthcheck.
func newMailSender(cfg *config.Config) (mailer.Sender, func() string) {
	if cfg.Mail.WebhookURL == "" {
		logger.Warn("MAIL_WEBHOOK_URL not set: outgoing mail is only logged")
		return mailer.LogSender{}, func() string { return "log-only" }
	}

	client := httpclient.NewStandardClient(time.Duration(cfg.Mail.TimeoutSeconds) * time.Second)
	sender := mailer.NewWebhookSender(mailer.WebhookConfig{
		URL:    cfg.Mail.WebhookURL,
		Secret: cfg.Mail.WebhookSecret,
		From:   cfg.Mail.From,
	}, client)
	return sender, func() string { return circuitbreaker.GetState(sender.Breaker()) }
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorHub API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Resource{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
	}, cfg.Observability.ExporterEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.LogError(shutdownErr, "Failed to shutdown tracer")
		}
	}()

	// Continuous profiling
	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Start infrastructure metrics collection
	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	metrics.RecordInfrastructureMetrics(rootCtx)

	// Initialize PostgreSQL connection pool
	// NOTE: migrations run separately via cmd/migrate before the API starts
	pool, err := db.NewPool(rootCtx, db.PoolConfig{
		URL:        cfg.Database.URL,
		MaxConns:   cfg.Database.MaxConns,
		MinConns:   cfg.Database.MinConns,
		CACertPath: cfg.Database.CACertPath,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	codeRepo := repository.NewVerificationCodeRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	mentorshipRepo := repository.NewMentorshipRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// Sessions, credentials and mail
	sessionTTL := time.Duration(cfg.Session.SessionTTLHours) * time.Hour
	sessionCache := cache.NewSessionCache(sessionTTL)
	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.SessionTTLHours)
	hasher := password.NewHasher(cfg.Security.BcryptCost)
	mailSender, mailState := newMailSender(cfg)

	cookieCfg := middleware.CookieConfig{
		Domain: cfg.Session.CookieDomain,
		Secure: cfg.Session.CookieSecure,
		TTL:    tokenManager.GetExpirationTime(),
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionCache, tokenManager, hasher)
	messageService := services.NewMessageService(userRepo, messageRepo)
	friendService := services.NewFriendService(userRepo, contactRepo)
	mentorshipService := services.NewMentorshipService(userRepo, mentorshipRepo)
	searchService := services.NewSearchService(userRepo, cfg.Server.SearchResultLimit)
	taskService := services.NewTaskService(taskRepo)
	settingsService := services.NewSettingsService(userRepo, sessionCache, hasher)
	passwordResetService := services.NewPasswordResetService(userRepo, codeRepo, hasher, mailSender, cfg.PasswordReset)
	contactFormService := services.NewContactFormService(mailSender, cfg.Mail.AdminAddress)

	// Initialize handlers
	h := apiHandlers{
		auth:          handlers.NewAuthHandler(authService, tokenManager, cookieCfg),
		messages:      handlers.NewMessageHandler(messageService),
		friends:       handlers.NewFriendHandler(friendService),
		mentorship:    handlers.NewMentorshipHandler(mentorshipService),
		search:        handlers.NewSearchHandler(searchService),
		tasks:         handlers.NewTaskHandler(taskService),
		settings:      handlers.NewSettingsHandler(settingsService),
		passwordReset: handlers.NewPasswordResetHandler(passwordResetService),
		contactForm:   handlers.NewContactFormHandler(contactFormService),
	}
	healthHandler := handlers.NewHealthHandler(pool, mailState)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	// Allow localhost in development
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for session cookies
		MaxAge:           12 * time.Hour,
	}))

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics",
		middleware.TokenAuthMiddleware(middleware.MetricsTokenHeader, cfg.Auth.MetricsAuthToken),
		gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.BodySizeLimitMiddleware(cfg.Server.MaxBodyBytes))
	registerAPIRoutes(v1, h, middleware.SessionMiddleware(tokenManager, sessionCache, cookieCfg))

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.LogError(err, "Server forced to shutdown")
	}

	logger.Info("Server exited")
}
