package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpctx "github.com/dtroode/authcore/internal/api/http/context"
	"github.com/dtroode/authcore/internal/api/http/handler"
	"github.com/dtroode/authcore/internal/api/http/router"
	httpServer "github.com/dtroode/authcore/internal/api/http/server"
	"github.com/dtroode/authcore/internal/config"
	"github.com/dtroode/authcore/internal/logger"
	"github.com/dtroode/authcore/internal/metrics"
	"github.com/dtroode/authcore/internal/model"
	"github.com/dtroode/authcore/internal/notification"
	"github.com/dtroode/authcore/internal/password"
	"github.com/dtroode/authcore/internal/repository/postgres"
	redisrepo "github.com/dtroode/authcore/internal/repository/redis"
	"github.com/dtroode/authcore/internal/server"
	"github.com/dtroode/authcore/internal/service"
	storage "github.com/dtroode/authcore/internal/storage/minio"
	"github.com/dtroode/authcore/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	redisClient, err := redisrepo.Connect(ctx, redisrepo.Config{
		URL:            cfg.Redis.URL,
		RetryAttempts:  cfg.Redis.RetryAttempts,
		RetryInterval:  cfg.Redis.RetryInterval,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	})
	if err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	emailSender, err := newEmailSender(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize email sender", "error", err, "driver", cfg.Mail.Driver)
	}

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	pendingStore := redisrepo.NewStore(redisClient)
	signupRepo := redisrepo.NewSignupRepository(pendingStore)
	resetRepo := redisrepo.NewPasswordResetRepository(pendingStore)

	m := metrics.New(prometheus.DefaultRegisterer)
	tokenService := service.NewTokenService(token.NewJWT(cfg.TokenSettings()), refreshTokenRepo, logger)
	authService := service.NewAuth(
		userRepo,
		signupRepo,
		resetRepo,
		db,
		password.NewHasher(),
		tokenService,
		notification.NewMailer(emailSender, logger),
		m,
		cfg.AuthSettings(),
		logger,
	)

	r := router.New(router.Params{
		AuthService:    authService,
		Authenticator:  authService,
		ContextManager: httpctx.NewManager(),
		Cookie: handler.CookieSettings{
			TTL:    cfg.TokenSettings().RefreshTTL,
			Secure: cfg.HTTP.EnableHTTPS,
		},
		HealthChecks: map[string]handler.HealthCheck{
			"postgres": db.Ping,
			"redis":    redisrepo.Healthcheck(redisClient),
		},
		Observer: m,
		Metrics:  promhttp.Handler(),
		Logger:   logger,
	})

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newEmailSender(ctx context.Context, cfg *config.Config) (notification.EmailSender, error) {
	switch cfg.Mail.Driver {
	case "postmark":
		sender, err := notification.NewPostmarkSender(notification.PostmarkConfig{
			ServerToken:  cfg.Mail.PostmarkServerToken,
			AccountToken: cfg.Mail.PostmarkAccountToken,
			SenderEmail:  cfg.Mail.SenderEmail,
			SupportEmail: cfg.Mail.SupportEmail,
		})
		if err != nil {
			return nil, err
		}
		return sender, nil
	case "bucket":
		client, err := storage.NewClient(ctx, storage.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return notification.NewBucketSender(client), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
