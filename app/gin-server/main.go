package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/api/handlers"
	"github.com/yoockh/jobboard/internal/api/routes"
	"github.com/yoockh/jobboard/internal/auth"
	"github.com/yoockh/jobboard/internal/logger"
	"github.com/yoockh/jobboard/internal/notify"
	"github.com/yoockh/jobboard/internal/queue"
	mongorepo "github.com/yoockh/jobboard/internal/repositories/mongo"
	pgrepo "github.com/yoockh/jobboard/internal/repositories/relational"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
	"github.com/yoockh/jobboard/internal/workers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Relational store
	db, err := config.OpenDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := pgrepo.Migrate(db); err != nil {
		log.Fatalf("database migrate error: %v", err)
	}
	log.WithField("driver", cfg.DBDriver).Info("database connected")

	// Delivery log (optional)
	var deliveries mongorepo.NotificationLogRepository
	if cfg.MongoURI != "" {
		mc, err := config.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		defer func() { _ = mc.Disconnect(context.Background()) }()

		mdb := mc.Database(cfg.MongoDB)
		if err := config.EnsureMongoIndexes(ctx, mdb); err != nil {
			log.WithError(err).Warn("mongo index bootstrap failed")
		}
		deliveries = mongorepo.NewNotificationLogRepo(mdb, config.NotificationLogCollection, 0)
		log.Info("MongoDB connected")
	}

	// Notification queue
	q, closeClients, err := buildQueue(ctx, cfg, log)
	if err != nil {
		log.Fatalf("notification queue init error: %v", err)
	}
	defer closeClients()

	var sender notify.Sender = notify.LogSender{Logger: log}
	if cfg.SMTPHost != "" {
		sender, err = notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			log.Fatalf("smtp init error: %v", err)
		}
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	pool := &workers.NotificationWorkerPool{
		Queue:      q,
		Sender:     sender,
		Deliveries: deliveries,
		NumWorkers: cfg.NotifyWorkers,
		Logger:     log,
	}
	if err := pool.Start(workerCtx); err != nil {
		log.Fatalf("worker pool error: %v", err)
	}

	// Auth
	passwords, err := utils.NewPasswordHasher(utils.PasswordMode(cfg.PasswordMode))
	if err != nil {
		log.Fatalf("password mode error: %v", err)
	}
	tokens, err := auth.NewTokens(cfg.AuthTokenMode, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("token mode error: %v", err)
	}
	if cfg.AuthTokenMode == "email" {
		log.Warn("AUTH_TOKEN_MODE=email: bearer tokens are plain emails (unsigned, never expire)")
	}

	// Services / handlers
	users := pgrepo.NewUserRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	apps := pgrepo.NewApplicationRepo(db)

	r := routes.NewEngine(log, cfg.CORSAllowOrigins)
	routes.RegisterRoutes(r, routes.Deps{
		Account:     handlers.NewAccountHandler(services.NewAccountService(users, passwords, tokens)),
		Job:         handlers.NewJobHandler(services.NewJobService(users, jobs)),
		Application: handlers.NewApplicationHandler(services.NewApplicationService(users, jobs, apps, q, log)),
		Tokens:      tokens,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown")
	}

	// no more publishes; consumers finish what is queued, then exit
	if err := q.Close(); err != nil {
		log.WithError(err).Warn("notification queue close")
	}
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()
	if err := pool.WaitContext(drainCtx); err != nil {
		log.WithError(err).Warn("notification drain timed out")
	}
	cancelWorkers()
	pool.Wait()
}

// buildQueue returns the configured queue and a func closing its client
// connection. The queue itself is closed separately during shutdown.
func buildQueue(ctx context.Context, cfg *config.Config, log *logrus.Logger) (queue.Queue, func(), error) {
	switch cfg.NotifyQueue {
	case "redis":
		rdb, err := config.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		q, err := queue.NewRedisStream(ctx, rdb, queue.DefaultStream, queue.DefaultGroup, log)
		if err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}
		log.Info("Redis connected")
		return q, func() { _ = rdb.Close() }, nil

	case "rabbitmq":
		conn, err := config.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return nil, nil, err
		}
		q, err := queue.NewRabbitMQ(conn, queue.DefaultRabbitQueue, log)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		log.Info("RabbitMQ connected")
		return q, func() { _ = conn.Close() }, nil

	default:
		return queue.NewMemory(0), func() {}, nil
	}
}
