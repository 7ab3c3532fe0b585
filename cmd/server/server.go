package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

var configPath string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the sheet gRPC server. Settings come from flags, RPG_SHEET_*
environment variables and an optional YAML file, in that order of precedence.`,
	RunE: runServer,
}

func init() {
	flags := serverCmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.Int("port", 50051, "gRPC server port")
	flags.String("storage", config.StorageMemory, "sheet storage driver (memory|redis)")
	flags.String("redis-addr", "localhost:6379", "Redis address for the redis driver")
	flags.Duration("redis-ttl", 0, "expire sheets idle for this long (0 keeps them)")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("log-format", "json", "log format (json|console)")
	flags.String("initial-method", "default", "attribute method for new sheets (default|3d6|4d6_drop_lowest)")
}

// flagKeys maps server flags onto configuration keys
var flagKeys = map[string]string{
	"port":           "server.port",
	"storage":        "storage.driver",
	"redis-addr":     "storage.redis.addr",
	"redis-ttl":      "storage.redis.ttl",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
	"initial-method": "sheet.initial_method",
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return config.Config{}, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return config.LoadFromViper(v)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newSheetRepository(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeRepo()

	bus := events.NewBus()
	subscribeNotifications(bus, logger.Named("notify"))

	orchestrator, err := sheet.New(&sheet.Config{
		SheetRepo:     repo,
		IDGenerator:   idgen.NewUUID("sheet"),
		Clock:         clock.New(),
		DiceRoller:    dice.DefaultRoller,
		Notifier:      sheet.NewEventNotifier(bus, logger.Named("events")),
		Logger:        logger.Named("sheet"),
		DefaultMethod: sheet.Method(cfg.Sheet.InitialMethod),
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SheetService: orchestrator})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := grpc_logging.LoggerFunc(zapLogFunc(logger.Named("grpc")))
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Driver),
		)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()
		gracefulStop(srv, cfg.Server.ShutdownTimeout, logger)
		return nil
	})

	return g.Wait()
}

// subscribeNotifications logs every rejected skill increment published on bus
func subscribeNotifications(bus events.EventBus, logger *zap.Logger) string {
	return bus.SubscribeFunc(sheet.EventSkillBudgetExceeded, 0, func(_ context.Context, e events.Event) error {
		fields := []zap.Field{zap.String("event", sheet.EventSkillBudgetExceeded)}
		if src := e.Source(); src != nil {
			fields = append(fields, zap.String("sheet_id", src.GetID()))
		}
		for _, key := range []string{sheet.EventKeySkill, sheet.EventKeySpent, sheet.EventKeyAvailable} {
			if v, ok := e.Context().Get(key); ok {
				fields = append(fields, zap.Any(key, v))
			}
		}
		logger.Info(rules.BudgetExceededMessage, fields...)
		return nil
	})
}

// gracefulStop waits up to timeout for in-flight calls before stopping hard
func gracefulStop(srv *grpc.Server, timeout time.Duration, logger *zap.Logger) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	if timeout <= 0 {
		<-stopped
		logger.Info("server stopped gracefully")
		return
	}

	select {
	case <-time.After(timeout):
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}

func newSheetRepository(ctx context.Context, cfg config.StorageConfig) (sheetrepo.Repository, func(), error) {
	switch cfg.Driver {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
		}

		repo, err := sheetrepo.NewRedisRepository(&sheetrepo.RedisConfig{
			Client: client,
			TTL:    cfg.Redis.TTL,
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	default:
		return sheetrepo.NewInMemory(), func() {}, nil
	}
}

// zapLogFunc adapts zap to the grpc logging interceptor
func zapLogFunc(logger *zap.Logger) func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	return func(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
		zapFields := make([]zap.Field, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				key = fmt.Sprint(fields[i])
			}
			zapFields = append(zapFields, zap.Any(key, fields[i+1]))
		}

		switch level {
		case grpc_logging.LevelDebug:
			logger.Debug(msg, zapFields...)
		case grpc_logging.LevelInfo:
			logger.Info(msg, zapFields...)
		case grpc_logging.LevelWarn:
			logger.Warn(msg, zapFields...)
		case grpc_logging.LevelError:
			logger.Error(msg, zapFields...)
		default:
			logger.Info(msg, zapFields...)
		}
	}
}
