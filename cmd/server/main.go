package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"literaryhub/internal/adapters/cache"
	"literaryhub/internal/adapters/http/handlers"
	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/adapters/http/routes"
	"literaryhub/internal/adapters/messaging"
	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/config"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/clock"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	_ "literaryhub/docs" // Swagger docs
)

// @title LiteraryHub API
// @version 1.0
// @description Thư viện văn học Việt Nam: danh mục sách, mượn trả, tin tức.

// @contact.name API Support

// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the CLI; running it without a subcommand serves the API
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "literaryhub",
		Short:         "LiteraryHub library backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			config.CloseDatabase(db)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Migrate and load the admin account and sample catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer config.CloseDatabase(db)
			return config.NewSeeder(db, cfg.Admin).Run()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Mark overdue borrows once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer config.CloseDatabase(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			n, err := newSweeper(cfg, db).SweepOverdue(ctx)
			if err != nil {
				return err
			}
			log.Printf("⏰ Marked %d borrows overdue", n)
			return nil
		},
	})

	return cmd
}

// bootstrap loads configuration, connects and migrates the database
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ Failed to load configuration: %v", err)
		return nil, nil, err
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Printf("❌ Failed to connect to database: %v", err)
		return nil, nil, err
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Printf("❌ Failed to auto migrate: %v", err)
		config.CloseDatabase(db)
		return nil, nil, err
	}
	log.Println("✅ Database migration completed")

	return cfg, db, nil
}

func newSweeper(cfg *config.Config, db *gorm.DB) *services.BorrowService {
	return services.NewBorrowService(
		repositories.NewBorrowRepository(db),
		cfg.Policy,
		clock.NewSystem(cfg.Location),
	)
}

func serve() error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db)

	if err := config.NewSeeder(db, cfg.Admin).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	infra := routes.Infra{Clock: clock.NewSystem(cfg.Location)}

	// Optional Redis backing for the rate limiters
	if cfg.Redis.Enabled() {
		storage := cache.NewRedisStorage(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, "literaryhub:limiter:")
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := storage.Ping(ctx)
		cancel()
		if err != nil {
			log.Printf("⚠️ Warning: Redis unavailable, rate limits stay in memory: %v", err)
			_ = storage.Close()
		} else {
			log.Printf("✅ Redis connected [%s]", cfg.Redis.Addr)
			infra.Storage = storage
			infra.HealthChecks = map[string]handlers.HealthCheck{"redis": storage.Ping}
			defer storage.Close()
		}
	}

	// Optional broker for activity events
	if cfg.AMQP.Enabled() {
		publisher, err := messaging.NewActivityPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Printf("⚠️ Warning: AMQP unavailable, activity stays in the database only: %v", err)
		} else {
			infra.Publisher = publisher
			defer publisher.Close()
		}
	}

	// Overdue sweep
	cronService := services.NewCronService(newSweeper(cfg, db), cfg.Cron.OverdueSweep, cfg.Location)
	if err := cronService.Start(); err != nil {
		log.Printf("❌ Failed to start cron: %v", err)
		return err
	}
	defer cronService.Stop()

	app := routes.NewApp()
	middleware.Setup(app, cfg, infra.Storage)
	routes.Setup(app, db, cfg, infra)

	// Graceful shutdown
	go gracefulShutdown(app)

	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
		return err
	}
	return nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
