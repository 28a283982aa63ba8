package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lifeville/hms/internal/config"
	"github.com/lifeville/hms/internal/domain/admission"
	"github.com/lifeville/hms/internal/domain/appointment"
	"github.com/lifeville/hms/internal/domain/bed"
	"github.com/lifeville/hms/internal/domain/doctor"
	"github.com/lifeville/hms/internal/domain/labtest"
	"github.com/lifeville/hms/internal/domain/overview"
	"github.com/lifeville/hms/internal/domain/patient"
	"github.com/lifeville/hms/internal/domain/symptom"
	"github.com/lifeville/hms/internal/domain/vitalevents"
	"github.com/lifeville/hms/internal/platform/auth"
	"github.com/lifeville/hms/internal/platform/db"
	"github.com/lifeville/hms/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware([]byte(cfg.JWTSecret)))
	}

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")

	// Patients
	patientRepo := patient.NewRepoPG(pool)
	patientSvc := patient.NewService(patientRepo)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)

	// Doctors
	doctorRepo := doctor.NewRepoPG(pool)
	doctorSvc := doctor.NewService(doctorRepo)
	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1)

	// Appointments
	apptRepo := appointment.NewRepoPG(pool)
	apptSvc := appointment.NewService(apptRepo)
	appointment.NewHandler(apptSvc).RegisterRoutes(apiV1)

	// Beds
	bedTypeRepo := bed.NewTypeRepoPG(pool)
	bedGroupRepo := bed.NewGroupRepoPG(pool)
	bedRepo := bed.NewRepoPG(pool)
	bedSvc := bed.NewService(bedTypeRepo, bedGroupRepo, bedRepo)
	bed.NewHandler(bedSvc).RegisterRoutes(apiV1)

	// Lab tests
	labRepo := labtest.NewRepoPG(pool)
	labSvc := labtest.NewService(labRepo)
	labtest.NewHandler(labSvc).RegisterRoutes(apiV1)

	// Admissions allocate and free beds through the bed service.
	admissionRepo := admission.NewRepoPG(pool)
	admissionSvc := admission.NewService(admissionRepo, bedSvc)
	admission.NewHandler(admissionSvc).RegisterRoutes(apiV1)

	// Births and deaths; death registration flags the patient record.
	birthRepo := vitalevents.NewBirthRepoPG(pool)
	deathRepo := vitalevents.NewDeathRepoPG(pool)
	vitalSvc := vitalevents.NewService(birthRepo, deathRepo, patientSvc)
	vitalevents.NewHandler(vitalSvc).RegisterRoutes(apiV1)

	// Symptom types
	symptomRepo := symptom.NewRepoPG(pool)
	symptomSvc := symptom.NewService(symptomRepo)
	symptom.NewHandler(symptomSvc).RegisterRoutes(apiV1)

	// Dashboard overview
	overviewRepo := overview.NewRepoPG(pool)
	overviewSvc := overview.NewService(overviewRepo)
	overview.NewHandler(overviewSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
