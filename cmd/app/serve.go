package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/bizdesk/internal/auth"
	"github.com/bagdasarian/bizdesk/internal/checkout"
	"github.com/bagdasarian/bizdesk/internal/config"
	"github.com/bagdasarian/bizdesk/internal/db"
	"github.com/bagdasarian/bizdesk/internal/handler"
	"github.com/bagdasarian/bizdesk/internal/handler/server"
	"github.com/bagdasarian/bizdesk/internal/logger"
	"github.com/bagdasarian/bizdesk/internal/repository/postgres"
	"github.com/bagdasarian/bizdesk/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "bizdesk"

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}

	cmd.Flags().Bool("migrate", true, "Apply pending migrations before start")
	cmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return err
	}
	defer log.Sync()

	database, err := db.NewPostgres(cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	log.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if runMigrations, _ := cmd.Flags().GetBool("migrate"); runMigrations {
		version, changed, err := db.Migrate(ctx, database)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("database schema is up to date", zap.Uint("version", version), zap.Bool("changed", changed))
	}

	if cfg.Stripe.APIKey == "" {
		log.Warn("STRIPE_API_KEY is empty, checkout requests will be rejected by the provider")
	}

	clientRepo := postgres.NewClientRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	teamMemberRepo := postgres.NewTeamMemberRepository(database)
	paymentRepo := postgres.NewPaymentRepository(database)
	userRepo := postgres.NewUserRepository(database)
	integrationRepo := postgres.NewIntegrationRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	stripe := checkout.NewStripeClient(cfg.Stripe.BaseURL, cfg.Stripe.APIKey, cfg.Stripe.Timeout, log.Named("stripe"))
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	h := handler.NewHandler(handler.Services{
		Clients:     service.NewClientService(clientRepo),
		Projects:    service.NewProjectService(projectRepo, clientRepo),
		TeamMembers: service.NewTeamMemberService(teamMemberRepo),
		Payments:    service.NewPaymentService(paymentRepo, clientRepo, teamMemberRepo, projectRepo, stripe, log.Named("payments")),
		Users: service.NewUserService(userRepo, tokens, service.UserDefaults{
			OwnerID: cfg.Auth.DefaultOwnerID,
			Email:   cfg.Auth.DefaultOwnerEmail,
			Name:    cfg.Auth.DefaultOwnerName,
		}),
		Integrations: service.NewIntegrationService(integrationRepo),
		Calendar:     service.NewCalendarService(time.Now),
		Dashboard:    service.NewDashboardService(statsRepo, paymentRepo),
	}, log)

	router := server.NewRouter(h,
		handler.Recover(log),
		handler.RequestLogger(log),
		handler.CORS,
		handler.Owner(tokens, cfg.Auth.DefaultOwnerID),
	)

	srv := server.NewServer(router, server.Options{
		Addr:         cfg.HTTP.Addr,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
