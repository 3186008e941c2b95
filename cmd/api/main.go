// @title        Splitbill API
// @version      1.0
// @description  Shared expenses, split calculation and debt settlement for groups.
// @host         localhost:8080
// @BasePath     /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/splitbill/docs"
	"github.com/fkhayef/splitbill/internal/config"
	"github.com/fkhayef/splitbill/internal/database"
	"github.com/fkhayef/splitbill/internal/events"
	"github.com/fkhayef/splitbill/internal/expense"
	"github.com/fkhayef/splitbill/internal/expense/split"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/internal/notification"
	"github.com/fkhayef/splitbill/internal/settlement"
	"github.com/fkhayef/splitbill/internal/user"
	mw "github.com/fkhayef/splitbill/pkg/middleware"
	"github.com/fkhayef/splitbill/pkg/response"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.CreateSchema(ctx, db, cfg.DatabaseDriver); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	var nrApp *newrelic.Application
	if cfg.NewRelicEnabled() {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelicAppName),
			newrelic.ConfigLicense(cfg.NewRelicLicense),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			slog.Warn("failed to initialize New Relic", "error", err)
			nrApp = nil
		}
	}

	// Audit events are saved off the request path
	eventStore := events.NewSQLStore(db)
	eventWorker := events.NewWorker(eventStore, cfg.EventBufferSize)
	eventWorker.Start()

	// User feature
	userService := user.NewService(user.NewRepository(db))
	userHandler := user.NewHandler(userService)

	// Notification feature
	notificationService := notification.NewService(notification.NewRepository(db))
	notificationHandler := notification.NewHandler(notificationService)

	// Group feature
	groupService := group.NewService(group.NewRepository(db), userService, notificationService, eventWorker)
	groupHandler := group.NewHandler(groupService)

	// Expense feature (split calculator injected)
	calculator := split.NewCalculator(split.NewSplitStrategyFactory())
	expenseService := expense.NewService(expense.NewRepository(db), calculator, groupService, notificationService, eventWorker)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementService := settlement.NewService(settlement.NewRepository(db), groupService, expenseService, notificationService, eventWorker)
	settlementHandler := settlement.NewHandler(settlementService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.NewRelic(nrApp))
	r.Use(mw.Identity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		// Users are the identity directory and stay open for sign up
		r.Mount("/users", userHandler.Routes())

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireUser)

			r.Mount("/groups", groupHandler.Routes(settlementHandler.RegisterGroupRoutes))
			r.Mount("/expenses", expenseHandler.Routes())
			r.Mount("/settlements", settlementHandler.Routes())
			r.Mount("/notifications", notificationHandler.Routes())
			r.Mount("/events", events.NewHandler(eventStore).Routes())
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if err := eventWorker.Shutdown(shutdownCtx); err != nil {
		slog.Error("event worker shutdown failed", "error", err, "dropped_events", eventWorker.Dropped())
	}
	if nrApp != nil {
		nrApp.Shutdown(cfg.ShutdownTimeout)
	}

	slog.Info("server stopped")
}
