package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/domain/attendance"
	"ems/internal/domain/employee"
	"ems/internal/domain/leave"
	"ems/internal/domain/meeting"
	"ems/internal/domain/payroll"
	"ems/internal/domain/task"
	"ems/internal/platform/config"
	"ems/internal/platform/db"
	"ems/internal/platform/email"
	attendancehandler "ems/internal/transport/http/handlers/attendance"
	employeehandler "ems/internal/transport/http/handlers/employee"
	leavehandler "ems/internal/transport/http/handlers/leave"
	meetinghandler "ems/internal/transport/http/handlers/meeting"
	payrollhandler "ems/internal/transport/http/handlers/payroll"
	taskhandler "ems/internal/transport/http/handlers/task"
	"ems/internal/transport/http/middleware"
	"ems/migrations"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New wires the whole server: pool, migrations, stores, services and routes.
// Tests drive the returned App directly through Router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrations.Files); err != nil {
			pool.Close()
			return nil, err
		}
	}

	notifier := email.New(cfg)

	employeeStore := employee.NewStore(pool)
	employeeService := employee.NewService(employeeStore, notifier, cfg.CompanyName, cfg.PortalURL)

	attendanceStore := attendance.NewStore(pool)
	attendanceService := attendance.NewService(attendanceStore, employeeStore, cfg.RestDays)

	payrollStore := payroll.NewStore(pool)
	renderer := payroll.NewRenderer(cfg.MaxConcurrentSlips, cfg.SlipRenderTimeout)
	payrollService := payroll.NewService(payrollStore, employeeStore, notifier, renderer, cfg.CompanyName, cfg.PortalURL)

	taskService := task.NewService(task.NewStore(pool), employeeStore)
	leaveService := leave.NewService(leave.NewStore(pool), employeeStore)
	meetingService := meeting.NewService(meeting.NewStore(pool))

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems"),
		slog.String("env", cfg.Environment),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Actor-ID", "X-Request-ID"},
		MaxAge:           300,
	}))
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Actor)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		employeehandler.NewHandler(employeeService, attendanceService).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		taskhandler.NewHandler(taskService).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService).RegisterRoutes(r)
		meetinghandler.NewHandler(meetingService).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}, nil
}

func (a *App) Close() {
	a.DB.Close()
}

// Run starts the HTTP server and blocks until it fails.
func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	return http.ListenAndServe(cfg.Addr, app.Router)
}
