package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/app"
	"github.com/cmlabs-hris/hris-calendar-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-calendar-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	metrics.Init()

	scheduler := cron.NewScheduler()
	payrollJobs := cron.NewPayrollJobs(application.Clock, application.Payroll, application.Mailer, cfg.SMTP.LOPReportRecipients)
	payrollJobs.RegisterJobs(scheduler, cfg.App.CronInterval)
	scheduler.Start()
	defer scheduler.Stop()

	routerCfg := appHTTP.RouterConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}
	if cfg.Storage.Type == config.StorageLocal {
		routerCfg.UploadsDir = cfg.Storage.BasePath
	}

	router := appHTTP.NewRouter(routerCfg, application.JWT, appHTTP.Handlers{
		Calendar:   appHTTP.NewCalendarHandler(application.Clock, application.Reports),
		Payroll:    appHTTP.NewPayrollHandler(application.Payroll),
		Attendance: appHTTP.NewAttendanceHandler(application.Attendance),
		Holiday:    appHTTP.NewHolidayHandler(application.Clock, application.Holidays),
		File:       appHTTP.NewFileHandler(application.Files),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
