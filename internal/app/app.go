// Package app assembles the repositories and services shared by the API
// server and the command line tool.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-calendar-go/internal/config"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/email"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-calendar-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-calendar-go/internal/service/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/service/file"
	holidayService "github.com/cmlabs-hris/hris-calendar-go/internal/service/holiday"
	payrollService "github.com/cmlabs-hris/hris-calendar-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/hris-calendar-go/internal/service/report"
)

type App struct {
	Config *config.Config
	Clock  calendar.Clock
	DB     *database.DB

	JWT        jwt.Service
	Mailer     email.EmailService
	Files      file.FileService
	Holidays   holiday.HolidayService
	Payroll    payroll.PayrollService
	Attendance attendance.AttendanceService
	Reports    report.ReportService
}

// New connects to the database and storage backend and builds every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fileStorage, err := openStorage(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	checkInStart, err := calendar.ParseDate(cfg.Office.CheckInStartDate)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid check-in start date: %w", err)
	}

	mailer, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		db.Close()
		return nil, err
	}

	clock := calendar.NewSystemClock(cfg.Location())

	holidayRepo := postgresql.NewHolidayRepository(db)
	schedulerRepo := postgresql.NewSchedulerWatchRepository(db)
	lopRepo := postgresql.NewLOPRepository(db)
	workProfileRepo := postgresql.NewWorkProfileRepository(db)

	fileService := file.NewFileService(fileStorage, file.Options{URLExpiry: cfg.Storage.URLTTL})
	policy := attendance.OfficePolicy{
		CheckInStartDate: checkInStart,
		UKBranchID:       cfg.Office.UKBranchID,
	}

	return &App{
		Config:     cfg,
		Clock:      clock,
		DB:         db,
		JWT:        jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration),
		Mailer:     mailer,
		Files:      fileService,
		Holidays:   holidayService.NewHolidayService(holidayRepo),
		Payroll:    payrollService.NewPayrollService(clock, schedulerRepo, lopRepo, fileService),
		Attendance: attendanceService.NewAttendanceService(clock, policy, holidayRepo, workProfileRepo),
		Reports:    reportService.NewReportService(clock, holidayRepo),
	}, nil
}

func (a *App) Close() {
	a.DB.Close()
}

func openDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	if !cfg.Database.IAMAuth {
		return database.NewPostgreSQLDB(cfg.DatabaseURL())
	}

	awsCfg, err := storage.LoadAWSConfig(ctx, cfg.AWS.Region, cfg.AWS.Profile)
	if err != nil {
		return nil, err
	}
	return database.NewPostgreSQLDBWithIAM(ctx, cfg.DatabaseURL(), &database.IAMAuth{
		Region:      awsCfg.Region,
		Credentials: awsCfg.Credentials,
	})
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.FileStorage, error) {
	switch cfg.Storage.Type {
	case config.StorageLocal:
		slog.Info("Using local file storage", "base_path", cfg.Storage.BasePath)
		return storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	case config.StorageS3:
		slog.Info("Using S3 file storage", "bucket", cfg.Storage.Bucket, "region", cfg.AWS.Region)
		return storage.NewS3Storage(ctx, storage.S3Config{
			Profile: cfg.AWS.Profile,
			Region:  cfg.AWS.Region,
			Bucket:  cfg.Storage.Bucket,
		})
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}
}
