package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
	// UploadsDir is served under /uploads when local storage is used.
	UploadsDir string
}

type Handlers struct {
	Calendar   CalendarHandler
	Payroll    PayrollHandler
	Attendance AttendanceHandler
	Holiday    HolidayHandler
	File       FileHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	if cfg.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	}

	// authenticated admits verified, unrevoked access tokens.
	authenticated := func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/financial-year", h.Calendar.FinancialYear)
			r.Get("/financial-year/label", h.Calendar.FinancialYearLabel)
			r.Get("/working-days", h.Calendar.WorkingDays)
			r.Get("/weekend-days", h.Calendar.WeekendDays)
			r.Get("/weekend-dates", h.Calendar.WeekendDates)
			r.Get("/saturdays", h.Calendar.Saturdays)
			r.Get("/day-names", h.Calendar.DayNames)
			r.Get("/month", h.Calendar.MonthCalendar)
			r.Get("/export", h.Calendar.Export)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/lop/calculate", h.Payroll.CalculateLOP)
			r.Get("/payslip/status", h.Payroll.PayslipStatus)
			r.Get("/payslip/template", h.Payroll.PayslipTemplate)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/first-working-day", h.Attendance.FirstWorkingDay)
			r.Get("/office-working-day", h.Attendance.OfficeWorkingDay)
			r.Get("/hours", h.Attendance.Hours)

			// Requires authentication
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/previous-working-day", h.Attendance.PreviousWorkingDay)
				r.Get("/check-out-time", h.Attendance.CheckOutTime)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)

			// Requires authentication
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/", h.Holiday.Create)
				r.Delete("/{id}", h.Holiday.Delete)
			})
		})

		r.Route("/files", func(r chi.Router) {
			authenticated(r)
			r.Get("/url", h.File.URL)
			r.Post("/profile-image", h.File.UploadProfileImage)
		})
	})
	return r
}
