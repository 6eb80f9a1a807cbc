package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/siteledger/siteledger-backend-go/internal/config"
	"github.com/siteledger/siteledger-backend-go/internal/handler/http/middleware"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Advance    AdvanceHandler
	Payment    PaymentHandler
	Vehicle    VehicleHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Events     EventsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "siteledger"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	// Uploaded employee photos.
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-in", h.Auth.SignIn)
			r.Post("/register", h.Auth.RegisterViewer)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/sse-token", h.Auth.SSEToken)
			})
		})

		// SSE: authenticated by short-lived query token, not the verifier.
		r.Get("/events/{collection}", h.Events.Stream)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/dashboard", h.Dashboard.Summary)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.GetByID)
				r.Get("/{id}/attendance", h.Attendance.ListByEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/week", h.Attendance.WeekGrid)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/present", h.Attendance.MarkPresent)
					r.Post("/absent", h.Attendance.MarkAbsent)
					r.Post("/late", h.Attendance.MarkLate)
					r.Post("/overtime", h.Attendance.MarkOvertime)
					r.Post("/half-day", h.Attendance.MarkHalfDay)
					r.Post("/custom", h.Attendance.MarkCustom)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", h.Advance.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Advance.Create)
					r.Delete("/{id}", h.Advance.Delete)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.Payment.List)
				r.Get("/console", h.Payment.Console)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Payment.Record)
				})
			})

			r.Route("/vehicles", func(r chi.Router) {
				r.Get("/", h.Vehicle.List)
				r.Get("/fuel", h.Vehicle.ListFuel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Vehicle.Create)
					r.Post("/fuel", h.Vehicle.AddFuel)
					r.Delete("/fuel/{id}", h.Vehicle.DeleteFuel)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", h.Report.MonthlyAll)
				r.Get("/monthly/{id}", h.Report.Monthly)
				r.Get("/payslip/{id}", h.Report.Payslip)
				r.Get("/payslip/{id}/text", h.Report.PayslipText)
			})
		})
	})

	return r
}
