package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/asistpro/asistencia-backend-go/internal/config"
	"github.com/asistpro/asistencia-backend-go/internal/handler/http/middleware"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	departmentHandler DepartmentHandler,
	positionHandler PositionHandler,
	employeeHandler EmployeeHandler,
	userHandler UserHandler,
	holidayHandler HolidayHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logLevel := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee self-service marking surface. Route names match the
			// mobile client contract.
			r.Route("/attendance", func(r chi.Router) {
				r.Get("/qr-activos", attendanceHandler.ActiveQRCodes)
				r.Post("/marcar", attendanceHandler.Mark)
				r.Get("/mis-marcaciones", attendanceHandler.MyRecords)
				r.Get("/resumen-diario", attendanceHandler.DailySummary)
				r.Get("/estadisticas", attendanceHandler.Statistics)

				// Administration
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)

					r.Route("/records", func(r chi.Router) {
						r.Get("/", attendanceHandler.List)
						r.Post("/", attendanceHandler.CreateManual)
						r.Get("/{id}", attendanceHandler.GetByID)
						r.Put("/{id}", attendanceHandler.Update)
						r.Delete("/{id}", attendanceHandler.Delete)
					})

					r.Route("/qr-codes", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListQRCodes)
						r.Post("/", attendanceHandler.CreateQRCode)
						r.Get("/{id}", attendanceHandler.GetQRCode)
						r.Put("/{id}", attendanceHandler.UpdateQRCode)
						r.Delete("/{id}", attendanceHandler.DeleteQRCode)
					})
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Get("/{id}", holidayHandler.GetByID)
				r.Get("/empresa/{companyID}", holidayHandler.ForCompany)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			// Administrative directory
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/companies", func(r chi.Router) {
					r.Get("/", companyHandler.List)
					r.Post("/", companyHandler.Create)
					r.Get("/{id}", companyHandler.GetByID)
					r.Put("/{id}", companyHandler.Update)
					r.Delete("/{id}", companyHandler.Delete)
				})

				r.Route("/departments", func(r chi.Router) {
					r.Get("/", departmentHandler.List)
					r.Post("/", departmentHandler.Create)
					r.Get("/{id}", departmentHandler.GetByID)
					r.Get("/{id}/children", departmentHandler.Children)
					r.Put("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Delete)
				})

				r.Route("/positions", func(r chi.Router) {
					r.Get("/", positionHandler.List)
					r.Post("/", positionHandler.Create)
					r.Get("/{id}", positionHandler.GetByID)
					r.Get("/{id}/subordinates", positionHandler.Subordinates)
					r.Put("/{id}", positionHandler.Update)
					r.Delete("/{id}", positionHandler.Delete)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/register", employeeHandler.Register)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/{id}", userHandler.GetByID)
					r.Post("/{id}/unlock", userHandler.Unlock)
				})
			})
		})
	})

	return r
}
