// Package gymmanager предоставляет маршруты для основного приложения.
package gymmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	answercreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/answer/create"
	answerlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/answer/list"
	answerread "github.com/magabrotheeeer/gym-manager/internal/http/handlers/answer/read"
	checkincreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/checkin/create"
	checkinlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/checkin/list"
	helpordercreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/helporder/create"
	helporderlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/helporder/list"
	plancreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/plan/create"
	planlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/plan/list"
	planread "github.com/magabrotheeeer/gym-manager/internal/http/handlers/plan/read"
	planremove "github.com/magabrotheeeer/gym-manager/internal/http/handlers/plan/remove"
	planupdate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/plan/update"
	registrationcreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/registration/create"
	registrationlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/registration/list"
	registrationread "github.com/magabrotheeeer/gym-manager/internal/http/handlers/registration/read"
	registrationremove "github.com/magabrotheeeer/gym-manager/internal/http/handlers/registration/remove"
	registrationupdate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/registration/update"
	sessioncreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/session/create"
	studentcreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/student/create"
	studentlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/student/list"
	studentread "github.com/magabrotheeeer/gym-manager/internal/http/handlers/student/read"
	studentremove "github.com/magabrotheeeer/gym-manager/internal/http/handlers/student/remove"
	studentupdate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/student/update"
	"github.com/magabrotheeeer/gym-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-manager/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *services.AuthService,
	studentService *services.StudentService,
	planService *services.PlanService,
	registrationService *services.RegistrationService,
	checkinService *services.CheckinService,
	helpOrderService *services.HelpOrderService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/sessions", sessioncreate.New(logger, authService).ServeHTTP)
	r.Post("/students/{studentId}/checkins", checkincreate.New(logger, checkinService).ServeHTTP)
	r.Get("/students/{studentId}/checkins", checkinlist.New(logger, checkinService).ServeHTTP)
	r.Post("/students/{studentId}/help-orders", helpordercreate.New(logger, helpOrderService).ServeHTTP)
	r.Get("/students/{studentId}/help-orders", helporderlist.New(logger, helpOrderService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Get("/students", studentlist.New(logger, studentService).ServeHTTP)
		r.Post("/students", studentcreate.New(logger, studentService).ServeHTTP)
		r.Get("/students/{id}", studentread.New(logger, studentService).ServeHTTP)
		r.Put("/students/{id}", studentupdate.New(logger, studentService).ServeHTTP)
		r.Delete("/students/{id}", studentremove.New(logger, studentService).ServeHTTP)

		r.Get("/plans", planlist.New(logger, planService).ServeHTTP)
		r.Post("/plans", plancreate.New(logger, planService).ServeHTTP)
		r.Get("/plans/{planId}", planread.New(logger, planService).ServeHTTP)
		r.Put("/plans/{planId}", planupdate.New(logger, planService).ServeHTTP)
		r.Delete("/plans/{planId}", planremove.New(logger, planService).ServeHTTP)

		r.Get("/registrations", registrationlist.New(logger, registrationService).ServeHTTP)
		r.Post("/registrations", registrationcreate.New(logger, registrationService).ServeHTTP)
		r.Get("/registrations/{registrationId}", registrationread.New(logger, registrationService).ServeHTTP)
		r.Put("/registrations/{registrationId}", registrationupdate.New(logger, registrationService).ServeHTTP)
		r.Delete("/registrations/{registrationId}", registrationremove.New(logger, registrationService).ServeHTTP)

		r.Get("/help-orders", answerlist.New(logger, helpOrderService).ServeHTTP)
		r.Get("/help-orders/{helpOrderId}/answer", answerread.New(logger, helpOrderService).ServeHTTP)
		r.Post("/help-orders/{helpOrderId}/answer", answercreate.New(logger, helpOrderService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
