package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/dpletzke/LightBnB/internal/consts"
	"github.com/dpletzke/LightBnB/internal/controller"
	"github.com/dpletzke/LightBnB/internal/metrics"
	"github.com/dpletzke/LightBnB/internal/service"
)

// Dependencies injected into handlers
type Dependencies struct {
	Users        *service.UserService
	Properties   *service.PropertyService
	Reservations *service.ReservationService
	Metrics      *metrics.Metrics
	Version      string
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(otelchi.Middleware(consts.ServiceName))
	r.Use(accessLog)

	r.Get("/api/v1/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/v1/version", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(dep.Version))
	})
	if dep.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", dep.Metrics.Handler())
	}

	propertyCtrl := controller.NewPropertyController(dep.Properties)
	userCtrl := controller.NewUserController(dep.Users)
	reservationCtrl := controller.NewReservationController(dep.Reservations)

	r.Route("/api/v1/properties", func(r chi.Router) {
		r.Get("/", propertyCtrl.Search)
		r.Post("/", propertyCtrl.Create)
	})

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", userCtrl.GetByEmail)
		r.Post("/", userCtrl.Create)
		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			userCtrl.Get(w, req, chi.URLParam(req, "id"))
		})
	})

	r.Get("/api/v1/guests/{guestID}/reservations", func(w http.ResponseWriter, req *http.Request) {
		reservationCtrl.ListForGuest(w, req, chi.URLParam(req, "guestID"))
	})

	return r
}
