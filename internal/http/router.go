package http

import (
	"net/http"

	"daylog/internal/activity"
	"daylog/internal/auth"
	"daylog/internal/config"
	"daylog/internal/http/handler"
	mw "daylog/internal/http/middleware"
	"daylog/internal/option"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc, BcryptCost: cfg.BcryptCost}
	actSvc := &activity.Service{DB: db}
	actH := &handler.ActivityHandler{Svc: actSvc}
	actReadH := &handler.ActivityReadHandler{Svc: actSvc}
	optH := &handler.OptionHandler{Svc: &option.Service{DB: db}}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		r.Route("/activities", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Post("/", actH.Create)
			r.Get("/", actReadH.List)
			r.Get("/search", actReadH.Search)
			r.Get("/today", actReadH.Today)
			r.Get("/fixed", actReadH.Fixed)

			r.Get("/{id}", actReadH.Get)
			r.Put("/{id}", actH.Update)
			r.Put("/{id}/end", actH.Complete)
			r.Put("/{id}/details/{detailId}", actH.UpdateDetail)
			r.Delete("/{id}", actH.Delete)
		})

		r.Route("/custom-options", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", optH.List)
			r.Post("/", optH.Add)
			r.Delete("/{id}", optH.Delete)
		})
	})

	return r
}
