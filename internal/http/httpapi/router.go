package httpapi

import (
	"net/http"

	"pixedit/internal/http/handlers"
	"pixedit/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.Locale(app.Config.DefaultLocale),
	)
	if len(app.Config.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(app.Config.CORSAllowedOrigins))
	}

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/session/state", app.SessionState)

	r.Route("/v1/images", func(r chi.Router) {
		r.Post("/upload", app.ImageUpload)
		r.Post("/generate", app.ImageGenerate)
	})

	r.Get("/", app.Index)

	return r
}
