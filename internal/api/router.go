package api

import (
	"net/http"
	"time"

	// Registers the API definitions served by the Swagger UI.
	_ "esg-assistant/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// RouterOptions holds the transport settings of the router.
type RouterOptions struct {
	CORSOrigins        []string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// NewRouter creates the chi router with every route of the application.
func NewRouter(chatHandler *ChatHandler, prefHandler *PreferenceHandler, log *zap.Logger, opts RouterOptions) *chi.Mux {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Liveness only; the analysis service is probed separately at startup.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RateLimitPerMinute > 0 {
			r.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(opts.RequestTimeout))

			// --- Conversations ---
			r.Get("/conversations", chatHandler.ListConversations)
			r.Post("/conversations", chatHandler.CreateConversation)
			r.Get("/conversations/active", chatHandler.GetActiveConversation)
			r.Post("/conversations/import", chatHandler.ImportConversation)
			r.Get("/conversations/{conversationID}", chatHandler.GetConversation)
			r.Post("/conversations/{conversationID}/select", chatHandler.SelectConversation)
			r.Put("/conversations/{conversationID}/title", chatHandler.UpdateConversationTitle)
			r.Delete("/conversations/{conversationID}", chatHandler.DeleteConversation)
			r.Get("/conversations/{conversationID}/export", chatHandler.ExportConversation)

			// --- Preferences & companies ---
			r.Get("/preferences/theme", prefHandler.GetTheme)
			r.Put("/preferences/theme", prefHandler.UpdateTheme)
			r.Get("/companies", prefHandler.ListCompanies)
		})

		// Exchanges wait on the analysis service, which has its own timeouts.
		r.Group(func(r chi.Router) {
			r.Post("/messages", chatHandler.SendMessage)
			r.Post("/documents", chatHandler.UploadDocument)
		})
	})

	return r
}
