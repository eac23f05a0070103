package rest

import (
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/config"
	"github.com/wahidrahimi/ragavani-backend/internal/transport/middleware"
)

// Handlers bundles the endpoint handlers wired into the router.
type Handlers struct {
	Raga      *RagaHandler
	Account   *AccountHandler
	Recording *RecordingHandler
	Favorites *FavoritesHandler
	Preset    *PresetHandler
	Version   *VersionHandler
	Report    *ReportHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP handler tree with the standard middleware chain.
// limiter may be nil when rate limiting is disabled.
func NewRouter(logger *slog.Logger, cfg config.Config, h Handlers, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "RagaVani API is running")
	})

	// Catalog.
	mux.HandleFunc("POST /ragas", h.Raga.Create)
	mux.HandleFunc("POST /ragas/list", h.Raga.CreateBatch)
	mux.HandleFunc("GET /ragas", h.Raga.List)
	mux.HandleFunc("GET /ragas/{id}", h.Raga.Get)
	mux.HandleFunc("PATCH /ragas/{id}", h.Raga.Update)
	mux.HandleFunc("DELETE /ragas/{id}", h.Raga.Delete)

	// Accounts.
	mux.HandleFunc("POST /signup", h.Account.SignUp)
	mux.HandleFunc("GET /user/{userId}", h.Account.GetUser)

	// Recordings.
	mux.HandleFunc("POST /user/{userId}/recording", h.Recording.Create)
	mux.HandleFunc("DELETE /user/{userId}/recording/{recordingId}", h.Recording.Delete)
	mux.HandleFunc("GET /getAllMyRecordings/{userId}", h.Recording.ListAll)
	mux.HandleFunc("GET /getMyPublicRecordings/{userId}", h.Recording.ListPublic)
	mux.HandleFunc("GET /getMyPrivateRecordings/{userId}", h.Recording.ListPrivate)

	// Favorites: copies and references.
	mux.HandleFunc("POST /user/{userId}/favorite_raga", h.Favorites.AddCopy)
	mux.HandleFunc("GET /user/{userId}/favorite_ragas", h.Favorites.ListCopies)
	mux.HandleFunc("DELETE /user/{userId}/favorite_ragas/{favoriteId}", h.Favorites.DeleteCopy)
	mux.HandleFunc("POST /add_raga_from_ragas_to_user_favorite_raga", h.Favorites.AddFromCatalog)
	mux.HandleFunc("POST /user/{userId}/favorite_ragas_from_ragas", h.Favorites.AddReference)
	mux.HandleFunc("GET /user/{userId}/favorite_ragas_from_ragas", h.Favorites.ResolveReferences)
	mux.HandleFunc("DELETE /user/{userId}/favorite_ragas_from_ragas/{ragaId}", h.Favorites.DeleteReference)

	// Presets.
	mux.HandleFunc("POST /user/{userId}/presets", h.Preset.Create)
	mux.HandleFunc("GET /user/{userId}/presets", h.Preset.List)
	mux.HandleFunc("DELETE /user/{userId}/presets/{presetId}", h.Preset.Delete)

	// Versions.
	mux.HandleFunc("POST /versions", h.Version.Add)
	mux.HandleFunc("GET /versions/{collection_name}", h.Version.Get)

	// Aggregate views.
	mux.HandleFunc("GET /getAllUsersPublicRecordings", h.Report.AllUsersPublicRecordings)
	mux.HandleFunc("GET /getAllUsersInfo", h.Report.AllUsersInfo)

	// Health.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if limiter != nil {
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	return middleware.Chain(mws...)(mux)
}
