package rest

import (
	"context"
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/transport/dataloader"
	"github.com/SillyFizy/grow/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Submission *SubmissionHandler
	Admin      *AdminHandler
	Catalog    *CatalogHandler
	Location   *LocationHandler
}

// RouterConfig carries what the router needs besides the handlers.
type RouterConfig struct {
	CORS    config.CORSConfig
	Limits  config.LimitsConfig
	Loaders *dataloader.Repos
	// MediaRoot and PermanentPrefix locate promoted plant images. Temporary
	// submission images are never served.
	MediaRoot       string
	PermanentPrefix string
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// NewRouter builds the API mux. Every /api route runs behind recovery,
// request id, CORS, token resolution and request logging. Per-route chains
// add authentication, admin checks and rate limits.
func NewRouter(
	h Handlers,
	cfg RouterConfig,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	media := mediaPrefix + cfg.PermanentPrefix + "/"
	mux.Handle("GET "+media, http.StripPrefix(path.Clean(mediaPrefix), http.FileServer(http.Dir(cfg.MediaRoot))))

	user := middleware.Chain(middleware.RequireUser)
	admin := middleware.Chain(middleware.RequireAdmin)
	loaders := middleware.Middleware(dataloader.Middleware(cfg.Loaders))
	authLimit := limit(limiter, "auth", cfg.Limits.AuthPerMinute)
	submitLimit := limit(limiter, "submission", cfg.Limits.SubmissionPerMinute)

	api := http.NewServeMux()

	api.Handle("POST /api/auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	api.Handle("POST /api/auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	api.Handle("POST /api/auth/refresh", authLimit(http.HandlerFunc(h.Auth.Refresh)))
	api.Handle("POST /api/auth/logout", user(http.HandlerFunc(h.Auth.Logout)))
	api.Handle("GET /api/auth/me", user(http.HandlerFunc(h.Auth.Me)))

	api.Handle("POST /api/submissions", middleware.Chain(middleware.RequireUser, submitLimit)(http.HandlerFunc(h.Submission.Create)))
	api.Handle("GET /api/submissions/mine", user(http.HandlerFunc(h.Submission.Mine)))

	api.Handle("GET /api/admin/submissions", admin(http.HandlerFunc(h.Admin.ListSubmissions)))
	api.Handle("GET /api/admin/submissions/{id}", admin(http.HandlerFunc(h.Admin.GetSubmission)))
	api.Handle("POST /api/admin/submissions/{id}/approve", admin(http.HandlerFunc(h.Admin.Approve)))
	api.Handle("POST /api/admin/submissions/approve", admin(http.HandlerFunc(h.Admin.ApproveMany)))
	api.Handle("POST /api/admin/submissions/reject", admin(http.HandlerFunc(h.Admin.Reject)))
	api.Handle("POST /api/admin/families", admin(http.HandlerFunc(h.Admin.CreateFamily)))
	api.Handle("DELETE /api/admin/families/{id}", admin(http.HandlerFunc(h.Admin.DeleteFamily)))
	api.Handle("POST /api/admin/plants", admin(http.HandlerFunc(h.Admin.CreatePlant)))
	api.Handle("DELETE /api/admin/plants/{id}", admin(http.HandlerFunc(h.Admin.DeletePlant)))

	api.HandleFunc("GET /api/families", h.Catalog.ListFamilies)
	api.HandleFunc("GET /api/families/{id}", h.Catalog.GetFamily)
	api.Handle("GET /api/families/{id}/plants", loaders(http.HandlerFunc(h.Catalog.FamilyPlants)))
	api.Handle("GET /api/plants", loaders(http.HandlerFunc(h.Catalog.ListPlants)))
	api.HandleFunc("GET /api/plants/{id}", h.Catalog.GetPlant)
	api.HandleFunc("GET /api/plants/{id}/locations", h.Location.PlantStats)

	api.Handle("POST /api/locations", user(http.HandlerFunc(h.Location.Create)))
	api.Handle("GET /api/locations", user(http.HandlerFunc(h.Location.List)))
	api.Handle("GET /api/locations/stats", user(http.HandlerFunc(h.Location.UserStats)))
	api.Handle("GET /api/locations/{id}", user(http.HandlerFunc(h.Location.Get)))
	api.Handle("PATCH /api/locations/{id}", user(http.HandlerFunc(h.Location.Update)))
	api.Handle("DELETE /api/locations/{id}", user(http.HandlerFunc(h.Location.Delete)))

	mux.Handle("/api/", middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		middleware.Logger(logger),
	)(api))

	return mux
}

func limit(rl *middleware.RateLimiter, scope string, perMinute int) middleware.Middleware {
	if rl == nil || perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Limit(scope, perMinute)
}
