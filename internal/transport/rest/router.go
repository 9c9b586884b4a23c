package rest

import (
	"net/http"

	"github.com/heartmarshall/boards-backend/internal/transport/middleware"
)

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	Board     *BoardHandler
	List      *ListHandler
	Card      *CardHandler
	Comment   *CommentHandler
	Checklist *ChecklistHandler
	Label     *LabelHandler
	Activity  *ActivityHandler
	Health    *HealthHandler
}

// RouterOptions configures the per-route middleware of NewRouter.
// Nil fields are skipped.
type RouterOptions struct {
	// Gate runs first on every board route; a denial never reaches the handler.
	Gate middleware.Middleware
	// Loaders installs the per-request dataloaders.
	Loaders middleware.Middleware
	// Metrics labels request metrics with the route pattern.
	Metrics *middleware.Metrics
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
}

// NewRouter mounts every endpoint on a ServeMux. Board routes sit behind the
// feature gate and require an authenticated actor; health and metrics do not.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	mux := http.NewServeMux()
	protected := middleware.Chain(opts.Gate, middleware.RequireActor, opts.Loaders)

	handle := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		var handler http.Handler = fn
		for i := len(mws) - 1; i >= 0; i-- {
			handler = mws[i](handler)
		}
		if opts.Metrics != nil {
			handler = opts.Metrics.Instrument(pattern, handler)
		}
		mux.Handle(pattern, handler)
	}
	route := func(pattern string, fn http.HandlerFunc) {
		handle(pattern, fn, protected)
	}

	// Boards
	route("GET /boards", h.Board.List)
	route("POST /boards", h.Board.Create)
	route("GET /boards/{id}", h.Board.Get)
	route("POST /boards/{id}/edit", h.Board.Update)
	route("POST /boards/{id}/archive", h.Board.Archive)
	route("POST /boards/{id}/unarchive", h.Board.Unarchive)
	route("POST /boards/{id}/delete", h.Board.Delete)
	route("GET /boards/{id}/members", h.Board.Members)
	route("POST /boards/{id}/members", h.Board.AddMember)
	route("POST /boards/{id}/members/{user_id}/remove", h.Board.RemoveMember)
	route("POST /boards/{id}/lists", h.List.Create)
	route("GET /boards/{id}/labels", h.Label.List)
	route("POST /boards/{id}/labels", h.Label.Create)
	route("GET /boards/{id}/activity", h.Activity.List)

	// Lists
	route("POST /lists/{id}/rename", h.List.Rename)
	route("POST /lists/{id}/archive", h.List.Archive)
	route("POST /lists/{id}/unarchive", h.List.Unarchive)
	route("POST /lists/{id}/move", h.List.Move)
	route("POST /lists/{id}/cards", h.Card.Create)

	// Cards
	route("GET /cards/{id}", h.Card.Get)
	route("POST /cards/{id}/update", h.Card.Update)
	route("POST /cards/{id}/move", h.Card.Move)
	route("POST /cards/{id}/archive", h.Card.Archive)
	route("POST /cards/{id}/unarchive", h.Card.Unarchive)
	route("POST /cards/{id}/delete", h.Card.Delete)
	route("POST /cards/{id}/labels", h.Card.SetLabels)
	route("POST /cards/{id}/members", h.Card.SetMembers)
	route("POST /cards/{id}/comment", h.Comment.Add)
	route("POST /cards/{id}/checklist", h.Checklist.Add)

	route("POST /comments/{id}/edit", h.Comment.Edit)
	route("POST /comments/{id}/delete", h.Comment.Delete)

	route("POST /checklists/{id}/delete", h.Checklist.Delete)
	route("POST /checklists/{id}/item", h.Checklist.AddItem)
	route("POST /checklist-items/{id}/toggle", h.Checklist.Toggle)

	route("POST /labels/{id}/update", h.Label.Update)
	route("POST /labels/{id}/delete", h.Label.Delete)

	// Ungated
	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}

	return mux
}
