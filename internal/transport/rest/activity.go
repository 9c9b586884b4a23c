package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/activity"
)

type activityService interface {
	ListActivity(ctx context.Context, input activity.ListActivityInput) (*domain.ActivityPage, error)
}

// ActivityHandler serves the board activity feed.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// List handles GET /boards/{id}/activity?before=<cursor>&limit=<n>.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	var limit int
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
	}

	page, err := h.svc.ListActivity(r.Context(), activity.ListActivityInput{
		BoardID: boardID,
		Before:  q.Get("before"),
		Limit:   limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityPageResponse(*page))
}
