package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/label"
)

type labelService interface {
	ListLabels(ctx context.Context, input label.ListLabelsInput) ([]domain.Label, error)
	CreateLabel(ctx context.Context, input label.CreateLabelInput) (*domain.Label, error)
	UpdateLabel(ctx context.Context, input label.UpdateLabelInput) (*domain.Label, error)
	DeleteLabel(ctx context.Context, input label.DeleteLabelInput) error
}

// LabelHandler serves label endpoints.
type LabelHandler struct {
	svc labelService
	log *slog.Logger
}

// NewLabelHandler creates a LabelHandler.
func NewLabelHandler(svc labelService, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{svc: svc, log: logger.With("handler", "label")}
}

// Label names may be empty: a color-only label is valid.
type createLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color" validate:"required,label_color"`
}

type updateLabelRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" validate:"omitempty,label_color"`
}

// List handles GET /boards/{id}/labels.
func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	labels, err := h.svc.ListLabels(r.Context(), label.ListLabelsInput{BoardID: boardID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelResponses(labels))
}

// Create handles POST /boards/{id}/labels.
func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req createLabelRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.CreateLabel(r.Context(), label.CreateLabelInput{BoardID: boardID, Name: req.Name, Color: req.Color})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLabelResponse(*l))
}

// Update handles POST /labels/{id}/update.
func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	labelID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateLabelRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.UpdateLabel(r.Context(), label.UpdateLabelInput{LabelID: labelID, Name: req.Name, Color: req.Color})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelResponse(*l))
}

// Delete handles POST /labels/{id}/delete.
func (h *LabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	labelID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteLabel(r.Context(), label.DeleteLabelInput{LabelID: labelID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
