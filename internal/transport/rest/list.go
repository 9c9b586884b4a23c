package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/list"
)

type listService interface {
	CreateList(ctx context.Context, input list.CreateListInput) (*domain.List, error)
	RenameList(ctx context.Context, input list.RenameListInput) (*domain.List, error)
	ArchiveList(ctx context.Context, input list.ListIDInput) (*domain.List, error)
	UnarchiveList(ctx context.Context, input list.ListIDInput) (*domain.List, error)
	MoveList(ctx context.Context, input list.MoveListInput) (*domain.List, error)
}

// ListHandler serves list endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

// moveRequest carries a target index. Range checks are left to the service
// so an out-of-range index reports invalid_position.
type moveRequest struct {
	Index *int `json:"index" validate:"required"`
}

// Create handles POST /boards/{id}/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req nameRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.CreateList(r.Context(), list.CreateListInput{BoardID: boardID, Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListResponse(*l))
}

// Rename handles POST /lists/{id}/rename.
func (h *ListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req nameRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.RenameList(r.Context(), list.RenameListInput{ListID: listID, Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(*l))
}

// Archive handles POST /lists/{id}/archive.
func (h *ListHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, h.svc.ArchiveList)
}

// Unarchive handles POST /lists/{id}/unarchive.
func (h *ListHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, h.svc.UnarchiveList)
}

func (h *ListHandler) setArchived(w http.ResponseWriter, r *http.Request, op func(context.Context, list.ListIDInput) (*domain.List, error)) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	l, err := op(r.Context(), list.ListIDInput{ListID: listID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(*l))
}

// Move handles POST /lists/{id}/move.
func (h *ListHandler) Move(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req moveRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.MoveList(r.Context(), list.MoveListInput{ListID: listID, Index: *req.Index})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(*l))
}
