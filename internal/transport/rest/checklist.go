package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/checklist"
)

type checklistService interface {
	AddChecklist(ctx context.Context, input checklist.AddChecklistInput) (*domain.Checklist, error)
	DeleteChecklist(ctx context.Context, input checklist.ChecklistIDInput) error
	AddItem(ctx context.Context, input checklist.AddItemInput) (*domain.ChecklistItem, error)
	ToggleItem(ctx context.Context, input checklist.ItemIDInput) (*checklist.ToggleResult, error)
}

// ChecklistHandler serves checklist and checklist item endpoints.
type ChecklistHandler struct {
	svc checklistService
	log *slog.Logger
}

// NewChecklistHandler creates a ChecklistHandler.
func NewChecklistHandler(svc checklistService, logger *slog.Logger) *ChecklistHandler {
	return &ChecklistHandler{svc: svc, log: logger.With("handler", "checklist")}
}

type toggleResponse struct {
	Item     checklistItemResponse `json:"item"`
	Progress progressResponse      `json:"progress"`
}

// Add handles POST /cards/{id}/checklist.
func (h *ChecklistHandler) Add(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req nameRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	cl, err := h.svc.AddChecklist(r.Context(), checklist.AddChecklistInput{CardID: cardID, Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChecklistResponse(*cl))
}

// Delete handles POST /checklists/{id}/delete.
func (h *ChecklistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	checklistID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteChecklist(r.Context(), checklist.ChecklistIDInput{ChecklistID: checklistID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /checklists/{id}/item.
func (h *ChecklistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	checklistID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), checklist.AddItemInput{ChecklistID: checklistID, Content: req.Content})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(*item))
}

// Toggle handles POST /checklist-items/{id}/toggle.
func (h *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	res, err := h.svc.ToggleItem(r.Context(), checklist.ItemIDInput{ItemID: itemID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{
		Item:     toItemResponse(res.Item),
		Progress: progressResponse{Completed: res.Progress.Completed, Total: res.Progress.Total},
	})
}
