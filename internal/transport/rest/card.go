package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/card"
)

type cardService interface {
	CreateCard(ctx context.Context, input card.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, input card.CardIDInput) (*domain.CardDetail, error)
	UpdateCard(ctx context.Context, input card.UpdateCardInput) (*domain.Card, error)
	MoveCard(ctx context.Context, input card.MoveCardInput) (*domain.Card, error)
	ArchiveCard(ctx context.Context, input card.CardIDInput) (*domain.Card, error)
	UnarchiveCard(ctx context.Context, input card.CardIDInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input card.CardIDInput) error
	SetLabels(ctx context.Context, input card.SetLabelsInput) ([]uuid.UUID, error)
	SetMembers(ctx context.Context, input card.SetMembersInput) ([]uuid.UUID, error)
}

// CardHandler serves card endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
	now func() time.Time
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card"), now: time.Now}
}

type createCardRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
}

// updateCardRequest: absent fields are left unchanged; "" clears
// description and cover_color; clear_due removes the due date.
type updateCardRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	ClearDue    bool       `json:"clear_due"`
	DueComplete *bool      `json:"due_complete"`
	CoverColor  *string    `json:"cover_color"`
}

type moveCardRequest struct {
	ListID string `json:"list_id" validate:"required,uuid"`
	Index  *int   `json:"index"   validate:"required"`
}

type setLabelsRequest struct {
	LabelIDs []string `json:"label_ids" validate:"dive,uuid"`
}

type setMembersRequest struct {
	UserIDs []string `json:"user_ids" validate:"dive,uuid"`
}

type idsResponse struct {
	IDs []uuid.UUID `json:"ids"`
}

// Create handles POST /lists/{id}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req createCardRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateCard(r.Context(), card.CreateCardInput{
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(*c, h.now()))
}

// Get handles GET /cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	detail, err := h.svc.GetCard(r.Context(), card.CardIDInput{CardID: cardID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardDetailResponse(*detail, h.now()))
}

// Update handles POST /cards/{id}/update.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateCardRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateCard(r.Context(), card.UpdateCardInput{
		CardID:      cardID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClearDue:    req.ClearDue,
		DueComplete: req.DueComplete,
		CoverColor:  req.CoverColor,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c, h.now()))
}

// Move handles POST /cards/{id}/move.
func (h *CardHandler) Move(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req moveCardRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.MoveCard(r.Context(), card.MoveCardInput{
		CardID: cardID,
		ListID: uuid.MustParse(req.ListID),
		Index:  *req.Index,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c, h.now()))
}

// Archive handles POST /cards/{id}/archive.
func (h *CardHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, h.svc.ArchiveCard)
}

// Unarchive handles POST /cards/{id}/unarchive.
func (h *CardHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, h.svc.UnarchiveCard)
}

func (h *CardHandler) setArchived(w http.ResponseWriter, r *http.Request, op func(context.Context, card.CardIDInput) (*domain.Card, error)) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	c, err := op(r.Context(), card.CardIDInput{CardID: cardID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c, h.now()))
}

// Delete handles POST /cards/{id}/delete.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteCard(r.Context(), card.CardIDInput{CardID: cardID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetLabels handles POST /cards/{id}/labels. The body replaces the card's
// label set.
func (h *CardHandler) SetLabels(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req setLabelsRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ids, err := h.svc.SetLabels(r.Context(), card.SetLabelsInput{CardID: cardID, LabelIDs: parseIDs(req.LabelIDs)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, idsResponse{IDs: nonNilIDs(ids)})
}

// SetMembers handles POST /cards/{id}/members. The body replaces the card's
// assignees.
func (h *CardHandler) SetMembers(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req setMembersRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ids, err := h.svc.SetMembers(r.Context(), card.SetMembersInput{CardID: cardID, UserIDs: parseIDs(req.UserIDs)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, idsResponse{IDs: nonNilIDs(ids)})
}

// parseIDs converts strings already checked by the uuid validator.
func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		ids[i] = uuid.MustParse(s)
	}
	return ids
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
