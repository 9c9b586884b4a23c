package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/comment"
)

type commentService interface {
	AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	EditComment(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, input comment.DeleteCommentInput) error
}

// CommentHandler serves comment endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type contentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Add handles POST /cards/{id}/comment.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), comment.AddCommentInput{CardID: cardID, Content: req.Content})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

// Edit handles POST /comments/{id}/edit. Only the author may edit.
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.EditComment(r.Context(), comment.EditCommentInput{CommentID: commentID, Content: req.Content})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// Delete handles POST /comments/{id}/delete.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteComment(r.Context(), comment.DeleteCommentInput{CommentID: commentID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
