package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/board"
	"github.com/heartmarshall/boards-backend/internal/transport/rest/dataloader"
)

type boardService interface {
	ListBoards(ctx context.Context, input board.ListBoardsInput) ([]domain.Board, error)
	CreateBoard(ctx context.Context, input board.CreateBoardInput) (*domain.Board, error)
	GetBoard(ctx context.Context, input board.GetBoardInput) (*domain.BoardView, error)
	UpdateBoard(ctx context.Context, input board.UpdateBoardInput) (*domain.Board, error)
	ArchiveBoard(ctx context.Context, input board.BoardIDInput) (*domain.Board, error)
	UnarchiveBoard(ctx context.Context, input board.BoardIDInput) (*domain.Board, error)
	DeleteBoard(ctx context.Context, input board.BoardIDInput) error
	ListMembers(ctx context.Context, input board.BoardIDInput) ([]domain.BoardMember, error)
	AddMember(ctx context.Context, input board.AddMemberInput) (*domain.BoardMember, error)
	RemoveMember(ctx context.Context, input board.RemoveMemberInput) error
}

// BoardHandler serves board, board view and membership endpoints.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
	now func() time.Time
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board"), now: time.Now}
}

type createBoardRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Description     *string `json:"description"`
	BackgroundColor *string `json:"background_color"`
	BackgroundImage *string `json:"background_image" validate:"omitempty,max=2048"`
	IsPrivate       bool    `json:"is_private"`
}

type updateBoardRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	BackgroundColor *string `json:"background_color"`
	BackgroundImage *string `json:"background_image" validate:"omitempty,max=2048"`
	IsPrivate       *bool   `json:"is_private"`
}

type addMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role"    validate:"omitempty,board_role"`
}

// List handles GET /boards.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	includeArchived, err := queryBool(r, "archived")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	boards, err := h.svc.ListBoards(r.Context(), board.ListBoardsInput{IncludeArchived: includeArchived})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]boardResponse, len(boards))
	for i, b := range boards {
		out[i] = toBoardResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.CreateBoard(r.Context(), board.CreateBoardInput{
		Name:            req.Name,
		Description:     req.Description,
		BackgroundColor: req.BackgroundColor,
		BackgroundImage: req.BackgroundImage,
		IsPrivate:       req.IsPrivate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBoardResponse(*b))
}

// Get handles GET /boards/{id}: the board with its lists, decorated cards
// and labels.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	includeArchived, err := queryBool(r, "archived")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.GetBoard(r.Context(), board.GetBoardInput{BoardID: boardID, IncludeArchived: includeArchived})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp, err := h.decorate(r.Context(), view)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles POST /boards/{id}/edit.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateBoardRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.UpdateBoard(r.Context(), board.UpdateBoardInput{
		BoardID:         boardID,
		Name:            req.Name,
		Description:     req.Description,
		BackgroundColor: req.BackgroundColor,
		BackgroundImage: req.BackgroundImage,
		IsPrivate:       req.IsPrivate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(*b))
}

// Archive handles POST /boards/{id}/archive.
func (h *BoardHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, h.svc.ArchiveBoard)
}

// Unarchive handles POST /boards/{id}/unarchive.
func (h *BoardHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, h.svc.UnarchiveBoard)
}

func (h *BoardHandler) setArchived(w http.ResponseWriter, r *http.Request, op func(context.Context, board.BoardIDInput) (*domain.Board, error)) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	b, err := op(r.Context(), board.BoardIDInput{BoardID: boardID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(*b))
}

// Delete handles POST /boards/{id}/delete.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteBoard(r.Context(), board.BoardIDInput{BoardID: boardID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Members handles GET /boards/{id}/members.
func (h *BoardHandler) Members(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	members, err := h.svc.ListMembers(r.Context(), board.BoardIDInput{BoardID: boardID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

// AddMember handles POST /boards/{id}/members. Role defaults to member.
func (h *BoardHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req addMemberRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	role := domain.BoardRole(req.Role)
	if role == "" {
		role = domain.BoardRoleMember
	}

	m, err := h.svc.AddMember(r.Context(), board.AddMemberInput{
		BoardID: boardID,
		UserID:  uuid.MustParse(req.UserID),
		Role:    role,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*m))
}

// RemoveMember handles POST /boards/{id}/members/{user_id}/remove.
func (h *BoardHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	userID, err := pathID(r, "user_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.RemoveMember(r.Context(), board.RemoveMemberInput{BoardID: boardID, UserID: userID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decorate attaches labels, assignees and checklist progress to every card.
// Loads are issued for all cards before any is awaited so the loaders batch
// them into one query per decoration.
func (h *BoardHandler) decorate(ctx context.Context, view *domain.BoardView) (boardViewResponse, error) {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil {
		return boardViewResponse{}, fmt.Errorf("board view: dataloaders not configured")
	}
	now := h.now()

	type pending struct {
		labels   func() ([]domain.Label, error)
		members  func() ([]uuid.UUID, error)
		progress func() (domain.ChecklistProgress, error)
	}

	resp := boardViewResponse{
		Board:   toBoardResponse(view.Access.Board),
		IsOwner: view.Access.IsOwner(),
		CanEdit: view.Access.CanEdit(),
		Lists:   make([]boardListResponse, len(view.Lists)),
		Labels:  toLabelResponses(view.Labels),
	}
	if view.Access.Role != nil {
		role := view.Access.Role.String()
		resp.Role = &role
	}

	waits := make([][]pending, len(view.Lists))
	for i, l := range view.Lists {
		waits[i] = make([]pending, len(l.Cards))
		for j, c := range l.Cards {
			waits[i][j] = pending{
				labels:   loaders.LabelsByCardID.Load(ctx, c.ID),
				members:  loaders.MemberIDsByCardID.Load(ctx, c.ID),
				progress: loaders.ProgressByCardID.Load(ctx, c.ID),
			}
		}
	}

	for i, l := range view.Lists {
		cards := make([]boardCardResponse, len(l.Cards))
		for j, c := range l.Cards {
			p := waits[i][j]
			labels, err := p.labels()
			if err != nil {
				return boardViewResponse{}, fmt.Errorf("load card labels: %w", err)
			}
			members, err := p.members()
			if err != nil {
				return boardViewResponse{}, fmt.Errorf("load card members: %w", err)
			}
			if members == nil {
				members = []uuid.UUID{}
			}
			progress, err := p.progress()
			if err != nil {
				return boardViewResponse{}, fmt.Errorf("load checklist progress: %w", err)
			}
			cards[j] = boardCardResponse{
				cardResponse:      toCardResponse(c, now),
				Labels:            toLabelResponses(labels),
				MemberIDs:         members,
				ChecklistProgress: progressResponse{Completed: progress.Completed, Total: progress.Total},
			}
		}
		resp.Lists[i] = boardListResponse{listResponse: toListResponse(l.List), Cards: cards}
	}
	return resp, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return v, nil
}
