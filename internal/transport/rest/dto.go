package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

type boardResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	BackgroundColor string    `json:"background_color"`
	BackgroundImage *string   `json:"background_image"`
	IsPrivate       bool      `json:"is_private"`
	IsArchived      bool      `json:"is_archived"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toBoardResponse(b domain.Board) boardResponse {
	return boardResponse{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		BackgroundColor: b.BackgroundColor,
		BackgroundImage: b.BackgroundImage,
		IsPrivate:       b.IsPrivate,
		IsArchived:      b.IsArchived,
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type memberResponse struct {
	BoardID uuid.UUID `json:"board_id"`
	UserID  uuid.UUID `json:"user_id"`
	Role    string    `json:"role"`
	AddedAt time.Time `json:"added_at"`
}

func toMemberResponse(m domain.BoardMember) memberResponse {
	return memberResponse{BoardID: m.BoardID, UserID: m.UserID, Role: m.Role.String(), AddedAt: m.AddedAt}
}

type listResponse struct {
	ID         uuid.UUID `json:"id"`
	BoardID    uuid.UUID `json:"board_id"`
	Name       string    `json:"name"`
	Position   int64     `json:"position"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
}

func toListResponse(l domain.List) listResponse {
	return listResponse{
		ID:         l.ID,
		BoardID:    l.BoardID,
		Name:       l.Name,
		Position:   l.Position,
		IsArchived: l.IsArchived,
		CreatedAt:  l.CreatedAt,
	}
}

type labelResponse struct {
	ID      uuid.UUID `json:"id"`
	BoardID uuid.UUID `json:"board_id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
}

func toLabelResponse(l domain.Label) labelResponse {
	return labelResponse{ID: l.ID, BoardID: l.BoardID, Name: l.Name, Color: l.Color}
}

func toLabelResponses(labels []domain.Label) []labelResponse {
	out := make([]labelResponse, len(labels))
	for i, l := range labels {
		out[i] = toLabelResponse(l)
	}
	return out
}

type progressResponse struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type cardResponse struct {
	ID          uuid.UUID  `json:"id"`
	ListID      uuid.UUID  `json:"list_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Position    int64      `json:"position"`
	DueDate     *time.Time `json:"due_date"`
	DueComplete bool       `json:"due_complete"`
	IsOverdue   bool       `json:"is_overdue"`
	IsArchived  bool       `json:"is_archived"`
	CoverColor  *string    `json:"cover_color"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toCardResponse(c domain.Card, now time.Time) cardResponse {
	return cardResponse{
		ID:          c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		DueDate:     c.DueDate,
		DueComplete: c.DueComplete,
		IsOverdue:   c.IsOverdue(now),
		IsArchived:  c.IsArchived,
		CoverColor:  c.CoverColor,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// boardCardResponse is a card as shown on the board: decorated with its
// labels, assignees and checklist progress.
type boardCardResponse struct {
	cardResponse
	Labels            []labelResponse  `json:"labels"`
	MemberIDs         []uuid.UUID      `json:"member_ids"`
	ChecklistProgress progressResponse `json:"checklist_progress"`
}

type boardListResponse struct {
	listResponse
	Cards []boardCardResponse `json:"cards"`
}

type boardViewResponse struct {
	Board   boardResponse       `json:"board"`
	Role    *string             `json:"role"`
	IsOwner bool                `json:"is_owner"`
	CanEdit bool                `json:"can_edit"`
	Lists   []boardListResponse `json:"lists"`
	Labels  []labelResponse     `json:"labels"`
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		CardID:    c.CardID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type checklistItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ChecklistID uuid.UUID  `json:"checklist_id"`
	Content     string     `json:"content"`
	IsComplete  bool       `json:"is_complete"`
	Position    int64      `json:"position"`
	CompletedBy *uuid.UUID `json:"completed_by"`
	CompletedAt *time.Time `json:"completed_at"`
}

func toItemResponse(i domain.ChecklistItem) checklistItemResponse {
	return checklistItemResponse{
		ID:          i.ID,
		ChecklistID: i.ChecklistID,
		Content:     i.Content,
		IsComplete:  i.IsComplete,
		Position:    i.Position,
		CompletedBy: i.CompletedBy,
		CompletedAt: i.CompletedAt,
	}
}

type checklistResponse struct {
	ID       uuid.UUID               `json:"id"`
	CardID   uuid.UUID               `json:"card_id"`
	Name     string                  `json:"name"`
	Position int64                   `json:"position"`
	Items    []checklistItemResponse `json:"items"`
}

func toChecklistResponse(cl domain.Checklist) checklistResponse {
	items := make([]checklistItemResponse, len(cl.Items))
	for i, it := range cl.Items {
		items[i] = toItemResponse(it)
	}
	return checklistResponse{ID: cl.ID, CardID: cl.CardID, Name: cl.Name, Position: cl.Position, Items: items}
}

// cardDetailResponse is the payload of GET /cards/{id}.
type cardDetailResponse struct {
	cardResponse
	BoardID           uuid.UUID           `json:"board_id"`
	ListName          string              `json:"list_name"`
	Labels            []labelResponse     `json:"labels"`
	MemberIDs         []uuid.UUID         `json:"member_ids"`
	Comments          []commentResponse   `json:"comments"`
	Checklists        []checklistResponse `json:"checklists"`
	ChecklistProgress progressResponse    `json:"checklist_progress"`
}

func toCardDetailResponse(d domain.CardDetail, now time.Time) cardDetailResponse {
	comments := make([]commentResponse, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = toCommentResponse(c)
	}
	checklists := make([]checklistResponse, len(d.Checklists))
	for i, cl := range d.Checklists {
		checklists[i] = toChecklistResponse(cl)
	}
	members := d.MemberIDs
	if members == nil {
		members = []uuid.UUID{}
	}
	p := d.Progress()

	return cardDetailResponse{
		cardResponse:      toCardResponse(d.Card, now),
		BoardID:           d.BoardID,
		ListName:          d.ListName,
		Labels:            toLabelResponses(d.Labels),
		MemberIDs:         members,
		Comments:          comments,
		Checklists:        checklists,
		ChecklistProgress: progressResponse{Completed: p.Completed, Total: p.Total},
	}
}

type activityResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Action     string         `json:"action"`
	TargetType string         `json:"target_type"`
	TargetID   uuid.UUID      `json:"target_id"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

type activityPageResponse struct {
	Items      []activityResponse `json:"items"`
	NextCursor *string            `json:"next_cursor"`
}

func toActivityPageResponse(p domain.ActivityPage) activityPageResponse {
	items := make([]activityResponse, len(p.Items))
	for i, a := range p.Items {
		items[i] = activityResponse{
			ID:         a.ID,
			UserID:     a.UserID,
			Action:     string(a.Action),
			TargetType: string(a.TargetType),
			TargetID:   a.TargetID,
			Details:    a.Details,
			CreatedAt:  a.CreatedAt,
		}
	}
	return activityPageResponse{Items: items, NextCursor: p.NextCursor}
}
