package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBoard creates a public board owned by ownerID together with the owner's
// membership row. Returns a filled domain.Board.
func SeedBoard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Board {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	board := domain.Board{
		ID:              uuid.New(),
		Name:            "Board " + uniqueSuffix(),
		BackgroundColor: "slate",
		CreatedBy:       ownerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO boards (id, name, background_color, is_private, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		board.ID, board.Name, board.BackgroundColor, board.IsPrivate, board.CreatedBy, board.CreatedAt, board.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBoard insert board: %v", err)
	}

	SeedMember(t, pool, board.ID, ownerID, domain.BoardRoleOwner)

	return board
}

// SeedMember adds userID to the board with the given role.
func SeedMember(t *testing.T, pool *pgxpool.Pool, boardID, userID uuid.UUID, role domain.BoardRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)`,
		boardID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
}

// SeedList creates a list on the board at the given position.
func SeedList(t *testing.T, pool *pgxpool.Pool, boardID uuid.UUID, position int64) domain.List {
	t.Helper()

	list := domain.List{
		ID:        uuid.New(),
		BoardID:   boardID,
		Name:      "List " + uniqueSuffix(),
		Position:  position,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lists (id, board_id, name, position, created_at) VALUES ($1, $2, $3, $4, $5)`,
		list.ID, list.BoardID, list.Name, list.Position, list.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList: %v", err)
	}

	return list
}

// SeedCard creates a card in the list at the given position.
func SeedCard(t *testing.T, pool *pgxpool.Pool, listID, createdBy uuid.UUID, position int64) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:        uuid.New(),
		ListID:    listID,
		Title:     "Card " + uniqueSuffix(),
		Position:  position,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, list_id, title, position, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID, card.ListID, card.Title, card.Position, card.CreatedBy, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return card
}

// SeedLabel creates a label on the board.
func SeedLabel(t *testing.T, pool *pgxpool.Pool, boardID uuid.UUID, color string) domain.Label {
	t.Helper()

	label := domain.Label{ID: uuid.New(), BoardID: boardID, Name: "Label " + uniqueSuffix(), Color: color}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO labels (id, board_id, name, color) VALUES ($1, $2, $3, $4)`,
		label.ID, label.BoardID, label.Name, label.Color,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLabel: %v", err)
	}

	return label
}

// SeedChecklist creates a checklist on the card with the given number of
// incomplete items.
func SeedChecklist(t *testing.T, pool *pgxpool.Pool, cardID uuid.UUID, items int) domain.Checklist {
	t.Helper()
	ctx := context.Background()

	cl := domain.Checklist{ID: uuid.New(), CardID: cardID, Name: "Checklist " + uniqueSuffix(), Position: 1024}

	_, err := pool.Exec(ctx,
		`INSERT INTO checklists (id, card_id, name, position) VALUES ($1, $2, $3, $4)`,
		cl.ID, cl.CardID, cl.Name, cl.Position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChecklist: %v", err)
	}

	for i := range items {
		item := domain.ChecklistItem{
			ID:          uuid.New(),
			ChecklistID: cl.ID,
			Content:     "Item " + uniqueSuffix(),
			Position:    int64(i+1) * 1024,
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO checklist_items (id, checklist_id, content, position) VALUES ($1, $2, $3, $4)`,
			item.ID, item.ChecklistID, item.Content, item.Position,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedChecklist item[%d]: %v", i, err)
		}
		cl.Items = append(cl.Items, item)
	}

	return cl
}

// SeedComment creates a comment on the card by userID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, cardID, userID uuid.UUID) domain.Comment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{ID: uuid.New(), CardID: cardID, UserID: userID, Content: "Comment " + uniqueSuffix(), CreatedAt: now, UpdatedAt: now}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, card_id, user_id, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.CardID, c.UserID, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}

	return c
}

// SetSetting upserts a key in the settings table.
func SetSetting(t *testing.T, pool *pgxpool.Pool, key, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: SetSetting: %v", err)
	}
}
