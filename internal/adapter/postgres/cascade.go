package postgres

import (
	"context"
	"fmt"
)

// Ownership-graph deletes. FKs are ON DELETE RESTRICT, so every child table
// must be cleared before its parent. Each statement takes the scope id as $1.

const cardsOfBoard = `SELECT c.id FROM cards c JOIN lists l ON l.id = c.list_id WHERE l.board_id = $1`

var boardCascade = []struct {
	table string
	sql   string
}{
	{"checklist_items", `DELETE FROM checklist_items WHERE checklist_id IN (
		SELECT cl.id FROM checklists cl WHERE cl.card_id IN (` + cardsOfBoard + `))`},
	{"checklists", `DELETE FROM checklists WHERE card_id IN (` + cardsOfBoard + `)`},
	{"comments", `DELETE FROM comments WHERE card_id IN (` + cardsOfBoard + `)`},
	{"card_labels", `DELETE FROM card_labels WHERE card_id IN (` + cardsOfBoard + `)`},
	{"card_members", `DELETE FROM card_members WHERE card_id IN (` + cardsOfBoard + `)`},
	{"cards", `DELETE FROM cards WHERE list_id IN (SELECT id FROM lists WHERE board_id = $1)`},
	{"lists", `DELETE FROM lists WHERE board_id = $1`},
	{"labels", `DELETE FROM labels WHERE board_id = $1`},
	{"board_members", `DELETE FROM board_members WHERE board_id = $1`},
}

var cardCascade = []struct {
	table string
	sql   string
}{
	{"checklist_items", `DELETE FROM checklist_items WHERE checklist_id IN (SELECT id FROM checklists WHERE card_id = $1)`},
	{"checklists", `DELETE FROM checklists WHERE card_id = $1`},
	{"comments", `DELETE FROM comments WHERE card_id = $1`},
	{"card_labels", `DELETE FROM card_labels WHERE card_id = $1`},
	{"card_members", `DELETE FROM card_members WHERE card_id = $1`},
}

// DeleteBoardChildren removes everything a board owns except the board row
// itself and its activity log. Must run inside a transaction.
func DeleteBoardChildren(ctx context.Context, q Querier, boardID any) error {
	for _, step := range boardCascade {
		if _, err := q.Exec(ctx, step.sql, boardID); err != nil {
			return fmt.Errorf("delete %s of board %v: %w", step.table, boardID, err)
		}
	}
	return nil
}

// DeleteCardChildren removes checklists, items, comments and join rows of a card.
func DeleteCardChildren(ctx context.Context, q Querier, cardID any) error {
	for _, step := range cardCascade {
		if _, err := q.Exec(ctx, step.sql, cardID); err != nil {
			return fmt.Errorf("delete %s of card %v: %w", step.table, cardID, err)
		}
	}
	return nil
}
