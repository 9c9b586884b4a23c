package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Activity is an immutable record of a mutation on a board.
type Activity struct {
	ID         uuid.UUID
	BoardID    uuid.UUID
	UserID     uuid.UUID
	Action     ActivityAction
	TargetType TargetType
	TargetID   uuid.UUID
	Details    map[string]any
	CreatedAt  time.Time
}

// ActivityCursor marks a position in the reverse-chronological activity feed.
type ActivityCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorOf returns the cursor pointing just past a.
func CursorOf(a Activity) ActivityCursor {
	return ActivityCursor{CreatedAt: a.CreatedAt, ID: a.ID}
}

// Encode returns the opaque string form of the cursor.
func (c ActivityCursor) Encode() string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeActivityCursor parses a cursor produced by Encode.
func DecodeActivityCursor(s string) (ActivityCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ActivityCursor{}, fmt.Errorf("decode cursor: %w", err)
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return ActivityCursor{}, fmt.Errorf("decode cursor: malformed")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ActivityCursor{}, fmt.Errorf("decode cursor time: %w", err)
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return ActivityCursor{}, fmt.Errorf("decode cursor id: %w", err)
	}
	return ActivityCursor{CreatedAt: createdAt, ID: uid}, nil
}

// ActivityPage is one page of the activity feed, newest first.
type ActivityPage struct {
	Items      []Activity
	NextCursor *string
}
