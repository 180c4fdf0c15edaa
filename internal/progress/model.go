package progress

import "time"

// ReadPassage is one passage a user has read, keyed by the canonical
// reference string.
type ReadPassage struct {
	Reference string    `json:"reference"`
	ReadAt    time.Time `json:"read_at"`
	Notes     string    `json:"notes"`
}

// UserProgress is the singleton stats document per user.
type UserProgress struct {
	TotalPassagesRead int       `json:"total_passages_read"`
	CurrentStreak     int       `json:"current_streak"`
	LastReadDate      string    `json:"last_read_date,omitempty"` // YYYY-MM-DD, UTC day
	CreatedAt         time.Time `json:"created_at,omitempty"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}

type Summary struct {
	UserProgress
	PassagesReadThisWeek int `json:"passages_read_this_week"`
	UnreadCount          int `json:"unread_count"`
}

type MarkReadRequest struct {
	Reference string `json:"reference"`
}

type UpdateNotesRequest struct {
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}
