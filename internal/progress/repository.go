package progress

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/biblethink/biblethink-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type Repository interface {
	// MarkRead records the passage and updates the streak/total counters
	// in one transaction. Returns false when the reference was already
	// read, in which case the counters are untouched.
	MarkRead(ctx context.Context, userID int, reference string, now time.Time) (bool, error)
	IsRead(ctx context.Context, userID int, reference string) (bool, error)
	GetReadPassage(ctx context.Context, userID int, reference string) (*ReadPassage, error)
	ListReadPassages(ctx context.Context, userID int) ([]ReadPassage, error)
	ListReadReferences(ctx context.Context, userID int) ([]string, error)
	UpdateNotes(ctx context.Context, userID int, reference, notes string) error
	GetProgress(ctx context.Context, userID int) (*UserProgress, error)
	CountReadSince(ctx context.Context, userID int, since time.Time) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) MarkRead(ctx context.Context, userID int, reference string, now time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, ErrInternalServer
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO read_passages (user_id, reference, read_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, reference) DO NOTHING
	`, userID, reference, now)
	if err != nil {
		return false, ErrInternalServer
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, ErrInternalServer
	}
	if inserted == 0 {
		// Already read. Counters must not move again.
		return false, nil
	}

	var (
		currentStreak int
		lastRead      time.Time
	)
	err = tx.QueryRowContext(ctx, `
		SELECT current_streak, last_read_date
		FROM user_progress
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&currentStreak, &lastRead)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First-ever read for this user.
		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_progress (user_id, total_passages_read, current_streak, last_read_date)
			VALUES ($1, 1, 1, $2)
		`, userID, Day(now))
	case err != nil:
		return false, ErrInternalServer
	default:
		streak := NextStreak(lastRead.UTC().Format(dateLayout), currentStreak, now)
		_, err = tx.ExecContext(ctx, `
			UPDATE user_progress
			SET total_passages_read = total_passages_read + 1,
			    current_streak = $2,
			    last_read_date = $3,
			    updated_at = NOW()
			WHERE user_id = $1
		`, userID, streak, Day(now))
	}
	if err != nil {
		return false, ErrInternalServer
	}

	if err := tx.Commit(); err != nil {
		return false, ErrInternalServer
	}
	return true, nil
}

func (r *repository) IsRead(ctx context.Context, userID int, reference string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM read_passages WHERE user_id = $1 AND reference = $2
		)
	`, userID, reference).Scan(&exists)
	if err != nil {
		return false, ErrInternalServer
	}
	return exists, nil
}

func (r *repository) GetReadPassage(ctx context.Context, userID int, reference string) (*ReadPassage, error) {
	var p ReadPassage
	err := r.db.QueryRowContext(ctx, `
		SELECT reference, read_at, notes
		FROM read_passages
		WHERE user_id = $1 AND reference = $2
	`, userID, reference).Scan(&p.Reference, &p.ReadAt, &p.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return &p, nil
}

func (r *repository) ListReadPassages(ctx context.Context, userID int) ([]ReadPassage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT reference, read_at, notes
		FROM read_passages
		WHERE user_id = $1
		ORDER BY read_at DESC
	`, userID)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var passages []ReadPassage
	for rows.Next() {
		var p ReadPassage
		if err := rows.Scan(&p.Reference, &p.ReadAt, &p.Notes); err != nil {
			return nil, ErrInternalServer
		}
		passages = append(passages, p)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return passages, nil
}

func (r *repository) ListReadReferences(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT reference FROM read_passages WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, ErrInternalServer
		}
		refs = append(refs, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return refs, nil
}

func (r *repository) UpdateNotes(ctx context.Context, userID int, reference, notes string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE read_passages
		SET notes = $3
		WHERE user_id = $1 AND reference = $2
	`, userID, reference, notes)
	if err != nil {
		return ErrInternalServer
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return ErrInternalServer
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) GetProgress(ctx context.Context, userID int) (*UserProgress, error) {
	var (
		p        UserProgress
		lastRead time.Time
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT total_passages_read, current_streak, last_read_date, created_at, updated_at
		FROM user_progress
		WHERE user_id = $1
	`, userID).Scan(&p.TotalPassagesRead, &p.CurrentStreak, &lastRead, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	p.LastReadDate = lastRead.UTC().Format(dateLayout)
	return &p, nil
}

func (r *repository) CountReadSince(ctx context.Context, userID int, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM read_passages WHERE user_id = $1 AND read_at >= $2
	`, userID, since).Scan(&count)
	if err != nil {
		return 0, ErrInternalServer
	}
	return count, nil
}
