package progress

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/biblethink/biblethink-api/internal/database"
)

type testDBService struct {
	db *sql.DB
}

func (s testDBService) Health() map[string]string { return map[string]string{"status": "up"} }
func (s testDBService) DB() *sql.DB               { return s.db }
func (s testDBService) Close() error              { return s.db.Close() }

func setupRepo(t *testing.T) (Repository, *sql.DB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("biblethink_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(db))

	return NewRepository(testDBService{db: db}), db
}

func createTestUser(t *testing.T, db *sql.DB) int {
	t.Helper()
	var id int
	err := db.QueryRow(`
		INSERT INTO users (email, password) VALUES ('reader@example.com', 'x') RETURNING id
	`).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestRepositoryMarkRead(t *testing.T) {
	repo, db := setupRepo(t)
	userID := createTestUser(t, db)
	ctx := context.Background()
	now := time.Now()

	recorded, err := repo.MarkRead(ctx, userID, "Genesis 1:1-5", now)
	require.NoError(t, err)
	require.True(t, recorded)

	prog, err := repo.GetProgress(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, prog.TotalPassagesRead)
	require.Equal(t, 1, prog.CurrentStreak)
	require.Equal(t, Day(now), prog.LastReadDate)

	// Re-marking the same reference must not move the counters.
	recorded, err = repo.MarkRead(ctx, userID, "Genesis 1:1-5", now)
	require.NoError(t, err)
	require.False(t, recorded)

	prog, err = repo.GetProgress(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, prog.TotalPassagesRead)
	require.Equal(t, 1, prog.CurrentStreak)

	// A different passage the same day counts but does not extend the streak.
	recorded, err = repo.MarkRead(ctx, userID, "John 3:16", now)
	require.NoError(t, err)
	require.True(t, recorded)

	prog, err = repo.GetProgress(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, prog.TotalPassagesRead)
	require.Equal(t, 1, prog.CurrentStreak)
}

func TestRepositoryStreakTransitions(t *testing.T) {
	repo, db := setupRepo(t)
	userID := createTestUser(t, db)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.MarkRead(ctx, userID, "Psalm 23:1-6", now)
	require.NoError(t, err)

	// Pretend the last read happened yesterday: the next read extends the
	// streak.
	_, err = db.Exec(`UPDATE user_progress SET last_read_date = $2 WHERE user_id = $1`,
		userID, Day(now.AddDate(0, 0, -1)))
	require.NoError(t, err)

	_, err = repo.MarkRead(ctx, userID, "Psalm 24:1", now)
	require.NoError(t, err)

	prog, err := repo.GetProgress(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, prog.CurrentStreak)
	require.Equal(t, Day(now), prog.LastReadDate)

	// A gap of two days breaks the streak back to 1.
	_, err = db.Exec(`UPDATE user_progress SET last_read_date = $2 WHERE user_id = $1`,
		userID, Day(now.AddDate(0, 0, -2)))
	require.NoError(t, err)

	_, err = repo.MarkRead(ctx, userID, "Psalm 25:1", now)
	require.NoError(t, err)

	prog, err = repo.GetProgress(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, prog.CurrentStreak)
	require.Equal(t, 3, prog.TotalPassagesRead)
}

func TestRepositoryNotes(t *testing.T) {
	repo, db := setupRepo(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	// Notes on an unread passage are a typed failure.
	err := repo.UpdateNotes(ctx, userID, "Genesis 1:1", "thoughts")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.MarkRead(ctx, userID, "Genesis 1:1", time.Now())
	require.NoError(t, err)

	p, err := repo.GetReadPassage(ctx, userID, "Genesis 1:1")
	require.NoError(t, err)
	require.Equal(t, "", p.Notes)

	require.NoError(t, repo.UpdateNotes(ctx, userID, "Genesis 1:1", "thoughts"))

	p, err = repo.GetReadPassage(ctx, userID, "Genesis 1:1")
	require.NoError(t, err)
	require.Equal(t, "thoughts", p.Notes)
}

func TestRepositoryReadSetAndWeeklyCount(t *testing.T) {
	repo, db := setupRepo(t)
	userID := createTestUser(t, db)
	ctx := context.Background()
	now := time.Now()

	for _, ref := range []string{"Genesis 1:1-5", "Exodus 1:1", "John 3:16"} {
		_, err := repo.MarkRead(ctx, userID, ref, now)
		require.NoError(t, err)
	}

	refs, err := repo.ListReadReferences(ctx, userID)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	passages, err := repo.ListReadPassages(ctx, userID)
	require.NoError(t, err)
	require.Len(t, passages, 3)

	isRead, err := repo.IsRead(ctx, userID, "John 3:16")
	require.NoError(t, err)
	require.True(t, isRead)

	isRead, err = repo.IsRead(ctx, userID, "John 3:17")
	require.NoError(t, err)
	require.False(t, isRead)

	count, err := repo.CountReadSince(ctx, userID, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = repo.CountReadSince(ctx, userID, now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestRepositoryProgressMissing(t *testing.T) {
	repo, db := setupRepo(t)
	userID := createTestUser(t, db)

	_, err := repo.GetProgress(context.Background(), userID)
	require.True(t, errors.Is(err, ErrNotFound))
}
