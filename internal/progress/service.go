package progress

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/biblethink/biblethink-api/internal/bible"
)

// ProgressService tracks what a user has read and derives streak and
// weekly stats. References are canonicalized before storage so the same
// passage typed two ways lands on one record.
type ProgressService struct {
	repo  Repository
	bible *bible.Service
}

func NewProgressService(repo Repository, bibleService *bible.Service) ProgressService {
	return ProgressService{
		repo:  repo,
		bible: bibleService,
	}
}

// MarkRead records a read. Returns false when the passage was already
// read; the streak and total counters move only on a first read.
func (s *ProgressService) MarkRead(ctx context.Context, userID int, reference string) (bool, error) {
	ref, err := bible.ParseReference(reference)
	if err != nil {
		return false, err
	}

	recorded, err := s.repo.MarkRead(ctx, userID, ref.String(), time.Now())
	if err != nil {
		log.Printf("mark read failed for user %d: %v", userID, err)
		return false, err
	}
	return recorded, nil
}

func (s *ProgressService) IsRead(ctx context.Context, userID int, reference string) (bool, error) {
	ref, err := bible.ParseReference(reference)
	if err != nil {
		return false, err
	}
	return s.repo.IsRead(ctx, userID, ref.String())
}

func (s *ProgressService) Notes(ctx context.Context, userID int, reference string) (string, error) {
	ref, err := bible.ParseReference(reference)
	if err != nil {
		return "", err
	}
	p, err := s.repo.GetReadPassage(ctx, userID, ref.String())
	if err != nil {
		return "", err
	}
	return p.Notes, nil
}

// UpdateNotes requires the passage to have been read first.
func (s *ProgressService) UpdateNotes(ctx context.Context, userID int, reference, notes string) error {
	ref, err := bible.ParseReference(reference)
	if err != nil {
		return err
	}
	return s.repo.UpdateNotes(ctx, userID, ref.String(), notes)
}

func (s *ProgressService) ListRead(ctx context.Context, userID int) ([]ReadPassage, error) {
	return s.repo.ListReadPassages(ctx, userID)
}

// WeeklyCount counts passages read since the most recent Monday 00:00 UTC.
func (s *ProgressService) WeeklyCount(ctx context.Context, userID int) (int, error) {
	return s.repo.CountReadSince(ctx, userID, StartOfWeek(time.Now()))
}

// Summary combines the progress document with the derived weekly and
// unread counts. A user who has never read anything gets zero values.
func (s *ProgressService) Summary(ctx context.Context, userID int) (*Summary, error) {
	prog, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		prog = &UserProgress{}
	}

	weekly, err := s.WeeklyCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread, err := s.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		UserProgress:         *prog,
		PassagesReadThisWeek: weekly,
		UnreadCount:          unread,
	}, nil
}
