package progress

import "context"

const (
	// sampleWindow is the verse count of sampled passages.
	sampleWindow = 5
	// maxUnreadAttempts bounds how many random draws are rejected before
	// falling back to an unconditional one.
	maxUnreadAttempts = 50
)

// SampleUnread draws random passages until one falls outside the user's
// read set. After maxUnreadAttempts rejections it returns one more random
// passage unconditionally, which may be a duplicate; heavy readers get a
// repeat rather than an error. It fails only when random resolution
// itself fails.
func (s *ProgressService) SampleUnread(ctx context.Context, userID int) (string, error) {
	refs, err := s.repo.ListReadReferences(ctx, userID)
	if err != nil {
		return "", err
	}
	readSet := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		readSet[ref] = struct{}{}
	}

	for attempt := 0; attempt < maxUnreadAttempts; attempt++ {
		passage, err := s.bible.ResolveRandom(ctx, sampleWindow)
		if err != nil {
			return "", err
		}
		if _, seen := readSet[passage.Reference]; !seen {
			return passage.Reference, nil
		}
	}

	passage, err := s.bible.ResolveRandom(ctx, sampleWindow)
	if err != nil {
		return "", err
	}
	return passage.Reference, nil
}

// UnreadCount approximates how many sampleWindow-verse passages the user
// has not seen yet. Windows can overlap, so this is an estimate, floored
// at zero.
func (s *ProgressService) UnreadCount(ctx context.Context, userID int) (int, error) {
	total, err := s.bible.TotalVerses(ctx)
	if err != nil {
		return 0, err
	}

	refs, err := s.repo.ListReadReferences(ctx, userID)
	if err != nil {
		return 0, err
	}

	unread := total/sampleWindow - len(refs)
	if unread < 0 {
		unread = 0
	}
	return unread, nil
}
