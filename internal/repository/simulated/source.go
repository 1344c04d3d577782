package simulated

import (
	"context"
	"time"

	"authdemo/internal/domain"
	"authdemo/internal/repository"
)

// DefaultFetchDelay is the artificial latency applied when none is configured.
const DefaultFetchDelay = 100 * time.Millisecond

// Source fabricates user records after a short artificial latency. It stands in
// for a real directory lookup: no storage or network access happens.
type Source struct {
	delay time.Duration
}

func NewSource(delay time.Duration) repository.UserSource {
	if delay <= 0 {
		delay = DefaultFetchDelay
	}
	return &Source{delay: delay}
}

// FetchUser waits out the configured latency, then returns a deterministic
// record for the username. The password is accepted but never inspected.
func (s *Source) FetchUser(ctx context.Context, username, _ string) (*domain.User, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &domain.User{
		ID:       1,
		Username: username,
		Email:    username + "@example.com",
	}, nil
}
