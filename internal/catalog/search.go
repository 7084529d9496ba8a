package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"greenbasket-client/internal/logger"

	"go.uber.org/zap"
)

// DefaultSearchDelay is the quiet period after the last keystroke
// before a search request is issued.
const DefaultSearchDelay = 500 * time.Millisecond

// Searcher turns a stream of keystrokes into at most one search
// request per quiet period. Only the freshest result set is delivered;
// a response that arrives after a newer keystroke is dropped.
type Searcher struct {
	repo      Repository
	delay     time.Duration
	onResults func(term string, products []Product, err error)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewSearcher(repo Repository, delay time.Duration, onResults func(string, []Product, error)) *Searcher {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Searcher{
		repo:      repo,
		delay:     delay,
		onResults: onResults,
	}
}

// Input registers the current contents of the search box. Each call
// resets the quiet-period timer, so a steady typist issues no requests
// until they pause. A blank term cancels any pending request and
// clears the results immediately.
func (s *Searcher) Input(ctx context.Context, term string) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(term) == "" {
		s.mu.Unlock()
		s.onResults(term, nil, nil)
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.search(ctx, seq, term)
	})
	s.mu.Unlock()
}

// Stop cancels any pending request, used when the search screen
// unmounts.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) search(ctx context.Context, seq uint64, term string) {
	products, err := s.repo.Search(ctx, term)

	s.mu.Lock()
	stale := seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}

	if err != nil {
		logger.FromCtx(ctx).Warn("product search failed",
			zap.String("term", term),
			zap.Error(err),
		)
	}
	s.onResults(term, products, err)
}
