package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/qkart/storefront/internal/catalog/domain"
	"github.com/qkart/storefront/pkg/debounce"
	"github.com/qkart/storefront/pkg/httpx"
)

// DefaultDebounceWindow is the quiet period after the last keystroke before
// a search fires. One second, matching the production behavior of the web UI.
const DefaultDebounceWindow = 1000 * time.Millisecond

// SearchController turns a stream of keystrokes into at most one in-flight
// search. A new input while a timer is pending re-arms the timer; a new
// input while a request is in flight cancels that request, and any response
// that still arrives late is discarded by sequence number.
type SearchController struct {
	api      ProductAPI
	display  Display
	notifier Notifier
	log      *slog.Logger

	deb *debounce.Debouncer
	seq atomic.Uint64

	base context.Context

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewSearchController(ctx context.Context, api ProductAPI, display Display, notifier Notifier, window time.Duration, log *slog.Logger) *SearchController {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &SearchController{
		api:      api,
		display:  display,
		notifier: notifier,
		log:      log,
		deb:      debounce.New(window),
		base:     ctx,
	}
}

// LoadCatalog fetches the full product list. Used for the initial load,
// outside the debounced pipeline.
func (s *SearchController) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	return s.api.Catalog(ctx)
}

// OnInputChange is called for every keystroke. Empty input resets to the
// full catalog immediately; anything else is debounced.
func (s *SearchController) OnInputChange(text string) {
	if text == "" {
		s.deb.Cancel()
		s.dispatch("")
		return
	}
	s.deb.Do(func() { s.dispatch(text) })
}

// Close cancels any pending timer and in-flight request.
func (s *SearchController) Close() {
	s.deb.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *SearchController) dispatch(text string) {
	seq := s.seq.Add(1)

	ctx, cancel := context.WithCancel(s.base)
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, seq, text)
}

func (s *SearchController) run(ctx context.Context, seq uint64, text string) {
	var (
		products []domain.Product
		err      error
	)

	if text == "" {
		products, err = s.api.Catalog(ctx)
	} else {
		products, err = s.api.Search(ctx, text)
	}

	// A newer input superseded this request; its outcome must not reach
	// the display.
	if seq != s.seq.Load() {
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.log.Warn("search failed", slog.String("query", text), slog.Any("err", err))
		s.notifier.Error(httpx.UserMessage(err))
		return
	}

	// Empty result set is a valid outcome, not an error.
	s.display.ShowProducts(products)
}
