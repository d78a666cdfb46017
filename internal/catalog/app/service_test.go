package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/qkart/storefront/internal/catalog/domain"
)

type fakeProductAPI struct {
	mu           sync.Mutex
	catalogCalls int
	searches     []string

	byQuery map[string][]domain.Product
	err     error

	// queries listed here block until gate closes
	slow map[string]bool
	gate chan struct{}
}

func (f *fakeProductAPI) Catalog(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	f.catalogCalls++
	f.mu.Unlock()
	return f.byQuery[""], f.err
}

func (f *fakeProductAPI) Search(ctx context.Context, query string) ([]domain.Product, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	blocked := f.slow[query]
	f.mu.Unlock()

	if blocked {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.byQuery[query], nil
}

func (f *fakeProductAPI) searchLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

type fakeDisplay struct {
	shown chan []domain.Product
}

func (d *fakeDisplay) ShowProducts(products []domain.Product) {
	d.shown <- products
}

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *fakeNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

func waitShown(t *testing.T, d *fakeDisplay) []domain.Product {
	t.Helper()
	select {
	case p := <-d.shown:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for display update")
		return nil
	}
}

func newTestController(t *testing.T, api *fakeProductAPI, window time.Duration) (*SearchController, *fakeDisplay, *fakeNotifier) {
	t.Helper()
	display := &fakeDisplay{shown: make(chan []domain.Product, 8)}
	notifier := &fakeNotifier{}
	c := NewSearchController(context.Background(), api, display, notifier, window, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(c.Close)
	return c, display, notifier
}

func TestOnInputChange_BurstIssuesOneSearch(t *testing.T) {
	api := &fakeProductAPI{byQuery: map[string][]domain.Product{
		"iphone": {{ID: "A", Name: "iPhone XR"}},
	}}
	c, display, _ := newTestController(t, api, 80*time.Millisecond)

	// Keystrokes land well inside each other's quiet window.
	for _, text := range []string{"i", "ip", "iph", "iphone"} {
		c.OnInputChange(text)
		time.Sleep(10 * time.Millisecond)
	}

	got := waitShown(t, display)
	if len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("unexpected products: %+v", got)
	}

	if log := api.searchLog(); len(log) != 1 || log[0] != "iphone" {
		t.Fatalf("expected exactly one search for the final text, got %v", log)
	}
}

func TestOnInputChange_EmptyResetsToCatalog(t *testing.T) {
	api := &fakeProductAPI{byQuery: map[string][]domain.Product{
		"": {{ID: "A"}, {ID: "B"}},
	}}
	c, display, _ := newTestController(t, api, 50*time.Millisecond)

	c.OnInputChange("")

	got := waitShown(t, display)
	if len(got) != 2 {
		t.Fatalf("expected full catalog, got %+v", got)
	}
	if log := api.searchLog(); len(log) != 0 {
		t.Fatalf("reset path must not hit the search endpoint, got %v", log)
	}
}

func TestOnInputChange_EmptyCancelsPendingSearch(t *testing.T) {
	api := &fakeProductAPI{byQuery: map[string][]domain.Product{"": {{ID: "A"}}}}
	c, display, _ := newTestController(t, api, 60*time.Millisecond)

	c.OnInputChange("iphone")
	c.OnInputChange("")

	waitShown(t, display)
	time.Sleep(150 * time.Millisecond)

	if log := api.searchLog(); len(log) != 0 {
		t.Fatalf("pending search should have been cancelled, got %v", log)
	}
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	api := &fakeProductAPI{byQuery: map[string][]domain.Product{}}
	c, display, notifier := newTestController(t, api, 10*time.Millisecond)

	c.OnInputChange("nothing-matches")

	got := waitShown(t, display)
	if len(got) != 0 {
		t.Fatalf("expected empty result set, got %+v", got)
	}
	if msgs := notifier.messages(); len(msgs) != 0 {
		t.Fatalf("no notification expected, got %v", msgs)
	}
}

func TestSearch_FailureNotifiesAndKeepsDisplay(t *testing.T) {
	api := &fakeProductAPI{err: errors.New("connection refused")}
	c, display, notifier := newTestController(t, api, 10*time.Millisecond)

	c.OnInputChange("iphone")

	deadline := time.After(2 * time.Second)
	for len(notifier.messages()) == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for notification")
		case <-time.After(5 * time.Millisecond):
		}
	}

	select {
	case p := <-display.shown:
		t.Fatalf("display must not update on failure, got %+v", p)
	default:
	}
}

func TestSearch_SupersededResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	api := &fakeProductAPI{
		byQuery: map[string][]domain.Product{
			"slow": {{ID: "stale"}},
			"fast": {{ID: "fresh"}},
		},
		slow: map[string]bool{"slow": true},
		gate: gate,
	}
	c, display, _ := newTestController(t, api, 10*time.Millisecond)

	c.OnInputChange("slow")

	// Let the slow search get in flight before superseding it.
	deadline := time.After(2 * time.Second)
	for len(api.searchLog()) == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for slow search")
		case <-time.After(5 * time.Millisecond):
		}
	}

	c.OnInputChange("fast")

	got := waitShown(t, display)
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("expected the fresh result, got %+v", got)
	}

	close(gate)
	time.Sleep(50 * time.Millisecond)

	select {
	case p := <-display.shown:
		t.Fatalf("stale response reached the display: %+v", p)
	default:
	}
}
