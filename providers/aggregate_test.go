package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/rosubs/rosubs/stremio"
)

type stubSearcher struct {
	name    string
	subs    []stremio.Subtitle
	panicky bool
	calls   int
}

func (s *stubSearcher) Name() string { return s.name }

func (s *stubSearcher) SearchSubtitles(ctx context.Context, videoID stremio.VideoID, contentType string) []stremio.Subtitle {
	s.calls++
	if s.panicky {
		panic("markup from hell")
	}
	return s.subs
}

func stubWith(name string, n int) *stubSearcher {
	subs := make([]stremio.Subtitle, 0, n)
	for i := 0; i < n; i++ {
		subs = append(subs, stremio.Subtitle{
			ID:    fmt.Sprintf("%s_%d_tt0111161", name, i),
			URL:   fmt.Sprintf("https://%s.example.com/%d", name, i),
			Lang:  Lang,
			Title: fmt.Sprintf("[%s] Entry %d", name, i),
		})
	}
	return &stubSearcher{name: name, subs: subs}
}

func TestAggregatorInvalidID(t *testing.T) {
	stub := stubWith("alpha", 2)
	agg := NewAggregator(time.Millisecond, stub)

	_, err := agg.SearchSubtitles(context.Background(), stremio.VideoID{IMDB: "0111161"}, "movie")
	if !errors.Is(err, stremio.ErrInvalidID) {
		t.Fatalf("SearchSubtitles() error = %v, want ErrInvalidID", err)
	}
	if stub.calls != 0 {
		t.Errorf("source was called %d times before validation, want 0", stub.calls)
	}
}

func TestAggregatorOrderAndConcat(t *testing.T) {
	a, b, c := stubWith("alpha", 2), stubWith("beta", 2), stubWith("gamma", 2)
	agg := NewAggregator(time.Millisecond, a, b, c)

	got, err := agg.SearchSubtitles(context.Background(), stremio.VideoID{IMDB: "tt0111161"}, "movie")
	if err != nil {
		t.Fatalf("SearchSubtitles() error = %v", err)
	}

	var want []stremio.Subtitle
	want = append(want, a.subs...)
	want = append(want, b.subs...)
	want = append(want, c.subs...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SearchSubtitles() mismatch (-want +got):\n%s", diff)
	}

	seen := map[string]bool{}
	for _, sub := range got {
		if seen[sub.ID] {
			t.Errorf("duplicate subtitle id %q", sub.ID)
		}
		seen[sub.ID] = true
	}
}

func TestAggregatorIsolatesPanickingSource(t *testing.T) {
	a := stubWith("alpha", 1)
	bad := &stubSearcher{name: "beta", panicky: true}
	c := stubWith("gamma", 1)
	agg := NewAggregator(time.Millisecond, a, bad, c)

	got, err := agg.SearchSubtitles(context.Background(), stremio.VideoID{IMDB: "tt0111161"}, "movie")
	if err != nil {
		t.Fatalf("SearchSubtitles() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("SearchSubtitles() returned %d results, want 2", len(got))
	}
	if got[0].ID != "alpha_0_tt0111161" || got[1].ID != "gamma_0_tt0111161" {
		t.Errorf("unexpected ids after panic isolation: %q, %q", got[0].ID, got[1].ID)
	}
	if c.calls != 1 {
		t.Errorf("source after the panicking one was called %d times, want 1", c.calls)
	}
}

func TestAggregatorHonorsDeadline(t *testing.T) {
	stub := stubWith("alpha", 2)
	agg := NewAggregator(time.Millisecond, stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := agg.SearchSubtitles(ctx, stremio.VideoID{IMDB: "tt0111161"}, "movie")
	if err != nil {
		t.Fatalf("SearchSubtitles() error = %v, want nil on expired context", err)
	}
	if len(got) != 0 {
		t.Errorf("SearchSubtitles() = %v, want empty on expired context", got)
	}
	if stub.calls != 0 {
		t.Errorf("source was called %d times on expired context, want 0", stub.calls)
	}
}

func TestAggregatorThrottlesPerSource(t *testing.T) {
	stub := stubWith("alpha", 1)
	interval := 50 * time.Millisecond
	agg := NewAggregator(interval, stub)

	ctx := context.Background()
	videoID := stremio.VideoID{IMDB: "tt0111161"}

	start := time.Now()
	agg.SearchSubtitles(ctx, videoID, "movie")
	agg.SearchSubtitles(ctx, videoID, "movie")
	elapsed := time.Since(start)

	if elapsed < interval {
		t.Errorf("two searches finished in %v, want at least %v between source calls", elapsed, interval)
	}
	if stub.calls != 2 {
		t.Errorf("source called %d times, want 2", stub.calls)
	}
}
