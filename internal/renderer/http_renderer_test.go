package renderer

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/chatrelay/media-gateway-go/internal/mock"
	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
)

var etagPattern = regexp.MustCompile(`^"[0-9a-f]{8}"$`)

func TestRenderStats_CacheMissComputesAndCaches(t *testing.T) {
	c := &mock.Cache{}
	aggregator := &mock.StatsAggregator{Out: port.StatsOutput{
		Total:     4,
		ByKind:    map[string]int{"image": 4},
		ByStorage: map[string]int{"cached": 4},
	}}
	r := NewHTTPRenderer(c)

	raw, etag, err := r.RenderStats(context.Background(), aggregator, port.StatsInput{TenantID: "client-1"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if !aggregator.Called {
		t.Fatal("a miss must run the aggregator")
	}
	var out port.StatsOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("payload should be valid JSON: %v", err)
	}
	if out.Total != 4 {
		t.Errorf("unexpected payload %+v", out)
	}
	if !etagPattern.MatchString(etag) {
		t.Errorf("etag %q should be a quoted 8-digit checksum", etag)
	}
	if !c.SetCalled {
		t.Error("the rendered payload should be cached")
	}
	if c.SetKey != "client-1:all:0" {
		t.Errorf("unexpected cache key %q", c.SetKey)
	}
	if c.SetEtag != etag {
		t.Errorf("cached etag %q should match the returned one %q", c.SetEtag, etag)
	}
}

func TestRenderStats_CacheHitSkipsAggregator(t *testing.T) {
	c := &mock.Cache{StatsOut: []byte(`{"total":4}`), EtagOut: `"cafebabe"`}
	aggregator := &mock.StatsAggregator{}
	r := NewHTTPRenderer(c)

	raw, etag, err := r.RenderStats(context.Background(), aggregator, port.StatsInput{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if aggregator.Called {
		t.Error("a hit must not reach the aggregator")
	}
	if string(raw) != `{"total":4}` || etag != `"cafebabe"` {
		t.Errorf("unexpected cached response (%q, %q)", raw, etag)
	}
}

func TestRenderStats_AggregatorFailure(t *testing.T) {
	c := &mock.Cache{}
	aggregator := &mock.StatsAggregator{Err: context.DeadlineExceeded}
	r := NewHTTPRenderer(c)

	if _, _, err := r.RenderStats(context.Background(), aggregator, port.StatsInput{}); err == nil {
		t.Fatal("aggregator failures must surface")
	}
	if c.SetCalled {
		t.Error("nothing should be cached on failure")
	}
}

func TestCacheKey(t *testing.T) {
	kind := model.KindImage
	tests := []struct {
		name string
		in   port.StatsInput
		want string
	}{
		{"empty", port.StatsInput{}, "all:all:0"},
		{"tenant only", port.StatsInput{TenantID: "client-1"}, "client-1:all:0"},
		{"full", port.StatsInput{TenantID: "client-1", Kind: &kind, Limit: 10}, "client-1:image:10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cacheKey(tc.in); got != tc.want {
				t.Errorf("cacheKey() = %q, want %q", got, tc.want)
			}
		})
	}
}
