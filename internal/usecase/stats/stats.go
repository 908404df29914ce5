package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

const DefaultSampleLimit = 50

type aggregatorSrv struct {
	repo port.MediaRepository
}

// compile-time check: *aggregatorSrv must satisfy port.StatsAggregator
var _ port.StatsAggregator = (*aggregatorSrv)(nil)

// NewStatsAggregator constructs the sampled cache-hit reporter. It scans at
// most the N most-recent matching records; this is a monitoring sampler, not
// an accounting system.
func NewStatsAggregator(repo port.MediaRepository) port.StatsAggregator {
	return &aggregatorSrv{repo: repo}
}

func (s *aggregatorSrv) ComputeStats(ctx context.Context, in port.StatsInput) (port.StatsOutput, error) {
	limit := in.Limit
	if limit <= 0 || limit > DefaultSampleLimit {
		limit = DefaultSampleLimit
	}

	records, err := s.repo.ListRecent(ctx, port.RecordFilter{TenantID: in.TenantID, Kind: in.Kind}, limit)
	if err != nil {
		return port.StatsOutput{}, fmt.Errorf("sampling records: %w", err)
	}

	out := port.StatsOutput{
		SampledAt:     time.Now().UTC(),
		Total:         len(records),
		ByKind:        map[string]int{},
		ByStorage:     map[string]int{},
		Percentages:   map[string]float64{},
		SampleLimited: len(records) == limit,
	}

	for i := range records {
		rec := &records[i]
		out.ByKind[string(rec.Kind)]++

		switch {
		case rec.Resolved():
			out.ByStorage["cached"]++
		case rec.OriginURL != nil && *rec.OriginURL != "":
			out.ByStorage["origin"]++
		default:
			out.ByStorage["unknown"]++
		}
	}

	// percentages cover the sampled set only
	if out.Total > 0 {
		for k, n := range out.ByStorage {
			out.Percentages[k] = roundPct(float64(n) / float64(out.Total) * 100)
		}
	}

	return out, nil
}

func roundPct(v float64) float64 {
	return math.Round(v*100) / 100
}
