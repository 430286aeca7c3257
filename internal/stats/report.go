package stats

import (
	"context"

	"github.com/verte-zerg/katype/internal/model"
	"github.com/verte-zerg/katype/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Runs    []model.Run
	Summary Summary
}

// BuildReport loads runs matching cfg and keeps the last cfg.Last of them.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	runs, err := st.ListResults(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}
	return Report{
		Runs:    runs,
		Summary: Summarize(runs),
	}, nil
}
