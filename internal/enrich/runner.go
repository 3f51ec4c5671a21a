package enrich

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/lead-enrich/internal/model"
)

// Runner drives a Session over a whole input set.
type Runner struct {
	session     *Session
	concurrency int
}

// NewRunner creates a batch runner. Concurrency below 1 is treated as 1,
// which preserves strict input-order processing.
func NewRunner(session *Session, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{session: session, concurrency: concurrency}
}

// Dedupe removes records with a previously seen linkedin_url, keeping the
// first occurrence and the input order. Records without a linkedin_url are
// dropped.
func Dedupe(records []model.InputRecord) []model.InputRecord {
	seen := make(map[string]struct{}, len(records))
	unique := make([]model.InputRecord, 0, len(records))
	for _, rec := range records {
		if rec.LinkedinURL == "" {
			continue
		}
		if _, ok := seen[rec.LinkedinURL]; ok {
			continue
		}
		seen[rec.LinkedinURL] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}

// Run deduplicates the input and resolves every surviving record, returning
// leads in first-seen input order. The first hard failure aborts the whole
// batch.
func (r *Runner) Run(ctx context.Context, records []model.InputRecord) ([]model.Lead, error) {
	runID := uuid.NewString()
	unique := Dedupe(records)

	zap.L().Info("starting enrichment run",
		zap.String("run_id", runID),
		zap.Int("input_records", len(records)),
		zap.Int("unique_records", len(unique)),
		zap.Int("concurrency", r.concurrency),
	)

	leads := make([]model.Lead, len(unique))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, rec := range unique {
		g.Go(func() error {
			lead, err := r.session.Resolve(gCtx, rec)
			if err != nil {
				return eris.Wrapf(err, "enrich: record %s", rec.LinkedinURL)
			}
			leads[i] = lead

			zap.L().Debug("record resolved",
				zap.String("run_id", runID),
				zap.String("linkedin_url", rec.LinkedinURL),
				zap.String("source", lead.Source),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fallbacks := 0
	for _, lead := range leads {
		if lead.Source == model.SourceSearchFallback {
			fallbacks++
		}
	}

	zap.L().Info("enrichment run complete",
		zap.String("run_id", runID),
		zap.Int("leads", len(leads)),
		zap.Int("search_fallbacks", fallbacks),
		zap.Int64("mobile_credits_remaining", r.session.CreditsRemaining()),
		zap.Bool("enrichment_available", r.session.EnrichmentAvailable()),
	)

	return leads, nil
}
