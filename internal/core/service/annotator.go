package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/api/metrics"
	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

const defaultFanoutWorkers = 8

// sentimentAnnotator fans analysis calls out over a fixed set of workers.
// Each item fails in isolation: a broken analysis leaves that review with an
// empty sentiment and touches nothing else. Review order is preserved
// because workers write into the slice they were handed, never reorder it.
type sentimentAnnotator struct {
	analyzer ports.SentimentAnalyzer
	workers  int
	logger   zerolog.Logger
}

func newSentimentAnnotator(analyzer ports.SentimentAnalyzer, workers int, logger zerolog.Logger) *sentimentAnnotator {
	if workers <= 0 {
		workers = defaultFanoutWorkers
	}
	return &sentimentAnnotator{analyzer: analyzer, workers: workers, logger: logger}
}

// AnnotateAll attaches a sentiment label to every review, blocking until all
// items are done.
func (a *sentimentAnnotator) AnnotateAll(ctx context.Context, reviews []domain.Review) {
	if len(reviews) == 0 {
		return
	}

	jobs := make(chan domain.Review)
	var wg sync.WaitGroup
	wg.Add(a.workers)
	for i := 0; i < a.workers; i++ {
		go func() {
			defer wg.Done()
			for review := range jobs {
				a.annotate(ctx, review)
			}
		}()
	}

	for _, review := range reviews {
		jobs <- review
	}
	close(jobs)
	wg.Wait()
}

func (a *sentimentAnnotator) annotate(ctx context.Context, review domain.Review) {
	label, err := a.analyzer.Analyze(ctx, review.Text())
	if err != nil {
		a.logger.Warn().Err(err).Msg("sentiment analysis failed for review")
		metrics.SentimentAnnotationsTotal.WithLabelValues("failed").Inc()
		review.SetSentiment("")
		return
	}
	metrics.SentimentAnnotationsTotal.WithLabelValues("ok").Inc()
	review.SetSentiment(label)
}
