package service

import (
	"context"

	"lumera-client/internal/dto"
	"lumera-client/internal/entity"
	"lumera-client/internal/pkg/logger"
	"lumera-client/pkg/progress"
)

type IProgressService interface {
	History(ctx context.Context) []entity.Analysis
	Snapshot(ctx context.Context) progress.Snapshot
}

// HistoryAPI is the slice of the API client the aggregator needs.
type HistoryAPI interface {
	History(ctx context.Context) (*dto.HistoryResponse, error)
}

type progressService struct {
	client HistoryAPI
	logger logger.ILogger
}

func NewProgressService(client HistoryAPI, log logger.ILogger) IProgressService {
	return &progressService{client: client, logger: log}
}

// History returns the user's analyses newest-first as delivered. A fetch
// failure is logged and surfaced as the empty state; history being down must
// never block navigation.
func (s *progressService) History(ctx context.Context) []entity.Analysis {
	res, err := s.client.History(ctx)
	if err != nil {
		s.logger.Warn("progress", "failed to fetch analyses", map[string]interface{}{
			"error": err.Error(),
		})
		return []entity.Analysis{}
	}
	return res.Analyses
}

// Snapshot recomputes the derived statistics from a fresh fetch. Nothing is
// cached across fetches; the derivations themselves are pure.
func (s *progressService) Snapshot(ctx context.Context) progress.Snapshot {
	return progress.BuildSnapshot(s.History(ctx))
}
