package service

import (
	"context"
	"fmt"
	"log"

	"aiactcheck/internal/cache"
	"aiactcheck/internal/model"
	"aiactcheck/internal/repository"
	"aiactcheck/internal/scoring"
)

// ScoreService computes and persists score results. The scorer itself is a
// pure function; version continuity and caching live here.
type ScoreService struct {
	responseRepo repository.ResponseRepo
	scoreRepo    repository.ScoreRepo
	scoreCache   cache.ScoreCache
	scorer       *scoring.Scorer
	broadcaster  Broadcaster
}

// NewScoreService creates a new score service
func NewScoreService(
	responseRepo repository.ResponseRepo,
	scoreRepo repository.ScoreRepo,
	scoreCache cache.ScoreCache,
	scorer *scoring.Scorer,
) *ScoreService {
	return &ScoreService{
		responseRepo: responseRepo,
		scoreRepo:    scoreRepo,
		scoreCache:   scoreCache,
		scorer:       scorer,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *ScoreService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Compute recalculates the score from the stored answers and persists it as
// the next version for the use case
func (s *ScoreService) Compute(ctx context.Context, usecaseID string) (*model.ScoreResult, error) {
	responses, err := s.responseRepo.GetByUsecase(ctx, usecaseID)
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}

	result := s.scorer.Calculate(usecaseID, responses)

	version, err := s.scoreRepo.LatestVersion(ctx, usecaseID)
	if err != nil {
		return nil, fmt.Errorf("resolve score version: %w", err)
	}
	result.Version = version + 1

	if err := s.scoreRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("save score: %w", err)
	}

	if err := s.scoreCache.Set(ctx, usecaseID, result); err != nil {
		log.Printf("cache score for %s: %v", usecaseID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUsecase(usecaseID, "score_computed", map[string]interface{}{
			"score":     result.Score,
			"riskLevel": result.RiskLevel,
			"version":   result.Version,
		})
	}

	return result, nil
}

// Latest returns the most recent score, preferring the cache
func (s *ScoreService) Latest(ctx context.Context, usecaseID string) (*model.ScoreResult, error) {
	cached, err := s.scoreCache.Get(ctx, usecaseID)
	if err != nil {
		log.Printf("read score cache for %s: %v", usecaseID, err)
	}
	if cached != nil {
		return cached, nil
	}

	result, err := s.scoreRepo.Latest(ctx, usecaseID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		if err := s.scoreCache.Set(ctx, usecaseID, result); err != nil {
			log.Printf("cache score for %s: %v", usecaseID, err)
		}
	}
	return result, nil
}

// History returns all stored score versions, newest first
func (s *ScoreService) History(ctx context.Context, usecaseID string) ([]*model.ScoreResult, error) {
	return s.scoreRepo.History(ctx, usecaseID)
}
