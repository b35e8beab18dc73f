package service

import (
	"context"
	"log"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/database"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/publisher"
)

type PositionService struct {
	repo      database.PositionRepository
	publisher publisher.PositionPublisher
}

func NewPositionService(repo database.PositionRepository, pub publisher.PositionPublisher) *PositionService {
	return &PositionService{repo: repo, publisher: pub}
}

func (s *PositionService) ListPositions(ctx context.Context) ([]domain.UniconPosition, error) {
	return s.repo.ListPositions(ctx)
}

func (s *PositionService) GetPosition(ctx context.Context, uniconID string) (*domain.Position, error) {
	return s.repo.GetPosition(ctx, uniconID)
}

// UpdatePosition applies the store update and then emits a position event.
// The event stream is best-effort: the document is already updated, so a
// publish failure is logged instead of failing the call.
func (s *PositionService) UpdatePosition(ctx context.Context, uniconID string, pos domain.Position, source domain.UpdateSource) error {
	if err := s.repo.UpdatePosition(ctx, uniconID, pos); err != nil {
		return err
	}

	if s.publisher == nil {
		return nil
	}
	event := &domain.PositionEvent{
		UniconID: uniconID,
		Position: pos,
		Source:   source,
	}
	if err := s.publisher.PublishUpdate(ctx, event); err != nil {
		log.Printf("publish position event for %s: %v", uniconID, err)
	}
	return nil
}
