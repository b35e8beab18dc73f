package database

import (
	"context"
	"encoding/json"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
)

type InfoRepository interface {
	ListUniconIDs(ctx context.Context) ([]string, error)
	GetStations(ctx context.Context, uniconID string) (json.RawMessage, error)
}

type PositionRepository interface {
	ListPositions(ctx context.Context) ([]domain.UniconPosition, error)
	GetPosition(ctx context.Context, uniconID string) (*domain.Position, error)
	UpdatePosition(ctx context.Context, uniconID string, pos domain.Position) error
}
