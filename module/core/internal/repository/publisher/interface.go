package publisher

import (
	"context"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
)

type PositionPublisher interface {
	PublishUpdate(ctx context.Context, event *domain.PositionEvent) error
}
