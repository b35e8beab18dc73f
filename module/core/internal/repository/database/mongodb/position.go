package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/database"
)

var _ database.PositionRepository = (*PositionRepo)(nil)

type PositionRepo struct {
	coll *mongo.Collection
}

func NewPositionRepo(coll *mongo.Collection) *PositionRepo {
	return &PositionRepo{coll: coll}
}

func (r *PositionRepo) ListPositions(ctx context.Context) ([]domain.UniconPosition, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "unicon_id", Value: 1},
		{Key: "position", Value: 1},
		{Key: "_id", Value: 0},
	})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find positions: %w", err)
	}

	results := []domain.UniconPosition{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode positions: %w", err)
	}
	return results, nil
}

func (r *PositionRepo) GetPosition(ctx context.Context, uniconID string) (*domain.Position, error) {
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "position", Value: 1},
		{Key: "_id", Value: 0},
	})

	var doc domain.UniconPosition
	err := r.coll.FindOne(ctx, bson.D{{Key: "unicon_id", Value: uniconID}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find position: %w", err)
	}
	return &doc.Position, nil
}

// UpdatePosition sets position.lat/position.lng on the matching document.
// Update semantics only: a miss reports ErrNotFound, no document is created.
func (r *PositionRepo) UpdatePosition(ctx context.Context, uniconID string, pos domain.Position) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "unicon_id", Value: uniconID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "position.lat", Value: pos.Lat},
			{Key: "position.lng", Value: pos.Lng},
		}}},
	)
	if err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
