package mongodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/database"
)

var _ database.InfoRepository = (*InfoRepo)(nil)

type InfoRepo struct {
	coll *mongo.Collection
}

func NewInfoRepo(coll *mongo.Collection) *InfoRepo {
	return &InfoRepo{coll: coll}
}

func (r *InfoRepo) ListUniconIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "unicon_id", Value: 1},
		{Key: "_id", Value: 0},
	})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find unicon ids: %w", err)
	}

	var docs []struct {
		UniconID string `bson:"unicon_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode unicon ids: %w", err)
	}

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.UniconID
	}
	return ids, nil
}

// GetStations returns the projected {stations: ...} document as plain JSON.
// The stations blob is owned by the provisioning side and is never
// interpreted here, so it is re-serialized verbatim (relaxed extended JSON).
func (r *InfoRepo) GetStations(ctx context.Context, uniconID string) (json.RawMessage, error) {
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "stations", Value: 1},
		{Key: "_id", Value: 0},
	})

	var raw bson.Raw
	err := r.coll.FindOne(ctx, bson.D{{Key: "unicon_id", Value: uniconID}}, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find stations: %w", err)
	}

	out, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("encode stations: %w", err)
	}
	return json.RawMessage(out), nil
}
