package service

import (
	"context"
	"encoding/json"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/database"
)

type InfoService struct {
	repo database.InfoRepository
}

func NewInfoService(repo database.InfoRepository) *InfoService {
	return &InfoService{repo: repo}
}

func (s *InfoService) ListUniconIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListUniconIDs(ctx)
}

func (s *InfoService) GetStations(ctx context.Context, uniconID string) (json.RawMessage, error) {
	return s.repo.GetStations(ctx, uniconID)
}
