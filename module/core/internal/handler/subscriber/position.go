package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
)

const topicPattern = "/fleet/unicon/+/position"

type positionService interface {
	UpdatePosition(ctx context.Context, uniconID string, pos domain.Position, source domain.UpdateSource) error
}

type positionMessage struct {
	UniconID string   `json:"unicon_id"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

type PositionSubscriber struct {
	client      mqtt.Client
	positionSvc positionService
}

func NewPositionSubscriber(client mqtt.Client, positionSvc positionService) *PositionSubscriber {
	return &PositionSubscriber{
		client:      client,
		positionSvc: positionSvc,
	}
}

func (s *PositionSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *PositionSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw positionMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid position message: %v", err)
		return
	}

	if err := validatePositionMessage(&raw); err != nil {
		log.Printf("validation error: %v", err)
		return
	}

	pos := domain.Position{Lat: *raw.Lat, Lng: *raw.Lng}

	err := s.positionSvc.UpdatePosition(context.Background(), raw.UniconID, pos, domain.SourceMQTT)
	if errors.Is(err, domain.ErrNotFound) {
		log.Printf("unknown unicon id %s, dropping update", raw.UniconID)
		return
	}
	if err != nil {
		log.Printf("update position error: %v", err)
	}
}

func validatePositionMessage(msg *positionMessage) error {
	if msg.UniconID == "" {
		return fmt.Errorf("unicon_id: required")
	}
	if msg.Lat == nil {
		return fmt.Errorf("lat: required")
	}
	if msg.Lng == nil {
		return fmt.Errorf("lng: required")
	}
	return nil
}
