package core

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"

	handler "github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/handler/http"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/handler/subscriber"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/database/mongodb"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/publisher/rabbitmq"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/service"
)

type Module struct {
	InfoSvc     *service.InfoService
	PositionSvc *service.PositionService
	handler     *handler.UniconHandler
	subscriber  *subscriber.PositionSubscriber
}

func Build(db *mongo.Database, amqpConn *amqp.Connection, mqttClient mqtt.Client, infoColl, positionColl string) (*Module, error) {
	infoRepo := mongodb.NewInfoRepo(db.Collection(infoColl))
	positionRepo := mongodb.NewPositionRepo(db.Collection(positionColl))

	positionPub, err := rabbitmq.NewPositionPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("position publisher: %w", err)
	}

	infoSvc := service.NewInfoService(infoRepo)
	positionSvc := service.NewPositionService(positionRepo, positionPub)

	h := handler.NewUniconHandler(infoSvc, positionSvc)
	sub := subscriber.NewPositionSubscriber(mqttClient, positionSvc)

	return &Module{
		InfoSvc:     infoSvc,
		PositionSvc: positionSvc,
		handler:     h,
		subscriber:  sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}
