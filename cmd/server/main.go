package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/KATANA0x00/unicon-mongodb-api/config"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core"
)

func main() {
	cfg := config.Load()

	mongoClient, err := config.NewMongo(cfg)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	db := mongoClient.Database(cfg.MongoDatabase)

	coreModule, err := core.Build(db, amqpConn, mqttClient, cfg.InfoCollection, cfg.PositionCollection)
	if err != nil {
		log.Fatalf("core module: %v", err)
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	r := gin.Default()

	health := config.NewHealthChecker(mongoClient, amqpConn, mqttClient)
	health.Register(r)

	coreModule.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
