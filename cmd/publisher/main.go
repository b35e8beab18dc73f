package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type positionMessage struct {
	UniconID string  `json:"unicon_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

func randomUniconID() string {
	return fmt.Sprintf("UNC-%04d", rand.Intn(10000))
}

func randomLat() float64 {
	return -90 + rand.Float64()*180
}

func randomLng() float64 {
	return -180 + rand.Float64()*360
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("unicon-mock-publisher")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	uniconPool := make([]string, 5)
	for i := range uniconPool {
		uniconPool[i] = randomUniconID()
	}

	log.Printf("connected to %s, publishing every %ds...", broker, intervalSec)
	log.Printf("unicon pool: %v", uniconPool)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		uid := uniconPool[rand.Intn(len(uniconPool))]

		msg := positionMessage{
			UniconID: uid,
			Lat:      randomLat(),
			Lng:      randomLng(),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/fleet/unicon/%s/position", uid)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
