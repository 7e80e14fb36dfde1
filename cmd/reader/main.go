package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/propstack/estate-finder/pkg/common"
	"github.com/propstack/estate-finder/pkg/index"
	"github.com/propstack/estate-finder/pkg/messaging"
	"github.com/propstack/estate-finder/pkg/server"
	"github.com/propstack/estate-finder/pkg/storage"
	"github.com/propstack/estate-finder/pkg/tracking"
	"github.com/propstack/estate-finder/pkg/types"
)

var market = "ng"

func init() {
	if m, ok := os.LookupEnv("MARKET"); ok {
		market = m
	}
}

type app struct {
	gotSaveTrigger bool
	conn           *amqp.Connection
	storage        *storage.DiskStorage
	index          *index.ListingIndex
}

func (a *app) ConnectAmqp(amqpUrl string) {
	conn, err := amqp.DialConfig(amqpUrl, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	a.conn = conn
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(ch, market, messaging.ListingsUpsertedTopic, func(d amqp.Delivery) error {
		var listings []types.Listing
		if err := json.Unmarshal(d.Body, &listings); err != nil {
			log.Printf("Failed to unmarshal upsert message: %v", err)
			return nil
		}
		log.Printf("Got upserts %d", len(listings))
		a.index.HandleListings(listings)
		a.gotSaveTrigger = true
		return nil
	})

	deleteCh, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(deleteCh, market, messaging.ListingDeletedTopic, func(d amqp.Delivery) error {
		var msg messaging.DeleteMessage
		if err := json.Unmarshal(d.Body, &msg); err != nil {
			log.Printf("Failed to unmarshal delete message: %v", err)
			return nil
		}
		a.index.DeleteListing(msg.Id)
		a.gotSaveTrigger = true
		return nil
	})

	settingsCh, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(settingsCh, market, messaging.SettingsChangeTopic, func(d amqp.Delivery) error {
		log.Printf("Got settings change")
		if err := a.storage.LoadSettings(); err != nil {
			log.Printf("Could not reload settings: %v", err)
		}
		return nil
	})

	log.Printf("Listening for listing changes")

	ticker := time.NewTicker(time.Minute)
	go func() {
		for range ticker.C {
			if a.gotSaveTrigger {
				log.Println("Saving listings due to trigger")
				if err := a.storage.SaveListings(a.index.Snapshot()); err != nil {
					log.Printf("Failed to save listings: %v", err)
				}
				a.gotSaveTrigger = false
			}
		}
	}()
}

func main() {
	diskStorage := storage.NewDiskStorage(market, "data")
	if err := diskStorage.LoadSettings(); err != nil {
		log.Printf("Could not load settings from file: %v", err)
	}

	listingIndex := index.NewListingIndex()
	listings, err := diskStorage.LoadListings()
	if err != nil {
		log.Printf("Could not load listing snapshot: %v", err)
	} else {
		listingIndex.HandleListings(listings)
	}

	a := &app{
		storage: diskStorage,
		index:   listingIndex,
	}

	var tracker tracking.Tracking
	amqpUrl, hasAmqp := os.LookupEnv("RABBIT_HOST")
	if hasAmqp {
		a.ConnectAmqp(amqpUrl)
		rt, err := tracking.NewRabbitTracking(amqpUrl, market)
		if err != nil {
			log.Printf("Failed to connect to rabbitmq for tracking: %v", err)
		} else {
			tracker = rt
			defer rt.Close()
		}
	}

	ws := &server.WebServer{
		Index:   listingIndex,
		Tracker: tracker,
	}
	if redisUrl, ok := os.LookupEnv("REDIS_URL"); ok {
		ws.Cache = server.NewCache(redisUrl, os.Getenv("REDIS_PASSWORD"), 0)
		defer ws.Cache.Close()
	}

	cfg := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       10 * time.Second,
	})
	srv := common.NewServerWithTimeouts(nil, cfg)
	srv.Addr = ":8080"
	srv.Handler = ws.CreateRouter()

	saveHook := func(ctx context.Context) error {
		return diskStorage.SaveListings(listingIndex.Snapshot())
	}
	common.RunServerWithShutdown(srv, "listing search api", cfg.Shutdown, cfg.Hook, saveHook)
}
