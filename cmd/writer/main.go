package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/propstack/estate-finder/pkg/common"
	"github.com/propstack/estate-finder/pkg/index"
	"github.com/propstack/estate-finder/pkg/messaging"
	"github.com/propstack/estate-finder/pkg/storage"
)

var market = "ng"

func init() {
	if m, ok := os.LookupEnv("MARKET"); ok {
		market = m
	}
}

// gotSaveTrigger is written from concurrent HTTP handlers, unlike the
// reader where only the consumer goroutines touch it.
type app struct {
	gotSaveTrigger atomic.Bool
	conn           *amqp.Connection
	storage        *storage.DiskStorage
	index          *index.ListingIndex
}

func (a *app) connectAmqp(amqpUrl string) {
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
	defer ch.Close()
	for _, topic := range []messaging.ChangeTopic{
		messaging.ListingsUpsertedTopic,
		messaging.ListingDeletedTopic,
		messaging.SettingsChangeTopic,
	} {
		if err := messaging.DefineTopic(ch, market, topic); err != nil {
			log.Fatalf("Failed to declare topic %s: %v", topic, err)
		}
	}
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
	if amqpUrl, ok := os.LookupEnv("RABBIT_HOST"); ok {
		a.connectAmqp(amqpUrl)
		defer a.conn.Close()
	} else {
		log.Printf("RABBIT_HOST not set, running without change feed")
	}

	auth, err := NewTokenAuth()
	if err != nil {
		log.Fatalf("Auth setup failed: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /admin/login", auth.Login)
	mux.HandleFunc("POST /admin/logout", auth.Logout)
	mux.HandleFunc("POST /admin/listings", auth.Middleware(a.UpsertListings))
	mux.HandleFunc("DELETE /admin/listings/{id}", auth.Middleware(a.DeleteListing))
	mux.HandleFunc("POST /admin/settings", auth.Middleware(a.UpdateSettings))
	mux.HandleFunc("POST /admin/save", auth.Middleware(a.Save))

	ticker := time.NewTicker(time.Minute)
	go func() {
		for range ticker.C {
			if a.gotSaveTrigger.Swap(false) {
				if err := a.storage.SaveListings(a.index.Snapshot()); err != nil {
					log.Printf("Failed to save listings: %v", err)
					a.gotSaveTrigger.Store(true)
				}
			}
		}
	}()

	cfg := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       60 * time.Second,
		Write:      60 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       10 * time.Second,
	})
	srv := common.NewServerWithTimeouts(nil, cfg)
	srv.Addr = ":8081"
	srv.Handler = mux

	saveHook := func(ctx context.Context) error {
		return diskStorage.SaveListings(listingIndex.Snapshot())
	}
	common.RunServerWithShutdown(srv, "listing admin api", cfg.Shutdown, cfg.Hook, saveHook)
}
