package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/propstack/estate-finder/pkg/messaging"
	"github.com/propstack/estate-finder/pkg/types"
)

func (a *app) publish(topic messaging.ChangeTopic, data any) {
	if a.conn == nil {
		return
	}
	if err := messaging.SendChange(a.conn, market, topic, data); err != nil {
		log.Printf("Failed to publish %s: %v", topic, err)
	}
}

// UpsertListings ingests a batch. The whole batch is validated before any
// record is applied so a bad payload never half-updates the index.
func (a *app) UpsertListings(w http.ResponseWriter, r *http.Request) {
	batch := uuid.NewString()
	var listings []types.Listing
	if err := json.NewDecoder(r.Body).Decode(&listings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for i := range listings {
		if err := listings[i].Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	a.index.HandleListings(listings)
	a.gotSaveTrigger.Store(true)
	a.publish(messaging.ListingsUpsertedTopic, listings)
	log.Printf("Batch %s upserted %d listings", batch, len(listings))
	w.WriteHeader(http.StatusOK)
}

func (a *app) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		http.Error(w, "invalid listing id", http.StatusBadRequest)
		return
	}
	a.index.DeleteListing(types.ListingId(id))
	a.gotSaveTrigger.Store(true)
	a.publish(messaging.ListingDeletedTopic, messaging.DeleteMessage{Id: uint(id)})
	w.WriteHeader(http.StatusOK)
}

func (a *app) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	settings := types.Settings{}
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	settings.Normalize()
	types.CurrentSettings.Lock()
	types.CurrentSettings.Currency = settings.Currency
	types.CurrentSettings.PageSize = settings.PageSize
	types.CurrentSettings.Unlock()
	if err := a.storage.SaveSettings(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.publish(messaging.SettingsChangeTopic, &settings)
	w.WriteHeader(http.StatusOK)
}

func (a *app) Save(w http.ResponseWriter, r *http.Request) {
	if err := a.storage.SaveListings(a.index.Snapshot()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.gotSaveTrigger.Store(false)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
