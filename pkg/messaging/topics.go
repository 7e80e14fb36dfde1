package messaging

// ChangeTopic names one listing lifecycle feed. Topics are prefixed with an
// environment name so staging and production share a broker safely.
type ChangeTopic string

const (
	ListingsUpsertedTopic ChangeTopic = "listing_upserted"
	ListingDeletedTopic   ChangeTopic = "listing_deleted"
	SettingsChangeTopic   ChangeTopic = "settings_change"
	TrackingTopic         ChangeTopic = "tracking"
)

type RabbitConfig struct {
	Url    string
	Prefix string
}

// DeleteMessage is the payload on ListingDeletedTopic.
type DeleteMessage struct {
	Id uint `json:"id"`
}
