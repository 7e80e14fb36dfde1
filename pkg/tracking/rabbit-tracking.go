package tracking

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/propstack/estate-finder/pkg/messaging"
	"github.com/propstack/estate-finder/pkg/types"
)

type RabbitTracking struct {
	prefix     string
	connection *amqp.Connection
}

func NewRabbitTracking(url, prefix string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		prefix: prefix,
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ret.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, prefix, messaging.TrackingTopic); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) {
	err := messaging.SendChange(t.connection, t.prefix, messaging.TrackingTopic, data)
	if err != nil {
		log.Printf("Error sending tracking event: %v", err)
	}
}

type BaseEvent struct {
	EventId   string `json:"event_id"`
	SessionId int    `json:"session_id"`
	Event     string `json:"event"`
}

func makeBaseEvent(event string, sessionId int) *BaseEvent {
	return &BaseEvent{
		EventId:   uuid.NewString(),
		SessionId: sessionId,
		Event:     event,
	}
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func clientIp(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}

func (t *RabbitTracking) TrackSession(sessionId int, r *http.Request) {
	t.send(SessionEvent{
		BaseEvent: makeBaseEvent("session", sessionId),
		UserAgent: r.UserAgent(),
		Ip:        clientIp(r),
		Language:  r.Header.Get("Accept-Language"),
	})
}

type SearchEvent struct {
	*BaseEvent
	*types.SearchCriteria
	NumberOfResults int    `json:"noi"`
	Page            int    `json:"page"`
	Referer         string `json:"referer,omitempty"`
}

func (t *RabbitTracking) TrackSearch(sessionId int, criteria *types.SearchCriteria, resultLen int, page int, r *http.Request) {
	t.send(SearchEvent{
		BaseEvent:       makeBaseEvent("search", sessionId),
		SearchCriteria:  criteria,
		NumberOfResults: resultLen,
		Page:            page,
		Referer:         r.Referer(),
	})
}

type ClickEvent struct {
	*BaseEvent
	Listing  types.ListingId `json:"listing"`
	Position int             `json:"position"`
}

func (t *RabbitTracking) TrackListingClick(sessionId int, listingId types.ListingId, position int) {
	t.send(ClickEvent{
		BaseEvent: makeBaseEvent("click", sessionId),
		Listing:   listingId,
		Position:  position,
	})
}
