package domain

import "time"

// PageInfo describes the page on which an event fired.
type PageInfo struct {
	URL      string  `json:"url" bson:"url"`
	Title    string  `json:"title" bson:"title"`
	Referrer *string `json:"referrer,omitempty" bson:"referrer,omitempty"`
}

// DeviceInfo describes the client device.
type DeviceInfo struct {
	Type    string `json:"type" bson:"type"`
	OS      string `json:"os" bson:"os"`
	Browser string `json:"browser" bson:"browser"`
}

// EventLocation is the coarse geo attribution of an event.
type EventLocation struct {
	Country string `json:"country" bson:"country"`
	City    string `json:"city" bson:"city"`
}

// EventProperties carries event-type specific payload fields, each
// independently optional.
type EventProperties struct {
	ProductID   *string  `json:"product_id,omitempty" bson:"product_id,omitempty"`
	SearchQuery *string  `json:"search_query,omitempty" bson:"search_query,omitempty"`
	Revenue     *float64 `json:"revenue,omitempty" bson:"revenue,omitempty"`
	Currency    *string  `json:"currency,omitempty" bson:"currency,omitempty"`
}

// AnalyticsEvent is the canonical document stored in the analytics_events
// collection. UserID and AnonymousID are drawn independently: an event
// may carry both, either, or neither.
type AnalyticsEvent struct {
	ID              string          `json:"_id" bson:"_id"`
	Timestamp       time.Time       `json:"timestamp" bson:"timestamp"`
	EventType       string          `json:"event_type" bson:"event_type"`
	SessionID       string          `json:"session_id" bson:"session_id"`
	UserID          *string         `json:"user_id,omitempty" bson:"user_id,omitempty"`
	AnonymousID     *string         `json:"anonymous_id,omitempty" bson:"anonymous_id,omitempty"`
	Page            PageInfo        `json:"page" bson:"page"`
	Device          DeviceInfo      `json:"device" bson:"device"`
	Location        *EventLocation  `json:"location,omitempty" bson:"location,omitempty"`
	Properties      EventProperties `json:"properties" bson:"properties"`
	UserAgent       string          `json:"user_agent" bson:"user_agent"`
	IPAddress       string          `json:"ip_address" bson:"ip_address"`
	SessionDuration *int            `json:"session_duration,omitempty" bson:"session_duration,omitempty"`
}
