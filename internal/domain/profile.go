package domain

import "time"

// GeoLocation pins a profile to a city with coordinates.
type GeoLocation struct {
	City        string     `json:"city" bson:"city"`
	Country     string     `json:"country" bson:"country"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"` // [longitude, latitude]
}

// SocialHandles holds optional links to external accounts.
type SocialHandles struct {
	Twitter  *string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty" bson:"github,omitempty"`
}

// ProfileDetails nests the personal portion of a user profile.
type ProfileDetails struct {
	FirstName string        `json:"first_name" bson:"first_name"`
	LastName  string        `json:"last_name" bson:"last_name"`
	Age       int           `json:"age" bson:"age"`
	Location  GeoLocation   `json:"location" bson:"location"`
	Interests []string      `json:"interests" bson:"interests"`
	Social    SocialHandles `json:"social" bson:"social"`
}

// NotificationFlags controls the per-channel notification opt-ins.
type NotificationFlags struct {
	Email bool `json:"email" bson:"email"`
	SMS   bool `json:"sms" bson:"sms"`
	Push  bool `json:"push" bson:"push"`
}

// Preferences nests account-level settings.
type Preferences struct {
	Theme         string            `json:"theme" bson:"theme"`
	Language      string            `json:"language" bson:"language"`
	Notifications NotificationFlags `json:"notifications" bson:"notifications"`
}

// UserProfile is the canonical document stored in the users collection.
// Profiles are generated in the independent phase and referenced by id
// from orders, product ratings, and (optionally) analytics events.
type UserProfile struct {
	ID          string         `json:"_id" bson:"_id"`
	Username    string         `json:"username" bson:"username"`
	Email       string         `json:"email" bson:"email"`
	Profile     ProfileDetails `json:"profile" bson:"profile"`
	Preferences Preferences    `json:"preferences" bson:"preferences"`
	Tags        []string       `json:"tags" bson:"tags"`
	IsActive    bool           `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
}
