package models

import "time"

// Subscription is a college-level entitlement. Certain TNP admin operations
// (onboarding students) require it to be active and unexpired.
type Subscription struct {
	Active    bool      `bson:"active" json:"active"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// College groups TNP admins and students under one institution.
type College struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Subscription Subscription `bson:"subscription" json:"subscription"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}
