// internal/models/usage.go
package models

import (
	"time"
)

// CreditUsage is an append-only record of credits consumed by one generation.
type CreditUsage struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	AssetID         string    `bson:"asset_id" json:"asset_id"`
	CreditsConsumed int       `bson:"credits_consumed" json:"credits_consumed"`
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
}
