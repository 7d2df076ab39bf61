// internal/models/user.go
package models

import (
	"time"
)

// PlanType is the subscription tier of a user.
type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanStarter    PlanType = "starter"
	PlanGrowth     PlanType = "growth"
	PlanEnterprise PlanType = "enterprise"
)

// InitialCredits is the balance granted to a newly created user.
const InitialCredits = 100

type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Plan      PlanType  `bson:"plan" json:"plan"`
	Credits   int       `bson:"credits" json:"credits"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Identity names the caller a request acts on behalf of.
type Identity struct {
	Email string
	Name  string
}
