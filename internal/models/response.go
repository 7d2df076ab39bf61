// internal/models/response.go
package models

import (
	"encoding/json"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UnlimitedAssets marks a plan without an asset cap.
const UnlimitedAssets = -1

// AssetLimit is a plan's asset cap; UnlimitedAssets renders as "unlimited".
type AssetLimit int

func (l AssetLimit) MarshalJSON() ([]byte, error) {
	if l == UnlimitedAssets {
		return json.Marshal("unlimited")
	}
	return json.Marshal(int(l))
}

type PlanLimit struct {
	Credits int        `json:"credits"`
	Assets  AssetLimit `json:"assets"`
}

// PlanLimits is the static allowance table shown on the dashboard.
var PlanLimits = map[PlanType]PlanLimit{
	PlanFree:       {Credits: 100, Assets: 50},
	PlanStarter:    {Credits: 500, Assets: 200},
	PlanGrowth:     {Credits: 2000, Assets: 1000},
	PlanEnterprise: {Credits: 10000, Assets: UnlimitedAssets},
}

type DashboardStatsResponse struct {
	User        *User                  `json:"user"`
	TotalAssets int64                  `json:"total_assets"`
	CreditsUsed int64                  `json:"credits_used"`
	AssetCounts map[AssetType]int64    `json:"asset_counts"`
	PlanLimits  map[PlanType]PlanLimit `json:"plan_limits"`
}
