// internal/models/asset.go
package models

import (
	"time"
)

// AssetType is one of the fixed marketing content categories.
type AssetType string

const (
	AssetEmailCampaign AssetType = "email_campaign"
	AssetSocialMediaAd AssetType = "social_media_ad"
	AssetLandingPage   AssetType = "landing_page"
	AssetSalesFunnel   AssetType = "sales_funnel"
	AssetBlogPost      AssetType = "blog_post"
	AssetPressRelease  AssetType = "press_release"
)

// AssetTypes lists every category in display order.
var AssetTypes = []AssetType{
	AssetEmailCampaign,
	AssetSocialMediaAd,
	AssetLandingPage,
	AssetSalesFunnel,
	AssetBlogPost,
	AssetPressRelease,
}

var assetTypeNames = map[AssetType]string{
	AssetEmailCampaign: "Email Campaign",
	AssetSocialMediaAd: "Social Media Ad",
	AssetLandingPage:   "Landing Page",
	AssetSalesFunnel:   "Sales Funnel",
	AssetBlogPost:      "Blog Post",
	AssetPressRelease:  "Press Release",
}

// IsValid reports whether t is one of the known categories.
func (t AssetType) IsValid() bool {
	_, ok := assetTypeNames[t]
	return ok
}

// DisplayName returns the human readable category name, e.g. "Email Campaign".
func (t AssetType) DisplayName() string {
	return assetTypeNames[t]
}

type Asset struct {
	ID          string                 `bson:"_id" json:"id"`
	UserID      string                 `bson:"user_id" json:"user_id"`
	Title       string                 `bson:"title" json:"title"`
	AssetType   AssetType              `bson:"asset_type" json:"asset_type"`
	Content     string                 `bson:"content" json:"content"`
	PromptData  map[string]interface{} `bson:"prompt_data" json:"prompt_data"`
	CreditsUsed int                    `bson:"credits_used" json:"credits_used"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time              `bson:"updated_at" json:"updated_at"`
}

// GenerateAssetRequest is the body of POST /assets/generate.
type GenerateAssetRequest struct {
	AssetType         AssetType `json:"asset_type" validate:"required,asset_type"`
	BusinessName      string    `json:"business_name" validate:"required,notblank"`
	ProductService    string    `json:"product_service" validate:"required,notblank"`
	TargetAudience    string    `json:"target_audience" validate:"required,notblank"`
	Tone              string    `json:"tone"`
	Objectives        []string  `json:"objectives"`
	AdditionalContext *string   `json:"additional_context"`
}

// DefaultTone is applied when a request leaves tone empty.
const DefaultTone = "professional"

// ApplyDefaults fills optional fields the way the request schema defines them.
func (r *GenerateAssetRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.Objectives == nil {
		r.Objectives = []string{}
	}
}

// PromptData snapshots the request as stored on the generated asset.
func (r *GenerateAssetRequest) PromptData() map[string]interface{} {
	objectives := make([]interface{}, 0, len(r.Objectives))
	for _, o := range r.Objectives {
		objectives = append(objectives, o)
	}

	var additional interface{}
	if r.AdditionalContext != nil {
		additional = *r.AdditionalContext
	}

	return map[string]interface{}{
		"asset_type":         string(r.AssetType),
		"business_name":      r.BusinessName,
		"product_service":    r.ProductService,
		"target_audience":    r.TargetAudience,
		"tone":               r.Tone,
		"objectives":         objectives,
		"additional_context": additional,
	}
}

type GenerateAssetResponse struct {
	Asset            *Asset `json:"asset"`
	RemainingCredits int    `json:"remaining_credits"`
}
