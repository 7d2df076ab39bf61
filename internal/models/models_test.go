package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() GenerateAssetRequest {
	return GenerateAssetRequest{
		AssetType:      AssetEmailCampaign,
		BusinessName:   "Acme Coffee",
		ProductService: "Single-origin beans",
		TargetAudience: "Home baristas",
	}
}

func TestGenerateAssetRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *GenerateAssetRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *GenerateAssetRequest) {}},
		{
			name:    "unknown asset type",
			mutate:  func(r *GenerateAssetRequest) { r.AssetType = "billboard" },
			wantErr: "asset_type must be one of",
		},
		{
			name:    "missing asset type",
			mutate:  func(r *GenerateAssetRequest) { r.AssetType = "" },
			wantErr: "asset_type is required",
		},
		{
			name:    "blank business name",
			mutate:  func(r *GenerateAssetRequest) { r.BusinessName = "   " },
			wantErr: "business_name is required",
		},
		{
			name:    "missing audience",
			mutate:  func(r *GenerateAssetRequest) { r.TargetAudience = "" },
			wantErr: "target_audience is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateAssetRequest_PromptData(t *testing.T) {
	req := validRequest()
	req.ApplyDefaults()

	data := req.PromptData()
	assert.Equal(t, "email_campaign", data["asset_type"])
	assert.Equal(t, "professional", data["tone"])
	assert.Equal(t, []interface{}{}, data["objectives"])
	assert.Nil(t, data["additional_context"])

	ctx := "Holiday launch"
	req.AdditionalContext = &ctx
	req.Objectives = []string{"grow list"}
	data = req.PromptData()
	assert.Equal(t, "Holiday launch", data["additional_context"])
	assert.Equal(t, []interface{}{"grow list"}, data["objectives"])
}

func TestAssetType_DisplayName(t *testing.T) {
	assert.Equal(t, "Email Campaign", AssetEmailCampaign.DisplayName())
	assert.Equal(t, "Social Media Ad", AssetSocialMediaAd.DisplayName())
	assert.Equal(t, "Press Release", AssetPressRelease.DisplayName())
	assert.Len(t, AssetTypes, 6)
	for _, at := range AssetTypes {
		assert.True(t, at.IsValid())
	}
	assert.False(t, AssetType("newsletter").IsValid())
}

func TestPlanLimits_JSON(t *testing.T) {
	b, err := json.Marshal(PlanLimits)
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, float64(100), decoded["free"]["credits"])
	assert.Equal(t, float64(50), decoded["free"]["assets"])
	assert.Equal(t, float64(10000), decoded["enterprise"]["credits"])
	assert.Equal(t, "unlimited", decoded["enterprise"]["assets"])
}
