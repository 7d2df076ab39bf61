// Package prompts holds the prompt template for every asset category.
package prompts

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"marketing-asset-backend/internal/models"
)

const (
	defaultObjectives = "increase engagement and conversions"
	defaultContext    = "No additional context provided"
)

// ErrUnknownCategory is returned when no template exists for a category.
var ErrUnknownCategory = errors.New("unknown asset category")

// Fields are the values substituted into a template.
type Fields struct {
	BusinessName      string
	ProductService    string
	TargetAudience    string
	Tone              string
	Objectives        []string
	AdditionalContext string
}

// FieldsFromRequest builds template fields from a generation request.
func FieldsFromRequest(req *models.GenerateAssetRequest) Fields {
	f := Fields{
		BusinessName:   req.BusinessName,
		ProductService: req.ProductService,
		TargetAudience: req.TargetAudience,
		Tone:           req.Tone,
		Objectives:     req.Objectives,
	}
	if req.AdditionalContext != nil {
		f.AdditionalContext = *req.AdditionalContext
	}
	return f
}

const header = `Product/Service: {{.ProductService}}
Target Audience: {{.TargetAudience}}
Tone: {{.Tone}}
Objectives: {{.Objectives}}
Additional Context: {{.AdditionalContext}}
`

var sources = map[models.AssetType]string{
	models.AssetEmailCampaign: `Create a compelling email marketing campaign for {{.BusinessName}}.

` + header + `
Please create:
1. An engaging subject line
2. Email body with clear call-to-action
3. Brief follow-up email suggestion

Format the response with clear sections and make it ready to use.`,

	models.AssetSocialMediaAd: `Create high-converting social media ad copy for {{.BusinessName}}.

` + header + `
Please create ad copy for:
1. Facebook/Instagram (with multiple variations)
2. LinkedIn (professional version)
3. Twitter/X (concise version)

Include suggested hashtags and call-to-action buttons.`,

	models.AssetLandingPage: `Create compelling landing page copy for {{.BusinessName}}.

` + header + `
Please create:
1. Powerful headline and subheadline
2. Hero section copy
3. Benefits/features section
4. Social proof section
5. Strong call-to-action
6. FAQ section

Structure it as a complete landing page layout.`,

	models.AssetSalesFunnel: `Create a complete sales funnel strategy for {{.BusinessName}}.

` + header + `
Please create:
1. Lead magnet ideas and copy
2. Email sequence (5 emails)
3. Sales page structure
4. Upsell/cross-sell suggestions
5. Follow-up strategy

Provide actionable content for each stage.`,

	models.AssetBlogPost: `Create an engaging blog post for {{.BusinessName}}.

` + header + `
Please create:
1. SEO-optimized title and meta description
2. Complete blog post with subheadings
3. Introduction, body, and conclusion
4. Call-to-action at the end
5. Suggested internal/external links

Make it informative and engaging for the target audience.`,

	models.AssetPressRelease: `Create a professional press release for {{.BusinessName}}.

` + header + `
Please create:
1. Compelling headline
2. Professional press release body
3. Company boilerplate
4. Contact information template
5. Distribution suggestions

Follow standard press release format and make it newsworthy.`,
}

var templates = parseAll()

func parseAll() map[models.AssetType]*template.Template {
	out := make(map[models.AssetType]*template.Template, len(sources))
	for category, src := range sources {
		out[category] = template.Must(template.New(string(category)).Option("missingkey=error").Parse(src))
	}
	return out
}

// Render fills the template for category with fields.
func Render(category models.AssetType, fields Fields) (string, error) {
	tmpl, ok := templates[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	data := struct {
		BusinessName      string
		ProductService    string
		TargetAudience    string
		Tone              string
		Objectives        string
		AdditionalContext string
	}{
		BusinessName:      fields.BusinessName,
		ProductService:    fields.ProductService,
		TargetAudience:    fields.TargetAudience,
		Tone:              fields.Tone,
		Objectives:        strings.Join(fields.Objectives, ", "),
		AdditionalContext: fields.AdditionalContext,
	}
	if data.Tone == "" {
		data.Tone = models.DefaultTone
	}
	if len(fields.Objectives) == 0 {
		data.Objectives = defaultObjectives
	}
	if data.AdditionalContext == "" {
		data.AdditionalContext = defaultContext
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", category, err)
	}
	return b.String(), nil
}
