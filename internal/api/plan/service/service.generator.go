// File: service.generator.go - client gọi dịch vụ sinh cấu trúc plan.
// Đầu ra được sanitize trước khi dùng: enum lạ thay bằng mặc định (có đếm và log),
// dayOffset kẹp vào [0,6], productId rỗng bị loại.
package plansvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	planmodels "campaign_planner/internal/api/plan/models"
	"campaign_planner/config"
	"campaign_planner/internal/common"
	"campaign_planner/internal/logger"
)

// GeneratedItem là một content item thô từ generator, chưa qua sanitize.
type GeneratedItem struct {
	Title                string `json:"title"`
	Pillar               string `json:"pillar"`
	Format               string `json:"format"`
	CtaType              string `json:"ctaType"`
	EmotionalTrigger     string `json:"emotionalTrigger"`
	RecommendedDayOffset int    `json:"recommendedDayOffset"`
	RecommendedTime      string `json:"recommendedTime"`
	ProductID            string `json:"productId"`
}

// GeneratedPhase là một phase thô từ generator.
type GeneratedPhase struct {
	Name         string          `json:"name"`
	WeekNumber   int             `json:"weekNumber"`
	Description  string          `json:"description"`
	ContentItems []GeneratedItem `json:"contentItems"`
}

// GeneratedStructure là toàn bộ cấu trúc plan mà generator trả về.
type GeneratedStructure struct {
	Phases []GeneratedPhase `json:"phases"`
}

// BrandContext là phần hồ sơ brand đưa vào prompt.
type BrandContext struct {
	Name           string
	Tone           string
	ContentPillars []string
	MainGoal       string
	AgeRange       string
	Gender         string
	Interests      []string
	Platforms      []string
	MaxConsecutive int
	MinGapDays     int
}

// PlanGenerator gọi chat completion để sinh cấu trúc plan dưới dạng JSON.
type PlanGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewPlanGenerator tạo PlanGenerator từ cấu hình server.
func NewPlanGenerator(cfg *config.Configuration) *PlanGenerator {
	clientConfig := openai.DefaultConfig(cfg.GeneratorAPIKey)
	if cfg.GeneratorBaseURL != "" {
		clientConfig.BaseURL = cfg.GeneratorBaseURL
	}
	return &PlanGenerator{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.GeneratorModel,
		timeout: time.Duration(cfg.GeneratorTimeout) * time.Second,
	}
}

const generatorSystemInstruction = `You are a social media content strategist. ` +
	`Respond ONLY with a valid JSON object matching the requested structure. No markdown, no explanation.`

// Generate gọi generator và trả về cấu trúc đã sanitize.
// Mọi lỗi từ dịch vụ ngoài được bọc thành lỗi chung, không lộ chi tiết nội bộ.
func (g *PlanGenerator) Generate(ctx context.Context, plan *planmodels.Plan, brand BrandContext) (*GeneratedStructure, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generatorSystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(plan, brand)},
		},
	})
	if err != nil {
		return nil, common.NewGeneratorError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, common.NewGeneratorError(errors.New("generator trả về response rỗng"))
	}

	raw := stripCodeFence(resp.Choices[0].Message.Content)

	var structure GeneratedStructure
	if err := json.Unmarshal([]byte(raw), &structure); err != nil {
		return nil, common.NewGeneratorError(fmt.Errorf("không parse được JSON từ generator: %w", err))
	}
	if len(structure.Phases) == 0 {
		return nil, common.NewGeneratorError(errors.New("generator trả về phases rỗng"))
	}

	if coercions := sanitizeStructure(&structure); coercions > 0 {
		logger.GetAppLogger().Warnf("Generator trả về %d giá trị ngoài enum cho plan %s, đã thay bằng mặc định", coercions, plan.ID.Hex())
	}
	return &structure, nil
}

// sanitizeStructure ép đầu ra của generator về miền giá trị hợp lệ.
// Trả về số lần phải sửa để caller log lại.
func sanitizeStructure(structure *GeneratedStructure) int {
	validFormats := map[string]bool{
		planmodels.ItemFormatReel:     true,
		planmodels.ItemFormatCarousel: true,
		planmodels.ItemFormatStory:    true,
		planmodels.ItemFormatPost:     true,
	}
	validCtaTypes := map[string]bool{
		planmodels.CtaTypeSoft:        true,
		planmodels.CtaTypeHard:        true,
		planmodels.CtaTypeEducational: true,
	}

	coercions := 0
	for pi := range structure.Phases {
		for ii := range structure.Phases[pi].ContentItems {
			item := &structure.Phases[pi].ContentItems[ii]
			if !validFormats[item.Format] {
				item.Format = planmodels.ItemFormatPost
				coercions++
			}
			if !validCtaTypes[item.CtaType] {
				item.CtaType = planmodels.CtaTypeSoft
				coercions++
			}
			if item.RecommendedDayOffset < 0 {
				item.RecommendedDayOffset = 0
				coercions++
			} else if item.RecommendedDayOffset > 6 {
				item.RecommendedDayOffset = 6
				coercions++
			}
			item.ProductID = strings.TrimSpace(item.ProductID)
		}
	}
	return coercions
}

// stripCodeFence gỡ rào ```json nếu generator vẫn bọc JSON trong markdown.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// buildPrompt dựng prompt từ cấu hình plan và hồ sơ brand.
func buildPrompt(plan *planmodels.Plan, brand BrandContext) string {
	pillars := strings.Join(brand.ContentPillars, ", ")
	if pillars == "" {
		pillars = "Educational, Promotional, Storytelling"
	}
	interests := strings.Join(brand.Interests, ", ")
	if interests == "" {
		interests = "general audience"
	}
	mainGoal := brand.MainGoal
	if mainGoal == "" {
		mainGoal = "grow audience & increase sales"
	}
	products := "No specific products - brand-level content"
	if len(plan.ProductIDs) > 0 {
		products = strings.Join(plan.ProductIDs, ", ")
	}

	intensityGuide := map[string]string{
		planmodels.IntensityLow:        "Keep promotional content minimal (max 10-15%). Focus on value and education.",
		planmodels.IntensityBalanced:   "Mix value-first content with moderate promotion (20-30% promo).",
		planmodels.IntensityAggressive: "Drive hard conversions with strong CTAs. Up to 40% can be promotional.",
	}

	mix := plan.ContentMixPreference
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a complete %d-week strategic content plan for the brand below.\n\n", plan.DurationWeeks)
	fmt.Fprintf(&b, "BRAND PROFILE\nName: %s\nTone of voice: %s\nContent pillars: %s\nMain goal: %s\n", brand.Name, brand.Tone, pillars, mainGoal)
	fmt.Fprintf(&b, "Target audience: %s, %s - interests: %s\nPlatforms: %s\n\n", orDefault(brand.AgeRange, "all ages"), orDefault(brand.Gender, "all genders"), interests, strings.Join(plan.Platforms, ", "))
	fmt.Fprintf(&b, "PLAN CONFIG\nObjective: %s\nDuration: %d weeks\nPosts per week: %d\nPromotion intensity: %s\nProducts to feature: %s\nStart date: %s\n\n",
		strings.ReplaceAll(plan.Objective, "_", " "), plan.DurationWeeks, plan.PostingFrequency, plan.PromotionIntensity, products, time.UnixMilli(plan.StartDate).UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "CONTENT MIX TARGETS\nEducational: %d%%\nPromotional: %d%%\nStorytelling: %d%%\nAuthority: %d%%\n\n", mix.Educational, mix.Promotional, mix.Storytelling, mix.Authority)
	fmt.Fprintf(&b, "PROMOTION RULES\n%s\n", intensityGuide[plan.PromotionIntensity])
	if brand.MaxConsecutive > 0 {
		fmt.Fprintf(&b, "- Never place more than %d promotional posts in a row.\n", brand.MaxConsecutive)
	}
	if brand.MinGapDays > 0 {
		fmt.Fprintf(&b, "- Ensure at least %d days gap between promotional posts.\n", brand.MinGapDays)
	}
	b.WriteString("- A \"hard\" CTA means direct sell / buy now. A \"soft\" CTA means follow / save / share. An \"educational\" CTA means learn more.\n\n")
	fmt.Fprintf(&b, "OUTPUT REQUIREMENTS\n- Structure the %d weeks into named phases (Tease, Launch, Educate, Engage, Close...). Week numbers are 1-based and must cover all weeks.\n", plan.DurationWeeks)
	fmt.Fprintf(&b, "- Generate exactly %d content items per week.\n", plan.PostingFrequency)
	b.WriteString("- recommendedDayOffset: 0-6 within the week, spread posts out.\n")
	b.WriteString("- recommendedTime: \"HH:MM\" at audience-optimal times.\n")
	fmt.Fprintf(&b, "- pillar must exactly match one of: %s.\n", pillars)
	b.WriteString("- format is one of: reel, carousel, story, post. ctaType is one of: soft, hard, educational.\n")
	b.WriteString(`- Respond with JSON: {"phases":[{"name","weekNumber","description","contentItems":[{"title","pillar","format","ctaType","emotionalTrigger","recommendedDayOffset","recommendedTime","productId"}]}]}`)
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
