// Package models - ContentBlock thuộc domain ContentBlock.
package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campaign_planner/internal/common"
)

// Trạng thái vòng đời của ContentBlock
const (
	BlockStatusIdea       = "idea"
	BlockStatusApproved   = "approved"
	BlockStatusScheduled  = "scheduled"
	BlockStatusInProcess  = "in_process"
	BlockStatusTerminated = "terminated"
)

// Loại nội dung
const (
	ContentTypeEducational  = "educational"
	ContentTypePromo        = "promo"
	ContentTypeTeaser       = "teaser"
	ContentTypeLaunch       = "launch"
	ContentTypeSocialProof  = "social_proof"
	ContentTypeObjection    = "objection"
	ContentTypeBehindScenes = "behind_scenes"
	ContentTypeAuthority    = "authority"
)

// StatusTransitions là bảng chuyển trạng thái cho phép (trạng thái hiện tại → danh sách đích hợp lệ).
// terminated là trạng thái kết thúc, không có đường quay lại idea.
var StatusTransitions = map[string][]string{
	BlockStatusIdea:       {BlockStatusApproved, BlockStatusTerminated},
	BlockStatusApproved:   {BlockStatusScheduled, BlockStatusTerminated},
	BlockStatusScheduled:  {BlockStatusInProcess, BlockStatusTerminated},
	BlockStatusInProcess:  {BlockStatusTerminated},
	BlockStatusTerminated: {},
}

// ValidateTransition kiểm tra việc chuyển từ current sang target theo bảng StatusTransitions.
func ValidateTransition(current, target string) error {
	allowed, ok := StatusTransitions[current]
	if !ok {
		return common.NewStateError(fmt.Sprintf("Trạng thái '%s' không hợp lệ", current), current, nil)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return common.NewStateError(
		fmt.Sprintf("Không thể chuyển trạng thái từ '%s' sang '%s'", current, target),
		current, allowed,
	)
}

// ContentBlock - Đơn vị nội dung độc lập với vòng đời riêng, có thể gắn vào Plan.
type ContentBlock struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID  primitive.ObjectID `json:"userId" bson:"userId" index:"compound:block_user_status"`
	BrandID primitive.ObjectID `json:"brandId" bson:"brandId" index:"single:1"`

	ProjectID   *primitive.ObjectID `json:"projectId,omitempty" bson:"projectId,omitempty"`
	PlanID      *primitive.ObjectID `json:"planId,omitempty" bson:"planId,omitempty" index:"single:1"`
	PlanPhaseID *primitive.ObjectID `json:"planPhaseId,omitempty" bson:"planPhaseId,omitempty"`
	PhaseLabel  string              `json:"phaseLabel,omitempty" bson:"phaseLabel,omitempty"` // Ví dụ: "Week 1 - Tease"

	Title         string   `json:"title" bson:"title"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
	ContentType   string   `json:"contentType" bson:"contentType"`
	Platform      string   `json:"platform" bson:"platform"`
	Format        string   `json:"format,omitempty" bson:"format,omitempty"`
	Hooks         []string `json:"hooks" bson:"hooks"`
	ScriptOutline string   `json:"scriptOutline,omitempty" bson:"scriptOutline,omitempty"`
	CtaType       string   `json:"ctaType" bson:"ctaType"`
	ProductID     string   `json:"productId,omitempty" bson:"productId,omitempty"`
	Tags          []string `json:"tags" bson:"tags"`

	// UnixMilli; 0 = chưa lên lịch
	ScheduledAt int64 `json:"scheduledAt,omitempty" bson:"scheduledAt,omitempty" index:"single:1"`

	Status string `json:"status" bson:"status" default:"idea" index:"compound:block_user_status"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
