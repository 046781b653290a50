// Package blockdto chứa DTO cho domain ContentBlock.
// File: dto.contentblock.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package blockdto

// ContentBlockCreateInput là input để tạo ContentBlock
type ContentBlockCreateInput struct {
	UserID  string `json:"userId" validate:"required" transform:"str_objectid,map=UserID"`
	BrandID string `json:"brandId" validate:"required" transform:"str_objectid,map=BrandID"`

	ProjectID   string `json:"projectId,omitempty" transform:"str_objectid_ptr,map=ProjectID,optional"`
	PlanID      string `json:"planId,omitempty" transform:"str_objectid_ptr,map=PlanID,optional"`
	PlanPhaseID string `json:"planPhaseId,omitempty" transform:"str_objectid_ptr,map=PlanPhaseID,optional"`
	PhaseLabel  string `json:"phaseLabel,omitempty" validate:"omitempty,max=100"`

	Title         string   `json:"title" validate:"required,max=300"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	ContentType   string   `json:"contentType" validate:"required,oneof=educational promo teaser launch social_proof objection behind_scenes authority"`
	Platform      string   `json:"platform" validate:"required,oneof=tiktok instagram youtube facebook linkedin"`
	Format        string   `json:"format,omitempty" validate:"omitempty,oneof=reel short post carousel story live"`
	Hooks         []string `json:"hooks,omitempty" validate:"omitempty,dive,max=300"`
	ScriptOutline string   `json:"scriptOutline,omitempty" validate:"omitempty,max=5000"`
	CtaType       string   `json:"ctaType" validate:"required,oneof=soft hard educational"`
	ProductID     string   `json:"productId,omitempty"`
	Tags          []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`

	// RFC3339; khi có giá trị thì status tạo mới là scheduled
	ScheduledAt string `json:"scheduledAt,omitempty" transform:"str_time,map=ScheduledAt,optional,format=2006-01-02T15:04:05Z07:00"`
}

// ContentBlockUpdateInput là input để cập nhật nội dung ContentBlock.
// Trạng thái và lịch đăng đi qua các endpoint riêng, không sửa qua update chung.
type ContentBlockUpdateInput struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,max=300"`
	Description   *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	ContentType   *string   `json:"contentType,omitempty" validate:"omitempty,oneof=educational promo teaser launch social_proof objection behind_scenes authority"`
	Platform      *string   `json:"platform,omitempty" validate:"omitempty,oneof=tiktok instagram youtube facebook linkedin"`
	Format        *string   `json:"format,omitempty" validate:"omitempty,oneof=reel short post carousel story live"`
	Hooks         *[]string `json:"hooks,omitempty" validate:"omitempty,dive,max=300"`
	ScriptOutline *string   `json:"scriptOutline,omitempty" validate:"omitempty,max=5000"`
	CtaType       *string   `json:"ctaType,omitempty" validate:"omitempty,oneof=soft hard educational"`
	ProductID     *string   `json:"productId,omitempty"`
	Tags          *[]string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
	PhaseLabel    *string   `json:"phaseLabel,omitempty" validate:"omitempty,max=100"`
}

// UpdateStatusInput là input cho PATCH /:id/status
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=idea approved scheduled in_process terminated"` // Trạng thái đích
}

// AttachPlanInput là input cho PATCH /:id/attach-plan
type AttachPlanInput struct {
	PlanID      string `json:"planId" validate:"required"` // Plan cần gắn vào
	PlanPhaseID string `json:"planPhaseId,omitempty"`      // Phase trong plan (không kiểm tra tồn tại)
	PhaseLabel  string `json:"phaseLabel,omitempty" validate:"omitempty,max=100"`
}

// ScheduleInput là input cho PATCH /:id/schedule
type ScheduleInput struct {
	ScheduledAt string `json:"scheduledAt" validate:"required"` // RFC3339
}
