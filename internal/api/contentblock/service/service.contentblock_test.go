package blocksvc

import (
	"errors"
	"testing"

	blockmodels "campaign_planner/internal/api/contentblock/models"
	"campaign_planner/internal/common"
)

func TestCheckStatusChange_ScheduledAtGuard(t *testing.T) {
	// Block đã có lịch đăng không được quay về idea, kể cả khi bảng
	// chuyển trạng thái không nói gì về hướng đó.
	block := blockmodels.ContentBlock{
		Status:      blockmodels.BlockStatusScheduled,
		ScheduledAt: 1767225600,
	}

	err := checkStatusChange(block, blockmodels.BlockStatusIdea)
	if err == nil {
		t.Fatal("block có scheduledAt phải bị chặn khi chuyển về idea")
	}

	var stateErr *common.Error
	if !errors.As(err, &stateErr) {
		t.Fatalf("lỗi phải là *common.Error, nhận được %T", err)
	}
	if stateErr.Code != common.ErrCodeBusinessState {
		t.Errorf("mã lỗi phải là ErrCodeBusinessState, nhận được %v", stateErr.Code)
	}
}

func TestCheckStatusChange_FollowsTransitionTable(t *testing.T) {
	block := blockmodels.ContentBlock{Status: blockmodels.BlockStatusApproved}

	if err := checkStatusChange(block, blockmodels.BlockStatusScheduled); err != nil {
		t.Errorf("approved -> scheduled phải hợp lệ: %v", err)
	}
	if err := checkStatusChange(block, blockmodels.BlockStatusIdea); err == nil {
		t.Error("approved -> idea phải bị từ chối theo bảng chuyển trạng thái")
	}

	// Guard scheduledAt không được nới lỏng bảng: idea chưa có lịch vẫn
	// không nhảy thẳng sang in_process được.
	idea := blockmodels.ContentBlock{Status: blockmodels.BlockStatusIdea}
	if err := checkStatusChange(idea, blockmodels.BlockStatusInProcess); err == nil {
		t.Error("idea -> in_process phải bị từ chối")
	}
}

func TestBuildReplaceSet_CopiesContentFields(t *testing.T) {
	source := blockmodels.ContentBlock{
		Title:         "Hook mở bài mới",
		Hooks:         []string{"hook 1", "hook 2"},
		ScriptOutline: "Mở bài - thân bài - kết",
		Description:   "Mô tả nguồn",
		ContentType:   "educational",
		CtaType:       "soft",
		Format:        "video",
		Platform:      "tiktok",
		ScheduledAt:   1767225600,
		Status:        blockmodels.BlockStatusInProcess,
	}
	target := blockmodels.ContentBlock{
		Status:      blockmodels.BlockStatusScheduled,
		ScheduledAt: 1769904000,
	}

	set := buildReplaceSet(source, target)

	want := map[string]interface{}{
		"title":         source.Title,
		"scriptOutline": source.ScriptOutline,
		"description":   source.Description,
		"contentType":   source.ContentType,
		"ctaType":       source.CtaType,
		"format":        source.Format,
	}
	for key, value := range want {
		if set[key] != value {
			t.Errorf("set[%q] = %v, muốn %v", key, set[key], value)
		}
	}
	hooks, ok := set["hooks"].([]string)
	if !ok || len(hooks) != 2 || hooks[0] != "hook 1" {
		t.Errorf("hooks phải được chép nguyên vẹn, nhận được %v", set["hooks"])
	}

	// Lịch đăng, trạng thái và platform của đích không nằm trong $set:
	// replace chỉ thay nội dung, không thay lịch.
	if len(set) != 7 {
		t.Errorf("$set phải có đúng 7 trường nội dung, nhận được %d: %v", len(set), set)
	}
	if _, exists := set["scheduledAt"]; exists {
		t.Error("scheduledAt của đích không được ghi đè")
	}
	if _, exists := set["status"]; exists {
		t.Error("status của đích đang nhất quán thì không được đổi")
	}
}

func TestBuildReplaceSet_FixesInconsistentIdea(t *testing.T) {
	source := blockmodels.ContentBlock{Title: "Nguồn"}
	target := blockmodels.ContentBlock{
		Status:      blockmodels.BlockStatusIdea,
		ScheduledAt: 1767225600,
	}

	set := buildReplaceSet(source, target)
	if set["status"] != blockmodels.BlockStatusScheduled {
		t.Errorf("đích idea đã có scheduledAt phải được sửa về scheduled, nhận được %v", set["status"])
	}
	if len(set) != 8 {
		t.Errorf("$set phải có 7 trường nội dung cộng status, nhận được %d", len(set))
	}
}
