// Package models - Test bảng chuyển trạng thái của ContentBlock.
package models

import (
	"errors"
	"testing"

	"campaign_planner/internal/common"
)

// Liệt kê toàn bộ cặp (current, target): chỉ các cặp trong bảng được phép,
// mọi cặp còn lại phải trả về lỗi trạng thái kèm danh sách đích hợp lệ.
func TestValidateTransition_TableComplete(t *testing.T) {
	statuses := []string{
		BlockStatusIdea,
		BlockStatusApproved,
		BlockStatusScheduled,
		BlockStatusInProcess,
		BlockStatusTerminated,
	}

	allowed := func(current, target string) bool {
		for _, s := range StatusTransitions[current] {
			if s == target {
				return true
			}
		}
		return false
	}

	for _, current := range statuses {
		for _, target := range statuses {
			err := ValidateTransition(current, target)
			if allowed(current, target) {
				if err != nil {
					t.Errorf("%s -> %s phải được phép, nhận lỗi: %v", current, target, err)
				}
				continue
			}
			if err == nil {
				t.Errorf("%s -> %s phải bị chặn", current, target)
				continue
			}
			var appErr *common.Error
			if !errors.As(err, &appErr) {
				t.Errorf("%s -> %s: lỗi không phải *common.Error: %v", current, target, err)
				continue
			}
			if appErr.Code != common.ErrCodeBusinessState {
				t.Errorf("%s -> %s: muốn mã %s, nhận %s", current, target, common.ErrCodeBusinessState.Code, appErr.Code.Code)
			}
		}
	}
}

// Mọi trạng thái chưa kết thúc đều chuyển được sang terminated.
func TestValidateTransition_TerminatedReachable(t *testing.T) {
	for _, current := range []string{BlockStatusIdea, BlockStatusApproved, BlockStatusScheduled, BlockStatusInProcess} {
		if err := ValidateTransition(current, BlockStatusTerminated); err != nil {
			t.Errorf("%s -> terminated phải được phép, nhận lỗi: %v", current, err)
		}
	}
	if err := ValidateTransition(BlockStatusTerminated, BlockStatusIdea); err == nil {
		t.Error("terminated là trạng thái kết thúc, không được chuyển đi đâu")
	}
}

// Trạng thái lạ không có trong bảng cũng phải trả lỗi thay vì panic.
func TestValidateTransition_UnknownStatus(t *testing.T) {
	if err := ValidateTransition("archived", BlockStatusApproved); err == nil {
		t.Error("trạng thái không tồn tại phải trả lỗi")
	}
}
