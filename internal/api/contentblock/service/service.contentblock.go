// Package blocksvc chứa service cho domain ContentBlock: CRUD và vòng đời trạng thái.
// File: service.contentblock.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package blocksvc

import (
	"context"
	"fmt"

	basesvc "campaign_planner/internal/api/base/service"
	blockmodels "campaign_planner/internal/api/contentblock/models"
	"campaign_planner/internal/common"
	"campaign_planner/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentBlockService là service quản lý ContentBlock.
type ContentBlockService struct {
	*basesvc.BaseServiceMongoImpl[blockmodels.ContentBlock]
}

// NewContentBlockService tạo mới ContentBlockService
func NewContentBlockService() (*ContentBlockService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ContentBlocks)
	if !exist {
		return nil, fmt.Errorf("failed to get content_blocks collection: %v", common.ErrNotFound)
	}

	return &ContentBlockService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[blockmodels.ContentBlock](collection),
	}, nil
}

// InsertOne tạo mới ContentBlock. Block đã có scheduledAt thì tạo thẳng ở trạng thái
// scheduled, ngược lại bắt đầu từ idea.
func (s *ContentBlockService) InsertOne(ctx context.Context, data blockmodels.ContentBlock) (blockmodels.ContentBlock, error) {
	if data.ScheduledAt != 0 {
		data.Status = blockmodels.BlockStatusScheduled
	} else if data.Status == "" {
		data.Status = blockmodels.BlockStatusIdea
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// findOwned tìm block theo id trong phạm vi user sở hữu.
func (s *ContentBlockService) findOwned(ctx context.Context, blockID, userID primitive.ObjectID) (blockmodels.ContentBlock, error) {
	block, err := s.FindOne(ctx, bson.M{"_id": blockID, "userId": userID}, nil)
	if err != nil {
		return block, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy content block", common.StatusNotFound, err)
	}
	return block, nil
}

// checkStatusChange kiểm tra một chuyển trạng thái trên block: chặn riêng việc
// đưa block đã có scheduledAt về idea, còn lại theo bảng chuyển trạng thái.
func checkStatusChange(block blockmodels.ContentBlock, target string) error {
	if target == blockmodels.BlockStatusIdea && block.ScheduledAt != 0 {
		return common.NewStateError(
			"Block đã có lịch đăng, không thể quay về trạng thái idea",
			block.Status, blockmodels.StatusTransitions[block.Status],
		)
	}
	return blockmodels.ValidateTransition(block.Status, target)
}

// UpdateStatus chuyển trạng thái block. Trả về block sau cập nhật và trạng thái
// trước đó để handler ghi audit.
func (s *ContentBlockService) UpdateStatus(ctx context.Context, blockID, userID primitive.ObjectID, target string) (blockmodels.ContentBlock, string, error) {
	block, err := s.findOwned(ctx, blockID, userID)
	if err != nil {
		return block, "", err
	}

	if err := checkStatusChange(block, target); err != nil {
		return block, block.Status, err
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": blockID, "userId": userID},
		bson.M{"$set": bson.M{"status": target}}, nil)
	return updated, block.Status, err
}

// AttachPlan gắn block vào một plan (và phase nếu có). Block đang ở idea được
// tự động nâng lên approved: gắn vào plan nghĩa là đã duyệt.
func (s *ContentBlockService) AttachPlan(ctx context.Context, blockID, userID, planID primitive.ObjectID, phaseID *primitive.ObjectID, phaseLabel string) (blockmodels.ContentBlock, error) {
	block, err := s.findOwned(ctx, blockID, userID)
	if err != nil {
		return block, err
	}

	set := bson.M{"planId": planID}
	if phaseID != nil {
		set["planPhaseId"] = *phaseID
	}
	if phaseLabel != "" {
		set["phaseLabel"] = phaseLabel
	}
	if block.Status == blockmodels.BlockStatusIdea {
		set["status"] = blockmodels.BlockStatusApproved
	}

	return s.UpdateOne(ctx, bson.M{"_id": blockID, "userId": userID}, bson.M{"$set": set}, nil)
}

// Schedule đặt lịch đăng cho block. Chỉ hợp lệ từ approved hoặc scheduled;
// các trạng thái khác bị từ chối theo bảng chuyển trạng thái.
func (s *ContentBlockService) Schedule(ctx context.Context, blockID, userID primitive.ObjectID, scheduledAt int64) (blockmodels.ContentBlock, error) {
	block, err := s.findOwned(ctx, blockID, userID)
	if err != nil {
		return block, err
	}

	if block.Status != blockmodels.BlockStatusApproved && block.Status != blockmodels.BlockStatusScheduled {
		if err := blockmodels.ValidateTransition(block.Status, blockmodels.BlockStatusScheduled); err != nil {
			return block, err
		}
	}

	return s.UpdateOne(ctx, bson.M{"_id": blockID, "userId": userID},
		bson.M{"$set": bson.M{"scheduledAt": scheduledAt, "status": blockmodels.BlockStatusScheduled}}, nil)
}

// buildReplaceSet dựng $set chép các trường nội dung từ nguồn sang đích.
// scheduledAt và status của đích được giữ nguyên; riêng đích đang idea mà đã có
// scheduledAt (dữ liệu cũ không nhất quán) thì sửa status về scheduled.
func buildReplaceSet(source, target blockmodels.ContentBlock) bson.M {
	set := bson.M{
		"title":         source.Title,
		"hooks":         source.Hooks,
		"scriptOutline": source.ScriptOutline,
		"description":   source.Description,
		"contentType":   source.ContentType,
		"ctaType":       source.CtaType,
		"format":        source.Format,
	}
	if target.Status == blockmodels.BlockStatusIdea && target.ScheduledAt != 0 {
		set["status"] = blockmodels.BlockStatusScheduled
	}
	return set
}

// ReplaceFrom chép các trường nội dung từ block nguồn sang block đích.
func (s *ContentBlockService) ReplaceFrom(ctx context.Context, targetID, sourceID, userID primitive.ObjectID) (blockmodels.ContentBlock, error) {
	source, err := s.findOwned(ctx, sourceID, userID)
	if err != nil {
		return source, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy content block nguồn", common.StatusNotFound, err)
	}
	target, err := s.findOwned(ctx, targetID, userID)
	if err != nil {
		return target, err
	}

	return s.UpdateOne(ctx, bson.M{"_id": targetID, "userId": userID},
		bson.M{"$set": buildReplaceSet(source, target)}, nil)
}
