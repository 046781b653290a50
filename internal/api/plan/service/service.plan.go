// Package plansvc chứa service cho domain Plan: vòng đời plan, sinh cấu trúc
// và chuyển đổi sang lịch đăng bài.
// File: service.plan.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package plansvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	basesvc "campaign_planner/internal/api/base/service"
	brandmodels "campaign_planner/internal/api/brand/models"
	brandsvc "campaign_planner/internal/api/brand/service"
	calmodels "campaign_planner/internal/api/calendarentry/models"
	calsvc "campaign_planner/internal/api/calendarentry/service"
	plandto "campaign_planner/internal/api/plan/dto"
	planmodels "campaign_planner/internal/api/plan/models"
	"campaign_planner/internal/common"
	"campaign_planner/internal/global"
	"campaign_planner/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// planLocks giữ một mutex cho mỗi plan đang convert. Hai request convert cùng một
// plan chạy tuần tự, tránh race delete/insert làm mất entry.
type planLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPlanLocks() *planLocks {
	return &planLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire khóa theo planID và trả về hàm mở khóa.
func (p *planLocks) acquire(planID primitive.ObjectID) func() {
	key := planID.Hex()
	p.mu.Lock()
	lock, ok := p.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[key] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// PlanService là service quản lý Plan.
type PlanService struct {
	*basesvc.BaseServiceMongoImpl[planmodels.Plan]
	brandService *brandsvc.BrandService
	entryService *calsvc.CalendarEntryService
	generator    *PlanGenerator
	convertLocks *planLocks
}

// NewPlanService tạo mới PlanService
func NewPlanService() (*PlanService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Plans)
	if !exist {
		return nil, fmt.Errorf("failed to get plans collection: %v", common.ErrNotFound)
	}
	brandService, err := brandsvc.NewBrandService()
	if err != nil {
		return nil, err
	}
	entryService, err := calsvc.NewCalendarEntryService()
	if err != nil {
		return nil, err
	}

	return &PlanService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[planmodels.Plan](collection),
		brandService:         brandService,
		entryService:         entryService,
		generator:            NewPlanGenerator(global.ServerConfig),
		convertLocks:         newPlanLocks(),
	}, nil
}

// InsertOne tạo mới Plan: kiểm tra brand tồn tại và thuộc về user, suy ra endDate,
// ép status draft và phases rỗng.
func (s *PlanService) InsertOne(ctx context.Context, data planmodels.Plan) (planmodels.Plan, error) {
	if _, err := s.brandService.FindOwned(ctx, data.BrandID, data.UserID); err != nil {
		return planmodels.Plan{}, err
	}

	start := time.UnixMilli(data.StartDate).UTC()
	data.EndDate = planmodels.ComputeEndDate(start, data.DurationWeeks).UnixMilli()
	data.Status = planmodels.PlanStatusDraft
	if data.Phases == nil {
		data.Phases = []planmodels.Phase{}
	}
	if data.ContentMixPreference == (planmodels.ContentMixPreference{}) {
		data.ContentMixPreference = planmodels.ContentMixPreference{Educational: 25, Promotional: 25, Storytelling: 25, Authority: 25}
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindOwned tìm plan theo id trong phạm vi user sở hữu.
func (s *PlanService) FindOwned(ctx context.Context, planID, userID primitive.ObjectID) (planmodels.Plan, error) {
	plan, err := s.FindOne(ctx, bson.M{"_id": planID, "userId": userID}, nil)
	if err != nil {
		return plan, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy plan", common.StatusNotFound, err)
	}
	return plan, nil
}

// UpdateMetadata cập nhật cấu hình plan. Plan đã completed không sửa được.
// startDate hoặc durationWeeks thay đổi thì endDate được tính lại.
func (s *PlanService) UpdateMetadata(ctx context.Context, planID, userID primitive.ObjectID, input *plandto.PlanUpdateInput) (planmodels.Plan, error) {
	plan, err := s.FindOwned(ctx, planID, userID)
	if err != nil {
		return plan, err
	}
	if plan.Status == planmodels.PlanStatusCompleted {
		return plan, common.NewStateError("Plan đã hoàn thành, không thể chỉnh sửa", plan.Status, nil)
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Objective != nil {
		set["objective"] = *input.Objective
	}
	if input.PromotionIntensity != nil {
		set["promotionIntensity"] = *input.PromotionIntensity
	}
	if input.PostingFrequency != nil {
		set["postingFrequency"] = *input.PostingFrequency
	}
	if input.Platforms != nil {
		set["platforms"] = *input.Platforms
	}
	if input.ProductIDs != nil {
		set["productIds"] = *input.ProductIDs
	}
	if input.ContentMixPreference != nil {
		set["contentMixPreference"] = *input.ContentMixPreference
	}

	start := time.UnixMilli(plan.StartDate).UTC()
	weeks := plan.DurationWeeks
	recompute := false
	if input.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *input.StartDate)
		if err != nil {
			return plan, common.NewError(common.ErrCodeValidationFormat, "startDate phải theo định dạng YYYY-MM-DD", common.StatusBadRequest, err)
		}
		start = parsed.UTC()
		set["startDate"] = start.UnixMilli()
		recompute = true
	}
	if input.DurationWeeks != nil {
		weeks = *input.DurationWeeks
		set["durationWeeks"] = weeks
		recompute = true
	}
	if recompute {
		set["endDate"] = planmodels.ComputeEndDate(start, weeks).UnixMilli()
	}

	if len(set) == 0 {
		return plan, nil
	}
	return s.UpdateOne(ctx, bson.M{"_id": planID, "userId": userID}, bson.M{"$set": set}, nil)
}

// GenerateStructure gọi generator, thay toàn bộ phases bằng cấu trúc mới và
// ép status về draft. Gọi được ở mọi trạng thái.
func (s *PlanService) GenerateStructure(ctx context.Context, planID, userID primitive.ObjectID) (planmodels.Plan, error) {
	plan, err := s.FindOwned(ctx, planID, userID)
	if err != nil {
		return plan, err
	}
	brand, err := s.brandService.FindOwned(ctx, plan.BrandID, userID)
	if err != nil {
		return plan, err
	}

	structure, err := s.generator.Generate(ctx, &plan, toBrandContext(&brand))
	if err != nil {
		return plan, err
	}

	phases := make([]planmodels.Phase, 0, len(structure.Phases))
	for _, genPhase := range structure.Phases {
		items := make([]planmodels.ContentItem, 0, len(genPhase.ContentItems))
		for _, genItem := range genPhase.ContentItems {
			items = append(items, planmodels.ContentItem{
				ID:                   primitive.NewObjectID(),
				Title:                genItem.Title,
				Pillar:               genItem.Pillar,
				ProductID:            genItem.ProductID,
				Format:               genItem.Format,
				CtaType:              genItem.CtaType,
				EmotionalTrigger:     genItem.EmotionalTrigger,
				RecommendedDayOffset: genItem.RecommendedDayOffset,
				RecommendedTime:      genItem.RecommendedTime,
				Status:               planmodels.ItemStatusDraft,
			})
		}
		phases = append(phases, planmodels.Phase{
			ID:           primitive.NewObjectID(),
			Name:         genPhase.Name,
			WeekNumber:   genPhase.WeekNumber,
			Description:  genPhase.Description,
			ContentItems: items,
		})
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": planID, "userId": userID},
		bson.M{"$set": bson.M{"phases": phases, "status": planmodels.PlanStatusDraft}}, nil)
	if err != nil {
		return updated, err
	}

	if missing := updated.MissingWeeks(); len(missing) > 0 {
		logger.GetAppLogger().Warnf("Plan %s thiếu phase cho các tuần %v", planID.Hex(), missing)
	}
	logger.GetAppLogger().Infof("Đã sinh %d phase cho plan %s", len(phases), planID.Hex())
	return updated, nil
}

// Activate chuyển plan từ draft sang active. Yêu cầu ít nhất một phase có nội dung.
func (s *PlanService) Activate(ctx context.Context, planID, userID primitive.ObjectID) (planmodels.Plan, error) {
	plan, err := s.FindOwned(ctx, planID, userID)
	if err != nil {
		return plan, err
	}
	if plan.Status != planmodels.PlanStatusDraft {
		return plan, common.NewStateError("Chỉ kích hoạt được plan ở trạng thái draft", plan.Status, []string{planmodels.PlanStatusDraft})
	}
	if !plan.HasContent() {
		return plan, common.NewStateError("Plan chưa có nội dung, hãy sinh cấu trúc trước khi kích hoạt", plan.Status, nil)
	}

	return s.UpdateOne(ctx, bson.M{"_id": planID, "userId": userID},
		bson.M{"$set": bson.M{"status": planmodels.PlanStatusActive}}, nil)
}

// ConvertToCalendar chạy scheduler trên plan active: xóa toàn bộ entry cũ của plan
// rồi chèn bộ entry mới. Cặp delete/insert được bọc trong mutex theo plan.
func (s *PlanService) ConvertToCalendar(ctx context.Context, planID, userID primitive.ObjectID) ([]calmodels.CalendarEntry, error) {
	unlock := s.convertLocks.acquire(planID)
	defer unlock()

	plan, err := s.FindOwned(ctx, planID, userID)
	if err != nil {
		return nil, err
	}
	if plan.Status != planmodels.PlanStatusActive {
		return nil, common.NewStateError("Plan phải ở trạng thái active mới chuyển được sang lịch", plan.Status, []string{planmodels.PlanStatusActive})
	}
	if len(plan.Phases) == 0 {
		return nil, common.NewStateError("Plan chưa có phase nào, hãy sinh cấu trúc trước", plan.Status, nil)
	}

	brand, err := s.brandService.FindOwned(ctx, plan.BrandID, userID)
	if err != nil {
		return nil, err
	}

	entries := BuildCalendarEntries(&plan, brand.EffectiveRotation())

	if _, err := s.entryService.DeleteByPlan(ctx, planID); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []calmodels.CalendarEntry{}, nil
	}

	saved, err := s.entryService.InsertMany(ctx, entries)
	if err != nil {
		return nil, err
	}
	logger.GetAppLogger().Infof("Đã tạo %d calendar entry cho plan %s", len(saved), planID.Hex())
	return saved, nil
}

// Regenerate đưa plan về draft, xóa lịch cũ và sinh lại cấu trúc với cấu hình
// hiện tại. Plan đã completed bị từ chối. Dùng chung mutex theo plan với
// ConvertToCalendar để reset/xóa không xen kẽ với cặp delete/insert của convert.
func (s *PlanService) Regenerate(ctx context.Context, planID, userID primitive.ObjectID) (planmodels.Plan, error) {
	unlock := s.convertLocks.acquire(planID)
	defer unlock()

	plan, err := s.FindOwned(ctx, planID, userID)
	if err != nil {
		return plan, err
	}
	if plan.Status == planmodels.PlanStatusCompleted {
		return plan, common.NewStateError("Plan đã hoàn thành, không thể sinh lại", plan.Status, nil)
	}

	if _, err := s.UpdateOne(ctx, bson.M{"_id": planID, "userId": userID},
		bson.M{"$set": bson.M{"status": planmodels.PlanStatusDraft}}, nil); err != nil {
		return plan, err
	}
	if _, err := s.entryService.DeleteByPlan(ctx, planID); err != nil {
		return plan, err
	}

	return s.GenerateStructure(ctx, planID, userID)
}

// UpdateCampaignCopy cập nhật slogan và headline của chiến dịch.
func (s *PlanService) UpdateCampaignCopy(ctx context.Context, planID, userID primitive.ObjectID, input *plandto.CampaignCopyInput) (planmodels.Plan, error) {
	plan, err := s.FindOwned(ctx, planID, userID)
	if err != nil {
		return plan, err
	}

	set := bson.M{}
	if input.CampaignSlogan != nil {
		set["campaignSlogan"] = *input.CampaignSlogan
	}
	if input.LaunchHeadline != nil {
		set["launchHeadline"] = *input.LaunchHeadline
	}
	if len(set) == 0 {
		return plan, nil
	}

	return s.UpdateOne(ctx, bson.M{"_id": planID, "userId": userID}, bson.M{"$set": set}, nil)
}

// GetCalendar trả về lịch của plan, sắp xếp theo ngày rồi đến giờ.
func (s *PlanService) GetCalendar(ctx context.Context, planID, userID primitive.ObjectID) ([]calmodels.CalendarEntry, error) {
	if _, err := s.FindOwned(ctx, planID, userID); err != nil {
		return nil, err
	}
	return s.entryService.FindByPlan(ctx, planID)
}

// DeleteWithCalendar xóa plan cùng toàn bộ calendar entry của nó.
func (s *PlanService) DeleteWithCalendar(ctx context.Context, planID, userID primitive.ObjectID) error {
	if _, err := s.FindOwned(ctx, planID, userID); err != nil {
		return err
	}
	if err := s.DeleteOne(ctx, bson.M{"_id": planID, "userId": userID}); err != nil {
		return err
	}
	_, err := s.entryService.DeleteByPlan(ctx, planID)
	return err
}

// toBrandContext rút phần hồ sơ brand cần cho prompt của generator.
func toBrandContext(brand *brandmodels.Brand) BrandContext {
	rotation := brand.EffectiveRotation()
	return BrandContext{
		Name:           brand.Name,
		Tone:           brand.Tone,
		ContentPillars: brand.ContentPillars,
		MainGoal:       brand.MainGoal,
		AgeRange:       brand.Audience.AgeRange,
		Gender:         brand.Audience.Gender,
		Interests:      brand.Audience.Interests,
		Platforms:      brand.Platforms,
		MaxConsecutive: rotation.MaxConsecutivePromoPosts,
		MinGapDays:     rotation.MinGapBetweenPromotions,
	}
}
