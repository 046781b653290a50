// Package brandsvc chứa service data access cho domain Brand.
// File: service.brand.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package brandsvc

import (
	"context"
	"fmt"

	basesvc "campaign_planner/internal/api/base/service"
	brandmodels "campaign_planner/internal/api/brand/models"
	"campaign_planner/internal/common"
	"campaign_planner/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandService là service quản lý Brand (CRUD + cung cấp rotation policy).
type BrandService struct {
	*basesvc.BaseServiceMongoImpl[brandmodels.Brand]
}

// NewBrandService tạo mới BrandService
func NewBrandService() (*BrandService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("failed to get brands collection: %v", common.ErrNotFound)
	}

	return &BrandService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[brandmodels.Brand](collection),
	}, nil
}

// InsertOne tạo mới Brand, điền content mix và rotation mặc định khi client không gửi.
func (s *BrandService) InsertOne(ctx context.Context, data brandmodels.Brand) (brandmodels.Brand, error) {
	data.ContentMix = data.EffectiveContentMix()
	data.SmartRotation = data.EffectiveRotation()
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindOwned tìm brand theo id và kiểm tra quyền sở hữu của user.
func (s *BrandService) FindOwned(ctx context.Context, brandID, userID primitive.ObjectID) (brandmodels.Brand, error) {
	brand, err := s.FindOne(ctx, bson.M{"_id": brandID, "userId": userID}, nil)
	if err != nil {
		return brand, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy brand hoặc bạn không sở hữu brand này", common.StatusNotFound, err)
	}
	return brand, nil
}
