package global

import (
	"campaign_planner/config"
	"campaign_planner/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Brands          string // Tên collection cho thương hiệu
	Plans           string // Tên collection cho kế hoạch nội dung
	ContentBlocks   string // Tên collection cho content block độc lập
	CalendarEntries string // Tên collection cho lịch đăng bài
}

// Các biến toàn cục
var Validate *validator.Validate                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
