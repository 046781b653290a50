package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động audit gắn với request hiện tại.
// Dùng cho các chuyển trạng thái nghiệp vụ (activate plan, convert calendar, ...).
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	var userID string
	if uid := c.Locals("user_id"); uid != nil {
		if s, ok := uid.(string); ok {
			userID = s
		}
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"user_id":    userID,
		"ip":         c.IP(),
		"user_agent": c.Get("User-Agent"),
		"details":    details,
		"timestamp":  time.Now(),
	}).Info("Audit log")
}

// LogLifecycle ghi audit cho một chuyển trạng thái lifecycle
func LogLifecycle(resourceType string, resourceID string, fromStatus string, toStatus string, c fiber.Ctx) {
	LogAction("lifecycle_"+resourceType, c, map[string]interface{}{
		"resource_type": resourceType,
		"resource_id":   resourceID,
		"from_status":   fromStatus,
		"to_status":     toStatus,
	})
}

// WithRequest trả về logger entry gắn các trường của request Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	if rid := c.Locals("requestid"); rid != nil {
		if s, ok := rid.(string); ok && s != "" {
			entry = entry.WithField("request_id", s)
		}
	}

	return entry
}
