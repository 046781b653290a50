package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

func TestLogLifecycle_WritesAuditEntry(t *testing.T) {
	hook := logrustest.NewLocal(GetAuditLogger())
	defer hook.Reset()

	app := fiber.New()
	app.Post("/plans/:id/activate", func(c fiber.Ctx) error {
		c.Locals("user_id", "64f000000000000000000001")
		LogLifecycle("plan", c.Params("id"), "draft", "active", c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/plans/64f0000000000000000000aa/activate", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request thất bại: %v", err)
	}
	defer resp.Body.Close()

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("phải có một entry audit được ghi")
	}
	if entry.Data["action"] != "lifecycle_plan" {
		t.Errorf("action = %v, muốn lifecycle_plan", entry.Data["action"])
	}
	if entry.Data["user_id"] != "64f000000000000000000001" {
		t.Errorf("user_id phải lấy từ Locals, nhận được %v", entry.Data["user_id"])
	}

	details, ok := entry.Data["details"].(map[string]interface{})
	if !ok {
		t.Fatalf("details phải là map, nhận được %T", entry.Data["details"])
	}
	if details["resource_id"] != "64f0000000000000000000aa" {
		t.Errorf("resource_id = %v", details["resource_id"])
	}
	if details["from_status"] != "draft" || details["to_status"] != "active" {
		t.Errorf("from/to = %v/%v, muốn draft/active", details["from_status"], details["to_status"])
	}
}

func TestLogAction_AttachesRequestID(t *testing.T) {
	hook := logrustest.NewLocal(GetAuditLogger())
	defer hook.Reset()

	app := fiber.New()
	app.Post("/plans/:id/regenerate", func(c fiber.Ctx) error {
		LogAction("plan_regenerate", c, map[string]interface{}{"plan_id": c.Params("id")})
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/plans/p1/regenerate", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request thất bại: %v", err)
	}
	defer resp.Body.Close()

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("phải có một entry audit được ghi")
	}
	details, ok := entry.Data["details"].(map[string]interface{})
	if !ok {
		t.Fatalf("details phải là map, nhận được %T", entry.Data["details"])
	}
	if details["plan_id"] != "p1" {
		t.Errorf("plan_id = %v", details["plan_id"])
	}
	if details["request_id"] != "req-42" {
		t.Errorf("request_id = %v, muốn req-42", details["request_id"])
	}
}
