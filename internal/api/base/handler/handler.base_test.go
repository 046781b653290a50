// Package basehdl - Test chuyển DTO sang Model qua transform tag.
package basehdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type transformTestModel struct {
	OwnerID primitive.ObjectID
	Name    string
	Weeks   int
}

type transformTestCreateInput struct {
	OwnerID string `transform:"str_objectid,map=OwnerID"`
	Name    string
	Weeks   int
}

type transformTestUpdateInput struct {
	Name  *string
	Weeks *int
}

func TestTransformInputToModel_ObjectIDAndDirectCopy(t *testing.T) {
	oid := primitive.NewObjectID()
	input := &transformTestCreateInput{
		OwnerID: oid.Hex(),
		Name:    "Spring launch",
		Weeks:   4,
	}

	var model transformTestModel
	if err := transformInputToModel(input, &model); err != nil {
		t.Fatalf("transform thất bại: %v", err)
	}
	if model.OwnerID != oid {
		t.Errorf("OwnerID: muốn %s, nhận %s", oid.Hex(), model.OwnerID.Hex())
	}
	if model.Name != "Spring launch" || model.Weeks != 4 {
		t.Errorf("field không tag phải copy theo tên: %+v", model)
	}
}

func TestTransformInputToModel_InvalidObjectID(t *testing.T) {
	input := &transformTestCreateInput{OwnerID: "not-an-objectid"}
	var model transformTestModel
	if err := transformInputToModel(input, &model); err == nil {
		t.Error("ObjectID sai định dạng phải trả lỗi")
	}
}

// Field pointer nil trong DTO update nghĩa là "không gửi", model giữ nguyên.
func TestTransformInputToModel_NilPointerSkipped(t *testing.T) {
	name := "Renamed"
	input := &transformTestUpdateInput{Name: &name}

	model := transformTestModel{Name: "Original", Weeks: 4}
	if err := transformInputToModel(input, &model); err != nil {
		t.Fatalf("transform thất bại: %v", err)
	}
	if model.Name != "Renamed" {
		t.Errorf("field pointer có giá trị phải được copy, nhận %q", model.Name)
	}
	if model.Weeks != 4 {
		t.Errorf("field pointer nil phải giữ nguyên giá trị cũ, nhận %d", model.Weeks)
	}
}
