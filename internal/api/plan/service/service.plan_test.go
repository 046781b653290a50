package plansvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanLocks_SamePlanSerialized(t *testing.T) {
	locks := newPlanLocks()
	planID := primitive.NewObjectID()

	unlock := locks.acquire(planID)

	done := make(chan struct{})
	go func() {
		u := locks.acquire(planID)
		u()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("request thứ hai trên cùng plan phải chờ tới khi mở khóa")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mở khóa rồi mà request đang chờ vẫn không chạy")
	}
}

func TestPlanLocks_DifferentPlansIndependent(t *testing.T) {
	locks := newPlanLocks()
	unlock := locks.acquire(primitive.NewObjectID())
	defer unlock()

	done := make(chan struct{})
	go func() {
		u := locks.acquire(primitive.NewObjectID())
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("plan khác nhau không được chặn lẫn nhau")
	}
}
