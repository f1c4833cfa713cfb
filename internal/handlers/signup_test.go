package handlers

import (
	"context"
	"net/http"
	"testing"
)

func TestSignupCreate(t *testing.T) {
	st := newTestStore(t)
	campers := NewCamperHandler(st)
	activities := NewActivityHandler(st)
	h := NewSignupHandler(st)
	ctx := context.Background()

	camperReq := &CreateCamperRequest{}
	camperReq.Body.Name = "Alex"
	camperReq.Body.Age = 12
	camper, err := campers.HandleCreate(ctx, camperReq)
	if err != nil {
		t.Fatalf("camper create returned error: %v", err)
	}

	activityReq := &CreateActivityRequest{}
	activityReq.Body.Name = "Archery"
	activityReq.Body.Difficulty = 3
	activity, err := activities.HandleCreate(ctx, activityReq)
	if err != nil {
		t.Fatalf("activity create returned error: %v", err)
	}

	req := &CreateSignupRequest{}
	req.Body.CamperID = camper.Body.ID
	req.Body.ActivityID = activity.Body.ID
	req.Body.Time = 10

	created, err := h.HandleCreate(ctx, req)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	if created.Body.Time != 10 {
		t.Errorf("expected time 10, got %d", created.Body.Time)
	}
	// Nested projections must match the parents' full views
	if created.Body.Camper != camper.Body {
		t.Errorf("nested camper mismatch: %+v vs %+v", created.Body.Camper, camper.Body)
	}
	if created.Body.Activity != activity.Body {
		t.Errorf("nested activity mismatch: %+v vs %+v", created.Body.Activity, activity.Body)
	}

	// Camper detail now nests the signup one level deep
	detail, err := campers.HandleGet(ctx, &GetCamperRequest{ID: camper.Body.ID})
	if err != nil {
		t.Fatalf("camper get returned error: %v", err)
	}
	if len(detail.Body.Signups) != 1 || detail.Body.Signups[0].ID != created.Body.ID {
		t.Errorf("expected the signup nested in camper detail, got %+v", detail.Body.Signups)
	}
}

func TestSignupCreateInvalid(t *testing.T) {
	st := newTestStore(t)
	campers := NewCamperHandler(st)
	activities := NewActivityHandler(st)
	h := NewSignupHandler(st)
	ctx := context.Background()

	camperReq := &CreateCamperRequest{}
	camperReq.Body.Name = "Alex"
	camperReq.Body.Age = 12
	camper, _ := campers.HandleCreate(ctx, camperReq)

	activityReq := &CreateActivityRequest{}
	activityReq.Body.Name = "Archery"
	activityReq.Body.Difficulty = 3
	activity, _ := activities.HandleCreate(ctx, activityReq)

	cases := []struct {
		name       string
		camperID   uint
		activityID uint
		time       int
	}{
		{"time out of range", camper.Body.ID, activity.Body.ID, 24},
		{"negative time", camper.Body.ID, activity.Body.ID, -1},
		{"missing camper", 9999, activity.Body.ID, 10},
		{"missing activity", camper.Body.ID, 9999, 10},
	}
	for _, tc := range cases {
		req := &CreateSignupRequest{}
		req.Body.CamperID = tc.camperID
		req.Body.ActivityID = tc.activityID
		req.Body.Time = tc.time

		_, err := h.HandleCreate(ctx, req)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if status := statusOf(t, err); status != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, status)
		}
	}
}
