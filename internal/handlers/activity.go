package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"github.com/sunridge-camp/camp-signup-api/internal/store"
	"gorm.io/gorm"
)

type ActivityHandler struct {
	store *store.Store
}

func NewActivityHandler(store *store.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

type ListActivitiesResponse struct {
	Body []ActivityView
}

func (h *ActivityHandler) HandleList(ctx context.Context, input *struct{}) (*ListActivitiesResponse, error) {
	activities, err := h.store.ListActivities(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list activities: " + err.Error())
	}

	res := &ListActivitiesResponse{Body: make([]ActivityView, 0, len(activities))}
	for i := range activities {
		res.Body = append(res.Body, newActivityView(&activities[i]))
	}
	return res, nil
}

type CreateActivityRequest struct {
	Body struct {
		Name       string `json:"name,omitempty" doc:"Activity name"`
		Difficulty int    `json:"difficulty,omitempty" doc:"Difficulty rating, unbounded"`
	}
}

type ActivityResponse struct {
	Body ActivityView
}

func (h *ActivityHandler) HandleCreate(ctx context.Context, input *CreateActivityRequest) (*ActivityResponse, error) {
	activity, err := h.store.CreateActivity(ctx, input.Body.Name, input.Body.Difficulty)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create activity: " + err.Error())
	}

	return &ActivityResponse{Body: newActivityView(activity)}, nil
}

type UpdateActivityRequest struct {
	ID   uint           `path:"id"`
	Body map[string]any `doc:"Partial activity fields: name and/or difficulty"`
}

func (h *ActivityHandler) HandleUpdate(ctx context.Context, input *UpdateActivityRequest) (*ActivityResponse, error) {
	activity, err := h.store.UpdateActivity(ctx, input.ID, input.Body)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, huma.Error404NotFound("Activity not found")
		case errors.As(err, &verr):
			return nil, huma.Error400BadRequest(verr.Reason)
		default:
			return nil, huma.Error500InternalServerError("Failed to update activity: " + err.Error())
		}
	}

	return &ActivityResponse{Body: newActivityView(activity)}, nil
}

type DeleteActivityRequest struct {
	ID uint `path:"id"`
}

type DeleteActivityResponse struct{}

func (h *ActivityHandler) HandleDelete(ctx context.Context, input *DeleteActivityRequest) (*DeleteActivityResponse, error) {
	if err := h.store.DeleteActivity(ctx, input.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Activity not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete activity: " + err.Error())
	}

	return &DeleteActivityResponse{}, nil
}
