package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"github.com/sunridge-camp/camp-signup-api/internal/store"
	"gorm.io/gorm"
)

type CamperHandler struct {
	store *store.Store
}

func NewCamperHandler(store *store.Store) *CamperHandler {
	return &CamperHandler{store: store}
}

type ListCampersResponse struct {
	Body []CamperView
}

func (h *CamperHandler) HandleList(ctx context.Context, input *struct{}) (*ListCampersResponse, error) {
	campers, err := h.store.ListCampers(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list campers: " + err.Error())
	}

	res := &ListCampersResponse{Body: make([]CamperView, 0, len(campers))}
	for i := range campers {
		res.Body = append(res.Body, newCamperView(&campers[i]))
	}
	return res, nil
}

type CreateCamperRequest struct {
	Body struct {
		Name string `json:"name,omitempty" doc:"Camper name, must be non-empty"`
		Age  int    `json:"age,omitempty" doc:"Camper age, 8 through 18"`
	}
}

type CamperResponse struct {
	Body CamperView
}

func (h *CamperHandler) HandleCreate(ctx context.Context, input *CreateCamperRequest) (*CamperResponse, error) {
	camper, err := h.store.CreateCamper(ctx, input.Body.Name, input.Body.Age)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Reason)
		}
		return nil, huma.Error500InternalServerError("Failed to create camper: " + err.Error())
	}

	return &CamperResponse{Body: newCamperView(camper)}, nil
}

type GetCamperRequest struct {
	ID uint `path:"id"`
}

type CamperDetailResponse struct {
	Body CamperDetailView
}

func (h *CamperHandler) HandleGet(ctx context.Context, input *GetCamperRequest) (*CamperDetailResponse, error) {
	camper, err := h.store.GetCamperWithSignups(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Camper not found")
		}
		return nil, huma.Error500InternalServerError("Failed to fetch camper: " + err.Error())
	}

	return &CamperDetailResponse{Body: newCamperDetailView(camper)}, nil
}

type UpdateCamperRequest struct {
	ID   uint           `path:"id"`
	Body map[string]any `doc:"Partial camper fields: name and/or age"`
}

func (h *CamperHandler) HandleUpdate(ctx context.Context, input *UpdateCamperRequest) (*CamperResponse, error) {
	camper, err := h.store.UpdateCamper(ctx, input.ID, input.Body)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, huma.Error404NotFound("Camper not found")
		case errors.As(err, &verr):
			return nil, huma.Error400BadRequest(verr.Reason)
		default:
			return nil, huma.Error500InternalServerError("Failed to update camper: " + err.Error())
		}
	}

	return &CamperResponse{Body: newCamperView(camper)}, nil
}
