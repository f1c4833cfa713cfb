package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"github.com/sunridge-camp/camp-signup-api/internal/store"
)

type SignupHandler struct {
	store *store.Store
}

func NewSignupHandler(store *store.Store) *SignupHandler {
	return &SignupHandler{store: store}
}

type CreateSignupRequest struct {
	Body struct {
		CamperID   uint `json:"camper_id,omitempty" doc:"ID of an existing camper"`
		ActivityID uint `json:"activity_id,omitempty" doc:"ID of an existing activity"`
		Time       int  `json:"time,omitempty" doc:"Hour of day, 0 through 23"`
	}
}

type SignupResponse struct {
	Body SignupView
}

func (h *SignupHandler) HandleCreate(ctx context.Context, input *CreateSignupRequest) (*SignupResponse, error) {
	signup, err := h.store.CreateSignup(ctx, input.Body.CamperID, input.Body.ActivityID, input.Body.Time)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Reason)
		}
		return nil, huma.Error500InternalServerError("Failed to create signup: " + err.Error())
	}

	return &SignupResponse{Body: newSignupView(signup)}, nil
}
