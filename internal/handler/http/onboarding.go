package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pathforge/pathforge/internal/app"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/internal/utils"
	"github.com/pathforge/pathforge/models"
)

func (h *Handler) saveGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.OnboardingService.SaveGoal(ctx, userID, req); err != nil {
		h.writeOnboardingError(w, r, err, "saving goal failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgGoalSaved}, http.StatusOK)
}

func (h *Handler) saveSkills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.OnboardingService.SaveSkills(ctx, userID, req); err != nil {
		h.writeOnboardingError(w, r, err, "saving skills failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSkillsSaved}, http.StatusOK)
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.OnboardingService.SavePreferences(ctx, userID, req); err != nil {
		h.writeOnboardingError(w, r, err, "saving preferences failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPreferencesSaved}, http.StatusOK)
}

func (h *Handler) onboardingStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	status, err := h.services.OnboardingService.Status(ctx, userID)
	if err != nil {
		log.Err(err).Msg("loading onboarding status failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) writeOnboardingError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	if errors.Is(err, service.ErrInvalidDataProvided) {
		log.Err(err).Msg("invalid data provided")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	log.Err(err).Msg(msg)
	http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
}
