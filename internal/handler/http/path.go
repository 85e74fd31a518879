// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/pathforge/pathforge/internal/app"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/internal/utils"
	"github.com/pathforge/pathforge/models"
)

func (h *Handler) generatePath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	path, err := h.services.PathService.Generate(ctx, userID)
	if err != nil {
		log.Err(err).Msg("generating learning path failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PathResponse{Message: app.MsgPathGenerated, Path: path}, http.StatusOK)
}

func (h *Handler) getPath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	path, err := h.services.PathService.ActivePath(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoPathWasFound) {
			http.Error(w, app.MsgNoPathGenerated, http.StatusNotFound)
			return
		}

		log.Err(err).Msg("loading learning path failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PathResponse{Path: path}, http.StatusOK)
}
