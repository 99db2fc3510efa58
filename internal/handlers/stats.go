package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Avazbek22/magnus-bot/internal/chesscom"
)

// GetPlayerStats returns the rating snapshot for one Chess.com player
// @Summary Get Player Stats
// @Description Fetch rating and puzzle statistics for a Chess.com username
// @Tags Player
// @Produce json
// @Param username path string true "Chess.com username"
// @Success 200 {object} models.PlayerStats "Player Stats"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /stats/{username} [get]
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing username")
		return
	}

	stats, err := h.stats.PlayerStats(r.Context(), username)
	if err != nil {
		if errors.Is(err, chesscom.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found: "+username)
			return
		}
		var statusErr *chesscom.StatusError
		if errors.As(err, &statusErr) {
			h.logger.Warnw("Upstream rejected stats request", "username", username, "status", statusErr.Code)
			h.errorResponse(w, http.StatusBadGateway, "Chess.com is unavailable")
			return
		}
		h.logger.Errorw("Failed to get player stats", "username", username, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}
