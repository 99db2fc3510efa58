package handlers

import (
	"net/http"
)

// GetLeaderboard returns the ranked club report
// @Summary Get Club Leaderboard
// @Description Rank club members by net score over a time window
// @Tags Leaderboard
// @Produce json
// @Param mode query string false "Window keyword: empty for this month, today, or a speed such as blitz"
// @Success 200 {object} models.LeaderboardReport "Leaderboard"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")

	report, err := h.leaderboard.Build(r.Context(), mode)
	if err != nil {
		h.logger.Errorw("Failed to build leaderboard", "mode", mode, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build leaderboard")
		return
	}

	h.jsonResponse(w, http.StatusOK, report)
}
