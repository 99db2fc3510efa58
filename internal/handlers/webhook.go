package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// webhookRequest is the update a chat bridge forwards for one message.
type webhookRequest struct {
	Command   string `json:"command" validate:"required,oneof=stats top"`
	Args      string `json:"args" validate:"max=256"`
	ChatID    int64  `json:"chat_id"`
	MessageID int64  `json:"message_id"`
}

type webhookResponse struct {
	Text string `json:"text"`
}

// HandleWebhook handles POST /api/v1/webhook
// @Summary Run Bot Command
// @Description Runs one chat command and returns the reply text. Responds 204 when the bot stays silent.
// @Tags Bot
// @Accept json
// @Produce json
// @Param body body webhookRequest true "Command"
// @Success 200 {object} webhookResponse "Reply"
// @Success 204 "No reply"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /webhook [post]
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Command = strings.ToLower(strings.TrimSpace(req.Command))
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid command payload: "+err.Error())
		return
	}

	h.logger.Infow("Webhook command", "command", req.Command, "chat_id", req.ChatID)

	reply := h.bot.Dispatch(r.Context(), req.Command, req.Args)
	if reply == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.jsonResponse(w, http.StatusOK, webhookResponse{Text: reply})
}
