package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

const defaultWebhookURL = "http://localhost:8080/api/v1/webhook"

// command matches the webhook payload the chat bridge sends.
type command struct {
	Command   string `json:"command"`
	Args      string `json:"args"`
	ChatID    int64  `json:"chat_id"`
	MessageID int64  `json:"message_id"`
}

// Sends one command to a locally running instance and prints the reply.
// Usage: smoke [command] [args], defaults to "top".
func main() {
	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		webhookURL = defaultWebhookURL
	}

	cmd := command{Command: "top", ChatID: 1, MessageID: 1}
	if len(os.Args) > 1 {
		cmd.Command = os.Args[1]
	}
	if len(os.Args) > 2 {
		cmd.Args = os.Args[2]
	}

	payload, err := json.Marshal(cmd)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	fmt.Printf("Status: %s\n", resp.Status)
	if len(body) > 0 {
		fmt.Printf("Body: %s\n", body)
	}
}
