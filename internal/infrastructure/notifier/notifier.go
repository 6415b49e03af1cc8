package notifier

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// SendAlert posts an operator alert to the configured webhook. Fire and
// forget: a failed alert is only logged, it never blocks the caller.
func SendAlert(webhookURL string, payload AlertPayload) {
	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal alert: %v\n", err)
			return
		}

		req, err := http.NewRequest("POST", webhookURL, bytes.NewBuffer(body))
		if err != nil {
			log.Printf("Failed to create alert request: %v\n", err)
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("Alert failed: %v\n", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Printf("Alert sent to %s\n", webhookURL)
		} else {
			log.Printf("Alert returned status %d", resp.StatusCode)
		}
	}()
}
