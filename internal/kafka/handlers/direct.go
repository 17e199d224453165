package handlers

import (
	"encoding/json"
	"time"

	"vn.io.arda/toast/internal/domain"
)

func init() {
	RegisterDirect("toast-commands", handleDirectCommand)
}

func handleDirectCommand(data []byte) *domain.ToastCommand {
	var cmd struct {
		Message    string `json:"message"`
		Severity   string `json:"severity"`
		DurationMs int    `json:"durationMs"`
	}

	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil
	}
	if cmd.Message == "" {
		return nil
	}

	return &domain.ToastCommand{
		Message:  cmd.Message,
		Severity: domain.Severity(cmd.Severity).Normalize(),
		Duration: time.Duration(cmd.DurationMs) * time.Millisecond,
	}
}
