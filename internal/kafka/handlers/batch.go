package handlers

import (
	"encoding/json"
	"time"

	"vn.io.arda/toast/internal/domain"
	"vn.io.arda/toast/internal/messages"
)

func init() {
	Register("batch-events", "BATCH_COMPLETED", handleBatchCompleted)
	Register("batch-events", "BATCH_FAILED", handleBatchFailed)
	Register("batch-events", "BATCH_CANCELLED", handleBatchCancelled)
}

type batchEnv struct {
	EventType string `json:"eventType"`
	EventID   string `json:"eventId"`
	Payload   struct {
		BatchName string `json:"batchName"`
		Processed int    `json:"processed"`
		Reason    string `json:"reason"`
	} `json:"payload"`
}

func parseBatchEnv(data []byte) (*batchEnv, bool) {
	var env batchEnv
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false
	}
	if env.Payload.BatchName == "" {
		return nil, false
	}
	return &env, true
}

func handleBatchCompleted(data []byte) *domain.ToastCommand {
	env, ok := parseBatchEnv(data)
	if !ok {
		return nil
	}
	return &domain.ToastCommand{
		Message:  messages.BatchCompleted(env.Payload.BatchName, env.Payload.Processed),
		Severity: domain.SeveritySuccess,
	}
}

func handleBatchFailed(data []byte) *domain.ToastCommand {
	env, ok := parseBatchEnv(data)
	if !ok {
		return nil
	}
	return &domain.ToastCommand{
		Message:  messages.BatchFailed(env.Payload.BatchName, env.Payload.Reason),
		Severity: domain.SeverityError,
		// Failures stay up longer than the default so they are not missed.
		Duration: 5 * time.Second,
	}
}

func handleBatchCancelled(data []byte) *domain.ToastCommand {
	env, ok := parseBatchEnv(data)
	if !ok {
		return nil
	}
	return &domain.ToastCommand{
		Message:  messages.BatchCancelled(env.Payload.BatchName),
		Severity: domain.SeverityWarning,
	}
}
