package handlers

import (
	"testing"
	"time"

	"vn.io.arda/toast/internal/domain"
)

func TestHandleBatchCompleted(t *testing.T) {
	cmd := handleBatchCompleted([]byte(`{
		"eventType": "BATCH_COMPLETED",
		"payload": {"batchName": "stock-listing", "processed": 42}
	}`))

	if cmd == nil {
		t.Fatal("expected a command")
	}
	if cmd.Severity != domain.SeveritySuccess {
		t.Errorf("expected success severity, got %s", cmd.Severity)
	}
	if cmd.Message != "Batch 'stock-listing' completed (42 items processed)." {
		t.Errorf("unexpected message %q", cmd.Message)
	}
}

func TestHandleBatchFailed_LongerDuration(t *testing.T) {
	cmd := handleBatchFailed([]byte(`{
		"eventType": "BATCH_FAILED",
		"payload": {"batchName": "stock-listing", "reason": "timeout"}
	}`))

	if cmd == nil {
		t.Fatal("expected a command")
	}
	if cmd.Severity != domain.SeverityError {
		t.Errorf("expected error severity, got %s", cmd.Severity)
	}
	if cmd.Duration != 5*time.Second {
		t.Errorf("expected 5s duration, got %s", cmd.Duration)
	}
}

func TestHandleBatch_MissingName_Skipped(t *testing.T) {
	if cmd := handleBatchCompleted([]byte(`{"payload": {}}`)); cmd != nil {
		t.Fatal("expected nil for payload without batchName")
	}
}

func TestHandleDirectCommand(t *testing.T) {
	cmd := handleDirectCommand([]byte(`{
		"message": "Maintenance at 22:00",
		"severity": "warning",
		"durationMs": 3000
	}`))

	if cmd == nil {
		t.Fatal("expected a command")
	}
	if cmd.Severity != domain.SeverityWarning {
		t.Errorf("expected warning severity, got %s", cmd.Severity)
	}
	if cmd.Duration != 3*time.Second {
		t.Errorf("expected 3s duration, got %s", cmd.Duration)
	}
}

func TestHandleDirectCommand_UnknownSeverityNormalized(t *testing.T) {
	cmd := handleDirectCommand([]byte(`{"message": "hello", "severity": "loud"}`))

	if cmd == nil {
		t.Fatal("expected a command")
	}
	if cmd.Severity != domain.SeverityInfo {
		t.Errorf("expected info severity, got %s", cmd.Severity)
	}
}

func TestHandleDirectCommand_EmptyMessage_Skipped(t *testing.T) {
	if cmd := handleDirectCommand([]byte(`{"severity": "info"}`)); cmd != nil {
		t.Fatal("expected nil for empty message")
	}
}
