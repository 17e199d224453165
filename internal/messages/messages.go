// Package messages holds the toast texts raised by Kafka event handlers.
package messages

import "fmt"

// ─── Batch builders ──────────────────────────────────────────────────────────

func BatchCompleted(batchName string, processed int) string {
	return fmt.Sprintf(BatchCompletedText, batchName, processed)
}

func BatchFailed(batchName, reason string) string {
	return fmt.Sprintf(BatchFailedText, batchName, reason)
}

func BatchCancelled(batchName string) string {
	return fmt.Sprintf(BatchCancelledText, batchName)
}

// ─── Auth builders ───────────────────────────────────────────────────────────

func LoginNewDevice(ip string) string {
	return fmt.Sprintf(LoginNewDeviceText, ip)
}

func PasswordChanged() string {
	return PasswordChangedText
}
