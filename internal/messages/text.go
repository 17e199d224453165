package messages

// ─── Batch ───────────────────────────────────────────────────────────────────

const (
	BatchCompletedText = "Batch '%s' completed (%d items processed)."
	BatchFailedText    = "Batch '%s' failed: %s"
	BatchCancelledText = "Batch '%s' was cancelled."
)

// ─── Auth ────────────────────────────────────────────────────────────────────

const (
	LoginNewDeviceText  = "New sign-in from IP %s. Change your password if this wasn't you."
	PasswordChangedText = "Your password was changed. Contact an administrator if this wasn't you."
)
