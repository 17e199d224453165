package handlers

import (
	"encoding/json"

	"vn.io.arda/toast/internal/domain"
	"vn.io.arda/toast/internal/messages"
)

func init() {
	Register("auth-events", "LOGIN_NEW_DEVICE", handleLoginNewDevice)
	Register("auth-events", "PASSWORD_CHANGED", handlePasswordChanged)
}

type authEnv struct {
	EventType string `json:"eventType"`
	EventID   string `json:"eventId"`
	Payload   struct {
		IP string `json:"ip"`
	} `json:"payload"`
}

func handleLoginNewDevice(data []byte) *domain.ToastCommand {
	var env authEnv
	if err := json.Unmarshal(data, &env); err != nil {
		return nil
	}
	if env.Payload.IP == "" {
		return nil
	}
	return &domain.ToastCommand{
		Message:  messages.LoginNewDevice(env.Payload.IP),
		Severity: domain.SeverityWarning,
	}
}

func handlePasswordChanged(data []byte) *domain.ToastCommand {
	var env authEnv
	if err := json.Unmarshal(data, &env); err != nil {
		return nil
	}
	return &domain.ToastCommand{
		Message:  messages.PasswordChanged(),
		Severity: domain.SeverityInfo,
	}
}
