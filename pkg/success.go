package pkg

// SuccessEnvelope is the uniform success counterpart to HTTPError: every 2xx
// body carries success=true, a short human-readable message and the payload
// under data.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func NewSuccess(message string, data any) SuccessEnvelope {
	return SuccessEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}
