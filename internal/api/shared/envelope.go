package shared

// Envelope is the body of every API response.
//
// A successful envelope never carries Error or Details; a failed one never
// carries Data. Details is only populated when diagnostics are enabled.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Success builds a successful envelope.
func Success(data any, message string) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// Failure builds a failed envelope. details is dropped by the writers unless
// diagnostics are enabled for the request.
func Failure(errMsg, details string) Envelope {
	return Envelope{
		Success: false,
		Error:   errMsg,
		Details: details,
	}
}
