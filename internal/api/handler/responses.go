package handler

// successResponse is the canonical envelope for successful operations.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func okMessage(msg string) successResponse {
	return successResponse{Success: true, Message: msg}
}
