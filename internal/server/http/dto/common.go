package dto

// MessageResponse carries a human readable outcome, used for errors too.
type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
