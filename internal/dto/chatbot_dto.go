package dto

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	Reply  string `json:"reply"`
	Sender string `json:"sender"`
}
