package response

import "shopsphere/internal/usecase"

type ChatMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Success bool                `json:"success"`
	Reply   ChatMessageResponse `json:"reply"`
}

func FromChatReply(reply usecase.ChatReply) ChatResponse {
	return ChatResponse{
		Success: true,
		Reply:   ChatMessageResponse{Role: reply.Role, Content: reply.Content},
	}
}
