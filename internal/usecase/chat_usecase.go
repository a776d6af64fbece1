package usecase

import (
	"context"
	"errors"
	"strings"

	"shopsphere/internal/usecase/interfaces"
)

var ErrInvalidChatMessage = errors.New("invalid message")

// ChatReply is the assistant's answer in OpenAI message form.
type ChatReply struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IChatUseCase exposes the shopping-assistant proxy.
type IChatUseCase interface {
	Ask(ctx context.Context, message string) (ChatReply, error)
}

type ChatUseCase struct {
	assistant interfaces.IAssistantGateway
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(assistant interfaces.IAssistantGateway) *ChatUseCase {
	return &ChatUseCase{assistant: assistant}
}

func (u *ChatUseCase) Ask(ctx context.Context, message string) (ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return ChatReply{}, ErrInvalidChatMessage
	}
	if u.assistant == nil {
		return ChatReply{}, errors.New("assistant not configured")
	}

	role, content, err := u.assistant.Reply(ctx, message)
	if err != nil {
		return ChatReply{}, err
	}
	return ChatReply{Role: role, Content: content}, nil
}
