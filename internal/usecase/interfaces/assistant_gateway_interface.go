package interfaces

import "context"

// IAssistantGateway abstracts the LLM backing the shopping assistant.
type IAssistantGateway interface {
	Reply(ctx context.Context, message string) (role string, content string, err error)
}
