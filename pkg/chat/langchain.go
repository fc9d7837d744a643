package chat

import (
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// FromLangChain converts langchaingo chat messages into Messages.
// Tool and function results map to the ipython role.
func FromLangChain(messages []llms.ChatMessage) []Message {
	result := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg == nil {
			continue
		}
		role := roleFromType(msg.GetType())
		if generic, ok := msg.(llms.GenericChatMessage); ok {
			role = Role(generic.Role)
		}
		result = append(result, Message{Role: role, Text: msg.GetContent()})
	}
	return result
}

// FromMessageContent converts langchaingo multi-part messages, joining the
// text parts of each message. Non-text parts are ignored.
func FromMessageContent(messages []llms.MessageContent) []Message {
	result := make([]Message, 0, len(messages))
	for _, msg := range messages {
		var parts []string
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				parts = append(parts, text.Text)
			}
		}
		result = append(result, Message{
			Role: roleFromType(msg.Role),
			Text: strings.Join(parts, ""),
		})
	}
	return result
}

// ToLangChain converts Messages into langchaingo chat messages.
func ToLangChain(messages []Message) []llms.ChatMessage {
	result := make([]llms.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			result = append(result, llms.SystemChatMessage{Content: msg.Text})
		case RoleUser:
			result = append(result, llms.HumanChatMessage{Content: msg.Text})
		case RoleAssistant:
			result = append(result, llms.AIChatMessage{Content: msg.Text})
		case RoleIPython, RoleTool:
			result = append(result, llms.ToolChatMessage{Content: msg.Text})
		default:
			result = append(result, llms.GenericChatMessage{Role: string(msg.Role), Content: msg.Text})
		}
	}
	return result
}

func roleFromType(t llms.ChatMessageType) Role {
	switch t {
	case llms.ChatMessageTypeSystem:
		return RoleSystem
	case llms.ChatMessageTypeHuman:
		return RoleUser
	case llms.ChatMessageTypeAI:
		return RoleAssistant
	case llms.ChatMessageTypeTool, llms.ChatMessageTypeFunction:
		return RoleIPython
	default:
		return Role(t)
	}
}
