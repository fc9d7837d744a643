package chat

import "strings"

// Role tags the source of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleIPython carries tool output for the llama3.1 family.
	RoleIPython Role = "ipython"
	RoleTool    Role = "tool"
)

func (r Role) String() string {
	return string(r)
}

// Message is a single role-tagged chat turn.
type Message struct {
	Role Role   `json:"role" yaml:"role"`
	Text string `json:"text" yaml:"text"`
}

func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Text: text}
}

func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: strings.TrimSpace(text)}
}

func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text}
}

func NewIPythonMessage(text string) Message {
	return Message{Role: RoleIPython, Text: text}
}

func (m Message) IsSystem() bool {
	return m.Role == RoleSystem
}

func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}
