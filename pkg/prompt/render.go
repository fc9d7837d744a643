package prompt

import (
	"fmt"

	"github.com/killallgit/beekit/pkg/chat"
	"github.com/tmc/langchaingo/prompts"
)

// messagesVariable is the template variable holding the per-message buckets.
const messagesVariable = "messages"

// RoleMap maps a template bucket name to the message role it collects.
type RoleMap map[string]chat.Role

// DefaultRoles are the buckets every chat template understands.
var DefaultRoles = RoleMap{
	"system":    chat.RoleSystem,
	"user":      chat.RoleUser,
	"assistant": chat.RoleAssistant,
}

// withOverrides returns DefaultRoles merged with overrides.
func withOverrides(overrides RoleMap) RoleMap {
	roles := make(RoleMap, len(DefaultRoles)+len(overrides))
	for key, role := range DefaultRoles {
		roles[key] = role
	}
	for key, role := range overrides {
		roles[key] = role
	}
	return roles
}

// Buckets converts messages into the template input: one entry per message,
// in order, where only the bucket matching the message role holds its text.
// A message whose role has no bucket produces an entry with every bucket
// empty, so it renders nothing.
func Buckets(messages []chat.Message, roles RoleMap) []map[string][]string {
	entries := make([]map[string][]string, 0, len(messages))
	for _, msg := range messages {
		entry := make(map[string][]string, len(roles))
		for key, role := range roles {
			if msg.Role == role {
				entry[key] = []string{msg.Text}
			} else {
				entry[key] = []string{}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// MessagesToPrompt builds a render function feeding message buckets into tmpl.
func MessagesToPrompt(tmpl prompts.PromptTemplate, overrides RoleMap) RenderFunc {
	roles := withOverrides(overrides)
	return func(messages []chat.Message) (string, error) {
		return tmpl.Format(map[string]any{
			messagesVariable: Buckets(messages, roles),
		})
	}
}

// NewChatTemplate parses a Go text/template chat format. The template ranges
// over .messages; within each entry, ranging over a bucket (.system, .user,
// ...) emits the section only for messages of that role.
func NewChatTemplate(source string, overrides RoleMap, stop ...string) (*Template, error) {
	tmpl := prompts.PromptTemplate{
		Template:       source,
		InputVariables: []string{messagesVariable},
		TemplateFormat: prompts.TemplateFormatGoTemplate,
	}

	render := MessagesToPrompt(tmpl, overrides)
	if _, err := render(nil); err != nil {
		return nil, fmt.Errorf("invalid chat template: %w", err)
	}

	return &Template{
		Render:       render,
		StopSequence: append([]string(nil), stop...),
	}, nil
}

// MustChatTemplate is NewChatTemplate that panics on an invalid template.
func MustChatTemplate(source string, overrides RoleMap, stop ...string) *Template {
	t, err := NewChatTemplate(source, overrides, stop...)
	if err != nil {
		panic(err)
	}
	return t
}
