// Package prompt maps model names to chat templates: a render function that
// turns role-tagged messages into one model-specific prompt string, and the
// stop sequences that end the model's turn.
//
// Templates are Go text/template sources rendered through LangChain-Go's
// prompt package. Each message becomes one entry of .messages with a bucket
// per known role; only the bucket matching the message's role is non-empty,
// so ranging over it emits a section for that message alone.
//
// Basic Usage:
//
//	template, err := prompt.Get("llama3.1")
//	if err != nil {
//	    return err
//	}
//	text, err := template.Format([]chat.Message{
//	    chat.NewSystemMessage("You are terse."),
//	    chat.NewUserMessage("Hi"),
//	})
//
// Custom templates:
//
//	custom, err := prompt.NewChatTemplate(
//	    "{{range .messages}}{{range .user}}[INST] {{.}} [/INST]{{end}}{{end}}",
//	    nil, "</s>",
//	)
//	err = prompt.Register("mistral", custom, false)
//
// Templates can also be declared under the templates key of the settings
// file and loaded with LoadIntoRegistry.
package prompt
