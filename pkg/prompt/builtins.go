package prompt

import "github.com/killallgit/beekit/pkg/chat"

// Model names a model family with a built-in chat template.
type Model string

const (
	ModelLlama31 Model = "llama3.1"
	ModelLlama3  Model = "llama3"
	ModelQwen2   Model = "qwen2"
)

func (m Model) String() string {
	return string(m)
}

const (
	llama3StopSequence = "<|eot_id|>"
	qwen2StopSequence  = "<|im_end|>"
)

const llama31Source = "{{range .messages}}" +
	"{{range .system}}<|begin_of_text|><|start_header_id|>system<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{range .user}}<|start_header_id|>user<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{range .assistant}}<|start_header_id|>assistant<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{range .ipython}}<|start_header_id|>ipython<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{end}}<|start_header_id|>assistant<|end_header_id|>\n\n"

const llama3Source = "{{range .messages}}" +
	"{{range .system}}<|begin_of_text|><|start_header_id|>system<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{range .user}}<|start_header_id|>user<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{range .assistant}}<|start_header_id|>assistant<|end_header_id|>\n\n{{.}}<|eot_id|>{{end}}" +
	"{{end}}<|start_header_id|>assistant<|end_header_id|>\n\n"

const qwen2Source = "{{range .messages}}" +
	"{{range .system}}<|im_start|>system\n{{.}}<|im_end|>\n{{end}}" +
	"{{range .user}}<|im_start|>user\n{{.}}<|im_end|>\n{{end}}" +
	"{{range .assistant}}<|im_start|>assistant\n{{.}}<|im_end|>\n{{end}}" +
	"{{end}}<|im_start|>assistant\n"

// builtinTemplates returns fresh copies of the built-in templates.
func builtinTemplates() map[Model]*Template {
	return map[Model]*Template{
		ModelLlama31: MustChatTemplate(llama31Source, RoleMap{"ipython": chat.RoleIPython}, llama3StopSequence),
		ModelLlama3:  MustChatTemplate(llama3Source, nil, llama3StopSequence),
		ModelQwen2:   MustChatTemplate(qwen2Source, nil, qwen2StopSequence),
	}
}

// BuiltinModels lists the models that ship with a template.
func BuiltinModels() []Model {
	return []Model{ModelLlama31, ModelLlama3, ModelQwen2}
}
