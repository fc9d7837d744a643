package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("built-in templates are registered", func(t *testing.T) {
		registry := NewDefaultRegistry()

		for _, model := range BuiltinModels() {
			assert.True(t, registry.Has(string(model)), model)

			template, err := registry.GetModel(model)
			require.NoError(t, err)
			assert.NotEmpty(t, template.StopSequence, model)
		}
	})

	t.Run("has rejects empty and unknown names", func(t *testing.T) {
		registry := NewDefaultRegistry()

		assert.False(t, registry.Has(""))
		assert.False(t, registry.Has("unknown-model"))
	})

	t.Run("get non-existent template", func(t *testing.T) {
		registry := NewDefaultRegistry()

		_, err := registry.Get("unknown-model")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "unknown-model", notFound.Model)
		assert.Equal(t, []string{"llama3", "llama3.1", "qwen2"}, notFound.ValidModels)
		assert.Contains(t, err.Error(), "qwen2")
	})

	t.Run("register and get template", func(t *testing.T) {
		registry := NewRegistry()
		template := MustChatTemplate("{{range .messages}}{{range .user}}{{.}}{{end}}{{end}}", nil, "</s>")

		require.NoError(t, registry.Register("x", template, false))

		retrieved, err := registry.Get("x")
		require.NoError(t, err)
		assert.Same(t, template, retrieved)
	})

	t.Run("register duplicate template", func(t *testing.T) {
		registry := NewRegistry()
		first := MustChatTemplate("first", nil, "</s>")
		second := MustChatTemplate("second", nil, "</s>")

		require.NoError(t, registry.Register("x", first, false))

		err := registry.Register("x", second, false)
		require.Error(t, err)
		assert.True(t, IsConflict(err))
		assert.Contains(t, err.Error(), "already exists")

		retrieved, err := registry.Get("x")
		require.NoError(t, err)
		assert.Same(t, first, retrieved)

		require.NoError(t, registry.Register("x", second, true))
		retrieved, err = registry.Get("x")
		require.NoError(t, err)
		assert.Same(t, second, retrieved)
	})

	t.Run("override a built-in", func(t *testing.T) {
		registry := NewDefaultRegistry()
		custom := MustChatTemplate("custom", nil, "<|eot_id|>")

		assert.True(t, IsConflict(registry.Register(string(ModelLlama3), custom, false)))
		require.NoError(t, registry.Register(string(ModelLlama3), custom, true))

		retrieved, err := registry.GetModel(ModelLlama3)
		require.NoError(t, err)
		assert.Same(t, custom, retrieved)
	})

	t.Run("register rejects empty name and nil template", func(t *testing.T) {
		registry := NewRegistry()

		assert.ErrorIs(t, registry.Register("", MustChatTemplate("x", nil), false), ErrEmptyModel)
		assert.Error(t, registry.Register("x", nil, false))
		assert.Empty(t, registry.List())
	})

	t.Run("list clear and reset", func(t *testing.T) {
		registry := NewDefaultRegistry()
		require.NoError(t, registry.Register("custom", MustChatTemplate("c", nil), false))

		assert.Equal(t, []string{"custom", "llama3", "llama3.1", "qwen2"}, registry.List())

		registry.Clear()
		assert.Empty(t, registry.List())

		registry.Reset()
		assert.Equal(t, []string{"llama3", "llama3.1", "qwen2"}, registry.List())
	})

	t.Run("concurrent access", func(t *testing.T) {
		registry := NewDefaultRegistry()

		done := make(chan bool, 10)
		for i := 0; i < 10; i++ {
			go func() {
				retrieved, err := registry.Get(string(ModelQwen2))
				assert.NoError(t, err)
				assert.NotNil(t, retrieved)
				done <- true
			}()
		}

		for i := 0; i < 10; i++ {
			<-done
		}
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(Reset)

	t.Run("built-ins are available", func(t *testing.T) {
		assert.True(t, Has("llama3.1"))
		assert.NotPanics(t, func() {
			MustGet("qwen2")
		})
	})

	t.Run("must get panics on missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustGet("nonexistent_template")
		})
	})

	t.Run("register then reset", func(t *testing.T) {
		template := MustChatTemplate("global", nil)
		require.NoError(t, Register("global_test", template, false))

		retrieved, err := Get("global_test")
		require.NoError(t, err)
		assert.Same(t, template, retrieved)

		Reset()
		assert.False(t, Has("global_test"))
		assert.True(t, Has("llama3"))
	})
}
