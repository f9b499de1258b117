// Package template renders chat exchanges into the exact prompt string a
// local language model expects as input.
package template

import (
	"strings"

	apierrors "github.com/thangchung/skillbox/internal/errors"
	"github.com/thangchung/skillbox/internal/models"
)

// RenderOptions control how a chat exchange is rendered
type RenderOptions struct {
	// AddGenerationPrompt appends the opening of an assistant turn so the
	// model continues from there.
	AddGenerationPrompt bool

	// Tokenize requests token IDs instead of text. The exporter only works
	// with text, so renderers reject it.
	Tokenize bool
}

// DefaultRenderOptions returns the options the template exporter uses:
// text output with a trailing generation prompt.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		AddGenerationPrompt: true,
		Tokenize:            false,
	}
}

// Renderer is the injected chat-template capability. Implementations format
// role-tagged messages into a model-specific prompt string.
type Renderer interface {
	Render(messages []models.Message, opts RenderOptions) (string, error)
}

// ChatML markers shared by the Qwen/ChatML model family
const (
	chatMLStart = "<|im_start|>"
	chatMLEnd   = "<|im_end|>"
)

// ChatMLRenderer renders the ChatML template family:
// <|im_start|>{role}\n{content}<|im_end|>\n per message, with an opened
// assistant turn when the generation prompt is requested.
type ChatMLRenderer struct {
	startToken string
	endToken   string
}

// NewChatMLRenderer creates a renderer with the standard ChatML markers
func NewChatMLRenderer() *ChatMLRenderer {
	return &ChatMLRenderer{
		startToken: chatMLStart,
		endToken:   chatMLEnd,
	}
}

// NewRenderer builds a Renderer from a tokenizer config. Only the ChatML
// family is recognized; anything else fails rather than guessing at the
// template language.
func NewRenderer(cfg *TokenizerConfig) (Renderer, error) {
	if cfg == nil {
		return nil, apierrors.NewModelError("nil tokenizer config")
	}
	if cfg.ChatTemplate == "" {
		return nil, apierrors.NewModelError("tokenizer config has no chat_template")
	}
	if !strings.Contains(cfg.ChatTemplate, chatMLStart) {
		return nil, apierrors.NewModelError("unsupported chat template (only the ChatML family is supported)")
	}
	return NewChatMLRenderer(), nil
}

// Render formats the messages as ChatML
func (r *ChatMLRenderer) Render(messages []models.Message, opts RenderOptions) (string, error) {
	if opts.Tokenize {
		return "", apierrors.NewModelError("tokenize=true is not supported, renderer produces text only")
	}

	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(r.startToken)
		b.WriteString(msg.Role)
		b.WriteString("\n")
		b.WriteString(msg.Content)
		b.WriteString(r.endToken)
		b.WriteString("\n")
	}

	if opts.AddGenerationPrompt {
		b.WriteString(r.startToken)
		b.WriteString(models.RoleAssistant)
		b.WriteString("\n")
	}

	return b.String(), nil
}
