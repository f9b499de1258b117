// Package models contains data types and constants for skillbox skills.
package models

// ContentPlaceholder is the literal token left in templates for later
// substitution by the calling system.
const ContentPlaceholder = "{Content}"

// DefaultSystemPrompt is the system message baked into exported templates
const DefaultSystemPrompt = "You are a helpful assistant."

// Default model identity for the template exporter
const (
	DefaultModelName = "Qwen2.5-1.5B-Instruct"
	DefaultModelPath = "models/Qwen2.5-1.5B-Instruct"
)

// InferenceModelFile is the filename the exporter writes into a model directory
const InferenceModelFile = "inference_model.json"

// TokenizerConfigFile is the tokenizer configuration filename inside a model directory
const TokenizerConfigFile = "tokenizer_config.json"

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
