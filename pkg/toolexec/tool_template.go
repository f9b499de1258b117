package toolexec

import (
	"context"
	"fmt"

	"github.com/thangchung/skillbox/internal/exporter"
	"github.com/thangchung/skillbox/internal/template"
)

// TemplateTool exposes the inference-model template exporter through the
// executor. Parameters: "model_path" (directory holding
// tokenizer_config.json) and "model_name" (name written into the record).
type TemplateTool struct{}

// NewTemplateTool creates a new TemplateTool
func NewTemplateTool() *TemplateTool {
	return &TemplateTool{}
}

// Name returns the tool identifier
func (t *TemplateTool) Name() string {
	return "render-template"
}

// Description returns a one-line summary
func (t *TemplateTool) Description() string {
	return "Render a model's chat template and write inference_model.json"
}

// Doc returns the tool's markdown documentation
func (t *TemplateTool) Doc() string {
	return `# Render template

Renders the default system/user exchange through a model's chat template and
writes the resulting prompt record to ` + "`inference_model.json`" + ` in the
model directory.

## Parameters

- **model_path** — model directory containing ` + "`tokenizer_config.json`" + `
- **model_name** — name written into the record

## Example

    skillbox skills run render-template models/Qwen2.5-1.5B-Instruct Qwen2.5-1.5B-Instruct
`
}

// Execute renders and writes the template record
func (t *TemplateTool) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	modelPath := input.GetParamString("model_path")
	modelName := input.GetParamString("model_name")

	if len(input.Args) > 0 {
		modelPath = input.Args[0]
	}
	if len(input.Args) > 1 {
		modelName = input.Args[1]
	}
	if modelPath == "" {
		return nil, fmt.Errorf("model_path is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model_name is required")
	}

	cfg, err := template.LoadTokenizerConfig(modelPath)
	if err != nil {
		return nil, err
	}

	renderer, err := template.NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	result, err := exporter.New(renderer).Export(modelPath, modelName)
	if err != nil {
		return nil, err
	}

	return NewOutput(fmt.Sprintf("Created %s", result.Path)).
		WithResult("path", result.Path).
		WithResult("template", result.Template), nil
}
