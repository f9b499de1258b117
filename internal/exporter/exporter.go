// Package exporter builds and writes the inference_model.json record for a
// local model directory.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thangchung/skillbox/internal/models"
	"github.com/thangchung/skillbox/internal/template"
)

// Exporter renders the default chat exchange through an injected Renderer
// and serializes the resulting template record.
type Exporter struct {
	renderer template.Renderer
}

// New creates an Exporter with the given renderer
func New(renderer template.Renderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// Result describes a completed export
type Result struct {
	// Path is where the record was written
	Path string

	// Template is the rendered prompt template
	Template string

	// Record is the serialized inference model record
	Record models.InferenceModel
}

// Export renders the fixed two-message exchange (tokenize=false,
// add-generation-prompt=true), builds the InferenceModel record and writes
// it as 2-space-indented JSON to <modelPath>/inference_model.json.
// Renderer and I/O failures propagate unmodified.
func (e *Exporter) Export(modelPath, modelName string) (*Result, error) {
	rendered, err := e.renderer.Render(models.DefaultExchange(), template.DefaultRenderOptions())
	if err != nil {
		return nil, err
	}

	record := models.InferenceModel{
		Name: modelName,
		PromptTemplate: models.PromptTemplate{
			Assistant: models.ContentPlaceholder,
			Prompt:    rendered,
		},
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inference model: %w", err)
	}

	path := filepath.Join(modelPath, models.InferenceModelFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	return &Result{
		Path:     path,
		Template: rendered,
		Record:   record,
	}, nil
}
