package exporter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thangchung/skillbox/internal/models"
	"github.com/thangchung/skillbox/internal/template"
)

// stubRenderer satisfies template.Renderer without any tokenizer config
type stubRenderer struct {
	output string
	err    error

	gotMessages []models.Message
	gotOpts     template.RenderOptions
}

func (s *stubRenderer) Render(messages []models.Message, opts template.RenderOptions) (string, error) {
	s.gotMessages = messages
	s.gotOpts = opts
	return s.output, s.err
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	stub := &stubRenderer{output: "<|im_start|>assistant\n"}

	result, err := New(stub).Export(dir, "Qwen2.5-1.5B-Instruct")
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if result.Path != filepath.Join(dir, "inference_model.json") {
		t.Errorf("Unexpected output path: %s", result.Path)
	}
	if result.Template != "<|im_start|>assistant\n" {
		t.Errorf("Unexpected template: %q", result.Template)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var record models.InferenceModel
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if record.Name != "Qwen2.5-1.5B-Instruct" {
		t.Errorf("Expected name 'Qwen2.5-1.5B-Instruct', got '%s'", record.Name)
	}
	if record.PromptTemplate.Assistant != "{Content}" {
		t.Errorf("Expected assistant placeholder '{Content}', got '%s'", record.PromptTemplate.Assistant)
	}
	if record.PromptTemplate.Prompt != "<|im_start|>assistant\n" {
		t.Errorf("Unexpected prompt: %q", record.PromptTemplate.Prompt)
	}
}

func TestExport_RendererInputs(t *testing.T) {
	stub := &stubRenderer{output: "x"}

	_, err := New(stub).Export(t.TempDir(), "test-model")
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if len(stub.gotMessages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(stub.gotMessages))
	}
	if stub.gotMessages[0].Role != "system" || stub.gotMessages[0].Content != "You are a helpful assistant." {
		t.Errorf("Unexpected system message: %+v", stub.gotMessages[0])
	}
	if stub.gotMessages[1].Role != "user" || stub.gotMessages[1].Content != "{Content}" {
		t.Errorf("Unexpected user message: %+v", stub.gotMessages[1])
	}
	if !stub.gotOpts.AddGenerationPrompt {
		t.Error("Expected AddGenerationPrompt=true")
	}
	if stub.gotOpts.Tokenize {
		t.Error("Expected Tokenize=false")
	}
}

func TestExport_Indentation(t *testing.T) {
	dir := t.TempDir()
	stub := &stubRenderer{output: "prompt text"}

	result, err := New(stub).Export(dir, "m")
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	// 2-space indentation, top-level keys at one level deep
	if !strings.Contains(string(data), "\n  \"Name\"") {
		t.Errorf("Expected 2-space indented output, got:\n%s", data)
	}
	if !strings.Contains(string(data), "\n    \"assistant\"") {
		t.Errorf("Expected nested keys at 4 spaces, got:\n%s", data)
	}
}

func TestExport_RendererError(t *testing.T) {
	wantErr := errors.New("render blew up")
	stub := &stubRenderer{err: wantErr}

	_, err := New(stub).Export(t.TempDir(), "m")
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected renderer error to propagate unmodified, got %v", err)
	}
}

func TestExport_MissingDirectory(t *testing.T) {
	stub := &stubRenderer{output: "x"}

	_, err := New(stub).Export(filepath.Join(t.TempDir(), "does-not-exist"), "m")
	if err == nil {
		t.Fatal("Expected error writing into a missing directory")
	}
}
