package template

import (
	"strings"
	"testing"

	"github.com/thangchung/skillbox/internal/models"
)

func TestChatMLRenderer_Render(t *testing.T) {
	r := NewChatMLRenderer()

	messages := []models.Message{
		{Role: "system", Content: "You are a helpful assistant."},
		{Role: "user", Content: "{Content}"},
	}

	got, err := r.Render(messages, RenderOptions{AddGenerationPrompt: true})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "<|im_start|>system\nYou are a helpful assistant.<|im_end|>\n" +
		"<|im_start|>user\n{Content}<|im_end|>\n" +
		"<|im_start|>assistant\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestChatMLRenderer_NoGenerationPrompt(t *testing.T) {
	r := NewChatMLRenderer()

	got, err := r.Render([]models.Message{{Role: "user", Content: "hi"}}, RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if strings.HasSuffix(got, "<|im_start|>assistant\n") {
		t.Error("Render without generation prompt should not open an assistant turn")
	}
	if got != "<|im_start|>user\nhi<|im_end|>\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestChatMLRenderer_EmptyMessages(t *testing.T) {
	r := NewChatMLRenderer()

	got, err := r.Render(nil, RenderOptions{AddGenerationPrompt: true})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "<|im_start|>assistant\n" {
		t.Errorf("Expected only the generation prompt, got %q", got)
	}
}

func TestChatMLRenderer_RejectsTokenize(t *testing.T) {
	r := NewChatMLRenderer()

	_, err := r.Render(models.DefaultExchange(), RenderOptions{Tokenize: true})
	if err == nil {
		t.Fatal("Expected error for tokenize=true")
	}
}

func TestDefaultRenderOptions(t *testing.T) {
	opts := DefaultRenderOptions()
	if !opts.AddGenerationPrompt {
		t.Error("Expected AddGenerationPrompt to default to true")
	}
	if opts.Tokenize {
		t.Error("Expected Tokenize to default to false")
	}
}

func TestNewRenderer(t *testing.T) {
	cases := []struct {
		name    string
		cfg     *TokenizerConfig
		wantErr bool
	}{
		{
			"chatml template",
			&TokenizerConfig{ChatTemplate: "{% for message in messages %}{{'<|im_start|>' + message['role']}}{% endfor %}"},
			false,
		},
		{"nil config", nil, true},
		{"missing template", &TokenizerConfig{}, true},
		{"non-chatml template", &TokenizerConfig{ChatTemplate: "{{ bos_token }}[INST] {{ content }} [/INST]"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRenderer(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRenderer returned error: %v", err)
			}
			if r == nil {
				t.Fatal("Expected non-nil renderer")
			}
		})
	}
}
