package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	apierrors "github.com/thangchung/skillbox/internal/errors"
	"github.com/thangchung/skillbox/internal/models"
)

// TokenizerConfig is the subset of tokenizer_config.json the renderer needs
type TokenizerConfig struct {
	ChatTemplate string
	BOSToken     string
	EOSToken     string
}

// LoadTokenizerConfig reads tokenizer_config.json from a model directory.
// Returns ErrNoTokenizerConfig when the file is absent so callers can decide
// to fetch it from the hub first.
func LoadTokenizerConfig(modelDir string) (*TokenizerConfig, error) {
	path := filepath.Join(modelDir, models.TokenizerConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apierrors.ErrNoTokenizerConfig, path)
		}
		return nil, fmt.Errorf("failed to read tokenizer config: %w", err)
	}

	return ParseTokenizerConfig(data)
}

// ParseTokenizerConfig extracts the template fields from raw JSON.
func ParseTokenizerConfig(data []byte) (*TokenizerConfig, error) {
	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewModelError("tokenizer config is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	return &TokenizerConfig{
		ChatTemplate: root.Get("chat_template").String(),
		BOSToken:     tokenString(root.Get("bos_token")),
		EOSToken:     tokenString(root.Get("eos_token")),
	}, nil
}

// tokenString handles the two encodings tokenizer configs use for special
// tokens: a plain string, or an AddedToken object with a "content" field.
func tokenString(v gjson.Result) string {
	if v.IsObject() {
		return v.Get("content").String()
	}
	return v.String()
}
