package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thangchung/skillbox/internal/config"
	"github.com/thangchung/skillbox/internal/exporter"
	"github.com/thangchung/skillbox/internal/hub"
	"github.com/thangchung/skillbox/internal/template"
)

var (
	generateModelPathFlag string
	generateModelNameFlag string
	generateFromHubFlag   string
	generateCopyFlag      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate inference_model.json for a local model",
	Long: `Render the model's chat template for the fixed system/user exchange and
write the resulting prompt record to inference_model.json in the model
directory.

The model directory must contain tokenizer_config.json; pass --from-hub to
download it from the Hugging Face hub first.

Examples:
  skillbox generate
  skillbox generate --model-path models/Qwen2.5-1.5B-Instruct --name Qwen2.5-1.5B-Instruct
  skillbox generate --from-hub Qwen/Qwen2.5-1.5B-Instruct`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateModelPathFlag, "model-path", "p", "", "Model directory (default from config)")
	generateCmd.Flags().StringVarP(&generateModelNameFlag, "name", "n", "", "Model name written into the record (default from config)")
	generateCmd.Flags().StringVar(&generateFromHubFlag, "from-hub", "", "Hub repository to fetch tokenizer_config.json from (e.g. Qwen/Qwen2.5-1.5B-Instruct)")
	generateCmd.Flags().BoolVarP(&generateCopyFlag, "copy", "c", false, "Copy the rendered template to the clipboard")
}

func runGenerate(ctx context.Context, out io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	modelPath := generateModelPathFlag
	if modelPath == "" {
		modelPath = cfg.DefaultModelPath
	}
	modelName := generateModelNameFlag
	if modelName == "" {
		modelName = cfg.DefaultModelName
	}

	if generateFromHubFlag != "" {
		client, err := hub.NewClient(
			hub.WithEndpoint(cfg.Hub.Endpoint),
			hub.WithRevision(cfg.Hub.Revision),
			hub.WithTimeout(time.Duration(cfg.Hub.TimeoutSeconds)*time.Second),
		)
		if err != nil {
			return err
		}

		if cfg.Verbose {
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Fetching tokenizer config for %s...", generateFromHubFlag)))
		}
		if _, err := client.FetchTokenizerConfig(ctx, generateFromHubFlag, modelPath); err != nil {
			return err
		}
	}

	tokCfg, err := template.LoadTokenizerConfig(modelPath)
	if err != nil {
		return err
	}

	renderer, err := template.NewRenderer(tokCfg)
	if err != nil {
		return err
	}

	result, err := exporter.New(renderer).Export(modelPath, modelName)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %s\n", result.Path)
	fmt.Fprintf(out, "\nPrompt template:\n%s\n", result.Template)

	if generateCopyFlag || cfg.CopyToClipboard {
		copyToClipboard(result.Template)
	}

	return nil
}
