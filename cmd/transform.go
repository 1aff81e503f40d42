/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/restyle/internal/provider"
	"github.com/valpere/restyle/internal/session"
	"github.com/valpere/restyle/internal/styles"
	"github.com/valpere/restyle/internal/textstat"
	"github.com/valpere/restyle/internal/transformer"
)

var (
	inputFile    string
	outputFile   string
	styleID      string
	targetLength int

	serviceName string
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	maxRetries  int
	timeout     time.Duration
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform text into a writing style",
	Long: `Transform the text of a file into one of the supported writing styles
using an external LLM service. The output keeps the language of the input.

Available services:
  - openai   OpenAI chat completions, or any API-compatible endpoint
             (requires an API key)
  - ollama   Ollama LLM (self-hosted)

Use "restyle styles" for the full style catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		svc, err := buildService(serviceName,
			setting(apiKey, "api_key"),
			setting(baseURL, "base_url"),
			setting(model, "model"))
		if err != nil {
			return err
		}
		client := buildClient(svc, maxRetries, timeout)

		tr := transformer.New(styles.NewCatalog(), client,
			transformer.WithLogger(logger),
			transformer.WithServiceConfig(provider.ServiceConfig{MaxTokens: maxTokens}),
		)

		done := make(chan session.Snapshot, 4)
		sess := session.New(tr,
			session.WithLogger(logger),
			session.WithListener(func(snap session.Snapshot) {
				switch snap.State {
				case session.StateTransforming:
					fmt.Fprintf(os.Stderr, "Transforming with style %s...\n", snap.StyleID)
				case session.StateTransformed:
					done <- snap
				case session.StateReady:
					if snap.Err != nil {
						done <- snap
					}
				}
			}),
		)

		sess.SetText(string(raw))
		if targetLength > 0 {
			sess.SetTargetLength(targetLength)
		}
		if !sess.ApplyStyle(styleID) {
			return fmt.Errorf("input file is empty")
		}

		snap := <-done
		if snap.Err != nil {
			return fmt.Errorf("transformation failed: %s", snap.Err.Message)
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(snap.Text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		stats := textstat.Calculate(snap.Text)
		fmt.Printf("Successfully transformed with style %s\n", styleID)
		fmt.Printf("Output: %d characters, %d words\n", stats.Characters, stats.Words)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to transform (required)")
	transformCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the transformed text (required)")
	transformCmd.Flags().StringVar(&styleID, "style", "", "Target style id (required, see \"restyle styles\")")
	transformCmd.Flags().IntVar(&targetLength, "target-length", 0, "Desired output length in characters (0 = no preference)")

	transformCmd.Flags().StringVar(&serviceName, "service", "openai", "Generation service to use")
	transformCmd.Flags().StringVar(&apiKey, "api-key", "", "Service API key (or RESTYLE_API_KEY)")
	transformCmd.Flags().StringVar(&model, "model", "", "Model name (service default used if empty)")
	transformCmd.Flags().StringVar(&baseURL, "base-url", "", "Service base URL (service default used if empty)")
	transformCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Completion token limit (service default used if 0)")
	transformCmd.Flags().IntVar(&maxRetries, "max-retries", 0, "Total attempts including the first (default 3)")
	transformCmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-attempt timeout (default 30s)")

	transformCmd.MarkFlagRequired("input")
	transformCmd.MarkFlagRequired("output")
	transformCmd.MarkFlagRequired("style")
}
