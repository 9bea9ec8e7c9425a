// Package main implements ideagen, an offline CLI for the activity idea
// generator.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/withme-travel/withme/internal/ideas"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ideagen",
		Short: "Generate activity ideas from destination descriptions",
		Long: `ideagen runs the activity idea generator locally, without a database or
server. Descriptions are read from a file or from stdin.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(newKeywordsCmd(), newGenerateCmd(), newTaxonomyCmd())
	return root
}

func newKeywordsCmd() *cobra.Command {
	var maxKeywords int
	cmd := &cobra.Command{
		Use:   "keywords [file]",
		Short: "Print the keywords extracted from a description",
		Long: `Print the keywords extracted from a description, most frequent first.

Examples:
  ideagen keywords kyoto.txt
  echo "Temples, gardens and tea houses" | ideagen keywords -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			for _, kw := range ideas.ExtractKeywords(text, maxKeywords) {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxKeywords, "max", ideas.DefaultMaxKeywords, "maximum number of keywords")
	return cmd
}

// generateOutput is what generate prints.
type generateOutput struct {
	Destination string       `json:"destination" yaml:"destination"`
	Keywords    []string     `json:"keywords" yaml:"keywords"`
	Ideas       []ideas.Idea `json:"ideas" yaml:"ideas"`
}

func newGenerateCmd() *cobra.Command {
	var (
		destination string
		count       int
		seed        int64
		format      string
		itemsPath   string
	)
	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate activity ideas for a description",
		Long: `Generate activity ideas for a destination description.

Itinerary items used for relevance scoring can be supplied as a YAML or JSON
list of {title, description} objects with --items. A non-zero --seed makes
the output reproducible.

Examples:
  ideagen generate --destination Paris paris.txt
  cat goa.txt | ideagen generate --destination Goa --count 3 --seed 42 --format yaml -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			items, err := readItems(itemsPath)
			if err != nil {
				return err
			}

			var src ideas.Source
			if seed != 0 {
				src = ideas.NewSeededSource(seed)
			}
			keywords, generated := ideas.NewGenerator(src).FromDescription(destination, text, items, count)

			return writeOutput(cmd.OutOrStdout(), format, generateOutput{
				Destination: destination,
				Keywords:    keywords,
				Ideas:       generated,
			})
		},
	}
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "destination name used in titles and descriptions")
	cmd.Flags().IntVarP(&count, "count", "n", ideas.DefaultIdeaCount, "number of ideas")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 picks a random one")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&itemsPath, "items", "", "YAML or JSON file of itinerary items")
	return cmd
}

func newTaxonomyCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the categories, activity types and budget categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), format, ideas.Taxonomy())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), nil
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), nil
}

func readItems(path string) ([]ideas.TemplateItem, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items %s: %w", path, err)
	}
	var items []ideas.TemplateItem
	if err := yaml.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("failed to parse items %s: %w", path, err)
	}
	return items, nil
}

func writeOutput(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
