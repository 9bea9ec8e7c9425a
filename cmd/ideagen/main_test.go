package main

import (
	"bytes"
	"encoding/json"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/withme-travel/withme/internal/ideas"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
		assert.NotEmpty(t, c.Short, "%s should have a short description", c.Name())
	}
	for _, want := range []string{"keywords", "generate", "taxonomy"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestKeywordsCmd_Stdin(t *testing.T) {
	out, err := execute(t, "Temples and more temples: Kyoto gardens", "keywords", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "temples", lines[0])
	assert.NotContains(t, lines, "and")
}

func TestKeywordsCmd_Max(t *testing.T) {
	out, err := execute(t, "museum gallery history heritage palace", "keywords", "--max", "2")
	require.NoError(t, err)
	assert.Equal(t, "museum\ngallery\n", out)
}

func TestGenerateCmd_SeededJSON(t *testing.T) {
	args := []string{"generate", "--destination", "Goa", "--count", "3", "--seed", "42", "-"}
	text := "Golden beach days, sunset yoga and a relaxing spa."

	first, err := execute(t, text, args...)
	require.NoError(t, err)
	second, err := execute(t, text, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed should give the same output")

	var got generateOutput
	require.NoError(t, json.Unmarshal([]byte(first), &got))
	assert.Equal(t, "Goa", got.Destination)
	assert.Contains(t, got.Keywords, "beach")
	require.Len(t, got.Ideas, 3)
	for _, idea := range got.Ideas {
		assert.Equal(t, ideas.CategoryRelaxation, idea.Category)
		assert.Equal(t, ideas.TypeBeach, idea.ActivityType)
	}
}

func TestGenerateCmd_ItemsFileAndYAML(t *testing.T) {
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(itemsPath, []byte("- title: Baga beach\n  description: sunset swim\n"), 0o600))
	descPath := filepath.Join(dir, "goa.txt")
	require.NoError(t, os.WriteFile(descPath, []byte("beach spa sunset"), 0o600))

	out, err := execute(t, "", "generate", "-d", "Goa", "-n", "2", "--seed", "7", "--items", itemsPath, "--format", "yaml", descPath)
	require.NoError(t, err)

	var got generateOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Ideas, 2)
	// beach and sunset appear in the item text.
	assert.Equal(t, 2.0, got.Ideas[0].RelevanceScore)
}

func TestGenerateCmd_Errors(t *testing.T) {
	_, err := execute(t, "x", "generate", "--count", "0", "-")
	assert.Error(t, err)

	_, err = execute(t, "beach", "generate", "--format", "xml", "-")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "", "generate", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestTaxonomyCmd(t *testing.T) {
	out, err := execute(t, "", "taxonomy", "--format", "yaml")
	require.NoError(t, err)

	var got ideas.TaxonomyInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, ideas.Taxonomy(), got)
}

func TestSourcesAreGofmted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", name)
	}
}
