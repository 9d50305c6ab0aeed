package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/vx-finance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSeedCategories(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected []models.Category
		hasError bool
	}{
		{
			name: "wrapped list with keys and labels",
			content: `
categories:
  - name: Consultoria
    group: REVENUE
  - name: Hospedagem
    group: Custos de Venda
`,
			expected: []models.Category{
				{Name: "Consultoria", Group: models.GroupRevenue},
				{Name: "Hospedagem", Group: models.GroupCOGS},
			},
		},
		{
			name: "top-level list",
			content: `
- name: Tarifas
  group: financial
`,
			expected: []models.Category{{Name: "Tarifas", Group: models.GroupFinancial}},
		},
		{name: "unknown group", content: "- name: X\n  group: EQUITY\n", hasError: true},
		{name: "missing name", content: "- group: COGS\n", hasError: true},
		{name: "duplicate name", content: "- name: A\n  group: COGS\n- name: a\n  group: COGS\n", hasError: true},
		{name: "empty file", content: "", hasError: true},
		{name: "invalid yaml", content: "categories: [", hasError: true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".yaml", tc.content)
			categories, err := LoadSeedCategories(path)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, categories)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	_, err := FindConfigFile("categories.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	writeFile(t, filepath.Join(dir, "config"), "categories.yaml", "- name: A\n  group: COGS\n")

	path, err := FindConfigFile("categories.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "categories.yaml"), path)

	abs := filepath.Join(dir, "config", "categories.yaml")
	path, err = FindConfigFile(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestResolveSeedCategories(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	categories, err := ResolveSeedCategories("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), categories)

	_, err = ResolveSeedCategories("custom.yaml")
	assert.Error(t, err)

	writeFile(t, ".", "custom.yaml", "- name: Única\n  group: ASSET\n")
	categories, err = ResolveSeedCategories("custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{Name: "Única", Group: models.GroupAsset}}, categories)
}
