package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/vx-finance/internal/models"

	"gopkg.in/yaml.v3"
)

// SeedCategoriesFile is the default name of the seed category file.
const SeedCategoriesFile = "categories.yaml"

type seedCategory struct {
	Name  string `yaml:"name"`
	Group string `yaml:"group"`
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".vx-finance", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".vx-finance", filename))
	}

	for _, location := range locations {
		if info, err := os.Stat(location); err == nil && !info.IsDir() {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadSeedCategories reads a category list from YAML. Both a top-level list
// and a "categories:" mapping are accepted; groups may be written as stored
// labels ("Custos de Venda") or keys ("COGS").
func LoadSeedCategories(path string) ([]models.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var entries []seedCategory
	var wrapped seedFile
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Categories) > 0 {
		entries = wrapped.Categories
	} else if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("categories file %s is empty", path)
	}

	seen := make(map[string]bool, len(entries))
	categories := make([]models.Category, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("category without name in %s", path)
		}
		group, ok := models.ParseCategoryGroup(e.Group)
		if !ok {
			return nil, fmt.Errorf("category %q has unknown group %q", name, e.Group)
		}
		if seen[strings.ToLower(name)] {
			return nil, fmt.Errorf("category %q is declared twice", name)
		}
		seen[strings.ToLower(name)] = true
		categories = append(categories, models.Category{Name: name, Group: group})
	}
	return categories, nil
}

// ResolveSeedCategories returns the categories from the configured file, or
// the built-in defaults when no file is configured or found.
func ResolveSeedCategories(filename string) ([]models.Category, error) {
	explicit := filename != ""
	if !explicit {
		filename = SeedCategoriesFile
	}

	path, err := FindConfigFile(filename)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("categories file %s not found", filename)
		}
		return models.DefaultCategories(), nil
	}
	return LoadSeedCategories(path)
}
