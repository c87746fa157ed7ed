// Package content loads the read-only gamification content: crafting recipes,
// quests, themes and table skins. Content lives in JSON files and is loaded
// once at startup; the rest of the system treats it as immutable.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopquest/ShopQuest_Go/internal/config"
	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// RecipesConfig is the on-disk shape of recipes.json
type RecipesConfig struct {
	Version string          `json:"version"`
	Recipes []domain.Recipe `json:"recipes"`
}

// QuestsConfig is the on-disk shape of quests.json
type QuestsConfig struct {
	Version string         `json:"version"`
	Quests  []domain.Quest `json:"quests"`
}

// ThemesConfig is the on-disk shape of themes.json
type ThemesConfig struct {
	Version string         `json:"version"`
	Themes  []domain.Theme `json:"themes"`
}

// TableSkinsConfig is the on-disk shape of table_skins.json
type TableSkinsConfig struct {
	Version    string             `json:"version"`
	TableSkins []domain.TableSkin `json:"table_skins"`
}

// Loader reads and validates content files
type Loader struct{}

// NewLoader creates a content loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all content files from dir and returns a validated Store.
func (l *Loader) Load(dir string) (*Store, error) {
	var recipesCfg RecipesConfig
	if err := l.readJSON(filepath.Join(dir, config.ContentFileRecipes), &recipesCfg); err != nil {
		return nil, err
	}

	var questsCfg QuestsConfig
	if err := l.readJSON(filepath.Join(dir, config.ContentFileQuests), &questsCfg); err != nil {
		return nil, err
	}

	var themesCfg ThemesConfig
	if err := l.readJSON(filepath.Join(dir, config.ContentFileThemes), &themesCfg); err != nil {
		return nil, err
	}

	var skinsCfg TableSkinsConfig
	if err := l.readJSON(filepath.Join(dir, config.ContentFileTableSkins), &skinsCfg); err != nil {
		return nil, err
	}

	store, err := NewStore(recipesCfg.Recipes, questsCfg.Quests, themesCfg.Themes, skinsCfg.TableSkins)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (l *Loader) readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	return nil
}
