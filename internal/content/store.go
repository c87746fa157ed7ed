package content

import (
	"fmt"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// Store holds validated, immutable content indexed by ID.
// Safe for concurrent reads; never mutated after construction.
type Store struct {
	recipes []domain.Recipe
	quests  []domain.Quest
	themes  []domain.Theme
	skins   []domain.TableSkin

	recipesByID map[string]*domain.Recipe
	questsByID  map[string]*domain.Quest
	themesByID  map[string]*domain.Theme
	skinsByID   map[string]*domain.TableSkin
}

// NewStore validates the content sets and builds the indexes.
func NewStore(recipes []domain.Recipe, quests []domain.Quest, themes []domain.Theme, skins []domain.TableSkin) (*Store, error) {
	s := &Store{
		recipes:     recipes,
		quests:      quests,
		themes:      themes,
		skins:       skins,
		recipesByID: make(map[string]*domain.Recipe, len(recipes)),
		questsByID:  make(map[string]*domain.Quest, len(quests)),
		themesByID:  make(map[string]*domain.Theme, len(themes)),
		skinsByID:   make(map[string]*domain.TableSkin, len(skins)),
	}

	for i := range recipes {
		r := &recipes[i]
		if r.ID == "" {
			return nil, fmt.Errorf("recipe at index %d has no id", i)
		}
		if _, dup := s.recipesByID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q", r.ID)
		}
		if r.RequiredLevel < 1 {
			return nil, fmt.Errorf("recipe %q: required_level must be >= 1", r.ID)
		}
		if r.ResultItemID == "" {
			return nil, fmt.Errorf("recipe %q: result_item_id is required", r.ID)
		}
		for _, ing := range r.Ingredients {
			if ing.IngredientID == "" {
				return nil, fmt.Errorf("recipe %q: ingredient with no id", r.ID)
			}
			if ing.Quantity < 0 {
				return nil, fmt.Errorf("recipe %q: negative ingredient quantity", r.ID)
			}
		}
		s.recipesByID[r.ID] = r
	}

	for i := range quests {
		q := &quests[i]
		if q.ID == "" {
			return nil, fmt.Errorf("quest at index %d has no id", i)
		}
		if _, dup := s.questsByID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quest id %q", q.ID)
		}
		if q.RequiredLevel < 1 {
			return nil, fmt.Errorf("quest %q: required_level must be >= 1", q.ID)
		}
		if q.XPReward < 0 {
			return nil, fmt.Errorf("quest %q: xp_reward must not be negative", q.ID)
		}
		s.questsByID[q.ID] = q
	}

	for i := range themes {
		t := &themes[i]
		if t.ID == "" {
			return nil, fmt.Errorf("theme at index %d has no id", i)
		}
		if _, dup := s.themesByID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate theme id %q", t.ID)
		}
		if t.RequiredLevel < 1 {
			return nil, fmt.Errorf("theme %q: required_level must be >= 1", t.ID)
		}
		s.themesByID[t.ID] = t
	}

	for i := range skins {
		sk := &skins[i]
		if sk.ID == "" {
			return nil, fmt.Errorf("table skin at index %d has no id", i)
		}
		if _, dup := s.skinsByID[sk.ID]; dup {
			return nil, fmt.Errorf("duplicate table skin id %q", sk.ID)
		}
		if sk.RequiredLevel < 1 {
			return nil, fmt.Errorf("table skin %q: required_level must be >= 1", sk.ID)
		}
		if _, ok := s.themesByID[sk.ThemeID]; !ok {
			return nil, fmt.Errorf("table skin %q references unknown theme %q", sk.ID, sk.ThemeID)
		}
		s.skinsByID[sk.ID] = sk
	}

	return s, nil
}

// Recipes returns all recipes in file order.
func (s *Store) Recipes() []domain.Recipe { return s.recipes }

// Quests returns all quests in file order.
func (s *Store) Quests() []domain.Quest { return s.quests }

// Themes returns all themes in file order.
func (s *Store) Themes() []domain.Theme { return s.themes }

// TableSkins returns all table skins in file order.
func (s *Store) TableSkins() []domain.TableSkin { return s.skins }

// RecipeByID looks up a recipe.
func (s *Store) RecipeByID(id string) (*domain.Recipe, bool) {
	r, ok := s.recipesByID[id]
	return r, ok
}

// QuestByID looks up a quest.
func (s *Store) QuestByID(id string) (*domain.Quest, bool) {
	q, ok := s.questsByID[id]
	return q, ok
}

// ThemeByID looks up a theme.
func (s *Store) ThemeByID(id string) (*domain.Theme, bool) {
	t, ok := s.themesByID[id]
	return t, ok
}

// TableSkinByID looks up a table skin.
func (s *Store) TableSkinByID(id string) (*domain.TableSkin, bool) {
	sk, ok := s.skinsByID[id]
	return sk, ok
}
