package ledger

import (
	"strings"

	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
)

// DuplicateCategoryMessage is the user-facing text for a duplicate category name.
const DuplicateCategoryMessage = "Esta categoria já existe."

// AddCategory appends a category. Names are unique case-insensitively.
func (l *Ledger) AddCategory(name string, group models.CategoryGroup) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ledgererror.Validation("category", "name", "", ledgererror.ErrEmptyName)
	}
	if !group.Valid() {
		return models.Category{}, ledgererror.Validation("category", "group", string(group), ledgererror.ErrInvalidGroup)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.categoryIndex(name); ok {
		l.logger.Warn("Duplicate category rejected", logging.F(logging.FieldCategory, name))
		return models.Category{}, ledgererror.Validation("category", "name", name, ledgererror.ErrDuplicateCategory)
	}

	category := models.Category{Name: name, Group: group}
	l.state.Categories = append(l.state.Categories, category)
	l.logger.Debug("Category added",
		logging.F(logging.FieldCategory, name),
		logging.F(logging.FieldGroup, group))
	l.commit("add_category")
	return category, nil
}

// RemoveCategory deletes the category matching name case-insensitively.
// Transactions keep their category name and group snapshot.
func (l *Ledger) RemoveCategory(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.categoryIndex(name)
	if !ok {
		return false
	}
	l.state.Categories = append(l.state.Categories[:idx:idx], l.state.Categories[idx+1:]...)
	l.logger.Debug("Category removed", logging.F(logging.FieldCategory, name))
	l.commit("remove_category")
	return true
}

// SetCategoryGroup changes the group of a category. Existing transactions keep
// the group they were recorded with.
func (l *Ledger) SetCategoryGroup(name string, group models.CategoryGroup) (models.Category, error) {
	if !group.Valid() {
		return models.Category{}, ledgererror.Validation("category", "group", string(group), ledgererror.ErrInvalidGroup)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.categoryIndex(name)
	if !ok {
		return models.Category{}, ledgererror.NotFound("category", name)
	}
	l.state.Categories[idx].Group = group
	l.logger.Debug("Category group changed",
		logging.F(logging.FieldCategory, l.state.Categories[idx].Name),
		logging.F(logging.FieldGroup, group))
	l.commit("set_category_group")
	return l.state.Categories[idx], nil
}

func (l *Ledger) categoryIndex(name string) (int, bool) {
	for i, c := range l.state.Categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return i, true
		}
	}
	return -1, false
}
