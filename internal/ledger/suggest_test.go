package ledger

import (
	"testing"

	"fjacquet/vx-finance/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClosestCategory(t *testing.T) {
	categories := models.DefaultCategories()

	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"Publicidad", "Publicidade", true},
		{"impostos", "Impostos", true},
		{"Servicos", "Serviços", true},
		{"Completely different", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := closestCategory(tc.input, categories)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, ok := closestCategory("Publicidade", nil)
	assert.False(t, ok)
}
