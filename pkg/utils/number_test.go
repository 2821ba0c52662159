package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{
			name:     "Crescimento positivo",
			current:  150,
			previous: 100,
			expected: 50.00,
		},
		{
			name:     "Queda de receita",
			current:  50,
			previous: 100,
			expected: -50.00,
		},
		{
			name:     "Linha de base zero com receita corrente",
			current:  100,
			previous: 0,
			expected: 0,
		},
		{
			name:     "Ambos os períodos zerados",
			current:  0,
			previous: 0,
			expected: 0,
		},
		{
			name:     "Arredondamento em duas casas",
			current:  100,
			previous: 300,
			expected: -66.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GrowthPercentage(tt.current, tt.previous))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.5678))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
}

func TestParsePositiveInt(t *testing.T) {
	t.Run("String vazia cai no valor padrão", func(t *testing.T) {
		value, err := ParsePositiveInt("", 6)
		assert.NoError(t, err)
		assert.Equal(t, 6, value)
	})

	t.Run("Inteiro positivo é aceito", func(t *testing.T) {
		value, err := ParsePositiveInt("12", 6)
		assert.NoError(t, err)
		assert.Equal(t, 12, value)
	})

	t.Run("Valor não numérico é rejeitado", func(t *testing.T) {
		_, err := ParsePositiveInt("abc", 6)
		assert.Error(t, err)
	})

	t.Run("Zero e negativos são rejeitados", func(t *testing.T) {
		_, err := ParsePositiveInt("0", 6)
		assert.Error(t, err)

		_, err = ParsePositiveInt("-3", 6)
		assert.Error(t, err)
	})
}
