package utils

import (
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// GrowthPercentage calcula a variação percentual entre dois períodos.
// Quando a linha de base é zero o crescimento é reportado como 0 (não um
// erro nem infinito), mesmo com receita corrente positiva, para não exibir
// um crescimento indefinido em um período de receita toda nova.
func GrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// ParsePositiveInt converte um parâmetro de query em inteiro positivo,
// caindo no valor padrão quando a string é vazia
func ParsePositiveInt(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("valor inválido: %q", raw)
	}

	if value <= 0 {
		return 0, fmt.Errorf("valor deve ser um inteiro positivo: %d", value)
	}

	return value, nil
}
