// Package timebucket agrupa registros datados em buckets de mês calendário.
// A chave canônica é YYYY-MM, então a ordenação lexicográfica das chaves
// equivale à ordenação cronológica.
package timebucket

import (
	"sort"
	"time"
)

const keyLayout = "2006-01"

// Key devolve a chave canônica do bucket mensal de uma data
func Key(date time.Time) string {
	return date.Format(keyLayout)
}

// Accumulator acumula soma e contagem de um bucket mantendo a precisão
// numérica dos valores acumulados
type Accumulator struct {
	Sum   float64
	Count int
}

// Average devolve a média dos valores acumulados, ou 0 para bucket vazio
func (a Accumulator) Average() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Sum / float64(a.Count)
}

// Series mapeia chaves de bucket para seus acumuladores. Nenhum bucket é
// emitido para meses sem registros; quem precisa de série densa preenche os
// meses ausentes explicitamente.
type Series map[string]Accumulator

func NewSeries() Series {
	return make(Series)
}

// Add acumula um valor no bucket correspondente à data
func (s Series) Add(date time.Time, value float64) {
	key := Key(date)
	acc := s[key]
	acc.Sum += value
	acc.Count++
	s[key] = acc
}

// SortedKeys devolve as chaves em ordem lexicográfica ascendente
func (s Series) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
