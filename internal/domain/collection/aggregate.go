package collection

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GroupCount número de elementos por clave de grupo.
type GroupCount struct {
	Key   string
	Count int
}

// CountBy agrupa los elementos por la clave key y los cuenta. Los elementos
// sin clave disponible (ok=false) se excluyen. Orden de salida: count
// descendente; los empates conservan el orden de primera aparición.
func CountBy[T any](items []T, key func(T) (string, bool)) []GroupCount {
	idx := make(map[string]int)
	var groups []GroupCount
	for _, it := range items {
		k, ok := key(it)
		if !ok {
			continue
		}
		if i, seen := idx[k]; seen {
			groups[i].Count++
		} else {
			idx[k] = len(groups)
			groups = append(groups, GroupCount{Key: k, Count: 1})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// GroupSum suma de un valor numérico por clave de grupo.
type GroupSum struct {
	Key   string
	Total int64
}

// SumBy agrupa por key y suma value. Mismo criterio de exclusión y de orden
// que CountBy, pero ordenando por total descendente.
func SumBy[T any](items []T, key func(T) (string, bool), value func(T) int64) []GroupSum {
	idx := make(map[string]int)
	var groups []GroupSum
	for _, it := range items {
		k, ok := key(it)
		if !ok {
			continue
		}
		if i, seen := idx[k]; seen {
			groups[i].Total += value(it)
		} else {
			idx[k] = len(groups)
			groups = append(groups, GroupSum{Key: k, Total: value(it)})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	return groups
}

// Summary estadísticas de un campo numérico sobre una colección.
// Sobre colecciones vacías Average es 0 y Max/Min son 0; nunca error ni null.
type Summary struct {
	Count   int
	Sum     int64
	Average decimal.Decimal
	Max     int64
	Min     int64
}

// Summarize calcula el resumen sobre los elementos con valor disponible
// (ok=true). El promedio se redondea a dos decimales.
func Summarize[T any](items []T, value func(T) (int64, bool)) Summary {
	s := Summary{Average: decimal.Zero}
	for _, it := range items {
		v, ok := value(it)
		if !ok {
			continue
		}
		if s.Count == 0 {
			s.Max, s.Min = v, v
		} else {
			if v > s.Max {
				s.Max = v
			}
			if v < s.Min {
				s.Min = v
			}
		}
		s.Sum += v
		s.Count++
	}
	if s.Count > 0 {
		s.Average = decimal.NewFromInt(s.Sum).
			Div(decimal.NewFromInt(int64(s.Count))).
			Round(2)
	}
	return s
}

// AgeBucket clasifica una edad en su franja por décadas.
func AgeBucket(age int) string {
	switch {
	case age < 20:
		return "teens"
	case age < 30:
		return "20s"
	case age < 40:
		return "30s"
	case age < 50:
		return "40s"
	case age < 60:
		return "50s"
	default:
		return "60s+"
	}
}

// TenureBucket clasifica la antigüedad por resta de años calendario
// (currentYear − hireYear), no por días transcurridos: un empleado contratado
// un 31 de diciembre "cumple un año" al día siguiente. Simplificación
// intencional del diseño original que se conserva tal cual.
func TenureBucket(currentYear, hireYear int) string {
	years := currentYear - hireYear
	switch {
	case years < 1:
		return "under 1y"
	case years < 3:
		return "1-3y"
	case years < 5:
		return "3-5y"
	case years < 10:
		return "5-10y"
	default:
		return "10y+"
	}
}
