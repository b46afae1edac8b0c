// Package collection implementa el motor genérico de filtrado y agregación
// que comparten los tres tipos de entidad (usuarios, ventas, empleados).
//
// Los casos de uso lo parametrizan con accesores de campo; aquí no hay nada
// específico de una entidad. Los criterios no suministrados no imponen
// restricción: la composición es un AND solo sobre los criterios presentes.
package collection

import (
	"cmp"
	"sort"
	"strings"
	"time"
)

// Predicate decide si un elemento satisface un criterio.
type Predicate[T any] func(T) bool

// Apply devuelve el subconjunto que satisface todos los predicados.
// Los predicados nil se ignoran; sin predicados devuelve una copia de la
// colección completa en su orden original.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		match := true
		for _, p := range preds {
			if p == nil {
				continue
			}
			if !p(it) {
				match = false
				break
			}
		}
		if match {
			out = append(out, it)
		}
	}
	return out
}

// ContainsFold criterio de subcadena sin distinguir mayúsculas/minúsculas.
func ContainsFold[T any](get func(T) string, term string) Predicate[T] {
	lower := strings.ToLower(term)
	return func(it T) bool {
		return strings.Contains(strings.ToLower(get(it)), lower)
	}
}

// Equals igualdad exacta sobre un campo categórico.
func Equals[T any](get func(T) string, want string) Predicate[T] {
	return func(it T) bool {
		return get(it) == want
	}
}

// AtLeast cota inferior inclusiva sobre un campo numérico opcional.
// Los elementos sin valor (ok=false) no cumplen ningún criterio de rango.
func AtLeast[T any, N cmp.Ordered](get func(T) (N, bool), min N) Predicate[T] {
	return func(it T) bool {
		v, ok := get(it)
		return ok && v >= min
	}
}

// AtMost cota superior inclusiva sobre un campo numérico opcional.
func AtMost[T any, N cmp.Ordered](get func(T) (N, bool), max N) Predicate[T] {
	return func(it T) bool {
		v, ok := get(it)
		return ok && v <= max
	}
}

// NotBefore cota inferior inclusiva sobre un campo de fecha.
func NotBefore[T any](get func(T) time.Time, min time.Time) Predicate[T] {
	return func(it T) bool {
		return !get(it).Before(min)
	}
}

// NotAfter cota superior inclusiva sobre un campo de fecha.
func NotAfter[T any](get func(T) time.Time, max time.Time) Predicate[T] {
	return func(it T) bool {
		return !get(it).After(max)
	}
}

// RecentBy devuelve los n elementos más recientes según la marca ts, en orden
// descendente. n <= 0 produce una lista vacía; n mayor que la colección la
// devuelve completa. No muta la colección de entrada.
func RecentBy[T any](items []T, ts func(T) time.Time, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return ts(out[i]).After(ts(out[j]))
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
