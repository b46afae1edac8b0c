package collection_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/registros-api/internal/domain/collection"
)

type row struct {
	group string
	ok    bool
	val   int64
}

func rowKey(r row) (string, bool) { return r.group, r.ok }
func rowVal(r row) int64          { return r.val }

// ── CountBy ───────────────────────────────────────────────────────────────────

func TestCountBy_OrdenaPorConteoDescendente(t *testing.T) {
	rows := []row{
		{group: "ventas", ok: true},
		{group: "ti", ok: true},
		{group: "ventas", ok: true},
		{group: "rrhh", ok: true},
		{group: "ventas", ok: true},
		{group: "ti", ok: true},
	}

	groups := collection.CountBy(rows, rowKey)

	require.Len(t, groups, 3)
	assert.Equal(t, collection.GroupCount{Key: "ventas", Count: 3}, groups[0])
	assert.Equal(t, collection.GroupCount{Key: "ti", Count: 2}, groups[1])
	assert.Equal(t, collection.GroupCount{Key: "rrhh", Count: 1}, groups[2])
}

// Los empates conservan el orden de primera aparición (orden estable).
func TestCountBy_EmpatesConservanOrdenDeAparicion(t *testing.T) {
	rows := []row{
		{group: "b", ok: true},
		{group: "a", ok: true},
		{group: "b", ok: true},
		{group: "a", ok: true},
	}

	groups := collection.CountBy(rows, rowKey)

	require.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].Key, "b apareció primero y empata en conteo")
	assert.Equal(t, "a", groups[1].Key)
}

func TestCountBy_ExcluyeSinClave(t *testing.T) {
	rows := []row{
		{group: "x", ok: true},
		{group: "", ok: false},
		{group: "y", ok: false},
	}

	groups := collection.CountBy(rows, rowKey)

	require.Len(t, groups, 1)
	assert.Equal(t, "x", groups[0].Key)
}

func TestCountBy_ColeccionVacia(t *testing.T) {
	assert.Empty(t, collection.CountBy(nil, rowKey))
}

// ── SumBy ─────────────────────────────────────────────────────────────────────

func TestSumBy_OrdenaPorTotalDescendente(t *testing.T) {
	rows := []row{
		{group: "norte", ok: true, val: 100},
		{group: "sur", ok: true, val: 500},
		{group: "norte", ok: true, val: 150},
	}

	groups := collection.SumBy(rows, rowKey, rowVal)

	require.Len(t, groups, 2)
	assert.Equal(t, collection.GroupSum{Key: "sur", Total: 500}, groups[0])
	assert.Equal(t, collection.GroupSum{Key: "norte", Total: 250}, groups[1])
}

// ── Summarize ─────────────────────────────────────────────────────────────────

func TestSummarize_CalculaTodo(t *testing.T) {
	rows := []row{
		{ok: true, val: 30_000_000},
		{ok: true, val: 50_000_000},
		{ok: true, val: 70_000_000},
	}

	s := collection.Summarize(rows, func(r row) (int64, bool) { return r.val, r.ok })

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, int64(150_000_000), s.Sum)
	assert.Equal(t, int64(70_000_000), s.Max)
	assert.Equal(t, int64(30_000_000), s.Min)
	assert.True(t, decimal.NewFromInt(50_000_000).Equal(s.Average),
		"el promedio de 30/50/70 millones debe ser 50 millones")
}

func TestSummarize_PromedioRedondeaADosDecimales(t *testing.T) {
	rows := []row{
		{ok: true, val: 10},
		{ok: true, val: 10},
		{ok: true, val: 11},
	}

	s := collection.Summarize(rows, func(r row) (int64, bool) { return r.val, r.ok })

	// 31/3 = 10.333… → 10.33
	assert.Equal(t, "10.33", s.Average.String())
}

// Sobre colecciones vacías todo vale cero; nunca error ni null.
func TestSummarize_ColeccionVacia_TodoCero(t *testing.T) {
	s := collection.Summarize(nil, func(r row) (int64, bool) { return r.val, r.ok })

	assert.Equal(t, 0, s.Count)
	assert.Equal(t, int64(0), s.Sum)
	assert.Equal(t, int64(0), s.Max)
	assert.Equal(t, int64(0), s.Min)
	assert.True(t, s.Average.IsZero())
}

func TestSummarize_ExcluyeSinValor(t *testing.T) {
	rows := []row{
		{ok: true, val: 20},
		{ok: false, val: 999},
		{ok: true, val: 40},
	}

	s := collection.Summarize(rows, func(r row) (int64, bool) { return r.val, r.ok })

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, int64(60), s.Sum)
	assert.Equal(t, int64(40), s.Max, "los elementos sin valor no deben entrar al máximo")
}

func TestSummarize_UnSoloElemento(t *testing.T) {
	rows := []row{{ok: true, val: 42}}

	s := collection.Summarize(rows, func(r row) (int64, bool) { return r.val, r.ok })

	assert.Equal(t, int64(42), s.Max)
	assert.Equal(t, int64(42), s.Min)
	assert.Equal(t, "42", s.Average.String())
}

// ── AgeBucket ─────────────────────────────────────────────────────────────────

func TestAgeBucket_Fronteras(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{0, "teens"},
		{19, "teens"},
		{20, "20s"},
		{29, "20s"},
		{30, "30s"},
		{45, "40s"},
		{59, "50s"},
		{60, "60s+"},
		{95, "60s+"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, collection.AgeBucket(c.age), "edad %d", c.age)
	}
}

// ── TenureBucket ──────────────────────────────────────────────────────────────

// La antigüedad se calcula por resta de años calendario, no por días: alguien
// contratado el 31 de diciembre cuenta un año el 1 de enero siguiente.
func TestTenureBucket_RestaDeAniosCalendario(t *testing.T) {
	cases := []struct {
		current, hire int
		want          string
	}{
		{2026, 2026, "under 1y"},
		{2026, 2025, "1-3y"}, // contratado en diciembre 2025 ya cuenta 1 año
		{2026, 2024, "1-3y"},
		{2026, 2023, "3-5y"},
		{2026, 2022, "3-5y"},
		{2026, 2021, "5-10y"},
		{2026, 2017, "5-10y"},
		{2026, 2016, "10y+"},
		{2026, 1990, "10y+"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, collection.TenureBucket(c.current, c.hire),
			"contratado %d visto desde %d", c.hire, c.current)
	}
}
