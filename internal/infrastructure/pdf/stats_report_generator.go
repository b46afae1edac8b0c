// Package pdf implementa el reporte PDF de estadísticas de una colección.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: métricas principales (total, promedio, máx, mín)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: agrupaciones clave → valor, una tabla por grupo │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Modelo del reporte ────────────────────────────────────────────────────────

// Metric una fila etiqueta → valor del resumen.
type Metric struct {
	Label string
	Value string
}

// Section una agrupación con título y filas clave → valor, en el orden en que
// deben imprimirse.
type Section struct {
	Title string
	Rows  []Metric
}

// Report contenido de un reporte de estadísticas de una colección.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Summary     []Metric
	Sections    []Section
}

// ── Generator ─────────────────────────────────────────────────────────────────

// StatsReportGenerator genera reportes de estadísticas usando Maroto v2.
type StatsReportGenerator struct{}

// NewStatsReportGenerator construye el generador.
func NewStatsReportGenerator() *StatsReportGenerator { return &StatsReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *StatsReportGenerator) Generate(_ context.Context, r Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Resumen
	m.AddRows(sectionTitleRow("RESUMEN"))
	for _, metric := range r.Summary {
		m.AddRows(metricRow(metric, 9))
	}

	// Secciones de agrupación
	for _, s := range r.Sections {
		m.AddRows(line.NewRow(2))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow(s.Title))
		if len(s.Rows) == 0 {
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New("(sin datos)", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
			)))
			continue
		}
		for _, metric := range s.Rows {
			m.AddRows(metricRow(metric, 8))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(r Report) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// metricRow: etiqueta a la izquierda, valor alineado a la derecha.
func metricRow(m Metric, size float64) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(m.Label, props.Text{
			Size: size, Top: 1, Left: 2,
		})),
		col.New(4).Add(text.New(m.Value, props.Text{
			Style: fontstyle.Bold, Size: size, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}
