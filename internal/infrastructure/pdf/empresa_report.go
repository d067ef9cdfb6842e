// Package pdf genera el listado de empresas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  Título + fecha de emisión                           │
//	│  ───────────────────────────────────────────────     │
//	│  TABLA: ID | Nombre | Razón Social | CUIL | Estado    │
//	│  ───────────────────────────────────────────────     │
//	│  Total de empresas                                   │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 63, Green: 81, Blue: 181}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// EmpresaReport genera el listado de empresas.
type EmpresaReport struct {
	now func() time.Time
}

// NewEmpresaReport construye el generador.
func NewEmpresaReport() *EmpresaReport {
	return &EmpresaReport{now: time.Now}
}

// Generate devuelve los bytes del PDF. Las empresas se listan en el orden recibido.
func (g *EmpresaReport) Generate(_ context.Context, empresas []entity.Empresa) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Listado de Empresas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range empresas {
		m.AddRows(empresaRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de empresas: %d", len(empresas)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(now time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Seleccione una Empresa", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	cell := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Align: align.Center, Top: 2,
		}))
	}
	return row.New(8).Add(
		cell(1, "ID"),
		cell(4, "Nombre"),
		cell(4, "Razón Social"),
		cell(2, "CUIL"),
		cell(1, "Estado"),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func empresaRow(e entity.Empresa) core.Row {
	estado := "Activa"
	if e.Eliminado {
		estado = "Baja"
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(strconv.FormatInt(e.ID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(e.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(e.RazonSocial, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(strconv.FormatInt(e.Cuil, 10), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(estado, props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}
