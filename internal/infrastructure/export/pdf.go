package export

import (
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/matex-app/matex-api/internal/application/dto"
)

var (
	pdfColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfColorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// WritePDF genera un documento A4 horizontal con una tabla por sección:
// título, banda de encabezado con fondo y una fila por registro.
func WritePDF(tables []dto.Table) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)

	for i, t := range tables {
		if i > 0 {
			m.AddRows(row.New(6))
		}
		m.AddRows(titleRow(t.Title))
		m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.4}))
		m.AddRows(headerRow(t.Columns))
		for _, r := range t.Rows {
			m.AddRows(dataRow(r, len(t.Columns)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, &ExportError{Cause: err}
	}
	return doc.GetBytes(), nil
}

func titleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: pdfColorPrimary, Top: 1,
		})),
	)
}

// headerRow banda de encabezado: fondo primario y texto blanco en negrita.
func headerRow(columns []string) core.Row {
	sizes := columnSizes(len(columns))
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Left,
			Color: pdfColorWhite, Top: 1.5, Left: 1,
		})))
	}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: pdfColorPrimary}).Add(cols...)
}

func dataRow(values []string, columns int) core.Row {
	sizes := columnSizes(columns)
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 9, Align: align.Left, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// columnSizes reparte la grilla de 12 entre las columnas; el resto de la
// división va a la primera, que suele llevar los nombres.
func columnSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	base := 12 / n
	rest := 12 % n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
	}
	sizes[0] += rest
	return sizes
}
