// Package pdf implementa la generación del reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Fecha de generación                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Unidad | Bodega | Cantidad   │
//	│    (una fila por bodega, subtotal por producto)             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: productos listados                                  │
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

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.StockReportGenerator = (*MarotoStockReportGenerator)(nil)

// MarotoStockReportGenerator implementa inventory.StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator { return &MarotoStockReportGenerator{} }

// GenerateStockReport genera el PDF del stock agrupado y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(
	_ context.Context,
	company *entity.Company,
	summaries []*entity.StockSummary,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, s := range summaries {
		for _, r := range productRows(s) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(summaries)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y fecha de generación (der).
func headerRow(company *entity.Company, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de stock por producto y bodega", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de stock.
func tableHeaderRow() core.Row {
	header := func(s string, size int, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: alignment, Top: 1,
		}))
	}
	return row.New(6).Add(
		header("Producto", 4, align.Left),
		header("Categoría", 2, align.Left),
		header("Unidad", 1, align.Left),
		header("Bodega", 3, align.Left),
		header("Cantidad", 2, align.Right),
	)
}

// productRows: una fila por bodega del producto más la fila de subtotal.
func productRows(s *entity.StockSummary) []core.Row {
	rows := make([]core.Row, 0, len(s.PerWarehouse)+1)

	categoryName := ""
	if s.Product.Category != nil {
		categoryName = s.Product.Category.Name
	}
	unitSymbol := ""
	if s.Product.Unit != nil {
		unitSymbol = s.Product.Unit.Symbol
	}

	for i, ws := range s.PerWarehouse {
		productName := ""
		if i == 0 {
			productName = s.Product.Name
		}
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(productName, props.Text{Size: 8})),
			col.New(2).Add(text.New(categoryName, props.Text{Size: 8, Color: colorGray})),
			col.New(1).Add(text.New(unitSymbol, props.Text{Size: 8, Color: colorGray})),
			col.New(3).Add(text.New(ws.Warehouse.Name, props.Text{Size: 8})),
			col.New(2).Add(text.New(ws.Quantity.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}

	rows = append(rows, row.New(5).Add(
		col.New(10).Add(text.New("Total "+s.Product.Name, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
		})),
		col.New(2).Add(text.New(s.Quantity.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
		})),
	))
	return rows
}

// totalRow: conteo de productos del reporte.
func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Productos listados: %d", count), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}
