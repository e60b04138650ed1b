// Package pdf implementa la generación de la carta imprimible de una empresa:
// encabezado con los datos del restaurante, una sección por categoría con sus
// productos y precios, y al pie el código QR que enlaza a la carta digital.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoCartaGenerator implementa usecase.CartaPDFGenerator usando Maroto v2.
type MarotoCartaGenerator struct{}

// NewMarotoCartaGenerator construye el generador.
func NewMarotoCartaGenerator() *MarotoCartaGenerator { return &MarotoCartaGenerator{} }

// GenerateCartaPDF genera el PDF de la carta y devuelve sus bytes.
func (g *MarotoCartaGenerator) GenerateCartaPDF(
	company *entity.Company,
	menuURL string,
	sections []usecase.CartaSection,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Carta "+company.CommercialName, true).
		WithAuthor(company.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range sections {
		m.AddRows(categoryRow(section.Category))
		for _, product := range section.Products {
			m.AddRows(productRow(product))
		}
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrFooterRow(menuURL))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre comercial (izq) y datos de contacto (der).
func headerRow(company *entity.Company) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(company.CommercialName, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(company.BusinessName, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(company.Phone, props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
			text.New(company.Email, props.Text{
				Size: 9, Top: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// categoryRow: título de la sección, con su descripción si existe.
func categoryRow(category entity.Category) core.Row {
	components := []core.Component{
		text.New(category.Nombre, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 3,
		}),
	}
	height := 12.0
	if category.Descripcion != nil {
		height = 16
		components = append(components, text.New(*category.Descripcion, props.Text{
			Size: 8, Top: 10, Color: colorGray, Style: fontstyle.Italic,
		}))
	}
	return row.New(height).Add(col.New(12).Add(components...))
}

// productRow: nombre y descripción (izq), precio (der).
func productRow(product entity.Product) core.Row {
	return row.New(12).Add(
		col.New(9).Add(
			text.New(product.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(product.Description, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
		col.New(3).Add(
			text.New(product.Price.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1, Align: align.Right,
			}),
		),
	)
}

// qrFooterRow: código QR con la URL de la carta digital.
func qrFooterRow(menuURL string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(
			code.NewQr(menuURL, props.Rect{Center: true, Percent: 90}),
		),
		col.New(9).Add(
			text.New("Escanea el código para ver la carta actualizada", props.Text{
				Size: 9, Top: 12, Color: colorGray,
			}),
			text.New(menuURL, props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
	)
}
