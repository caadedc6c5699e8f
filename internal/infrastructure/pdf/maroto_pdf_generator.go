// Package pdf genera la representación imprimible del cronograma de depreciación de un activo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del activo + Código │ Categoría + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA: Costo / Compra / Custodio / Ubicación / Estado       │
//	│  POLÍTICA: Tasa / Periodo / Método                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Fecha | Depreciación | Valor remanente          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Depreciación acumulada / Valor final               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var _ reporting.SchedulePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reporting.SchedulePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GenerateSchedulePDF genera el PDF del cronograma y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSchedulePDF(
	_ context.Context,
	asset *entity.Asset,
	category *entity.Category,
	entries []entity.DepreciationEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cronograma de depreciación - "+asset.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(asset, category, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(assetRow(asset))
	m.AddRows(policyRow(asset, entries))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(entries)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(asset, entries))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(asset *entity.Asset, category *entity.Category, generated time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(asset.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+nonEmpty(asset.Code, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CRONOGRAMA DE DEPRECIACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(category.Name, fmt.Sprintf("Categoría %d", category.ID)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+generated.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func assetRow(asset *entity.Asset) core.Row {
	purchase := "-"
	if asset.PurchaseDate != nil {
		purchase = asset.PurchaseDate.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FICHA DEL ACTIVO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Costo: $%s   |   Compra: %s   |   Custodio: %s   |   Ubicación: %s   |   Estado: %s",
				formatMoney(asset.Cost),
				purchase,
				nonEmpty(asset.Custodian, entity.UnknownValue),
				nonEmpty(asset.Location, entity.UnknownValue),
				asset.Status,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func policyRow(asset *entity.Asset, entries []entity.DepreciationEntry) core.Row {
	desc := "Sin política de depreciación"
	if p := asset.Depreciation; p != nil {
		desc = fmt.Sprintf("Tasa %s%% cada %d %s   |   Método: %s   |   Periodos: %d",
			p.Rate.String(), p.PeriodLength, periodLabel(p.PeriodType, p.PeriodLength),
			methodLabel(p.Method), len(entries))
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("POLÍTICA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(desc, props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 2, align.Center),
		h("Fecha", 3, align.Center),
		h("Depreciación", 3, align.Right),
		h("Valor remanente", 4, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por periodo, con fondo alterno.
func tableRows(entries []entity.DepreciationEntry) []core.Row {
	out := make([]core.Row, 0, len(entries))
	for i, e := range entries {
		r := row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", e.Period),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(e.PeriodDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(e.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(4).Add(text.New("$"+formatMoney(e.RemainingValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, r)
	}
	return out
}

func totalsRow(asset *entity.Asset, entries []entity.DepreciationEntry) core.Row {
	final := asset.Cost
	if len(entries) > 0 {
		final = entries[len(entries)-1].RemainingValue
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: top, Color: colorPrimary,
		})
	}
	return row.New(14).Add(
		col.New(5),
		col.New(3).Add(
			label("Depreciación acumulada:"),
			text.New("Valor final:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
		),
		col.New(4).Add(
			value("$"+formatMoney(asset.Cost.Sub(final)), 0),
			value("$"+formatMoney(final), 6),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func periodLabel(pt entity.PeriodType, n int) string {
	switch {
	case pt == entity.PeriodMonth && n == 1:
		return "mes"
	case pt == entity.PeriodMonth:
		return "meses"
	case n == 1:
		return "año"
	default:
		return "años"
	}
}

func methodLabel(m entity.DepreciationMethod) string {
	if m == entity.MethodDecliningBalance {
		return "saldo decreciente"
	}
	return "línea recta"
}

// formatMoney formatea con separador de miles '.' y decimales ','.
// Ej: 12000 → "12.000,00", 1234567.5 → "1.234.567,50", -80 → "-80,00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
