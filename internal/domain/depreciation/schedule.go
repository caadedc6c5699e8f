// Package depreciation proyecta el valor decreciente de un activo por periodos
// calendario a partir de su fecha de compra. Es un servicio de dominio puro:
// sin I/O, determinista e idempotente.
package depreciation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var (
	hundredth = decimal.New(1, -2)
	// Floor valor residual mínimo; el cronograma termina al alcanzarlo.
	Floor = decimal.NewFromInt(1)
)

// GenerateSchedule produce el cronograma de depreciación de un activo.
//
// Sin política (tasa ausente), con PeriodLength <= 0 o con paso <= 0 devuelve una
// secuencia vacía. En cada iteración avanza la fecha un periodo, descuenta el paso del
// remanente con piso en 1 y emite (fecha, paso, remanente) mientras el remanente sea > 1.
// No hay tope de periodos: el remanente baja en cada vuelta y el bucle termina en el piso.
//
// En línea recta el paso es exactamente rate/100 × cost, sin redondeo. En saldo decreciente
// el paso se redondea a centavos; si deja de alcanzar un centavo el saldo se castiga hasta el piso.
func GenerateSchedule(purchaseDate time.Time, cost decimal.Decimal, policy *entity.DepreciationPolicy) ([]entity.DepreciationEntry, error) {
	if cost.IsNegative() {
		return nil, domain.Invalid("cost", "no puede ser negativo")
	}
	if policy == nil || policy.PeriodLength <= 0 {
		return nil, nil
	}
	if !policy.PeriodType.Valid() {
		return nil, domain.Invalid("period_type", fmt.Sprintf("tipo de periodo desconocido %q", policy.PeriodType))
	}
	method := policy.Method
	if method == "" {
		method = entity.MethodStraightLine
	}
	if !method.Valid() {
		return nil, domain.Invalid("method", fmt.Sprintf("método desconocido %q", method))
	}

	step := stepFor(policy.Rate, cost)
	if !step.IsPositive() {
		return nil, nil
	}

	var entries []entity.DepreciationEntry
	remaining := cost
	for period := 1; remaining.GreaterThan(Floor); period++ {
		if method == entity.MethodDecliningBalance {
			step = stepFor(policy.Rate, remaining).Round(2)
			if step.LessThan(hundredth) {
				step = remaining.Sub(Floor)
			}
		}
		remaining = decimal.Max(Floor, remaining.Sub(step))
		entries = append(entries, entity.DepreciationEntry{
			Period:         period,
			PeriodDate:     AddPeriods(purchaseDate, policy.PeriodType, period*policy.PeriodLength),
			Amount:         step,
			RemainingValue: remaining,
			Rate:           policy.Rate,
			PeriodType:     policy.PeriodType,
			PeriodLength:   policy.PeriodLength,
			Method:         method,
		})
	}
	return entries, nil
}

// stepFor = rate/100 × base. Mul es exacto: un paso positivo nunca se vuelve cero.
func stepFor(rate, base decimal.Decimal) decimal.Decimal {
	return rate.Mul(base).Mul(hundredth)
}

// AddPeriods suma n meses (o n años) a start. Si el día no existe en el mes destino
// se ajusta al último día del mes (31-ene + 1 mes = 28/29-feb). Siempre se calcula
// desde la fecha ancla para que el ajuste no se acumule entre periodos.
func AddPeriods(start time.Time, pt entity.PeriodType, n int) time.Time {
	months := n
	if pt == entity.PeriodYear {
		months = n * 12
	}
	y, m, d := start.Date()
	total := int(m) - 1 + months
	year := y + floorDiv(total, 12)
	month := time.Month(total-floorDiv(total, 12)*12 + 1)
	if last := daysIn(year, month); d > last {
		d = last
	}
	h, mi, s := start.Clock()
	return time.Date(year, month, d, h, mi, s, start.Nanosecond(), start.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
