// Package ledger implementa el libro de ciclo de vida de activos: alta, traslado,
// baja y cambio de estado. Cada operación corre en una única transacción y deja
// filas de historial/auditoría; si algo falla no queda ningún efecto parcial.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// SystemActor se registra en performed_by cuando la operación no trae usuario autenticado.
const SystemActor = "system"

// Ledger orquesta las operaciones transaccionales sobre activos.
type Ledger struct {
	txRunner      TxRunner
	assetRepo     repository.AssetRepository
	log           zerolog.Logger
	now           func() time.Time
	newOpID       func() string
	defaultMethod entity.DepreciationMethod
	auditStatus   bool
}

// Option configura un Ledger.
type Option func(*Ledger)

// WithClock reemplaza el reloj del servidor (marcas de tiempo de historial y bajas).
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithDefaultMethod método de depreciación cuando la política no indica uno.
func WithDefaultMethod(m entity.DepreciationMethod) Option {
	return func(l *Ledger) {
		if m.Valid() {
			l.defaultMethod = m
		}
	}
}

// WithStatusAudit hace que UpdateStatus corra en transacción y deje fila en asset_history.
func WithStatusAudit(enabled bool) Option {
	return func(l *Ledger) { l.auditStatus = enabled }
}

// New construye el ledger. assetRepo (atado al pool) se usa para UpdateStatus sin transacción.
func New(txRunner TxRunner, assetRepo repository.AssetRepository, log zerolog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		txRunner:      txRunner,
		assetRepo:     assetRepo,
		log:           log.With().Str("component", "ledger").Logger(),
		now:           time.Now,
		newOpID:       uuid.NewString,
		defaultMethod: entity.MethodStraightLine,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// clean recorta espacios y normaliza a NFC para que textos equivalentes se comparen iguales.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func actorOrSystem(actor string) string {
	if a := clean(actor); a != "" {
		return a
	}
	return SystemActor
}

func orUnknown(s string) string {
	if s == "" {
		return entity.UnknownValue
	}
	return s
}

// failed registra una operación rechazada: errores del llamador en debug, el resto en warn.
func (l *Ledger) failed(err error) *zerolog.Event {
	if domain.IsClientError(err) {
		return l.log.Debug().Err(err)
	}
	return l.log.Warn().Err(err)
}
