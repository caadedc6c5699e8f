package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/pkg/jwt"
)

// run ejecuta assetctl con args y devuelve lo escrito en stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSchedule_TablaGolden(t *testing.T) {
	out, err := run(t, "schedule",
		"--cost", "12000", "--purchase-date", "2020-01-01",
		"--rate", "10", "--period-type", "year", "--period-length", "1",
		"--method", "straight_line")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "schedule_straight_line", []byte(out))
}

func TestSchedule_JSONAjustaFinDeMes(t *testing.T) {
	out, err := run(t, "schedule",
		"--cost", "1000", "--purchase-date", "2024-01-31",
		"--rate", "50", "--period-type", "month", "-o", "json")
	require.NoError(t, err)

	var entries []dto.DepreciationEntryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-02-29", entries[0].Date)
	assert.Equal(t, "2024-03-31", entries[1].Date)
	assert.True(t, entries[0].RemainingValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, entries[1].RemainingValue.Equal(decimal.NewFromInt(1)))
}

func TestSchedule_YAML(t *testing.T) {
	out, err := run(t, "schedule",
		"--cost", "12000", "--purchase-date", "2020-01-01",
		"--rate", "10", "--method", "declining_balance", "-o", "yaml")
	require.NoError(t, err)

	var rows []scheduleRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "1200.00", rows[0].Amount)
	assert.Equal(t, "10800.00", rows[0].RemainingValue)
	assert.Equal(t, "1080.00", rows[1].Amount)
	assert.Equal(t, "1.00", rows[len(rows)-1].RemainingValue)
}

func TestSchedule_PoliticaInvalida(t *testing.T) {
	_, err := run(t, "schedule", "--cost", "100", "--purchase-date", "2020-01-01",
		"--rate", "10", "--period-type", "week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period_type")

	_, err = run(t, "schedule", "--cost", "cien", "--purchase-date", "2020-01-01", "--rate", "10")
	require.Error(t, err)

	_, err = run(t, "schedule", "--cost", "100", "--purchase-date", "2020-01-01", "--rate", "10", "-o", "xml")
	require.Error(t, err)
}

func TestSchedule_TasaCeroSinPeriodos(t *testing.T) {
	out, err := run(t, "schedule", "--cost", "100", "--purchase-date", "2020-01-01", "--rate", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "no genera periodos")
}

func TestSchedule_LongitudCeroSinPeriodos(t *testing.T) {
	out, err := run(t, "schedule", "--cost", "100", "--purchase-date", "2020-01-01", "--rate", "10", "--period-length", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "no genera periodos")
}

func TestToken_FirmaConElSecretConfigurado(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	out, err := run(t, "token", "--user", "auditoria@activos.test", "--role", "auditor")
	require.NoError(t, err)

	userID, role, err := jwt.Parse("secreto-de-prueba", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "auditoria@activos.test", userID)
	assert.Equal(t, jwt.RoleAuditor, role)
}

func TestToken_RolDesconocido(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	_, err := run(t, "token", "--user", "x", "--role", "root")
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/activos.db")

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "esquema sqlite al día")

	_, err = run(t, "migrate", "down")
	assert.Error(t, err)
}
