package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	apphttp "github.com/jhoicas/Activos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Activos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	app        *fiber.App
	commands   *commandsMock
	queries    *queriesMock
	pdf        *pdfMock
	categories *categoriesMock
	disposals  *disposalsMock
	reports    *reportsMock
}

func newFixture(t *testing.T, jwtSecret string) *fixture {
	t.Helper()
	f := &fixture{
		app:        fiber.New(),
		commands:   &commandsMock{},
		queries:    &queriesMock{},
		pdf:        &pdfMock{},
		categories: &categoriesMock{},
		disposals:  &disposalsMock{},
		reports:    &reportsMock{},
	}
	apphttp.Router(f.app, apphttp.RouterDeps{
		Commands:   f.commands,
		Queries:    f.queries,
		PDF:        f.pdf,
		Categories: f.categories,
		Disposals:  f.disposals,
		Reports:    f.reports,
		JWTSecret:  jwtSecret,
	})
	t.Cleanup(func() {
		f.commands.AssertExpectations(t)
		f.queries.AssertExpectations(t)
		f.pdf.AssertExpectations(t)
		f.categories.AssertExpectations(t)
		f.disposals.AssertExpectations(t)
		f.reports.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Activos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAsset_Retorna201ConCronograma(t *testing.T) {
	f := newFixture(t, "")
	created := &dto.CreateAssetResponse{
		Asset: dto.AssetResponse{ID: 1, CategoryID: 3, Name: "Laptop", Cost: decimal.NewFromInt(12000), Status: "Active"},
		Schedule: []dto.DepreciationEntryResponse{
			{Period: 1, Date: "2021-01-01", Amount: decimal.NewFromInt(1200), RemainingValue: decimal.NewFromInt(10800)},
		},
	}
	f.commands.On("CreateFromRequest", mock.Anything, "", mock.MatchedBy(func(in dto.CreateAssetRequest) bool {
		return in.Name == "Laptop" && in.CategoryID == 3 &&
			in.Cost.Equal(decimal.NewFromInt(12000)) &&
			in.Depreciation != nil && in.Depreciation.PeriodType == "year"
	})).Return(created, nil).Once()

	resp := f.do(t, http.MethodPost, "/api/assets", `{
		"category_id": 3, "name": "Laptop", "cost": 12000, "purchase_date": "2020-01-01",
		"depreciation": {"rate": 10, "period_type": "year", "period_length": 1}
	}`, "")

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.CreateAssetResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(1), out.Asset.ID)
	require.Len(t, out.Schedule, 1)
	assert.True(t, out.Schedule[0].RemainingValue.Equal(decimal.NewFromInt(10800)))
}

func TestCreateAsset_CuerpoInvalido_Retorna400(t *testing.T) {
	f := newFixture(t, "")
	resp := f.do(t, http.MethodPost, "/api/assets", `{"name": `, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

func TestCreateAsset_ErrorDeValidacion_Retorna400(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("CreateFromRequest", mock.Anything, "", mock.Anything).
		Return(nil, domain.Invalid("cost", "debe ser mayor que cero")).Once()

	resp := f.do(t, http.MethodPost, "/api/assets", `{"category_id": 3, "name": "Laptop", "cost": 0}`, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "cost")
}

func TestGetAsset_IDNoNumerico_Retorna400SinConsultar(t *testing.T) {
	f := newFixture(t, "")
	resp := f.do(t, http.MethodGet, "/api/assets/abc", "", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestGetAsset_Inexistente_Retorna404(t *testing.T) {
	f := newFixture(t, "")
	f.queries.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.NotFound("activo", 99)).Once()

	resp := f.do(t, http.MethodGet, "/api/assets/99", "", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestListAssets_SinCategoria_Retorna400(t *testing.T) {
	f := newFixture(t, "")
	resp := f.do(t, http.MethodGet, "/api/assets", "", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListAssets_PaginacionPorDefectoYAcotada(t *testing.T) {
	f := newFixture(t, "")
	f.queries.On("ListByCategory", mock.Anything, int64(3), dto.PageRequest{Limit: 100, Offset: 10}).
		Return(&dto.AssetListResponse{Items: []dto.AssetResponse{}, Page: dto.PageResponse{Limit: 100, Offset: 10}}, nil).Once()

	resp := f.do(t, http.MethodGet, "/api/assets?category_id=3&limit=500&offset=10", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTransfer_SinCambios_Retorna422(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("TransferFromRequest", mock.Anything, "", int64(5), dto.TransferAssetRequest{Custodian: "Ana", Location: "Piso 2"}).
		Return(nil, fmt.Errorf("activo 5: %w", domain.ErrNoOp)).Once()

	resp := f.do(t, http.MethodPost, "/api/assets/5/transfer", `{"custodian": "Ana", "location": "Piso 2"}`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "NO_CHANGES", errorCode(t, resp))
}

func TestTransfer_Exitoso_Retorna200(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("TransferFromRequest", mock.Anything, "", int64(5), mock.Anything).
		Return(&dto.TransferResponse{ID: 1, AssetID: 5, PreviousCustodian: "Unknown", NewCustodian: "Ana"}, nil).Once()

	resp := f.do(t, http.MethodPost, "/api/assets/5/transfer", `{"custodian": "Ana"}`, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.TransferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Unknown", out.PreviousCustodian)
}

func TestDispose_YaDadoDeBaja_Retorna409(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("DisposeFromRequest", mock.Anything, "", int64(5), mock.MatchedBy(func(in dto.DisposeAssetRequest) bool {
		return in.Reason == "Sold" && in.OriginalValue == nil && in.DisposedValue.Equal(decimal.NewFromInt(8200))
	})).Return(nil, fmt.Errorf("baja activo 5: %w", domain.ErrConflict)).Once()

	resp := f.do(t, http.MethodPost, "/api/assets/5/dispose", `{"category_id": 3, "reason": "Sold", "disposed_value": 8200}`, "")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errorCode(t, resp))
}

func TestDispose_AlmacenCaido_Retorna503(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("DisposeFromRequest", mock.Anything, "", int64(5), mock.Anything).
		Return(nil, fmt.Errorf("begin transaction: %w", domain.ErrStoreUnavailable)).Once()

	resp := f.do(t, http.MethodPost, "/api/assets/5/dispose", `{"category_id": 3, "reason": "Sold"}`, "")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "STORE_UNAVAILABLE", errorCode(t, resp))
}

func TestUpdateStatus_Retorna204(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("UpdateStatus", mock.Anything, int64(5), "In Repair", "").Return(nil).Once()

	resp := f.do(t, http.MethodPut, "/api/assets/5/status", `{"status": "In Repair"}`, "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSchedulePDF_CabecerasDeDescarga(t *testing.T) {
	f := newFixture(t, "")
	f.pdf.On("Download", mock.Anything, int64(5)).Return([]byte("%PDF-1.3 fake"), "depreciacion-LAP-01.pdf", nil).Once()

	resp := f.do(t, http.MethodGet, "/api/assets/5/depreciation.pdf", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="depreciacion-LAP-01.pdf"`)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestSchedule_SinCronograma_Retorna404(t *testing.T) {
	f := newFixture(t, "")
	f.queries.On("Schedule", mock.Anything, int64(5)).Return(nil, domain.NotFound("cronograma del activo", 5)).Once()

	resp := f.do(t, http.MethodGet, "/api/assets/5/depreciation", "", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreview_NoRequiereActivo(t *testing.T) {
	f := newFixture(t, "")
	f.commands.On("Preview", mock.MatchedBy(func(in dto.SchedulePreviewRequest) bool {
		return in.PurchaseDate == "2024-01-31" && in.Depreciation.PeriodType == "month"
	})).Return(&dto.ScheduleResponse{Entries: []dto.DepreciationEntryResponse{{Period: 1, Date: "2024-02-29"}}}, nil).Once()

	resp := f.do(t, http.MethodPost, "/api/depreciation/preview", `{
		"purchase_date": "2024-01-31", "cost": 1000,
		"depreciation": {"rate": 10, "period_type": "month", "period_length": 1}
	}`, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "2024-02-29", out.Entries[0].Date)
}

func TestErrorNoClasificado_Retorna500SinFiltrarDetalle(t *testing.T) {
	f := newFixture(t, "")
	f.queries.On("History", mock.Anything, int64(5)).Return(nil, errors.New("driver: panic de prueba")).Once()

	resp := f.do(t, http.MethodGet, "/api/assets/5/history", "", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "driver")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías, bajas y avisos
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_ConActivos_Retorna409(t *testing.T) {
	f := newFixture(t, "")
	f.categories.On("Delete", mock.Anything, int64(3)).Return(fmt.Errorf("categoría 3 tiene activos: %w", domain.ErrConflict)).Once()

	resp := f.do(t, http.MethodDelete, "/api/categories/3", "", "")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCategoryCreate_Retorna201(t *testing.T) {
	f := newFixture(t, "")
	f.categories.On("Create", mock.Anything, dto.CategoryRequest{Name: "Cómputo"}).
		Return(&dto.CategoryResponse{ID: 1, Name: "Cómputo"}, nil).Once()

	resp := f.do(t, http.MethodPost, "/api/categories", `{"name": "Cómputo"}`, "")

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestNotifications_FiltroNoLeidos(t *testing.T) {
	f := newFixture(t, "")
	f.disposals.On("ListNotifications", mock.Anything, true, dto.PageRequest{Limit: 20}).
		Return([]dto.NotificationResponse{{ID: 1, Type: "Disposal", Priority: "High"}}, nil).Once()

	resp := f.do(t, http.MethodGet, "/api/notifications?unread=true", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "High", out[0].Priority)
}

func TestNotificationMarkRead_Retorna204(t *testing.T) {
	f := newFixture(t, "")
	f.disposals.On("MarkNotificationRead", mock.Anything, int64(4)).Return(nil).Once()

	resp := f.do(t, http.MethodPut, "/api/notifications/4/read", "", "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorySummary_SinVentana(t *testing.T) {
	f := newFixture(t, "")
	f.reports.On("CategorySummary", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]dto.CategorySummaryResponse{{CategoryID: 1, CategoryName: "Cómputo", AssetCount: 2, TotalValue: decimal.NewFromInt(501)}}, nil).Once()

	resp := f.do(t, http.MethodGet, "/api/reports/category-summary", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.CategorySummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.True(t, out[0].TotalValue.Equal(decimal.NewFromInt(501)))
}

func TestCategoryDetailed_ConVentana(t *testing.T) {
	f := newFixture(t, "")
	isDate := func(want string) any {
		return mock.MatchedBy(func(d *time.Time) bool { return d != nil && d.Format("2006-01-02") == want })
	}
	f.reports.On("CategoryDetailed", mock.Anything, isDate("2022-01-01"), isDate("2022-06-30")).
		Return([]dto.CategoryDetailResponse{}, nil).Once()

	resp := f.do(t, http.MethodGet, "/api/reports/category-summary/detailed?start_date=2022-01-01&end_date=2022-06-30", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCategorySummary_FechaMalFormada_Retorna400(t *testing.T) {
	f := newFixture(t, "")
	resp := f.do(t, http.MethodGet, "/api/reports/category-summary?end_date=30/06/2022", "", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación en el router
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ConSecret_RequiereToken(t *testing.T) {
	f := newFixture(t, testJWTSecret)
	resp := f.do(t, http.MethodGet, "/api/categories", "", "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_AuditorLeePeroNoEscribe(t *testing.T) {
	f := newFixture(t, testJWTSecret)
	f.categories.On("List", mock.Anything).Return([]dto.CategoryResponse{}, nil).Once()
	auditor := tokenForRole(t, pkgjwt.RoleAuditor)

	resp := f.do(t, http.MethodGet, "/api/categories", "", auditor)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/categories", `{"name": "Muebles"}`, auditor)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_UsuarioDelTokenEsElActor(t *testing.T) {
	f := newFixture(t, testJWTSecret)
	f.commands.On("UpdateStatus", mock.Anything, int64(5), "Inactive", testUserID).Return(nil).Once()

	resp := f.do(t, http.MethodPut, "/api/assets/5/status", `{"status": "Inactive"}`, tokenForRole(t, pkgjwt.RoleAdmin))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := fiber.New()
	storeUp := true
	app.Get("/health", apphttp.Health("activos-api", func(context.Context) error {
		if !storeUp {
			return domain.ErrStoreUnavailable
		}
		return nil
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	storeUp = false
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
