package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Activos-api/internal/application/dto"
)

// ── Dobles de los puertos de casos de uso ────────────────────────────────────

type commandsMock struct{ mock.Mock }

func (m *commandsMock) CreateFromRequest(ctx context.Context, actor string, in dto.CreateAssetRequest) (*dto.CreateAssetResponse, error) {
	args := m.Called(ctx, actor, in)
	out, _ := args.Get(0).(*dto.CreateAssetResponse)
	return out, args.Error(1)
}

func (m *commandsMock) TransferFromRequest(ctx context.Context, actor string, assetID int64, in dto.TransferAssetRequest) (*dto.TransferResponse, error) {
	args := m.Called(ctx, actor, assetID, in)
	out, _ := args.Get(0).(*dto.TransferResponse)
	return out, args.Error(1)
}

func (m *commandsMock) DisposeFromRequest(ctx context.Context, actor string, assetID int64, in dto.DisposeAssetRequest) (*dto.DisposalResponse, error) {
	args := m.Called(ctx, actor, assetID, in)
	out, _ := args.Get(0).(*dto.DisposalResponse)
	return out, args.Error(1)
}

func (m *commandsMock) UpdateStatus(ctx context.Context, assetID int64, status, performedBy string) error {
	return m.Called(ctx, assetID, status, performedBy).Error(0)
}

func (m *commandsMock) Preview(in dto.SchedulePreviewRequest) (*dto.ScheduleResponse, error) {
	args := m.Called(in)
	out, _ := args.Get(0).(*dto.ScheduleResponse)
	return out, args.Error(1)
}

type queriesMock struct{ mock.Mock }

func (m *queriesMock) GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.AssetResponse)
	return out, args.Error(1)
}

func (m *queriesMock) ListByCategory(ctx context.Context, categoryID int64, page dto.PageRequest) (*dto.AssetListResponse, error) {
	args := m.Called(ctx, categoryID, page)
	out, _ := args.Get(0).(*dto.AssetListResponse)
	return out, args.Error(1)
}

func (m *queriesMock) Schedule(ctx context.Context, assetID int64) (*dto.ScheduleResponse, error) {
	args := m.Called(ctx, assetID)
	out, _ := args.Get(0).(*dto.ScheduleResponse)
	return out, args.Error(1)
}

func (m *queriesMock) Transfers(ctx context.Context, assetID int64) ([]dto.TransferResponse, error) {
	args := m.Called(ctx, assetID)
	out, _ := args.Get(0).([]dto.TransferResponse)
	return out, args.Error(1)
}

func (m *queriesMock) History(ctx context.Context, assetID int64) ([]dto.AssetHistoryResponse, error) {
	args := m.Called(ctx, assetID)
	out, _ := args.Get(0).([]dto.AssetHistoryResponse)
	return out, args.Error(1)
}

type pdfMock struct{ mock.Mock }

func (m *pdfMock) Download(ctx context.Context, assetID int64) ([]byte, string, error) {
	args := m.Called(ctx, assetID)
	out, _ := args.Get(0).([]byte)
	return out, args.String(1), args.Error(2)
}

type categoriesMock struct{ mock.Mock }

func (m *categoriesMock) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.CategoryResponse)
	return out, args.Error(1)
}

func (m *categoriesMock) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.CategoryResponse)
	return out, args.Error(1)
}

func (m *categoriesMock) Rename(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(*dto.CategoryResponse)
	return out, args.Error(1)
}

func (m *categoriesMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type disposalsMock struct{ mock.Mock }

func (m *disposalsMock) ListDisposals(ctx context.Context, page dto.PageRequest) ([]dto.DisposalResponse, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).([]dto.DisposalResponse)
	return out, args.Error(1)
}

func (m *disposalsMock) ListNotifications(ctx context.Context, onlyUnread bool, page dto.PageRequest) ([]dto.NotificationResponse, error) {
	args := m.Called(ctx, onlyUnread, page)
	out, _ := args.Get(0).([]dto.NotificationResponse)
	return out, args.Error(1)
}

func (m *disposalsMock) MarkNotificationRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type reportsMock struct{ mock.Mock }

func (m *reportsMock) CategorySummary(ctx context.Context, start, end *time.Time) ([]dto.CategorySummaryResponse, error) {
	args := m.Called(ctx, start, end)
	out, _ := args.Get(0).([]dto.CategorySummaryResponse)
	return out, args.Error(1)
}

func (m *reportsMock) CategoryDetailed(ctx context.Context, start, end *time.Time) ([]dto.CategoryDetailResponse, error) {
	args := m.Called(ctx, start, end)
	out, _ := args.Get(0).([]dto.CategoryDetailResponse)
	return out, args.Error(1)
}
