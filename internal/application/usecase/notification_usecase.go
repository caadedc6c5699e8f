package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// DisposalQueryUseCase consulta de bajas y de los avisos que generan.
type DisposalQueryUseCase struct {
	disposals     repository.DisposalRepository
	notifications repository.NotificationRepository
}

// NewDisposalQueryUseCase construye el caso de uso.
func NewDisposalQueryUseCase(disposals repository.DisposalRepository, notifications repository.NotificationRepository) *DisposalQueryUseCase {
	return &DisposalQueryUseCase{disposals: disposals, notifications: notifications}
}

// ListDisposals bajas de la más reciente a la más antigua.
func (uc *DisposalQueryUseCase) ListDisposals(ctx context.Context, page dto.PageRequest) ([]dto.DisposalResponse, error) {
	page.DefaultPage()
	list, err := uc.disposals.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DisposalResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.NewDisposalResponse(d))
	}
	return out, nil
}

// ListNotifications avisos, opcionalmente solo los no leídos.
func (uc *DisposalQueryUseCase) ListNotifications(ctx context.Context, onlyUnread bool, page dto.PageRequest) ([]dto.NotificationResponse, error) {
	page.DefaultPage()
	list, err := uc.notifications.List(ctx, onlyUnread, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NewNotificationResponse(n))
	}
	return out, nil
}

// MarkNotificationRead marca un aviso como leído.
func (uc *DisposalQueryUseCase) MarkNotificationRead(ctx context.Context, id int64) error {
	n, err := uc.notifications.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound("notificación", id)
	}
	return nil
}
