package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jonier/api-store/internal/infra/repository/db"
	"github.com/jonier/api-store/internal/model"
)

type IOrderStatusService interface {
	// CreateStatus is idempotent on title.
	CreateStatus(ctx context.Context, title string, active bool) (*model.CreateOrderStatusResult, error)
	// SeedStatuses writes the well-known statuses under their fixed ids.
	// Re-running it restores any deleted seed row at the same id, so the
	// workflow's IN PROGRESS id stays valid after a delete-and-reboot.
	SeedStatuses(ctx context.Context, seeds []model.OrderStatusSeedModel) error
	GetStatus(ctx context.Context, id int64) (*model.OrderStatusModel, error)
	ListStatuses(ctx context.Context) ([]model.OrderStatusModel, error)
	UpdateStatus(ctx context.Context, id int64, title string, active bool) (*model.OrderStatusModel, error)
	DeleteStatus(ctx context.Context, id int64) error
}

type OrderStatusService struct {
	dbDao db.IStore
}

func NewOrderStatusService(dbDao db.IStore) IOrderStatusService {
	if dbDao == nil {
		panic("order status service initialization failed: dbDao cannot be nil")
	}
	return &OrderStatusService{dbDao: dbDao}
}

func (s *OrderStatusService) CreateStatus(ctx context.Context, title string, active bool) (*model.CreateOrderStatusResult, error) {
	var result model.CreateOrderStatusResult
	err := s.dbDao.ExecTx(ctx, func(q db.Querier) error {
		existing, err := q.GetOrderStatusByTitle(ctx, title)
		if err == nil {
			result.Status = convertRepoStatusToModel(&existing)
			result.Created = false
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		created, err := q.CreateOrderStatus(ctx, db.CreateOrderStatusParams{Title: title, Active: active})
		if err != nil {
			return err
		}
		result.Status = convertRepoStatusToModel(&created)
		result.Created = true
		return nil
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return &result, nil
}

func (s *OrderStatusService) SeedStatuses(ctx context.Context, seeds []model.OrderStatusSeedModel) error {
	err := s.dbDao.ExecTx(ctx, func(q db.Querier) error {
		for _, seed := range seeds {
			_, err := q.GetOrderStatusByID(ctx, seed.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}

			if _, err := q.CreateOrderStatusWithID(ctx, db.CreateOrderStatusWithIDParams{
				ID:     seed.ID,
				Title:  seed.Title,
				Active: true,
			}); err != nil {
				return err
			}
		}
		return q.SyncOrderStatusIDSeq(ctx)
	})
	if err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func (s *OrderStatusService) GetStatus(ctx context.Context, id int64) (*model.OrderStatusModel, error) {
	status, err := s.dbDao.GetOrderStatusByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	m := convertRepoStatusToModel(&status)
	return &m, nil
}

func (s *OrderStatusService) ListStatuses(ctx context.Context) ([]model.OrderStatusModel, error) {
	statuses, err := s.dbDao.ListOrderStatuses(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	models := make([]model.OrderStatusModel, 0, len(statuses))
	for i := range statuses {
		models = append(models, convertRepoStatusToModel(&statuses[i]))
	}
	return models, nil
}

func (s *OrderStatusService) UpdateStatus(ctx context.Context, id int64, title string, active bool) (*model.OrderStatusModel, error) {
	if _, err := s.dbDao.GetOrderStatusByID(ctx, id); err != nil {
		return nil, translateStoreErr(err)
	}

	updated, err := s.dbDao.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: id, Title: title, Active: active})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	m := convertRepoStatusToModel(&updated)
	return &m, nil
}

func (s *OrderStatusService) DeleteStatus(ctx context.Context, id int64) error {
	if _, err := s.dbDao.GetOrderStatusByID(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	if err := s.dbDao.DeleteOrderStatus(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func convertRepoStatusToModel(s *db.OrderStatus) model.OrderStatusModel {
	return model.OrderStatusModel{
		ID:        s.ID,
		Title:     s.Title,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
