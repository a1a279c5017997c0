package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jonier/api-store/internal/infra/repository/db"
	"github.com/jonier/api-store/internal/model"
)

type IKindOfProductService interface {
	// CreateKind is idempotent on title.
	CreateKind(ctx context.Context, title string, active bool) (*model.CreateKindOfProductResult, error)
	GetKind(ctx context.Context, id int64) (*model.KindOfProductModel, error)
	ListKinds(ctx context.Context) ([]model.KindOfProductModel, error)
	UpdateKind(ctx context.Context, id int64, title string, active bool) (*model.KindOfProductModel, error)
	DeleteKind(ctx context.Context, id int64) error
}

type KindOfProductService struct {
	dbDao db.IStore
}

func NewKindOfProductService(dbDao db.IStore) IKindOfProductService {
	if dbDao == nil {
		panic("kind of product service initialization failed: dbDao cannot be nil")
	}
	return &KindOfProductService{dbDao: dbDao}
}

func (s *KindOfProductService) CreateKind(ctx context.Context, title string, active bool) (*model.CreateKindOfProductResult, error) {
	var result model.CreateKindOfProductResult
	err := s.dbDao.ExecTx(ctx, func(q db.Querier) error {
		existing, err := q.GetKindOfProductByTitle(ctx, title)
		if err == nil {
			result.Kind = convertRepoKindToModel(&existing)
			result.Created = false
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		created, err := q.CreateKindOfProduct(ctx, db.CreateKindOfProductParams{Title: title, Active: active})
		if err != nil {
			return err
		}
		result.Kind = convertRepoKindToModel(&created)
		result.Created = true
		return nil
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return &result, nil
}

func (s *KindOfProductService) GetKind(ctx context.Context, id int64) (*model.KindOfProductModel, error) {
	kind, err := s.dbDao.GetKindOfProductByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	m := convertRepoKindToModel(&kind)
	return &m, nil
}

func (s *KindOfProductService) ListKinds(ctx context.Context) ([]model.KindOfProductModel, error) {
	kinds, err := s.dbDao.ListKindOfProducts(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	models := make([]model.KindOfProductModel, 0, len(kinds))
	for i := range kinds {
		models = append(models, convertRepoKindToModel(&kinds[i]))
	}
	return models, nil
}

func (s *KindOfProductService) UpdateKind(ctx context.Context, id int64, title string, active bool) (*model.KindOfProductModel, error) {
	if _, err := s.dbDao.GetKindOfProductByID(ctx, id); err != nil {
		return nil, translateStoreErr(err)
	}

	updated, err := s.dbDao.UpdateKindOfProduct(ctx, db.UpdateKindOfProductParams{ID: id, Title: title, Active: active})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	m := convertRepoKindToModel(&updated)
	return &m, nil
}

func (s *KindOfProductService) DeleteKind(ctx context.Context, id int64) error {
	if _, err := s.dbDao.GetKindOfProductByID(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	if err := s.dbDao.DeleteKindOfProduct(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func convertRepoKindToModel(k *db.KindOfProduct) model.KindOfProductModel {
	return model.KindOfProductModel{
		ID:        k.ID,
		Title:     k.Title,
		Active:    k.Active,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}
