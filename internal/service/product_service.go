package service

import (
	"context"

	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/infra/repository/db"
	"github.com/jonier/api-store/internal/model"
)

type IProductService interface {
	// CreateProduct validates the user and kind-of-product references first
	// and rejects with every missing reference, not just the first.
	CreateProduct(ctx context.Context, arg *model.CreateProductModel) (*model.ProductModel, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductModel, error)
	ListProducts(ctx context.Context) ([]model.ProductModel, error)
	UpdateProduct(ctx context.Context, arg *model.UpdateProductModel) (*model.ProductModel, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductService struct {
	dbDao       db.IStore
	fkValidator IFKValidator
}

func NewProductService(dbDao db.IStore, fkValidator IFKValidator) IProductService {
	if dbDao == nil {
		panic("product service initialization failed: dbDao cannot be nil")
	}
	if fkValidator == nil {
		panic("product service initialization failed: fkValidator cannot be nil")
	}
	return &ProductService{dbDao: dbDao, fkValidator: fkValidator}
}

func (s *ProductService) CreateProduct(ctx context.Context, arg *model.CreateProductModel) (*model.ProductModel, error) {
	if err := s.checkRefs(ctx, arg.UserID, arg.KindOfProductID); err != nil {
		return nil, err
	}

	product, err := s.dbDao.CreateProduct(ctx, db.CreateProductParams{
		Title:           arg.Title,
		Description:     arg.Description,
		Price:           arg.Price,
		ImageURL:        arg.ImageURL,
		UserID:          arg.UserID,
		KindOfProductID: arg.KindOfProductID,
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return convertRepoProductToModel(&product), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.ProductModel, error) {
	product, err := s.dbDao.GetProductByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return convertRepoProductToModel(&product), nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.ProductModel, error) {
	products, err := s.dbDao.ListProducts(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	models := make([]model.ProductModel, 0, len(products))
	for i := range products {
		models = append(models, *convertRepoProductToModel(&products[i]))
	}
	return models, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, arg *model.UpdateProductModel) (*model.ProductModel, error) {
	if err := s.checkRefs(ctx, arg.UserID, arg.KindOfProductID); err != nil {
		return nil, err
	}

	if _, err := s.dbDao.GetProductByID(ctx, arg.ID); err != nil {
		return nil, translateStoreErr(err)
	}

	updated, err := s.dbDao.UpdateProduct(ctx, db.UpdateProductParams{
		ID:              arg.ID,
		Title:           arg.Title,
		Description:     arg.Description,
		Price:           arg.Price,
		ImageURL:        arg.ImageURL,
		Active:          arg.Active,
		UserID:          arg.UserID,
		KindOfProductID: arg.KindOfProductID,
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return convertRepoProductToModel(&updated), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.dbDao.GetProductByID(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	if err := s.dbDao.DeleteProduct(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func (s *ProductService) checkRefs(ctx context.Context, userID, kindID int64) error {
	missing, err := s.fkValidator.Validate(ctx, []FKRef{
		{Kind: FKUser, ID: userID},
		{Kind: FKKindOfProduct, ID: kindID},
	})
	if err != nil {
		return translateStoreErr(err)
	}
	if len(missing) > 0 {
		return apperr.NewList(apperr.BadRequestCode, missing)
	}
	return nil
}

func convertRepoProductToModel(p *db.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		ImageURL:        p.ImageURL,
		Active:          p.Active,
		UserID:          p.UserID,
		KindOfProductID: p.KindOfProductID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
