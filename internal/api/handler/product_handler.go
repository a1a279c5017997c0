package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jonier/api-store/internal/api"
	"github.com/jonier/api-store/internal/api/dto"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/model"
	"github.com/jonier/api-store/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

// @Summary List products
// @Tags product
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Router /product [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	dtos := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, convertProductModelToDTO(&products[i]))
	}
	api.SuccessJSON(w, http.StatusOK, dtos)
}

// @Summary Get a product by id
// @Tags product
// @Produce json
// @Param productId path int true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError "record not found"
// @Router /product/{productId} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertProductModelToDTO(product))
}

// @Summary Create a product
// @Tags product
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "product"
// @Success 201 {object} api.Response{data=dto.ProductDTO} "created"
// @Failure 400 {object} api.ResponseError "validation failed or missing reference"
// @Router /product [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), &model.CreateProductModel{
		Title:           body.Title,
		Description:     body.Description,
		Price:           body.Price,
		ImageURL:        body.ImageURL,
		UserID:          body.UserID,
		KindOfProductID: body.KindOfProductID,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, convertProductModelToDTO(product))
}

// @Summary Update a product (full field overwrite)
// @Tags product
// @Accept json
// @Produce json
// @Param product body dto.UpdateProductDTO true "product with id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "updated"
// @Failure 400 {object} api.ResponseError "validation failed or missing reference"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /product [patch]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), &model.UpdateProductModel{
		ID:              body.ID,
		Title:           body.Title,
		Description:     body.Description,
		Price:           body.Price,
		ImageURL:        body.ImageURL,
		Active:          body.Active,
		UserID:          body.UserID,
		KindOfProductID: body.KindOfProductID,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertProductModelToDTO(product))
}

// @Summary Delete a product
// @Tags product
// @Produce json
// @Param productId path int true "product id"
// @Success 200 {object} api.Response{data=string} "deleted"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /product/{productId} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, "The record has been deleted")
}

func convertProductModelToDTO(m *model.ProductModel) dto.ProductDTO {
	return dto.ProductDTO{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Price:           m.Price,
		ImageURL:        m.ImageURL,
		Active:          m.Active,
		UserID:          m.UserID,
		KindOfProductID: m.KindOfProductID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
