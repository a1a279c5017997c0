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

type KindOfProductHandler struct {
	kindService service.IKindOfProductService
}

func NewKindOfProductHandler(kindService service.IKindOfProductService) *KindOfProductHandler {
	if kindService == nil {
		panic("kindService cannot be nil")
	}
	return &KindOfProductHandler{kindService: kindService}
}

// @Summary List kinds of product
// @Tags kindofproduct
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.KindOfProductDTO} "success"
// @Router /kindofproduct [get]
func (h *KindOfProductHandler) List(w http.ResponseWriter, r *http.Request) {
	kinds, err := h.kindService.ListKinds(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	dtos := make([]dto.KindOfProductDTO, 0, len(kinds))
	for i := range kinds {
		dtos = append(dtos, convertKindModelToDTO(&kinds[i]))
	}
	api.SuccessJSON(w, http.StatusOK, dtos)
}

// @Summary Get a kind of product by id
// @Tags kindofproduct
// @Produce json
// @Param kindOfProductId path int true "kind of product id"
// @Success 200 {object} api.Response{data=dto.KindOfProductDTO} "success"
// @Failure 404 {object} api.ResponseError "record not found"
// @Router /kindofproduct/{kindOfProductId} [get]
func (h *KindOfProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "kindOfProductId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	kind, err := h.kindService.GetKind(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertKindModelToDTO(kind))
}

// @Summary Create a kind of product (idempotent on title)
// @Tags kindofproduct
// @Accept json
// @Produce json
// @Param kind body dto.CreateKindOfProductDTO true "kind of product"
// @Success 200 {object} api.Response{data=dto.KindOfProductDTO} "already exists"
// @Success 201 {object} api.Response{data=dto.KindOfProductDTO} "created"
// @Failure 400 {object} api.ResponseError "validation failed"
// @Router /kindofproduct [post]
func (h *KindOfProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateKindOfProductDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	result, err := h.kindService.CreateKind(r.Context(), body.Title, active)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	api.SuccessJSON(w, status, convertKindModelToDTO(&result.Kind))
}

// @Summary Update a kind of product
// @Tags kindofproduct
// @Accept json
// @Produce json
// @Param kind body dto.UpdateKindOfProductDTO true "kind of product with id"
// @Success 200 {object} api.Response{data=dto.KindOfProductDTO} "updated"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /kindofproduct [patch]
func (h *KindOfProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateKindOfProductDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	kind, err := h.kindService.UpdateKind(r.Context(), body.ID, body.Title, body.Active)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertKindModelToDTO(kind))
}

// @Summary Delete a kind of product
// @Tags kindofproduct
// @Produce json
// @Param kindOfProductId path int true "kind of product id"
// @Success 200 {object} api.Response{data=string} "deleted"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /kindofproduct/{kindOfProductId} [delete]
func (h *KindOfProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "kindOfProductId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.kindService.DeleteKind(r.Context(), id); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, "The record has been deleted")
}

func convertKindModelToDTO(m *model.KindOfProductModel) dto.KindOfProductDTO {
	return dto.KindOfProductDTO{
		ID:        m.ID,
		Title:     m.Title,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
