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

type OrderStatusHandler struct {
	statusService service.IOrderStatusService
}

func NewOrderStatusHandler(statusService service.IOrderStatusService) *OrderStatusHandler {
	if statusService == nil {
		panic("statusService cannot be nil")
	}
	return &OrderStatusHandler{statusService: statusService}
}

// @Summary List order statuses
// @Tags orderstatus
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.OrderStatusDTO} "success"
// @Router /orderstatus [get]
func (h *OrderStatusHandler) List(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.statusService.ListStatuses(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	dtos := make([]dto.OrderStatusDTO, 0, len(statuses))
	for i := range statuses {
		dtos = append(dtos, convertStatusModelToDTO(&statuses[i]))
	}
	api.SuccessJSON(w, http.StatusOK, dtos)
}

// @Summary Get an order status by id
// @Tags orderstatus
// @Produce json
// @Param orderStatusId path int true "order status id"
// @Success 200 {object} api.Response{data=dto.OrderStatusDTO} "success"
// @Failure 404 {object} api.ResponseError "record not found"
// @Router /orderstatus/{orderStatusId} [get]
func (h *OrderStatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "orderStatusId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	status, err := h.statusService.GetStatus(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertStatusModelToDTO(status))
}

// @Summary Create an order status (idempotent on title)
// @Tags orderstatus
// @Accept json
// @Produce json
// @Param status body dto.CreateOrderStatusDTO true "order status"
// @Success 200 {object} api.Response{data=dto.OrderStatusDTO} "already exists"
// @Success 201 {object} api.Response{data=dto.OrderStatusDTO} "created"
// @Failure 400 {object} api.ResponseError "validation failed"
// @Router /orderstatus [post]
func (h *OrderStatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateOrderStatusDTO
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

	result, err := h.statusService.CreateStatus(r.Context(), body.Title, active)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	api.SuccessJSON(w, status, convertStatusModelToDTO(&result.Status))
}

// @Summary Update an order status
// @Tags orderstatus
// @Accept json
// @Produce json
// @Param status body dto.UpdateOrderStatusDTO true "order status with id"
// @Success 200 {object} api.Response{data=dto.OrderStatusDTO} "updated"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /orderstatus [patch]
func (h *OrderStatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	status, err := h.statusService.UpdateStatus(r.Context(), body.ID, body.Title, body.Active)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertStatusModelToDTO(status))
}

// @Summary Delete an order status
// @Tags orderstatus
// @Produce json
// @Param orderStatusId path int true "order status id"
// @Success 200 {object} api.Response{data=string} "deleted"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /orderstatus/{orderStatusId} [delete]
func (h *OrderStatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "orderStatusId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.statusService.DeleteStatus(r.Context(), id); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, "The record has been deleted")
}

func convertStatusModelToDTO(m *model.OrderStatusModel) dto.OrderStatusDTO {
	return dto.OrderStatusDTO{
		ID:        m.ID,
		Title:     m.Title,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
