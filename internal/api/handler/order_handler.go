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

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

// @Summary List orders
// @Tags order
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.OrderDTO} "success"
// @Router /order [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	dtos := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, convertOrderModelToDTO(&orders[i]))
	}
	api.SuccessJSON(w, http.StatusOK, dtos)
}

// @Summary Get an order by id, including its details
// @Tags order
// @Produce json
// @Param orderId path int true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 404 {object} api.ResponseError "record not found"
// @Router /order/{orderId} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "orderId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertOrderModelToDTO(order))
}

// @Summary Create an order with a single line item
// @Tags order
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "order"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "created"
// @Failure 400 {object} api.ResponseError "validation failed or missing reference"
// @Failure 501 {object} api.ResponseError "an open order already exists"
// @Router /order [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), &model.CreateOrderModel{
		UserID:        body.UserID,
		ProductID:     body.ProductID,
		NumberOfItems: body.NumberOfItems,
		Price:         body.Price,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertOrderModelToDTO(order))
}

func convertOrderModelToDTO(m *model.OrderModel) dto.OrderDTO {
	d := dto.OrderDTO{
		ID:            m.ID,
		UserID:        m.UserID,
		OrderStatusID: m.OrderStatusID,
		SubTotal:      m.SubTotal,
		Total:         m.Total,
		Tps:           m.Tps,
		Tvq:           m.Tvq,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for i := range m.Details {
		detail := &m.Details[i]
		d.Details = append(d.Details, dto.OrderDetailDTO{
			ID:            detail.ID,
			OrderID:       detail.OrderID,
			ProductID:     detail.ProductID,
			NumberOfItems: detail.NumberOfItems,
			UnitPrice:     detail.UnitPrice,
			CreatedAt:     detail.CreatedAt,
			UpdatedAt:     detail.UpdatedAt,
		})
	}
	return d
}
