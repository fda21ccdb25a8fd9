package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary create a new order in status Pending
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "order"
// @Success 200 {object} dto.OrderDTO "success"
// @Failure 400 {object} apiutil.ErrorResponse "bad request"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	order, err := h.orderService.Create(r.Context(), createDTO.BranchID, createDTO.UserID, convertOrderItemsInputToModel(createDTO.Items))
	if err != nil {
		writeError(w, err)
		return
	}

	apiutil.SuccessJSON(w, convertOrderModelToDTO(*order))
}

// @Summary update order status, transitions are unconstrained
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param status body dto.UpdateOrderStatusDTO true "new status"
// @Success 200 {object} dto.OrderDTO "success"
// @Failure 404 {object} apiutil.ErrorResponse "not found"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	order, err := h.orderService.SetStatus(r.Context(), orderID, model.OrderStatus(statusDTO.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	if order == nil {
		apiutil.ErrorJSON(w, int(apiutil.NotFoundCode), nil, apiutil.ErrStrMap[apiutil.NotFoundCode])
		return
	}

	apiutil.SuccessJSON(w, convertOrderModelToDTO(*order))
}

// @Summary replace all line items of an order, empty set empties the order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param items body dto.ReplaceOrderItemsDTO true "replacement items"
// @Success 200 {object} dto.OrderDTO "success"
// @Failure 404 {object} apiutil.ErrorResponse "not found"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /orders/{id}/items [put]
func (h *OrderHandler) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var itemsDTO dto.ReplaceOrderItemsDTO
	if err := json.NewDecoder(r.Body).Decode(&itemsDTO); err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	order, err := h.orderService.ReplaceItems(r.Context(), orderID, convertOrderItemsInputToModel(itemsDTO.Items))
	if err != nil {
		writeError(w, err)
		return
	}
	if order == nil {
		apiutil.ErrorJSON(w, int(apiutil.NotFoundCode), nil, apiutil.ErrStrMap[apiutil.NotFoundCode])
		return
	}

	apiutil.SuccessJSON(w, convertOrderModelToDTO(*order))
}

// @Summary attach an invoice document to an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param invoice body dto.AddInvoiceDTO true "invoice"
// @Success 200 {object} dto.OrderDTO "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /orders/{id}/invoices [post]
func (h *OrderHandler) AddInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var invoiceDTO dto.AddInvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&invoiceDTO); err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	order, err := h.orderService.AddInvoice(r.Context(), orderID, invoiceDTO.FileName, invoiceDTO.DataURL)
	if err != nil {
		writeError(w, err)
		return
	}

	apiutil.SuccessJSON(w, convertOrderModelToDTO(*order))
}

// @Summary detach an invoice, removing a non-existent invoice is a no-op
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Param invoiceID path int true "invoice id"
// @Success 200 {object} dto.OrderDTO "success"
// @Failure 404 {object} apiutil.ErrorResponse "not found"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /orders/{id}/invoices/{invoiceID} [delete]
func (h *OrderHandler) RemoveInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	invoiceID, err := strconv.ParseInt(chi.URLParam(r, "invoiceID"), 10, 64)
	if err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	order, err := h.orderService.RemoveInvoice(r.Context(), orderID, invoiceID)
	if err != nil {
		writeError(w, err)
		return
	}
	if order == nil {
		apiutil.ErrorJSON(w, int(apiutil.NotFoundCode), nil, apiutil.ErrStrMap[apiutil.NotFoundCode])
		return
	}

	apiutil.SuccessJSON(w, convertOrderModelToDTO(*order))
}
