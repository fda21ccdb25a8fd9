package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
)

type InventoryHandler struct {
	inventoryService service.IInventoryService
	orderService     service.IOrderService
}

func NewInventoryHandler(inventoryService service.IInventoryService, orderService service.IOrderService) *InventoryHandler {
	if inventoryService == nil || orderService == nil {
		panic("inventoryService and orderService cannot be nil")
	}
	return &InventoryHandler{
		inventoryService: inventoryService,
		orderService:     orderService,
	}
}

// @Summary replace the whole catalog, empty item set is a guarded no-op
// @Tags inventory
// @Accept json
// @Produce json
// @Param items body dto.SetInventoryDTO true "replacement catalog"
// @Success 200 {object} dto.InventoryAndOrdersDTO "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /inventory [put]
func (h *InventoryHandler) SetInventory(w http.ResponseWriter, r *http.Request) {
	var setDTO dto.SetInventoryDTO
	if err := json.NewDecoder(r.Body).Decode(&setDTO); err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	items, err := h.inventoryService.ReplaceInventory(r.Context(), convertInventoryInputToModel(setDTO.Items))
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondInventoryAndOrders(w, r, items)
}

// @Summary import a tab-separated catalog file, replacing the whole catalog
// @Tags inventory
// @Accept plain
// @Produce json
// @Success 200 {object} dto.InventoryAndOrdersDTO "success"
// @Failure 400 {object} apiutil.ErrorResponse "no valid rows, catalog unchanged"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /inventory/import [post]
func (h *InventoryHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.ImportInventoryCSV(r.Context(), r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondInventoryAndOrders(w, r, items)
}

// catalog替換會讓order內的item快照過期, 直接回傳刷新後的兩份資料
func (h *InventoryHandler) respondInventoryAndOrders(w http.ResponseWriter, r *http.Request, items []model.InventoryItemModel) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	apiutil.SuccessJSON(w, dto.InventoryAndOrdersDTO{
		Inventory: convertInventoryItemsToDTO(items),
		Orders:    convertOrderModelsToDTO(orders),
	})
}
