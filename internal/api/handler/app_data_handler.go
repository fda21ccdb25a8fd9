package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
)

type AppDataHandler struct {
	branchService    service.IBranchService
	inventoryService service.IInventoryService
	orderService     service.IOrderService
	userService      service.IUserService
}

func NewAppDataHandler(
	branchService service.IBranchService,
	inventoryService service.IInventoryService,
	orderService service.IOrderService,
	userService service.IUserService,
) *AppDataHandler {
	if branchService == nil || inventoryService == nil || orderService == nil || userService == nil {
		panic("app data services cannot be nil")
	}
	return &AppDataHandler{
		branchService:    branchService,
		inventoryService: inventoryService,
		orderService:     orderService,
		userService:      userService,
	}
}

// @Summary list branches
// @Tags app-data
// @Produce json
// @Success 200 {array} dto.BranchDTO "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /app-data/branches [get]
func (h *AppDataHandler) Branches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchService.ListBranches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dto.BranchDTO, 0, len(branches))
	for _, b := range branches {
		out = append(out, convertBranchModelToDTO(b))
	}
	apiutil.SuccessJSON(w, out)
}

// @Summary list full inventory catalog
// @Tags app-data
// @Produce json
// @Success 200 {array} dto.InventoryItemDTO "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /app-data/inventory [get]
func (h *AppDataHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.ListInventory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	apiutil.SuccessJSON(w, convertInventoryItemsToDTO(items))
}

// @Summary list distinct item types, sorted ascending
// @Tags app-data
// @Produce json
// @Success 200 {array} string "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /app-data/item-types [get]
func (h *AppDataHandler) ItemTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.inventoryService.ListItemTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if types == nil {
		types = []string{}
	}
	apiutil.SuccessJSON(w, types)
}

// @Summary list distinct item categories, optionally scoped to a type
// @Tags app-data
// @Produce json
// @Param type query string false "item type"
// @Success 200 {array} string "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /app-data/item-categories [get]
func (h *AppDataHandler) ItemCategories(w http.ResponseWriter, r *http.Request) {
	itemType := r.URL.Query().Get("type")

	categories, err := h.inventoryService.ListItemCategories(r.Context(), itemType)
	if err != nil {
		writeError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	apiutil.SuccessJSON(w, categories)
}

// @Summary list all orders with items, invoices and joined names
// @Tags app-data
// @Produce json
// @Success 200 {array} dto.OrderDTO "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /app-data/orders [get]
func (h *AppDataHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	apiutil.SuccessJSON(w, convertOrderModelsToDTO(orders))
}

// @Summary list users with credential fields stripped
// @Tags app-data
// @Produce json
// @Success 200 {array} dto.UserDTO "success"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /app-data/users [get]
func (h *AppDataHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, convertUserModelToDTO(u))
	}
	apiutil.SuccessJSON(w, out)
}
