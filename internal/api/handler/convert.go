package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/shopspring/decimal"
)

// writeError 將service層錯誤轉成統一的{message, error} body
// AppError帶狀態碼, 其餘一律500
func writeError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apiutil.AppError); ok {
		apiutil.ErrorJSON(w, int(appErr.Code), appErr, apiutil.ErrStrMap[appErr.Code])
		return
	}
	apiutil.ErrorJSON(w, int(apiutil.InternalErrorCode), err, apiutil.ErrStrMap[apiutil.InternalErrorCode])
}

// convertUserModelToDTO 將 UserModel 轉換為 UserDTO, 憑證欄位不輸出
func convertUserModelToDTO(m model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:       m.ID,
		Name:     m.Name,
		Username: m.Username,
		BranchID: m.BranchID,
		Role:     string(m.Role),
	}
}

func convertBranchModelToDTO(m model.BranchModel) dto.BranchDTO {
	return dto.BranchDTO{
		ID:   m.ID,
		Name: m.Name,
	}
}

func convertInventoryItemModelToDTO(m model.InventoryItemModel) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		Code:        m.Code,
		Remark:      m.Remark,
		Type:        m.Type,
		Category:    m.Category,
		Description: m.Description,
		Units:       m.Units,
		Packing:     m.Packing.String(),
	}
}

func convertInventoryItemsToDTO(items []model.InventoryItemModel) []dto.InventoryItemDTO {
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, convertInventoryItemModelToDTO(item))
	}
	return out
}

func convertInventoryInputToModel(in []dto.InventoryItemInputDTO) []model.InventoryItemModel {
	items := make([]model.InventoryItemModel, 0, len(in))
	for _, d := range in {
		item := model.InventoryItemModel{
			Code:        d.Code,
			Remark:      d.Remark,
			Type:        d.Type,
			Category:    d.Category,
			Description: d.Description,
			Units:       d.Units,
		}
		//與CSV匯入同一條規則: 解析不了的packing補0
		if packing, err := decimal.NewFromString(d.Packing); err == nil {
			item.Packing = packing
		} else {
			item.Packing = decimal.Zero
		}
		items = append(items, item)
	}
	return items
}

func convertOrderModelToDTO(m model.OrderModel) dto.OrderDTO {
	out := dto.OrderDTO{
		ID:         m.ID,
		BranchID:   m.BranchID,
		BranchName: m.BranchName,
		UserID:     m.UserID,
		UserName:   m.UserName,
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Items:      []dto.OrderItemDTO{},
		Invoices:   []dto.InvoiceDTO{},
	}
	for _, item := range m.Items {
		itemDTO := dto.OrderItemDTO{
			ItemCode: item.ItemCode,
			Quantity: item.Quantity,
		}
		if item.Item != nil {
			snapshot := convertInventoryItemModelToDTO(*item.Item)
			itemDTO.Item = &snapshot
		}
		out.Items = append(out.Items, itemDTO)
	}
	for _, inv := range m.Invoices {
		out.Invoices = append(out.Invoices, dto.InvoiceDTO{
			ID:         inv.ID,
			OrderID:    inv.OrderID,
			FileName:   inv.FileName,
			UploadedAt: inv.UploadedAt,
			DataURL:    inv.DataURL,
		})
	}
	return out
}

func convertOrderModelsToDTO(orders []model.OrderModel) []dto.OrderDTO {
	out := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, convertOrderModelToDTO(order))
	}
	return out
}

func convertOrderItemsInputToModel(in []dto.OrderItemInputDTO) []model.CreateOrderItemModel {
	items := make([]model.CreateOrderItemModel, 0, len(in))
	for _, d := range in {
		items = append(items, model.CreateOrderItemModel{
			ItemCode: d.ItemCode,
			Quantity: d.Quantity,
		})
	}
	return items
}
