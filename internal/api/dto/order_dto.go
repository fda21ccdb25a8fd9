package dto

import "time"

// OrderDTO 表示join過的order aggregate
type OrderDTO struct {
	ID         string         `json:"id"`
	BranchID   string         `json:"branch_id"`
	BranchName string         `json:"branch_name"`
	UserID     string         `json:"user_id"`
	UserName   string         `json:"user_name"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Items      []OrderItemDTO `json:"items"`
	Invoices   []InvoiceDTO   `json:"invoices"`
}

// Item為nil表示該code已被後續的catalog替換移除
type OrderItemDTO struct {
	ItemCode string            `json:"item_code"`
	Quantity int32             `json:"quantity"`
	Item     *InventoryItemDTO `json:"item"`
}

type InvoiceDTO struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"order_id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	DataURL    string    `json:"data_url"`
}

type CreateOrderDTO struct {
	BranchID string              `json:"branch_id"`
	UserID   string              `json:"user_id"`
	Items    []OrderItemInputDTO `json:"items"`
}

type OrderItemInputDTO struct {
	ItemCode string `json:"item_code"`
	Quantity int32  `json:"quantity"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type ReplaceOrderItemsDTO struct {
	Items []OrderItemInputDTO `json:"items"`
}

type AddInvoiceDTO struct {
	FileName string `json:"file_name"`
	DataURL  string `json:"data_url"`
}
