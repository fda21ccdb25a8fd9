package model

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusApproved   OrderStatus = "Approved"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// 狀態之間沒有轉換限制, 任何狀態都可以接在任何狀態之後
// UI層自行決定Delivered/Cancelled之後要不要鎖編輯
func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusApproved, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

type OrderModel struct {
	ID         string
	BranchID   string
	BranchName string
	UserID     string
	UserName   string
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []OrderItemModel
	Invoices   []InvoiceModel
}

// Item 為下單當下catalog的快照, 全量替換inventory後可能為nil (orphaned code)
type OrderItemModel struct {
	ItemCode string
	Quantity int32
	Item     *InventoryItemModel
}

type CreateOrderItemModel struct {
	ItemCode string
	Quantity int32
}

type InvoiceModel struct {
	ID         int64
	OrderID    string
	FileName   string
	DataURL    string
	UploadedAt time.Time
}
