package model

import (
	"github.com/shopspring/decimal"
)

// InventoryItemModel 代表catalog內的一筆品項, 以Code為唯一鍵
// catalog每次上傳都是全量替換(delete-all + bulk-insert), 不做merge
type InventoryItemModel struct {
	Code        string
	Remark      *string
	Type        string
	Category    string
	Description string
	Units       string
	Packing     decimal.Decimal
}
