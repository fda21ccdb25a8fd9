package dto

// BranchDTO 表示分店資訊
type BranchDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InventoryItemDTO 表示catalog品項
type InventoryItemDTO struct {
	Code        string  `json:"code"`
	Remark      *string `json:"remark"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Units       string  `json:"units"`
	Packing     string  `json:"packing"`
}

// UserDTO 表示用戶資訊, 不包含任何憑證欄位
type UserDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	BranchID *string `json:"branch_id"`
	Role     string  `json:"role"`
}

// SetInventoryDTO 全量替換catalog的輸入
type SetInventoryDTO struct {
	Items []InventoryItemInputDTO `json:"items"`
}

type InventoryItemInputDTO struct {
	Code        string  `json:"code"`
	Remark      *string `json:"remark"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Units       string  `json:"units"`
	Packing     string  `json:"packing"`
}

// InventoryAndOrdersDTO catalog替換後回傳刷新的inventory與orders,
// caller不用再打兩支read endpoint
type InventoryAndOrdersDTO struct {
	Inventory []InventoryItemDTO `json:"inventory"`
	Orders    []OrderDTO         `json:"orders"`
}
