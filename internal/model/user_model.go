package model

type UserRole string

const (
	RoleEmployee        UserRole = "employee"
	RolePurchaseManager UserRole = "purchase_manager"
)

func IsValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleEmployee, RolePurchaseManager:
		return true
	default:
		return false
	}
}

type UserModel struct {
	ID           string
	Name         string
	Username     string
	HashPassword string
	BranchID     *string //manager沒有所屬branch, 為nil
	Role         UserRole
}

type CreateUserModel struct {
	Name     string
	Username string
	Password string //明文, 只在建立當下存在, 入庫前bcrypt
	BranchID *string
	Role     UserRole
}

type BranchModel struct {
	ID   string
	Name string
}
