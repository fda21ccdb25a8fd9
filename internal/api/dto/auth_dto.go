package dto

type LoginDTO struct {
	Username string `json:"username"` //帳號
	Password string `json:"password"` //密碼明文
}

// LoginResponse 登入成功回傳用戶資訊
type LoginResponse struct {
	User UserDTO `json:"user"`
}
