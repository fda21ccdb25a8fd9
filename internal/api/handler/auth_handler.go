package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// @Summary username and password login
// @Tags auth
// @Accept json
// @Produce json
// @Param accountInfo body dto.LoginDTO true "username and password"
// @Success 200 {object} dto.LoginResponse "success"
// @Failure 401 {object} apiutil.ErrorResponse "unauthenticated"
// @Failure 500 {object} apiutil.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		apiutil.ErrorJSON(w, int(apiutil.BadRequestCode), err, apiutil.ErrStrMap[apiutil.BadRequestCode])
		return
	}

	user, err := a.authService.Login(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	apiutil.SuccessJSON(w, dto.LoginResponse{
		User: convertUserModelToDTO(*user),
	})
}
