package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jonier/api-store/internal/api"
	"github.com/jonier/api-store/internal/api/dto"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{authService: authService}
}

// @Summary Log in with email or user name plus password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "identity and password"
// @Success 200 {object} api.Response{data=dto.LoginResponseDTO} "success"
// @Failure 401 {object} api.ResponseError "bad credentials"
// @Router /users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	result, err := h.authService.Login(r.Context(), body.Identity, body.Password)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, dto.LoginResponseDTO{
		ID:       result.User.ID,
		UserName: result.User.UserName,
		Address:  result.User.Address,
		Email:    result.User.Email,
		Token:    result.AccessToken,
	})
}
