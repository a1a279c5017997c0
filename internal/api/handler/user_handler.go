package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jonier/api-store/internal/api"
	"github.com/jonier/api-store/internal/api/dto"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/model"
	"github.com/jonier/api-store/internal/service"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

// @Summary List users
// @Tags user
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.UserDTO} "success"
// @Failure 500 {object} api.ResponseError "internal server error"
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, convertUserModelToDTO(&users[i]))
	}
	api.SuccessJSON(w, http.StatusOK, dtos)
}

// @Summary Get a user by id
// @Tags user
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 404 {object} api.ResponseError "record not found"
// @Router /users/{userId} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertUserModelToDTO(user))
}

// @Summary Create a user (idempotent on email, userName, telephone)
// @Tags user
// @Accept json
// @Produce json
// @Param user body dto.CreateUserDTO true "user"
// @Success 200 {object} api.Response{data=dto.UserDTO} "the user already exists"
// @Success 201 {object} api.Response{data=dto.UserDTO} "created"
// @Failure 400 {object} api.ResponseError "validation failed"
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	result, err := h.userService.CreateUser(r.Context(), &model.CreateUserModel{
		Email:     body.Email,
		UserName:  body.UserName,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Address:   body.Address,
		Telephone: body.Telephone,
		Password:  body.Password,
		Photo:     body.Photo,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	api.SuccessJSON(w, status, convertUserModelToDTO(&result.User))
}

// @Summary Update a user (full field overwrite)
// @Tags user
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserDTO true "user with id"
// @Success 200 {object} api.Response{data=dto.UserDTO} "updated"
// @Failure 400 {object} api.ResponseError "validation failed"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /users [patch]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, apperr.ErrStrMap[apperr.BadRequestCode]))
		return
	}
	if msgs := body.Validate(); len(msgs) > 0 {
		api.ErrorJSONMessages(w, int(apperr.BadRequestCode), msgs)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), &model.UpdateUserModel{
		ID:        body.ID,
		Email:     body.Email,
		UserName:  body.UserName,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Address:   body.Address,
		Telephone: body.Telephone,
		Password:  body.Password,
		Photo:     body.Photo,
		Active:    body.Active,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, convertUserModelToDTO(user))
}

// @Summary Delete a user
// @Tags user
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} api.Response{data=string} "deleted"
// @Failure 404 {object} api.ResponseError "record not found"
// @Security ApiKeyAuth
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, "The record has been deleted")
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Newf(apperr.BadRequestCode, "The %s parameter is not a valid id", name)
	}
	return id, nil
}

func convertUserModelToDTO(m *model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:        m.ID,
		Email:     m.Email,
		UserName:  m.UserName,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Address:   m.Address,
		Telephone: m.Telephone,
		Photo:     m.Photo,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
