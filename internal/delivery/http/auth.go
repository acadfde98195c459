package http

import (
	"net/http"

	"alpharoot/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAuth(base *echo.Group) {
	v1 := base.Group("/v1/auth")
	{
		v1.POST("/login", h.Login)
		v1.POST("/register", h.Register)
		v1.POST("/logout", h.Logout)
		v1.POST("/reset-password", h.ResetPassword)
		v1.GET("/me", h.Me)
		v1.PATCH("/me", h.UpdateMe)
	}
}

func (h *HttpAPIHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	user, err := h.service.AuthService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return h.okJSON(c, "Login successful", user)
}

func (h *HttpAPIHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	user, err := h.service.AuthService.Register(c.Request().Context(), req)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Registration successful", user))
}

func (h *HttpAPIHandler) Logout(c echo.Context) error {
	h.service.AuthService.Logout()
	return h.okJSON(c, "Logged out", nil)
}

func (h *HttpAPIHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.AuthService.ResetPassword(req.Email); err != nil {
		return c.JSON(http.StatusNotImplemented, dto.NewBaseResponse(http.StatusNotImplemented, err.Error(), nil))
	}
	return h.okJSON(c, "Password reset requested", nil)
}

func (h *HttpAPIHandler) Me(c echo.Context) error {
	user := h.service.AuthService.GetCurrentUser()
	if user == nil {
		return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "login required", nil))
	}
	return h.okJSON(c, "Current user", user)
}

func (h *HttpAPIHandler) UpdateMe(c echo.Context) error {
	var req dto.UpdateUserRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	user, err := h.service.AuthService.UpdateUser(req)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return h.okJSON(c, "User updated", user)
}
