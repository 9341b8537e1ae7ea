package handler

import (
	"errors"
	"net/http"

	auth "luxestore/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	signupUC *auth.SignupUsecase // 会員登録usecase
	loginUC  *auth.LoginUsecase  // ログインusecase
}

// DIコンストラクタ
func NewAuthHandler(signupUC *auth.SignupUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{
		signupUC: signupUC,
		loginUC:  loginUC,
	}
}

// /api/auth/signup のリクエストボディ。
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// /api/auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ログイン成功時のuser部分（passwordは載せない）
type LoginUserDTO struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  LoginUserDTO `json:"user"`
}

// /api/auth を登録
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	a := g.Group("/auth")
	a.POST("/signup", h.signup)
	a.POST("/login", h.login)
}

// POST /api/auth/signup
func (h *AuthHandler) signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.signupUC.Execute(c.Request().Context(), auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, out.User)
}

// POST /api/auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			// どちらの検証で落ちたかは返さない
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: out.Token,
		User: LoginUserDTO{
			ID:    out.User.ID,
			Name:  out.User.Name,
			Email: out.User.Email,
			Roles: out.User.Roles,
		},
	})
}
