package handler

import (
	"net/http"

	"app/internal/middleware"
	repo "app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// /authのHTTP。ログイン状態はセッションCookieで持つ。
type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUsecase
	resetUC    *auth.PasswordResetUsecase
	carts      repo.SessionCartRepository // ログアウト時に旧セッションのカートを消す
	devMode    bool
}

// DI
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	resetUC *auth.PasswordResetUsecase,
	carts repo.SessionCartRepository,
	devMode bool,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		resetUC:    resetUC,
		carts:      carts,
		devMode:    devMode,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

type SetNewPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")

	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.POST("/reset-password", h.resetPassword)
	g.POST("/set-new-password", h.setNewPassword)
}

func (h *AuthHandler) register(c echo.Context) error {
	//ログイン済みなら登録させない
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "already logged in"})
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrInvalidUsername, auth.ErrInvalidEmailFormat, auth.ErrPasswordTooShort, auth.ErrWeakPassword:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case auth.ErrUsernameAlreadyExists, auth.ErrEmailAlreadyExists:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "already logged in"})
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		case auth.ErrUserInactive:
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "user is inactive"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	if err := middleware.SetSessionUser(c, out.User.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	return c.JSON(http.StatusOK, out)
}

// ログアウト。セッションを作り直すので、カートはここで破棄される。
func (h *AuthHandler) logout(c echo.Context) error {
	oldSID, err := middleware.ResetSession(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	//旧セッションのサーバ側の行（カート）を消す。失敗しても致命的ではない
	if oldSID != "" {
		if err := h.carts.Delete(c.Request().Context(), oldSID); err != nil {
			zap.S().Warnw("failed to delete session row on logout", "err", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// リセットトークンを発行する。アドレスの在否は応答からは分からないようにする。
func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	token, err := h.resetUC.RequestReset(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	//メール配信は外部の責務。devでは手元確認のためトークンをそのまま返す
	if h.devMode && token != "" {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "token": token})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) setNewPassword(c echo.Context) error {
	var req SetNewPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.resetUC.SetNewPassword(c.Request().Context(), req.Token, req.NewPassword)
	if err != nil {
		switch err {
		case auth.ErrInvalidResetToken:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reset token"})
		case auth.ErrPasswordTooShort, auth.ErrWeakPassword:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "password updated"})
}
