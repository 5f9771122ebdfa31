package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/asistpro/asistencia-backend-go/internal/domain/auth"
	"github.com/asistpro/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "login", loginReq.Login, "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt))

	slog.Info("Login succeeded", "user_id", tokenResponse.User.ID)
	response.Success(w, tokenResponse)
}

// Refresh implements AuthHandler. The refresh token comes from the request
// body, falling back to the auth cookie for browser clients.
func (a *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil || refreshReq.RefreshToken == "" {
		if cookie, cookieErr := r.Cookie("refresh_token"); cookieErr == nil {
			refreshReq.RefreshToken = cookie.Value
		}
	}

	if err := refreshReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), refreshReq)
	if err != nil {
		slog.Warn("Refresh failed", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt))

	response.Success(w, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil || refreshReq.RefreshToken == "" {
		if cookie, cookieErr := r.Cookie("refresh_token"); cookieErr == nil {
			refreshReq.RefreshToken = cookie.Value
		}
	}

	if refreshReq.RefreshToken != "" {
		if err := a.authService.Logout(r.Context(), refreshReq.RefreshToken); err != nil {
			slog.Error("Logout error", "error", err)
			response.HandleError(w, err)
			return
		}
	}

	expired := a.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out", nil)
}
