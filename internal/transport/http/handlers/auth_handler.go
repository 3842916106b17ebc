package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vedran77/miniwall/internal/logger"
	"github.com/vedran77/miniwall/internal/service"
	"github.com/vedran77/miniwall/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateRegister(input.ScreenName, input.Email, input.Password); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", errs.First())
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "USER_EXISTS", "User already exists")
		} else {
			logger.Log.Errorw("register", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input service.SignInInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateSignIn(input.Email, input.Password); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", errs.First())
		return
	}

	accessToken, err := h.authService.SignIn(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "UNKNOWN_USER", "User does not exist")
		case errors.Is(err, service.ErrWrongPassword):
			writeError(w, http.StatusUnauthorized, "WRONG_PASSWORD", "Password is not correct")
		default:
			logger.Log.Errorw("sign-in", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"auth-token": accessToken})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
