package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func newPasswordResetRouter(service *mockPasswordResetService) *gin.Engine {
	handler := NewPasswordResetHandler(service)
	router := gin.New()
	router.POST("/send-verification-code", handler.SendCode)
	router.POST("/verify-code", handler.VerifyCode)
	router.POST("/reset-password", handler.ResetPassword)
	return router
}

func TestPasswordResetHandler_SendCode_MailFailure(t *testing.T) {
	service := new(mockPasswordResetService)
	router := newPasswordResetRouter(service)
	service.On("SendCode", mock.Anything, "bob@example.com").Return(apperrors.MailError(errors.New("relay down")))

	w := doJSON(t, router, http.MethodPost, "/send-verification-code", `{"email":"bob@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgInternal, decodeStatus(t, w).Message)
}

func TestPasswordResetHandler_VerifyCode(t *testing.T) {
	service := new(mockPasswordResetService)
	router := newPasswordResetRouter(service)
	service.On("VerifyCode", mock.Anything, "bob@example.com", "123456").Return(true, nil)
	service.On("VerifyCode", mock.Anything, "bob@example.com", "000000").Return(false, nil)

	w := doJSON(t, router, http.MethodPost, "/verify-code", `{"email":"bob@example.com","code":"123456"}`)
	assert.True(t, decodeStatus(t, w).Success)

	w = doJSON(t, router, http.MethodPost, "/verify-code", `{"email":"bob@example.com","code":"000000"}`)
	resp := decodeStatus(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid or expired verification code.", resp.Message)

	w = doJSON(t, router, http.MethodPost, "/verify-code", `{"email":"bob@example.com","code":"12ab56"}`)
	assert.False(t, decodeStatus(t, w).Success)
	service.AssertNumberOfCalls(t, "VerifyCode", 2)
}
