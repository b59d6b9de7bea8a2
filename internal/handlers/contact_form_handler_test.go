package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func newContactFormRouter(service *mockContactFormService) *gin.Engine {
	handler := NewContactFormHandler(service)
	router := gin.New()
	router.POST("/contact-form", handler.Submit)
	return router
}

const contactFormBody = `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","details":"Hello"}`

func TestContactFormHandler_Submit(t *testing.T) {
	service := new(mockContactFormService)
	router := newContactFormRouter(service)
	service.On("Submit", mock.Anything, mock.MatchedBy(func(req *models.ContactFormRequest) bool {
		return req.FirstName == "Jane" && req.Email == "jane@example.com" && req.Details == "Hello"
	})).Return(nil)

	w := doJSON(t, router, http.MethodPost, "/contact-form", contactFormBody)

	resp := decodeStatus(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you! We will get back to you soon.", resp.Message)
	service.AssertExpectations(t)
}

func TestContactFormHandler_Submit_MissingDetails(t *testing.T) {
	service := new(mockContactFormService)
	router := newContactFormRouter(service)

	w := doJSON(t, router, http.MethodPost, "/contact-form", `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "details is required.", decodeStatus(t, w).Message)
	service.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestContactFormHandler_Submit_MailFailure(t *testing.T) {
	service := new(mockContactFormService)
	router := newContactFormRouter(service)
	service.On("Submit", mock.Anything, mock.Anything).Return(apperrors.MailError(apperrors.New("relay down")))

	w := doJSON(t, router, http.MethodPost, "/contact-form", contactFormBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeStatus(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, msgInternal, resp.Message)
}
