package handlers

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

func TestParseValidationErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(models.SendMessageRequest{ReceiverEmail: "not-an-email", Subject: "Hi"})
	require.Error(t, err)

	fields := ParseValidationErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "receiverEmail", fields[0].Field)
	assert.Equal(t, "Invalid email format", fields[0].Message)
	assert.Equal(t, "body", fields[1].Field)
	assert.Equal(t, "body is required", fields[1].Message)

	assert.Equal(t, "Invalid email format. body is required.", BindErrorMessage(err))
}

func TestBindErrorMessage_NotValidation(t *testing.T) {
	assert.Equal(t, msgInvalidBody, BindErrorMessage(errors.New("unexpected EOF")))
	assert.Empty(t, ParseValidationErrors(errors.New("unexpected EOF")))
}

func TestJSONFieldName(t *testing.T) {
	assert.Equal(t, "newPassword", jsonFieldName("NewPassword"))
	assert.Equal(t, "", jsonFieldName(""))
}
