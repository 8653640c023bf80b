package validator

import (
	"testing"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateChat(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateChat(&entity.ChatRequest{Message: "안녕하세요"}))

	err := v.ValidateChat(&entity.ChatRequest{Message: ""})
	assert.ErrorIs(t, err, entity.ErrMissingField)

	err = v.ValidateChat(&entity.ChatRequest{Message: "   \n\t "})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestValidatePagination(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidatePagination(1, 20))
	assert.NoError(t, v.ValidatePagination(100, 100))

	assert.ErrorIs(t, v.ValidatePagination(0, 20), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidatePagination(-1, 20), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidatePagination(1, 0), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidatePagination(1, 101), entity.ErrInvalidParameter)
}
