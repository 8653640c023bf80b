package validator

import (
	"fmt"
	"strings"

	"github.com/seniorworks/chatbot-backend/internal/entity"
)

// Validator validates incoming API requests before they reach a use case.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateChat rejects chat requests with an empty message so the RAG core
// never sees one.
func (v *Validator) ValidateChat(req *entity.ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message", entity.ErrMissingField)
	}

	return nil
}

// ValidatePagination normalizes page/per_page query parameters.
func (v *Validator) ValidatePagination(page, perPage int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", entity.ErrInvalidParameter, page)
	}
	if perPage < 1 || perPage > 100 {
		return fmt.Errorf("%w: per_page must be between 1 and 100, got %d", entity.ErrInvalidParameter, perPage)
	}

	return nil
}
