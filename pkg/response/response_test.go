package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cricketpro/cricket-scoring-service/internal/repository"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
)

func TestMapError(t *testing.T) {
	invalid := service.NewInvalidInputError([]service.FieldError{{Field: "name", Message: "must not be empty"}})

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil", nil, http.StatusOK, "ok"},
		{"invalid input", invalid, http.StatusBadRequest, "invalid_input"},
		{"wrapped not found", fmt.Errorf("team abc: %w", repository.ErrNotFound), http.StatusNotFound, "not_found"},
		{"wrapped conflict", fmt.Errorf("match live: %w", repository.ErrConflict), http.StatusConflict, "conflict"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := MapError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, payload.Error)
		})
	}
}

func TestMapError_CarriesFieldErrors(t *testing.T) {
	err := service.NewInvalidInputError([]service.FieldError{
		{Field: "name", Message: "must not be empty"},
		{Field: "shortName", Message: "length must be <= 5"},
	})
	_, payload := MapError(err)
	assert.Len(t, payload.FieldErrors, 2)
	assert.Equal(t, "name", payload.FieldErrors[0].Field)
}
