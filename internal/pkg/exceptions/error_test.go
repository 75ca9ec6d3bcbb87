package exceptions

import (
	"errors"
	"halo-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Plain Error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrMongoDBFindDocument(cause)

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
		assert.Contains(t, err.DevMessage, "connection refused")
		assert.ErrorIs(t, err, cause, "cause should stay reachable through errors.Is")
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
	})

	t.Run("Keeps First Classification", func(t *testing.T) {
		inner := ErrOTPExpired(nil)
		outer := ErrServerProcess(inner)

		assert.Same(t, inner, outer, "an existing CustomError is reused")
		assert.Equal(t, constvars.StatusBadRequest, outer.StatusCode)
		assert.Equal(t, constvars.ErrClientOTPExpired, outer.ClientMessage)
		assert.Len(t, outer.Locations, 2, "each wrap appends a location")
	})

	t.Run("Nil Cause", func(t *testing.T) {
		err := ErrAccessDenied(nil)

		assert.Equal(t, constvars.StatusForbidden, err.StatusCode)
		assert.Equal(t, constvars.ErrDevProfileOwnerMismatch, err.DevMessage)
		assert.Nil(t, errors.Unwrap(err))
	})
}

func TestWrapWithError(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := WrapWithError(cause, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)

	assert.Equal(t, "invalid token: signature is invalid", err.DevMessage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid token")
}

type validationSample struct {
	Name     string `validate:"required,min=3"`
	Language string `validate:"oneof=en hi pa or"`
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("Min With Param", func(t *testing.T) {
		err := validate.Struct(validationSample{Name: "ab", Language: "en"})
		assert.Equal(t, "Name must be at least 3 characters long", FormatFirstValidationError(err))
	})

	t.Run("Oneof Lists Options", func(t *testing.T) {
		err := validate.Struct(validationSample{Name: "abc", Language: "fr"})
		assert.Equal(t, "Language must be one of [en, hi, pa, or]", FormatFirstValidationError(err))
	})

	t.Run("Not A Validation Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	})

	t.Run("All Errors Joined", func(t *testing.T) {
		err := validate.Struct(validationSample{Name: "", Language: "fr"})
		assert.Equal(t, "Name is required, Language must be one of [en, hi, pa, or]", FormatAllValidationErrors(err))
	})
}
