package doctors

import (
	"context"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoctorUsecase_ListDoctors(t *testing.T) {
	uc := NewDoctorUsecase(zap.NewNop())
	ctx := context.Background()

	t.Run("all doctors", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "")
		require.NoError(t, err)
		require.Len(t, doctors, 3)
		assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
		assert.Equal(t, "$75", doctors[1].Fee)
	})

	t.Run("specialty filter ignores case", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "cardiology")
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, 2, doctors[0].ID)
	})

	t.Run("unknown specialty returns empty list", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "Dermatology")
		require.NoError(t, err)
		assert.NotNil(t, doctors)
		assert.Empty(t, doctors)
	})
}

func TestDoctorUsecase_GetDoctorByID(t *testing.T) {
	uc := NewDoctorUsecase(zap.NewNop())

	doctor, err := uc.GetDoctorByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Pediatrics", doctor.Specialty)

	// callers must not be able to mutate the directory
	doctor.Name = "changed"
	again, err := uc.GetDoctorByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Emily Rodriguez", again.Name)

	_, err = uc.GetDoctorByID(context.Background(), 42)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientDoctorNotFound, customErr.ClientMessage)
}
