package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/repository"
	mock_repo "esg-assistant/internal/repository/mocks"
	"esg-assistant/internal/service"
)

func TestPreferenceService_Initialize(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored string
		found  bool
		want   string
	}{
		{name: "Nothing stored", want: service.ThemeLight},
		{name: "Dark stored", stored: "dark", found: true, want: service.ThemeDark},
		{name: "Unknown value", stored: "sepia", found: true, want: service.ThemeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock_repo.NewMockStore(t)
			store.On("LoadPreference", ctx, repository.PrefTheme).Return(tt.stored, tt.found).Once()

			prefs := service.NewPreferenceService(store, zap.NewNop())
			assert.Equal(t, tt.want, prefs.Initialize(ctx))
			assert.Equal(t, tt.want, prefs.Theme())
		})
	}
}

func TestPreferenceService_SetTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := mock_repo.NewMockStore(t)
		store.On("SavePreference", ctx, repository.PrefTheme, "dark").Return(nil).Once()

		prefs := service.NewPreferenceService(store, zap.NewNop())
		theme, err := prefs.SetTheme(ctx, " Dark ")
		require.NoError(t, err)
		assert.Equal(t, service.ThemeDark, theme)
		assert.Equal(t, service.ThemeDark, prefs.Theme())
	})

	t.Run("Invalid theme", func(t *testing.T) {
		store := mock_repo.NewMockStore(t)
		prefs := service.NewPreferenceService(store, zap.NewNop())

		_, err := prefs.SetTheme(ctx, "purple")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		store.AssertNotCalled(t, "SavePreference", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store failure keeps the old theme", func(t *testing.T) {
		store := mock_repo.NewMockStore(t)
		store.On("SavePreference", ctx, repository.PrefTheme, "dark").Return(errors.New("redis down")).Once()

		prefs := service.NewPreferenceService(store, zap.NewNop())
		_, err := prefs.SetTheme(ctx, "dark")
		assert.Error(t, err)
		assert.Equal(t, service.ThemeLight, prefs.Theme())
	})
}
