package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"esg-assistant/internal/api"
	"esg-assistant/internal/interfaces/mocks"
)

func setupPreferenceHandler(t *testing.T) (*api.PreferenceHandler, *mocks.MockPreferenceService, *mocks.MockCompanyDirectory) {
	prefs := mocks.NewMockPreferenceService(t)
	companies := mocks.NewMockCompanyDirectory(t)
	return api.NewPreferenceHandler(prefs, companies, zap.NewNop()), prefs, companies
}

func TestPreferenceHandler_Theme(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		handler, prefs, _ := setupPreferenceHandler(t)
		prefs.On("Theme").Return("light").Once()

		rr := httptest.NewRecorder()
		handler.GetTheme(rr, httptest.NewRequest(http.MethodGet, "/v1/preferences/theme", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"theme": "light"}`, rr.Body.String())
	})

	t.Run("Update", func(t *testing.T) {
		handler, prefs, _ := setupPreferenceHandler(t)
		prefs.On("SetTheme", mock.Anything, "dark").Return("dark", nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/preferences/theme", strings.NewReader(`{"theme": "dark"}`))
		rr := httptest.NewRecorder()
		handler.UpdateTheme(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"theme": "dark"}`, rr.Body.String())
	})

	t.Run("Update - Unknown theme", func(t *testing.T) {
		handler, _, _ := setupPreferenceHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/preferences/theme", strings.NewReader(`{"theme": "sepia"}`))
		rr := httptest.NewRecorder()
		handler.UpdateTheme(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "'theme' must be one of: light dark")
	})

	t.Run("Update - Store failure", func(t *testing.T) {
		handler, prefs, _ := setupPreferenceHandler(t)
		prefs.On("SetTheme", mock.Anything, "dark").Return("", errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/preferences/theme", strings.NewReader(`{"theme": "dark"}`))
		rr := httptest.NewRecorder()
		handler.UpdateTheme(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPreferenceHandler_ListCompanies(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _, companies := setupPreferenceHandler(t)
		companies.On("ListCompanies", mock.Anything).Return([]string{"Orange", "TotalEnergies"}, nil).Once()

		rr := httptest.NewRecorder()
		handler.ListCompanies(rr, httptest.NewRequest(http.MethodGet, "/v1/companies", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"companies": ["Orange", "TotalEnergies"]}`, rr.Body.String())
	})

	t.Run("Analysis service down", func(t *testing.T) {
		handler, _, companies := setupPreferenceHandler(t)
		companies.On("ListCompanies", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		rr := httptest.NewRecorder()
		handler.ListCompanies(rr, httptest.NewRequest(http.MethodGet, "/v1/companies", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
