package api

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/interfaces"
)

// PreferenceHandler serves UI preferences and the company filter list.
type PreferenceHandler struct {
	prefs     interfaces.PreferenceService
	companies interfaces.CompanyDirectory
	log       *zap.Logger
}

func NewPreferenceHandler(prefs interfaces.PreferenceService, companies interfaces.CompanyDirectory, log *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs, companies: companies, log: log}
}

// GetTheme godoc
// @Summary      Current theme
// @Tags         Preferences
// @Produce      json
// @Success      200  {object}  ThemeResponse
// @Router       /v1/preferences/theme [get]
func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, h.log, http.StatusOK, ThemeResponse{Theme: h.prefs.Theme()})
}

// UpdateTheme godoc
// @Summary      Switch theme
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Param        theme  body      ThemeRequest  true  "light or dark"
// @Success      200    {object}  ThemeResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /v1/preferences/theme [put]
func (h *PreferenceHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, h.log, err)
		return
	}

	theme, err := h.prefs.SetTheme(r.Context(), req.Theme)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	respondWithJSON(w, h.log, http.StatusOK, ThemeResponse{Theme: theme})
}

// ListCompanies godoc
// @Summary      List companies
// @Description  Companies known to the analysis service, used to filter chat answers.
// @Tags         Companies
// @Produce      json
// @Success      200  {object}  CompaniesResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/companies [get]
func (h *PreferenceHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.ListCompanies(r.Context())
	if err != nil {
		respondWithError(w, h.log, fmt.Errorf("%w: %s", app_errors.ErrUpstream, err.Error()))
		return
	}
	respondWithJSON(w, h.log, http.StatusOK, CompaniesResponse{Companies: companies})
}
