package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/wanderlog/backend/internal/presenter"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CountryHandler serves the read-only country catalog
type CountryHandler struct {
	countryRepository repositories.CountryRepository
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryRepo repositories.CountryRepository) *CountryHandler {
	return &CountryHandler{countryRepository: countryRepo}
}

// RegisterCountryRoutes registers catalog routes
func (h *CountryHandler) RegisterCountryRoutes(g *echo.Group) {
	g.GET("/countries", h.GetCountries)
	g.GET("/countries/:name", h.GetCountry)
}

// GetCountries lists the whole catalog
func (h *CountryHandler) GetCountries(c echo.Context) error {
	countries, err := h.countryRepository.GetAllCountries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, presenter.FormatCountries(countries))
}

// GetCountry looks a country up by its exact name
func (h *CountryHandler) GetCountry(c echo.Context) error {
	country, err := h.countryRepository.GetCountryByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Country not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, presenter.FormatCountry(*country))
}
