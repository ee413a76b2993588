package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jongan69/used-car-api/internal/models"
	"github.com/jongan69/used-car-api/internal/service"
)

// LocationHandler serves the location table lookups.
type LocationHandler struct {
	Service *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{Service: locationService}
}

// GetStates handles GET /locations/states.
func (h *LocationHandler) GetStates(c *gin.Context) {
	states := h.Service.States()
	c.JSON(http.StatusOK, models.StatesResponse{States: states, Total: len(states)})
}

// GetCities handles GET /locations/cities?state=Texas.
func (h *LocationHandler) GetCities(c *gin.Context) {
	state := c.Query("state")
	cities, err := h.Service.Cities(state)
	if err != nil {
		respondServiceError(c, "list cities", err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, models.CitiesResponse{Cities: cities, Total: len(cities), State: state})
}

// GetCoordinates handles GET /locations/coordinates?state=Texas&city=Austin.
func (h *LocationHandler) GetCoordinates(c *gin.Context) {
	state := c.Query("state")
	city := c.Query("city")
	coords, err := h.Service.Coordinates(state, city)
	if err != nil {
		respondServiceError(c, "resolve coordinates", err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, models.LocationResponse{
		State: state,
		City:  city,
		Lat:   coords.Lat,
		Lon:   coords.Lon,
	})
}
