package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jongan69/used-car-api/internal/models"
	"github.com/jongan69/used-car-api/internal/service"
)

// CarHandler handles car search and detail requests.
type CarHandler struct {
	Service *service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(carService *service.CarService) *CarHandler {
	return &CarHandler{Service: carService}
}

// SearchCars handles POST /cars/search with a CarSearchRequest body.
func (h *CarHandler) SearchCars(c *gin.Context) {
	var req models.CarSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	h.search(c, &req)
}

// SearchCarsQuery handles GET /cars/search with the same fields as query
// parameters; repeated conditions params become the conditions list.
func (h *CarHandler) SearchCarsQuery(c *gin.Context) {
	var req models.CarSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}
	h.search(c, &req)
}

func (h *CarHandler) search(c *gin.Context, req *models.CarSearchRequest) {
	resp, err := h.Service.SearchCars(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "car search", err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCarDetails handles GET /cars/:listing_id.
func (h *CarHandler) GetCarDetails(c *gin.Context) {
	resp, err := h.Service.GetCarDetails(c.Request.Context(), c.Param("listing_id"))
	if err != nil {
		respondServiceError(c, "car details", err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, resp)
}
