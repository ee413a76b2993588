package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jongan69/used-car-api/internal/logger"
	"github.com/jongan69/used-car-api/internal/offerup"
	"github.com/jongan69/used-car-api/internal/service"
)

// respondServiceError maps a failed operation onto the wire. The locations
// endpoints treat a table miss as a missing resource while search treats it
// as bad input; unknownLocationStatus carries that choice.
func respondServiceError(c *gin.Context, op string, err error, unknownLocationStatus int) {
	var (
		unknownErr    service.UnknownLocationError
		incompleteErr service.IncompleteLocationError
		rangeErr      service.InvalidFilterRangeError
		profaneErr    service.ProfaneQueryError
		idErr         service.InvalidListingIDError
		upstreamErr   *offerup.UpstreamError
	)

	switch {
	case errors.As(err, &unknownErr):
		c.JSON(unknownLocationStatus, gin.H{"error": unknownErr.Error()})
	case errors.As(err, &incompleteErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": incompleteErr.Error()})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": rangeErr.Error()})
	case errors.As(err, &profaneErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": profaneErr.Error()})
	case errors.As(err, &idErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": idErr.Error()})
	case errors.Is(err, offerup.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
	case errors.As(err, &upstreamErr):
		logger.Get().Warn("marketplace failure during "+op,
			zap.Int("upstream_status", upstreamErr.StatusCode),
			zap.Bool("rate_limited", upstreamErr.RateLimited),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "marketplace is unavailable"})
	default:
		logger.Get().Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
