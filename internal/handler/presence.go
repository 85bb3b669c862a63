package handler

import (
	"context"
	"net/http"
	"strconv"

	"locations-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PresenceHandler handles presence queries scoped to a location
type PresenceHandler struct {
	service PresenceService
}

// Service interface for dependency injection
type PresenceService interface {
	TimestampsRange(ctx context.Context, locationID int64, start, end string) ([]models.Timestamp, error)
	TimestampsToday(ctx context.Context, locationID int64) ([]models.Timestamp, error)
	Residents(ctx context.Context, locationID int64) ([]models.Resident, error)
}

// NewPresenceHandler creates a new presence handler
func NewPresenceHandler(svc PresenceService) *PresenceHandler {
	return &PresenceHandler{service: svc}
}

// TimestampsRange handles GET /api/locations/:location_id/timestamps/:start/:end requests.
// start and end are passed through to the service untouched.
//
//	@Summary	List presence timestamps for a location within a range
//	@Tags		presence
//	@Produce	json
//	@Param		location_id	path	int		true	"Location id"
//	@Param		start	path	string	true	"Range start"
//	@Param		end		path	string	true	"Range end"
//	@Success	200	{array}	models.Timestamp
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations/{location_id}/timestamps/{start}/{end} [get]
func (h *PresenceHandler) TimestampsRange(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	start := c.Param("start")
	end := c.Param("end")

	log.Info().Int64("location_id", id).Msg("GET: location timestamps with range")

	timestamps, err := h.service.TimestampsRange(c.Request.Context(), id, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve timestamps"})
		return
	}

	if timestamps == nil {
		timestamps = []models.Timestamp{}
	}

	c.JSON(http.StatusOK, timestamps)
}

// TimestampsToday handles GET /api/locations/:location_id/timestamps requests
//
//	@Summary	List today's presence timestamps for a location
//	@Tags		presence
//	@Produce	json
//	@Param		location_id	path	int	true	"Location id"
//	@Success	200	{array}	models.Timestamp
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations/{location_id}/timestamps [get]
func (h *PresenceHandler) TimestampsToday(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	log.Info().Int64("location_id", id).Msg("GET: location timestamps")

	timestamps, err := h.service.TimestampsToday(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve timestamps"})
		return
	}

	if timestamps == nil {
		timestamps = []models.Timestamp{}
	}

	c.JSON(http.StatusOK, timestamps)
}

// Residents handles GET /api/locations/:location_id/residents requests
//
//	@Summary	List residents assigned to a location
//	@Tags		presence
//	@Produce	json
//	@Param		location_id	path	int	true	"Location id"
//	@Success	200	{array}	models.Resident
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations/{location_id}/residents [get]
func (h *PresenceHandler) Residents(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	log.Info().Int64("location_id", id).Msg("GET: location residents")

	residents, err := h.service.Residents(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve residents"})
		return
	}

	if residents == nil {
		residents = []models.Resident{}
	}

	c.JSON(http.StatusOK, residents)
}
