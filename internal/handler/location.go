package handler

import (
	"context"
	"net/http"
	"strconv"

	"locations-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationHandler handles location CRUD requests
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	List(ctx context.Context) ([]models.Location, error)
	Create(ctx context.Context, loc models.Location) error
	Get(ctx context.Context, id int64) (*models.Location, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// List handles GET /api/locations requests
//
//	@Summary	List all locations
//	@Tags		locations
//	@Produce	json
//	@Success	200	{array}	models.Location
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	log.Info().Msg("GET: locations")

	locations, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve locations"})
		return
	}

	if locations == nil {
		locations = []models.Location{}
	}

	c.JSON(http.StatusOK, locations)
}

// Create handles POST /api/locations requests
//
//	@Summary	Add a new location
//	@Tags		locations
//	@Accept		json
//	@Produce	json
//	@Param		location	body	models.Location	true	"Location to add"
//	@Success	201	{string}	string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	log.Info().Msg("POST: locations")

	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location payload"})
		return
	}

	if err := h.service.Create(c.Request.Context(), loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to add location"})
		return
	}

	c.JSON(http.StatusCreated, "Location added successfully")
}

// Get handles GET /api/locations/:location_id requests
//
//	@Summary	Get a single location
//	@Tags		locations
//	@Produce	json
//	@Param		location_id	path	int	true	"Location id"
//	@Success	200	{object}	models.Location
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations/{location_id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	log.Info().Int64("location_id", id).Msg("GET: location by id")

	loc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve location"})
		return
	}

	c.JSON(http.StatusOK, loc)
}
