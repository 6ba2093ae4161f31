package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"gramin/internal/models"
	"gramin/internal/service"
)

// placeTypePattern admits OpenStreetMap amenity values such as "hospital" or "doctors".
var placeTypePattern = regexp.MustCompile(`^[a-z_]+$`)

// NearbyHandler handles nearby place lookups
type NearbyHandler struct {
	places service.NearbyFinder
}

// NewNearbyHandler creates a new nearby handler
func NewNearbyHandler(places service.NearbyFinder) *NearbyHandler {
	return &NearbyHandler{places: places}
}

// Find handles nearby place requests
// @Summary Find nearby health centers
// @Description List up to six named places of the given OpenStreetMap amenity type around a point
// @Tags Places
// @Accept json
// @Produce json
// @Param request body models.NearbyRequest true "Location and place type"
// @Success 200 {object} models.NearbyResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /nearby-health-centers/ [post]
func (h *NearbyHandler) Find(c *gin.Context) {
	var req models.NearbyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	placeType := strings.ToLower(strings.TrimSpace(req.PlaceType))
	if !placeTypePattern.MatchString(placeType) {
		respondError(c, http.StatusBadRequest, "place_type must be an amenity value such as hospital, clinic or pharmacy")
		return
	}

	places := h.places.FindNearby(c.Request.Context(), *req.Latitude, *req.Longitude, placeType)
	if places == nil {
		places = []models.Place{}
	}

	c.JSON(http.StatusOK, models.NearbyResponse{Places: places})
}
