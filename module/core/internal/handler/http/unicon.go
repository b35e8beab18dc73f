package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
)

type infoService interface {
	ListUniconIDs(ctx context.Context) ([]string, error)
	GetStations(ctx context.Context, uniconID string) (json.RawMessage, error)
}

type positionService interface {
	ListPositions(ctx context.Context) ([]domain.UniconPosition, error)
	GetPosition(ctx context.Context, uniconID string) (*domain.Position, error)
	UpdatePosition(ctx context.Context, uniconID string, pos domain.Position, source domain.UpdateSource) error
}

// lat/lng are pointers so that presence can be told apart from a literal 0.
type updatePositionRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type UniconHandler struct {
	infoSvc     infoService
	positionSvc positionService
}

func NewUniconHandler(infoSvc infoService, positionSvc positionService) *UniconHandler {
	return &UniconHandler{infoSvc: infoSvc, positionSvc: positionSvc}
}

func (h *UniconHandler) Register(r *gin.RouterGroup) {
	r.GET("/unicons", h.ListUnicons)
	r.GET("/route/:unicon_id", h.GetRoute)
	r.GET("/positions", h.ListPositions)
	r.GET("/positions/:unicon_id", h.GetPosition)
	r.PUT("/positions/update/:unicon_id", h.UpdatePosition)
}

func (h *UniconHandler) ListUnicons(c *gin.Context) {
	ids, err := h.infoSvc.ListUniconIDs(c.Request.Context())
	if err != nil {
		respondError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"uniconIds": ids})
}

func (h *UniconHandler) GetRoute(c *gin.Context) {
	uniconID := c.Param("unicon_id")

	stations, err := h.infoSvc.GetStations(c.Request.Context(), uniconID)
	if err != nil {
		respondError(c, uniconID, err)
		return
	}

	// already the projected {stations: ...} document, serialized verbatim
	c.Data(http.StatusOK, "application/json; charset=utf-8", stations)
}

func (h *UniconHandler) ListPositions(c *gin.Context) {
	positions, err := h.positionSvc.ListPositions(c.Request.Context())
	if err != nil {
		respondError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, positions)
}

func (h *UniconHandler) GetPosition(c *gin.Context) {
	uniconID := c.Param("unicon_id")

	pos, err := h.positionSvc.GetPosition(c.Request.Context(), uniconID)
	if err != nil {
		respondError(c, uniconID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"uniconId": uniconID, "position": pos})
}

func (h *UniconHandler) UpdatePosition(c *gin.Context) {
	uniconID := c.Param("unicon_id")

	var req updatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// lat is checked first; validation stops at the first missing field.
	if req.Lat == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required"})
		return
	}
	if req.Lng == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng is required"})
		return
	}

	pos := domain.Position{Lat: *req.Lat, Lng: *req.Lng}
	if err := h.positionSvc.UpdatePosition(c.Request.Context(), uniconID, pos, domain.SourceHTTP); err != nil {
		respondError(c, uniconID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"uniconId": uniconID, "message": "position updated successfully"})
}

// respondError is the single place repository failures turn into status codes:
// ErrNotFound becomes 404 with the id echoed, everything else becomes 500.
func respondError(c *gin.Context, uniconID string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"uniconId": uniconID, "message": "unicon id not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
