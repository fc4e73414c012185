package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgentShepherd/codeintel/internal/api"
	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/types"
)

// Handler serves catalog routes. The catalog is fetched per request so a
// reload is visible to the next request.
type Handler struct {
	catalog func() *indicators.Catalog
}

// NewHandler creates a handler reading the catalog from get.
func NewHandler(get func() *indicators.Catalog) *Handler {
	return &Handler{catalog: get}
}

// RegisterRoutes registers the catalog routes on router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HandleHealth)

	apiGroup := router.Group("/api", api.CacheControlMiddleware(api.DefaultCacheMaxAge))
	{
		ind := apiGroup.Group("/indicators")
		{
			ind.GET("", h.HandleIndicators)
			ind.GET("/badges/:name", h.HandleBadge)
			ind.GET("/alerts/:name", h.HandleAlert)
			ind.GET("/legacy/:name", h.HandleLegacy)
		}

		icons := apiGroup.Group("/icons")
		{
			icons.GET("/info", h.HandleInfoIcon)
			icons.GET("/info.svg", h.HandleInfoIconSVG)
		}
	}
}

// HandleHealth handles GET /health
func (h *Handler) HandleHealth(c *gin.Context) {
	api.Success(c, gin.H{"status": "ok"})
}

// IndicatorsQuery represents query parameters for the indicators endpoint
type IndicatorsQuery struct {
	Kind string `form:"kind" binding:"omitempty,indicatorkind"`
}

// HandleIndicators handles GET /api/indicators
func (h *Handler) HandleIndicators(c *gin.Context) {
	var query IndicatorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.Error(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	cat := h.catalog()
	if query.Kind == "" {
		api.Success(c, cat.Entries())
		return
	}
	kind, _ := types.ParseIndicatorKind(query.Kind)
	entries := cat.EntriesOfKind(kind)
	if entries == nil {
		entries = []indicators.Entry{}
	}
	api.Success(c, entries)
}

// HandleBadge handles GET /api/indicators/badges/:name
func (h *Handler) HandleBadge(c *gin.Context) {
	name := c.Param("name")
	b, ok := h.catalog().Badge(name)
	if !ok {
		api.NotFound(c, "badge", name)
		return
	}
	api.Success(c, b)
}

// HandleAlert handles GET /api/indicators/alerts/:name
func (h *Handler) HandleAlert(c *gin.Context) {
	name := c.Param("name")
	a, ok := h.catalog().Alert(name)
	if !ok {
		api.NotFound(c, "alert", name)
		return
	}
	api.Success(c, a)
}

// HandleLegacy handles GET /api/indicators/legacy/:name
func (h *Handler) HandleLegacy(c *gin.Context) {
	name := c.Param("name")
	b, ok := h.catalog().Legacy(name)
	if !ok {
		api.NotFound(c, "legacy indicator", name)
		return
	}
	api.Success(c, b)
}

// IconQuery represents query parameters for the icon endpoints.
// Color wins over Theme; with neither the palette's dark color is used.
type IconQuery struct {
	Color string `form:"color" binding:"omitempty,iconcolor"`
	Theme string `form:"theme" binding:"omitempty,oneof=dark light"`
}

func (h *Handler) iconColor(c *gin.Context) (icon.Color, bool) {
	var query IconQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.Error(c, http.StatusBadRequest, bindingMessage(err))
		return "", false
	}
	if query.Color != "" {
		return icon.Color(query.Color), true
	}
	palette := h.catalog().Palette()
	if query.Theme == "light" {
		return palette.Light, true
	}
	return palette.Dark, true
}

// HandleInfoIcon handles GET /api/icons/info
func (h *Handler) HandleInfoIcon(c *gin.Context) {
	color, ok := h.iconColor(c)
	if !ok {
		return
	}
	api.Success(c, gin.H{
		"color": color,
		"uri":   icon.Encode(color),
	})
}

// HandleInfoIconSVG handles GET /api/icons/info.svg
func (h *Handler) HandleInfoIconSVG(c *gin.Context) {
	color, ok := h.iconColor(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", []byte(icon.Normalize(icon.InfoMarkup(color))))
}
