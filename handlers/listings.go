package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"RealtySiteAPI/catalog"
	"RealtySiteAPI/models"
	"RealtySiteAPI/utils"
)

const listingsCacheTTL = 5 * time.Minute

type ListingsController struct {
	properties []models.Property
	useCache   bool
}

func NewListingsController(properties []models.Property, useCache bool) *ListingsController {
	return &ListingsController{
		properties: properties,
		useCache:   useCache,
	}
}

// ListProperties filters the catalog by the request's search state.
// Every axis is optional; no filters returns the full catalog in source
// order. An empty result is a valid 200 with an empty list.
func (lc *ListingsController) ListProperties(c echo.Context) error {
	state := filterStateFromQuery(c)

	cacheKey := ""
	if lc.useCache {
		params := map[string]string{}
		for k, values := range c.QueryParams() {
			if len(values) > 0 {
				params[k] = values[0]
			}
		}
		cacheKey = utils.GenerateQueryCacheKey("listings", params)

		var cached []models.Property
		if found, err := utils.GetCached(c.Request().Context(), cacheKey, &cached); err == nil && found {
			return c.JSON(http.StatusOK, cached)
		}
	}

	filtered := catalog.Filter(lc.properties, state)
	if filtered == nil {
		filtered = []models.Property{}
	}

	if lc.useCache {
		_ = utils.SetCached(c.Request().Context(), cacheKey, filtered, listingsCacheTTL)
	}

	return c.JSON(http.StatusOK, filtered)
}

func (lc *ListingsController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	for _, p := range lc.properties {
		if p.ID == id {
			return c.JSON(http.StatusOK, p)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
}

func (lc *ListingsController) Neighborhoods(c echo.Context) error {
	names := catalog.Neighborhoods(lc.properties)
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, names)
}

func filterStateFromQuery(c echo.Context) models.FilterState {
	params := c.QueryParams()
	return models.FilterState{
		QuickFilter: c.QueryParam("type"),
		Search:      c.QueryParam("search"),
		Advanced: models.AdvancedFilters{
			MinPrice:      c.QueryParam("min_price"),
			MaxPrice:      c.QueryParam("max_price"),
			MinSize:       c.QueryParam("min_size"),
			MaxSize:       c.QueryParam("max_size"),
			Types:         params["types"],
			Neighborhoods: params["neighborhoods"],
			Statuses:      params["statuses"],
		},
	}
}
