package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rest, err := h.Svc.Detail(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/nearby?lat=..&lng=..&max_km=..
func (h *RestaurantController) Nearby(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		resp.BadRequest(c, "lat & lng query params are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		resp.BadRequest(c, "invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		resp.BadRequest(c, "invalid lng")
		return
	}

	maxKm := 10.0
	if v := c.Query("max_km"); v != "" {
		maxKm, err = strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid max_km")
			return
		}
	}

	rests, err := h.Svc.Nearby(lat, lng, maxKm)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}
