package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

// OwnerOrderController serves the partner dashboard order views.
type OwnerOrderController struct{ Svc *services.OrderService }

func NewOwnerOrderController(s *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: s}
}

// GET /partner/restaurant/orders?restaurantId=
func (h *OwnerOrderController) List(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Query("restaurantId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	orders, err := h.Svc.ListForRestaurant(utils.CurrentUserID(c), utils.CurrentRole(c), uint(restID))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
