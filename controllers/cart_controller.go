package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.View(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/add_item
func (h *CartController) AddItem(c *gin.Context) {
	var body struct {
		ItemID   uint `json:"item_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.AddItem(utils.CurrentUserID(c), body.ItemID, body.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "item not found")
		case errors.Is(err, services.ErrItemUnavailable):
			resp.BadRequest(c, "item not available")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, view)
}

// POST /cart/remove_item
func (h *CartController) RemoveItem(c *gin.Context) {
	var body struct {
		ItemID uint `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.RemoveOneUnit(utils.CurrentUserID(c), body.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/delete_item/:id
func (h *CartController) DeleteLine(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	subtotal, err := h.Svc.DeleteLine(utils.CurrentUserID(c), uint(lineID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item not found in cart")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item removed successfully", "subtotal": subtotal})
}

// POST /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	view, err := h.Svc.Clear(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}
