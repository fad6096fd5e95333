package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// POST /partner/restaurant/menu
func (h *MenuController) CreateItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.CreateItem(utils.CurrentUserID(c), utils.CurrentRole(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/restaurant/menu/:id
func (h *MenuController) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.MenuItemUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateItem(utils.CurrentUserID(c), utils.CurrentRole(c), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "menu item not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "not your restaurant")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}
