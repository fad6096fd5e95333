package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(s *services.AddressService) *AddressController {
	return &AddressController{Svc: s}
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	addrs, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addrs)
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// GET /addresses/:id
func (h *AddressController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.Svc.Get(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// PUT /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Svc.Update(utils.CurrentUserID(c), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "address deleted"})
}

// POST /addresses/:id/default
func (h *AddressController) SetDefault(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.SetDefault(utils.CurrentUserID(c), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Default address updated successfully"})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
