package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	summary, err := h.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// POST /orders/place
func (h *OrderController) Place(c *gin.Context) {
	var body struct {
		AddressID     uint   `json:"address_id" binding:"required"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	method := entity.PaymentMethod(body.PaymentMethod)
	if body.PaymentMethod == "" {
		method = entity.PaymentCOD
	}

	orders, err := h.Svc.PlaceOrder(utils.CurrentUserID(c), body.AddressID, method)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayment):
			resp.BadRequest(c, "invalid payment method")
		case errors.Is(err, services.ErrAddressNotFound):
			resp.BadRequest(c, "address not found")
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, "cart is empty")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, orders)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.Svc.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := h.Svc.UpdateStatus(utils.CurrentUserID(c), utils.CurrentRole(c), id, entity.OrderStatus(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "invalid status")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, o)
}
