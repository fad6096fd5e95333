package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/pkg/resp"
	"github.com/Sandeepkd1824/tummy-tap/services"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"` // username or email
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email,
		"message": "User registered. OTP sent to email.",
	})
}

// POST /auth/verify-otp
func (a *AuthController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.VerifyOTP(req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "user not found")
		case errors.Is(err, services.ErrInvalidOTP):
			resp.BadRequest(c, "invalid otp")
		case errors.Is(err, services.ErrExpiredOTP):
			resp.BadRequest(c, "otp has expired, please request a new one")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "Email verified successfully. You can now login."})
}

// POST /auth/resend-otp
func (a *AuthController) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.ResendOTP(req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "user not found")
		case errors.Is(err, services.ErrAlreadyVerified):
			resp.BadRequest(c, "user already verified")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "OTP resent successfully."})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotVerified):
			resp.Forbidden(c, "email not verified")
		default:
			resp.Unauthorized(c, "invalid credentials")
		}
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}

	user, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
