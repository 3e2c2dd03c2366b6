package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Benian44/ly-confection/configs"
	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/logging"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminHandler backs the dashboard. Login is the single shared
// password the shop owner uses; it is a placeholder, not an auth
// model.
type AdminHandler struct {
	cfg   configs.Config
	admin *usecase.Admin
}

func NewAdminHandler(cfg configs.Config, admin *usecase.Admin) *AdminHandler {
	return &AdminHandler{cfg: cfg, admin: admin}
}

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the shared password and issues a bearer token for the
// dashboard endpoints.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if req.Password != h.cfg.Admin.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_password"})
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": h.cfg.Admin.Issuer,
		"aud": h.cfg.Admin.Audience,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(h.cfg.Admin.TTL).Unix(),
		"sub": "admin",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Admin.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int64(h.cfg.Admin.TTL.Seconds()),
	})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	c.JSON(http.StatusOK, h.admin.Stats(ctx))
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.admin.Orders(ctx)
	if err != nil {
		logging.From(c).Error("list orders failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "orders_unavailable"})
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type addProductReq struct {
	Name     string   `json:"name" binding:"required"`
	Price    int64    `json:"price" binding:"required,gt=0"`
	Category string   `json:"category" binding:"required"`
	ImageURL string   `json:"image_url" binding:"required"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
}

func (h *AdminHandler) AddProduct(c *gin.Context) {
	var req addProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.admin.AddProduct(ctx, domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Sizes:    req.Sizes,
		Colors:   req.Colors,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logging.From(c).Error("add product failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "product_failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

type statusReq struct {
	Status domain.Status `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.admin.SetOrderStatus(ctx, c.Param("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBadStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		default:
			logging.From(c).Error("status update failed", "err", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "update_failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
