package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Benian44/ly-confection/internal/adapter/http/middleware"
	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/logging"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/gin-gonic/gin"
)

// defaultOption stands in for size or color when a product defines no
// option list.
const defaultOption = "Standard"

// ShopHandler serves the storefront: catalog, cart and checkout.
type ShopHandler struct {
	catalog usecase.CatalogRepo
	cart    *usecase.CartStore
	flow    *usecase.CheckoutFlow
}

func NewShopHandler(catalog usecase.CatalogRepo, cart *usecase.CartStore, flow *usecase.CheckoutFlow) *ShopHandler {
	return &ShopHandler{catalog: catalog, cart: cart, flow: flow}
}

func (h *ShopHandler) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		logging.From(c).Error("list products failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog_unavailable"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

type cartView struct {
	Lines    domain.Cart `json:"lines"`
	Subtotal int64       `json:"subtotal"`
	Count    int         `json:"count"`
}

func (h *ShopHandler) currentCart() cartView {
	lines := h.cart.Lines()
	count := lines.Count()
	middleware.SetCartArticles(count)
	return cartView{Lines: lines, Subtotal: lines.Total(), Count: count}
}

func (h *ShopHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.currentCart())
}

type addLineReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (h *ShopHandler) AddLine(c *gin.Context) {
	var req addLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	product, ok, err := h.findProduct(ctx, req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog_unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	h.cart.Add(ctx, product, orDefault(req.Size), orDefault(req.Color))
	c.JSON(http.StatusOK, h.currentCart())
}

type updateLineReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *ShopHandler) UpdateLine(c *gin.Context) {
	var req updateLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	h.cart.SetQuantity(c.Request.Context(), req.ProductID, orDefault(req.Size), orDefault(req.Color), req.Quantity)
	c.JSON(http.StatusOK, h.currentCart())
}

type removeLineReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (h *ShopHandler) RemoveLine(c *gin.Context) {
	var req removeLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	h.cart.Remove(c.Request.Context(), req.ProductID, orDefault(req.Size), orDefault(req.Color))
	c.JSON(http.StatusOK, h.currentCart())
}

// FlowState exposes the current step plus the empty-cart rendering
// branch of the cart step.
func (h *ShopHandler) FlowState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"step":  h.flow.Step(),
		"empty": h.cart.Count() == 0,
	})
}

func (h *ShopHandler) BeginCheckout(c *gin.Context) {
	if err := h.flow.Begin(); err != nil {
		status := http.StatusConflict
		if errors.Is(err, usecase.ErrEmptyCart) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.flow.Step()})
}

func (h *ShopHandler) BackToCart(c *gin.Context) {
	if err := h.flow.Back(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.flow.Step()})
}

type submitReq struct {
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func (h *ShopHandler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	zone := domain.ZoneOutside
	if req.City == string(domain.ZoneAbidjan) {
		zone = domain.ZoneAbidjan
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.flow.Submit(ctx, usecase.SubmitInput{
		Phone:   req.Phone,
		Zone:    zone,
		Address: req.Address,
		IdemKey: c.GetHeader("X-Idempotency-Key"),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingField), errors.Is(err, domain.ErrInvalidOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrFlowState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			// Backend rejection: the cart is untouched, the client can
			// simply resubmit.
			logging.From(c).Error("order submission failed", "err", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "order_failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order, "step": h.flow.Step()})
}

func (h *ShopHandler) ExitSuccess(c *gin.Context) {
	if err := h.flow.Exit(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.flow.Step()})
}

func (h *ShopHandler) findProduct(ctx context.Context, id string) (domain.Product, bool, error) {
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}

func orDefault(s string) string {
	if s == "" {
		return defaultOption
	}
	return s
}
