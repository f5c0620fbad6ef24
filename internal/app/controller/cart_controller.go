package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/internal/app/service"
	"github.com/jmlee/storefront-backend/internal/cart"
	apperrors "github.com/jmlee/storefront-backend/internal/errors"
	"github.com/jmlee/storefront-backend/internal/middleware"
)

// CartIDHeader carries the client-generated cart id. There are no user
// accounts; each storefront client owns exactly one cart under its id.
const CartIDHeader = "X-Cart-ID"

type CartController struct {
	store          cart.Store
	productService service.ProductService
}

func NewCartController(store cart.Store, productService service.ProductService) *CartController {
	return &CartController{
		store:          store,
		productService: productService,
	}
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart with its totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	session, ok := ctrl.openSession(c)
	if !ok {
		return
	}

	respondCart(c, session)
}

// AddItem adds one unit of a product to the cart
// POST /api/v1/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	session, ok := ctrl.openSession(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	product, err := ctrl.productService.GetProductByID(req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product for cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c, "Failed to add to cart")
		return
	}

	if err := session.AddItem(c.Request.Context(), product); err != nil {
		log.Error("Failed to save cart", err, nil)
		apperrors.InternalError(c, "Failed to save cart")
		return
	}

	respondCart(c, session)
}

// UpdateItem sets a line's quantity; zero removes the line
// PUT /api/v1/cart/items/:id
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	session, ok := ctrl.openSession(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := session.UpdateQuantity(c.Request.Context(), id, req.Quantity); err != nil {
		log.Error("Failed to save cart", err, nil)
		apperrors.InternalError(c, "Failed to save cart")
		return
	}

	respondCart(c, session)
}

// RemoveItem removes a line from the cart
// DELETE /api/v1/cart/items/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	session, ok := ctrl.openSession(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := session.RemoveItem(c.Request.Context(), id); err != nil {
		log.Error("Failed to save cart", err, nil)
		apperrors.InternalError(c, "Failed to save cart")
		return
	}

	respondCart(c, session)
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	session, ok := ctrl.openSession(c)
	if !ok {
		return
	}

	if err := session.Clear(c.Request.Context()); err != nil {
		log.Error("Failed to clear cart", err, nil)
		apperrors.InternalError(c, "Failed to clear cart")
		return
	}

	respondCart(c, session)
}

func (ctrl *CartController) openSession(c *gin.Context) (*cart.Session, bool) {
	log := middleware.GetLoggerFromContext(c)

	cartID := c.GetHeader(CartIDHeader)
	if cartID == "" {
		log.Warn("Missing cart id header", map[string]interface{}{
			"path": c.Request.URL.Path,
		})
		apperrors.BadRequest(c, apperrors.CartIDMissing, "X-Cart-ID header is required")
		return nil, false
	}

	session, err := cart.OpenSession(c.Request.Context(), ctrl.store, cartID)
	if err != nil {
		log.Error("Failed to load cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		apperrors.InternalError(c, "Failed to load cart")
		return nil, false
	}
	return session, true
}

func respondCart(c *gin.Context, session *cart.Session) {
	c.JSON(http.StatusOK, gin.H{
		"items":       session.Items(),
		"total_items": session.TotalItems(),
		"total_price": session.TotalPrice(),
	})
}
