package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopnest/internal/catalog"
	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/nikolayk812/shopnest/internal/metrics"
	"github.com/nikolayk812/shopnest/internal/payment"
	"github.com/nikolayk812/shopnest/internal/service"
	log "github.com/sirupsen/logrus"
)

type handler struct {
	svc *service.ShopService
}

type productResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type lineItemResponse struct {
	Product   string `json:"product"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartResponse struct {
	Items    []lineItemResponse `json:"items"`
	Subtotal string             `json:"subtotal"`
	Tax      string             `json:"tax"`
	Total    string             `json:"total"`
}

type orderResponse struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	DeliveryBy string   `json:"delivery_by"`
	Total      string   `json:"total"`
	Items      []string `json:"items"`
}

type addItemRequest struct {
	Product string `json:"product" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handler) listProducts(c *gin.Context) {
	products := h.svc.Products(domain.Category(c.Query("category")))

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			Name:        p.Name,
			Category:    string(p.Category),
			Description: p.Description,
			Price:       p.Price.Display(),
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories())
}

func (h *handler) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": h.svc.CurrentUser()})
}

func (h *handler) getCart(c *gin.Context) {
	view, err := h.svc.CartView(c.Request.Context(), c.Param("ownerID"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

func (h *handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	quantity, err := h.svc.AddToCart(c.Request.Context(), c.Param("ownerID"), req.Product)
	if err != nil {
		h.writeError(c, err)
		return
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	c.JSON(http.StatusOK, gin.H{"product": req.Product, "quantity": quantity})
}

func (h *handler) incrementItem(c *gin.Context) {
	quantity, err := h.svc.IncrementItem(c.Request.Context(), c.Param("ownerID"), c.Param("product"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	metrics.CartMutationsTotal.WithLabelValues("increment").Inc()
	c.JSON(http.StatusOK, gin.H{"product": c.Param("product"), "quantity": quantity})
}

func (h *handler) decrementItem(c *gin.Context) {
	quantity, err := h.svc.DecrementItem(c.Request.Context(), c.Param("ownerID"), c.Param("product"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	metrics.CartMutationsTotal.WithLabelValues("decrement").Inc()
	c.JSON(http.StatusOK, gin.H{"product": c.Param("product"), "quantity": quantity, "removed": quantity == 0})
}

func (h *handler) setItemQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.svc.SetItemQuantity(c.Request.Context(), c.Param("ownerID"), c.Param("product"), req.Quantity); err != nil {
		h.writeError(c, err)
		return
	}

	metrics.CartMutationsTotal.WithLabelValues("set_quantity").Inc()
	c.JSON(http.StatusOK, gin.H{"product": c.Param("product"), "quantity": req.Quantity})
}

func (h *handler) deleteItem(c *gin.Context) {
	removed, err := h.svc.RemoveItem(c.Request.Context(), c.Param("ownerID"), c.Param("product"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	c.JSON(http.StatusOK, gin.H{"product": c.Param("product"), "removed": removed})
}

func (h *handler) checkout(c *gin.Context) {
	var card payment.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	summary, err := h.svc.Checkout(c.Request.Context(), c.Param("ownerID"), card)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		h.writeError(c, err)
		return
	}

	metrics.OrdersTotal.WithLabelValues("completed").Inc()
	metrics.CheckoutAmount.Observe(summary.Total.Amount.InexactFloat64())

	c.JSON(http.StatusOK, toOrderResponse(summary))
}

func (h *handler) listOrders(c *gin.Context) {
	orders, err := h.svc.Orders(c.Request.Context(), c.Param("ownerID"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, out)
}

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrLineItemNotFound), errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, payment.ErrInvalidCard):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toCartResponse(view service.CartView) cartResponse {
	items := make([]lineItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, lineItemResponse{
			Product:   item.Product.Name,
			UnitPrice: item.Product.Price.Display(),
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price.MulInt(item.Quantity).Display(),
		})
	}

	return cartResponse{
		Items:    items,
		Subtotal: view.Pricing.Subtotal.Display(),
		Tax:      view.Pricing.Tax.Display(),
		Total:    view.Pricing.Total.Display(),
	}
}

func toOrderResponse(o domain.OrderSummary) orderResponse {
	return orderResponse{
		ID:         o.ID,
		Date:       o.Date,
		DeliveryBy: o.DeliveryBy,
		Total:      o.Total.Display(),
		Items:      o.Items,
	}
}
