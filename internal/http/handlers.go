package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
	"github.com/Nisand-KB/FRESH-MART/internal/i18n"
	"github.com/Nisand-KB/FRESH-MART/internal/repository"
	"github.com/Nisand-KB/FRESH-MART/internal/service"
)

type Server struct {
	engine   *gin.Engine
	catalog  repository.CatalogRepository
	session  *service.Session
	cart     *service.CartService
	checkout *service.CheckoutService
	location *service.LocationService
}

func NewServer(catalog repository.CatalogRepository, session *service.Session, cart *service.CartService, checkout *service.CheckoutService, location *service.LocationService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{
		engine:   r,
		catalog:  catalog,
		session:  session,
		cart:     cart,
		checkout: checkout,
		location: location,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/products", s.listProducts)
		v1.GET("/categories", s.listCategories)

		cart := v1.Group("/cart")
		cart.GET("", s.getCart)
		cart.PUT("/items/:id", s.setCartQuantity)
		cart.DELETE("/items/:id", s.removeCartItem)

		v1.PUT("/language", s.setLanguage)
		v1.POST("/checkout", s.postCheckout)
		v1.POST("/location", s.captureLocation)
		v1.GET("/location", s.locationStatus)
	}
}

// Product handlers

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Name contains"
// @Param category query string false "Category, All for no filter"
// @Success 200 {array} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := repository.Filter{NameSubstring: c.Query("q")}
	if v := c.Query("category"); v != "" {
		cat := domain.Category(v)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		f.Category = cat
	}
	list, err := s.catalog.List(c, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type categoryView struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
}

// @Summary List categories with localized labels
// @Tags products
// @Produce json
// @Success 200 {array} categoryView
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	lang := s.session.Language()
	out := make([]categoryView, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		out = append(out, categoryView{Category: cat, Label: i18n.CategoryLabel(lang, cat)})
	}
	c.JSON(http.StatusOK, out)
}

// Cart handlers

type cartView struct {
	Items domain.Cart `json:"items"`
	Count int         `json:"count"`
	Total int64       `json:"total"`
}

func viewOf(cart domain.Cart) cartView {
	return cartView{Items: cart, Count: len(cart), Total: cart.Total()}
}

// @Summary Get the cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(s.cart.Cart()))
}

type setQuantityReq struct {
	Quantity *int64 `json:"quantity" binding:"required"`
}

// @Summary Set a product's cart quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body setQuantityReq true "Quantity; 0 removes the item"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [put]
func (s *Server) setCartQuantity(c *gin.Context) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cart, err := s.cart.SetQuantity(c, c.Param("id"), *req.Quantity)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(cart))
}

// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(s.cart.Remove(c.Param("id"))))
}

// Session handlers

type languageReq struct {
	Language domain.Language `json:"language" binding:"required"`
}

// @Summary Switch the active language
// @Tags session
// @Accept json
// @Produce json
// @Param input body languageReq true "Language: en or ta"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /language [put]
func (s *Server) setLanguage(c *gin.Context) {
	var req languageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.session.SetLanguage(req.Language); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": string(s.session.Language())})
}

// Checkout handlers

type checkoutReq struct {
	Mobile   string           `json:"mobile"`
	Email    string           `json:"email"`
	Address  string           `json:"address"`
	Location *domain.Location `json:"location"`
}

func (r checkoutReq) details() domain.CustomerDetails {
	return domain.CustomerDetails{
		Mobile:   r.Mobile,
		Email:    r.Email,
		Address:  r.Address,
		Location: r.Location,
	}
}

// @Summary Compile the cart into a WhatsApp order message
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body checkoutReq true "Customer details"
// @Success 200 {object} service.Order
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (s *Server) postCheckout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.checkout.Checkout(req.details(), s.session.Language())
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Location handlers

type locationResult struct {
	Details domain.CustomerDetails `json:"details"`
	Notice  string                 `json:"notice,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// @Summary Capture device location into customer details
// @Tags location
// @Accept json
// @Produce json
// @Param input body checkoutReq true "Customer details so far"
// @Success 200 {object} locationResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /location [post]
func (s *Server) captureLocation(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	lang := s.session.Language()
	details, err := s.location.Capture(c, req.details(), lang)
	if errors.Is(err, service.ErrLocationBusy) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		// non-fatal: the notice is shown to the user, details are unchanged
		c.JSON(http.StatusOK, locationResult{
			Details: details,
			Notice:  i18n.Label(lang, i18n.KeyLocationFailed),
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, locationResult{
		Details: details,
		Notice:  i18n.Label(lang, i18n.KeyLocationFetched),
	})
}

// @Summary Report whether a location request is in flight
// @Tags location
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /location [get]
func (s *Server) locationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requesting": s.location.Requesting()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMissingDetails):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrEmptyCart):
		return http.StatusConflict
	case errors.Is(err, service.ErrLocationBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
