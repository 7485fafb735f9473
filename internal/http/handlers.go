package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kitchen-drone/internal/domain"
	"kitchen-drone/internal/repository"
	"kitchen-drone/internal/service"
)

type Server struct {
	engine *gin.Engine
	orders *service.OrderService
}

func NewServer(orders *service.OrderService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, orders: orders}
	s.loadTemplates()
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		api.POST("/place-order", s.placeOrder)
		api.GET("/get-orders", s.getOrders)
		api.DELETE("/delete-order/:id", s.deleteOrder)
	}

	s.engine.GET("/", s.indexPage)
	s.engine.GET("/menu", s.menuPage)
	s.engine.GET("/checkout", s.checkoutPage)
	s.engine.GET("/my-orders", s.myOrdersPage)
	s.engine.GET("/confirmation", s.confirmationPage)
}

// @Summary Place order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body domain.PlaceOrderRequest true "Order"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /place-order [post]
func (s *Server) placeOrder(c *gin.Context) {
	var req domain.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// unreadable body is treated the same as a missing one
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrNoOrderData.Error()})
		return
	}
	id, err := s.orders.PlaceOrder(c, req)
	if err != nil {
		status := mapErrorToStatus(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "Failed to process order"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": id})
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 500 {object} map[string]string
// @Router /get-orders [get]
func (s *Server) getOrders(c *gin.Context) {
	list, err := s.orders.ListOrders(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Delete order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /delete-order/{id} [delete]
func (s *Server) deleteOrder(c *gin.Context) {
	if err := s.orders.DeleteOrder(c, c.Param("id")); err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapErrorToStatus(err error) int {
	switch err {
	case service.ErrNoOrderData, service.ErrUnserviceable:
		return http.StatusBadRequest
	case repository.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
