package httpapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchen-drone/internal/menu"
)

//go:embed templates/*.html
var templatesFS embed.FS

func (s *Server) loadTemplates() {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	s.engine.SetHTMLTemplate(tmpl)
}

func (s *Server) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) menuPage(c *gin.Context) {
	c.HTML(http.StatusOK, "menu.html", gin.H{"Menu": menu.Catalog()})
}

func (s *Server) checkoutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.html", nil)
}

// myOrdersPage рендерит заказы на сервере, как и остальные страницы;
// кнопки удаления ходят в JSON API
func (s *Server) myOrdersPage(c *gin.Context) {
	orders, err := s.orders.ListOrders(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load orders")
		return
	}
	c.HTML(http.StatusOK, "my-orders.html", gin.H{"Orders": orders})
}

func (s *Server) confirmationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmation.html", nil)
}
