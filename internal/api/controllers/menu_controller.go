package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume/internal/services"
)

type MenuController struct {
	menuService services.MenuServiceInterface
}

func NewMenuController(menuService services.MenuServiceInterface) *MenuController {
	return &MenuController{menuService: menuService}
}

// Show renders /menu/:name with the point named by ?slug= opened.
func (m *MenuController) Show(c *gin.Context) {
	name := c.Param("name")
	nodes, err := m.menuService.Menu(c.Request.Context(), name, c.Query("slug"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "menu.html", page(c, gin.H{
		"Title":    name,
		"MenuName": name,
		"Nodes":    nodes,
	}))
}
