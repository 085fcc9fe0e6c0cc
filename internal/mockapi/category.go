package mockapi

import (
	"net/http"

	"github.com/labstack/echo"
)

type categoryRoutesHandler struct {
	store *store
}

func newCategoryRoutesHandler(outer *echo.Group, store *store) *categoryRoutesHandler {
	h := &categoryRoutesHandler{store: store}

	outer.GET("/categories", h.GetCategories)

	return h
}

// /categories
func (h *categoryRoutesHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.listCategories())
}
