package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/smallbiznis/rentcatalog/internal/product/domain"
)

func (s *Server) ListProducts(c *gin.Context) {
	var req productdomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetProductByID(c *gin.Context) {
	id, err := parseProductID(c.Param("product_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, msgProductNotFound)
			return
		}
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
