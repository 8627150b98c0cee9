package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	inventorydomain "github.com/smallbiznis/fiado/internal/inventory/domain"
)

func (s *Server) ListMovements(c *gin.Context) {
	movements, err := s.inventorySvc.ListMovements(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, movements)
}

func (s *Server) RecordMovement(c *gin.Context) {
	var req inventorydomain.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_request", "invalid request body"))
		return
	}

	if err := s.inventorySvc.RecordMovement(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.inventorySvc.ListProducts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
