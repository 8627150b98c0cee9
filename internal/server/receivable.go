package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	receivabledomain "github.com/smallbiznis/fiado/internal/receivable/domain"
)

func (s *Server) ListReceivables(c *gin.Context) {
	receivables, err := s.receivableSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, receivables)
}

func (s *Server) CreateReceivable(c *gin.Context) {
	var req receivabledomain.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_request", "invalid request body"))
		return
	}

	if _, err := s.receivableSvc.Create(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) SettleReceivable(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	if err := s.receivableSvc.Settle(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
