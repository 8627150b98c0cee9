package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	debtdomain "github.com/smallbiznis/fiado/internal/debt/domain"
)

func (s *Server) RecordPayment(c *gin.Context) {
	var req debtdomain.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_request", "invalid request body"))
		return
	}

	if err := s.debtSvc.RecordPayment(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) ListPayments(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	payments, err := s.debtSvc.ListPayments(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (s *Server) ListAdditions(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	additions, err := s.debtSvc.ListAdditions(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, additions)
}
