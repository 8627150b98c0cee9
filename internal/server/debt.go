package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	debtdomain "github.com/smallbiznis/fiado/internal/debt/domain"
)

func (s *Server) ListActiveDebts(c *gin.Context) {
	debts, err := s.debtSvc.ListActive(c.Request.Context(), c.Query("nome"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, debts)
}

func (s *Server) ListSettledDebts(c *gin.Context) {
	debts, err := s.debtSvc.ListSettled(c.Request.Context(), c.Query("nome"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, debts)
}

func (s *Server) CreateDebt(c *gin.Context) {
	var req debtdomain.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_request", "invalid request body"))
		return
	}

	if _, err := s.debtSvc.Create(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) SettleDebt(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	if err := s.debtSvc.SettleManual(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (s *Server) AddToDebt(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	var req debtdomain.AddToDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_request", "invalid request body"))
		return
	}

	if err := s.debtSvc.AddToDebt(c.Request.Context(), id, req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
