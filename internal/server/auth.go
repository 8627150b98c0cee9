package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smallbiznis/fiado/internal/auth/password"
)

type verifyPasswordRequest struct {
	Senha string `json:"senha"`
}

// VerifyPassword checks the shared operator secret. A configured hash
// wins over the plain secret.
func (s *Server) VerifyPassword(c *gin.Context) {
	var req verifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_request", "invalid request body"))
		return
	}

	ok := false
	switch {
	case s.cfg.AdminPasswordHash != "":
		ok = password.Verify(req.Senha, s.cfg.AdminPasswordHash)
	default:
		ok = password.VerifyPlain(req.Senha, s.cfg.AdminPassword)
	}

	if !ok {
		AbortWithError(c, ErrForbidden)
		return
	}

	c.Status(http.StatusOK)
}
