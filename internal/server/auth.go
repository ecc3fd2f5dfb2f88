package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/rentcatalog/internal/auth/domain"
	obscontext "github.com/smallbiznis/rentcatalog/internal/observability/context"
)

// TokenRequest is the OAuth2 password grant form.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (s *Server) Register(c *gin.Context) {
	var req authdomain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	resp, err := s.authsvc.Register(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	ctx := c.Request.Context()
	user, err := s.authsvc.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.authsvc.IssueToken(obscontext.WithActor(ctx, user.Username), user)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) CurrentUser(c *gin.Context) {
	user, ok := c.Get(contextUserKey)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, user.(*authdomain.User).Response())
}
