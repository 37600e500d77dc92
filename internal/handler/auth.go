package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // token expiry in responses

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/train-seat-reservation/internal/config" // app configuration
	"github.com/iliyamo/train-seat-reservation/internal/utils"  // password check and token issuing
)

// RoleOperator is the JWT role allowed to reset a line.
const RoleOperator = "OPERATOR"

// AuthHandler issues operator tokens.  There is a single operator
// account whose bcrypt hash comes from the environment; when the hash is
// empty every login is refused.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type loginResp struct {
	Role   string    `json:"role"`
	Access tokenPart `json:"access"`
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}
	if h.Cfg.OperatorPassHash == "" || req.Username != h.Cfg.OperatorUser ||
		!utils.VerifyPassword(h.Cfg.OperatorPassHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Username, RoleOperator, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("auth: issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Role:   RoleOperator,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
