package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/services"
)

type AccountHandler struct {
	svc services.AccountService
}

func NewAccountHandler(svc services.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Pointers so that "" passes as present; only missing fields are rejected.
type SignupRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
	Role     *string `json:"role" binding:"required"`
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "AccountHandler.Signup", err)
		return
	}

	if _, err := h.svc.Signup(c.Request.Context(), *req.Email, *req.Password, *req.Role); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, "User created successfully")
}

// LoginForm is the OAuth2 password-grant form: username carries the email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AccountHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		invalidRequest(c, "AccountHandler.Login", err)
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tok)
}

// Logout is stateless. Email tokens stay valid forever and JWTs until they
// expire.
func (h *AccountHandler) Logout(c *gin.Context) {
	writeMessage(c, "Logged out successfully")
}
