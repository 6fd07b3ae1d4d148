package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esneiderbravo/crehana-tasks/internal/controller"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

// UserHandler serves the /users routes. None of them require a token.
type UserHandler struct {
	ctrl *controller.UserController
}

func NewUserHandler(ctrl *controller.UserController) *UserHandler {
	return &UserHandler{ctrl: ctrl}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := h.ctrl.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.ctrl.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type inviteReq struct {
	Email string `json:"email" binding:"required,email"`
}

// Invite handles POST /users/invite.
func (h *UserHandler) Invite(c *gin.Context) {
	var req inviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	msg, err := h.ctrl.Invite(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Message(c, http.StatusOK, msg)
}
