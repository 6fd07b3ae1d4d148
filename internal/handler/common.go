package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esneiderbravo/crehana-tasks/internal/controller"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

// respondError maps a domain outcome to an HTTP status and a {"detail": ...}
// body. Anything unrecognized (transport failures included) is a 500; the
// underlying error goes to the request log, not to the client.
func respondError(c *gin.Context, err error) {
	var nf *controller.NotFoundError
	var be *controller.BackendError

	switch {
	case errors.As(err, &nf):
		util.Detail(c, http.StatusNotFound, nf.Msg)
	case errors.As(err, &be):
		util.Detail(c, http.StatusBadRequest, be.Errors)
	case errors.Is(err, controller.ErrDuplicateEmail):
		util.Detail(c, http.StatusBadRequest, "Email is already registered.")
	case errors.Is(err, controller.ErrInvalidCredentials):
		util.Detail(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		_ = c.Error(err)
		util.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
