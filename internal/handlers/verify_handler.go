package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobport/internal/models"
	"jobport/internal/services"
)

type VerifyHandler struct {
	verify services.VerifyService
}

func NewVerifyHandler(verify services.VerifyService) *VerifyHandler {
	return &VerifyHandler{verify: verify}
}

// @Summary      Send verification code
// @Description  Emails a one-time code to the authenticated business account and returns the session id
// @Tags         Verify
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.SendVerifyRequest  true  "Contact channel"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /business/verify/send [post]
func (h *VerifyHandler) Send(c *gin.Context) {
	var req models.SendVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	sessionID, err := h.verify.SendVerifyEmail(businessID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, services.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already verified"})
		case errors.Is(err, services.ErrBlocked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Too many attempts, please wait before retrying"})
		case errors.Is(err, services.ErrSendFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to send verification email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "send failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent", "session_id": sessionID})
}

// @Summary      Confirm verification code
// @Description  Checks the submitted code against the pending session. The fifth wrong guess blocks the address.
// @Tags         Verify
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.ConfirmCodeRequest  true  "Session id and code"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /business/verify/confirm [post]
func (h *VerifyHandler) Confirm(c *gin.Context) {
	var req models.ConfirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	if err := h.verify.ConfirmCode(businessID, req.SessionID, req.Code); err != nil {
		switch {
		case errors.Is(err, services.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, services.ErrBlocked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Too many attempts, please wait before retrying"})
		case errors.Is(err, services.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Code not found or expired"})
		case errors.Is(err, services.ErrCodeIncorrect):
			c.JSON(http.StatusNotFound, gin.H{"error": "Incorrect code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "confirmation failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}
