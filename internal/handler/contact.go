package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alzin/sham-al-aqar-syria/internal/service"
	"github.com/alzin/sham-al-aqar-syria/pkg/contact"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
)

type ContactHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	SubmitContactRequest(ctx *gin.Context)
}

type ContactHandler struct {
	contactService service.ContactServiceI
}

func NewContactHandler(contactService service.ContactServiceI) ContactHandlerI {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/contact", h.SubmitContactRequest)
}

type ContactRequestBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) SubmitContactRequest(ctx *gin.Context) {
	var request ContactRequestBody
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	id, err := h.contactService.Submit(&contact.ContactRequest{
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Subject: request.Subject,
		Message: request.Message,
	})
	if errors.Is(err, customerror.ErrValidation) {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "name, email and message are required",
		})
		return
	}
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body": gin.H{
			"id": id,
		},
		"error": nil,
	})
}
