package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwiflowai-ai/totalcare-website/dto"
	"github.com/kiwiflowai-ai/totalcare-website/webhook"
)

// Contact forwards the contact page form to the automation hook. Nothing is
// stored locally, the hook owns the follow up.
func Contact() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ContactDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cust := webhook.Customer{
			Name:        body.Name,
			Phone:       body.Phone,
			Email:       body.Email,
			Description: body.Message,
		}
		if err := webhook.Send(c.Request.Context(), webhook.ContactPayload(cust)); err != nil {
			log.Println("contact webhook failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to deliver message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}

func ServiceInquiry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ServiceInquiryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cust := webhook.Customer{
			Name:        body.Name,
			Phone:       body.Phone,
			Email:       body.Email,
			ServiceType: body.Service,
			Description: body.Message,
		}
		if err := webhook.Send(c.Request.Context(), webhook.ServiceInquiryPayload(cust)); err != nil {
			log.Println("service inquiry webhook failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to deliver message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}
