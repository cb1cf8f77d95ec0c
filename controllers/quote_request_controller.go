package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiwiflowai-ai/totalcare-website/catalog"
	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/dto"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/kiwiflowai-ai/totalcare-website/utils"
	"github.com/kiwiflowai-ai/totalcare-website/webhook"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateQuoteRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateQuoteRequestDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, ok := catalog.FetchProduct(ctx, body.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		now := time.Now().UTC()
		quote := models.QuoteRequest{
			Name:        body.Name,
			Phone:       body.Phone,
			Location:    body.Location,
			Description: body.Description,
			Product: models.QuoteProduct{
				ProductID: product.ID,
				Name:      product.Name,
				Brand:     product.Brand,
				Series:    product.Series,
				Model:     product.Model,
				Price:     product.Price,
			},
			Status:    models.QuoteStatusNew,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// The quote must reach the sales flow even when the store is down,
		// so persistence failures are logged rather than surfaced.
		if database.Configured() {
			if col, err := database.OpenCollection("quote_requests"); err != nil {
				log.Println("quote request not persisted:", err)
			} else if _, err := col.InsertOne(ctx, quote); err != nil {
				log.Println("quote request not persisted:", err)
			}
		}

		cust := webhook.Customer{
			Name:        body.Name,
			Phone:       body.Phone,
			Location:    body.Location,
			Description: body.Description,
		}
		if err := webhook.Send(ctx, webhook.QuotePayload(product, cust)); err != nil {
			log.Println("quote webhook failed:", err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"ok":          true,
			"whatsappUrl": webhook.WhatsAppLink(product, cust),
		})
	}
}

func GetQuoteRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		col, err := database.OpenCollection("quote_requests")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		maxLimit, defaultLimit := utils.GetDefaultQueryLimits()
		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), defaultLimit)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		filter := bson.M{}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}

		findOpts := options.Find().
			SetSkip(int64((page - 1) * limit)).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, filter, findOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		quotes := make([]models.QuoteRequest, 0)
		if err := cursor.All(ctx, &quotes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": quotes,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

var validQuoteStatuses = map[models.QuoteRequestStatus]bool{
	models.QuoteStatusNew:        true,
	models.QuoteStatusInProgress: true,
	models.QuoteStatusQuoted:     true,
	models.QuoteStatusClosed:     true,
}

func UpdateQuoteStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}

		var body dto.UpdateQuoteStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := models.QuoteRequestStatus(body.Status)
		if !validQuoteStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		col, err := database.OpenCollection("quote_requests")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		now := time.Now().UTC()
		set := bson.M{"status": status, "updatedAt": now}
		if status == models.QuoteStatusQuoted {
			set["quotedAt"] = now
		}

		res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "quote request not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
