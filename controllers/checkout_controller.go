package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiwiflowai-ai/totalcare-website/cart"
	"github.com/kiwiflowai-ai/totalcare-website/catalog"
	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/dto"
	"github.com/kiwiflowai-ai/totalcare-website/models"
)

// Checkout turns a submitted cart into an order. Items are re-resolved
// against the live catalog so prices can never be spoofed by the client.
func Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CheckoutDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Merge duplicate ids first so each product yields exactly one
		// line and line quantities always sum to the item total.
		quantities := map[string]int{}
		ordered := make([]string, 0, len(body.Items))
		for _, item := range body.Items {
			if _, seen := quantities[item.ProductID]; !seen {
				ordered = append(ordered, item.ProductID)
			}
			quantities[item.ProductID] += item.Quantity
		}

		ck := cart.New()
		lines := make([]models.OrderLine, 0, len(ordered))
		for _, id := range ordered {
			product, ok := catalog.FetchProduct(ctx, id)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("unknown product %q", id),
				})
				return
			}
			ck.Add(product)
			ck.UpdateQuantity(product.ID, quantities[id])
			lines = append(lines, models.OrderLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				Brand:       product.Brand,
				Price:       product.Price,
				UnitPrice:   catalog.LeadingDollarAmount(product.Price),
				Quantity:    quantities[id],
			})
		}

		order := models.Order{
			Reference:    uuid.NewString(),
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Email:        body.Email,
			Phone:        body.Phone,
			Address:      body.Address,
			Suburb:       body.Suburb,
			Postcode:     body.Postcode,
			PropertyType: body.PropertyType,
			Notes:        body.Notes,
			Lines:        lines,
			TotalItems:   ck.TotalItems(),
			TotalPrice:   ck.TotalPrice(),
			CreatedAt:    time.Now().UTC(),
		}

		if database.Configured() {
			if col, err := database.OpenCollection("orders"); err != nil {
				log.Println("order not persisted:", err)
			} else if res, err := col.InsertOne(ctx, order); err != nil {
				log.Println("order not persisted:", err)
			} else {
				c.JSON(http.StatusCreated, gin.H{
					"orderId":    res.InsertedID,
					"reference":  order.Reference,
					"totalItems": order.TotalItems,
					"totalPrice": order.TotalPrice,
				})
				return
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"reference":  order.Reference,
			"totalItems": order.TotalItems,
			"totalPrice": order.TotalPrice,
		})
	}
}
