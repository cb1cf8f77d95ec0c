package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiwiflowai-ai/totalcare-website/catalog"
	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/dto"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/kiwiflowai-ai/totalcare-website/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		search := c.Query("search")
		if search == "" {
			search = c.Query("q")
		}

		query := catalog.Query{
			Category:   strings.TrimSpace(c.Query("category")),
			Search:     strings.TrimSpace(search),
			Brand:      strings.TrimSpace(c.Query("brand")),
			Series:     strings.TrimSpace(c.Query("series")),
			PriceRange: strings.TrimSpace(c.Query("priceRange")),
			SortBy:     strings.TrimSpace(c.Query("sort")),
		}

		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 0)
		if page < 1 {
			page = 1
		}
		maxLimit, _ := utils.GetDefaultQueryLimits()
		if limit > maxLimit {
			limit = maxLimit
		}

		products := query.Apply(catalog.FetchCatalog(ctx))
		total := len(products)

		// The products page renders the whole catalog at once, so paging only
		// kicks in when the client asks for it.
		if limit > 0 {
			start := (page - 1) * limit
			if start > total {
				start = total
			}
			end := start + limit
			if end > total {
				end = total
			}
			products = products[start:end]
		}

		c.JSON(http.StatusOK, gin.H{
			"items":    products,
			"page":     page,
			"limit":    limit,
			"total":    total,
			"category": query.Category,
			"sort":     query.SortBy,
			"ts":       time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, ok := catalog.FetchProduct(c.Request.Context(), id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func GetFacets() gin.HandlerFunc {
	return func(c *gin.Context) {
		products := catalog.FetchCatalog(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"brands":       catalog.Brands(products),
			"series":       catalog.Series(products),
			"priceBuckets": catalog.PriceBuckets(),
		})
	}
}

// StreamProductUpdates pushes the product's current state and then every
// later change as server-sent events, so an open product modal never shows
// stale pricing. Requires a configured remote store.
func StreamProductUpdates() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, ok := catalog.FetchProduct(c.Request.Context(), id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		watcher, err := catalog.WatchProduct(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live updates unavailable"})
			return
		}
		defer watcher.Close()

		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		c.SSEvent("product", product)
		c.Writer.Flush()

		c.Stream(func(w io.Writer) bool {
			select {
			case fields, open := <-watcher.Updates():
				if !open {
					return false
				}
				catalog.ApplyPatch(&product, fields)
				c.SSEvent("product", product)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}

func AddProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		collection, err := database.OpenCollection("products")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog store unavailable"})
			return
		}

		jsonData := c.PostForm("data")
		if jsonData == "" {
			c.JSON(400, gin.H{"error": "missing data"})
			return
		}

		var dto dto.CreateProductDTO
		if err := json.Unmarshal([]byte(jsonData), &dto); err != nil {
			c.JSON(400, gin.H{"error": "invalid data json"})
			return
		}

		id := utils.ProductID(dto.Name, dto.Model)

		image := ""
		if cover, err := c.FormFile("cover"); err == nil && cover != nil {
			GCSClient, bucket, err := utils.NewGCSClient(c)
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to create GCS client"})
				return
			}
			image, err = utils.UploadCoverImageToGCS(c.Request.Context(), GCSClient, bucket, id, cover)
			if err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
		}

		now := time.Now().UTC()
		product := bson.M{
			"_id":              id,
			"name":             dto.Name,
			"brand":            dto.Brand,
			"model":            dto.Model,
			"price":            dto.Price,
			"description":      dto.Description,
			"promotions":       dto.Promotions,
			"cooling_capacity": dto.CoolingCapacity,
			"heating_capacity": dto.HeatingCapacity,
			"has_wifi":         dto.HasWifi,
			"series":           dto.Series,
			"image":            image,
			"product_images":   dto.ProductImages,
			"created_at":       now,
			"updated_at":       now,
		}

		_, err = collection.InsertOne(c.Request.Context(), product)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(409, gin.H{
					"error": "product id already exists",
					"field": "id",
				})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, gin.H{"id": id})
	}
}

func UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		collection, err := database.OpenCollection("products")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog store unavailable"})
			return
		}

		var dto dto.UpdateProductDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{}
		if dto.Name != nil {
			set["name"] = *dto.Name
		}
		if dto.Brand != nil {
			set["brand"] = *dto.Brand
		}
		if dto.Model != nil {
			set["model"] = *dto.Model
		}
		if dto.Price != nil {
			set["price"] = *dto.Price
		}
		if dto.Description != nil {
			set["description"] = *dto.Description
		}
		if dto.Promotions != nil {
			set["promotions"] = *dto.Promotions
		}
		if dto.CoolingCapacity != nil {
			set["cooling_capacity"] = *dto.CoolingCapacity
		}
		if dto.HeatingCapacity != nil {
			set["heating_capacity"] = *dto.HeatingCapacity
		}
		if dto.HasWifi != nil {
			set["has_wifi"] = *dto.HasWifi
		}
		if dto.Series != nil {
			set["series"] = *dto.Series
		}
		if dto.Image != nil {
			set["image"] = *dto.Image
		}
		if dto.ProductImages != nil {
			set["product_images"] = *dto.ProductImages
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}
		set["updated_at"] = time.Now().UTC()

		res, err := collection.UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		ctx := c.Request.Context()

		collection, err := database.OpenCollection("products")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog store unavailable"})
			return
		}

		var product models.Product
		if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		if _, err := collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Best effort cleanup of an uploaded cover. Inline and fallback
		// images are not objects of ours.
		if product.Image != "" && !strings.HasPrefix(product.Image, catalog.InlineImagePrefix) {
			if GCSClient, bucket, err := utils.NewGCSClient(c); err == nil {
				if objName, err := utils.ObjectNameFromGCSPublicURL(bucket, product.Image); err == nil {
					if err := utils.DeleteGCSObjects(ctx, GCSClient, bucket, []string{objName}); err != nil {
						log.Println("cover cleanup failed:", err)
					}
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
