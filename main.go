package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kiwiflowai-ai/totalcare-website/controllers"
	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/middleware"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/kiwiflowai-ai/totalcare-website/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Seeding admin user. The site serves its static catalog without a
	// store, so a missing database only disables the admin surface.
	if database.Configured() {
		ctx := context.Background()
		usersCol, err := database.OpenCollection("users")
		if err != nil {
			log.Println("admin seed skipped:", err)
		} else if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
			log.Println("admin seed failed:", err)
		}
	} else {
		log.Println("MONGODB_URI not set, serving static catalog only")
	}

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	log.Printf("Env config origins list: %q", origins)
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	r.GET("/products", controllers.GetProducts())
	r.GET("/products/:id", controllers.GetProduct())
	r.GET("/products/:id/updates", controllers.StreamProductUpdates())
	r.GET("/facets", controllers.GetFacets())

	r.POST("/quote-requests", controllers.CreateQuoteRequest())
	r.POST("/contact", controllers.Contact())
	r.POST("/service-inquiries", controllers.ServiceInquiry())
	r.POST("/checkout", controllers.Checkout())

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(string(models.RoleAdmin)))
	{
		admin.POST("/products", controllers.AddProduct())
		admin.PATCH("/products/:id", controllers.UpdateProduct())
		admin.DELETE("/products/:id", controllers.DeleteProduct())

		admin.GET("/quote-requests", controllers.GetQuoteRequests())
		admin.PATCH("/quote-requests/:id/status", controllers.UpdateQuoteStatus())
	}

	// Server will listen on 0.0.0.0:8080 unless PORT overrides it
	r.Run()
}
