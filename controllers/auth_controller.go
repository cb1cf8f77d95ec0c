package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/dto"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/kiwiflowai-ai/totalcare-website/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usersCol, err := database.OpenCollection("users")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		var user models.User
		if err := usersCol.FindOne(c, bson.M{"email": body.Email}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if err := utils.CheckPassword(user.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		accessToken, _ := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), utils.AccessTTL())
		refreshToken, _ := utils.GenerateRefreshToken(user.ID.Hex())

		refreshTokensCol, err := database.OpenCollection("refresh_tokens")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}
		result, err := refreshTokensCol.InsertOne(c, models.RefreshToken{
			UserID:    user.ID,
			TokenHash: refreshToken,
			ExpiresAt: time.Now().Add(utils.RefreshTTL()),
			CreatedAt: time.Now(),
			RevokedAt: nil,
		})
		if result == nil || result.InsertedID == nil || err != nil {
			log.Print("Connection failed ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "connection failed"})
			return
		}
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "refreshToken",
			Value:    refreshToken,
			Path:     "/auth/refresh",
			MaxAge:   int(utils.RefreshTTL().Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode, // for cross-site
		})
		c.JSON(http.StatusOK, gin.H{
			"access_token": accessToken,
		})
	}
}

func Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usersCol, err := database.OpenCollection("users")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}
		refreshCol, err := database.OpenCollection("refresh_tokens")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		hash, err := c.Cookie("refreshToken")
		if err != nil || hash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing refresh token"})
			return
		}
		var rt models.RefreshToken
		err = refreshCol.FindOne(ctx, bson.M{
			"tokenHash": hash,
			"revokedAt": bson.M{"$exists": false},
			"expiresAt": bson.M{"$gt": time.Now().UTC()},
		}).Decode(&rt)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		var user models.User
		if err := usersCol.FindOne(ctx, bson.M{"_id": rt.UserID}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		accessTTL := utils.AccessTTL()
		refreshTTL := utils.RefreshTTL()

		// Rotate refresh token
		newHash, err := utils.GenerateRefreshToken(user.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
			return
		}

		now := time.Now().UTC()

		_, err = refreshCol.UpdateByID(ctx, rt.ID, bson.M{
			"$set": bson.M{
				"revokedAt": now,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke refresh token"})
			return
		}

		// Insert new token
		_, err = refreshCol.InsertOne(ctx, models.RefreshToken{
			UserID:    user.ID,
			TokenHash: newHash,
			ExpiresAt: now.Add(refreshTTL),
			CreatedAt: now,
		})

		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store refresh token"})
			return
		}

		accessToken, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), accessTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		hash, _ := c.Cookie("refreshToken")
		utils.ClearRefreshCookie(c)

		// best effort revoke
		if hash != "" {
			if refreshCol, err := database.OpenCollection("refresh_tokens"); err == nil {
				now := time.Now().UTC()
				_, _ = refreshCol.UpdateOne(ctx, bson.M{
					"tokenHash": hash,
					"revokedAt": bson.M{"$exists": false},
				}, bson.M{
					"$set": bson.M{"revokedAt": now},
				})
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
