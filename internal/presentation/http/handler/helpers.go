package handler

import (
	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// CurrentUser extracts the authenticated account from the Gin context
func CurrentUser(c *gin.Context) *entity.User {
	userVal, exists := c.Get("current_user")
	if !exists {
		return nil
	}
	user, ok := userVal.(*entity.User)
	if !ok {
		return nil
	}
	return user
}

// IsAdmin checks if the authenticated account has the admin role
func IsAdmin(c *gin.Context) bool {
	user := CurrentUser(c)
	return user != nil && user.IsAdmin()
}
