package controllers

import (
	"net/http"

	"memorykeeper-backend/config"
	"memorykeeper-backend/models"
	"memorykeeper-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateNotificationEmailsInput defines the expected JSON structure
type UpdateNotificationEmailsInput struct {
	NotificationEmails []string `json:"notificationEmails" binding:"required"`
}

// UpdateNotificationEmails replaces the user's reminder recipient list.
// An empty list falls back to the account email at dispatch time.
func UpdateNotificationEmails(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdateNotificationEmailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	for _, email := range input.NotificationEmails {
		if !utils.ValidateEmail(email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address: "+email)
			return
		}
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user.NotificationEmails = input.NotificationEmails
	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification emails")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notificationEmails": user.NotificationEmails})
}
