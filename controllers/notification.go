package controllers

import (
	"errors"
	"net/http"

	"memorykeeper-backend/config"
	"memorykeeper-backend/models"
	"memorykeeper-backend/services"
	"memorykeeper-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetNotifications retrieves the user's notification audit log, newest first
func GetNotifications(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var logs []models.NotificationLog
	if err := config.DB.Where("user_id = ?", userUUID).
		Order("sent_at DESC").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// RunDueReminders triggers a reminder tick on demand. It runs the exact
// code path the daily cron job runs, for today's date.
func RunDueReminders(reminderService *services.ReminderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		report, err := reminderService.RunDailyTick(utils.Today())
		if err != nil {
			if errors.Is(err, services.ErrTickInProgress) {
				utils.RespondWithError(c, http.StatusConflict, "A reminder tick is already running")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Tick failed: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
