// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"

	"memorykeeper-backend/config"
	"memorykeeper-backend/models"
	"memorykeeper-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReminderInput defines the expected JSON structure
type CreateReminderInput struct {
	PersonID          *uuid.UUID `json:"personId"`
	Type              string     `json:"type" binding:"required,oneof=birthday anniversary custom"`
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	AnchorDate        string     `json:"anchorDate" binding:"required"`
	AdvanceNoticeDays int        `json:"advanceNoticeDays" binding:"gte=0"`
	IsRecurring       bool       `json:"isRecurring"`
}

// UpdateReminderInput defines the expected JSON structure
type UpdateReminderInput struct {
	Type              *string `json:"type" binding:"omitempty,oneof=birthday anniversary custom"`
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	AnchorDate        *string `json:"anchorDate"`
	AdvanceNoticeDays *int    `json:"advanceNoticeDays" binding:"omitempty,gte=0"`
	IsRecurring       *bool   `json:"isRecurring"`
	IsActive          *bool   `json:"isActive"`
}

// CreateReminder creates a new reminder
func CreateReminder(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := utils.ParseCalendarDate(input.AnchorDate); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid anchor date, expected YYYY-MM-DD")
		return
	}

	if input.PersonID != nil {
		var person models.Person
		if err := config.DB.Where("user_id = ? AND id = ?", userUUID, *input.PersonID).
			First(&person).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Person not found")
			return
		}
	}

	reminder := models.Reminder{
		UserID:            userUUID,
		PersonID:          input.PersonID,
		Type:              input.Type,
		Title:             input.Title,
		Description:       input.Description,
		AnchorDate:        input.AnchorDate,
		AdvanceNoticeDays: input.AdvanceNoticeDays,
		IsRecurring:       input.IsRecurring,
		IsActive:          true,
	}

	if err := config.DB.Create(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// GetReminders retrieves all reminders for the authenticated user
func GetReminders(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var reminders []models.Reminder
	if err := config.DB.Preload("Person").Where("user_id = ?", userUUID).
		Find(&reminders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// GetReminder retrieves a specific reminder by ID
func GetReminder(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var reminder models.Reminder
	if err := config.DB.Preload("Person").Where("user_id = ? AND id = ?", userUUID, reminderUUID).
		First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// UpdateReminder updates an existing reminder
func UpdateReminder(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var input UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var reminder models.Reminder
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, reminderUUID).
		First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type != nil {
		reminder.Type = *input.Type
	}
	if input.Title != nil {
		reminder.Title = *input.Title
	}
	if input.Description != nil {
		reminder.Description = *input.Description
	}
	if input.AnchorDate != nil {
		if _, err := utils.ParseCalendarDate(*input.AnchorDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid anchor date, expected YYYY-MM-DD")
			return
		}
		reminder.AnchorDate = *input.AnchorDate
	}
	if input.AdvanceNoticeDays != nil {
		reminder.AdvanceNoticeDays = *input.AdvanceNoticeDays
	}
	if input.IsRecurring != nil {
		reminder.IsRecurring = *input.IsRecurring
	}
	if input.IsActive != nil {
		reminder.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder deletes a reminder
func DeleteReminder(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, reminderUUID).
		Delete(&models.Reminder{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
