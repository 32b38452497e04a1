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

// CreateMemoryInput defines the expected JSON structure
type CreateMemoryInput struct {
	PersonID   *uuid.UUID `json:"personId"`
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content"`
	HappenedOn string     `json:"happenedOn"`
}

// UpdateMemoryInput defines the expected JSON structure
type UpdateMemoryInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	HappenedOn *string `json:"happenedOn"`
}

// CreateMemory creates a new memory for the authenticated user
func CreateMemory(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateMemoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.HappenedOn != "" {
		if _, err := utils.ParseCalendarDate(input.HappenedOn); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	// A memory may reference one of the user's people, but only theirs
	if input.PersonID != nil {
		var person models.Person
		if err := config.DB.Where("user_id = ? AND id = ?", userUUID, *input.PersonID).
			First(&person).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Person not found")
			return
		}
	}

	memory := models.Memory{
		UserID:     userUUID,
		PersonID:   input.PersonID,
		Title:      input.Title,
		Content:    input.Content,
		HappenedOn: input.HappenedOn,
	}

	if err := config.DB.Create(&memory).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create memory")
		return
	}

	c.JSON(http.StatusCreated, memory)
}

// GetMemories retrieves the user's memories, optionally filtered by person
func GetMemories(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", userUUID)
	if personID := c.Query("personId"); personID != "" {
		personUUID, err := uuid.Parse(personID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid person ID format")
			return
		}
		query = query.Where("person_id = ?", personUUID)
	}

	var memories []models.Memory
	if err := query.Order("happened_on DESC").Find(&memories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memories")
		return
	}

	c.JSON(http.StatusOK, memories)
}

// GetMemory retrieves a specific memory by ID
func GetMemory(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	memoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid memory ID format")
		return
	}

	var memory models.Memory
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, memoryUUID).
		First(&memory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Memory not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, memory)
}

// UpdateMemory updates an existing memory
func UpdateMemory(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	memoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid memory ID format")
		return
	}

	var input UpdateMemoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var memory models.Memory
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, memoryUUID).
		First(&memory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Memory not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		memory.Title = *input.Title
	}
	if input.Content != nil {
		memory.Content = *input.Content
	}
	if input.HappenedOn != nil {
		if *input.HappenedOn != "" {
			if _, err := utils.ParseCalendarDate(*input.HappenedOn); err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
				return
			}
		}
		memory.HappenedOn = *input.HappenedOn
	}

	if err := config.DB.Save(&memory).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update memory")
		return
	}

	c.JSON(http.StatusOK, memory)
}

// DeleteMemory deletes a memory
func DeleteMemory(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	memoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid memory ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, memoryUUID).
		Delete(&models.Memory{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete memory")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Memory not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Memory deleted successfully"})
}
