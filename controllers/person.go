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

// CreatePersonInput defines the expected JSON structure
type CreatePersonInput struct {
	Name         string `json:"name" binding:"required"`
	Relationship string `json:"relationship"`
	Birthday     string `json:"birthday"`
	Notes        string `json:"notes"`
}

// UpdatePersonInput defines the expected JSON structure
type UpdatePersonInput struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Birthday     *string `json:"birthday"`
	Notes        *string `json:"notes"`
}

// CreatePerson creates a new person for the authenticated user
func CreatePerson(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreatePersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Birthday != "" {
		if _, err := utils.ParseCalendarDate(input.Birthday); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid birthday, expected YYYY-MM-DD")
			return
		}
	}

	person := models.Person{
		UserID:       userUUID,
		Name:         input.Name,
		Relationship: input.Relationship,
		Birthday:     input.Birthday,
		Notes:        input.Notes,
	}

	if err := config.DB.Create(&person).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create person")
		return
	}

	c.JSON(http.StatusCreated, person)
}

// GetPeople retrieves all people owned by the authenticated user
func GetPeople(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var people []models.Person
	if err := config.DB.Where("user_id = ?", userUUID).Find(&people).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve people")
		return
	}

	c.JSON(http.StatusOK, people)
}

// GetPerson retrieves a specific person by ID
func GetPerson(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	personUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	var person models.Person
	if err := config.DB.Preload("Memories").Where("user_id = ? AND id = ?", userUUID, personUUID).
		First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Person not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdatePerson updates an existing person
func UpdatePerson(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	personUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	var input UpdatePersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var person models.Person
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, personUUID).
		First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Person not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		person.Name = *input.Name
	}
	if input.Relationship != nil {
		person.Relationship = *input.Relationship
	}
	if input.Birthday != nil {
		if *input.Birthday != "" {
			if _, err := utils.ParseCalendarDate(*input.Birthday); err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid birthday, expected YYYY-MM-DD")
				return
			}
		}
		person.Birthday = *input.Birthday
	}
	if input.Notes != nil {
		person.Notes = *input.Notes
	}

	if err := config.DB.Save(&person).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson deletes a person
func DeletePerson(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	personUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, personUUID).
		Delete(&models.Person{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete person")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Person not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
}
