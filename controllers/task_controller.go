package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aurora/models"
	"aurora/utils"
)

type TaskController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTaskController(db *gorm.DB, logger *log.Logger) *TaskController {
	return &TaskController{
		DB:     db,
		Logger: logger,
	}
}

type CreateTaskRequest struct {
	Title        string `json:"title" validate:"required,min=1"`
	Description  string `json:"description"`
	Status       string `json:"status" validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
	Priority     string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tag          string `json:"tag"`
	AssignedToID *uint  `json:"assigned_to_id"`
}

// participatingHeadIDs returns the ids of every head whose managed list
// contains the user, in id order so discovery is deterministic.
func (tc *TaskController) participatingHeadIDs(userID uint) ([]uint, error) {
	var headIDs []uint
	err := tc.DB.Model(&models.TeamMember{}).
		Where("member_id = ?", userID).
		Order("owner_id ASC").
		Pluck("owner_id", &headIDs).Error
	return headIDs, err
}

// GetTasks returns every task visible to the caller: tasks scoped to a
// team the caller owns or belongs to, plus legacy tasks keyed directly
// to the caller's id. A single query keeps the union de-duplicated.
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	headIDs, err := tc.participatingHeadIDs(user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to resolve teams", err)
	}
	teamIDs := models.VisibleTeamIDs(user.ID, headIDs)

	var tasks []models.Task
	if err := tc.DB.Preload("AssignedTo").
		Where("team_id IN ? OR creator_id = ?", teamIDs, user.ID).
		Order("created_at DESC, id ASC").
		Find(&tasks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tasks", err)
	}

	return c.JSON(utils.SuccessResponse(tasks))
}

// CreateTask creates a task on the caller's managed team. Members cannot
// create tasks, and a head without a managed team has nowhere to put one.
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	if !models.CanCreateTask(user.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Only team heads can create tasks", nil)
	}

	var input CreateTaskRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	// The managed team materializes when the first member is added;
	// until then there is no team to scope the task to.
	var memberCount int64
	if err := tc.DB.Model(&models.TeamMember{}).
		Where("owner_id = ?", user.ID).
		Count(&memberCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to resolve team", err)
	}
	if memberCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "You need to set up your team first", nil)
	}

	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		Tag:          input.Tag,
		CreatorID:    user.ID,
		TeamID:       &user.ID,
		AssignedToID: input.AssignedToID,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusToDo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if task.Tag == "" {
		task.Tag = "General"
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create task", err)
	}

	tc.recordActivity(user.ID, fmt.Sprintf("%s created task \"%s\"", user.Name, task.Title))

	// Populate the assignee for immediate frontend use
	if err := tc.DB.Preload("AssignedTo").First(&task, task.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load task", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(task))
}

// UpdateTask applies a partial update. Heads and creators may change
// anything; an assignee may change their own task, any field.
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	taskID := c.Params("id")

	var task models.Task
	if err := tc.DB.First(&task, "id = ?", taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Task not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch task", err)
	}

	if !models.CanMutateTask(user, &task) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only update tasks assigned to you", nil)
	}

	var input models.TaskUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if changes := input.Changes(); len(changes) > 0 {
		if err := tc.DB.Model(&task).Updates(changes).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update task", err)
		}
	}

	if err := tc.DB.Preload("AssignedTo").First(&task, task.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load task", err)
	}

	return c.JSON(utils.SuccessResponse(task))
}

// DeleteTask removes a task outright. Only the creator or a head may
// delete; the assignee alone may not.
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	taskID := c.Params("id")

	var task models.Task
	if err := tc.DB.First(&task, "id = ?", taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Task not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch task", err)
	}

	if !models.CanDeleteTask(user, &task) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Only team heads can delete tasks", nil)
	}

	if err := tc.DB.Unscoped().Delete(&task).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete task", err)
	}

	if task.TeamID != nil {
		tc.recordActivity(*task.TeamID, fmt.Sprintf("%s deleted task \"%s\"", user.Name, task.Title))
	}

	return c.JSON(fiber.Map{"id": task.ID})
}

func (tc *TaskController) recordActivity(teamOwnerID uint, text string) {
	activity := models.Activity{TeamOwnerID: teamOwnerID, Text: text}
	if err := tc.DB.Create(&activity).Error; err != nil {
		tc.Logger.Printf("Failed to record activity: %v", err)
	}
}
