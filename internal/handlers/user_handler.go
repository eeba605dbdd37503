package handlers

import (
	"strconv"

	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllUsers godoc
// @Summary Get all users
// @Description Get the list of all collection owners
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of users"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	ctx := c.Context()

	users, err := h.service.GetAllUsers(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get users")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// GetUserByID godoc
// @Summary Get user by ID
// @Description Get a single user by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "User details"
// @Failure 400 {object} utils.StandardResponse "Invalid user ID"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.service.GetUserByID(ctx, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", user)
}

// CreateUser godoc
// @Summary Create a new user
// @Description Create a new collection owner
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User request object"
// @Success 201 {object} utils.StandardResponse "User created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	ctx := c.Context()

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Name is required")
	}

	user, err := h.service.CreateUser(ctx, req.Name)
	if err != nil {
		logServiceError(h.logger, err, logrus.Fields{"name": req.Name}, "Failed to create user")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User created successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user together with their movies and reviews
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "User deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid user ID"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.service.DeleteUser(ctx, uint(id)); err != nil {
		logServiceError(h.logger, err, logrus.Fields{"id": id}, "Failed to delete user")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User deleted successfully", nil)
}
