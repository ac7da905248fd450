package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/taskforge/go-tasks/middleware"
	"github.com/taskforge/go-tasks/models"
	"github.com/taskforge/go-tasks/repository"
)

// TaskHandler xử lý CRUD task, luôn giới hạn trong phạm vi của caller.
// Danh tính lấy từ middleware, không bao giờ từ payload của client.
// Task không tồn tại và task của người khác đều trả về 404 như nhau.
type TaskHandler struct {
	Tasks repository.TaskRepository
}

const taskNotFoundMsg = "task not found or not owned by user"

// GetAll lấy tất cả task của caller
//
//	@Summary	List the caller's tasks
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200
//	@Router		/tasks [get]
func (h *TaskHandler) GetAll(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	tasks, err := h.Tasks.ListByOwner(ctx, middleware.CallerID(c))
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not list tasks", nil)
	}

	return respond(c, fiber.StatusOK, "tasks retrieved successfully", tasks)
}

// GetByCategory lấy task theo category, so khớp không phân biệt hoa thường
//
//	@Summary	List the caller's tasks in a category
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Param		categoria	path	string	true	"category name (case-insensitive)"
//	@Success	200
//	@Router		/tasks/categoria/{categoria} [get]
func (h *TaskHandler) GetByCategory(c *fiber.Ctx) error {
	category := c.Params("categoria")

	ctx, cancel := requestContext(c)
	defer cancel()

	tasks, err := h.Tasks.ListByOwnerAndCategory(ctx, middleware.CallerID(c), category)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not list tasks", nil)
	}

	message := fmt.Sprintf("tasks in category '%s' retrieved successfully", category)
	return respond(c, fiber.StatusOK, message, tasks)
}

// GetByID lấy một task theo ID
//
//	@Summary	Get one of the caller's tasks
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"task id"
//	@Success	200
//	@Failure	404
//	@Router		/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid task id", nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	task, err := h.Tasks.FindByOwnerAndID(ctx, middleware.CallerID(c), int64(id))
	if errors.Is(err, repository.ErrNotFound) {
		return respond(c, fiber.StatusNotFound, taskNotFoundMsg, nil)
	}
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not fetch task", nil)
	}

	return respond(c, fiber.StatusOK, "task found", task)
}

// Create tạo task mới cho caller
//
//	@Summary	Create a task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		task	body	models.TaskInput	true	"task fields"
//	@Success	201
//	@Failure	400
//	@Router		/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var input models.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	if err := input.Validate(); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// Chủ sở hữu luôn là caller, bất kể client gửi gì trong body
	task, err := h.Tasks.Insert(ctx, middleware.CallerID(c), input)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not create task", nil)
	}

	return respond(c, fiber.StatusCreated, "task created successfully", task)
}

// Update cập nhật một task của caller
//
//	@Summary	Update one of the caller's tasks
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path	int					true	"task id"
//	@Param		task	body	models.TaskInput	true	"task fields"
//	@Success	200
//	@Failure	404
//	@Router		/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid task id", nil)
	}

	var input models.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	if err := input.Validate(); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	task, err := h.Tasks.Update(ctx, middleware.CallerID(c), int64(id), input)
	if errors.Is(err, repository.ErrNotFound) {
		return respond(c, fiber.StatusNotFound, taskNotFoundMsg, nil)
	}
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not update task", nil)
	}

	return respond(c, fiber.StatusOK, "task updated successfully", task)
}

// Delete xóa một task của caller
//
//	@Summary	Delete one of the caller's tasks
//	@Tags		tasks
//	@Security	BearerAuth
//	@Param		id	path	int	true	"task id"
//	@Success	204
//	@Failure	404
//	@Router		/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid task id", nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	err = h.Tasks.Delete(ctx, middleware.CallerID(c), int64(id))
	if errors.Is(err, repository.ErrNotFound) {
		return respond(c, fiber.StatusNotFound, taskNotFoundMsg, nil)
	}
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not delete task", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
