package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/service"
)

// TasksHandler exposes work item endpoints.
type TasksHandler struct {
	tasks *service.TaskService
	log   zerolog.Logger
}

// NewTasksHandler constructs a handler instance.
func NewTasksHandler(tasks *service.TaskService, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{tasks: tasks, log: log}
}

// List returns open items first, ordered by due date.
func (h *TasksHandler) List(c echo.Context) error {
	var filter dto.ListFilter
	if err := c.Bind(&filter); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	records, err := h.tasks.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// Get returns one task.
func (h *TasksHandler) Get(c echo.Context) error {
	record, err := h.tasks.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Create adds a work item.
func (h *TasksHandler) Create(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.tasks.CreateTask(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// Update applies a partial task update, including completion toggles.
func (h *TasksHandler) Update(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.tasks.UpdateTask(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Delete removes a task.
func (h *TasksHandler) Delete(c echo.Context) error {
	if err := h.tasks.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}
