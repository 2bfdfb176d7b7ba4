package service

import (
	"context"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// TaskService owns work items.
type TaskService struct {
	repo repository.TasksRepository
}

// NewTaskService builds a new TaskService.
func NewTaskService(repo repository.TasksRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask adds a work item.
func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*entity.Task, error) {
	assigneeID, err := optionalID("assignee_id", req.AssigneeID)
	if err != nil {
		return nil, err
	}
	caseID, err := optionalID("case_id", req.CaseID)
	if err != nil {
		return nil, err
	}
	dueDate, err := optionalDate("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, repository.NewTask{
		Title:      req.Title,
		Details:    optionalString(req.Details),
		AssigneeID: assigneeID,
		CaseID:     caseID,
		DueDate:    dueDate,
	})
}

// GetTask returns one task by id.
func (s *TaskService) GetTask(ctx context.Context, id string) (*entity.Task, error) {
	taskID, err := parseID("task id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, taskID)
}

// ListTasks returns open items first, ordered by due date.
func (s *TaskService) ListTasks(ctx context.Context, filter dto.ListFilter) ([]entity.Task, error) {
	return s.repo.List(ctx, filter)
}

// UpdateTask applies a partial update, including completion toggles.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*entity.Task, error) {
	taskID, err := parseID("task id", id)
	if err != nil {
		return nil, err
	}

	upd := repository.TaskUpdate{
		Title:     req.Title,
		Details:   req.Details,
		Completed: req.Completed,
	}
	if upd.AssigneeID, err = optionalIDPtr("assignee_id", req.AssigneeID); err != nil {
		return nil, err
	}
	if upd.CaseID, err = optionalIDPtr("case_id", req.CaseID); err != nil {
		return nil, err
	}
	if upd.DueDate, err = optionalDatePtr("due_date", req.DueDate); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, taskID, upd)
}

// DeleteTask removes a task by id.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	taskID, err := parseID("task id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, taskID)
}
