package controller

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/esneiderbravo/crehana-tasks/internal/models"
	"github.com/esneiderbravo/crehana-tasks/internal/service"
)

// TaskListController handles task-list orchestration.
type TaskListController struct {
	lists *service.TaskListService
}

func NewTaskListController(lists *service.TaskListService) *TaskListController {
	return &TaskListController{lists: lists}
}

// validate runs the existence read. Ids that cannot be UUIDs, backend
// errors on the read and null results all surface as NotFound, so no
// mutation is ever issued against a missing list.
func (c *TaskListController) validate(ctx context.Context, id string) (*models.TaskList, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &NotFoundError{Msg: "Task list not found or invalid ID."}
	}

	resp, err := c.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &NotFoundError{Msg: "Task list not found or invalid ID."}
	}

	var payload struct {
		TaskList *models.TaskList `json:"taskListById"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.TaskList == nil {
		return nil, &NotFoundError{Msg: "Task list not found."}
	}
	return payload.TaskList, nil
}

// Create creates a task list. Name validation (non-empty after trim) is the
// caller boundary's job.
func (c *TaskListController) Create(ctx context.Context, name string) (*models.TaskList, error) {
	resp, err := c.lists.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		CreateTaskList struct {
			TaskList *models.TaskList `json:"taskList"`
		} `json:"createTaskList"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.CreateTaskList.TaskList == nil {
		return nil, errors.New("createTaskList returned no task list")
	}
	return payload.CreateTaskList.TaskList, nil
}

// GetByID returns the task list, reusing the existence read's result.
func (c *TaskListController) GetByID(ctx context.Context, id string) (*models.TaskList, error) {
	return c.validate(ctx, id)
}

// Update renames a task list after validating it exists.
func (c *TaskListController) Update(ctx context.Context, id, name string) (*models.TaskList, error) {
	if _, err := c.validate(ctx, id); err != nil {
		return nil, err
	}

	resp, err := c.lists.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		UpdateTaskListByID struct {
			TaskList *models.TaskList `json:"taskList"`
		} `json:"updateTaskListById"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.UpdateTaskListByID.TaskList == nil {
		return nil, errors.New("updateTaskListById returned no task list")
	}
	return payload.UpdateTaskListByID.TaskList, nil
}

// Delete removes a task list after validating it exists. The backend
// reporting an empty deleted id (e.g. a concurrent delete won) is NotFound.
func (c *TaskListController) Delete(ctx context.Context, id string) error {
	if _, err := c.validate(ctx, id); err != nil {
		return err
	}

	resp, err := c.lists.Delete(ctx, id)
	if err != nil {
		return err
	}
	if resp.HasErrors() {
		return &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		DeleteTaskListByID struct {
			DeletedTaskListID string `json:"deletedTaskListId"`
		} `json:"deleteTaskListById"`
	}
	if err := decode(resp, &payload); err != nil {
		return err
	}
	if payload.DeleteTaskListByID.DeletedTaskListID == "" {
		return &NotFoundError{Msg: "Task list not found or already deleted."}
	}
	return nil
}

// GetWithTasks returns the task list with its tasks nested.
func (c *TaskListController) GetWithTasks(ctx context.Context, id string) (*models.TaskListWithTasks, error) {
	if _, err := c.validate(ctx, id); err != nil {
		return nil, err
	}

	resp, err := c.lists.GetWithTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		TaskList *models.TaskListWithTasks `json:"taskListById"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.TaskList == nil {
		return nil, &NotFoundError{Msg: "Task list not found."}
	}
	return payload.TaskList, nil
}

// TasksFiltered returns the list's tasks matching the optional priority and
// status filters.
func (c *TaskListController) TasksFiltered(ctx context.Context, id, priority, status string) ([]models.Task, error) {
	if _, err := c.validate(ctx, id); err != nil {
		return nil, err
	}

	resp, err := c.lists.TasksFiltered(ctx, id, priority, status)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		AllTasks struct {
			Nodes []models.Task `json:"nodes"`
		} `json:"allTasks"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.AllTasks.Nodes == nil {
		return []models.Task{}, nil
	}
	return payload.AllTasks.Nodes, nil
}
