package controller

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/esneiderbravo/crehana-tasks/internal/models"
	"github.com/esneiderbravo/crehana-tasks/internal/service"
)

// TaskController handles task orchestration.
type TaskController struct {
	tasks *service.TaskService
}

func NewTaskController(tasks *service.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

// validate runs the existence read for a task id.
func (c *TaskController) validate(ctx context.Context, id string) (*models.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &NotFoundError{Msg: "Task not found or invalid ID."}
	}

	resp, err := c.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &NotFoundError{Msg: "Task not found or invalid ID."}
	}

	var payload struct {
		Task *models.Task `json:"taskById"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.Task == nil {
		return nil, &NotFoundError{Msg: "Task not found."}
	}
	return payload.Task, nil
}

// Create creates a task. The owning list's existence is not verified first;
// a dangling task_list_id comes back as a backend error.
func (c *TaskController) Create(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	resp, err := c.tasks.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		CreateTask struct {
			Task *models.Task `json:"task"`
		} `json:"createTask"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.CreateTask.Task == nil {
		return nil, errors.New("createTask returned no task")
	}
	return payload.CreateTask.Task, nil
}

// GetByID returns the task, reusing the existence read's result.
func (c *TaskController) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return c.validate(ctx, id)
}

// Update validates the task exists, then forwards exactly the given fields.
// Fields the caller left unset go out with their defaults and overwrite the
// stored values; there is no server-side merge.
func (c *TaskController) Update(ctx context.Context, id string, in models.TaskInput) (*models.Task, error) {
	if _, err := c.validate(ctx, id); err != nil {
		return nil, err
	}
	return c.update(ctx, id, in)
}

// UpdateStatus mutates only the status field of the freshly-read record and
// writes the full merged record back.
func (c *TaskController) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	task, err := c.validate(ctx, id)
	if err != nil {
		return nil, err
	}

	in := models.TaskInput{
		Title:    task.Title,
		Priority: task.Priority,
		Status:   status,
	}
	if task.CompletedPercentage != nil {
		in.CompletedPercentage = *task.CompletedPercentage
	}
	return c.update(ctx, id, in)
}

func (c *TaskController) update(ctx context.Context, id string, in models.TaskInput) (*models.Task, error) {
	resp, err := c.tasks.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		UpdateTaskByID struct {
			Task *models.Task `json:"task"`
		} `json:"updateTaskById"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.UpdateTaskByID.Task == nil {
		return nil, errors.New("updateTaskById returned no task")
	}
	return payload.UpdateTaskByID.Task, nil
}

// Delete removes a task after validating it exists.
func (c *TaskController) Delete(ctx context.Context, id string) error {
	if _, err := c.validate(ctx, id); err != nil {
		return err
	}

	resp, err := c.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if resp.HasErrors() {
		return &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		DeleteTaskByID struct {
			DeletedTaskID string `json:"deletedTaskId"`
		} `json:"deleteTaskById"`
	}
	if err := decode(resp, &payload); err != nil {
		return err
	}
	if payload.DeleteTaskByID.DeletedTaskID == "" {
		return &NotFoundError{Msg: "Task not found or already deleted."}
	}
	return nil
}

// AssignToUser creates the task/user join record and returns the task shape
// echoed inside the mutation result. Only the task side is validated; an
// unknown user id surfaces as a backend error.
func (c *TaskController) AssignToUser(ctx context.Context, taskID, userID string) (*models.Task, error) {
	if _, err := c.validate(ctx, taskID); err != nil {
		return nil, err
	}

	resp, err := c.tasks.AssignToUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		CreateAssignedTask struct {
			AssignedTask struct {
				Task *models.Task `json:"taskByTaskId"`
			} `json:"assignedTask"`
		} `json:"createAssignedTask"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.CreateAssignedTask.AssignedTask.Task == nil {
		return nil, errors.New("createAssignedTask returned no task")
	}
	return payload.CreateAssignedTask.AssignedTask.Task, nil
}
