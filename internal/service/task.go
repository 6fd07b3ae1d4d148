package service

import (
	"context"

	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
	"github.com/esneiderbravo/crehana-tasks/internal/models"
)

// TaskService issues the task queries and mutations.
type TaskService struct {
	gql *graphql.Client
}

func NewTaskService(gql *graphql.Client) *TaskService {
	return &TaskService{gql: gql}
}

const createTaskDoc = `
mutation CreateTask($title: String!, $priority: TaskPriority!, $status: TaskStatus!, $completedPercentage: Int, $taskListId: UUID!) {
  createTask(input: {
    task: {
      title: $title
      priority: $priority
      status: $status
      completedPercentage: $completedPercentage
      taskListId: $taskListId
    }
  }) {
    task {
      id
      title
      priority
      status
      completedPercentage
      createdAt
    }
  }
}`

func (s *TaskService) Create(ctx context.Context, in models.TaskInput) (*graphql.Response, error) {
	in.ApplyDefaults()
	return s.gql.Execute(ctx, createTaskDoc, map[string]interface{}{
		"title":               in.Title,
		"priority":            in.Priority,
		"status":              in.Status,
		"completedPercentage": in.CompletedPercentage,
		"taskListId":          in.TaskListID,
	})
}

const taskByIDDoc = `
query FetchTaskById($id: UUID!) {
  taskById(id: $id) {
    id
    title
    priority
    status
    completedPercentage
    createdAt
  }
}`

func (s *TaskService) GetByID(ctx context.Context, id string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, taskByIDDoc, map[string]interface{}{"id": id})
}

const updateTaskDoc = `
mutation UpdateTask($id: UUID!, $title: String!, $priority: TaskPriority!, $status: TaskStatus!, $completedPercentage: Int) {
  updateTaskById(input: {
    id: $id
    taskPatch: {
      title: $title
      priority: $priority
      status: $status
      completedPercentage: $completedPercentage
    }
  }) {
    task {
      id
      title
      priority
      status
      completedPercentage
      createdAt
    }
  }
}`

// Update writes the full patch. Whatever the input does not carry is sent
// with its default value, so omitted fields overwrite stored ones.
func (s *TaskService) Update(ctx context.Context, id string, in models.TaskInput) (*graphql.Response, error) {
	in.ApplyDefaults()
	return s.gql.Execute(ctx, updateTaskDoc, map[string]interface{}{
		"id":                  id,
		"title":               in.Title,
		"priority":            in.Priority,
		"status":              in.Status,
		"completedPercentage": in.CompletedPercentage,
	})
}

const deleteTaskDoc = `
mutation DeleteTask($id: UUID!) {
  deleteTaskById(input: { id: $id }) {
    deletedTaskId
  }
}`

func (s *TaskService) Delete(ctx context.Context, id string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, deleteTaskDoc, map[string]interface{}{"id": id})
}

const assignTaskDoc = `
mutation CreateAssignedTask($taskId: UUID!, $userId: UUID!) {
  createAssignedTask(input: { assignedTask: { taskId: $taskId, userId: $userId } }) {
    assignedTask {
      taskByTaskId {
        id
        title
        priority
        status
        completedPercentage
        createdAt
      }
    }
  }
}`

// AssignToUser creates the assigned_task join record and selects the task
// nested inside the mutation's echo.
func (s *TaskService) AssignToUser(ctx context.Context, taskID, userID string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, assignTaskDoc, map[string]interface{}{
		"taskId": taskID,
		"userId": userID,
	})
}
