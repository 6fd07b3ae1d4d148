// Package service builds the GraphQL documents for each domain operation,
// binds their variables and executes them through the mediator. Envelope
// interpretation happens one layer up, in the controllers.
package service

import (
	"context"
	"strings"

	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
)

// TaskListService issues the task-list queries and mutations.
type TaskListService struct {
	gql *graphql.Client
}

func NewTaskListService(gql *graphql.Client) *TaskListService {
	return &TaskListService{gql: gql}
}

const createTaskListDoc = `
mutation CreateTaskList($name: String!) {
  createTaskList(input: { taskList: { name: $name } }) {
    taskList {
      id
      name
      createdAt
    }
  }
}`

func (s *TaskListService) Create(ctx context.Context, name string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, createTaskListDoc, map[string]interface{}{"name": name})
}

const taskListByIDDoc = `
query FetchTaskListById($id: UUID!) {
  taskListById(id: $id) {
    id
    name
    createdAt
  }
}`

func (s *TaskListService) GetByID(ctx context.Context, id string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, taskListByIDDoc, map[string]interface{}{"id": id})
}

const updateTaskListDoc = `
mutation UpdateTaskList($id: UUID!, $name: String!) {
  updateTaskListById(input: { id: $id, taskListPatch: { name: $name } }) {
    taskList {
      id
      name
      createdAt
    }
  }
}`

func (s *TaskListService) Update(ctx context.Context, id, name string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, updateTaskListDoc, map[string]interface{}{"id": id, "name": name})
}

const deleteTaskListDoc = `
mutation DeleteTaskList($id: UUID!) {
  deleteTaskListById(input: { id: $id }) {
    deletedTaskListId
  }
}`

func (s *TaskListService) Delete(ctx context.Context, id string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, deleteTaskListDoc, map[string]interface{}{"id": id})
}

const taskListWithTasksDoc = `
query FetchTaskListWithTasks($id: UUID!) {
  taskListById(id: $id) {
    id
    name
    createdAt
    tasksByTaskListId {
      nodes {
        id
        status
        priority
        title
        completedPercentage
        createdAt
      }
    }
  }
}`

// GetWithTasks fetches a task list with all of its tasks nested.
func (s *TaskListService) GetWithTasks(ctx context.Context, id string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, taskListWithTasksDoc, map[string]interface{}{"id": id})
}

// TasksFiltered runs a condition query across all tasks scoped to the list.
// The condition only names the filters that were actually supplied; the
// document is assembled from variable references, never from raw values.
func (s *TaskListService) TasksFiltered(ctx context.Context, id, priority, status string) (*graphql.Response, error) {
	decls := []string{"$id: UUID!"}
	conds := []string{"taskListId: $id"}
	vars := map[string]interface{}{"id": id}

	if priority != "" {
		decls = append(decls, "$priority: TaskPriority!")
		conds = append(conds, "priority: $priority")
		vars["priority"] = priority
	}
	if status != "" {
		decls = append(decls, "$status: TaskStatus!")
		conds = append(conds, "status: $status")
		vars["status"] = status
	}

	doc := `
query AllTasksByFilter(` + strings.Join(decls, ", ") + `) {
  allTasks(condition: { ` + strings.Join(conds, ", ") + ` }) {
    nodes {
      id
      title
      priority
      status
      completedPercentage
      createdAt
    }
  }
}`
	return s.gql.Execute(ctx, doc, vars)
}
