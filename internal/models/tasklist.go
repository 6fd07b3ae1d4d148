package models

// TaskList mirrors the backend's taskList shape. Field names stay in the
// backend's camelCase because responses pass the record through verbatim.
type TaskList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// TaskNodes is the connection wrapper the backend puts around nested tasks.
type TaskNodes struct {
	Nodes []Task `json:"nodes"`
}

// TaskListWithTasks is a task list with its tasks nested the way the
// backend returns them.
type TaskListWithTasks struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
	Tasks     TaskNodes `json:"tasksByTaskListId"`
}
