package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esneiderbravo/crehana-tasks/internal/controller"
	"github.com/esneiderbravo/crehana-tasks/internal/models"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

// TaskHandler serves the /tasks routes.
type TaskHandler struct {
	ctrl *controller.TaskController
}

func NewTaskHandler(ctrl *controller.TaskController) *TaskHandler {
	return &TaskHandler{ctrl: ctrl}
}

type createTaskReq struct {
	Title               string `json:"title" binding:"required"`
	Priority            string `json:"priority"`
	Status              string `json:"status"`
	CompletedPercentage *int   `json:"completed_percentage"`
	TaskListID          string `json:"task_list_id" binding:"required"`
}

type updateTaskReq struct {
	Title               string `json:"title"`
	Priority            string `json:"priority"`
	Status              string `json:"status"`
	CompletedPercentage *int   `json:"completed_percentage"`
}

func taskInput(title, priority, status string, pct *int, taskListID string) models.TaskInput {
	in := models.TaskInput{
		Title:      title,
		Priority:   priority,
		Status:     status,
		TaskListID: taskListID,
	}
	if pct != nil {
		in.CompletedPercentage = *pct
	}
	return in
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	task, err := h.ctrl.Create(c.Request.Context(),
		taskInput(req.Title, req.Priority, req.Status, req.CompletedPercentage, req.TaskListID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.ctrl.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update handles PUT /tasks/:id. The request's fields are forwarded
// exactly as given: omitted fields reset to their defaults instead of
// keeping the stored values.
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	task, err := h.ctrl.Update(c.Request.Context(), c.Param("id"),
		taskInput(req.Title, req.Priority, req.Status, req.CompletedPercentage, ""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.ctrl.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Message(c, http.StatusOK, "Task deleted successfully.")
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /tasks/:id/status.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	task, err := h.ctrl.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type assignTaskReq struct {
	TaskID string `json:"task_id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

// Assign handles POST /tasks/assign.
func (h *TaskHandler) Assign(c *gin.Context) {
	var req assignTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	task, err := h.ctrl.AssignToUser(c.Request.Context(), req.TaskID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
