package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/esneiderbravo/crehana-tasks/internal/controller"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

// TaskListHandler serves the /task-lists routes.
type TaskListHandler struct {
	ctrl *controller.TaskListController
}

func NewTaskListHandler(ctrl *controller.TaskListController) *TaskListHandler {
	return &TaskListHandler{ctrl: ctrl}
}

type taskListReq struct {
	Name string `json:"name"`
}

// bindName enforces the non-empty-after-trim rule shared by create and
// update and returns the trimmed name. A violation ends the request with 422.
func bindName(c *gin.Context) (string, bool) {
	var req taskListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Detail(c, http.StatusUnprocessableEntity, "The 'name' field is required and must not be empty.")
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		util.Detail(c, http.StatusUnprocessableEntity, "The 'name' field is required and must not be empty.")
		return "", false
	}
	return name, true
}

// Create handles POST /task-lists.
func (h *TaskListHandler) Create(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}

	list, err := h.ctrl.Create(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /task-lists/:id.
func (h *TaskListHandler) Get(c *gin.Context) {
	list, err := h.ctrl.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update handles PUT /task-lists/:id.
func (h *TaskListHandler) Update(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}

	list, err := h.ctrl.Update(c.Request.Context(), c.Param("id"), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Delete handles DELETE /task-lists/:id.
func (h *TaskListHandler) Delete(c *gin.Context) {
	if err := h.ctrl.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Message(c, http.StatusOK, "Task list deleted successfully.")
}

// Tasks handles GET /task-lists/:id/tasks. With a priority or status query
// filter the response is the filtered task array; without filters it is the
// list with its tasks nested.
func (h *TaskListHandler) Tasks(c *gin.Context) {
	id := c.Param("id")
	priority := c.Query("priority")
	status := c.Query("status")

	if priority != "" || status != "" {
		tasks, err := h.ctrl.TasksFiltered(c.Request.Context(), id, priority, status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	list, err := h.ctrl.GetWithTasks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
