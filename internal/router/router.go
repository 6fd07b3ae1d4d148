package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/esneiderbravo/crehana-tasks/internal/config"
	"github.com/esneiderbravo/crehana-tasks/internal/controller"
	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
	"github.com/esneiderbravo/crehana-tasks/internal/handler"
	"github.com/esneiderbravo/crehana-tasks/internal/middleware"
	"github.com/esneiderbravo/crehana-tasks/internal/service"
)

// SetupRouter wires controllers, handlers and middleware onto a Gin engine.
func SetupRouter(cfg *config.Config, gql *graphql.Client, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// registration, login and invitations work without a token
	tokenTTL := time.Duration(cfg.JWT.ExpireMinutes) * time.Minute
	userCtrl := controller.NewUserController(
		service.NewUserService(gql),
		cfg.JWT.Secret,
		tokenTTL,
		cfg.Security.BcryptCost,
	)
	userHandler := handler.NewUserHandler(userCtrl)
	users := r.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/invite", userHandler.Invite)

	// everything below requires a valid bearer token
	protected := r.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret))

	listHandler := handler.NewTaskListHandler(
		controller.NewTaskListController(service.NewTaskListService(gql)))
	protected.POST("/task-lists", listHandler.Create)
	protected.GET("/task-lists/:id", listHandler.Get)
	protected.PUT("/task-lists/:id", listHandler.Update)
	protected.DELETE("/task-lists/:id", listHandler.Delete)
	protected.GET("/task-lists/:id/tasks", listHandler.Tasks)

	taskHandler := handler.NewTaskHandler(
		controller.NewTaskController(service.NewTaskService(gql)))
	protected.POST("/tasks", taskHandler.Create)
	protected.GET("/tasks/:id", taskHandler.Get)
	protected.PUT("/tasks/:id", taskHandler.Update)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
	protected.PUT("/tasks/:id/status", taskHandler.UpdateStatus)
	protected.POST("/tasks/assign", taskHandler.Assign)

	return r
}
