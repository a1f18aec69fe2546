package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/mapper"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/validation"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
	"github.com/philipjohn05/taskapp-portfolio/pkg/apiresponse"
)

const taskIDParam = "taskId"

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.taskService.GetTasks(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidTaskPayload, apiresponse.MsgFailListTasks}, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTasksRetrieved, middleware.GetLang(c), mapper.ToTaskItems(tasks)))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), taskID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidTaskPayload, apiresponse.MsgFailGetTask},
			"failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTaskRetrieved, middleware.GetLang(c), mapper.ToTaskItem(task)))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apiresponse.MsgInvalidTaskPayload, validation.DescribeBindError(err))
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondBadRequest(c, apiresponse.MsgInvalidTaskPayload, domain.PublicMessage(err))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidTaskPayload, apiresponse.MsgFailCreateTask}, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, apiresponse.Success(apiresponse.MsgTaskCreated, middleware.GetLang(c), mapper.ToTaskItem(task)))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apiresponse.MsgInvalidTaskPayload, validation.DescribeBindError(err))
		return
	}

	input, err := validation.BuildUpdateTaskInput(req)
	if err != nil {
		respondBadRequest(c, apiresponse.MsgInvalidTaskPayload, domain.PublicMessage(err))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidTaskPayload, apiresponse.MsgFailUpdateTask},
			"failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTaskUpdated, middleware.GetLang(c), mapper.ToTaskItem(task)))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTask(c.Request.Context(), taskID, middleware.GetUserID(c))
	if err == nil && !deleted {
		err = domain.ErrTaskNotFound
	}
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidTaskPayload, apiresponse.MsgFailDeleteTask},
			"failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success[any](apiresponse.MsgTaskDeleted, middleware.GetLang(c), nil))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	completed, err := h.taskService.CompleteTask(c.Request.Context(), taskID, middleware.GetUserID(c))
	if err == nil && !completed {
		err = domain.ErrTaskNotFound
	}
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidTaskPayload, apiresponse.MsgFailCompleteTask},
			"failed to complete task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success[any](apiresponse.MsgTaskCompleted, middleware.GetLang(c), nil))
}

func (h *TaskHandler) taskID(c *gin.Context) (uint64, bool) {
	taskID, err := validation.ParseTaskID(c.Param(taskIDParam))
	if err != nil {
		respondBadRequest(c, apiresponse.MsgInvalidTaskID, err.Error())
		return 0, false
	}
	return taskID, true
}
