package http

import (
	"encoding/json"
	"net/http"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/boardsync/taskboard/internal/taskboard/service"
	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/boardsync/taskboard/pkg/tasksdk"
)

// TasksHandler serves the owner-scoped task CRUD endpoints. The owner is
// always the authenticated user from the request context; task ids from the
// URL are never trusted on their own.
type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList lists the caller's tasks.
//
//	@Summary		List tasks
//	@Description	Returns all tasks owned by the caller, most recently created first.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.TaskListResponse	"Tasks"
//	@Failure		401	{object}	httpx.ErrorResponse			"Invalid or missing session token"
//	@Failure		500	{object}	httpx.ErrorResponse			"Internal server error"
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	tasks, err := h.TaskService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := tasksdk.TaskListResponse{Tasks: make([]tasksdk.TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskResponse(t))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate creates a task owned by the caller.
//
//	@Summary		Create task
//	@Description	Creates a task. The title is required; status defaults to NEW.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TaskRequest		true	"Task fields"
//	@Success		201		{object}	tasksdk.TaskResponse	"The created task"
//	@Failure		400		{object}	httpx.ErrorResponse		"Validation failed"
//	@Failure		401		{object}	httpx.ErrorResponse		"Invalid or missing session token"
//	@Failure		500		{object}	httpx.ErrorResponse		"Internal server error"
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req tasksdk.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		tasksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	task, err := h.TaskService.Create(r.Context(), userID, service.TaskInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskResponse(task))
}

// HandleGet fetches a single task.
//
//	@Summary		Get task
//	@Description	Returns one of the caller's tasks. Tasks owned by other users report not found.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Task id"
//	@Success		200	{object}	tasksdk.TaskResponse	"The task"
//	@Failure		401	{object}	httpx.ErrorResponse		"Invalid or missing session token"
//	@Failure		404	{object}	httpx.ErrorResponse		"No such task for this user"
//	@Failure		500	{object}	httpx.ErrorResponse		"Internal server error"
//	@Router			/v1/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	task, err := h.TaskService.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleUpdate rewrites a task.
//
//	@Summary		Update task
//	@Description	Replaces the task's title, content, and status in one write.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task id"
//	@Param			request	body		tasksdk.TaskRequest		true	"New task fields"
//	@Success		200		{object}	tasksdk.TaskResponse	"The updated task"
//	@Failure		400		{object}	httpx.ErrorResponse		"Validation failed"
//	@Failure		401		{object}	httpx.ErrorResponse		"Invalid or missing session token"
//	@Failure		404		{object}	httpx.ErrorResponse		"No such task for this user"
//	@Failure		500		{object}	httpx.ErrorResponse		"Internal server error"
//	@Router			/v1/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req tasksdk.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		tasksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	task, err := h.TaskService.Update(r.Context(), userID, r.PathValue("id"), service.TaskInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleDelete removes a task.
//
//	@Summary		Delete task
//	@Description	Deletes one of the caller's tasks.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing session token"
//	@Failure		404	{object}	httpx.ErrorResponse	"No such task for this user"
//	@Failure		500	{object}	httpx.ErrorResponse	"Internal server error"
//	@Router			/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.TaskService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func taskResponse(t domain.Task) tasksdk.TaskResponse {
	return tasksdk.TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Status:    t.Status.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
