package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/boardsync/taskboard/internal/taskboard/store"
	"github.com/boardsync/taskboard/pkg/idx"
	"github.com/boardsync/taskboard/pkg/slogx"
)

// TaskService implements the per-user task operations. The userID argument on
// every method is the caller's verified identity from the session; callers
// must never pass anything else.
type TaskService struct {
	Store store.Store
}

// TaskInput is the validated-once boundary struct for create and update.
type TaskInput struct {
	Title   string
	Content string
	Status  string // one of the four literals, or "" for the NEW default
}

// List returns all tasks owned by userID, most recently created first.
func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksByOwner(ctx, userID)
}

// Get returns the task only if it belongs to userID. A task owned by someone
// else is indistinguishable from a missing one.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTaskForOwner(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

// Create validates the input and persists a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID string, in TaskInput) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	title, content, status, err := validateTaskInput(in)
	if err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:        idx.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		log.Error("task insert failed", "err", err)
		return domain.Task{}, err
	}

	return task, nil
}

// Update validates the input and rewrites the task in one ownership-filtered
// statement, returning the stored row. No matching row means missing or
// foreign; both surface as ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, in TaskInput) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	title, content, status, err := validateTaskInput(in)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        taskID,
		UserID:    userID,
		Title:     title,
		Content:   content,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.Store.Tasks().UpdateTaskForOwner(ctx, task)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		log.Error("task update failed", "task_id", taskID, "err", err)
		return domain.Task{}, err
	}

	return updated, nil
}

// Delete removes the task in one ownership-filtered statement.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Tasks().DeleteTaskForOwner(ctx, taskID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		log.Error("task delete failed", "task_id", taskID, "err", err)
		return err
	}
	return nil
}

func validateTaskInput(in TaskInput) (title, content string, status domain.TaskStatus, err error) {
	title = strings.TrimSpace(in.Title)
	if title == "" {
		return "", "", "", validationErr("title", "title is required")
	}

	status, parseErr := domain.ParseTaskStatus(in.Status)
	if parseErr != nil {
		return "", "", "", validationErr("status", "status must be one of NEW, IN_PROGRESS, COMPLETED, CANCELLED")
	}

	return title, in.Content, status, nil
}
