package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	redisc "github.com/maison-lumiere/atelier/internal/pkg/redis"
	"github.com/redis/go-redis/v9"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// Progress tracks how far a running task has advanced.
type Progress struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// Task is a unit of background work stored in Redis.
type Task struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Status    TaskStatus      `json:"status"`
	Progress  *Progress       `json:"progress,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

const (
	keyPrefix = "atelier:task:"
	keyIndex  = "atelier:tasks:index" // sorted set: score=created_at, member=task_id
	taskTTL   = 48 * time.Hour
)

// Service manages Redis-backed task records.
type Service struct {
	rc *redisc.Client
}

func NewService(rc *redisc.Client) *Service {
	return &Service{rc: rc}
}

func (s *Service) taskKey(id string) string { return keyPrefix + id }

// Enqueue records a new pending task.
func (s *Service) Enqueue(ctx context.Context, taskType string, payload interface{}) (*Task, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	task := &Task{
		ID:        uuid.New().String(),
		Type:      taskType,
		Payload:   payloadBytes,
		Status:    TaskPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(task)
	if err != nil {
		return nil, err
	}

	pipe := s.rc.Raw().TxPipeline()
	pipe.Set(ctx, s.taskKey(task.ID), data, taskTTL)
	pipe.ZAdd(ctx, keyIndex, redis.Z{
		Score:  float64(task.CreatedAt.UnixMilli()),
		Member: task.ID,
	})
	_, err = pipe.Exec(ctx)
	return task, err
}

// GetByID retrieves a task by its ID. Returns (nil, nil) when absent.
func (s *Service) GetByID(ctx context.Context, id string) (*Task, error) {
	data, err := s.rc.Raw().Get(ctx, s.taskKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var task Task
	return &task, json.Unmarshal(data, &task)
}

// UpdateStatus sets a task's status and optional result/error.
func (s *Service) UpdateStatus(ctx context.Context, id string, status TaskStatus, result interface{}, errMsg string) error {
	task, err := s.GetByID(ctx, id)
	if err != nil || task == nil {
		return fmt.Errorf("task not found")
	}

	task.Status = status
	task.UpdatedAt = time.Now()
	task.Error = errMsg
	if result != nil {
		task.Result, _ = json.Marshal(result)
	}
	return s.save(ctx, task)
}

// UpdateProgress records current/total progress with a status message.
func (s *Service) UpdateProgress(ctx context.Context, id string, current, total int, message string) error {
	task, err := s.GetByID(ctx, id)
	if err != nil || task == nil {
		return fmt.Errorf("task not found")
	}

	task.Progress = &Progress{Current: current, Total: total, Message: message}
	task.UpdatedAt = time.Now()
	return s.save(ctx, task)
}

// List returns tasks filtered by type, newest first.
func (s *Service) List(ctx context.Context, page, size int, taskType string) ([]*Task, int64, error) {
	ids, err := s.rc.Raw().ZRevRange(ctx, keyIndex, 0, -1).Result()
	if err != nil {
		return nil, 0, err
	}

	var tasks []*Task
	for _, id := range ids {
		task, err := s.GetByID(ctx, id)
		if err != nil || task == nil {
			continue
		}
		if taskType != "" && task.Type != taskType {
			continue
		}
		tasks = append(tasks, task)
	}

	total := int64(len(tasks))
	start := (page - 1) * size
	end := start + size
	if start >= len(tasks) {
		return []*Task{}, total, nil
	}
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end], total, nil
}

// DeleteByID removes a single task by ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	pipe := s.rc.Raw().TxPipeline()
	pipe.Del(ctx, s.taskKey(id))
	pipe.ZRem(ctx, keyIndex, id)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Service) save(ctx context.Context, task *Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return s.rc.Raw().Set(ctx, s.taskKey(task.ID), data, taskTTL).Err()
}
