package importer

import (
	"context"
	"time"

	"github.com/maison-lumiere/atelier/internal/pkg/taskqueue"
	"go.uber.org/zap"
)

// runImportTask processes an apply batch in the background, streaming file
// and per-image progress into the task record so the console can poll it.
func (h *Handler) runImportTask(taskID string, dto applyDTO) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := h.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskRunning, nil, ""); err != nil {
		h.logger.Warn("import task: mark running failed", zap.String("task", taskID), zap.Error(err))
	}

	results := h.applyFiles(ctx, dto, func(current, total int, message string) {
		if err := h.tasks.UpdateProgress(ctx, taskID, current, total, message); err != nil {
			h.logger.Warn("import task: progress update failed", zap.String("task", taskID), zap.Error(err))
		}
	})

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	status := taskqueue.TaskCompleted
	errMsg := ""
	if failed == len(results) && len(results) > 0 {
		status = taskqueue.TaskFailed
		errMsg = "모든 문서 가져오기에 실패했습니다 (every document failed to import)"
	}

	if err := h.tasks.UpdateStatus(ctx, taskID, status, results, errMsg); err != nil {
		h.logger.Error("import task: finalize failed", zap.String("task", taskID), zap.Error(err))
	}
}
