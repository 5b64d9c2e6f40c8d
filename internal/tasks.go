package internal

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

func newTaskID() string {
	return uuid.New().String()
}

// Task tracking for render and export jobs
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskActive
	TaskCompleted
	TaskFailed
)

type TaskKind int

const (
	TaskRender TaskKind = iota
	TaskExport
)

type Task struct {
	ID        string
	Kind      TaskKind
	Label     string // e.g. "Variation #3" or the export file name
	Variation int    // 1-based variation number
	Status    TaskStatus
	WordsDone int
	WordCount int
	StartTime time.Time
	EndTime   time.Time
	Error     error
	LocalPath string // destination of an export
}

type TaskManager struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	order []string // chronological order
}

func NewTaskManager() *TaskManager {
	return &TaskManager{
		tasks: make(map[string]*Task),
		order: make([]string, 0),
	}
}

func (tm *TaskManager) Add(task *Task) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.tasks[task.ID] = task
	tm.order = append(tm.order, task.ID)
}

func (tm *TaskManager) Get(id string) *Task {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.tasks[id]
}

// SetProgress records layout progress for a render task.
func (tm *TaskManager) SetProgress(id string, done, total int) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if task, ok := tm.tasks[id]; ok {
		task.Status = TaskActive
		task.WordsDone = done
		task.WordCount = total
	}
}

// Finish marks a task completed, or failed when err is non-nil.
func (tm *TaskManager) Finish(id string, err error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	task, ok := tm.tasks[id]
	if !ok {
		return
	}
	task.EndTime = time.Now()
	if err != nil {
		task.Status = TaskFailed
		task.Error = err
	} else {
		task.Status = TaskCompleted
		task.WordsDone = task.WordCount
	}
}

func (tm *TaskManager) GetActive() []*Task {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	var active []*Task
	for _, id := range tm.order {
		task := tm.tasks[id]
		if task.Status == TaskActive || task.Status == TaskPending {
			active = append(active, task)
		}
	}
	return active
}

func (tm *TaskManager) GetCompleted(limit int) []*Task {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	var completed []*Task
	// Reverse chronological order
	for i := len(tm.order) - 1; i >= 0 && len(completed) < limit; i-- {
		task := tm.tasks[tm.order[i]]
		if task.Status == TaskCompleted || task.Status == TaskFailed {
			completed = append(completed, task)
		}
	}
	return completed
}
