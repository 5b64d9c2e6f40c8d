package internal

import (
	"errors"
	"testing"
	"time"
)

func TestTaskManagerLifecycle(t *testing.T) {
	tm := NewTaskManager()
	tm.Add(&Task{ID: "r1", Kind: TaskRender, Label: "Variation #1", Status: TaskPending, StartTime: time.Now()})

	tm.SetProgress("r1", 3, 10)
	task := tm.Get("r1")
	if task.Status != TaskActive || task.WordsDone != 3 || task.WordCount != 10 {
		t.Errorf("progress not recorded: %+v", task)
	}
	if len(tm.GetActive()) != 1 {
		t.Errorf("expected 1 active task")
	}

	tm.Finish("r1", nil)
	task = tm.Get("r1")
	if task.Status != TaskCompleted {
		t.Errorf("expected completed, got %v", task.Status)
	}
	if task.WordsDone != task.WordCount {
		t.Errorf("completion should fill progress: %d/%d", task.WordsDone, task.WordCount)
	}
	if len(tm.GetActive()) != 0 {
		t.Errorf("completed task still listed active")
	}
	if got := tm.GetCompleted(5); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("completed list wrong: %v", got)
	}
}

func TestTaskManagerFailure(t *testing.T) {
	tm := NewTaskManager()
	tm.Add(&Task{ID: "e1", Kind: TaskExport, Label: "out.png", Status: TaskPending, StartTime: time.Now()})

	boom := errors.New("disk full")
	tm.Finish("e1", boom)

	task := tm.Get("e1")
	if task.Status != TaskFailed || !errors.Is(task.Error, boom) {
		t.Errorf("failure not recorded: %+v", task)
	}
}

func TestTaskManagerCompletedOrderAndLimit(t *testing.T) {
	tm := NewTaskManager()
	for _, id := range []string{"a", "b", "c"} {
		tm.Add(&Task{ID: id, Status: TaskPending, StartTime: time.Now()})
		tm.Finish(id, nil)
	}

	got := tm.GetCompleted(2)
	if len(got) != 2 {
		t.Fatalf("limit ignored: got %d", len(got))
	}
	// Most recent first.
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}
}
