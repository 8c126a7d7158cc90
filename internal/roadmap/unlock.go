// Package roadmap computes learner-facing roadmap views. Lock state is
// derived on every read from the learner's completion records; nothing
// here is persisted.
package roadmap

// GatedTask is one roadmap position with its derived gate state.
type GatedTask struct {
	TaskID int
	Locked bool
}

// ComputeLocks derives the lock flag for each task in roadmap order.
//
// A task is unlocked when the learner has passed it, when the
// immediately preceding task was passed, or when it carries the
// smallest task ID in the roadmap. Passing a task unlocks only the one
// task that follows it; the unlock does not propagate past an unpassed
// task. Tasks with no completion record count as never passed but still
// occupy their place in the chain.
func ComputeLocks(taskIDs []int, passing map[int]bool) []GatedTask {
	if len(taskIDs) == 0 {
		return nil
	}

	minID := taskIDs[0]
	for _, id := range taskIDs[1:] {
		if id < minID {
			minID = id
		}
	}

	out := make([]GatedTask, 0, len(taskIDs))
	unlockNext := false
	for _, id := range taskIDs {
		g := GatedTask{TaskID: id}
		switch {
		case passing[id]:
			unlockNext = true
		case unlockNext:
			unlockNext = false
		case id == minID:
			// first task is always reachable
		default:
			g.Locked = true
		}
		out = append(out, g)
	}
	return out
}
