package scoring

import "sync"

// pairLockShards trades memory for contention: pairs hash onto a fixed
// set of mutexes, so unrelated pairs rarely share a lock.
const pairLockShards = 64

// pairLocks serializes accounting per (learner, task) pair within this
// process. Cross-process writers are covered by the SQLite busy timeout.
type pairLocks struct {
	shards [pairLockShards]sync.Mutex
}

func (l *pairLocks) lock(learnerID, taskID int) (unlock func()) {
	h := uint(learnerID)*31 + uint(taskID)
	m := &l.shards[h%pairLockShards]
	m.Lock()
	return m.Unlock
}
