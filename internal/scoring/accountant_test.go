package scoring

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
)

// memStore is an in-memory Store whose transactions run one at a time,
// mirroring the serialization the real store gets from SQLite.
type memStore struct {
	mu       sync.Mutex
	learners map[int]*ledger
	tasks    map[int]bool
	progress map[[2]int]*Record
}

type ledger struct {
	totalScore         int
	completedTaskCount int
}

func newMemStore() *memStore {
	return &memStore{
		learners: map[int]*ledger{},
		tasks:    map[int]bool{},
		progress: map[[2]int]*Record{},
	}
}

func (m *memStore) addLearner(id int) { m.learners[id] = &ledger{} }
func (m *memStore) addTask(id int)    { m.tasks[id] = true }

func (m *memStore) ledgerOf(id int) ledger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.learners[id]
}

func (m *memStore) InTx(_ context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Work on a copy so a failed transaction rolls back.
	snapshot := m.clone()
	if err := fn((*memTx)(m)); err != nil {
		m.restore(snapshot)
		return err
	}
	return nil
}

func (m *memStore) clone() *memStore {
	c := newMemStore()
	for id, l := range m.learners {
		cp := *l
		c.learners[id] = &cp
	}
	for id := range m.tasks {
		c.tasks[id] = true
	}
	for k, r := range m.progress {
		cp := *r
		c.progress[k] = &cp
	}
	return c
}

func (m *memStore) restore(from *memStore) {
	m.learners = from.learners
	m.tasks = from.tasks
	m.progress = from.progress
}

type memTx memStore

func (t *memTx) LearnerExists(_ context.Context, id int) (bool, error) {
	_, ok := t.learners[id]
	return ok, nil
}

func (t *memTx) TaskExists(_ context.Context, id int) (bool, error) {
	return t.tasks[id], nil
}

func (t *memTx) ProgressFor(_ context.Context, learnerID, taskID int) (*Record, error) {
	r, ok := t.progress[[2]int{learnerID, taskID}]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (t *memTx) CreateProgress(_ context.Context, learnerID, taskID, score int, status bool) error {
	t.progress[[2]int{learnerID, taskID}] = &Record{
		LearnerID: learnerID, TaskID: taskID, Score: score, Status: status,
	}
	return nil
}

func (t *memTx) UpdateProgress(_ context.Context, learnerID, taskID, score int, status bool) error {
	r := t.progress[[2]int{learnerID, taskID}]
	r.Score = score
	r.Status = status
	return nil
}

func (t *memTx) ProgressByTask(_ context.Context, taskID int) ([]Record, error) {
	var out []Record
	for _, r := range t.progress {
		if r.TaskID == taskID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (t *memTx) DeleteProgressByTask(_ context.Context, taskID int) error {
	for k, r := range t.progress {
		if r.TaskID == taskID {
			delete(t.progress, k)
		}
	}
	return nil
}

func (t *memTx) DeleteTask(_ context.Context, taskID int) error {
	delete(t.tasks, taskID)
	return nil
}

func (t *memTx) AdjustLedger(_ context.Context, learnerID, scoreDelta, completedDelta int) error {
	l := t.learners[learnerID]
	l.totalScore += scoreDelta
	l.completedTaskCount += completedDelta
	return nil
}

func newTestAccountant() (*Accountant, *memStore) {
	st := newMemStore()
	st.addLearner(1)
	st.addTask(10)
	st.addTask(11)
	return NewAccountant(st, zap.NewNop()), st
}

// checkInvariant asserts TotalScore equals the sum of passing records'
// scores and CompletedTaskCount equals the number of passing records.
func checkInvariant(t *testing.T, st *memStore, learnerID int) {
	t.Helper()
	st.mu.Lock()
	defer st.mu.Unlock()

	sum, count := 0, 0
	for _, r := range st.progress {
		if r.LearnerID == learnerID && r.Status {
			sum += r.Score
			count++
		}
	}
	l := st.learners[learnerID]
	if l.totalScore != sum {
		t.Errorf("TotalScore = %d, want %d (sum of passing scores)", l.totalScore, sum)
	}
	if l.completedTaskCount != count {
		t.Errorf("CompletedTaskCount = %d, want %d", l.completedTaskCount, count)
	}
}

func TestFirstSubmissionPassing(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	passed, err := a.RecordSubmission(ctx, 1, 10, 75)
	if err != nil {
		t.Fatalf("RecordSubmission: %v", err)
	}
	if !passed {
		t.Error("expected passed")
	}

	l := st.ledgerOf(1)
	if l.totalScore != 75 {
		t.Errorf("TotalScore = %d, want 75", l.totalScore)
	}
	if l.completedTaskCount != 1 {
		t.Errorf("CompletedTaskCount = %d, want 1", l.completedTaskCount)
	}
	checkInvariant(t, st, 1)
}

func TestFirstSubmissionFailing(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	passed, err := a.RecordSubmission(ctx, 1, 10, 45)
	if err != nil {
		t.Fatalf("RecordSubmission: %v", err)
	}
	if passed {
		t.Error("expected not passed")
	}

	l := st.ledgerOf(1)
	if l.totalScore != 0 || l.completedTaskCount != 0 {
		t.Errorf("ledger = %+v, want zero", l)
	}
	checkInvariant(t, st, 1)
}

func TestIdempotentCrediting(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	for range 5 {
		if _, err := a.RecordSubmission(ctx, 1, 10, 80); err != nil {
			t.Fatalf("RecordSubmission: %v", err)
		}
	}

	l := st.ledgerOf(1)
	if l.totalScore != 80 {
		t.Errorf("TotalScore = %d, want 80 after repeated identical submissions", l.totalScore)
	}
	if l.completedTaskCount != 1 {
		t.Errorf("CompletedTaskCount = %d, want 1", l.completedTaskCount)
	}
	checkInvariant(t, st, 1)
}

func TestMonotoneBestAccounting(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	if _, err := a.RecordSubmission(ctx, 1, 10, 65); err != nil {
		t.Fatal(err)
	}
	if _, err := a.RecordSubmission(ctx, 1, 10, 90); err != nil {
		t.Fatal(err)
	}

	l := st.ledgerOf(1)
	if l.totalScore != 90 {
		t.Errorf("TotalScore = %d, want 90 (never 65+90)", l.totalScore)
	}
	if l.completedTaskCount != 1 {
		t.Errorf("CompletedTaskCount = %d, want 1", l.completedTaskCount)
	}
	checkInvariant(t, st, 1)
}

func TestFailThenPassCountsOnce(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	passed, err := a.RecordSubmission(ctx, 1, 10, 40)
	if err != nil {
		t.Fatal(err)
	}
	if passed {
		t.Error("40 should not pass")
	}

	passed, err = a.RecordSubmission(ctx, 1, 10, 70)
	if err != nil {
		t.Fatal(err)
	}
	if !passed {
		t.Error("70 should pass")
	}

	l := st.ledgerOf(1)
	if l.totalScore != 70 {
		t.Errorf("TotalScore = %d, want 70 (full credit, failing score contributed nothing)", l.totalScore)
	}
	if l.completedTaskCount != 1 {
		t.Errorf("CompletedTaskCount = %d, want 1", l.completedTaskCount)
	}
	checkInvariant(t, st, 1)
}

func TestLowerResubmissionIsNoOp(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	if _, err := a.RecordSubmission(ctx, 1, 10, 85); err != nil {
		t.Fatal(err)
	}
	passed, err := a.RecordSubmission(ctx, 1, 10, 62)
	if err != nil {
		t.Fatal(err)
	}
	if !passed {
		t.Error("previous status should be returned")
	}

	l := st.ledgerOf(1)
	if l.totalScore != 85 {
		t.Errorf("TotalScore = %d, want 85 (lower score discarded)", l.totalScore)
	}
	rec, _ := (*memTx)(st).ProgressFor(ctx, 1, 10)
	if rec.Score != 85 {
		t.Errorf("Score = %d, want 85", rec.Score)
	}
}

func TestMissingTargetIsFatal(t *testing.T) {
	a, _ := newTestAccountant()
	ctx := context.Background()

	if _, err := a.RecordSubmission(ctx, 99, 10, 70); err == nil {
		t.Error("expected error for missing learner")
	}
	if _, err := a.RecordSubmission(ctx, 1, 99, 70); err == nil {
		t.Error("expected error for missing task")
	}
}

func TestDeleteTaskReversal(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()
	st.addLearner(2)

	// Learner 1 passes both tasks; learner 2 passes one and fails the other.
	mustRecord(t, a, 1, 10, 80)
	mustRecord(t, a, 1, 11, 90)
	mustRecord(t, a, 2, 10, 70)
	mustRecord(t, a, 2, 11, 30)

	if err := a.DeleteTask(ctx, 10); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	l1 := st.ledgerOf(1)
	if l1.totalScore != 90 || l1.completedTaskCount != 1 {
		t.Errorf("learner 1 ledger = %+v, want {90 1}", l1)
	}
	l2 := st.ledgerOf(2)
	if l2.totalScore != 0 || l2.completedTaskCount != 0 {
		t.Errorf("learner 2 ledger = %+v, want {0 0}", l2)
	}
	checkInvariant(t, st, 1)
	checkInvariant(t, st, 2)

	// Second deletion finds nothing and changes nothing.
	if err := a.DeleteTask(ctx, 10); err != nil {
		t.Fatalf("second DeleteTask: %v", err)
	}
	if got := st.ledgerOf(1); got != l1 {
		t.Errorf("ledger changed on repeated delete: %+v", got)
	}
}

func TestConcurrentResubmission(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, score := range []int{70, 90} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := a.RecordSubmission(ctx, 1, 10, score); err != nil {
				t.Errorf("RecordSubmission(%d): %v", score, err)
			}
		}()
	}
	wg.Wait()

	l := st.ledgerOf(1)
	if l.totalScore != 90 {
		t.Errorf("TotalScore = %d, want 90 (never 160)", l.totalScore)
	}
	if l.completedTaskCount != 1 {
		t.Errorf("CompletedTaskCount = %d, want 1", l.completedTaskCount)
	}
	checkInvariant(t, st, 1)
}

func TestConcurrentDistinctPairs(t *testing.T) {
	a, st := newTestAccountant()
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, taskID := range []int{10, 11} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := a.RecordSubmission(ctx, 1, taskID, 60); err != nil {
				t.Errorf("RecordSubmission(task %d): %v", taskID, err)
			}
		}()
	}
	wg.Wait()

	l := st.ledgerOf(1)
	if l.totalScore != 120 || l.completedTaskCount != 2 {
		t.Errorf("ledger = %+v, want {120 2}", l)
	}
}

func mustRecord(t *testing.T, a *Accountant, learnerID, taskID, score int) {
	t.Helper()
	if _, err := a.RecordSubmission(context.Background(), learnerID, taskID, score); err != nil {
		t.Fatalf("RecordSubmission(%d, %d, %d): %v", learnerID, taskID, score, err)
	}
}
