package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergensys/internal/models"
)

// committedOperationsKept - сколько последних зафиксированных операций остается видимым.
// pending и failed не вытесняются: failed ждут явного повтора.
const committedOperationsKept = 500

// operationTracker хранит исходящие частичные обновления и их судьбу
type operationTracker struct {
	mu  sync.RWMutex
	ops map[uuid.UUID]*models.Operation
	// committed - id зафиксированных операций в порядке фиксации
	committed     []uuid.UUID
	committedKeep int
}

func newOperationTracker(keep int) *operationTracker {
	if keep < 1 {
		keep = committedOperationsKept
	}
	return &operationTracker{
		ops:           make(map[uuid.UUID]*models.Operation),
		committedKeep: keep,
	}
}

func (t *operationTracker) start(op *models.Operation, now time.Time) *models.Operation {
	t.mu.Lock()
	defer t.mu.Unlock()
	op.ID = uuid.New()
	op.State = models.OperationPending
	op.Attempts = 1
	op.CreatedAt = now
	op.UpdatedAt = now
	t.ops[op.ID] = op
	return op.Clone()
}

// beginRetry переводит проваленную операцию обратно в pending
func (t *operationTracker) beginRetry(id uuid.UUID, now time.Time) (*models.Operation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	op, ok := t.ops[id]
	if !ok {
		return nil, models.ErrOperationNotFound
	}
	if op.State != models.OperationFailed {
		return nil, models.ErrOperationNotRetryable
	}
	op.State = models.OperationPending
	op.Error = ""
	op.Attempts++
	op.UpdatedAt = now
	return op.Clone(), nil
}

func (t *operationTracker) finish(id uuid.UUID, err error, now time.Time) *models.Operation {
	t.mu.Lock()
	defer t.mu.Unlock()
	op, ok := t.ops[id]
	if !ok {
		return nil
	}
	if err != nil {
		op.State = models.OperationFailed
		op.Error = err.Error()
	} else {
		op.State = models.OperationCommitted
		op.Error = ""
		t.committed = append(t.committed, id)
	}
	op.UpdatedAt = now
	done := op.Clone()
	t.pruneLocked()
	return done
}

// pruneLocked вытесняет самые старые зафиксированные операции сверх committedKeep
func (t *operationTracker) pruneLocked() {
	excess := len(t.committed) - t.committedKeep
	if excess <= 0 {
		return
	}
	for _, id := range t.committed[:excess] {
		delete(t.ops, id)
	}
	t.committed = append([]uuid.UUID(nil), t.committed[excess:]...)
}

func (t *operationTracker) get(id uuid.UUID) (*models.Operation, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	op, ok := t.ops[id]
	if !ok {
		return nil, models.ErrOperationNotFound
	}
	return op.Clone(), nil
}

// list возвращает операции в порядке создания; пустой state - все
func (t *operationTracker) list(state models.OperationState) []*models.Operation {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*models.Operation, 0, len(t.ops))
	for _, op := range t.ops {
		if state != "" && op.State != state {
			continue
		}
		out = append(out, op.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
