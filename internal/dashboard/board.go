package dashboard

import (
	"sync"
	"time"

	"github.com/shenikar/emergensys/internal/models"
)

// Snapshot - неизменяемая копия набора инцидентов на момент версии
type Snapshot struct {
	Version   uint64             `json:"version"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Incidents []*models.Incident `json:"incidents"`
}

// Board - контейнер состояния панели. Конвейер работает только со снимками,
// изменения идут через Replace (полная переинжестия) и Mutate (оптимистичное обновление).
type Board struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	index     map[string]int
	version   uint64
	updatedAt time.Time
	now       func() time.Time

	subMu       sync.Mutex
	subscribers map[int]chan Snapshot
	nextSubID   int
}

// NewBoard создает пустой контейнер
func NewBoard() *Board {
	return &Board{
		index:       make(map[string]int),
		now:         time.Now,
		subscribers: make(map[int]chan Snapshot),
	}
}

// Replace заменяет весь набор и оповещает подписчиков
func (b *Board) Replace(incidents []*models.Incident) Snapshot {
	b.mu.Lock()
	b.incidents = make([]*models.Incident, 0, len(incidents))
	b.index = make(map[string]int, len(incidents))
	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		b.index[inc.Key] = len(b.incidents)
		b.incidents = append(b.incidents, inc.Clone())
	}
	snap := b.commitLocked()
	b.mu.Unlock()

	b.broadcast(snap)
	return snap
}

// Upsert добавляет или заменяет один инцидент по ключу хранилища
func (b *Board) Upsert(inc *models.Incident) Snapshot {
	b.mu.Lock()
	if i, ok := b.index[inc.Key]; ok {
		b.incidents[i] = inc.Clone()
	} else {
		b.index[inc.Key] = len(b.incidents)
		b.incidents = append(b.incidents, inc.Clone())
	}
	snap := b.commitLocked()
	b.mu.Unlock()

	b.broadcast(snap)
	return snap
}

// Mutate применяет fn к инциденту на месте. Если fn вернула ошибку, изменения не фиксируются.
func (b *Board) Mutate(key string, fn func(inc *models.Incident) error) (*models.Incident, error) {
	b.mu.Lock()
	i, ok := b.index[key]
	if !ok {
		b.mu.Unlock()
		return nil, models.ErrIncidentNotFound
	}
	working := b.incidents[i].Clone()
	if err := fn(working); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	b.incidents[i] = working
	snap := b.commitLocked()
	b.mu.Unlock()

	b.broadcast(snap)
	return working.Clone(), nil
}

// Get возвращает копию инцидента по ключу
func (b *Board) Get(key string) (*models.Incident, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}
	return b.incidents[i].Clone(), true
}

// Snapshot возвращает копию текущего набора
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked()
}

// Subscribe возвращает канал снимков. Медленный подписчик пропускает промежуточные снимки.
func (b *Board) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	b.subMu.Lock()
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = ch
	b.subMu.Unlock()

	cancel := func() {
		b.subMu.Lock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
		b.subMu.Unlock()
	}
	return ch, cancel
}

func (b *Board) commitLocked() Snapshot {
	b.version++
	b.updatedAt = b.now()
	return b.snapshotLocked()
}

func (b *Board) snapshotLocked() Snapshot {
	incidents := make([]*models.Incident, len(b.incidents))
	for i, inc := range b.incidents {
		incidents[i] = inc.Clone()
	}
	return Snapshot{
		Version:   b.version,
		UpdatedAt: b.updatedAt,
		Incidents: incidents,
	}
}

func (b *Board) broadcast(snap Snapshot) {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- snap:
		default:
			// выбрасываем устаревший снимок и кладем свежий
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
