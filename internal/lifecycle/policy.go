package lifecycle

import (
	"fmt"
	"strings"

	"github.com/shenikar/emergensys/internal/models"
)

const (
	PolicyPermissive = "permissive"
	PolicyStrict     = "strict"
)

// Policy решает, допустим ли переход между статусами
type Policy interface {
	Allow(from, to models.Status) error
}

// Permissive разрешает любой переход, включая повторное открытие Resolved
type Permissive struct{}

func (Permissive) Allow(_, _ models.Status) error {
	return nil
}

// TablePolicy разрешает только переходы из таблицы пар (from, to)
type TablePolicy struct {
	allowed map[models.Status]map[models.Status]bool
}

// Transition - разрешенная пара статусов
type Transition struct {
	From models.Status
	To   models.Status
}

// NewTablePolicy строит политику из списка пар
func NewTablePolicy(pairs []Transition) *TablePolicy {
	p := &TablePolicy{allowed: make(map[models.Status]map[models.Status]bool)}
	for _, t := range pairs {
		if p.allowed[t.From] == nil {
			p.allowed[t.From] = make(map[models.Status]bool)
		}
		p.allowed[t.From][t.To] = true
	}
	return p
}

func (p *TablePolicy) Allow(from, to models.Status) error {
	if p.allowed[from][to] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", models.ErrTransitionNotAllowed, from, to)
}

// StrictTransitions - движение только вперед; Resolved конечный
var StrictTransitions = []Transition{
	{models.StatusNew, models.StatusPending},
	{models.StatusNew, models.StatusInProgress},
	{models.StatusNew, models.StatusResolved},
	{models.StatusPending, models.StatusInProgress},
	{models.StatusPending, models.StatusResolved},
	{models.StatusInProgress, models.StatusPending},
	{models.StatusInProgress, models.StatusResolved},
}

// PolicyByName выбирает политику по значению STATUS_POLICY
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyPermissive:
		return Permissive{}, nil
	case PolicyStrict:
		return NewTablePolicy(StrictTransitions), nil
	default:
		return nil, fmt.Errorf("unknown status policy %q", name)
	}
}
