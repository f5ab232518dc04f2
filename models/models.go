// Package models is the hard-coded example registry: the out-of-scope
// "model registry" collaborator spec.md §6 describes as consumer-
// provided, adapted from the teacher's models/purple and models/mm1
// packages and root examples.go. Nothing here is part of the
// evaluator's core; it only feeds the core inputs.
package models

import (
	"fmt"

	"github.com/mrieker/alphactl"
)

// FormulaSpec names a formula worth checking against a model, the way
// kripke.CTLSpec does for the teacher's ModelSpec registry.
type FormulaSpec struct {
	Name        string
	Description string
	Formula     planner.Formula
}

// Model is the small API each hard-coded example implements.
type Model interface {
	ID() int
	Name() string
	Build() (*planner.LTS, error)
	Formulas() []FormulaSpec
}

var registry = map[int]Model{}

func register(m Model) {
	if _, dup := registry[m.ID()]; dup {
		panic(fmt.Sprintf("models: duplicate model id %d (%s)", m.ID(), m.Name()))
	}
	registry[m.ID()] = m
}

// Lookup resolves a model id to its LTS. It satisfies
// planner.ModelLookup, so it can be passed directly to
// planner.SatAndDisplay.
func Lookup(id int) (*planner.LTS, error) {
	m, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("models: no model registered for id %d", id)
	}
	return m.Build()
}

// Get returns the full Model by id, for callers that also want its
// name or example formulas (e.g. the CLI driver).
func Get(id int) (Model, bool) {
	m, ok := registry[id]
	return m, ok
}

// All returns every registered model id in ascending order.
func All() []int {
	ids := make([]int, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
