package planner

// ModelLookup resolves an integer model id to an LTS. It is the
// "model registry" spec.md §6 describes as consumer-provided and out
// of the core's scope; SatAndDisplay accepts one as a parameter rather
// than depending on any particular registry implementation.
type ModelLookup func(id int) (*LTS, error)

// SatAndDisplay is the convenience entry point of spec.md §6: look up
// an LTS by id, synthesize a policy for f, and return the induced LTS.
// Printing the result is the display collaborator's job, not this
// function's.
func SatAndDisplay(lookup ModelLookup, id int, f Formula) (*LTS, error) {
	lts, err := lookup(id)
	if err != nil {
		return nil, err
	}
	pi, err := Sat(lts, f)
	if err != nil {
		return nil, err
	}
	return Induced(lts, pi)
}
