package model

// PhaseID identifies one top-level step of the guided presentation
type PhaseID string

const (
	PhaseFraming    PhaseID = "eda"
	PhaseModeling   PhaseID = "modeling"
	PhaseStrategy   PhaseID = "strategy"
	PhaseConclusion PhaseID = "conclusion"
	PhaseSimulator  PhaseID = "simulator"
)

// String returns the string representation of PhaseID
func (p PhaseID) String() string {
	return string(p)
}

// Phase is a named step shown in the sidebar
type Phase struct {
	ID    PhaseID
	Title string
}

// DefaultPhases returns the presentation steps in display order
func DefaultPhases() []Phase {
	return []Phase{
		{ID: PhaseFraming, Title: "1. Framing & EDA"},
		{ID: PhaseModeling, Title: "2. Modeling"},
		{ID: PhaseStrategy, Title: "3. Strategy"},
		{ID: PhaseConclusion, Title: "4. Conclusion"},
		{ID: PhaseSimulator, Title: "5. Simulator"},
	}
}

// Navigator is the phase state machine. The zero value is not usable; create
// one with NewNavigator.
type Navigator struct {
	phases  []Phase
	current int
}

// NewNavigator creates a navigator positioned on the first phase
func NewNavigator(phases []Phase) *Navigator {
	copied := make([]Phase, len(phases))
	copy(copied, phases)
	return &Navigator{phases: copied}
}

// Phases returns the ordered phase list
func (n *Navigator) Phases() []Phase {
	return n.phases
}

// Len returns the number of phases
func (n *Navigator) Len() int {
	return len(n.phases)
}

// Current returns the active phase index
func (n *Navigator) Current() int {
	return n.current
}

// CurrentPhase returns the active phase
func (n *Navigator) CurrentPhase() Phase {
	return n.phases[n.current]
}

// IndexOf returns the index of the phase with the given ID, or -1
func (n *Navigator) IndexOf(id PhaseID) int {
	for i, p := range n.phases {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Select jumps directly to phase i. Out-of-range indexes are ignored.
// Returns true if the active phase changed.
func (n *Navigator) Select(i int) bool {
	if i < 0 || i >= len(n.phases) || i == n.current {
		return false
	}
	n.current = i
	return true
}

// SelectID jumps to the phase with the given ID
func (n *Navigator) SelectID(id PhaseID) bool {
	return n.Select(n.IndexOf(id))
}

// Next advances one phase; a no-op on the last phase
func (n *Navigator) Next() bool {
	if !n.CanNext() {
		return false
	}
	n.current++
	return true
}

// Previous goes back one phase; a no-op on the first phase
func (n *Navigator) Previous() bool {
	if !n.CanPrevious() {
		return false
	}
	n.current--
	return true
}

// CanNext reports whether the Next control is enabled
func (n *Navigator) CanNext() bool {
	return n.current < len(n.phases)-1
}

// CanPrevious reports whether the Previous control is enabled
func (n *Navigator) CanPrevious() bool {
	return n.current > 0
}

// Completed reports whether phase i lies before the active one
func (n *Navigator) Completed(i int) bool {
	return i < n.current
}
