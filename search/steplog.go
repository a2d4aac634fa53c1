package search

// Step is the record of one loop iteration. Frontier and Explored are
// snapshots taken before extraction; Expanded is empty on the terminal
// (goal) step. A nil field was not recorded.
type Step[S comparable, A any] struct {
	Index     int // 1-based
	Frontier  Frontier[S, A]
	Explored  *ExploredSet[S, A]
	Extracted *Node[S, A]
	Expanded  []*Node[S, A]
}

// StepLog is the append-only sequence of iteration records of one run.
type StepLog[S comparable, A any] struct {
	steps   []Step[S, A]
	current *Step[S, A]
}

// NewStepLog returns an empty log.
func NewStepLog[S comparable, A any]() *StepLog[S, A] {
	return &StepLog[S, A]{}
}

// Len returns the number of committed steps.
func (l *StepLog[S, A]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.steps)
}

// Steps returns the committed steps in order.
func (l *StepLog[S, A]) Steps() []Step[S, A] {
	if l == nil {
		return nil
	}
	out := make([]Step[S, A], len(l.steps))
	copy(out, l.steps)

	return out
}

// Step returns the i-th committed step (0-based).
func (l *StepLog[S, A]) Step(i int) (Step[S, A], bool) {
	if l == nil || i < 0 || i >= len(l.steps) {
		return Step[S, A]{}, false
	}

	return l.steps[i], true
}

// Extracted returns the node extracted at each committed step, in order.
func (l *StepLog[S, A]) Extracted() []*Node[S, A] {
	if l == nil {
		return nil
	}
	out := make([]*Node[S, A], 0, len(l.steps))
	for _, st := range l.steps {
		if st.Extracted != nil {
			out = append(out, st.Extracted)
		}
	}

	return out
}

// begin opens a new record with the pre-extraction snapshots.
func (l *StepLog[S, A]) begin(frontier Frontier[S, A], explored *ExploredSet[S, A]) {
	l.current = &Step[S, A]{
		Index:    len(l.steps) + 1,
		Frontier: frontier,
		Explored: explored,
	}
}

func (l *StepLog[S, A]) extracted(n *Node[S, A]) {
	if l.current != nil {
		l.current.Extracted = n
	}
}

func (l *StepLog[S, A]) expanded(children []*Node[S, A]) {
	if l.current != nil {
		l.current.Expanded = children
	}
}

// commit appends the open record to the log.
func (l *StepLog[S, A]) commit() {
	if l.current == nil {
		return
	}
	l.steps = append(l.steps, *l.current)
	l.current = nil
}
