package search

import (
	"bufio"
	"fmt"
	"io"
)

// StateFormatter renders a state on a single line for reports.
type StateFormatter[S comparable] func(S) string

// DefaultFormatter renders a state with fmt.Sprint.
func DefaultFormatter[S comparable](s S) string {
	return fmt.Sprint(s)
}

// WriteSteps writes every step of log to w. Each step lists, in order, the
// explored set, the frontier, the extracted node and the expanded children,
// one state per line. A nil format uses DefaultFormatter.
func WriteSteps[S comparable, A any](w io.Writer, log *StepLog[S, A], format StateFormatter[S]) error {
	if format == nil {
		format = DefaultFormatter[S]
	}
	bw := bufio.NewWriter(w)
	line := func(indent, s string) {
		_, _ = bw.WriteString(indent)
		_, _ = bw.WriteString(s)
		_ = bw.WriteByte('\n')
	}

	line("", "- Algorithm steps:")
	for _, st := range log.Steps() {
		line("", fmt.Sprintf("[%d]", st.Index))

		line("  ", "> Explored nodes:")
		if st.Explored != nil {
			for _, n := range st.Explored.Nodes() {
				line("      ", format(n.State))
			}
		}

		line("  ", "> Frontier:")
		if st.Frontier != nil {
			for _, n := range st.Frontier.Nodes() {
				line("      ", format(n.State))
			}
		}

		if st.Extracted != nil {
			line("  ", "> Extracted node:")
			line("      ", format(st.Extracted.State))
		}

		line("  ", "> Node expands to:")
		for _, n := range st.Expanded {
			line("      ", format(n.State))
		}
	}

	return bw.Flush()
}

// WriteSummary writes the run header: algorithm, run ID, explored and
// solution counts ("-" when no solution was found).
func (e *Engine[S, A]) WriteSummary(w io.Writer) error {
	sol := "-"
	if e.status == Succeeded {
		sol = fmt.Sprint(e.solution.Len())
	}
	_, err := fmt.Fprintf(w,
		"- Algorithm: %s\n- Run: %s\n- Explored nodes: %d\n- Solution nodes: %s\n",
		e.algorithm, e.runID, e.explored.Len(), sol)

	return err
}

// WriteReport writes the run summary followed by the step log.
func (e *Engine[S, A]) WriteReport(w io.Writer, format StateFormatter[S]) error {
	if err := e.WriteSummary(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	return WriteSteps(w, e.log, format)
}
