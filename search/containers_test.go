package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// TestParseAlgorithm covers canonical, lower-case and unknown tags.
func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
		err  error
	}{
		{"BFS", search.BFS, nil},
		{"dfs", search.DFS, nil},
		{" Bfs ", search.BFS, nil},
		{"BSF", "", search.ErrInvalidAlgorithm},
		{"", "", search.ErrInvalidAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := search.ParseAlgorithm(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, []search.Algorithm{search.BFS, search.DFS}, search.Algorithms())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "READY", search.Ready.String())
	assert.Equal(t, "RUNNING", search.Running.String())
	assert.Equal(t, "SUCCEEDED", search.Succeeded.String())
	assert.Equal(t, "FAILED", search.Failed.String())
	assert.Equal(t, "Status(9)", search.Status(9).String())
}

// TestNode_Expand checks that Expand yields one child per action, in order.
func TestNode_Expand(t *testing.T) {
	cases := []struct {
		name  string
		edges []string
	}{
		{"NoActions", nil},
		{"SingleAction", []string{"x"}},
		{"MultipleActions", []string{"x", "y", "z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &graphProblem{start: "s", edges: map[string][]string{"s": tc.edges}}
			root := search.NewRoot[string, string]("s")
			children, err := root.Expand(p)
			require.NoError(t, err)
			require.Len(t, children, len(tc.edges))
			for i, c := range children {
				assert.Equal(t, tc.edges[i], c.State)
				assert.Equal(t, tc.edges[i], c.Action)
				assert.Same(t, root, c.Parent)
				assert.Equal(t, 1, c.Depth())
			}
			assert.True(t, root.IsRoot(), "expanding must not modify the parent")
		})
	}
}

func TestNode_ResultIllegalAction(t *testing.T) {
	p := branching("E")
	root := search.NewRoot[string, string]("A")
	_, err := root.Result("Z", p)
	assert.ErrorIs(t, err, search.ErrIllegalAction)

	_, err = search.NewRoot[int, string](0).Expand(brokenProblem{})
	assert.ErrorIs(t, err, search.ErrIllegalAction)
}

func TestNode_PathAndString(t *testing.T) {
	p := branching("E")
	a := search.NewRoot[string, string]("A")
	c, err := a.Result("C", p)
	require.NoError(t, err)
	e, err := c.Result("E", p)
	require.NoError(t, err)

	path := e.Path()
	require.Len(t, path, 3)
	assert.Equal(t, []string{"A", "C", "E"}, []string{path[0].State, path[1].State, path[2].State})
	assert.Equal(t, 2, e.Depth())
	assert.Equal(t, "A", a.String())
	assert.Equal(t, "E'E'", e.String())
}

// TestFrontier_Disciplines verifies LIFO vs FIFO extraction and emptiness.
func TestFrontier_Disciplines(t *testing.T) {
	cases := []struct {
		name string
		f    search.Frontier[string, string]
		want []string
	}{
		{"Stack", search.NewStackFrontier[string, string](), []string{"c", "b", "a"}},
		{"Queue", search.NewQueueFrontier[string, string](), []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.f.NotEmpty())
			for _, s := range []string{"a", "b", "c"} {
				tc.f.Add(search.NewRoot[string, string](s))
			}
			assert.Equal(t, 3, tc.f.Len())
			assert.True(t, tc.f.Contains("b"))
			assert.True(t, tc.f.ContainsNode(search.NewRoot[string, string]("c")))
			assert.False(t, tc.f.ContainsNode(nil))

			var got []string
			for tc.f.NotEmpty() {
				n, err := tc.f.Extract()
				require.NoError(t, err)
				got = append(got, n.State)
				assert.False(t, tc.f.Contains(n.State))
			}
			assert.Equal(t, tc.want, got)

			_, err := tc.f.Extract()
			assert.True(t, errors.Is(err, search.ErrEmptyFrontier))
		})
	}
}

// TestFrontier_Snapshot ensures snapshots are unaffected by later mutation.
func TestFrontier_Snapshot(t *testing.T) {
	for _, f := range []search.Frontier[string, string]{
		search.NewStackFrontier[string, string](),
		search.NewQueueFrontier[string, string](),
	} {
		f.Add(search.NewRoot[string, string]("a"))
		f.Add(search.NewRoot[string, string]("b"))
		snap := f.Snapshot()

		_, err := f.Extract()
		require.NoError(t, err)
		f.Add(search.NewRoot[string, string]("c"))

		assert.Equal(t, 2, snap.Len())
		assert.True(t, snap.Contains("a"))
		assert.True(t, snap.Contains("b"))
		assert.False(t, snap.Contains("c"))
		assert.Equal(t, "a", snap.Nodes()[0].State)
	}
}

// TestFrontier_DuplicateStates shows the container does not deduplicate:
// membership survives until the last copy is extracted.
func TestFrontier_DuplicateStates(t *testing.T) {
	f := search.NewQueueFrontier[string, string]()
	f.Add(search.NewRoot[string, string]("a"))
	f.Add(search.NewRoot[string, string]("a"))
	require.Equal(t, 2, f.Len())

	_, err := f.Extract()
	require.NoError(t, err)
	assert.True(t, f.Contains("a"))
	_, err = f.Extract()
	require.NoError(t, err)
	assert.False(t, f.Contains("a"))
}

func TestExploredSet(t *testing.T) {
	e := search.NewExploredSet[string, string]()
	e.Add(search.NewRoot[string, string]("a"))
	e.Add(search.NewRoot[string, string]("b"))
	e.Add(search.NewRoot[string, string]("a"))

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, []string{"a", "b"}, e.States())
	assert.True(t, e.Contains("a"))
	assert.True(t, e.ContainsNode(search.NewRoot[string, string]("b")))
	assert.False(t, e.ContainsNode(nil))

	snap := e.Snapshot()
	e.Add(search.NewRoot[string, string]("c"))
	assert.Equal(t, 2, snap.Len())
	assert.False(t, snap.Contains("c"))
	assert.True(t, e.Contains("c"))
}

func TestSolution_Build(t *testing.T) {
	p := branching("E")
	a := search.NewRoot[string, string]("A")
	c, _ := a.Result("C", p)
	e, _ := c.Result("E", p)

	sol := search.NewSolution[string, string]()
	assert.True(t, sol.Empty())
	require.NoError(t, sol.Build(e))
	assert.Equal(t, 2, sol.Len())
	assert.Equal(t, []string{"C", "E"}, sol.States())
	assert.Equal(t, []string{"C", "E"}, sol.Actions())
	assert.True(t, sol.Contains("C"))
	assert.False(t, sol.Contains("A"), "start is excluded")
	assert.ErrorIs(t, sol.Build(e), search.ErrSolutionBuilt)

	root := search.NewSolution[string, string]()
	require.NoError(t, root.Build(a))
	assert.True(t, root.Empty())
	assert.Equal(t, 0, root.Len())
}
