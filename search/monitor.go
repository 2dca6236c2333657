package search

import "github.com/poiesic/searchit/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(term string, kind core.SourceKind)
	AfterFetch(items []core.Item)
	Finish(results []core.Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ core.SourceKind) {}
func (n *noopMonitor) AfterFetch(_ []core.Item)          {}
func (n *noopMonitor) Finish(_ []core.Result)            {}
