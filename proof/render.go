// File: render.go
// Role: Render — turns a topologically sorted ProofNode list into the
// "one line per node with parent indices" trace spec.md §4.6 describes.
package proof

import (
	"fmt"
	"strings"

	"github.com/augend/ddar/core"
)

// Render sorts the DAG reachable from roots and returns one line per node,
// in dependency order, each naming the node's rule, statement, and the
// 1-based indices (within this rendering) of its parents.
func Render(roots ...*core.ProofNode) ([]string, error) {
	sorted, err := TopologicalSort(roots...)
	if err != nil {
		return nil, errorf("Render", err)
	}
	index := make(map[*core.ProofNode]int, len(sorted))
	for i, n := range sorted {
		index[n] = i + 1
	}
	lines := make([]string, len(sorted))
	for i, n := range sorted {
		parents := make([]string, len(n.Parents))
		for j, p := range n.Parents {
			parents[j] = fmt.Sprintf("%d", index[p])
		}
		if len(parents) == 0 {
			lines[i] = fmt.Sprintf("%d. [%s] %s", i+1, n.Rule, n.Statement)
			continue
		}
		lines[i] = fmt.Sprintf("%d. [%s] %s (from %s)", i+1, n.Rule, n.Statement, strings.Join(parents, ","))
	}
	return lines, nil
}
