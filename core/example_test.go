// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/sparsegraph/core"
)

// ExampleEqual shows that edge order inside a node does not matter.
func ExampleEqual() {
	a := core.New(2)
	_ = a.AddEdge(0, 1, 3)
	_ = a.AddEdge(0, 0, 0)

	b := core.New(2)
	_ = b.AddEdge(0, 0, 0)
	_ = b.AddEdge(0, 1, 3)

	fmt.Println(core.Equal(a, b), a.EdgeCount())
	// Output:
	// true 2
}
