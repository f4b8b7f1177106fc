// SPDX-License-Identifier: MIT

// Package output - search-tree node holding one round of assignments.
//
// A search over car/ride distributions grows a tree: every node stores the
// assignments chosen at its depth and points at its parent. Writing a leaf
// replays the whole root-to-leaf path, so each vehicle's rides come out in
// the order they were chosen.
//
// Nodes are immutable once built. A parent stays reachable for as long as
// any descendant references it; several children may share one parent and
// be read from several goroutines.

package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fleetmatch/logging"
	"github.com/katalvlaran/fleetmatch/tensor"
)

// assignWidth is the column count of a node value: vehicle, ride.
const assignWidth = 2

// Node is one level of the assignment search tree.
type Node struct {
	parent *Node
	value  *tensor.Tensor[int] // K×2, owned
	depth  int
	log    logging.Logger
}

// NewNode creates a child of parent (nil for a root) holding value.
// MAIN DESCRIPTION:
//   - value is a K×2 matrix, column 0 the vehicle, column 1 the ride; an
//     empty tensor stands for "nothing assigned at this level".
//   - value is copied, so the caller may reuse it.
//
// Errors:
//   - tensor.ErrNilTensor, ErrBadShape, ErrNegativeRide.
//
// Complexity:
//   - Time O(K), Space O(K).
func NewNode(parent *Node, value *tensor.Tensor[int], opts ...Option) (*Node, error) {
	if value == nil {
		return nil, fmt.Errorf("output.NewNode: %w", tensor.ErrNilTensor)
	}
	dims := value.Dims()
	if value.Size() > 0 && (len(dims) != 2 || dims[1] != assignWidth) {
		return nil, fmt.Errorf("output.NewNode: dims %v: %w", dims, ErrBadShape)
	}
	var k int
	for k = 1; k < value.Size(); k += assignWidth {
		ride, _ := value.AtFlat(k)
		if ride < 0 {
			return nil, fmt.Errorf("output.NewNode: row %d ride %d: %w", k/assignWidth, ride, ErrNegativeRide)
		}
	}

	inherited := logging.Logger(logging.NewNop())
	depth := 0
	if parent != nil {
		inherited = parent.log
		depth = parent.depth + 1
	}
	o := gatherOptions(append([]Option{WithLogger(inherited)}, opts...)...)

	return &Node{
		parent: parent,
		value:  value.Clone(),
		depth:  depth,
		log:    o.logger,
	}, nil
}

// Parent returns the parent node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Depth returns the number of ancestors; a root has depth 0.
func (n *Node) Depth() int { return n.depth }

// Collect walks from the root down to n and returns, for every vehicle in
// [0, fleetSize), its rides in the order they were assigned.
//
// Errors: ErrVehicleRange.
// Complexity: O(fleetSize + total assignments on the path).
func (n *Node) Collect(fleetSize int) ([][]int, error) {
	if fleetSize < 0 {
		return nil, fmt.Errorf("Node.Collect(%d): %w", fleetSize, ErrVehicleRange)
	}

	path := make([]*Node, n.depth+1)
	var cur *Node
	for cur = n; cur != nil; cur = cur.parent {
		path[cur.depth] = cur
	}

	rides := make([][]int, fleetSize)
	for _, node := range path {
		var k int
		for k = 0; k+1 < node.value.Size(); k += assignWidth {
			vehicle, _ := node.value.AtFlat(k)
			ride, _ := node.value.AtFlat(k + 1)
			if vehicle < 0 || vehicle >= fleetSize {
				return nil, fmt.Errorf("Node.Collect: depth %d vehicle %d, fleet %d: %w", node.depth, vehicle, fleetSize, ErrVehicleRange)
			}
			rides[vehicle] = append(rides[vehicle], ride)
		}
	}

	return rides, nil
}

// WriteTo writes fleetSize lines to w. Line v is the ride count of vehicle v
// followed by its rides, all separated by single spaces.
// Returns the number of bytes written.
func (n *Node) WriteTo(w io.Writer, fleetSize int) (int64, error) {
	text, err := n.render(fleetSize)
	if err != nil {
		return 0, err
	}
	written, err := io.WriteString(w, text)

	return int64(written), err
}

// WriteToFile creates or truncates path and writes the assignments to it.
// Nothing is created when the assignments do not fit fleetSize.
func (n *Node) WriteToFile(path string, fleetSize int) error {
	text, err := n.render(fleetSize)
	if err != nil {
		return fmt.Errorf("Node.WriteToFile(%q): %w", path, err)
	}
	if err = os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("Node.WriteToFile(%q): %w", path, err)
	}
	n.log.Debug("output: assignments written", "path", path, "vehicles", fleetSize, "depth", n.depth, "bytes", len(text))

	return nil
}

// render formats the result of Collect.
func (n *Node) render(fleetSize int) (string, error) {
	rides, err := n.Collect(fleetSize)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, list := range rides {
		b.WriteString(strconv.Itoa(len(list)))
		for _, r := range list {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(r))
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
