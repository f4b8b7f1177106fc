package output_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/fleetmatch/logging"
	"github.com/katalvlaran/fleetmatch/output"
	"github.com/katalvlaran/fleetmatch/tensor"
	"github.com/stretchr/testify/require"
)

// pairs builds a K×2 assignment tensor from flat (vehicle, ride) values.
func pairs(t *testing.T, flat ...int) *tensor.Tensor[int] {
	t.Helper()
	m, err := tensor.FromSlice(flat, len(flat)/2, 2)
	require.NoError(t, err)

	return m
}

// chain builds root -> child -> leaf used by several tests.
func chain(t *testing.T, opts ...output.Option) (root, child, leaf *output.Node) {
	t.Helper()
	var err error
	root, err = output.NewNode(nil, pairs(t, 0, 0, 1, 1), opts...)
	require.NoError(t, err)
	child, err = output.NewNode(root, pairs(t, 0, 2))
	require.NoError(t, err)
	leaf, err = output.NewNode(child, pairs(t, 1, 4, 0, 3))
	require.NoError(t, err)

	return root, child, leaf
}

// TestNode_DepthAndParent checks tree links.
func TestNode_DepthAndParent(t *testing.T) {
	root, child, leaf := chain(t)
	require.Nil(t, root.Parent())
	require.Equal(t, 0, root.Depth())
	require.Same(t, root, child.Parent())
	require.Same(t, child, leaf.Parent())
	require.Equal(t, 2, leaf.Depth())
}

// TestNode_Collect replays assignments root first.
func TestNode_Collect(t *testing.T) {
	root, child, leaf := chain(t)

	got, err := leaf.Collect(3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2, 3}, {1, 4}, nil}, got)

	got, err = child.Collect(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}, {1}}, got)

	got, err = root.Collect(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}}, got)
}

// TestNode_CollectVehicleRange rejects vehicles outside the fleet.
func TestNode_CollectVehicleRange(t *testing.T) {
	_, _, leaf := chain(t)
	_, err := leaf.Collect(1)
	require.ErrorIs(t, err, output.ErrVehicleRange)
	_, err = leaf.Collect(-1)
	require.ErrorIs(t, err, output.ErrVehicleRange)

	neg, err := output.NewNode(nil, pairs(t, -1, 0))
	require.NoError(t, err)
	_, err = neg.Collect(4)
	require.ErrorIs(t, err, output.ErrVehicleRange)
}

// TestNode_WriteTo checks the line format, idle vehicles included.
func TestNode_WriteTo(t *testing.T) {
	_, _, leaf := chain(t)

	var buf bytes.Buffer
	n, err := leaf.WriteTo(&buf, 3)
	require.NoError(t, err)
	require.Equal(t, "3 0 2 3\n2 1 4\n0\n", buf.String())
	require.Equal(t, int64(buf.Len()), n)
}

// TestNode_WriteToFile writes under a temp dir and logs at Debug.
func TestNode_WriteToFile(t *testing.T) {
	var logBuf bytes.Buffer
	l := logging.NewSlog(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, _, leaf := chain(t, output.WithLogger(l))

	path := filepath.Join(t.TempDir(), "result.out")
	require.NoError(t, leaf.WriteToFile(path, 2))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "3 0 2 3\n2 1 4\n", string(content))

	// the logger set on the root is inherited down the chain
	require.Contains(t, logBuf.String(), "output: assignments written")
	require.Contains(t, logBuf.String(), "depth=2")
}

// TestNode_WriteToFileErrors leaves no file behind on bad input.
func TestNode_WriteToFileErrors(t *testing.T) {
	_, _, leaf := chain(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "short.out")
	err := leaf.WriteToFile(path, 1)
	require.ErrorIs(t, err, output.ErrVehicleRange)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)

	err = leaf.WriteToFile(filepath.Join(dir, "missing", "x.out"), 2)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestNewNode_Validation covers nil, shape and ride checks.
func TestNewNode_Validation(t *testing.T) {
	_, err := output.NewNode(nil, nil)
	require.ErrorIs(t, err, tensor.ErrNilTensor)

	wide, err := tensor.New[int](2, 3)
	require.NoError(t, err)
	_, err = output.NewNode(nil, wide)
	require.ErrorIs(t, err, output.ErrBadShape)

	flat, err := tensor.New[int](4)
	require.NoError(t, err)
	_, err = output.NewNode(nil, flat)
	require.ErrorIs(t, err, output.ErrBadShape)

	_, err = output.NewNode(nil, pairs(t, 0, -3))
	require.ErrorIs(t, err, output.ErrNegativeRide)

	empty, err := tensor.New[int]()
	require.NoError(t, err)
	node, err := output.NewNode(nil, empty)
	require.NoError(t, err)
	got, err := node.Collect(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{nil, nil}, got)
}

// TestNewNode_CopiesValue ensures later writes to the caller's tensor are invisible.
func TestNewNode_CopiesValue(t *testing.T) {
	v := pairs(t, 0, 1)
	node, err := output.NewNode(nil, v)
	require.NoError(t, err)
	require.NoError(t, v.Set(9, 0, 1))

	got, err := node.Collect(1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}}, got)
}

// TestNode_SharedParentConcurrent reads sibling branches in parallel.
func TestNode_SharedParentConcurrent(t *testing.T) {
	root, err := output.NewNode(nil, pairs(t, 0, 0))
	require.NoError(t, err)

	const branches = 16
	leaves := make([]*output.Node, branches)
	var i int
	for i = 0; i < branches; i++ {
		leaves[i], err = output.NewNode(root, pairs(t, 0, i+1))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	out := make([]string, branches)
	wg.Add(branches)
	for i = 0; i < branches; i++ {
		go func(id int) {
			defer wg.Done()
			var sb strings.Builder
			_, _ = leaves[id].WriteTo(&sb, 1)
			out[id] = sb.String()
		}(i)
	}
	wg.Wait()

	for i = 0; i < branches; i++ {
		require.Equal(t, "2 0 "+strconv.Itoa(i+1)+"\n", out[i])
	}
}
