// Package tensor provides a dense, row-major, n-dimensional array used to
// carry weight matrices into the assignment solver and index matrices out
// of it.
//
// 🚀 What is a Tensor?
//
//	A flat buffer plus a dimension vector. Element (i0, i1, …, ik) lives at
//	offset ((i0·d1 + i1)·d2 + …)·dk + ik, so a 2-D tensor is an ordinary
//	row-major matrix and a 1-D tensor is a list.
//
// ✨ Key features:
//   - generic over integer and floating element types (Number)
//   - flat (AtFlat/SetFlat) and multi-index (At/Set) access with sentinel errors
//   - default-fill construction and construction from an existing slice
//   - Clone for deep copies, Share for a second handle on the same buffer
//   - zero-size shapes collapse to the empty tensor (no dims, Size 0)
//
// ⚙️ Usage:
//
//	w, _ := tensor.FromSlice([]int{3, 1, 1, 3, 2, 2}, 3, 2)
//	v, _ := w.At(2, 1) // 2
//
// Complexity:
//
//   - Construction: O(Size)
//   - At/Set/AtFlat/SetFlat: O(rank)/O(1)
//   - Clone: O(Size); Share: O(rank)
package tensor
