package tensor

// ComputeStrides fills strides with row-major steps for extents and returns
// the element count. The last axis gets stride 1 and every earlier axis the
// product of the extents after it.
func ComputeStrides(extents, strides []int) int {
	acc := 1
	for k := len(extents) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= extents[k]
	}
	return acc
}

// CalcSize returns the product of extents.
func CalcSize(extents []int) int {
	n := 1
	for _, e := range extents {
		n *= e
	}
	return n
}

// CheckBounds reports whether indices address an element inside s: one index
// per axis, each in [0, extent). It does not look at Start or at the length
// of any backing buffer.
func CheckBounds(s *Slice, indices ...int) bool {
	if len(indices) != len(s.Extents) {
		return false
	}
	for k, idx := range indices {
		if idx < 0 || idx >= s.Extents[k] {
			return false
		}
	}
	return true
}

// SliceDim derives the rank N-1 descriptor obtained by fixing axis dim of src
// to offset. The remaining axes keep their extents, strides and relative order.
//
// Panics with ErrRankMismatch if src has rank below 2 or dim is not an axis of
// src, and with ErrOutOfRange if offset is not below src.Extents[dim].
func SliceDim(dim, offset int, src Slice) Slice {
	n := src.Order()
	if n < 2 {
		fail("slice", ErrRankMismatch, "cannot slice a rank %d descriptor", n)
	}
	if dim < 0 || dim >= n {
		fail("slice", ErrRankMismatch, "axis %d not in [0, %d)", dim, n)
	}
	if offset < 0 || offset >= src.Extents[dim] {
		fail("slice", ErrOutOfRange, "offset %d for axis %d with extent %d", offset, dim, src.Extents[dim])
	}

	dst := Slice{
		Start:   src.Start + src.Strides[dim]*offset,
		Extents: make([]int, 0, n-1),
		Strides: make([]int, 0, n-1),
	}
	for k := 0; k < n; k++ {
		if k == dim {
			continue
		}
		dst.Extents = append(dst.Extents, src.Extents[k])
		dst.Strides = append(dst.Strides, src.Strides[k])
	}
	dst.Size = CalcSize(dst.Extents)
	return dst
}
