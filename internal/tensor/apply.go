package tensor

// eachStrided applies f to every element of t in row-major order.
func eachStrided[T Number](t Tensorlike[T], f func(*T)) {
	for it := t.Begin(); !it.Done(); it.Next() {
		f(it.Ptr())
	}
}

// zipStrided walks dst and src in lockstep, each through its own strides,
// and applies f(dstElem, srcElem). Extents must match exactly.
func zipStrided[T Number](op string, dst, src Tensorlike[T], f func(*T, T)) {
	requireSameExtents(op, dst.slice(), src.slice())
	s := src.Begin()
	for d := dst.Begin(); !d.Done(); d.Next() {
		f(d.Ptr(), s.Value())
		s.Next()
	}
}

func addTo[T Number](a *T, b T) { *a += b }
func subTo[T Number](a *T, b T) { *a -= b }
func mulTo[T Number](a *T, b T) { *a *= b }
func divTo[T Number](a *T, b T) { *a /= b }
func modTo[T Integer](a *T, b T) { *a %= b }
func assignTo[T Number](a *T, b T) { *a = b }
