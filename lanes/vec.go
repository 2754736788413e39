// Package lanes provides portable SIMD-style vector operations with
// runtime width dispatch.
//
// Numeric kernels are written once against the generic Vec interface and
// executed at the widest lane count the running CPU supports, with a
// scalar single-lane fallback that is always valid. The set of widths is
// closed: 512-bit, 256-bit, 128-bit (NEON, WASM simd128) and scalar.
//
// Basic usage:
//
//	op := &myOp{span: lanes.NewSrcDest(input, output)}
//	result := lanes.Dispatch[[]float32](op)
//
// where myOp's Eval methods instantiate a single generic kernel body at
// each width. See the vecmath package for a complete kernel.
package lanes

// MaxLanes is the lane count of the widest supported vector width.
// Kernels can use it to size scratch buffers that hold one vector of
// any width.
const MaxLanes = 16

// Vec is the contract a concrete vector type of a fixed width must
// satisfy. V is the implementing type itself and M is its same-width
// mask type. Kernels written against Vec contain no width- or
// instruction-set-specific code.
//
// Splat, Load, LoadPartial and FirstN are factories; they ignore the
// receiver value, so they are usable on the zero value of V.
type Vec[V, M any] interface {
	// Lanes returns the number of float32 lanes in this vector width.
	Lanes() int

	// Splat broadcasts x to all lanes.
	Splat(x float32) V

	// Load reads Lanes() elements from src. It panics if src is shorter,
	// which indicates a caller contract violation.
	Load(src []float32) V

	// LoadPartial reads up to Lanes() elements from src. Lanes beyond
	// len(src) are filled with zero. The fill value is defined but
	// carries no meaning; callers that combine partial vectors must mask
	// or blend the filled lanes away themselves.
	LoadPartial(src []float32) V

	// Store writes all lanes to dst. It panics if dst is shorter than
	// Lanes().
	Store(dst []float32)

	// StoreN writes the first n lanes to dst, leaving dst[n:] untouched.
	StoreN(dst []float32, n int)

	// Add returns the elementwise sum of the receiver and b.
	Add(b V) V

	// Sub returns the elementwise difference of the receiver and b.
	Sub(b V) V

	// Mul returns the elementwise product of the receiver and b.
	Mul(b V) V

	// Div returns the elementwise quotient of the receiver and b.
	Div(b V) V

	// Max returns the elementwise maximum of the receiver and b.
	Max(b V) V

	// FoldSplat horizontally combines all lanes with combine, seeded
	// with seed, and broadcasts the resulting scalar back to all lanes.
	// The rebroadcast lets callers keep working in vector form after a
	// horizontal reduction.
	FoldSplat(seed float32, combine func(acc, x float32) float32) V

	// FirstN returns a mask with the first n lanes set. n is clamped to
	// [0, Lanes()].
	FirstN(n int) M

	// Blend selects lanes from b where m is set and from the receiver
	// elsewhere.
	Blend(b V, m M) V
}

// The width variants form a closed set; every kernel is dispatched to
// exactly one of them.
var (
	_ Vec[Vec1, Mask1]   = Vec1{}
	_ Vec[Vec4, Mask4]   = Vec4{}
	_ Vec[Vec8, Mask8]   = Vec8{}
	_ Vec[Vec16, Mask16] = Vec16{}
)
