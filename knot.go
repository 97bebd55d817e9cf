package calligraphy

// KnotRef is an index handle into a Ring's arena. It replaces the
// intrusive pointer-linked node the pen-convolution algorithm was
// originally described against: an arena of knots plus integer
// (prev, next) indices gives the same cyclic-list semantics without
// per-node heap allocation or lifetime hazards, and keeps the whole
// ring contiguous in memory.
type KnotRef int

// noKnot is the sentinel "no reference" value. A freshly zeroed Ring
// never exposes it to callers; it only appears as an internal marker.
const noKnot KnotRef = -1

type knotNode struct {
	Pos         Point
	Left, Right SideDescriptor
	prev, next  KnotRef
}

// Ring is a nonempty cyclic doubly linked sequence of knots, backed by
// a flat arena. Both path rings and pen rings use this type; which
// invariants hold (a single Regular boundary, vs. fully Explicit on
// both sides) depends on which builder produced it and, for pens,
// whether BrushMake has run.
type Ring struct {
	knots []knotNode
}

func (r *Ring) alloc(pos Point, left, right SideDescriptor) KnotRef {
	r.knots = append(r.knots, knotNode{Pos: pos, Left: left, Right: right, prev: noKnot, next: noKnot})
	return KnotRef(len(r.knots) - 1)
}

// NewKnotRing starts a new ring with a single self-linked knot and
// returns the ring and a reference to that knot. Grow it with
// InsertAfter.
func NewKnotRing(pos Point, left, right SideDescriptor) (*Ring, KnotRef) {
	r := &Ring{}
	k := r.alloc(pos, left, right)
	r.knots[k].prev = k
	r.knots[k].next = k
	return r, k
}

// InsertAfter places a new knot immediately after k and returns its
// reference. Post: Succ(k) == new, Pred(new) == k.
func (r *Ring) InsertAfter(k KnotRef, pos Point, left, right SideDescriptor) KnotRef {
	n := r.alloc(pos, left, right)
	succ := r.knots[k].next
	r.knots[k].next = n
	r.knots[n].prev = k
	r.knots[n].next = succ
	r.knots[succ].prev = n
	return n
}

// Succ returns the knot following k.
func (r *Ring) Succ(k KnotRef) KnotRef { return r.knots[k].next }

// Pred returns the knot preceding k.
func (r *Ring) Pred(k KnotRef) KnotRef { return r.knots[k].prev }

// Pos returns k's position.
func (r *Ring) Pos(k KnotRef) Point { return r.knots[k].Pos }

// SetPos overwrites k's position.
func (r *Ring) SetPos(k KnotRef, p Point) { r.knots[k].Pos = p }

// Left returns k's left side descriptor.
func (r *Ring) Left(k KnotRef) SideDescriptor { return r.knots[k].Left }

// Right returns k's right side descriptor.
func (r *Ring) Right(k KnotRef) SideDescriptor { return r.knots[k].Right }

// SetLeft overwrites k's left side descriptor.
func (r *Ring) SetLeft(k KnotRef, s SideDescriptor) { r.knots[k].Left = s }

// SetRight overwrites k's right side descriptor.
func (r *Ring) SetRight(k KnotRef, s SideDescriptor) { r.knots[k].Right = s }

// Len returns the number of knots allocated in the ring's arena. A
// ring built only through NewKnotRing/InsertAfter has Len equal to the
// number of knots reachable from any starting knot, since nothing else
// shrinks the arena.
func (r *Ring) Len() int { return len(r.knots) }

// Clone produces an independent ring with the same positions, side
// descriptors, and traversal orientation as the ring reachable from
// first, returning the new ring and the reference corresponding to
// first.
func (r *Ring) Clone(first KnotRef) (*Ring, KnotRef) {
	type saved struct {
		pos         Point
		left, right SideDescriptor
	}
	var items []saved
	for cur, started := first, false; !started || cur != first; cur = r.knots[cur].next {
		started = true
		n := r.knots[cur]
		items = append(items, saved{n.Pos, n.Left, n.Right})
	}

	nr := &Ring{}
	refs := make([]KnotRef, len(items))
	for i, it := range items {
		refs[i] = nr.alloc(it.pos, it.left, it.right)
	}
	count := len(refs)
	for i, ref := range refs {
		nr.knots[ref].prev = refs[(i-1+count)%count]
		nr.knots[ref].next = refs[(i+1)%count]
	}
	return nr, refs[0]
}

// Reverse flips traversal direction of the ring reachable from first
// and swaps every knot's Left and Right payloads in place, mutating
// the ring rather than duplicating it. If the ring had exactly one
// knot with an old Right == Regular (a path ring's endpoint), that
// knot becomes the new head: its Left is forced to Open and its new
// predecessor's Right is forced to Regular, so the reversed ring
// again has a single well-formed path boundary. Otherwise first is
// returned unchanged. A pen ring, which has no Regular sides at all,
// always falls into the second case and keeps its original reference
// as head, which is exactly what reversing a pen for an "own opposite"
// re-traversal needs.
func (r *Ring) Reverse(first KnotRef) KnotRef {
	var all []KnotRef
	for cur, started := first, false; !started || cur != first; cur = r.knots[cur].next {
		started = true
		all = append(all, cur)
	}

	rightRegularCount := 0
	rightRegularRef := noKnot
	for _, k := range all {
		n := &r.knots[k]
		if n.Right.Kind == SideRegular {
			rightRegularCount++
			rightRegularRef = k
		}
	}

	for _, k := range all {
		n := &r.knots[k]
		n.prev, n.next = n.next, n.prev
		n.Left, n.Right = n.Right, n.Left
	}

	if rightRegularCount == 1 {
		newHead := rightRegularRef
		pred := r.knots[newHead].prev
		r.knots[newHead].Left = Open()
		r.knots[pred].Right = Regular()
		return newHead
	}
	return first
}

// Free disposes of the ring's knots. The arena is simply dropped;
// callers that still hold a KnotRef into a freed ring must not use it.
func (r *Ring) Free() {
	r.knots = nil
}
