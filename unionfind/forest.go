package unionfind

import "fmt"

// Forest is a weighted, path-compressing union-find over labels 1..capacity.
// It holds no notion of how many components exist; callers count merges
// through Union's return value.
//
// Forest is not safe for concurrent use.
type Forest struct {
	parent []Label
}

// New returns a Forest able to hold labels 1..capacity.
// No label is a member until MakeSet is called for it.
// Complexity: O(capacity).
func New(capacity int) *Forest {
	if capacity < 0 {
		capacity = 0
	}
	return &Forest{parent: make([]Label, capacity+1)}
}

// Cap returns the largest label the forest can hold.
func (f *Forest) Cap() int {
	return len(f.parent) - 1
}

// MakeSet registers l as a singleton root.
// Complexity: O(1).
func (f *Forest) MakeSet(l Label) {
	f.check(l)
	f.parent[l] = l
}

// Contains reports whether l has been registered with MakeSet.
func (f *Forest) Contains(l Label) bool {
	return l > 0 && int(l) < len(f.parent) && f.parent[l].Assigned()
}

// Find returns the root of l and the number of nodes visited on the way,
// counting l itself (a root yields depth 1). Every hop halves the path:
// the visited node is re-pointed at its grandparent before advancing.
// Complexity: amortized O(α(n)).
func (f *Forest) Find(l Label) (root Label, depth int) {
	f.member(l)
	depth = 1
	for f.parent[l] != l {
		f.parent[l] = f.parent[f.parent[l]]
		l = f.parent[l]
		depth++
	}
	return l, depth
}

// Root is Find without the depth.
func (f *Forest) Root(l Label) Label {
	r, _ := f.Find(l)
	return r
}

// Connected reports whether p and q share a root.
func (f *Forest) Connected(p, q Label) bool {
	return f.Root(p) == f.Root(q)
}

// Union merges the sets of p and q. It returns false when they were already
// connected. Otherwise the root reached with the smaller depth is attached
// beneath the other root; on equal depth q's root goes under p's root.
// Depths are measured after the connectivity check has compressed both paths.
func (f *Forest) Union(p, q Label) bool {
	if f.Connected(p, q) {
		return false
	}
	pRoot, pDepth := f.Find(p)
	qRoot, qDepth := f.Find(q)
	if pDepth < qDepth {
		f.parent[pRoot] = qRoot
	} else {
		f.parent[qRoot] = pRoot
	}
	return true
}

// SetParent overwrites the parent of l. The labeler uses it in its second
// pass to cache a resolved root; root must already be the root of l.
func (f *Forest) SetParent(l, root Label) {
	f.member(l)
	f.member(root)
	f.parent[l] = root
}

// Parent returns the stored parent of l without compressing.
func (f *Forest) Parent(l Label) Label {
	f.member(l)
	return f.parent[l]
}

func (f *Forest) check(l Label) {
	if l <= 0 || int(l) >= len(f.parent) {
		panic(fmt.Errorf("%w: %d (capacity %d)", ErrInvalidLabel, int(l), f.Cap()))
	}
}

func (f *Forest) member(l Label) {
	f.check(l)
	if !f.parent[l].Assigned() {
		panic(fmt.Errorf("%w: %d not registered", ErrInvalidLabel, int(l)))
	}
}
