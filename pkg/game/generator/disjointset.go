package generator

// DisjointSet is a union-find forest over dense room IDs, with path
// compression and union by size. Two rooms share a representative exactly
// when a chain of accepted connections links them.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// NewDisjointSet creates n singleton sets for IDs 0..n-1.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the representative of the set containing i.
func (d *DisjointSet) Find(i int) int {
	if d.parent[i] != i {
		d.parent[i] = d.Find(d.parent[i])
	}
	return d.parent[i]
}

// Union merges the sets containing i and j. It returns true if the sets
// were distinct and have been merged.
func (d *DisjointSet) Union(i, j int) bool {
	i, j = d.Find(i), d.Find(j)
	if i == j {
		return false
	}
	// Hang the smaller tree under the larger one.
	if d.size[i] < d.size[j] {
		i, j = j, i
	}
	d.parent[j] = i
	d.size[i] += d.size[j]
	d.count--
	return true
}

// Count returns the number of remaining components.
func (d *DisjointSet) Count() int {
	return d.count
}
