package huffman

// Comparator orders values of type T.  Compare returns a negative number if
// a sorts before b, a positive number if a sorts after b, and 0 if they tie.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// MinHeap is a binary min-heap stored in an implicit array: the children of
// index i are 2i+1 and 2i+2, and its parent is (i-1)/2.
//
// Ties are broken by insertion order: a value is only moved above another
// value that compares strictly greater.
type MinHeap[T any, C Comparator[T]] struct {
	cmp  C
	list []T
}

// NewMinHeap constructs an empty MinHeap ordered by cmp, with room for
// capacity values before reallocating.
func NewMinHeap[T any, C Comparator[T]](cmp C, capacity int) *MinHeap[T, C] {
	return &MinHeap[T, C]{cmp: cmp, list: make([]T, 0, capacity)}
}

// Len returns the number of values in the heap.
func (h *MinHeap[T, C]) Len() int {
	return len(h.list)
}

// Peek returns the minimum value without removing it.
func (h *MinHeap[T, C]) Peek() (T, bool) {
	if len(h.list) == 0 {
		var zero T
		return zero, false
	}
	return h.list[0], true
}

// Insert adds x to the heap.
func (h *MinHeap[T, C]) Insert(x T) {
	h.list = append(h.list, x)
	h.up(len(h.list) - 1)
}

// ExtractMin removes and returns the minimum value.  It returns ErrEmptyHeap
// if the heap holds no values.
func (h *MinHeap[T, C]) ExtractMin() (T, error) {
	var zero T
	n := len(h.list)
	if n == 0 {
		return zero, ErrEmptyHeap
	}

	x := h.list[0]
	last := n - 1
	h.swap(0, last)
	h.list[last] = zero
	h.list = h.list[:last]
	h.down(0)
	return x, nil
}

// Check reports whether every parent compares less than or equal to its
// children.
func (h *MinHeap[T, C]) Check() bool {
	for i := 1; i < len(h.list); i++ {
		if h.less(i, (i-1)/2) {
			return false
		}
	}
	return true
}

func (h *MinHeap[T, C]) less(i, j int) bool {
	return h.cmp.Compare(h.list[i], h.list[j]) < 0
}

func (h *MinHeap[T, C]) swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *MinHeap[T, C]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.swap(p, i)
		i = p
	}
}

func (h *MinHeap[T, C]) down(i int) {
	n := len(h.list)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		smallest := l
		if r := l + 1; r < n && h.less(r, l) {
			smallest = r
		}
		if h.less(i, smallest) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
