// Package strata implements a space-efficient resizable array. Elements are
// stored in blocks of stratified capacities B, B^2, ..., B^(r-1), so the
// total allocated capacity stays at N + O(N^(1/r)) instead of the up-to-2N
// reserved by a doubling array, while indexed access remains O(1) and
// append/pop O(r) amortized.
package strata

import (
	"github.com/pkg/errors"

	"github.com/outofforest/strata/blocks"
)

// ErrEmptyArray is returned when an element is requested from an empty array.
var ErrEmptyArray = errors.New("array is empty")

// ErrIndexOutOfRange is returned when an index is outside the array.
var ErrIndexOutOfRange = errors.New("index out of range")

// Array is a resizable sequence of elements. It is not safe for concurrent
// mutation.
type Array[T any] struct {
	// levels[k] holds the blocks of capacity base^k, k in [1, levelCount-1].
	// Index 0 is unused.
	levels     []*blocks.List[T]
	levelCount int
	base       int
	size       int

	// tailLen is the number of occupied slots in the last level-1 block, the
	// only block allowed to be partially filled.
	tailLen int
}

// New creates new array with the default level count.
func New[T any]() *Array[T] {
	a, _ := NewWithLevels[T](DefaultLevels)
	return a
}

// NewWithLevels creates new array with the given level count.
func NewWithLevels[T any](levels int) (*Array[T], error) {
	if levels < 2 {
		return nil, errors.Errorf("level count must be at least 2, got: %d", levels)
	}

	a := &Array[T]{levelCount: levels}
	a.initLevels(InitialBase)
	return a, nil
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.size
}

// IsEmpty returns true if the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Base returns the current base block size.
func (a *Array[T]) Base() int {
	return a.base
}

// Levels returns the configured level count.
func (a *Array[T]) Levels() int {
	return a.levelCount
}

// Cap returns the total number of allocated element slots across all blocks.
func (a *Array[T]) Cap() int {
	total := 0
	for k := 1; k < a.levelCount; k++ {
		total += a.levels[k].Len() * pow(a.base, k)
	}
	return total
}

// Append adds x at the end of the array.
func (a *Array[T]) Append(x T) {
	if a.size == pow(a.base, a.levelCount) {
		a.rebuild(2 * a.base)
	}
	if a.levels[1].Len() == 2*a.base && a.tailLen == a.base {
		a.combine()
	}
	if a.levels[1].Len() == 0 || a.tailLen == a.base {
		a.levels[1].Push(blocks.New[T](a.base))
		a.tailLen = 0
	}

	*a.levels[1].Last().Item(a.tailLen) = x
	a.tailLen++
	a.size++
}

// Pop removes and returns the last element of the array.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, errors.WithStack(ErrEmptyArray)
	}

	if a.base >= 2*InitialBase && a.size == pow(a.base/4, a.levelCount) {
		a.rebuild(a.base / 2)
	}
	if a.levels[1].Len() == 0 {
		a.split()
	}

	a.tailLen--
	a.size--

	slot := a.levels[1].Last().Item(a.tailLen)
	x := *slot
	// Vacated slots are zeroed so the GC releases whatever T references.
	*slot = zero

	if a.tailLen == 0 {
		a.levels[1].Pop()
		if a.levels[1].Len() > 0 {
			a.tailLen = a.base
		}
	}
	return x, nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index: %d, length: %d", i, a.size)
	}
	return *a.item(i), nil
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, x T) error {
	if i < 0 || i >= a.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index: %d, length: %d", i, a.size)
	}
	*a.item(i) = x
	return nil
}

// Item returns a pointer to the element at index i. The pointer stays valid
// until the next structural change of the array.
func (a *Array[T]) Item(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index: %d, length: %d", i, a.size)
	}
	return a.item(i), nil
}

// Clone returns a deep copy of the array. The copy shares no storage with
// the original.
func (a *Array[T]) Clone() *Array[T] {
	clone := &Array[T]{levelCount: a.levelCount}
	clone.initLevels(a.base)
	for i := 0; i < a.size; i++ {
		clone.Append(*a.item(i))
	}
	return clone
}

// Reset releases all blocks and returns the array to its initial empty
// state.
func (a *Array[T]) Reset() {
	a.initLevels(InitialBase)
	a.size = 0
	a.tailLen = 0
}

// locate maps a logical index to (level, offset within level). Levels are
// consumed from the highest down to level 1, matching the logical order of
// the stored sequence. Both read and write paths resolve through here.
func (a *Array[T]) locate(i int) (int, int) {
	for k := a.levelCount - 1; k >= 2; k-- {
		span := a.levels[k].Len() * pow(a.base, k)
		if i < span {
			return k, i
		}
		i -= span
	}
	return 1, i
}

// item resolves a logical index to its element slot. Callers must
// bounds-check i first.
func (a *Array[T]) item(i int) *T {
	k, offset := a.locate(i)
	capacity := pow(a.base, k)
	return a.levels[k].Get(offset / capacity).Item(offset % capacity)
}

func (a *Array[T]) initLevels(base int) {
	a.base = base
	a.levels = make([]*blocks.List[T], a.levelCount)
	for k := 1; k < a.levelCount; k++ {
		a.levels[k] = blocks.NewList[T](2 * base)
	}
}

func pow(base, exp int) int {
	result := 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
