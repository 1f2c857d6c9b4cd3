package strata

import (
	"github.com/pkg/errors"
)

// verify checks the representation invariants. It holds between public
// operations; combine and split violate some of the bounds transiently.
func (a *Array[T]) verify() error {
	if a.base < InitialBase {
		return errors.Errorf("base %d below initial base %d", a.base, InitialBase)
	}
	b := a.base
	for b > InitialBase && b%2 == 0 {
		b /= 2
	}
	if b != InitialBase {
		return errors.Errorf("base %d is not a power-of-two multiple of %d", a.base, InitialBase)
	}

	total := 0
	for k := 1; k < a.levelCount; k++ {
		level := a.levels[k]
		if level.Len() > 2*a.base {
			return errors.Errorf("level %d holds %d blocks, limit: %d", k, level.Len(), 2*a.base)
		}
		capacity := pow(a.base, k)
		for j := 0; j < level.Len(); j++ {
			if level.Get(j).Capacity() != capacity {
				return errors.Errorf("block %d at level %d has capacity %d, expected: %d",
					j, k, level.Get(j).Capacity(), capacity)
			}
		}
		total += level.Len() * capacity
	}

	switch {
	case a.levels[1].Len() > 0:
		if a.tailLen < 1 || a.tailLen > a.base {
			return errors.Errorf("tail length %d outside [1, %d]", a.tailLen, a.base)
		}
	case a.tailLen != 0:
		return errors.Errorf("tail length %d with no blocks at level 1", a.tailLen)
	}

	expected := total
	if a.levels[1].Len() > 0 {
		expected -= a.base - a.tailLen
	}
	if expected != a.size {
		return errors.Errorf("element count %d does not match block contents %d", a.size, expected)
	}

	if a.size > pow(a.base, a.levelCount) {
		return errors.Errorf("element count %d exceeds capacity bound %d", a.size, pow(a.base, a.levelCount))
	}
	if a.base > InitialBase && a.size < pow(a.base/4, a.levelCount) {
		return errors.Errorf("element count %d below shrink bound %d", a.size, pow(a.base/4, a.levelCount))
	}

	return nil
}
