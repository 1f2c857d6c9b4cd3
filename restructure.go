package strata

import (
	"github.com/outofforest/strata/blocks"
)

// combine makes room at level 1 by merging blocks upwards. The lowest level
// with spare room gains one block; every level below it is reduced from 2B
// to B blocks by merging its first B blocks into a single block one level
// up. Elements keep their logical order because each level is consumed from
// its oldest blocks.
func (a *Array[T]) combine() {
	target := 0
	for k := 1; k < a.levelCount; k++ {
		if a.levels[k].Len() < 2*a.base {
			target = k
			break
		}
	}
	if target == 0 {
		// Append rebuilds before every level can fill up.
		panic("combine with all levels full")
	}

	for i := target - 1; i >= 1; i-- {
		blockSize := pow(a.base, i)
		big := blocks.New[T](blockSize * a.base)
		for j := 0; j < a.base; j++ {
			copy(big.Items(j*blockSize, (j+1)*blockSize), a.levels[i].Get(j).Items(0, blockSize))
		}
		a.levels[i].RemoveRange(0, a.base)
		a.levels[i+1].Push(big)
	}
}

// split refills level 1 by breaking down the last block of the lowest
// populated level above it. At every intermediate level B-1 of the new
// blocks stay and the last one is carried further down, so the walk ends
// with one block on each intermediate level and B full blocks at level 1.
func (a *Array[T]) split() {
	source := 0
	for k := 2; k < a.levelCount; k++ {
		if a.levels[k].Len() > 0 {
			source = k
			break
		}
	}
	if source == 0 {
		// Pop only splits while elements remain above level 1.
		panic("split with no block to split")
	}

	big := a.levels[source].Detach()
	for i := source - 1; i >= 1; i-- {
		blockSize := pow(a.base, i)
		parts := make([]*blocks.Block[T], a.base)
		for j := range parts {
			parts[j] = blocks.New[T](blockSize)
			copy(parts[j].Items(0, blockSize), big.Items(j*blockSize, (j+1)*blockSize))
		}

		if i == 1 {
			for _, part := range parts {
				a.levels[1].Push(part)
			}
			a.tailLen = a.base
			return
		}

		for _, part := range parts[:a.base-1] {
			a.levels[i].Push(part)
		}
		big = parts[a.base-1]
	}
}
