package ecs

import "iter"

const blockSize = 64

// blockColumn stores components of type T in fixed size blocks so that
// pointers handed out by Get stay valid while the column grows.
type blockColumn[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	next      int
	live      int
}

func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.next
		c.next++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.filled = append(c.filled, new([blockSize]bool))
		}
	}

	c.blocks[index/blockSize][index%blockSize] = value
	c.filled[index/blockSize][index%blockSize] = true
	c.live++
	return index
}

func (c *blockColumn[T]) Get(index int) any {
	if !c.Has(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) Has(index int) bool {
	if index < 0 || index >= c.next {
		return false
	}
	return c.filled[index/blockSize][index%blockSize]
}

// Delete clears the slot and queues it for reuse. Indices of other
// components never move.
func (c *blockColumn[T]) Delete(index int) {
	if !c.Has(index) {
		return
	}
	var zero T
	c.blocks[index/blockSize][index%blockSize] = zero
	c.filled[index/blockSize][index%blockSize] = false
	c.freeSlots = append(c.freeSlots, index)
	c.live--
}

func (c *blockColumn[T]) Len() int {
	return c.live
}

func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.next; i++ {
			if !c.filled[i/blockSize][i%blockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
