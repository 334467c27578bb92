package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathArena(t *testing.T) {
	var a pathArena
	s0 := a.add("worried", noParent)
	s1 := a.add("nervous", s0)
	s2 := a.add("fear", s1)
	s3 := a.add("anger", s2)
	alt := a.add("anxiety", s0)

	assert.Equal(t, []string{"worried", "nervous", "fear", "anger"}, a.path(s3))
	assert.Equal(t, []string{"worried", "anxiety"}, a.path(alt))
	assert.Equal(t, []string{"worried"}, a.path(s0))

	assert.True(t, a.inSuffix(s3, "anger", 3))
	assert.True(t, a.inSuffix(s3, "nervous", 3))
	assert.False(t, a.inSuffix(s3, "worried", 3), "outside the window")
	assert.True(t, a.inSuffix(s3, "worried", 4))
	assert.False(t, a.inSuffix(alt, "fear", 3), "other branch")
	assert.False(t, a.inSuffix(s3, "anger", 0))
}

func TestMinQueue_OrdersByCostThenPush(t *testing.T) {
	q := newMinQueue()
	q.push(2.0, 0)
	q.push(1.0, 1)
	q.push(2.0, 2)
	q.push(0.5, 3)

	var steps []int
	for !q.empty() {
		item, ok := q.pop()
		assert.True(t, ok)
		steps = append(steps, item.step)
	}
	assert.Equal(t, []int{3, 1, 0, 2}, steps)

	_, ok := q.pop()
	assert.False(t, ok)
}
