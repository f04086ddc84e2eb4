package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okillli/MinesweeperNew-sub001/util/collections"
)

func TestSet(t *testing.T) {
	set := make(collections.Set[int])
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains(3))

	set.Add(3)
	set.Add(3)
	set.Add(7)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(3))
	assert.True(t, set.Contains(7))

	set.Remove(3)
	set.Remove(3)
	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Contains(3))

	assert.ElementsMatch(t, []int{7}, set.Values())
}
