package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNextOrderAppends(t *testing.T) {
	assert.Equal(t, 0, NextOrder(0))
	assert.Equal(t, 5, NextOrder(5))
}

func TestShiftDownDocuments(t *testing.T) {
	assert.Equal(t, bson.M{"order": bson.M{"$gt": 2}}, ShiftDownFilter(2))
	assert.Equal(t, bson.M{"$inc": bson.M{"order": -1}}, ShiftDownUpdate())
}

// applyShiftDown mirrors what UpdateMany(ShiftDownFilter, ShiftDownUpdate)
// does to the collection, so the dense-ordering property can be checked
// without a database.
func applyShiftDown(orders []int, deleted int) []int {
	out := make([]int, 0, len(orders))
	for _, o := range orders {
		if o == deleted {
			continue
		}
		if o > deleted {
			o--
		}
		out = append(out, o)
	}
	return out
}

func TestShiftDownKeepsOrderingDense(t *testing.T) {
	// Delete position 1 out of 0..4: later siblings each move down by one.
	got := applyShiftDown([]int{0, 1, 2, 3, 4}, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	// Deleting the last position shifts nothing.
	got = applyShiftDown([]int{0, 1, 2}, 2)
	assert.Equal(t, []int{0, 1}, got)

	// No duplicates, no gaps.
	seen := map[int]bool{}
	got = applyShiftDown([]int{0, 1, 2, 3, 4, 5}, 3)
	for i, o := range got {
		assert.False(t, seen[o])
		seen[o] = true
		assert.Equal(t, i, o)
	}
}
