package catalog

import "go.mongodb.org/mongo-driver/bson"

// Navbar menu positions stay dense (0..N-1): a new entry is appended at the
// current count, and deleting position k shifts every later sibling down one.

// NextOrder returns the append position for a new navbar category.
func NextOrder(count int64) int {
	return int(count)
}

// ShiftDownFilter selects the siblings that sat after the deleted position.
func ShiftDownFilter(deletedOrder int) bson.M {
	return bson.M{"order": bson.M{"$gt": deletedOrder}}
}

// ShiftDownUpdate moves the selected siblings down by one position.
func ShiftDownUpdate() bson.M {
	return bson.M{"$inc": bson.M{"order": -1}}
}
