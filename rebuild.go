package strata

// rebuild rescales the base block size. All elements are captured in logical
// order, the levels are torn down, and every element is re-appended through
// the standard append path with the new base.
func (a *Array[T]) rebuild(newBase int) {
	snapshot := make([]T, a.size)
	for i := range snapshot {
		snapshot[i] = *a.item(i)
	}

	a.initLevels(newBase)
	a.size = 0
	a.tailLen = 0

	for i := range snapshot {
		a.Append(snapshot[i])
	}
}
