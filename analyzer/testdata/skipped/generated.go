// Code generated by hand for tests. DO NOT EDIT.

package skipped

func generated() int {
	twos, total := repeat(2, 10), 0

	for range 3 {
		total += count(twos)
	}

	return total
}
