// Code generated by hand for tests. DO NOT EDIT.

package generated

import "iter"

func repeat(v, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}

func count(s iter.Seq[int]) (n int) {
	for range s {
		n++
	}

	return n
}

func generated() int {
	twos, total := repeat(2, 10), 0

	for range 3 {
		total += count(twos) // want "Lazy sequence 'twos' is re-evaluated"
	}

	return total
}
