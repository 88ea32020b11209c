package combinatorics

// IntegerPartitions returns the partitions of n into at most maxLen
// positive parts. Each partition lists its parts in non-increasing order
// and partitions appear in the order produced by the ZS2 algorithm of
// Zoghbi and Stojmenović, e.g. for n = 4:
//
//	[1 1 1 1] [2 1 1] [2 2] [3 1] [4]
//
// n = 0 yields one empty partition and n = 1 yields [[1]].
func IntegerPartitions(n, maxLen int) [][]int {
	var partitions [][]int
	switch {
	case n < 0:
		return nil
	case n == 0:
		return [][]int{{}}
	case n == 1:
		if maxLen < 1 {
			return nil
		}

		return [][]int{{1}}
	}

	// x[1..m] holds the current partition; x[0] is a sentinel.
	x := make([]int, n+1)
	for i := range x {
		x[i] = 1
	}
	emit := func(m int) {
		if m <= maxLen {
			part := make([]int, m)
			copy(part, x[1:m+1])
			partitions = append(partitions, part)
		}
	}

	emit(n) // all ones
	x[0] = 1
	x[1] = 2
	h := 1
	m := n - 1
	emit(m)

	for x[1] != n {
		if m-h > 1 {
			h++
			x[h] = 2
			m--
		} else {
			j := m - 2
			for x[j] == x[m-1] {
				x[j] = 1
				j--
			}
			h = j + 1
			x[h] = x[m-1] + 1
			r := x[m] + x[m-1]*(m-h-1)
			x[m] = 1
			if m-h > 1 {
				x[m-1] = 1
			}
			m = h + r - 1
		}
		emit(m)
	}

	return partitions
}
