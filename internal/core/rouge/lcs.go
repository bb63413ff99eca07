package rouge

// lcsLength computes the length of the longest common subsequence of two
// token sequences with the classical dynamic-programming recurrence.
//
// Only the length is needed, never the subsequence itself, so the table is
// kept as two rolling rows spanning the shorter sequence: O(m*n) time,
// O(min(m,n)) space.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Rows span the shorter sequence.
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
