package lingoswap

import "strings"

// ChangeKind classifies a single diff token.
type ChangeKind int

const (
	// ChangeEqual marks a token present in both versions.
	ChangeEqual ChangeKind = iota
	// ChangeDelete marks a token only present in the original.
	ChangeDelete
	// ChangeInsert marks a token only present in the corrected version.
	ChangeInsert
)

// Change is one token of a correction diff.
type Change struct {
	Kind  ChangeKind
	Token string
}

// DiffResult is the token-level difference between a selection and its
// corrected version.
type DiffResult struct {
	Changes []Change
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Inserted  int
	Deleted   int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	var s DiffStats
	for _, c := range d.Changes {
		switch c.Kind {
		case ChangeInsert:
			s.Inserted++
		case ChangeDelete:
			s.Deleted++
		default:
			s.Unchanged++
		}
	}
	return s
}

// HasChanges returns true if the corrected text differs from the original.
func (d *DiffResult) HasChanges() bool {
	for _, c := range d.Changes {
		if c.Kind != ChangeEqual {
			return true
		}
	}
	return false
}

// String renders the diff inline, marking deletions as [-token-] and
// insertions as {+token+}.
func (d *DiffResult) String() string {
	parts := make([]string, 0, len(d.Changes))
	for _, c := range d.Changes {
		switch c.Kind {
		case ChangeDelete:
			parts = append(parts, "[-"+c.Token+"-]")
		case ChangeInsert:
			parts = append(parts, "{+"+c.Token+"+}")
		default:
			parts = append(parts, c.Token)
		}
	}
	return strings.Join(parts, " ")
}

// DiffText compares an original selection with its corrected version and
// returns a token-level diff. Tokens are whitespace-separated words; the diff
// is the shortest edit script derived from the longest common subsequence.
func DiffText(original, corrected string) *DiffResult {
	a := strings.Fields(original)
	b := strings.Fields(corrected)

	// LCS lengths, lcs[i][j] = LCS of a[i:] and b[j:].
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	result := &DiffResult{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result.Changes = append(result.Changes, Change{Kind: ChangeEqual, Token: a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			result.Changes = append(result.Changes, Change{Kind: ChangeDelete, Token: a[i]})
			i++
		default:
			result.Changes = append(result.Changes, Change{Kind: ChangeInsert, Token: b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		result.Changes = append(result.Changes, Change{Kind: ChangeDelete, Token: a[i]})
	}
	for ; j < len(b); j++ {
		result.Changes = append(result.Changes, Change{Kind: ChangeInsert, Token: b[j]})
	}

	return result
}
