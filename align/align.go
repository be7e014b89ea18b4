// Package align provides a generic minimum-cost alignment of two ordered
// sequences, in the classic edit-distance family.
//
// Callers supply a pairwise classifier. The classifier's verdict for a pair
// is carried through to the resulting operations, so domain-specific match
// kinds (beyond plain equality) survive the alignment.
package align

// Action labels one alignment operation. Equal, Append and Delete are
// produced by the algorithm itself; any other value originates from the
// caller's classifier.
type Action string

const (
	// Equal marks a pair the classifier judged identical.
	Equal Action = "equal"
	// Append marks an element present only in the updated sequence.
	Append Action = "append"
	// Delete marks an element present only in the original sequence.
	Delete Action = "delete"
)

// Operation is one step of an alignment. Read in order, the operations
// reconstruct the updated sequence from the original one.
type Operation[T any] struct {
	Action Action
	// Original is the element from the first sequence; nil for insertions.
	Original *T
	// Updated is the element from the second sequence; nil for deletions.
	Updated *T
}

// Costs: a pair the classifier calls Equal is free; any other pairing costs
// the same as an insert plus a delete, and ties prefer the pairing so that
// in-place changes surface with the classifier's verdict instead of
// dissolving into an Append/Delete pair.
const (
	costMatch  = 0
	costChange = 2
	costInsert = 1
	costDelete = 1
)

// Levenshtein returns a minimum-cost alignment of a and b under classify.
// Ties are broken deterministically (pairing, then insertion, then deletion),
// so identical inputs always produce identical operation lists. Time and
// space are O(len(a) * len(b)).
func Levenshtein[T any](a, b []T, classify func(orig, upd T) Action) []Operation[T] {
	// cost[i][j] is the cheapest alignment of a[:i] and b[:j];
	// verdict[i][j] caches the classifier for the pair (a[i], b[j]).
	cost := make([][]int, len(a)+1)
	for i := range cost {
		cost[i] = make([]int, len(b)+1)
	}
	verdict := make([][]Action, len(a))
	for i := range verdict {
		verdict[i] = make([]Action, len(b))
		for j := range verdict[i] {
			verdict[i][j] = classify(a[i], b[j])
		}
	}

	for i := 0; i <= len(a); i++ {
		for j := 0; j <= len(b); j++ {
			switch {
			case i == 0:
				cost[i][j] = j * costInsert
			case j == 0:
				cost[i][j] = i * costDelete
			default:
				pair := cost[i-1][j-1] + pairCost(verdict[i-1][j-1])
				ins := cost[i][j-1] + costInsert
				del := cost[i-1][j] + costDelete
				cost[i][j] = min(pair, min(ins, del))
			}
		}
	}

	// Walk back from the full alignment, preferring pairings on ties.
	var ops []Operation[T]
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && cost[i][j] == cost[i-1][j-1]+pairCost(verdict[i-1][j-1]):
			ops = append(ops, Operation[T]{
				Action:   verdict[i-1][j-1],
				Original: &a[i-1],
				Updated:  &b[j-1],
			})
			i--
			j--
		case j > 0 && cost[i][j] == cost[i][j-1]+costInsert:
			ops = append(ops, Operation[T]{Action: Append, Updated: &b[j-1]})
			j--
		default:
			ops = append(ops, Operation[T]{Action: Delete, Original: &a[i-1]})
			i--
		}
	}

	// Backtracking produced the operations in reverse.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

func pairCost(v Action) int {
	if v == Equal {
		return costMatch
	}
	return costChange
}
