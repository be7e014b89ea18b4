package slotguard

import (
	"fmt"
	"strings"

	"github.com/slotguard/slotguard-go/align"
)

// Actions produced by the storage layout classifier, beyond the alignment
// primitive's own vocabulary.
const (
	// ActionTypechange marks a slot whose field was renamed but keeps the
	// same rendered type: the slot's encoding is unchanged, so the layout is
	// preserved.
	ActionTypechange align.Action = "typechange"
	// ActionRename marks a slot whose field name is reused for a different
	// type: old bytes would be read under a new interpretation.
	ActionRename align.Action = "rename"
	// ActionReplace marks a slot where both name and type changed.
	ActionReplace align.Action = "replace"
)

// Operation is one classified storage layout change.
type Operation = align.Operation[StorageItem]

// Diff aligns two storage layouts and classifies every change. Pure appends
// grow the layout without touching occupied slots and are dropped from the
// result; matches, in-place changes, and deletions are returned in alignment
// order.
//
// Type equality compares the rendered type labels, not the canonical keys:
// two keys with identical rendered labels are considered type-equal. No
// deeper structural comparison is attempted.
func Diff(original, updated *StorageLayout) []Operation {
	classify := func(o, u StorageItem) align.Action {
		nameMatches := o.Label == u.Label
		typeMatches := original.Types[o.Type].Label == updated.Types[u.Type].Label
		switch {
		case nameMatches && typeMatches:
			return align.Equal
		case typeMatches:
			return ActionTypechange
		case nameMatches:
			return ActionRename
		default:
			return ActionReplace
		}
	}

	ops := align.Levenshtein(original.Storage, updated.Storage, classify)

	kept := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if op.Action == align.Append {
			continue
		}
		kept = append(kept, op)
	}
	return kept
}

// AssertCompatible reports an error when updated cannot safely replace
// original. Slots whose field merely changed name (typechange) keep their
// encoding and are safe; appended slots are always safe. Any other change to
// an occupied slot (rename, replace, delete, or an action this package does
// not recognize) is unsafe and lands in the returned error, which aggregates
// every unsafe change rather than stopping at the first.
func AssertCompatible(original, updated *StorageLayout) error {
	var changes []Change
	for _, op := range Diff(original, updated) {
		if op.Action == align.Equal || op.Action == ActionTypechange {
			continue
		}
		changes = append(changes, Change{
			Location: opLocation(op),
			Action:   op.Action,
			Label:    opLabel(op),
		})
	}
	if len(changes) > 0 {
		return &CompatibilityError{Changes: changes}
	}
	return nil
}

// Change is one unsafe storage layout change, structured for reporting.
// Rendering (styling, joining) is a presentation concern left to callers.
type Change struct {
	// Location is the source location of the changed field, preferring the
	// updated declaration when one exists.
	Location string
	// Action is the alignment verdict that made the change unsafe.
	Action align.Action
	// Label is the affected field name.
	Label string
}

// CompatibilityError aggregates every unsafe change between two layouts.
type CompatibilityError struct {
	Changes []Change
}

func (e *CompatibilityError) Error() string {
	if e == nil || len(e.Changes) == 0 {
		return "incompatible storage layout"
	}
	descs := make([]string, len(e.Changes))
	for i, c := range e.Changes {
		descs[i] = fmt.Sprintf("%s: %s of %s", c.Location, c.Action, c.Label)
	}
	return "incompatible storage layout: " + strings.Join(descs, "; ")
}

func opLocation(op Operation) string {
	if op.Updated != nil {
		return op.Updated.Src
	}
	if op.Original != nil {
		return op.Original.Src
	}
	return ""
}

func opLabel(op Operation) string {
	if op.Updated != nil {
		return op.Updated.Label
	}
	if op.Original != nil {
		return op.Original.Label
	}
	return ""
}
