package slotguard

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type validateOptions struct {
	rejectUnknownTypedFields bool
	requireSupportedVersion  bool
}

// ValidateOption configures StorageLayout.Validate and Snapshot.Validate.
type ValidateOption func(*validateOptions)

// WithRejectUnknownTypedFields treats unknown (non-`x-`) fields in typed
// layout objects as errors. Default behavior is forward-compatible (unknowns
// allowed/ignored), so this is an opt-in "strict" mode.
func WithRejectUnknownTypedFields() ValidateOption {
	return func(o *validateOptions) { o.rejectUnknownTypedFields = true }
}

// WithRequireSupportedVersion requires the snapshot format version to be
// within this package's supported range. By default, versions outside the
// range are allowed for forward compatibility.
func WithRequireSupportedVersion() ValidateOption {
	return func(o *validateOptions) { o.requireSupportedVersion = true }
}

var semverish = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Validate performs shape-level checks on a layout. It enforces the layout's
// core invariant: every canonical type key referenced from Storage has an
// entry in Types.
func (l StorageLayout) Validate(opts ...ValidateOption) error {
	o := validateOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string
	l.validateInto(&errs, o)

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: errs}
}

func (l StorageLayout) validateInto(errs *[]string, o validateOptions) {
	for idx, item := range l.Storage {
		if strings.TrimSpace(item.Contract) == "" {
			*errs = append(*errs, fmt.Sprintf("storage[%d].contract: required", idx))
		}
		if strings.TrimSpace(item.Type) == "" {
			*errs = append(*errs, fmt.Sprintf("storage[%d].type: required", idx))
		} else if _, ok := l.Types[item.Type]; !ok {
			*errs = append(*errs, fmt.Sprintf("storage[%d].type: references unknown type %q", idx, item.Type))
		}
		if o.rejectUnknownTypedFields {
			appendUnknownFieldProblems(errs, fmt.Sprintf("storage[%d]", idx), item.Unknown)
		}
	}

	typeKeys := make([]string, 0, len(l.Types))
	for k := range l.Types {
		typeKeys = append(typeKeys, k)
	}
	sort.Strings(typeKeys)
	for _, k := range typeKeys {
		ti := l.Types[k]
		if strings.TrimSpace(ti.Label) == "" {
			*errs = append(*errs, fmt.Sprintf("types[%q].label: required", k))
		}
		if o.rejectUnknownTypedFields {
			appendUnknownFieldProblems(errs, fmt.Sprintf("types[%q]", k), ti.Unknown)
		}
	}

	if o.rejectUnknownTypedFields {
		appendUnknownFieldProblems(errs, "", l.Unknown)
	}
}

// Validate performs shape-level checks on a snapshot document: format
// version, then the layout checks.
func (s Snapshot) Validate(opts ...ValidateOption) error {
	o := validateOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string

	if strings.TrimSpace(s.Slotguard) == "" {
		errs = append(errs, "slotguard: required")
	} else if !semverish.MatchString(s.Slotguard) {
		errs = append(errs, "slotguard: must be MAJOR.MINOR.PATCH (e.g. 1.0.0)")
	} else if o.requireSupportedVersion {
		ok, err := IsSupportedVersion(s.Slotguard)
		if err != nil {
			errs = append(errs, fmt.Sprintf("slotguard: invalid version: %v", err))
		} else if !ok {
			errs = append(errs, fmt.Sprintf("slotguard: unsupported version %q (supported %s-%s)", s.Slotguard, MinSupportedVersion, MaxTestedVersion))
		}
	}

	s.Layout().validateInto(&errs, o)

	if o.rejectUnknownTypedFields {
		appendUnknownFieldProblems(&errs, "", s.Unknown)
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: errs}
}

func appendUnknownFieldProblems(errs *[]string, prefix string, unknown map[string]json.RawMessage) {
	if len(unknown) == 0 {
		return
	}
	keys := make([]string, 0, len(unknown))
	for k := range unknown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if prefix == "" {
		*errs = append(*errs, fmt.Sprintf("unknown fields: %s", strings.Join(keys, ", ")))
		return
	}
	*errs = append(*errs, fmt.Sprintf("%s: unknown fields: %s", prefix, strings.Join(keys, ", ")))
}

// ValidationError is a deterministic, multi-problem validation error.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid storage layout"
	}
	return "invalid storage layout: " + strings.Join(e.Problems, "; ")
}
