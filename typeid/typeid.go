// Package typeid decodes compiler-internal type identifiers into canonical
// type keys.
//
// The compiler's identifier grammar reserves parentheses and commas, so type
// identifiers embed them through a substitution alphabet:
//
//	(  →  $_
//	)  →  _$
//	,  →  _$_
//
// The alphabet is not prefix-free: `_$_` has `_$` as a prefix, so a greedy
// left-to-right scan can split a run of tokens at the wrong boundary. Decode
// resolves the ambiguity with lookahead over the remainder of each run.
package typeid

import "strings"

const (
	openToken  = "$_"
	commaToken = "_$_"
	closeToken = "_$"
)

// Decode reverses the substitution alphabet in a compiler-internal type
// identifier, producing the canonical type key.
//
// A candidate token at a given position is consumed only when the rest of its
// `$`/`_` run decomposes exactly into further tokens; otherwise the byte
// passes through unchanged. Candidates are tried longest-first within the
// shared-prefix pair, so every run decodes the same way no matter how many
// tokens it chains together. Decode is deterministic and idempotent on
// already-decoded text.
func Decode(identifier string) string {
	var b strings.Builder
	b.Grow(len(identifier))
	for i := 0; i < len(identifier); {
		n := matchToken(identifier[i:])
		if n == 0 {
			b.WriteByte(identifier[i])
			i++
			continue
		}
		switch identifier[i : i+n] {
		case openToken:
			b.WriteByte('(')
		case commaToken:
			b.WriteByte(',')
		case closeToken:
			b.WriteByte(')')
		default:
			// matchToken only returns lengths of the three known tokens.
			panic("typeid: substitution run matched an unknown token")
		}
		i += n
	}
	return b.String()
}

// Encode applies the forward substitution, turning a canonical type key back
// into identifier form.
func Encode(key string) string {
	return strings.NewReplacer("(", openToken, ",", commaToken, ")", closeToken).Replace(key)
}

// matchToken returns the length of the substitution token to consume at the
// start of s, or 0 when no token applies. `_$_` is tried before its prefix
// `_$`, and a token is only accepted when the remainder of the run is itself
// tokenizable, mirroring the encoder's output structure.
func matchToken(s string) int {
	switch {
	case strings.HasPrefix(s, openToken) && restDecodes(s[len(openToken):]):
		return len(openToken)
	case strings.HasPrefix(s, commaToken) && restDecodes(s[len(commaToken):]):
		return len(commaToken)
	case strings.HasPrefix(s, closeToken) && restDecodes(s[len(closeToken):]):
		return len(closeToken)
	}
	return 0
}

// restDecodes reports whether the leading run of substitution-alphabet bytes
// in s decomposes exactly into substitution tokens. The run is maximal: it
// ends at the first byte outside `$`/`_` or at end of input.
func restDecodes(s string) bool {
	end := 0
	for end < len(s) && (s[end] == '$' || s[end] == '_') {
		end++
	}
	return tokenizable(s[:end])
}

// tokenizable reports whether run splits into a sequence of the three tokens.
func tokenizable(run string) bool {
	ok := make([]bool, len(run)+1)
	ok[len(run)] = true
	for i := len(run) - 1; i >= 0; i-- {
		switch {
		case strings.HasPrefix(run[i:], openToken) && ok[i+len(openToken)],
			strings.HasPrefix(run[i:], commaToken) && ok[i+len(commaToken)],
			strings.HasPrefix(run[i:], closeToken) && ok[i+len(closeToken)]:
			ok[i] = true
		}
	}
	return ok[0]
}
