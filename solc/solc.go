// Package solc models the subset of the Solidity compiler's standard-JSON
// interface that slotguard consumes: contract definitions with their direct
// member declarations, and the source bookkeeping needed to render
// diagnostics.
//
// Only the fields slotguard reads are typed; everything else in the compiler
// output is ignored on unmarshal. Inheritance is not flattened here: callers
// that want a derived contract's full layout must resolve the linearized
// bases themselves and extract each definition in order.
package solc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AST node types consumed by slotguard.
const (
	NodeTypeContractDefinition  = "ContractDefinition"
	NodeTypeVariableDeclaration = "VariableDeclaration"
)

// Mutability values a VariableDeclaration may carry.
const (
	MutabilityMutable   = "mutable"
	MutabilityImmutable = "immutable"
	MutabilityConstant  = "constant"
)

// TypeDescriptions carries the compiler's two renderings of a declared type:
// the internal identifier (grammar-safe, substitution-encoded) and the
// human-readable type string. Both are pointers because the compiler omits
// them on malformed or unanalyzed nodes.
type TypeDescriptions struct {
	TypeIdentifier *string `json:"typeIdentifier"`
	TypeString     *string `json:"typeString"`
}

// VariableDeclaration is a contract member declaration. Non-variable members
// (functions, events, modifiers) unmarshal into the same shape and are told
// apart by NodeType.
type VariableDeclaration struct {
	NodeType         string           `json:"nodeType"`
	Name             string           `json:"name"`
	Src              string           `json:"src"`
	Constant         bool             `json:"constant"`
	Mutability       string           `json:"mutability"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

// IsStateVariable reports whether the node is a variable declaration at all.
func (v *VariableDeclaration) IsStateVariable() bool {
	return v.NodeType == NodeTypeVariableDeclaration
}

// ContractDefinition is a contract, interface or library definition together
// with its direct member declarations, in declaration order.
type ContractDefinition struct {
	NodeType string                `json:"nodeType"`
	Name     string                `json:"name"`
	Src      string                `json:"src"`
	Nodes    []VariableDeclaration `json:"nodes"`
}

// SourceUnit is the AST root of one source file. Its top-level nodes include
// pragmas and imports alongside contract definitions; the non-contract nodes
// unmarshal harmlessly and are skipped by NodeType.
type SourceUnit struct {
	Nodes []ContractDefinition `json:"nodes"`
}

// OutputSource is one entry of the standard-JSON output's sources map.
type OutputSource struct {
	ID  int        `json:"id"`
	AST SourceUnit `json:"ast"`
}

// Output is the subset of solc standard-JSON output slotguard reads.
type Output struct {
	Sources map[string]OutputSource `json:"sources"`
}

// InputSource is one entry of the standard-JSON input's sources map.
type InputSource struct {
	Content string `json:"content"`
}

// Input is the subset of solc standard-JSON input slotguard reads.
type Input struct {
	Sources map[string]InputSource `json:"sources"`
}

// BuildInfo is the combined input/output artifact development frameworks
// write per compilation.
type BuildInfo struct {
	SolcVersion string `json:"solcVersion,omitempty"`
	Input       Input  `json:"input"`
	Output      Output `json:"output"`
}

// FindContract returns the definition of the named contract across all
// source units of the output. Source files are scanned in path order so a
// name that (pathologically) appears twice resolves deterministically.
func (o *Output) FindContract(name string) (*ContractDefinition, error) {
	paths := make([]string, 0, len(o.Sources))
	for path := range o.Sources {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		src := o.Sources[path]
		for i := range src.AST.Nodes {
			def := &src.AST.Nodes[i]
			if def.NodeType == NodeTypeContractDefinition && def.Name == name {
				return def, nil
			}
		}
	}
	return nil, fmt.Errorf("solc: contract %q not found in compiler output", name)
}

// SrcDecoder renders a node's src triple ("start:length:fileIndex") as an
// opaque diagnostic location. The rendered form is for display only.
type SrcDecoder func(src string) string

// NewSrcDecoder builds a SrcDecoder that resolves the file index against the
// output's source ids and the byte offset against the input's source text,
// yielding "path:line". Triples it cannot resolve are returned verbatim.
func NewSrcDecoder(input *Input, output *Output) SrcDecoder {
	paths := make(map[int]string, len(output.Sources))
	for path, src := range output.Sources {
		paths[src.ID] = path
	}
	return func(src string) string {
		start, index, ok := parseSrc(src)
		if !ok {
			return src
		}
		path, ok := paths[index]
		if !ok {
			return src
		}
		content, ok := input.Sources[path]
		if !ok {
			return path
		}
		if start > len(content.Content) {
			start = len(content.Content)
		}
		line := 1 + strings.Count(content.Content[:start], "\n")
		return fmt.Sprintf("%s:%d", path, line)
	}
}

func parseSrc(src string) (start, index int, ok bool) {
	parts := strings.SplitN(src, ":", 3)
	if len(parts) != 3 {
		return 0, 0, false
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil || start < 0 {
		return 0, 0, false
	}
	index, err = strconv.Atoi(parts[2])
	if err != nil || index < 0 {
		return 0, 0, false
	}
	return start, index, true
}
