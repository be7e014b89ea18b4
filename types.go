package slotguard

import "encoding/json"

// Pre-computed known field sets for lossless JSON unmarshaling, built once at
// package init.
var (
	knownStorageItemSet = knownSet(
		"contract", "label", "type", "src",
	)
	knownTypeItemSet = knownSet(
		"label",
	)
	knownLayoutSet = knownSet(
		"storage", "types",
	)
	knownSnapshotSet = knownSet(
		"slotguard", "contract", "storage", "types",
	)
)

// StorageItem is one persistent field of a contract's storage layout.
// The compiler emits richer per-item records (slot, offset, astId, ...);
// those land in LosslessFields and survive round-trips untouched.
type StorageItem struct {
	// Contract is the name of the declaring contract.
	Contract string `json:"contract"`
	// Label is the field name as declared. Labels may collide across
	// unrelated fields; uniqueness is not required.
	Label string `json:"label"`
	// Type is the canonical type key, decoded from the compiler-internal
	// identifier. It indexes the layout's Types map.
	Type string `json:"type"`
	// Src is an opaque source-location token, used only for diagnostics.
	Src string `json:"src"`

	LosslessFields
}

type storageItemWire struct {
	Contract string `json:"contract"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Src      string `json:"src"`
}

func (s *StorageItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w storageItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = StorageItem{
		Contract: w.Contract,
		Label:    w.Label,
		Type:     w.Type,
		Src:      w.Src,
	}

	s.Extensions, s.Unknown = splitLossless(raw, knownStorageItemSet)
	return nil
}

func (s StorageItem) MarshalJSON() ([]byte, error) {
	w := storageItemWire{
		Contract: s.Contract,
		Label:    s.Label,
		Type:     s.Type,
		Src:      s.Src,
	}
	return marshalLossless(s.Unknown, s.Extensions, w)
}

// TypeItem is the metadata recorded for one distinct canonical type key.
type TypeItem struct {
	// Label is the human-readable type string as the compiler rendered it.
	Label string `json:"label"`

	LosslessFields
}

type typeItemWire struct {
	Label string `json:"label"`
}

func (t *TypeItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w typeItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*t = TypeItem{Label: w.Label}

	t.Extensions, t.Unknown = splitLossless(raw, knownTypeItemSet)
	return nil
}

func (t TypeItem) MarshalJSON() ([]byte, error) {
	return marshalLossless(t.Unknown, t.Extensions, typeItemWire{Label: t.Label})
}

// StorageLayout is one full schema snapshot of a contract's persistent
// storage. Storage order is significant: it mirrors on-chain slot order and
// is preserved exactly as declared.
type StorageLayout struct {
	Storage []StorageItem `json:"storage"`
	// Types maps each canonical type key referenced by Storage to its
	// metadata. Every StorageItem.Type must have an entry here.
	Types map[string]TypeItem `json:"types"`

	LosslessFields
}

type storageLayoutWire struct {
	Storage []StorageItem       `json:"storage"`
	Types   map[string]TypeItem `json:"types"`
}

func (l *StorageLayout) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w storageLayoutWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*l = StorageLayout{
		Storage: w.Storage,
		Types:   w.Types,
	}

	l.Extensions, l.Unknown = splitLossless(raw, knownLayoutSet)
	return nil
}

func (l StorageLayout) MarshalJSON() ([]byte, error) {
	w := storageLayoutWire{
		Storage: l.Storage,
		Types:   l.Types,
	}
	return marshalLossless(l.Unknown, l.Extensions, w)
}

// Snapshot is the on-disk layout document shape written by `slotguard
// snapshot` and accepted anywhere a layout is expected.
type Snapshot struct {
	// Slotguard is the snapshot format version, MAJOR.MINOR.PATCH.
	Slotguard string `json:"slotguard"`
	// Contract is the name of the contract the layout was extracted from.
	Contract string `json:"contract,omitempty"`

	Storage []StorageItem       `json:"storage"`
	Types   map[string]TypeItem `json:"types"`

	LosslessFields
}

type snapshotWire struct {
	Slotguard string `json:"slotguard"`
	Contract  string `json:"contract,omitempty"`

	Storage []StorageItem       `json:"storage"`
	Types   map[string]TypeItem `json:"types"`
}

func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w snapshotWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = Snapshot{
		Slotguard: w.Slotguard,
		Contract:  w.Contract,
		Storage:   w.Storage,
		Types:     w.Types,
	}

	s.Extensions, s.Unknown = splitLossless(raw, knownSnapshotSet)
	return nil
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	w := snapshotWire{
		Slotguard: s.Slotguard,
		Contract:  s.Contract,
		Storage:   s.Storage,
		Types:     s.Types,
	}
	return marshalLossless(s.Unknown, s.Extensions, w)
}

// NewSnapshot wraps an extracted layout in the current snapshot format.
func NewSnapshot(contract string, layout *StorageLayout) *Snapshot {
	return &Snapshot{
		Slotguard: SnapshotVersion,
		Contract:  contract,
		Storage:   layout.Storage,
		Types:     layout.Types,
	}
}

// Layout returns the snapshot's layout view. The returned value shares the
// snapshot's backing storage slice and types map.
func (s *Snapshot) Layout() *StorageLayout {
	return &StorageLayout{Storage: s.Storage, Types: s.Types}
}
