package slotguard

import (
	"encoding/json"
	"testing"
)

func mustUnmarshalJSON[T any](t *testing.T, b []byte, v *T) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func mustMarshalJSON(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return out
}

func mustUnmarshalToMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return m
}

func mustRoundTripToMap[T any](t *testing.T, in []byte, v *T) map[string]any {
	t.Helper()
	mustUnmarshalJSON(t, in, v)
	out := mustMarshalJSON(t, v)
	return mustUnmarshalToMap(t, out)
}

// item builds a StorageItem the way the extractor would, with a canonical
// type key and a display src.
func item(label, typeKey string) StorageItem {
	return StorageItem{
		Contract: "Example",
		Label:    label,
		Type:     typeKey,
		Src:      "contracts/Example.sol:1",
	}
}

// layout builds a StorageLayout whose type labels equal the canonical keys,
// which is enough for tests that only care about the classifier.
func layout(items ...StorageItem) *StorageLayout {
	l := &StorageLayout{Types: map[string]TypeItem{}}
	for _, it := range items {
		l.Storage = append(l.Storage, it)
		l.Types[it.Type] = TypeItem{Label: it.Type}
	}
	return l
}
