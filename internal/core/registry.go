package core

import (
	"fmt"
	"sort"
	"sync"
)

// SchemaInfo contains display information about a record type.
type SchemaInfo struct {
	Type    RecordType `json:"type"`    // Unique identifier: "census"
	Label   string     `json:"label"`   // Display name: "State Census"
	Columns []string   `json:"columns"` // Header column names
	Keys    []string   `json:"keys"`    // Serialized field names
}

var (
	registry   = make(map[RecordType]SchemaInfo)
	registryMu sync.RWMutex
)

// Register adds a schema to the registry.
// Panics if a schema with the same type is already registered.
func Register(info SchemaInfo) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[info.Type]; exists {
		panic(fmt.Sprintf("schema already registered: %s", info.Type))
	}
	registry[info.Type] = info
}

// Lookup returns a schema by record type.
func Lookup(t RecordType) (SchemaInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	info, ok := registry[t]
	return info, ok
}

// ParseRecordType resolves a record type name against the registry.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(s)
	if _, ok := Lookup(t); !ok {
		return "", newError(KindUnknownRecordType, "lookup", "unknown record type %q", s)
	}
	return t, nil
}

// Schemas returns all registered schemas sorted by type.
func Schemas() []SchemaInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]SchemaInfo, 0, len(registry))
	for _, info := range registry {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})
	return result
}
