package graph

import (
	"sort"
	"strings"

	"github.com/tidwall/btree"
)

// NameIndex maps a lower-cased display name to every person id carrying it.
// Names are not unique keys, so each entry is a set.
type NameIndex struct {
	names btree.Map[string, []string]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add registers id under name. Adding the same pair twice is a no-op.
func (ix *NameIndex) Add(name, id string) {
	key := normalizeName(name)
	ids, _ := ix.names.Get(key)
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	ids = append(ids, id)
	sort.Strings(ids)
	ix.names.Set(key, ids)
}

// Remove drops id from name, deleting the entry once it is empty.
func (ix *NameIndex) Remove(name, id string) {
	key := normalizeName(name)
	ids, ok := ix.names.Get(key)
	if !ok {
		return
	}
	kept := ids[:0:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == 0 {
		ix.names.Delete(key)
		return
	}
	ix.names.Set(key, kept)
}

// Lookup returns the ids sharing name, compared case-insensitively.
// The returned slice is a copy.
func (ix *NameIndex) Lookup(name string) []string {
	ids, ok := ix.names.Get(normalizeName(name))
	if !ok {
		return nil
	}
	return append([]string(nil), ids...)
}

// Prefix walks names starting with prefix in lexical order and returns at most
// limit ids. limit <= 0 means no limit.
func (ix *NameIndex) Prefix(prefix string, limit int) []string {
	key := normalizeName(prefix)
	var out []string
	ix.names.Ascend(key, func(name string, ids []string) bool {
		if !strings.HasPrefix(name, key) {
			return false
		}
		for _, id := range ids {
			if limit > 0 && len(out) >= limit {
				return false
			}
			out = append(out, id)
		}
		return true
	})
	return out
}

// Len returns the number of distinct names.
func (ix *NameIndex) Len() int {
	return ix.names.Len()
}
