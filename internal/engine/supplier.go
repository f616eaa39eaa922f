package engine

import (
	"strings"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
)

// AttributedItem is a reconciled item tagged with its supplier label.
type AttributedItem struct {
	domain.ReconciledItem
	Supplier string
}

type catalogIndex struct {
	label   string
	exact   map[string]domain.SupplierCatalogEntry
	entries []domain.SupplierCatalogEntry
}

// Attribute joins reconciled items against supplier catalogs by normalized
// identity. Catalogs are searched in the order supplied, which is the
// priority order; the first match wins and items are never merged across
// catalogs. Exact identity equality is tried across all catalogs before any
// substring fallback. Item code and unit are backfilled from the matching
// entry only where the item's own fields are empty.
//
// Items with no match get SupplierOther when catalogs were supplied, and
// SupplierUnknown when the request carried no catalogs at all.
func Attribute(items []domain.ReconciledItem, catalogs []domain.SupplierCatalog, substringFallback bool) []AttributedItem {
	indexes := make([]catalogIndex, 0, len(catalogs))
	for _, c := range catalogs {
		idx := catalogIndex{
			label:   c.Label,
			exact:   make(map[string]domain.SupplierCatalogEntry, len(c.Entries)),
			entries: c.Entries,
		}
		for _, e := range c.Entries {
			if _, ok := idx.exact[e.Identity]; !ok {
				idx.exact[e.Identity] = e
			}
		}
		indexes = append(indexes, idx)
	}

	out := make([]AttributedItem, 0, len(items))
	for _, item := range items {
		entry, label, ok := matchExact(item.Identity, indexes)
		if !ok && substringFallback {
			entry, label, ok = matchSubstring(item.Identity, indexes)
		}

		attributed := AttributedItem{ReconciledItem: item}
		switch {
		case ok:
			attributed.Supplier = label
			if attributed.ItemCode == "" {
				attributed.ItemCode = entry.ItemCode
			}
			if attributed.Unit == "" {
				attributed.Unit = entry.Unit
			}
		case len(catalogs) == 0:
			attributed.Supplier = domain.SupplierUnknown
		default:
			attributed.Supplier = domain.SupplierOther
		}
		out = append(out, attributed)
	}

	return out
}

func matchExact(identity string, indexes []catalogIndex) (domain.SupplierCatalogEntry, string, bool) {
	for _, idx := range indexes {
		if e, ok := idx.exact[identity]; ok {
			return e, idx.label, true
		}
	}
	return domain.SupplierCatalogEntry{}, "", false
}

// matchSubstring is a best-effort heuristic for names that differ in
// packaging or grading suffixes ("tomato" vs "tomato grade a"). Containment
// is tested both ways on the normalized identities.
func matchSubstring(identity string, indexes []catalogIndex) (domain.SupplierCatalogEntry, string, bool) {
	for _, idx := range indexes {
		for _, e := range idx.entries {
			if e.Identity == "" {
				continue
			}
			if strings.Contains(identity, e.Identity) || strings.Contains(e.Identity, identity) {
				return e, idx.label, true
			}
		}
	}
	return domain.SupplierCatalogEntry{}, "", false
}
