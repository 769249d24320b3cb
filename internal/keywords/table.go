package keywords

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// Entry maps a single NullScript alias to its canonical TypeScript spelling.
type Entry struct {
	Alias     string
	Canonical string
}

// Category is a named group of related aliases. Categories exist for
// introspection and display; they do not change rewrite semantics.
type Category struct {
	Name    string
	Title   string
	Entries []Entry
}

// Table is the authoritative alias vocabulary, built once at startup and
// immutable afterwards. Safe for concurrent use.
type Table struct {
	categories []Category
	flat       map[string]string
	category   map[string]string
	multiWord  map[string]string
	funcDecl   map[string]string
}

// New builds the keyword table from the builtin category set.
// Construction fails if any alias is defined by more than one category
// (rewriting would be ambiguous) or equals a canonical spelling
// (rewriting would not be idempotent).
func New() (*Table, error) {
	return build(builtinCategories())
}

func build(categories []Category) (*Table, error) {
	t := &Table{
		categories: categories,
		flat:       make(map[string]string),
		category:   make(map[string]string),
		multiWord:  make(map[string]string),
		funcDecl:   make(map[string]string),
	}

	// Canonical spellings survive rewriting untouched, so an alias equal
	// to any canonical word would make rewriting non-idempotent.
	canonical := make(map[string]bool)
	for _, cat := range categories {
		for _, e := range cat.Entries {
			for _, w := range strings.Fields(e.Canonical) {
				canonical[w] = true
			}
		}
	}

	for _, cat := range categories {
		for _, e := range cat.Entries {
			if prev, ok := t.category[e.Alias]; ok {
				return nil, fmt.Errorf("keywords: alias %q defined in both %q and %q", e.Alias, prev, cat.Name)
			}
			if canonical[e.Alias] {
				return nil, fmt.Errorf("keywords: alias %q equals a canonical spelling", e.Alias)
			}
			t.category[e.Alias] = cat.Name
			t.flat[e.Alias] = e.Canonical
			if cat.Name == categoryFunctions {
				t.funcDecl[e.Alias] = e.Canonical
				continue
			}
			if strings.ContainsRune(e.Canonical, ' ') {
				t.multiWord[e.Alias] = e.Canonical
			}
		}
	}
	return t, nil
}

// Categories returns the full category structure in display order.
func (t *Table) Categories() []Category {
	return t.categories
}

// Category returns the category with the given machine name.
func (t *Table) Category(name string) (Category, bool) {
	for _, cat := range t.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// CategoryNames returns the machine names of all categories in display order.
func (t *Table) CategoryNames() []string {
	names := make([]string, 0, len(t.categories))
	for _, cat := range t.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Lookup returns the canonical spelling for alias.
func (t *Table) Lookup(alias string) (string, bool) {
	c, ok := t.flat[alias]
	return c, ok
}

// IsAlias reports whether word is a known alias in any category.
func (t *Table) IsAlias(word string) bool {
	_, ok := t.flat[word]
	return ok
}

// All returns the flattened alias map.
// Callers must not modify the returned map.
func (t *Table) All() map[string]string {
	return t.flat
}

// MultiWord returns the aliases whose canonical form is a multi-token phrase.
// Function-declaration aliases are excluded; they have their own pass.
// Callers must not modify the returned map.
func (t *Table) MultiWord() map[string]string {
	return t.multiWord
}

// FuncDecl returns the function-declaration aliases.
// Callers must not modify the returned map.
func (t *Table) FuncDecl() map[string]string {
	return t.funcDecl
}

// IsFuncDeclAlias reports whether alias requires structural function rewriting.
func (t *Table) IsFuncDeclAlias(alias string) bool {
	_, ok := t.funcDecl[alias]
	return ok
}

// Fingerprint returns a stable hash of the whole vocabulary. Build caches key
// on it so that cached output is invalidated whenever the table changes.
func (t *Table) Fingerprint() [32]byte {
	aliases := make([]string, 0, len(t.flat))
	for alias := range t.flat {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	h := sha256.New()
	for _, alias := range aliases {
		h.Write([]byte(alias))
		h.Write([]byte{0})
		h.Write([]byte(t.flat[alias]))
		h.Write([]byte{0})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
