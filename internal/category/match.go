package category

import (
	"sort"
	"strings"
)

// MatchStrategy is the search capability shared by the repository and the
// client state store. The two keep deliberately different algorithms: the
// repository ranks fuzzily like a search box, the store filters by plain
// substring. Both treat a blank query as "return everything" and are
// idempotent for a fixed record set.
type MatchStrategy interface {
	Match(categories []Category, query string) []Category
}

// SubstringMatch keeps records whose name or description contains the query,
// case-insensitively. Result order follows input order.
type SubstringMatch struct{}

func (SubstringMatch) Match(categories []Category, query string) []Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Category(nil), categories...)
	}

	var matched []Category
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// FuzzyMatch ranks records by relevance of the query against name and
// description, strongest tier first. Records sharing a tier keep their input
// order.
type FuzzyMatch struct{}

const (
	rankEqual = iota + 1
	rankStartsWith
	rankWordStartsWith
	rankContains
	rankAcronym
	rankSubsequence
	rankNone
)

func (FuzzyMatch) Match(categories []Category, query string) []Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Category(nil), categories...)
	}

	type ranked struct {
		c    Category
		rank int
	}

	var matched []ranked
	for _, c := range categories {
		rank := fuzzyRank(c.Name, q)
		if r := fuzzyRank(c.Description, q); r < rank {
			rank = r
		}
		if rank < rankNone {
			matched = append(matched, ranked{c: c, rank: rank})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].rank < matched[j].rank
	})

	result := make([]Category, len(matched))
	for i, m := range matched {
		result[i] = m.c
	}
	return result
}

// fuzzyRank scores a single lowercased query against one field. Lower is a
// stronger match; rankNone means no match at all.
func fuzzyRank(value, query string) int {
	v := strings.ToLower(value)

	switch {
	case v == query:
		return rankEqual
	case strings.HasPrefix(v, query):
		return rankStartsWith
	case wordStartsWith(v, query):
		return rankWordStartsWith
	case strings.Contains(v, query):
		return rankContains
	case strings.Contains(acronym(v), query):
		return rankAcronym
	case isSubsequence(v, query):
		return rankSubsequence
	default:
		return rankNone
	}
}

func wordStartsWith(value, query string) bool {
	for _, word := range strings.FieldsFunc(value, isWordSeparator) {
		if strings.HasPrefix(word, query) {
			return true
		}
	}
	return false
}

func acronym(value string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(value, isWordSeparator) {
		b.WriteByte(word[0])
	}
	return b.String()
}

func isWordSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}

// isSubsequence reports whether every query character appears in value in
// order, not necessarily adjacent.
func isSubsequence(value, query string) bool {
	i := 0
	for j := 0; j < len(value) && i < len(query); j++ {
		if value[j] == query[i] {
			i++
		}
	}
	return i == len(query)
}
