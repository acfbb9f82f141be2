package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument, such as "q/".
type Prefix string

// Argument prefixes.
const (
	PrefixQuestion   Prefix = "q/"
	PrefixAnswer     Prefix = "a/"
	PrefixChoice     Prefix = "c/"
	PrefixTag        Prefix = "t/"
	PrefixDifficulty Prefix = "d/"
	PrefixOption     Prefix = "o/"
)

// ArgumentMultimap maps each prefix to the values that followed it, in order
// of appearance. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	values   map[Prefix][]string
	preamble string
}

// Value returns the last value given for prefix.
func (m ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	vs := m.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for prefix.
func (m ArgumentMultimap) AllValues(prefix Prefix) []string {
	return m.values[prefix]
}

// Has reports whether prefix appeared at least once.
func (m ArgumentMultimap) Has(prefix Prefix) bool {
	return len(m.values[prefix]) > 0
}

// HasAll reports whether every prefix appeared.
func (m ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into prefixed values. A prefix only counts when it is
// preceded by whitespace, so args normally starts with a space. Values are
// trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, prefix Prefix) []prefixPosition {
	var positions []prefixPosition
	for from := 0; from < len(args); {
		i := indexAfterWhitespace(args[from:], string(prefix))
		if i < 0 {
			break
		}
		positions = append(positions, prefixPosition{prefix: prefix, start: from + i})
		from += i + len(prefix)
	}
	return positions
}

// indexAfterWhitespace returns the index of the first occurrence of p in s
// that directly follows a whitespace character.
func indexAfterWhitespace(s, p string) int {
	for offset := 0; ; {
		i := strings.Index(s[offset:], p)
		if i < 0 {
			return -1
		}
		at := offset + i
		if at > 0 && isSpace(s[at-1]) {
			return at
		}
		offset = at + 1
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
