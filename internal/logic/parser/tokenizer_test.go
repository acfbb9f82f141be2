package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("no prefixes", func(t *testing.T) {
		m := Tokenize("  some random string /t tag with leading and trailing spaces ", PrefixTag)

		assert.Equal(t, "some random string /t tag with leading and trailing spaces", m.Preamble())
		assert.False(t, m.Has(PrefixTag))
	})

	t.Run("one prefix, repeated", func(t *testing.T) {
		m := Tokenize(" pre t/ one t/two  t/  ", PrefixTag, PrefixQuestion)

		assert.Equal(t, "pre", m.Preamble())
		assert.Equal(t, []string{"one", "two", ""}, m.AllValues(PrefixTag))
		last, ok := m.Value(PrefixTag)
		assert.True(t, ok)
		assert.Equal(t, "", last)
		assert.False(t, m.Has(PrefixQuestion))
	})

	t.Run("several prefixes in any order", func(t *testing.T) {
		m := Tokenize(" a/Paris q/Capital of France? t/geo a/Lyon", PrefixQuestion, PrefixAnswer, PrefixTag)

		assert.Empty(t, m.Preamble())
		q, _ := m.Value(PrefixQuestion)
		assert.Equal(t, "Capital of France?", q)
		a, _ := m.Value(PrefixAnswer)
		assert.Equal(t, "Lyon", a, "last value wins")
		assert.True(t, m.HasAll(PrefixQuestion, PrefixAnswer, PrefixTag))
	})

	t.Run("prefix must follow whitespace", func(t *testing.T) {
		m := Tokenize(" q/what is a/b? a/yes", PrefixQuestion, PrefixAnswer)

		q, _ := m.Value(PrefixQuestion)
		assert.Equal(t, "what is", q)
		assert.Equal(t, []string{"b?", "yes"}, m.AllValues(PrefixAnswer))

		m = Tokenize(" q/and/or a/yes", PrefixQuestion, PrefixAnswer)
		q, _ = m.Value(PrefixQuestion)
		assert.Equal(t, "and/or", q)
	})

	t.Run("whitespace preamble", func(t *testing.T) {
		m := Tokenize("\t  \r  \n q/One", PrefixQuestion)
		assert.Empty(t, m.Preamble())
		assert.True(t, m.Has(PrefixQuestion))
	})
}
