package exchange_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes the storage format", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "exports")
		ex := exchange.New(dir, nil)
		cards := domain.SampleQuickCache().Flashcards()

		path, err := ex.Export(ctx, "sample.json", cards)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sample.json"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"question": "Which data structure is FIFO?"`)
	})

	invalid := []string{"cards.txt", "../cards.json", "sub/cards.json", `sub\cards.json`, ".json", ""}
	for _, name := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			t.Parallel()
			_, err := exchange.New(t.TempDir(), nil).Export(ctx, name, nil)
			assert.ErrorIs(t, err, exchange.ErrInvalidFileName)
		})
	}
}

func TestImport_JSON(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ex := exchange.New(t.TempDir(), nil)
	sample := domain.SampleQuickCache()

	_, err := ex.Export(ctx, "round.json", sample.Flashcards())
	require.NoError(t, err)

	cards, rowErrs, err := ex.Import(ctx, "round.json")

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	got, err := domain.NewQuickCache(cards...)
	require.NoError(t, err)
	assert.True(t, sample.Equal(got))
	for i, f := range sample.Flashcards() {
		assert.NotEqual(t, f.ID, cards[i].ID, "imported cards get fresh IDs")
	}
}

func TestImport_CSV(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	content := "question,answer,choices,tags,difficulty\n" +
		"<b>Capital</b> of France?,Paris,,europe geography,low\n" +
		"Which is a fruit?,Apple,Apple | Carrot|Potato,food,HIGH\n" +
		"Salt &amp; pepper?,yes,,,\n" +
		",missing question,,,\n" +
		"Bad tag?,x,,not-alpha,\n" +
		"Answer not a choice?,d,a|b,,\n" +
		"Weird difficulty?,x,,,EXTREME\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.csv"), []byte(content), 0o600))

	cards, rowErrs, err := exchange.New(dir, nil).Import(ctx, "cards.csv")

	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, "Capital of France?", cards[0].Question.Text)
	assert.Equal(t, domain.Answer("Paris"), cards[0].Answer)
	assert.Equal(t, []domain.Tag{"europe", "geography"}, cards[0].Tags)
	assert.Equal(t, domain.DifficultyLow, cards[0].Difficulty)

	assert.True(t, cards[1].Question.IsMultipleChoice())
	assert.Equal(t, []domain.Choice{"Apple", "Carrot", "Potato"}, cards[1].Question.Choices)
	assert.Equal(t, domain.DifficultyHigh, cards[1].Difficulty)

	assert.Equal(t, "Salt & pepper?", cards[2].Question.Text)
	assert.Equal(t, domain.DifficultyUnspecified, cards[2].Difficulty)

	require.Len(t, rowErrs, 4)
	assert.ErrorIs(t, rowErrs[0], domain.ErrInvalidQuestion)
	assert.ErrorContains(t, rowErrs[0], "row 5")
	assert.ErrorIs(t, rowErrs[1], domain.ErrInvalidTag)
	assert.ErrorIs(t, rowErrs[2], domain.ErrAnswerNotInChoices)
	assert.ErrorIs(t, rowErrs[3], domain.ErrInvalidDifficulty)
}

func TestImport_XLSX(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	rows := [][]interface{}{
		{"Question", "Answer", "Choices", "Tags", "Difficulty"},
		{"What is H2O?", "Water", "", "chemistry", "medium"},
		{"<i>Largest</i> planet?", "Jupiter", "Mars|Jupiter", "space", ""},
		{"   ", "blank question", "", "", ""},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cellName, &row))
	}
	require.NoError(t, book.SaveAs(filepath.Join(dir, "cards.xlsx")))
	require.NoError(t, book.Close())

	cards, rowErrs, err := exchange.New(dir, nil).Import(ctx, "cards.xlsx")

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "What is H2O?", cards[0].Question.Text)
	assert.Equal(t, domain.DifficultyMedium, cards[0].Difficulty)
	assert.Equal(t, "Largest planet?", cards[1].Question.Text)
	assert.Equal(t, []domain.Choice{"Mars", "Jupiter"}, cards[1].Question.Choices)
	require.Len(t, rowErrs, 1)
	assert.ErrorContains(t, rowErrs[0], "row 4")
}

func TestImport_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	ex := exchange.New(dir, nil)

	t.Run("unsupported format", func(t *testing.T) {
		_, _, err := ex.Import(ctx, "cards.txt")
		assert.ErrorIs(t, err, exchange.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := ex.Import(ctx, "missing.csv")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("absolute path", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "abs.json")
		require.NoError(t, os.WriteFile(other, []byte(`{"flashcards": [{"question": "q", "answer": "a"}]}`), 0o600))

		cards, _, err := ex.Import(ctx, other)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := ex.Import(cancelled, "cards.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
