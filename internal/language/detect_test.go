package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erizov/jobmatch/internal/types"
)

func TestDetect_English(t *testing.T) {
	text := "Senior software engineer with ten years of experience building distributed systems in Go and Python."

	lang, confidence, err := Detect(text, DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, types.LanguageEN, lang)
	assert.Greater(t, confidence, 0.0)
}

func TestDetect_Russian(t *testing.T) {
	text := "Опытный инженер-программист, десять лет разрабатываю распределённые системы на Go и Python."

	lang, _, err := Detect(text, DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, types.LanguageRU, lang)
}

func TestDetect_InsufficientText(t *testing.T) {
	lang, confidence, err := Detect("short", DefaultOptions())

	assert.ErrorIs(t, err, ErrInsufficientText)
	assert.Equal(t, types.LanguageUnknown, lang)
	assert.Zero(t, confidence)
}

func TestDetect_EmptyText(t *testing.T) {
	lang, _, err := Detect("", DefaultOptions())

	assert.ErrorIs(t, err, ErrInsufficientText)
	assert.Equal(t, types.LanguageUnknown, lang)
}

// With an impossible confidence threshold the statistical tier can never
// accept, so the Cyrillic-ratio fallback decides.
func TestDetect_FallbackTier(t *testing.T) {
	opts := DefaultOptions()
	opts.ConfidenceThreshold = 1.1

	lang, _, err := Detect("Программист и немного developer, python developer resume", opts)
	require.NoError(t, err)
	assert.Equal(t, types.LanguageRU, lang)

	lang, _, err = Detect("Mostly English text with one слово mixed into the middle", opts)
	require.NoError(t, err)
	assert.Equal(t, types.LanguageEN, lang)
}

func TestDetect_FallbackNoLetters(t *testing.T) {
	opts := DefaultOptions()
	opts.ConfidenceThreshold = 1.1

	// Digits and punctuation only: no letters to vote, defaults to English.
	lang, _, err := Detect("1234567890 +7 (999) 123-45-67 ...", opts)

	require.NoError(t, err)
	assert.Equal(t, types.LanguageEN, lang)
}

func TestDetect_TotalOverArbitraryInput(t *testing.T) {
	inputs := []string{
		"",
		"\x00\xff\xfe invalid utf8 bytes",
		"日本語のテキストはサポート対象外ですがクラッシュしません",
		"       \n\n\t   ",
		"email@example.com john doe resume docx 2020",
	}
	for _, input := range inputs {
		lang, _, _ := Detect(input, DefaultOptions())
		assert.Contains(t, []types.Language{types.LanguageEN, types.LanguageRU, types.LanguageUnknown}, lang)
	}
}

func TestDecideOutputLanguage(t *testing.T) {
	assert.Equal(t, types.LanguageRU, DecideOutputLanguage(types.LanguageRU, types.LanguageRU, true))
	assert.Equal(t, types.LanguageEN, DecideOutputLanguage(types.LanguageRU, types.LanguageEN, true))
	assert.Equal(t, types.LanguageRU, DecideOutputLanguage(types.LanguageRU, types.LanguageEN, false))
}

func TestDecideOutputLanguage_UnknownNeverWins(t *testing.T) {
	// An undetected side falls to the other side regardless of preference.
	assert.Equal(t, types.LanguageRU, DecideOutputLanguage(types.LanguageRU, types.LanguageUnknown, true))
	assert.Equal(t, types.LanguageRU, DecideOutputLanguage(types.LanguageUnknown, types.LanguageRU, false))
	assert.Equal(t, types.LanguageEN, DecideOutputLanguage(types.LanguageUnknown, types.LanguageEN, true))
	// Both unknown: English is the last resort.
	assert.Equal(t, types.LanguageEN, DecideOutputLanguage(types.LanguageUnknown, types.LanguageUnknown, true))
	assert.Equal(t, types.LanguageEN, DecideOutputLanguage(types.LanguageUnknown, types.LanguageUnknown, false))
}
