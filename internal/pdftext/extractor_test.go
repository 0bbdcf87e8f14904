package pdftext

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookscan/cookscan/internal/logging"
)

func TestPageCount(t *testing.T) {
	e := New(logging.NewNop())
	count, err := e.PageCount(filepath.Join("testdata", "two_page.pdf"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPageCountMissingFile(t *testing.T) {
	e := New(logging.NewNop())
	_, err := e.PageCount(filepath.Join("testdata", "no_such.pdf"))
	assert.Error(t, err)
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	in := "Grilled Chicken   Salad\r\n\r\n\r\n2 cups  flour\n"
	out := Normalize(in)
	assert.Equal(t, "Grilled Chicken Salad\n\n2 cups flour", out)
}

func TestNormalizeTrimsLines(t *testing.T) {
	in := "   Start Cooking!   \n\t1. Preheat oven.\t\n"
	out := Normalize(in)
	assert.Equal(t, "Start Cooking!\n1. Preheat oven.", out)
}

func TestNormalizeComposesUnicode(t *testing.T) {
	// "e" followed by combining acute accent composes to a single rune.
	in := "sautéed onions"
	out := Normalize(in)
	assert.Equal(t, "sautéed onions", out)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("  \n \r\n \t "))
}
