package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokens_StringSplitsOnSeparators(t *testing.T) {
	tokens := ExtractTokens("Branding, Typography/Illustration|Motion\nPrint")

	assert.Equal(t, []string{"branding", "typography", "illustration", "motion", "print"}, tokens)
}

func TestExtractTokens_StringTrimsAndDropsEmpties(t *testing.T) {
	tokens := ExtractTokens("  design ,, , design ,  ")

	assert.Equal(t, []string{"design"}, tokens)
}

func TestExtractTokens_ArrayAcceptsStringsAndNamedObjects(t *testing.T) {
	tokens := ExtractTokens([]any{
		"Design",
		map[string]any{"name": "Community Building"},
		map[string]any{"title": "Pricing"},
		map[string]any{"label": "dropped"},
		42,
		true,
		nil,
	})

	assert.Equal(t, []string{"design", "community building", "pricing"}, tokens)
}

func TestExtractTokens_ObjectRecursesOverValuesDeterministically(t *testing.T) {
	input := map[string]any{
		"b": "second",
		"a": "first",
		"c": map[string]any{"name": "third"},
	}

	tokens := ExtractTokens(input)

	assert.Equal(t, []string{"first", "second", "third"}, tokens)
}

func TestExtractTokens_ScalarsYieldNothing(t *testing.T) {
	assert.Empty(t, ExtractTokens(nil))
	assert.Empty(t, ExtractTokens(7))
	assert.Empty(t, ExtractTokens(3.14))
	assert.Empty(t, ExtractTokens(false))
}

func TestExtractTokens_IsPure(t *testing.T) {
	input := []any{"Go", map[string]any{"name": "Postgres"}, "go"}

	first := ExtractTokens(input)
	second := ExtractTokens(input)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"go", "postgres"}, first)
}

func TestTokenSet_UnionPreservesOrderAndDedupes(t *testing.T) {
	set := NewTokenSet("design", "craft")

	merged := set.UnionTokens([]string{"Craft", "pricing"})

	assert.Equal(t, []string{"design", "craft", "pricing"}, merged.List())
	// The receiver is unchanged
	assert.Equal(t, []string{"design", "craft"}, set.List())
}

func TestTokenSet_ContainsIsCaseInsensitive(t *testing.T) {
	set := NewTokenSet("Design Guild")

	assert.True(t, set.Contains("design guild"))
	assert.True(t, set.Contains(" DESIGN GUILD "))
	assert.False(t, set.Contains("makers market"))
}

func TestTokenSet_OverlapMatchesCaseInsensitively(t *testing.T) {
	set := NewTokenSet("design", "sustainability")

	overlap := set.Overlap([]string{"Design Guild", "Design", "SUSTAINABILITY", "pricing"})

	assert.Equal(t, []string{"design", "sustainability"}, overlap)
}

func TestTokenSet_Capped(t *testing.T) {
	set := NewTokenSet("a", "b", "c")

	assert.Equal(t, []string{"a", "b"}, set.Capped(2))
	assert.Equal(t, []string{"a", "b", "c"}, set.Capped(10))
	assert.Empty(t, set.Capped(0))
}
