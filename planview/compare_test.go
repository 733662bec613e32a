package planview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digitally-distinct/call-plan-system/models"
)

func TestComparer_Compare(t *testing.T) {
	cmp := NewComparer()

	t.Run("numeric runs compare as integers", func(t *testing.T) {
		assert.Negative(t, cmp.Compare("Territory 2", "Territory 10"))
		assert.Positive(t, cmp.Compare("Territory 10", "Territory 2"))
		assert.Negative(t, cmp.Compare("Customer ID9", "Customer ID55"))
	})

	t.Run("plain text falls back to locale order", func(t *testing.T) {
		assert.Negative(t, cmp.Compare("Alpha Clinic", "Beta Clinic"))
		assert.Positive(t, cmp.Compare("Beta Clinic", "Alpha Clinic"))
	})

	t.Run("equal strings compare equal", func(t *testing.T) {
		assert.Zero(t, cmp.Compare("Product 1", "Product 1"))
		assert.Zero(t, cmp.Compare("", ""))
	})

	t.Run("prefix sorts before its extension", func(t *testing.T) {
		assert.Negative(t, cmp.Compare("ID100", "ID100a"))
		assert.Positive(t, cmp.Compare("ID100a", "ID100"))
		assert.Negative(t, cmp.Compare("", "anything"))
	})

	t.Run("leading zeros compare by value", func(t *testing.T) {
		assert.Negative(t, cmp.Compare("ID007", "ID10"))
		assert.Negative(t, cmp.Compare("ID02", "ID10"))
	})

	t.Run("mixed alphanumeric sequences", func(t *testing.T) {
		assert.Negative(t, cmp.Compare("a1b2", "a1b10"))
		assert.Positive(t, cmp.Compare("a2b1", "a1b10"))
	})

	t.Run("antisymmetric over field values", func(t *testing.T) {
		values := []string{"Territory 1", "Territory 10", "Territory 2", "", "12", "ID12x", "ID12"}
		for _, a := range values {
			for _, b := range values {
				ab := cmp.Compare(a, b)
				ba := cmp.Compare(b, a)
				if ab < 0 {
					assert.Positive(t, ba, "compare(%q,%q)", a, b)
				} else if ab > 0 {
					assert.Negative(t, ba, "compare(%q,%q)", a, b)
				} else {
					assert.Zero(t, ba, "compare(%q,%q)", a, b)
				}
			}
		}
	})
}

func TestComparer_CompareRecords(t *testing.T) {
	cmp := NewComparer()

	a := &models.CustomerRecord{ID: "Customer ID2", Calls: 9}
	b := &models.CustomerRecord{ID: "Customer ID11", Calls: 10}

	t.Run("compares by the named field", func(t *testing.T) {
		assert.Negative(t, cmp.CompareRecords(a, b, FieldID))
		assert.Negative(t, cmp.CompareRecords(a, b, FieldCalls))
	})

	t.Run("unknown field compares equal", func(t *testing.T) {
		assert.Zero(t, cmp.CompareRecords(a, b, Field("bogus")))
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		wants []string
	}{
		{"text only", "abc", []string{"abc"}},
		{"trailing digits", "abc12", []string{"abc", "12", ""}},
		{"leading digits", "12ab", []string{"", "12", "ab"}},
		{"alternating", "a1b2", []string{"a", "1", "b", "2", ""}},
		{"empty", "", []string{""}},
		{"digits only", "404", []string{"", "404", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, tokenize(tt.in))
		})
	}
}
