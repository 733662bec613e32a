package planview

import (
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/digitally-distinct/call-plan-system/models"
)

// Comparer performs natural (alphanumeric-aware) comparisons: embedded digit
// runs compare as integers, so "Territory 2" sorts before "Territory 10".
// Text runs use a locale collator, which is not safe for concurrent use;
// create one Comparer per sort.
type Comparer struct {
	col *collate.Collator
}

// NewComparer creates a comparer with an English collator.
func NewComparer() *Comparer {
	return &Comparer{col: collate.New(language.English)}
}

// Compare returns a negative, zero, or positive value ordering a before,
// equal to, or after b. It is total: any pair of strings has a defined order.
func (c *Comparer) Compare(a, b string) int {
	ap := tokenize(a)
	bp := tokenize(b)

	n := len(ap)
	if len(bp) < n {
		n = len(bp)
	}
	for i := 0; i < n; i++ {
		if i%2 == 1 {
			// Digit run: compare as integers
			an, _ := strconv.Atoi(ap[i])
			bn, _ := strconv.Atoi(bp[i])
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
		} else if ap[i] != bp[i] {
			return c.col.CompareString(ap[i], bp[i])
		}
	}

	// All compared token pairs equal: the shorter sequence sorts first
	return len(ap) - len(bp)
}

// CompareRecords compares two customer records by the given field.
func (c *Comparer) CompareRecords(a, b *models.CustomerRecord, f Field) int {
	return c.Compare(RecordValue(a, f), RecordValue(b, f))
}

// CompareSummary compares two summary rows by the given field.
func (c *Comparer) CompareSummary(a, b *SummaryRow, f Field) int {
	return c.Compare(SummaryValue(a, f), SummaryValue(b, f))
}

// tokenize splits s into alternating runs of non-digit and digit characters.
// The first token is always the (possibly empty) leading non-digit run, so
// digit runs sit at odd indexes; a trailing digit run is followed by an empty
// text token so sequence length still distinguishes "a1" from "a1b".
func tokenize(s string) []string {
	var tokens []string
	i := 0
	for {
		j := i
		for j < len(s) && !isDigit(s[j]) {
			j++
		}
		tokens = append(tokens, s[i:j])
		if j >= len(s) {
			break
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		tokens = append(tokens, s[j:k])
		i = k
	}
	return tokens
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
