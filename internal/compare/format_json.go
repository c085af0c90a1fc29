package compare

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// JSONFormatter writes a comparison as a single JSON document. Indent is
// applied per nesting level; empty produces compact output.
type JSONFormatter struct {
	Indent string
}

// comparisonDocument wraps a ComparisonSet with the scenario that yields the
// lowest combined tax so consumers need not rescan the alternatives.
type comparisonDocument struct {
	*ComparisonSet
	TaxYear         int             `json:"taxYear"`
	LowestTax       string          `json:"lowestTax"`
	CombinedSavings decimal.Decimal `json:"combinedSavings"`
}

// lowestCombined returns the scenario with the smallest combined tax and how
// much it saves against the base. Ties keep the earlier scenario, base first.
func lowestCombined(set *ComparisonSet) (string, decimal.Decimal) {
	if set.BaseResult == nil {
		return "", decimal.Zero
	}
	name, best := set.BaseName, set.BaseResult.CombinedTax
	for _, alt := range set.AlternativeResults {
		if alt.CombinedTax.LessThan(best) {
			name, best = alt.Name, alt.CombinedTax
		}
	}
	return name, set.BaseResult.CombinedTax.Sub(best)
}

// Format renders compSet. HTML characters in scenario descriptions are left
// unescaped.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil {
		return "", fmt.Errorf("no comparison to format")
	}
	doc := comparisonDocument{ComparisonSet: compSet}
	if compSet.BaseResult != nil {
		doc.TaxYear = compSet.BaseResult.TaxYear
	}
	doc.LowestTax, doc.CombinedSavings = lowestCombined(compSet)

	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jf.Indent)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding comparison: %w", err)
	}
	return sb.String(), nil
}
