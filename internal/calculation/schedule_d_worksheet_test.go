package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleDTaxWorksheet_Sample(t *testing.T) {
	fed := table(t, 2024).Federal

	ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
		TaxableIncome:      d(550761),
		QualifiedDividends: d(43820),
		NetLongTermGain:    d(275000),
	}, fed)

	assertMoney(t, 318820, ws.PreferentialIncome, "preferential income")
	assertMoney(t, 231941, ws.OrdinaryIncome, "ordinary income")
	assertMoney(t, 41751, ws.TaxOnOrdinaryIncome, "ordinary tax")
	assertMoney(t, 0, ws.AmountAt0Percent, "0% layer")
	assertMoney(t, 318820, ws.AmountAt15Percent, "15% layer")
	assertMoney(t, 0, ws.AmountAt20Percent, "20% layer")
	assertMoney(t, 47823, ws.TaxAt15Percent, "15% tax")
	assertMoney(t, 89574, ws.TotalTax, "total")
	assertMoney(t, 89574, ws.FinalTax, "final")
	assert.True(t, ws.FinalTax.LessThan(ws.RegularTax))
	assert.False(t, ws.Section1250Unresolved)
}

func TestScheduleDTaxWorksheet_LayersAcrossAllBands(t *testing.T) {
	fed := table(t, 2024).Federal

	ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
		TaxableIncome:      d(700000),
		QualifiedDividends: d(10000),
		NetLongTermGain:    d(640000),
	}, fed)

	// ordinary 50,000; 0% room to 94,050; 15% room to 583,750; rest at 20%
	assertMoney(t, 50000, ws.OrdinaryIncome, "ordinary")
	assertMoney(t, 44050, ws.AmountAt0Percent, "0% layer")
	assertMoney(t, 489700, ws.AmountAt15Percent, "15% layer")
	assertMoney(t, 116250, ws.AmountAt20Percent, "20% layer")
	assertMoney(t, 73455, ws.TaxAt15Percent, "15% tax")
	assertMoney(t, 23250, ws.TaxAt20Percent, "20% tax")
}

func TestScheduleDTaxWorksheet_PreferentialCappedAtTaxableIncome(t *testing.T) {
	fed := table(t, 2024).Federal

	ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
		TaxableIncome:      d(60000),
		QualifiedDividends: d(20000),
		NetLongTermGain:    d(70000),
	}, fed)

	assertMoney(t, 60000, ws.PreferentialIncome, "preferential")
	assertMoney(t, 0, ws.OrdinaryIncome, "ordinary")
	assertMoney(t, 60000, ws.AmountAt0Percent, "0% layer")
	assertMoney(t, 0, ws.FinalTax, "final tax")
}

func TestScheduleDTaxWorksheet_Section1250(t *testing.T) {
	fed := table(t, 2024).Federal

	t.Run("inside 15% layer", func(t *testing.T) {
		ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
			TaxableIncome:    d(300000),
			NetLongTermGain:  d(50000),
			Unrecaptured1250: d(10000),
		}, fed)
		assertMoney(t, 250000, ws.OrdinaryIncome, "ordinary")
		assertMoney(t, 46085, ws.TaxOnOrdinaryIncome, "ordinary tax")
		assertMoney(t, 1000, ws.Section1250Surcharge, "surcharge")
		assertMoney(t, 54585, ws.TotalTax, "total")
		assertMoney(t, 58085, ws.RegularTax, "regular")
		assertMoney(t, 54585, ws.FinalTax, "final")
		assert.False(t, ws.Section1250Unresolved)
	})

	t.Run("straddles 20% layer", func(t *testing.T) {
		ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
			TaxableIncome:    d(700000),
			NetLongTermGain:  d(200000),
			Unrecaptured1250: d(150000),
		}, fed)
		assertMoney(t, 83750, ws.AmountAt15Percent, "15% layer")
		assertMoney(t, 0, ws.Section1250Surcharge, "surcharge")
		assert.True(t, ws.Section1250Unresolved)
	})

	t.Run("spans 0% and 15% layers without reaching 20%", func(t *testing.T) {
		ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
			TaxableIncome:    d(150000),
			NetLongTermGain:  d(100000),
			Unrecaptured1250: d(60000),
		}, fed)
		assertMoney(t, 50000, ws.OrdinaryIncome, "ordinary")
		assertMoney(t, 44050, ws.AmountAt0Percent, "0% layer")
		assertMoney(t, 55950, ws.AmountAt15Percent, "15% layer")
		assertMoney(t, 0, ws.AmountAt20Percent, "20% layer")
		// capped at the 15% layer: 55,950 x 10%
		assertMoney(t, 55950, ws.Section1250Gain, "1250 gain")
		assertMoney(t, 5595, ws.Section1250Surcharge, "surcharge")
		assertMoney(t, 19524, ws.TotalTax, "total")
		assertMoney(t, 19524, ws.FinalTax, "final")
		assert.False(t, ws.Section1250Unresolved)
	})

	t.Run("capped at net long-term gain", func(t *testing.T) {
		ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
			TaxableIncome:    d(300000),
			NetLongTermGain:  d(4000),
			Unrecaptured1250: d(9000),
		}, fed)
		assertMoney(t, 4000, ws.Section1250Gain, "1250 gain")
		assertMoney(t, 400, ws.Section1250Surcharge, "surcharge")
	})
}

func TestScheduleDTaxWorksheet_NeverExceedsRegularTax(t *testing.T) {
	for _, year := range []int{2024, 2025} {
		fed := table(t, year).Federal
		for _, taxable := range []int64{0, 15000, 90000, 250000, 600000, 2000000} {
			for _, qd := range []int64{0, 5000, 80000} {
				for _, ltcg := range []int64{-20000, 0, 40000, 700000} {
					for _, u1250 := range []int64{0, 30000} {
						ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
							TaxableIncome:      d(taxable),
							QualifiedDividends: d(qd),
							NetLongTermGain:    d(ltcg),
							Unrecaptured1250:   d(u1250),
						}, fed)
						regular := RoundCurrency(ProgressiveTax(d(taxable), fed.OrdinaryBrackets))
						label := fmt.Sprintf("%d ti=%d qd=%d ltcg=%d u1250=%d", year, taxable, qd, ltcg, u1250)
						assert.True(t, ws.FinalTax.LessThanOrEqual(regular), label)
						assert.True(t, ws.RegularTax.Equal(regular), label)
					}
				}
			}
		}
	}
}
