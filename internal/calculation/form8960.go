package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeNIIT computes the Net Investment Income Tax. Net investment income is
// taxable interest, ordinary dividends and any net capital gain; wages and
// retirement distributions are excluded.
func ComputeNIIT(cfg taxconfig.FederalConfig, income domain.IncomeResult) domain.Form8960Result {
	netGain := positivePart(income.NetShortTermGainLoss.Add(income.NetLongTermGainLoss))
	nii := income.TaxableInterest.Add(income.OrdinaryDividends).Add(netGain)

	magiExcess := positivePart(income.AGI.Sub(cfg.NIITThreshold))
	base := decimal.Min(nii, magiExcess)

	return domain.Form8960Result{
		NetInvestmentIncome: RoundCurrency(nii),
		MAGI:                income.AGI,
		MAGIThreshold:       cfg.NIITThreshold,
		MAGIExcess:          RoundCurrency(magiExcess),
		NIITBase:            RoundCurrency(base),
		NIIT:                RoundCurrency(base.Mul(cfg.NIITRate)),
	}
}
