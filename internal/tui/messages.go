package tui

import "github.com/rgehrsitz/rptax/internal/domain"

// Tab identifies one page of the return viewer
type Tab int

const (
	TabSummary Tab = iota
	TabFederal
	TabForms
	TabCalifornia
)

var tabNames = []string{"Summary", "Federal", "Forms", "California"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// ComputedMsg carries the outcome of loading and computing the input file
type ComputedMsg struct {
	Input   *domain.TaxReturnInput
	Results *domain.TaxReturnResult
	Err     error
}
