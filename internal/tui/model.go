package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/config"
	"github.com/rgehrsitz/rptax/internal/domain"
)

// chromeHeight is the space taken by the title, tab bar and status bar
const chromeHeight = 6

// Model is the state of the return viewer
type Model struct {
	activeTab Tab

	width  int
	height int

	inputPath    string
	priorYearTax decimal.Decimal
	engine       *calculation.Engine

	input   *domain.TaxReturnInput
	results *domain.TaxReturnResult

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	err     error
	loading bool
}

// NewModel creates a viewer for the input file at inputPath
func NewModel(inputPath string, engine *calculation.Engine, priorYearTax decimal.Decimal) Model {
	return Model{
		activeTab:    TabSummary,
		inputPath:    inputPath,
		priorYearTax: priorYearTax,
		engine:       engine,
		viewport:     viewport.New(80, 24-chromeHeight),
		help:         help.New(),
		keys:         defaultKeyMap(),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init starts the first computation
func (m Model) Init() tea.Cmd {
	return computeCmd(m.inputPath, m.engine, m.priorYearTax)
}

// computeCmd loads the input file and runs both returns
func computeCmd(path string, engine *calculation.Engine, priorYearTax decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		input, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ComputedMsg{Err: err}
		}
		results, err := engine.ComputeReturn(context.Background(), input, priorYearTax)
		if err != nil {
			return ComputedMsg{Input: input, Err: err}
		}
		return ComputedMsg{Input: input, Results: results}
	}
}

// Results returns the most recent computation, or nil
func (m Model) Results() *domain.TaxReturnResult {
	return m.results
}

// ActiveTab returns the tab being displayed
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

// Err returns the error from the last computation
func (m Model) Err() error {
	return m.err
}
