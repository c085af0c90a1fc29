package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/tui"
)

func main() {
	priorYearTax := flag.String("prior-year-tax", "0", "prior-year total federal tax")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: rptax-tui [--prior-year-tax N] <input-file>")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Printf("Error: input file not found: %s\n", inputPath)
		os.Exit(1)
	}

	prior, err := decimal.NewFromString(*priorYearTax)
	if err != nil {
		fmt.Printf("Error: invalid --prior-year-tax %q: %v\n", *priorYearTax, err)
		os.Exit(1)
	}

	engine, err := calculation.NewDefaultEngine()
	if err != nil {
		fmt.Printf("Error loading tax tables: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(inputPath, engine, prior),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
