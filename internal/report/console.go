package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/paradox-sims/montyhall/internal/sim"
)

// Console writes run banners and batch summaries for human consumption.
// Summary output is printed unconditionally, independent of the log level.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole creates a reporter writing to w.
func NewConsole(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Banner announces the batch about to run.
func (c *Console) Banner(strategy sim.Strategy) {
	if strategy.SwitchDoors() {
		fmt.Fprintln(c.out, "Running simulation where the player changes the door:")
		return
	}
	fmt.Fprintln(c.out, "Running simulation where the player does not change the door:")
}

// BatchSummary prints the aggregate outcome of one batch.
func (c *Console) BatchSummary(result sim.BatchResult) {
	fmt.Fprintf(c.out, "Simulations: %d, Wins: %d, Win Ratio: %.2f\n",
		result.Simulations, result.Wins, result.WinRatio())
}

// Comparison renders the strategies side by side. It is a no-op unless table
// output was requested.
func (c *Console) Comparison(result sim.ComparisonResult) {
	if !c.table {
		return
	}

	fmt.Fprintln(c.out)

	tbl := tablewriter.NewWriter(c.out)
	tbl.Header("Strategy", "Simulations", "Wins", "Win Ratio")
	for _, batch := range []sim.BatchResult{result.Stay, result.Switch} {
		tbl.Append(
			string(batch.Strategy),
			fmt.Sprintf("%d", batch.Simulations),
			fmt.Sprintf("%d", batch.Wins),
			fmt.Sprintf("%.2f", batch.WinRatio()),
		)
	}
	tbl.Render()

	if result.Advantage == "" {
		fmt.Fprintln(c.out, "Advantage: none, both strategies tied")
		return
	}
	fmt.Fprintf(c.out, "Advantage: %s (%+.2f win ratio)\n", result.Advantage, result.RatioDelta)
}
