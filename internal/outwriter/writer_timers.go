package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dcoder4/backpack/internal/contract"
	"github.com/dcoder4/backpack/timepiece"
)

// WriteTimerReport prints a timer tree, a per-scope statistics table and
// a ticker summary as one report. Writing everything in a single pass
// matters when output goes to a file, since the file is truncated on open.
func WriteTimerReport(root *timepiece.ScopeTimer, ticker *timepiece.Ticker, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, root.String()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := writeTimerStatsTable(root, cfg, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return writeTicker(ticker, cfg, w)
	}, "timer report")
}

// writeTimerStatsTable renders one row per scope in pre-order.
func writeTimerStatsTable(root *timepiece.ScopeTimer, cfg *contract.Config, writer io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	maxScopeWidth := getMaxScopeWidth(cfg)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Scope", "Samples", "Min(s)", "Mean(s)", "Max(s)", "Freq(Hz)"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	root.Walk(func(st *timepiece.ScopeTimer) {
		data = append(data, []string{
			truncateCell(st.QualifiedName(), maxScopeWidth),
			strconv.Itoa(st.Len()),
			fmtFloat(st.Min()),
			fmtFloat(st.Mean()),
			fmtFloat(st.Max()),
			fmtFloat(st.Frequency()),
		})
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeTicker prints the rendered ticker and its derived statistics.
func writeTicker(ticker *timepiece.Ticker, cfg *contract.Config, w io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	if _, err := fmt.Fprintln(w, ticker.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Mean interval %ss at %s Hz over %d samples\n",
		fmtFloat(ticker.Mean()), fmtFloat(ticker.Frequency()), ticker.Len())
	return err
}

// getMaxScopeWidth calculates the maximum width for qualified scope names
// based on terminal width and the fixed numeric columns.
func getMaxScopeWidth(cfg *contract.Config) int {
	termWidth := getTerminalWidth(cfg)

	// Reserve space for the five numeric columns with borders and padding.
	available := termWidth - 60
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
