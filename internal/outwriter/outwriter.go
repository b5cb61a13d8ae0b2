// Package outwriter has output and writer logic for the backpack CLI.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dcoder4/backpack/internal/contract"
)

// writeWithFile handles the common pattern of opening the configured output
// file, writing to it, and cleaning up. It falls back to stdout.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// createFloatFormatter returns a closure formatting floats with the
// configured precision.
func createFloatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// getTerminalWidth returns the width override when set, the detected
// terminal width otherwise, and a conservative default when detection
// fails (narrow terminals and CI).
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}

// truncateCell shortens a cell value to a maximum width with an ellipsis
// prefix, keeping the tail which carries the distinguishing part.
func truncateCell(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return value
}
