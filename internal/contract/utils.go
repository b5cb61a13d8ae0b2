package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Health status values reported by the fleet-management service.
const (
	RunningStatus  = "RUNNING"
	ErrorStatus    = "ERROR"
	NotAvailStatus = "NOT_AVAILABLE"
)

// Color variables for console output.
var (
	healthyColor = color.New(color.FgGreen, color.Bold)
	erroredColor = color.New(color.FgRed, color.Bold)
	unknownColor = color.New(color.FgYellow)
)

// GetColorStatus returns a colored health status label for console output.
func GetColorStatus(status string) string {
	switch status {
	case RunningStatus:
		return healthyColor.Sprint(status)
	case ErrorStatus:
		return erroredColor.Sprint(status)
	default:
		return unknownColor.Sprint(status)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// SelectOutputFile returns the appropriate file handle for output, falling
// back to stdout when no path is configured.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// NewLogger builds the console logger handed to library components.
// Verbose mode lowers the level to debug.
func NewLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
