package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dcoder4/backpack/core"
	"github.com/dcoder4/backpack/internal/contract"
)

// Annotation spec flags, collected as raw strings and parsed in core.
var (
	rectSpecs     []string
	labelSpecs    []string
	lineSpecs     []string
	markerSpecs   []string
	withTimestamp bool
)

// annotateCmd draws annotations onto a PNG image.
var annotateCmd = &cobra.Command{
	Use:   "annotate <input.png> <output.png>",
	Short: "Draw labels, boxes, lines and markers onto an image.",
	Long: `Draw annotations onto a PNG image using unit coordinates, where
(0,0) is the top-left corner and (1,1) is the bottom-right corner.

Examples:
  # Draw a detection box with a label
  backpack annotate in.png out.png --rect 0.1,0.1,0.4,0.5 --label 0.1,0.08,person

  # Draw a crossing line and stamp the current time
  backpack annotate in.png out.png --line 0,0.5,1,0.5,2 --timestamp`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		input := &core.AnnotateInput{
			InputPath:  args[0],
			OutputPath: args[1],
			Rects:      rectSpecs,
			Labels:     labelSpecs,
			Lines:      lineSpecs,
			Markers:    markerSpecs,
			Timestamp:  withTimestamp,
		}
		if err := core.ExecuteAnnotate(input); err != nil {
			contract.LogFatal("Cannot annotate image", err)
		}
	},
}
