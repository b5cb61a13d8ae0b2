package outwriter

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dcoder4/backpack/config"
	"github.com/dcoder4/backpack/internal/contract"
)

// WriteSerDeDocs prints the documentation table for all registered config
// serdes.
func WriteSerDeDocs(entries []config.DocEntry, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeSerDeDocsTable(entries, w)
	}, "serde docs")
}

func writeSerDeDocsTable(entries []config.DocEntry, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Name", "Description", "Example"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{e.Name, e.Description, e.Example})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
