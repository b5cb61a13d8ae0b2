package core

import (
	"github.com/dcoder4/backpack/config"
	"github.com/dcoder4/backpack/internal/contract"
	"github.com/dcoder4/backpack/internal/outwriter"
)

// ExecuteConfigDocs prints the registered SerDe reference table.
func ExecuteConfigDocs(cfg *contract.Config) error {
	return outwriter.WriteSerDeDocs(config.Docs(), cfg)
}
