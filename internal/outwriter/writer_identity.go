package outwriter

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dcoder4/backpack/idcard"
	"github.com/dcoder4/backpack/internal/contract"
)

// WriteIdentity prints the resolved device identity as a field/value table.
func WriteIdentity(identity *idcard.AutoIdentity, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeIdentityTable(identity, w)
	}, "identity report")
}

// writeIdentityTable renders one row per identity field, with tags expanded
// in sorted order for deterministic output.
func writeIdentityTable(identity *idcard.AutoIdentity, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	created := ""
	if !identity.ApplicationCreatedTime.IsZero() {
		created = identity.ApplicationCreatedTime.Format("2006-01-02 15:04:05")
	}

	data := [][]string{
		{"Application ID", identity.ApplicationID},
		{"Application Name", identity.ApplicationName},
		{"Description", identity.ApplicationDescription},
		{"Created", created},
		{"Status", contract.GetColorStatus(identity.ApplicationStatus)},
		{"Device ID", identity.DeviceID},
		{"Device Name", identity.DeviceName},
	}

	tags := make([]string, 0, len(identity.ApplicationTags))
	for k := range identity.ApplicationTags {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	for _, k := range tags {
		data = append(data, []string{"Tag " + k, identity.ApplicationTags[k]})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if identity.ApplicationName == "" {
		_, err := fmt.Fprintln(writer, "Identity could not be fully resolved; see warnings above.")
		return err
	}
	return nil
}
