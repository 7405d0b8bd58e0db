package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/diff"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// ReportOptions controls change-report rendering.
type ReportOptions struct {
	// NoColor disables ANSI colors, e.g. when writing to a file or pipe.
	NoColor bool
}

var (
	addedPaint   = color.New(color.FgGreen).SprintFunc()
	removedPaint = color.New(color.FgRed).SprintFunc()
	changedPaint = color.New(color.FgYellow).SprintFunc()
	cascadePaint = color.New(color.FgMagenta).SprintFunc()
)

// Report renders a change report as one line per affected identity followed
// by a summary table. Lines are prefixed "+" (added), "-" (removed),
// "~" (changed), and "!" (cascade: base-model objects invalidated by a
// removal without being removed themselves).
//
// Example output:
//
//	Comparing base -> compare
//
//	+ VIEWS order_totals
//	- BASE VIEWS legacy_orders
//	~ DATASOURCES ds_orders
//	! VIEWS legacy_report
//
//	  CATEGORY | COUNT
//	-----------+-------
//	  added    |     1
//	  removed  |     1
//	  changed  |     1
//	  cascade  |     1
func Report(w io.Writer, r *diff.Report, opts ReportOptions) error {
	if _, err := fmt.Fprintf(w, "Comparing %s -> %s\n\n", r.Base, r.Comp); err != nil {
		return errors.Wrap(err, "failed to write report header")
	}

	if r.IsEmpty() && len(r.Cascade) == 0 {
		_, err := fmt.Fprintln(w, "No differences.")
		return errors.Wrap(err, "failed to write report")
	}

	paint := func(f func(...interface{}) string, s string) string {
		if opts.NoColor {
			return s
		}
		return f(s)
	}

	write := func(prefix string, f func(...interface{}) string, ids []vql.Identity) error {
		for _, id := range ids {
			if _, err := fmt.Fprintln(w, paint(f, prefix+" "+id.String())); err != nil {
				return errors.Wrap(err, "failed to write report line")
			}
		}
		return nil
	}

	if err := write("+", addedPaint, r.Added); err != nil {
		return err
	}
	if err := write("-", removedPaint, r.Removed); err != nil {
		return err
	}
	if err := write("~", changedPaint, r.ChangedIdentities()); err != nil {
		return err
	}
	if err := write("!", cascadePaint, r.Cascade); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Count"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.Append([]string{"added", strconv.Itoa(len(r.Added))})
	table.Append([]string{"removed", strconv.Itoa(len(r.Removed))})
	table.Append([]string{"changed", strconv.Itoa(len(r.Changed))})
	table.Append([]string{"cascade", strconv.Itoa(len(r.Cascade))})
	table.Render()

	return nil
}
