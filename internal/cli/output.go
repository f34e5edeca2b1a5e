// internal/cli/output.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arc-language/pkgflags"
	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/fatih/color"
)

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.Bold)
)

// printResult prints what a reconciliation changed and every contained failure
func printResult(w io.Writer, res *pkgflags.Result) {
	for _, category := range core.AllCategories {
		for _, tok := range res.Added[category] {
			addedColor.Fprintf(w, "+ %-14s %s\n", category, tok)
		}
		for _, tok := range res.Removed[category] {
			removedColor.Fprintf(w, "- %-14s %s\n", category, tok)
		}
	}
	if !res.Changed() {
		fmt.Fprintln(w, "No option changes.")
	}
	printWarnings(w, res.Warnings)

	fmt.Fprintf(w, "Checked: %s\n", joinOrNone(res.Active.Sorted()))
	if res.Reindex {
		fmt.Fprintln(w, "Index rebuild requested.")
	}
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		warnColor.Fprintf(w, "warning: %s\n", msg)
	}
}

func printSlots(w io.Writer, slots pkgflags.Slots) {
	for _, category := range core.AllCategories {
		headerColor.Fprintf(w, "%s:\n", category)
		if len(slots[category]) == 0 {
			fmt.Fprintln(w, "  (none)")
			continue
		}
		for _, v := range slots[category] {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, " ")
}
