// Package ui holds the interactive failure viewer shown by the fails
// command.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"stf/internal/storage"
	"stf/pkg/runner"
)

// FailureViewer displays the last run's failures in a two-pane TUI: the
// failed cases on the left, the diagnostic log of the selected one on the
// right. Resolved marks are persisted back through the storage.
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a FailureViewer over the given storage.
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View runs the TUI until the user exits. With no failures it prints a
// one-liner and returns immediately.
func (v *FailureViewer) View(results *storage.Output) error {
	if len(results.Failures) == 0 {
		color.Green("✓ No failures in the last run")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	itemText := func(index int) string {
		f := results.Failures[index]
		label := fmt.Sprintf("%s::%s", f.Suite, f.Case)
		if f.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, label)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, label)
	}
	for i := range results.Failures {
		list.AddItem(itemText(i), "", 0, nil)
	}

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	unresolved := func() int {
		n := 0
		for _, f := range results.Failures {
			if !f.Resolved {
				n++
			}
		}
		return n
	}
	updateHeader := func() {
		header.SetText(fmt.Sprintf(
			" Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] toggle resolved, Ctrl+C exit ",
			len(results.Failures), unresolved()))
	}
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results.Failures) {
			return
		}
		details.SetText(formatFailure(results.Failures[index]))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Failures) {
					results.Failures[index].Resolved = !results.Failures[index].Resolved
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					// Best effort; the toggle stays visible either way.
					_ = v.storage.SaveOutput(results)
				}
				return nil
			}
		}
		return event
	})
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	panes := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(panes, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("run failure viewer: %w", err)
	}
	return nil
}

// formatFailure renders one failure with tview color tags.
func formatFailure(f runner.Failure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ %s::%s[white]\n\n", f.Suite, f.Case)
	if f.Log == "" {
		b.WriteString("[gray]no diagnostic output[white]\n")
	} else {
		fmt.Fprintf(&b, "[yellow]Diagnostics:[white]\n%s\n", f.Log)
	}
	if f.Resolved {
		b.WriteString("\n[green]marked resolved[white]\n")
	}
	return b.String()
}
