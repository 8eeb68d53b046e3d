package runner

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Bar is a stderr progress bar showing live pass/fail counts while cases
// execute.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar returns a progress bar sized for totalCases. It satisfies the
// Progress interface expected by Runner.SetProgress.
func NewBar(totalCases int) Progress {
	bar := progressbar.NewOptions(totalCases,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Bar{bar: bar}
}

// Update advances the bar to the combined count and refreshes the
// pass/fail description.
func (b *Bar) Update(passed, failed int) {
	b.bar.Set(passed + failed)
	b.bar.Describe(describe(passed, failed))
}

// Finish completes the bar.
func (b *Bar) Finish() {
	b.bar.Finish()
}

func describe(passed, failed int) string {
	return color.CyanString("Running cases: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
