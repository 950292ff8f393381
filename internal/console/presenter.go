// Package console renders the upload widget as plain lines of text, for the
// one-shot upload command.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Presenter struct {
	out    io.Writer
	errOut io.Writer
	length string

	statusStyle  lipgloss.Style
	headingStyle lipgloss.Style
	alertStyle   lipgloss.Style

	status        string
	resultVisible bool
}

// NewPresenter writes progress and results to out and alerts to errOut.
// Colours are only emitted when the writer is a terminal.
func NewPresenter(out, errOut io.Writer, length string) *Presenter {
	r := lipgloss.NewRenderer(out)
	er := lipgloss.NewRenderer(errOut)
	return &Presenter{
		out:          out,
		errOut:       errOut,
		length:       length,
		statusStyle:  r.NewStyle().Foreground(lipgloss.Color("#959595")),
		headingStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F4FB7")),
		alertStyle:   er.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
	}
}

func (p *Presenter) ShowStatus(text string) {
	p.status = text
	fmt.Fprintln(p.out, p.statusStyle.Render(text))
}

func (p *Presenter) RevealResult() {
	p.resultVisible = true
}

func (p *Presenter) HideResult() {
	p.resultVisible = false
}

func (p *Presenter) SetSummary(text string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", p.headingStyle.Render("Summary"), text)
}

func (p *Presenter) SetSnippet(text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n", p.headingStyle.Render("Extracted text"), text)
}

func (p *Presenter) Alert(text string) {
	fmt.Fprintln(p.errOut, p.alertStyle.Render(text))
}

func (p *Presenter) Length() string {
	return p.length
}

func (p *Presenter) Status() string {
	return p.status
}

func (p *Presenter) ResultVisible() bool {
	return p.resultVisible
}
