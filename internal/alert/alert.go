// Package alert is the user-facing error surface. The orchestrator supplies
// only the title and message text; presentation belongs to the host.
package alert

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

type Presenter interface {
	Present(ctx *log.Context, title, message string) error
}

// StderrPresenter prints the alert to standard error, the console equivalent
// of the host's modal notification.
type StderrPresenter struct {
	Out io.Writer // defaults to os.Stderr
}

func (p StderrPresenter) Present(ctx *log.Context, title, message string) error {
	w := p.Out
	if w == nil {
		w = os.Stderr
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", title, message)
	return errors.Wrap(err, "failed to present alert")
}

// PresentedAlert records one alert shown to the user.
type PresentedAlert struct {
	Title   string
	Message string
}

// RecordingPresenter captures alerts for tests.
type RecordingPresenter struct {
	Alerts []PresentedAlert
	Err    error
}

func (p *RecordingPresenter) Present(ctx *log.Context, title, message string) error {
	p.Alerts = append(p.Alerts, PresentedAlert{Title: title, Message: message})
	return p.Err
}
