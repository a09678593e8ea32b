package report

import (
	"strings"

	"github.com/nicholas-fedor/shoutrrr"

	"drivecheck/internal/health"
)

// Sender abstracts message dispatch so notification paths can be tested
// without hitting real services.
type Sender interface {
	Send(shoutrrrURL, message string) error
}

// ShoutrrrSender dispatches via the Shoutrrr library.
type ShoutrrrSender struct{}

func (ShoutrrrSender) Send(url, message string) error {
	return shoutrrr.Send(url, message)
}

// Notifier pushes a run summary when any device crosses the severity line.
// A zero URL disables it; send failures are the caller's to report and
// never affect the verdicts already computed.
type Notifier struct {
	URL            string
	IncludeCaution bool
	Sender         Sender
}

// Notify sends one message naming every flagged device, or nothing when no
// device qualifies.
func (n Notifier) Notify(reports []health.Report) error {
	if n.URL == "" {
		return nil
	}

	var lines []string
	for _, r := range reports {
		if n.flagged(r.Verdict.Severity) {
			lines = append(lines, strings.TrimRight(Block(r), "\n"))
		}
	}
	if len(lines) == 0 {
		return nil
	}

	sender := n.Sender
	if sender == nil {
		sender = ShoutrrrSender{}
	}
	return sender.Send(n.URL, "drivecheck: drive health needs attention\n"+strings.Join(lines, "\n"))
}

func (n Notifier) flagged(s health.Severity) bool {
	if s == health.SeverityBad {
		return true
	}
	return n.IncludeCaution && s == health.SeverityCaution
}
