package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// nameColumnWidth caps device names in the final table.
const nameColumnWidth = 40

var (
	foundColor    = color.New(color.FgBlue, color.Underline)
	notFoundColor = color.New(color.FgYellow)
	failedColor   = color.New(color.FgRed, color.Bold)
	pendingColor  = color.New(color.Faint)
	statusColor   = color.New(color.FgCyan)
	errorColor    = color.New(color.FgRed)
)

// terminalSink prints pipeline progress as it happens.
type terminalSink struct {
	out     io.Writer
	devices []domain.HardwareDevice
}

var _ driving.EventSink = (*terminalSink)(nil)

func newTerminalSink(out io.Writer) *terminalSink {
	return &terminalSink{out: out}
}

func (s *terminalSink) OnStatus(message string) {
	if strings.HasPrefix(message, "ERROR:") {
		errorColor.Fprintln(s.out, message)
		return
	}
	statusColor.Fprintln(s.out, message)
}

func (s *terminalSink) OnDeviceDiscovered(device domain.HardwareDevice) {
	s.devices = append(s.devices, device)
	fmt.Fprintf(s.out, "  found %s  %s\n", device.HardwareID(), device.Name)
}

func (s *terminalSink) OnResolutionUpdated(index int, outcome domain.Outcome) {
	if index < 0 || index >= len(s.devices) {
		return
	}
	text, c := outcomeCell(outcome)
	fmt.Fprintf(s.out, "  [%d/%d] %s: %s\n", index+1, len(s.devices), s.devices[index].Name, c.Sprint(text))
}

func (s *terminalSink) OnCompleted() {}

// outcomeCell renders an outcome for the report.
func outcomeCell(o domain.Outcome) (string, *color.Color) {
	switch o.State {
	case domain.OutcomeFound:
		return o.URL, foundColor
	case domain.OutcomeNotFound:
		return "No official link found", notFoundColor
	case domain.OutcomeFailed:
		return "ERROR", failedColor
	default:
		return "Pending", pendingColor
	}
}

// printReport writes the final device table of a session.
func printReport(out io.Writer, session *domain.ScanSession) {
	if session == nil || session.Len() == 0 {
		return
	}

	devices := session.Devices()
	outcomes := session.Outcomes()

	nameWidth := len("Device")
	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = domain.TruncateName(d.Name, nameColumnWidth)
		if w := len([]rune(names[i])); w > nameWidth {
			nameWidth = w
		}
	}
	idWidth := len("VEN_XXXX&DEV_XXXX")

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s  %s  %s\n", pad("Device", nameWidth), pad("Hardware ID", idWidth), "Driver link")
	fmt.Fprintf(out, "%s  %s  %s\n",
		strings.Repeat("-", nameWidth), strings.Repeat("-", idWidth), strings.Repeat("-", len("Driver link")))

	for i, d := range devices {
		text, c := outcomeCell(outcomes[i])
		fmt.Fprintf(out, "%s  %s  %s\n", pad(names[i], nameWidth), pad(d.HardwareID(), idWidth), c.Sprint(text))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, summarise(outcomes))
}

// summarise counts outcomes by state.
func summarise(outcomes []domain.Outcome) string {
	var found, notFound, failed, pending int
	for _, o := range outcomes {
		switch o.State {
		case domain.OutcomeFound:
			found++
		case domain.OutcomeNotFound:
			notFound++
		case domain.OutcomeFailed:
			failed++
		default:
			pending++
		}
	}
	return fmt.Sprintf("%d found, %d without official link, %d failed, %d pending",
		found, notFound, failed, pending)
}

// pad right-pads s to width runes. Colour codes are applied after padding
// so escape sequences never skew the columns.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
