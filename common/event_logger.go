package common

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ANSI color codes
const (
	Blue    = "\033[94m"
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Cyan    = "\033[96m"
	Magenta = "\033[95m"
	Red     = "\033[91m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reset   = "\033[0m"
)

// DomainColor returns the color for a domain.
func DomainColor(domain string) string {
	if domain == "cart" {
		return Blue
	}
	return Magenta
}

// EventColor returns the color for an event type.
func EventColor(eventType string) string {
	switch {
	case strings.Contains(eventType, "Placed"):
		return Cyan
	case strings.Contains(eventType, "Cleared"), strings.Contains(eventType, "Removed"):
		return Red
	case strings.Contains(eventType, "Added"):
		return Green
	case strings.Contains(eventType, "Updated"):
		return Yellow
	default:
		return ""
	}
}

// PrettyProjector prints events as colored blocks, for local development.
type PrettyProjector struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrettyProjector creates a PrettyProjector writing to w.
func NewPrettyProjector(w io.Writer) *PrettyProjector {
	return &PrettyProjector{w: w}
}

// Project prints a single event page.
func (p *PrettyProjector) Project(domain string, root uuid.UUID, page EventPage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	LogEvent(p.w, domain, ShortID(root), page)
}

// LogEvent writes a single event with pretty formatting.
func LogEvent(w io.Writer, domain, rootID string, page EventPage) {
	eventType := page.Event.EventType()

	// Header
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s%s\n", Bold, strings.Repeat("─", 60), Reset)
	fmt.Fprintf(w, "%s%s[%s]%s %sseq:%d%s  %s%s...%s\n",
		Bold, DomainColor(domain), strings.ToUpper(domain), Reset,
		Dim, page.Sequence, Reset,
		Cyan, rootID, Reset)
	fmt.Fprintf(w, "%s%s%s%s\n", Bold, EventColor(eventType), eventType, Reset)
	fmt.Fprintln(w, strings.Repeat("─", 60))

	fields := EventFields(page.Event)
	if len(fields) == 0 {
		fmt.Fprintf(w, "  %s(no fields)%s\n", Dim, Reset)
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s%s:%s %v\n", Dim, k, Reset, fields[k])
	}
}
