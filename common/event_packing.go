package common

import (
	"time"

	"github.com/google/uuid"
)

// Event is a fact recorded by an aggregate.
type Event interface {
	EventType() string
}

// EventPage is one sequenced entry of an aggregate's event log.
type EventPage struct {
	Sequence  uint32
	Event     Event
	CreatedAt time.Time
}

// EventBook is the ordered event log of a single aggregate root.
type EventBook struct {
	Domain string
	Root   uuid.UUID
	Pages  []EventPage
}

// NewEventBook creates an empty event log for a root.
func NewEventBook(domain string, root uuid.UUID) *EventBook {
	return &EventBook{Domain: domain, Root: root}
}

// PackEvent appends an event to the book with the next sequence number and
// returns the new page.
func PackEvent(book *EventBook, event Event) EventPage {
	page := EventPage{
		Sequence:  NextSequence(book),
		Event:     event,
		CreatedAt: time.Now().UTC(),
	}
	book.Pages = append(book.Pages, page)
	return page
}

// PackEvents appends several events with sequential numbering.
func PackEvents(book *EventBook, events ...Event) []EventPage {
	pages := make([]EventPage, 0, len(events))
	for _, event := range events {
		pages = append(pages, PackEvent(book, event))
	}
	return pages
}

// NextSequence computes the next event sequence number from prior events.
func NextSequence(book *EventBook) uint32 {
	if book == nil || len(book.Pages) == 0 {
		return 0
	}
	return uint32(len(book.Pages))
}
