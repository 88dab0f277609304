package common

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Projector consumes event pages as an aggregate records them.
type Projector interface {
	Project(domain string, root uuid.UUID, page EventPage)
}

// ProjectorFunc adapts a function to the Projector interface.
type ProjectorFunc func(domain string, root uuid.UUID, page EventPage)

// Project calls f.
func (f ProjectorFunc) Project(domain string, root uuid.UUID, page EventPage) {
	f(domain, root, page)
}

// LogProjector writes every recorded event to a zap logger.
type LogProjector struct {
	logger *zap.Logger
}

// NewLogProjector creates a projector that logs events at debug level.
func NewLogProjector(logger *zap.Logger) *LogProjector {
	return &LogProjector{logger: logger}
}

// Project logs a single event page.
func (p *LogProjector) Project(domain string, root uuid.UUID, page EventPage) {
	fields := []zap.Field{
		zap.String("domain", domain),
		zap.String("root", ShortID(root)),
		zap.Uint32("seq", page.Sequence),
		zap.String("event_type", page.Event.EventType()),
	}
	if m, ok := page.Event.(zapcore.ObjectMarshaler); ok {
		fields = append(fields, zap.Object("event", m))
	}
	p.logger.Debug("event recorded", fields...)
}

// EventFields flattens an event into a map using its zap marshaler.
// Events without a marshaler yield an empty map.
func EventFields(event Event) map[string]interface{} {
	m, ok := event.(zapcore.ObjectMarshaler)
	if !ok {
		return map[string]interface{}{}
	}
	enc := zapcore.NewMapObjectEncoder()
	if err := m.MarshalLogObject(enc); err != nil {
		return map[string]interface{}{}
	}
	return enc.Fields
}
