// Package model defines shared data structures.
package model

import "time"

// Tool identifies one tab of the toolkit.
type Tool int

// Tab order matches the UI.
const (
	ToolBase64 Tool = iota
	ToolColorConverter
	ToolDateConverter
	ToolHashGenerator
	ToolNumberBaseConverter
	ToolPasswordGenerator
	ToolQRCodeGenerator
	ToolUUIDGenerator
)

// Name returns the tool's tab label.
func (t Tool) Name() string {
	switch t {
	case ToolBase64:
		return "Base64"
	case ToolColorConverter:
		return "Colors"
	case ToolDateConverter:
		return "Dates"
	case ToolHashGenerator:
		return "Hashes"
	case ToolNumberBaseConverter:
		return "Number Base"
	case ToolPasswordGenerator:
		return "Password"
	case ToolQRCodeGenerator:
		return "QR Code"
	case ToolUUIDGenerator:
		return "UUID"
	default:
		return "Unknown"
	}
}

// Next returns the following tool in tab order, wrapping around.
func (t Tool) Next() Tool {
	if t >= ToolUUIDGenerator {
		return ToolBase64
	}
	return t + 1
}

// Prev returns the preceding tool in tab order, wrapping around.
func (t Tool) Prev() Tool {
	if t <= ToolBase64 {
		return ToolUUIDGenerator
	}
	return t - 1
}

// Event records one tool run for the history log.
type Event struct {
	ID        int64
	CreatedAt time.Time
	Tool      string
	Detail    string
}
