package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mkraev/toolbelt/internal/model"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.footerHints()))
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, 8)
	for tool := model.ToolBase64; tool <= model.ToolUUIDGenerator; tool++ {
		if tool == m.active {
			tabs = append(tabs, activeTabStyle.Render(tool.Name()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tool.Name()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderBody() string {
	switch m.active {
	case model.ToolBase64:
		return m.viewBase64()
	case model.ToolColorConverter:
		return m.viewColor()
	case model.ToolDateConverter:
		return m.viewDate()
	case model.ToolHashGenerator:
		return m.viewHashes()
	case model.ToolNumberBaseConverter:
		return m.viewNumBase()
	case model.ToolPasswordGenerator:
		return m.viewPassword()
	case model.ToolQRCodeGenerator:
		return m.viewQR()
	case model.ToolUUIDGenerator:
		return m.viewUUID()
	default:
		return ""
	}
}

func (m *Model) viewBase64() string {
	rows := []string{m.inputs[m.active].View(), ""}
	rows = append(rows, settingsRow("Encoded", m.b64Encoded))
	rows = append(rows, settingsRow("Decoded", m.b64Decoded))
	return strings.Join(rows, "\n")
}

func (m *Model) viewColor() string {
	rows := []string{m.inputs[m.active].View(), ""}
	if m.colorErr != "" {
		rows = append(rows, errorStyle.Render(m.colorErr))
		return strings.Join(rows, "\n")
	}
	rows = append(rows,
		settingsRow("CMYK", m.colorConv.CMYK),
		settingsRow("RGB", m.colorConv.RGB),
		settingsRow("HEX", m.colorConv.HEX),
		settingsRow("HSL", m.colorConv.HSL),
	)
	return strings.Join(rows, "\n")
}

func (m *Model) viewDate() string {
	rows := []string{m.inputs[m.active].View(), ""}
	if m.dateErr != "" {
		rows = append(rows, errorStyle.Render(m.dateErr))
		return strings.Join(rows, "\n")
	}
	rows = append(rows,
		settingsRow("RFC 3339", m.dateConv.RFC3339),
		settingsRow("RFC 2822", m.dateConv.RFC2822),
		settingsRow("ISO 8601", m.dateConv.ISO8601),
		settingsRow("Unix", m.dateConv.UnixTimestamp),
		settingsRow("Readable", m.dateConv.HumanReadable),
		settingsRow("Short", m.dateConv.ShortDate),
		settingsRow("Time", m.dateConv.TimeOnly),
	)
	return strings.Join(rows, "\n")
}

func (m *Model) viewHashes() string {
	rows := []string{m.inputs[m.active].View(), ""}
	if m.hasSums {
		rows = append(rows,
			settingsRow("SHA-1", m.hashSums.SHA1),
			settingsRow("SHA-256", m.hashSums.SHA256),
			settingsRow("SHA-384", m.hashSums.SHA384),
			settingsRow("SHA-512", m.hashSums.SHA512),
		)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewNumBase() string {
	rows := []string{m.inputs[m.active].View(), ""}
	if m.hasNum {
		rows = append(rows,
			settingsRow("Bin → Dec", m.numConv.BinaryToDecimal),
			settingsRow("Bin → Hex", m.numConv.BinaryToHexadecimal),
			settingsRow("Dec → Bin", m.numConv.DecimalToBinary),
			settingsRow("Dec → Hex", m.numConv.DecimalToHexadecimal),
			settingsRow("Hex → Bin", m.numConv.HexadecimalToBinary),
			settingsRow("Hex → Dec", m.numConv.HexadecimalToDecimal),
		)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewPassword() string {
	settings := []string{
		settingsRow("Length", fmt.Sprintf("%d", m.pwConfig.Length)),
		settingsRow("Quantity", fmt.Sprintf("%d", m.pwConfig.Count)),
		settingsRow("Uppercase", onOff(m.pwConfig.Uppercase)),
		settingsRow("Lowercase", onOff(m.pwConfig.Lowercase)),
		settingsRow("Numbers", onOff(m.pwConfig.Numbers)),
		settingsRow("Symbols", onOff(m.pwConfig.Symbols)),
		settingsRow("Avoid similar", onOff(m.pwConfig.AvoidSimilar)),
		settingsRow("Allow duplicates", onOff(m.pwConfig.AllowDuplicates)),
		settingsRow("Avoid sequential", onOff(m.pwConfig.AvoidSequential)),
	}
	left := strings.Join(settings, "\n")
	if len(m.passwords) == 0 {
		return left
	}
	right := accentStyle.Render(strings.Join(m.passwords, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m *Model) viewQR() string {
	rows := []string{m.inputs[m.active].View(), ""}
	if m.qrErr != "" {
		rows = append(rows, errorStyle.Render(m.qrErr))
	} else if m.qrText != "" {
		rows = append(rows, m.qrText)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewUUID() string {
	rows := []string{settingsRow("Quantity", fmt.Sprintf("%d", m.uuidCount)), ""}
	if len(m.uuidV4) > 0 {
		rows = append(rows, labelStyle.Render("UUID v4:"))
		rows = append(rows, accentStyle.Render(strings.Join(m.uuidV4, "\n")))
	}
	if len(m.uuidV7) > 0 {
		rows = append(rows, labelStyle.Render("UUID v7:"))
		rows = append(rows, accentStyle.Render(strings.Join(m.uuidV7, "\n")))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) footerHints() string {
	common := "Tab switch · Esc quit"
	switch m.active {
	case model.ToolPasswordGenerator:
		return "g generate · m batch · i/d length · k/j quantity · u/l/n/s classes · z similar · q duplicates · v sequential · c clear · x export · y copy · " + common
	case model.ToolUUIDGenerator:
		return "4 v4 · 7 v7 · k/j quantity · c clear · x export · y copy · " + common
	default:
		return "Enter convert · Ctrl+X export · Ctrl+Y copy · " + common
	}
}

// settingsRow renders a padded label/value pair; labels align across rows.
func settingsRow(label, value string) string {
	const labelWidth = 17
	padded := label
	if w := runewidth.StringWidth(label); w < labelWidth {
		padded = label + strings.Repeat(" ", labelWidth-w)
	}
	return labelStyle.Render(padded) + valueStyle.Render(value)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// exportPayload returns the lines and target filename for the active tool's
// text export. An empty slice means there is nothing to export.
func (m *Model) exportPayload() ([]string, string) {
	switch m.active {
	case model.ToolBase64:
		if m.b64Encoded == "" && m.b64Decoded == "" {
			return nil, ""
		}
		return []string{
			"Input: " + m.inputs[m.active].Value(),
			"Encoded: " + m.b64Encoded,
			"Decoded: " + m.b64Decoded,
		}, "base64.txt"
	case model.ToolColorConverter:
		if m.colorConv.HEX == "" {
			return nil, ""
		}
		return []string{
			"Entered Color Code: " + m.inputs[m.active].Value(),
			"CMYK: " + m.colorConv.CMYK,
			"RGB: " + m.colorConv.RGB,
			"HEX: " + m.colorConv.HEX,
			"HSL: " + m.colorConv.HSL,
		}, "color_codes.txt"
	case model.ToolDateConverter:
		if m.dateConv.RFC3339 == "" {
			return nil, ""
		}
		return []string{
			"Input: " + m.inputs[m.active].Value(),
			"RFC 3339: " + m.dateConv.RFC3339,
			"RFC 2822: " + m.dateConv.RFC2822,
			"ISO 8601: " + m.dateConv.ISO8601,
			"Unix Timestamp: " + m.dateConv.UnixTimestamp,
			"Human Readable: " + m.dateConv.HumanReadable,
			"Short Date: " + m.dateConv.ShortDate,
			"Time Only: " + m.dateConv.TimeOnly,
		}, "dates.txt"
	case model.ToolHashGenerator:
		if !m.hasSums {
			return nil, ""
		}
		return []string{
			"Input: " + m.inputs[m.active].Value(),
			"SHA-1: " + m.hashSums.SHA1,
			"SHA-256: " + m.hashSums.SHA256,
			"SHA-384: " + m.hashSums.SHA384,
			"SHA-512: " + m.hashSums.SHA512,
		}, "hashes.txt"
	case model.ToolNumberBaseConverter:
		if !m.hasNum {
			return nil, ""
		}
		return []string{
			"Input: " + m.inputs[m.active].Value(),
			"Binary to Decimal: " + m.numConv.BinaryToDecimal,
			"Binary to Hexadecimal: " + m.numConv.BinaryToHexadecimal,
			"Decimal to Binary: " + m.numConv.DecimalToBinary,
			"Decimal to Hexadecimal: " + m.numConv.DecimalToHexadecimal,
			"Hexadecimal to Binary: " + m.numConv.HexadecimalToBinary,
			"Hexadecimal to Decimal: " + m.numConv.HexadecimalToDecimal,
		}, "number_conversion.txt"
	case model.ToolPasswordGenerator:
		if len(m.passwords) == 0 {
			return nil, ""
		}
		return m.passwords, "password.txt"
	case model.ToolQRCodeGenerator:
		if m.qrText == "" {
			return nil, ""
		}
		return []string{m.qrText}, ""
	case model.ToolUUIDGenerator:
		if len(m.uuidV4) == 0 && len(m.uuidV7) == 0 {
			return nil, ""
		}
		lines := []string{}
		if len(m.uuidV4) > 0 {
			lines = append(lines, "UUID v4:")
			lines = append(lines, m.uuidV4...)
		}
		if len(m.uuidV7) > 0 {
			lines = append(lines, "UUID v7:")
			lines = append(lines, m.uuidV7...)
		}
		return lines, "uuid.txt"
	default:
		return nil, ""
	}
}

// copyPayload returns the text the clipboard binding copies for the active
// tool: the primary result, not the full report.
func (m *Model) copyPayload() string {
	switch m.active {
	case model.ToolBase64:
		return m.b64Encoded
	case model.ToolColorConverter:
		return m.colorConv.HEX
	case model.ToolDateConverter:
		return m.dateConv.RFC3339
	case model.ToolHashGenerator:
		return m.hashSums.SHA256
	case model.ToolNumberBaseConverter:
		if !m.hasNum {
			return ""
		}
		return m.numConv.DecimalToHexadecimal
	case model.ToolPasswordGenerator:
		return strings.Join(m.passwords, "\n")
	case model.ToolQRCodeGenerator:
		return m.inputs[m.active].Value()
	case model.ToolUUIDGenerator:
		return strings.Join(append(append([]string{}, m.uuidV4...), m.uuidV7...), "\n")
	default:
		return ""
	}
}
