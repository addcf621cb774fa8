package color

import (
	"strconv"
	"strings"
)

// FromHTML parses a colour given in one of: a named colour, hex forms
// (#RGB, #RGBA, #RRGGBB, #RRGGBBAA), or functional forms
// (rgb(...)/rgba(...)/hsl(...)/hsla(...)).
func FromHTML(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)

	if c, err := FromName(trimmed); err == nil {
		return c, nil
	}

	if strings.HasPrefix(trimmed, "#") {
		return fromHex(trimmed)
	}

	name, ok := functionName(trimmed)
	switch name {
	case "rgba":
		if ok {
			return fromFunctional(trimmed, 4, true)
		}
	case "rgb":
		if ok {
			return fromFunctional(trimmed, 3, false)
		}
	case "hsla":
		if ok {
			return fromHSLFunctional(trimmed, true)
		}
	case "hsl":
		if ok {
			return fromHSLFunctional(trimmed, false)
		}
	}

	return Color{}, &ParseError{Input: s, Cause: "not a name, hex, rgb()/rgba(), or hsl()/hsla() form"}
}

// functionName extracts the lowercased word before the first "(" in a
// functional colour form, tolerating whitespace on either side of the
// parenthesis (the original grammar permits "rgba ( ... )").
func functionName(s string) (name string, ok bool) {
	idx := strings.IndexByte(s, '(')
	if idx < 0 || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(s[:idx])), true
}

func fromHex(s string) (Color, error) {
	hex := strings.TrimSpace(strings.TrimPrefix(s, "#"))
	hex = strings.ReplaceAll(hex, " ", "")
	switch len(hex) {
	case 3, 4:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return Color{}, &ParseError{Input: s, Cause: "invalid short hex digits"}
		}
		if len(hex) == 3 {
			v = v<<4 | 0xF
		}
		return FromU16(uint16(v)), nil
	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, &ParseError{Input: s, Cause: "invalid hex digits"}
		}
		if len(hex) == 6 {
			v = v<<8 | 0xFF
		}
		return FromU32(uint32(v)), nil
	default:
		return Color{}, &ParseError{Input: s, Cause: "hex colour must have 3, 4, 6, or 8 digits"}
	}
}

func fromFunctional(s string, fieldCount int, hasAlpha bool) (Color, error) {
	body := extractBody(s)
	fields := splitFields(body)
	if len(fields) != fieldCount {
		return Color{}, &ParseError{Input: s, Cause: "r, g, b" + optAlpha(hasAlpha) + " expected"}
	}
	r, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 8)
	if err != nil {
		return Color{}, &ParseError{Input: s, Cause: "invalid red value"}
	}
	g, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 8)
	if err != nil {
		return Color{}, &ParseError{Input: s, Cause: "invalid green value"}
	}
	b, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 8)
	if err != nil {
		return Color{}, &ParseError{Input: s, Cause: "invalid blue value"}
	}
	alpha := 1.0
	if hasAlpha {
		a, err := processPercent(fields[3])
		if err != nil {
			return Color{}, &ParseError{Input: s, Cause: "invalid alpha value"}
		}
		alpha = a
	}
	return FromRGBA(uint8(r), uint8(g), uint8(b), alpha), nil
}

func fromHSLFunctional(s string, hasAlpha bool) (Color, error) {
	body := extractBody(s)
	expect := 3
	if hasAlpha {
		expect = 4
	}
	fields := splitFields(body)
	if len(fields) != expect {
		return Color{}, &ParseError{Input: s, Cause: "h, s, l" + optAlpha(hasAlpha) + " expected"}
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Color{}, &ParseError{Input: s, Cause: "invalid hue value"}
	}
	satur, err := processPercent(fields[1])
	if err != nil {
		return Color{}, &ParseError{Input: s, Cause: "invalid saturation value"}
	}
	lum, err := processPercent(fields[2])
	if err != nil {
		return Color{}, &ParseError{Input: s, Cause: "invalid luminosity value"}
	}
	alpha := 1.0
	if hasAlpha {
		a, err := processPercent(fields[3])
		if err != nil {
			return Color{}, &ParseError{Input: s, Cause: "invalid alpha value"}
		}
		alpha = a
	}
	return FromHSLA(h, satur, lum, alpha), nil
}

func optAlpha(hasAlpha bool) string {
	if hasAlpha {
		return ", a"
	}
	return ""
}

// extractBody returns the text strictly between the first "(" and the
// final ")" in s, which must already have been validated by
// functionName.
func extractBody(s string) string {
	idx := strings.IndexByte(s, '(')
	return s[idx+1 : len(s)-1]
}

func splitFields(body string) []string {
	return strings.Split(body, ",")
}

// processPercent parses either a bare float or a "NN%" percentage,
// scaling the percentage form by 0.01.
func processPercent(field string) (float64, error) {
	trimmed := strings.TrimSpace(field)
	if strings.HasSuffix(trimmed, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(trimmed, "%")), 64)
		if err != nil {
			return 0, err
		}
		return v * 0.01, nil
	}
	return strconv.ParseFloat(trimmed, 64)
}
