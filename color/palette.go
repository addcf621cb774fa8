package color

import "strings"

// Transparent is fully-transparent but valid (blendable, unlike Invalid).
var Transparent = Color{Red: 0, Green: 0, Blue: 0, Alpha: 0, Valid: true}

type paletteEntry struct {
	r, g, b, a uint8
}

// palette holds the ~148 named CSS colours (plus Transparent and
// Invalid, handled separately by Name/FromName). Extracted from the
// original implementation's colour table, with the YELLOW/YELLOW_GREEN
// pair corrected to standard CSS values (see DESIGN.md).
var palette = map[string]paletteEntry{
	"ALICE_BLUE": {240, 248, 255, 255},
	"ANTIQUE_WHITE": {250, 235, 215, 255},
	"AQUA": {0, 255, 255, 255},
	"AQUAMARINE": {127, 255, 212, 255},
	"AZURE": {240, 255, 255, 255},
	"BEIGE": {245, 245, 220, 255},
	"BISQUE": {255, 228, 196, 255},
	"BLACK": {0, 0, 0, 255},
	"BLANCHED_ALMOND": {255, 235, 205, 255},
	"BLUE": {0, 0, 255, 255},
	"BLUE_VIOLET": {138, 43, 226, 255},
	"BROWN": {165, 42, 42, 255},
	"BURLY_WOOD": {222, 184, 135, 255},
	"CADET_BLUE": {95, 158, 160, 255},
	"CHARTREUSE": {127, 255, 0, 255},
	"CHOCOLATE": {210, 105, 30, 255},
	"CORAL": {255, 127, 80, 255},
	"CORNFLOWER_BLUE": {100, 149, 237, 255},
	"CORN_SILK": {255, 248, 220, 255},
	"CRIMSON": {220, 20, 60, 255},
	"CYAN": {0, 255, 255, 255},
	"DARK_BLUE": {0, 0, 139, 255},
	"DARK_CYAN": {0, 139, 139, 255},
	"DARK_GOLDENROD": {184, 134, 11, 255},
	"DARK_GRAY": {169, 169, 169, 255},
	"DARK_GREEN": {0, 100, 0, 255},
	"DARK_GREY": {169, 169, 169, 255},
	"DARK_KHAKI": {189, 183, 107, 255},
	"DARK_MAGENTA": {139, 0, 139, 255},
	"DARK_OLIVE_GREEN": {85, 107, 47, 255},
	"DARK_ORANGE": {255, 140, 0, 255},
	"DARK_ORCHID": {153, 50, 204, 255},
	"DARK_RED": {139, 0, 0, 255},
	"DARK_SALMON": {233, 150, 122, 255},
	"DARK_SEA_GREEN": {143, 188, 143, 255},
	"DARK_SLATE_BLUE": {72, 61, 139, 255},
	"DARK_SLATE_GRAY": {47, 79, 79, 255},
	"DARK_SLATE_GREY": {47, 79, 79, 255},
	"DARK_TURQUOISE": {0, 206, 209, 255},
	"DARK_VIOLET": {148, 0, 211, 255},
	"DEEP_PINK": {255, 20, 147, 255},
	"DEEP_SKY_BLUE": {0, 191, 255, 255},
	"DIM_GRAY": {105, 105, 105, 255},
	"DIM_GREY": {105, 105, 105, 255},
	"DODGER_BLUE": {30, 144, 255, 255},
	"FIREBRICK": {178, 34, 34, 255},
	"FLORAL_WHITE": {255, 250, 240, 255},
	"FOREST_GREEN": {34, 139, 34, 255},
	"FUCHSIA": {255, 0, 255, 255},
	"GAINSBORO": {220, 220, 220, 255},
	"GHOST_WHITE": {248, 248, 255, 255},
	"GOLDENROD": {218, 165, 32, 255},
	"GOLD": {255, 215, 0, 255},
	"GRAY": {128, 128, 128, 255},
	"GREEN": {0, 128, 0, 255},
	"GREEN_YELLOW": {173, 255, 47, 255},
	"GREY": {128, 128, 128, 255},
	"HONEYDEW": {240, 255, 240, 255},
	"HOT_PINK": {255, 105, 180, 255},
	"INDIAN_RED": {205, 92, 92, 255},
	"INDIGO": {75, 0, 130, 255},
	"IVORY": {255, 255, 240, 255},
	"KHAKI": {240, 230, 140, 255},
	"LAVENDER_BLUSH": {255, 240, 245, 255},
	"LAVENDER": {230, 230, 250, 255},
	"LAWN_GREEN": {124, 252, 0, 255},
	"LEMON_CHIFFON": {255, 250, 205, 255},
	"LIGHT_BLUE": {173, 216, 230, 255},
	"LIGHT_CORAL": {240, 128, 128, 255},
	"LIGHT_CYAN": {224, 255, 255, 255},
	"LIGHT_GOLDENROD_YELLOW": {250, 250, 210, 255},
	"LIGHT_GRAY": {211, 211, 211, 255},
	"LIGHT_GREEN": {144, 238, 144, 255},
	"LIGHT_GREY": {211, 211, 211, 255},
	"LIGHT_PINK": {255, 182, 193, 255},
	"LIGHT_SALMON": {255, 160, 122, 255},
	"LIGHT_SEA_GREEN": {32, 178, 170, 255},
	"LIGHT_SKY_BLUE": {135, 206, 250, 255},
	"LIGHT_SLATE_GRAY": {119, 136, 153, 255},
	"LIGHT_SLATE_GREY": {119, 136, 153, 255},
	"LIGHT_STEEL_BLUE": {176, 196, 222, 255},
	"LIGHT_YELLOW": {255, 255, 224, 255},
	"LIME": {0, 255, 0, 255},
	"LIME_GREEN": {50, 205, 50, 255},
	"LINEN": {250, 240, 230, 255},
	"MAGENTA": {255, 0, 255, 255},
	"MAROON": {128, 0, 0, 255},
	"MEDIUM_AQUAMARINE": {102, 205, 170, 255},
	"MEDIUM_BLUE": {0, 0, 205, 255},
	"MEDIUM_ORCHID": {186, 85, 211, 255},
	"MEDIUM_PURPLE": {147, 112, 219, 255},
	"MEDIUM_SEA_GREEN": {60, 179, 113, 255},
	"MEDIUM_SLATE_BLUE": {123, 104, 238, 255},
	"MEDIUM_SPRING_GREEN": {0, 250, 154, 255},
	"MEDIUM_TURQUOISE": {72, 209, 204, 255},
	"MEDIUM_VIOLET_RED": {199, 21, 133, 255},
	"MIDNIGHT_BLUE": {25, 25, 112, 255},
	"MINT_CREAM": {245, 255, 250, 255},
	"MISTY_ROSE": {255, 228, 225, 255},
	"MOCCASIN": {255, 228, 181, 255},
	"NAVAJO_WHITE": {255, 222, 173, 255},
	"NAVY": {0, 0, 128, 255},
	"OLD_LACE": {253, 245, 230, 255},
	"OLIVE": {128, 128, 0, 255},
	"OLIVE_DRAB": {107, 142, 35, 255},
	"ORANGE": {255, 165, 0, 255},
	"ORANGE_RED": {255, 69, 0, 255},
	"ORCHID": {218, 112, 214, 255},
	"PALE_GOLDENROD": {238, 232, 170, 255},
	"PALE_GREEN": {152, 251, 152, 255},
	"PALE_TURQUOISE": {175, 238, 238, 255},
	"PALE_VIOLET_RED": {219, 112, 147, 255},
	"PAPAYA_WHIP": {255, 239, 213, 255},
	"PEACH_PUFF": {255, 218, 185, 255},
	"PERU": {205, 133, 63, 255},
	"PINK": {255, 192, 203, 255},
	"PLUM": {221, 160, 221, 255},
	"POWDER_BLUE": {176, 224, 230, 255},
	"PURPLE": {128, 0, 128, 255},
	"REBECCA_PURPLE": {102, 51, 153, 255},
	"RED": {255, 0, 0, 255},
	"ROSY_BROWN": {188, 143, 143, 255},
	"ROYAL_BLUE": {65, 105, 225, 255},
	"SADDLE_BROWN": {139, 69, 19, 255},
	"SALMON": {250, 128, 114, 255},
	"SANDY_BROWN": {244, 164, 96, 255},
	"SEA_GREEN": {46, 139, 87, 255},
	"SEASHELL": {255, 245, 238, 255},
	"SIENNA": {160, 82, 45, 255},
	"SILVER": {192, 192, 192, 255},
	"SKY_BLUE": {135, 206, 235, 255},
	"SLATE_BLUE": {106, 90, 205, 255},
	"SLATE_GRAY": {112, 128, 144, 255},
	"SLATE_GREY": {112, 128, 144, 255},
	"SNOW": {255, 250, 250, 255},
	"SPRING_GREEN": {0, 255, 127, 255},
	"STEEL_BLUE": {70, 130, 180, 255},
	"TAN": {210, 180, 140, 255},
	"TEAL": {0, 128, 128, 255},
	"THISTLE": {216, 191, 216, 255},
	"TOMATO": {255, 99, 71, 255},
	"TURQUOISE": {64, 224, 208, 255},
	"VIOLET": {238, 130, 238, 255},
	"WHEAT": {245, 222, 179, 255},
	"WHITE": {255, 255, 255, 255},
	"WHITE_SMOKE": {245, 245, 245, 255},
	"YELLOW_GREEN": {154, 205, 50, 255},
	"YELLOW": {255, 255, 0, 255},
}

// normalizeName lowercases, strips underscores and surrounding
// whitespace, matching the original grammar's lookup rule.
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

var normalizedPalette map[string]paletteEntry

func init() {
	normalizedPalette = make(map[string]paletteEntry, len(palette)+1)
	for name, e := range palette {
		normalizedPalette[normalizeName(name)] = e
	}
	normalizedPalette[normalizeName("TRANSPARENT")] = paletteEntry{0, 0, 0, 0}
}

// FromName looks up a named CSS colour, case-insensitively and ignoring
// underscores and surrounding whitespace. "transparent" resolves to the
// fully-transparent-but-valid sentinel.
func FromName(name string) (Color, error) {
	key := normalizeName(name)
	if key == normalizeName("TRANSPARENT") {
		return Transparent, nil
	}
	if e, ok := normalizedPalette[key]; ok {
		return Color{Red: e.r, Green: e.g, Blue: e.b, Alpha: e.a, Valid: true}, nil
	}
	return Color{}, &ParseError{Input: name, Cause: "not a recognised colour name"}
}

// Name returns the canonical uppercase name for a colour, or
// "INVALID"/"TRANSPARENT" for those sentinels, or ("", false) if the
// colour (compared on RGB with alpha forced to 255) matches no palette
// entry.
func (c Color) Name() (string, bool) {
	if !c.Valid {
		return "INVALID", true
	}
	if c.Alpha == 0 {
		return "TRANSPARENT", true
	}
	opaque := paletteEntry{c.Red, c.Green, c.Blue, 255}
	for name, e := range palette {
		if e == opaque {
			return name, true
		}
	}
	return "", false
}
