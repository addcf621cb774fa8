package node

import "strings"

// frameSeparator is the literal marker line that separates animation
// frames in the text form described by spec.md §6.
const frameSeparator = "<FrameSeparator>"

// ParseAnimation splits s into animation frames: frames are separated
// by a line containing exactly frameSeparator; within a frame, "\n" (or
// "\r\n", normalised) separates lines.
func ParseAnimation(s string) [][][]rune {
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	frameTexts := strings.Split(normalized, "\n"+frameSeparator+"\n")
	frames := make([][][]rune, 0, len(frameTexts))
	for _, ft := range frameTexts {
		frames = append(frames, splitLines(ft))
	}
	return frames
}
