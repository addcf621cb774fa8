package main

import (
	"ansirender/align"
	"ansirender/color"
	"ansirender/geometry"
	"ansirender/node"
	"ansirender/style"
)

// moonFrames is a small animation, modeled on the waxing-moon demo in
// the original renderer's test scene.
var moonFrames = [][]string{
	{"  _  ", " / \\ ", "| ● |", " \\_/ "},
	{"  _  ", " /●\\ ", "|   |", " \\_/ "},
	{"  _  ", " / \\ ", "|  ●|", " \\_/ "},
	{"  _  ", " / \\ ", "|●  |", " \\_/ "},
}

func runeGrid(lines []string) [][]rune {
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	return grid
}

// buildScene constructs the demo scene graph: a full-viewport panel
// containing a tiled wave pattern, a title, a moon animation, and a
// boat, grounded on original_source/src/tests.rs's renderer_test. The
// root's border is not drawn, since borders are drawn by a parent
// around its children.
func buildScene() *node.Node {
	root := node.New()
	root.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.VWDim(100), geometry.VHDim(100))
	root.SetDefaultColors(color.FromRGB(0, 0, 40), color.FromRGB(255, 255, 255))
	root.Style().SetBorder(style.DoubleBorder).SetInternalAlignment(align.XCenter, align.YTop)

	waves := node.New()
	waves.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(3), geometry.PercentDim(100), geometry.PercentDim(100))
	waves.SetPattern(runeGrid([]string{"~ ~ ~ ", " ~ ~ ~"}))
	waves.SetDefaultColors(color.FromRGB(0, 0, 60), color.FromRGB(60, 120, 200))
	root.AddChild(waves)

	title := node.New()
	title.SetGeometry(geometry.AutoDim, geometry.PixelDim(0), geometry.AutoDim, geometry.AutoDim)
	title.SetTextString("ansirender demo")
	gold, err := color.FromName("GOLD")
	if err != nil {
		gold = color.FromRGB(255, 215, 0)
	}
	title.SetDefaultColors(color.Transparent, gold)
	titleArea := geometry.NewColorArea(color.FromRGBA(0, 0, 0, 0.4), geometry.Background)
	title.AddColor(titleArea)
	root.AddChild(title)

	moon := node.New()
	moon.SetGeometry(geometry.PWDim(80), geometry.PixelDim(4), geometry.PixelDim(5), geometry.PixelDim(4))
	frames := make([][][]rune, len(moonFrames))
	for i, f := range moonFrames {
		frames[i] = runeGrid(f)
	}
	moon.SetAnimation(frames)
	moon.SetDefaultColors(color.Transparent, color.FromRGB(230, 230, 200))
	root.AddChild(moon)

	boat := node.New()
	boat.SetGeometry(geometry.PercentDim(10), geometry.PixelDim(8), geometry.AutoDim, geometry.AutoDim)
	boat.SetTextString(" __\n\\__\\/")
	boat.SetDefaultColors(color.Transparent, color.FromRGB(200, 160, 90))
	boat.SetDefaultCharacter(' ')
	root.AddChild(boat)

	return root
}
