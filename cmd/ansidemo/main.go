// Command ansidemo is a runnable demonstration of the renderer: a
// full-screen scene with a moon animation, a tiled wave pattern, and a
// title, hosted inside a raw-mode terminal session with bubbletea
// handling input. The moon shows its current frame; nothing in the demo
// advances the frame index. The root's border is set but not drawn,
// since borders are drawn by a parent around its children.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"ansirender/config"
	"ansirender/console"
	"ansirender/internal/applog"
	"ansirender/node"
	"ansirender/renderer"
	"ansirender/term"
)

const (
	appName    = "ansirender demo"
	appVersion = "1.0.0"
)

var (
	showVersionAndExit = flag.Bool("version", false, "Show version information and exit")
	debugFlag          = flag.Bool("debug", false, "Enable debug logging")
	usePTY             = flag.Bool("pty", false, "Replace the title panel with a live pty-backed shell session")
	paddingFlag        = flag.Int("padding", 0, "Renderer padding override (0 uses config default)")
	fpsFlag            = flag.Int("fps", 0, "Target frame rate override (0 uses config default)")
)

func main() {
	flag.Parse()

	log := applog.GetLogger()
	if *debugFlag {
		log.SetLevel(applog.DebugLevel)
	} else {
		log.SetLevel(applog.InfoLevel)
	}

	if *showVersionAndExit {
		fmt.Printf("%s v%s\n", appName, appVersion)
		os.Exit(0)
	}

	log.Info("%s v%s starting...", appName, appVersion)

	cfg := config.Load()
	applyCommandLineOverrides(&cfg)

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	log.Info("detected colour profile: %v", profile)
	if profile < colorprofile.TrueColor {
		log.Warn("terminal does not advertise truecolor support; colours may be downsampled by the terminal itself")
	}

	banner := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Render(appName + " v" + appVersion)
	fmt.Println(banner)

	restore, err := term.RawMode(os.Stdout.Fd())
	if err != nil {
		log.Fatal("failed to enter raw mode: %v", err)
	}
	defer restore()

	root := buildScene()
	bg, fg, err := cfg.Render.Colors()
	if err == nil {
		root.SetDefaultColors(bg, fg)
	}
	root.Style().SetBorder(cfg.Render.BorderStyle())

	stopPTY := make(chan struct{})
	if *usePTY {
		if len(root.Children()) > 1 {
			go attachPTY(root.Children()[1], stopPTY)
		}
	}

	rend := renderer.New(os.Stdout, term.Stdout{})
	rend.SetRoot(root)
	if cfg.Render.Padding > 0 {
		rend.SetPadding(cfg.Render.Padding)
	}
	if *paddingFlag > 0 {
		rend.SetPadding(*paddingFlag)
	}

	fps := cfg.Render.TargetFPS
	if *fpsFlag > 0 {
		fps = *fpsFlag
	}
	if fps <= 0 {
		fps = 60
	}
	frameTime := time.Second / time.Duration(fps)

	os.Stdout.Write(console.HideCursor())
	defer os.Stdout.Write(console.ShowCursor())

	rend.Run(frameTime)
	defer func() {
		rend.Stop()
		close(stopPTY)
		stats := rend.Stats()
		log.Info("frame stats: min=%v mean=%v max=%v", stats.Min(), stats.Mean(), stats.Max())
	}()

	p := tea.NewProgram(newInputModel(root), tea.WithoutSignalHandler())
	if _, err := p.Run(); err != nil {
		log.Fatal("input loop error: %v", err)
	}
}

func applyCommandLineOverrides(cfg *config.Config) {
	if *paddingFlag > 0 {
		cfg.Render.Padding = *paddingFlag
	}
	if *fpsFlag > 0 {
		cfg.Render.TargetFPS = *fpsFlag
	}
}

// inputModel is a minimal bubbletea model whose only job is reading
// keypresses; it never draws anything itself, since the scene graph is
// rendered directly to stdout by the background renderer.Renderer.
type inputModel struct {
	root *node.Node
}

func newInputModel(root *node.Node) inputModel { return inputModel{root: root} }

func (m inputModel) Init() tea.Cmd { return nil }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		_ = clipboard.WriteAll(fmt.Sprintf("%dx%d", m.root.CalculatedWidth(), m.root.CalculatedHeight()))
		return m, nil
	}
	return m, nil
}

func (m inputModel) View() string { return "" }
