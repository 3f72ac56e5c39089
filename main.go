// Command twistgrid renders a non-Euclidean tile grid from a
// first-person viewpoint. Walk around with WASD; wherever the grid's
// connectivity disagrees with flat-plane geometry the view tears along a
// marked sight line.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"twistgrid/pkg/engine/input"
	"twistgrid/pkg/engine/terminal"
	"twistgrid/pkg/game/camera"
	"twistgrid/pkg/game/generator"
	"twistgrid/pkg/game/renderer"
	frontend "twistgrid/pkg/game/renderer/ebiten"
	"twistgrid/pkg/game/renderer/ggsurface"
)

var (
	colorHeading = color.Style{color.FgCyan, color.OpBold}
	colorError   = color.Style{color.FgRed, color.OpBold}
	colorSubtle  = color.Style{color.FgGray}
)

func main() {
	gridName := flag.String("grid", "cone", fmt.Sprintf("sample grid to explore (%s)", strings.Join(generator.Names(), ", ")))
	width := flag.Int("width", 960, "window width in pixels")
	height := flag.Int("height", 720, "window height in pixels")
	fontPath := flag.String("font", "", "TTF font for tile labels (default: first system font found)")
	fontSize := flag.Float64("font-size", ggsurface.DefaultFontSize, "label size in points")
	screenshot := flag.String("screenshot", "", "render one frame to this PNG and exit (no window)")
	flag.Parse()

	gen, ok := generator.ByName(*gridName)
	if !ok {
		colorError.Printf("%s\n", gotext.Get("Unknown grid %q; valid grids: %s", *gridName, strings.Join(generator.Names(), ", ")))
		os.Exit(2)
	}

	start := gen.Generate()
	rep := generator.Validate(start)
	colorSubtle.Printf("%s\n", gotext.Get("%s grid: %d tiles, %d one-way edges", gen.Name(), rep.Tiles, rep.AsymmetricEdges))

	surface := ggsurface.New(*width, *height)
	defer surface.Close()
	loadFont(surface, *fontPath, *fontSize)

	cam := camera.New(start)

	if *screenshot != "" {
		renderer.Render(surface, *width, *height, cam.Root, cam.Offset, -cam.Rotation)
		if err := surface.SavePNG(*screenshot); err != nil {
			colorError.Printf("%s\n", gotext.Get("Could not write %s: %v", *screenshot, err))
			os.Exit(1)
		}
		colorSubtle.Printf("%s\n", gotext.Get("Wrote %s", *screenshot))
		return
	}

	printControls()

	game := frontend.NewGame(cam, surface, *width, *height)
	if err := frontend.Run("Twistgrid", game); err != nil {
		colorError.Printf("%s\n", gotext.Get("2D drawing surface unavailable"))
		colorSubtle.Printf("%s\n", gotext.Get("The window could not be opened: %v", err))
		colorSubtle.Printf("%s\n", gotext.Get("A single frame can still be rendered with -screenshot out.png"))
		os.Exit(1)
	}
}

func loadFont(surface *ggsurface.Surface, path string, points float64) {
	if path == "" {
		path = ggsurface.FindSystemFont()
	}
	if path == "" {
		colorSubtle.Printf("%s\n", gotext.Get("No font found; tile labels disabled"))
		return
	}
	if err := surface.LoadFont(path, points); err != nil {
		colorSubtle.Printf("%s\n", gotext.Get("Could not load font %s: %v; tile labels disabled", path, err))
	}
}

func printControls() {
	colorHeading.Printf("%s\n", gotext.Get("Controls"))

	byAction := input.BindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	width := terminal.GetWidth()
	for _, a := range actions {
		line := fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(byAction[a], ", "))
		for i, wrapped := range terminal.Wrap(line, width-4) {
			if i > 0 {
				wrapped = "    " + wrapped
			}
			fmt.Printf("  %s\n", wrapped)
		}
	}
	fmt.Println()
}
