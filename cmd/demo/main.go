// Command demo is a small showcase application: a banner rendered with
// github.com/mbndr/figlet4go, an input line, a selection list, and a debug
// log panel, wired together with the tui.h builder and run against the
// tcell backend.
package main

import (
	"fmt"
	"os"

	"github.com/mbndr/figlet4go"

	tuih "github.com/hfridholm/tui.h"
	"github.com/hfridholm/tui.h/ext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	backend, err := tuih.NewTcellBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	root := tuih.NewRoot(tuih.RootConfig{
		Color: tuih.Pair{Fg: tuih.WHITE, Bg: tuih.BLACK},
	}, backend, 0, 0)

	builder := tuih.NewBuilder(root)

	banner := renderBanner("tui.h")

	page := builder.Parent(tuih.ParentConfig{
		WidgetConfig: tuih.WidgetConfig{Name: "main", HGrow: true, WGrow: true},
		IsVertical:   true,
		HasPadding:   true,
		HasGap:       true,
		Border:       tuih.Border{Active: true, Depth: tuih.DepthLow},
	})

	builder.Text(page, tuih.TextConfig{
		WidgetConfig: tuih.WidgetConfig{Name: "banner"},
		String:       banner,
		Align:        tuih.AlignCenter,
	})

	input := ext.NewInput(page, "search-input")

	items := []string{"alpha", "beta", "gamma", "delta"}
	list := ext.NewList(page, "search-results", items)

	search := ext.NewSearch(root)
	inputKey := input.Widget.Hooks.Key
	input.Widget.Hooks.Key = func(w *tuih.Widget, key tuih.Key) bool {
		if key == tuih.KeyEnter {
			list.SetItems(search.Match("main/*"))
			return true
		}
		return inputKey(w, key)
	}

	builder.DebugLog(page, "log")

	app := tuih.NewApp(root, backend)
	return app.Run()
}

func renderBanner(text string) string {
	render := figlet4go.NewAsciiRender()
	options := figlet4go.NewRenderOptions()
	options.FontColor = []figlet4go.Color{figlet4go.ColorGreen}

	out, err := render.RenderOpts(text, options)
	if err != nil {
		return text
	}
	return out
}
