// Terminal shows the paginated data grid in a terminal.
//
//	go run ./example/terminal/
//
// Mouse gestures work as in the window example. Press q to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/terminal"
	"github.com/go-theft-auto/datagrid/internal/demo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logPath := flag.String("log", "", "write grid debug logs to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		// The screen owns stderr while running.
		datagrid.SetLogOutput(f)
		datagrid.SetVerbose(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.EnableFocus()

	var grid *datagrid.Grid
	grid = datagrid.New(demo.Headers(), demo.Page(1, datagrid.DefaultPageSize), gridOptions(&grid)...)

	host := terminal.NewHost(screen, grid)
	datagrid.SetSelectionHook(host.SelectionHook())
	defer datagrid.SetSelectionHook(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// gridOptions returns cell-sized grid options. grid is read lazily by the page
// callbacks.
func gridOptions(grid **datagrid.Grid) []datagrid.Option {
	reload := func(page, size int) {
		(*grid).SetRows(demo.Page(page, size))
	}
	return []datagrid.Option{
		datagrid.WithStyle(datagrid.TerminalStyle()),
		datagrid.WithHeadHeight(1),
		datagrid.WithMinRowHeight(2),
		datagrid.WithMinColWidth(10),
		datagrid.WithWheelStep(2),
		datagrid.WithRowNumberConfig(datagrid.RowNumberConfig{Width: 5, MinWidth: 4}),
		datagrid.WithPageOptions(datagrid.PageOptions{Total: demo.TotalRecords, Height: 1}),
		datagrid.WithEmptyRender(func(c datagrid.Canvas, r datagrid.Rect) {
			c.AddText(r.X+1, r.Y, "no records", datagrid.ColorGray)
		}),
		datagrid.OnPageChange(reload),
		datagrid.OnPageSizeChange(reload),
	}
}
