// Example opens a window with a paginated data grid.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag header edges to resize columns, drag a header to swap it with
// another, drag gutter row edges to resize rows and the gutter edge to
// widen the row numbers. Escape cancels a drag.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
	"github.com/go-theft-auto/datagrid/internal/demo"
)

const (
	windowWidth  = 1024
	windowHeight = 640
	windowTitle  = "datagrid example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "log grid gestures")
	flag.Parse()
	datagrid.SetVerbose(*verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	defer input.Destroy()
	datagrid.SetSelectionHook(input.SelectionHook())
	defer datagrid.SetSelectionHook(nil)

	var grid *datagrid.Grid
	grid = datagrid.New(demo.Headers(), demo.Page(1, datagrid.DefaultPageSize),
		datagrid.WithPageOptions(datagrid.PageOptions{Total: demo.TotalRecords}),
		datagrid.WithEmptyRender(func(c datagrid.Canvas, r datagrid.Rect) {
			c.AddText(r.X+12, r.Y+12, "no records", datagrid.ColorGray)
		}),
		datagrid.OnPageChange(func(page, size int) {
			grid.SetRows(demo.Page(page, size))
		}),
		datagrid.OnPageSizeChange(func(page, size int) {
			grid.SetRows(demo.Page(page, size))
		}),
		datagrid.OnColumnOrderChange(func(from, to int) {
			slog.Info("columns swapped", "from", from, "to", to)
		}),
	)
	grid.Resize(datagrid.Rect{W: float32(fbw), H: float32(fbh)})

	input.OnResize(func(w, h int) {
		renderer.Resize(w, h)
		grid.Resize(datagrid.Rect{W: float32(w), H: float32(h)})
	})
	input.OnFocusLost(grid.CancelGesture)

	for !window.ShouldClose() {
		input.NewFrame()
		glfw.PollEvents()
		grid.HandleInput(input.Update())

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.09, 0.09, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := grid.Render(renderer); err != nil {
			return err
		}

		window.SwapBuffers()
	}

	return nil
}
