package tuih

// App binds a Root to a Backend and drives the per-frame control flow of
// spec.md §2/§5: update hooks, size pass, layout pass, render pass, paint,
// cursor placement, then a blocking read of the next key. The whole loop
// runs on one goroutine with no suspension points other than the blocking
// key read itself, per spec.md §5.
type App struct {
	Root    *Root
	Backend Backend
}

// NewApp binds a root to a backend, adopting the backend's current
// dimensions as the root's screen size.
func NewApp(root *Root, backend Backend) *App {
	w, h := backend.Size()
	root.Width, root.Height = w, h
	return &App{Root: root, Backend: backend}
}

// Frame runs one full update-size-layout-render-paint cycle without
// blocking for input, for callers (tests, custom loops) that want to drive
// frames explicitly.
func (a *App) Frame() {
	runUpdateHooks(a.Root)

	for _, w := range a.Root.Widgets {
		w.rect = Rect{W: a.Root.Width, H: a.Root.Height, Valid: true}
		computeSize(w, a.Root.Width, a.Root.Height)
		computeLayout(w)
	}
	if a.Root.Active != nil {
		for _, w := range a.Root.Active.Widgets {
			w.rect = Rect{W: a.Root.Width, H: a.Root.Height, Valid: true}
			computeSize(w, a.Root.Width, a.Root.Height)
			computeLayout(w)
		}
	}

	a.paint()
}

func runUpdateHooks(root *Root) {
	var walk func(w *Widget)
	walk = func(w *Widget) {
		if w.Hooks.Update != nil {
			w.Hooks.Update(w)
		}
		if p, ok := w.AsParent(); ok {
			for _, c := range p.Children {
				walk(c)
			}
		}
	}
	for _, w := range root.Widgets {
		walk(w)
	}
	if root.Active != nil {
		for _, w := range root.Active.Widgets {
			walk(w)
		}
	}
}

func (a *App) paint() {
	paintFill(a.Backend, a.Root.Cache, Rect{W: a.Root.Width, H: a.Root.Height}, a.Root.Color)

	root := a.Root
	for i := len(root.Widgets) - 1; i >= 0; i-- {
		render(a.Backend, root.Cache, root.Widgets[i], root.Color)
	}
	if root.Active != nil {
		menuColor := root.Active.Color.inherit(root.Color)
		for i := len(root.Active.Widgets) - 1; i >= 0; i-- {
			render(a.Backend, root.Cache, root.Active.Widgets[i], menuColor)
		}
	}

	root.Cursor = Cursor{}
	for _, w := range root.Widgets {
		if w.cursorSeen && (w == root.Focused || isAncestorOf(w, root.Focused)) {
			root.Cursor = Cursor{X: w.cursorAt.X, Y: w.cursorAt.Y, Active: true}
		}
	}
	if root.Active != nil {
		for _, w := range root.Active.Widgets {
			if w.cursorSeen && (w == root.Focused || isAncestorOf(w, root.Focused)) {
				root.Cursor = Cursor{X: w.cursorAt.X, Y: w.cursorAt.Y, Active: true}
			}
		}
	}
	if root.Cursor.Active {
		a.Backend.MoveCursor(root.Cursor.X, root.Cursor.Y)
	}

	a.Backend.Flush()
}

func isAncestorOf(ancestor, w *Widget) bool {
	for cur := w; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Run drives the synchronous event loop until Root.Stop is called or
// ReadKey returns an error, per spec.md §5. Each iteration: render the
// current frame, block for the next key, dispatch it, and — if the key was
// a resize — re-measure the backend's dimensions before the next frame.
func (a *App) Run() error {
	a.Frame()

	for a.Root.Running {
		key, err := a.Backend.ReadKey()
		if err != nil {
			return err
		}

		if key == KeyResize {
			w, h := a.Backend.Size()
			a.Root.Width, a.Root.Height = w, h
		}

		dispatchKey(a.Root, key)

		if !a.Root.Running {
			break
		}

		a.Frame()
	}

	return nil
}
