package ports

// WindowSystem registers window classes and creates hidden windows. Both calls
// must be made on the thread that will later run the window's loop.
type WindowSystem interface {
	RegisterClass(name string) error
	CreateWindow(className string, title string) (Window, error)
}

type Window interface {
	// Loop retrieves, translates and dispatches messages until Quit is observed.
	Loop() error
	// Quit asks the loop to return. Safe to call from any goroutine, before or
	// during Loop.
	Quit() error
	Destroy() error
}
