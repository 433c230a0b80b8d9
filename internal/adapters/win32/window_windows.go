//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/bnema/ddehost/internal/ports"
	"golang.org/x/sys/windows"
)

const (
	csByteAlignClient = 0x1000
	csByteAlignWindow = 0x2000
	dlgWindowExtra    = 30
	idcWait           = 32514
	ltGrayBrush       = 1
	wmQuit            = 0x0012
)

var (
	modUser32   = windows.NewLazySystemDLL("user32.dll")
	modGdi32    = windows.NewLazySystemDLL("gdi32.dll")
	modKernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW   = modUser32.NewProc("RegisterClassExW")
	procCreateWindowExW    = modUser32.NewProc("CreateWindowExW")
	procDestroyWindow      = modUser32.NewProc("DestroyWindow")
	procDefWindowProcW     = modUser32.NewProc("DefWindowProcW")
	procGetMessageW        = modUser32.NewProc("GetMessageW")
	procTranslateMessage   = modUser32.NewProc("TranslateMessage")
	procDispatchMessageW   = modUser32.NewProc("DispatchMessageW")
	procPostThreadMessageW = modUser32.NewProc("PostThreadMessageW")
	procLoadCursorW        = modUser32.NewProc("LoadCursorW")
	procGetStockObject     = modGdi32.NewProc("GetStockObject")
	procGetModuleHandleW   = modKernel32.NewProc("GetModuleHandleW")
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type point struct {
	x, y int32
}

type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

// WindowSystem creates message-only style hidden windows whose procedure is
// DefWindowProcW.
type WindowSystem struct {
	instance windows.Handle
}

var _ ports.WindowSystem = (*WindowSystem)(nil)

func New() (*WindowSystem, error) {
	if err := modUser32.Load(); err != nil {
		return nil, fmt.Errorf("load user32: %w", err)
	}
	h, _, err := procGetModuleHandleW.Call(0)
	if h == 0 {
		return nil, fmt.Errorf("GetModuleHandle: %w", err)
	}
	return &WindowSystem{instance: windows.Handle(h)}, nil
}

func (s *WindowSystem) RegisterClass(name string) error {
	className, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("encode class name %q: %w", name, err)
	}

	cursor, _, _ := procLoadCursorW.Call(0, idcWait)
	brush, _, _ := procGetStockObject.Call(ltGrayBrush)

	wc := wndClassEx{
		style:      csByteAlignClient | csByteAlignWindow,
		wndProc:    procDefWindowProcW.Addr(),
		wndExtra:   dlgWindowExtra,
		instance:   s.instance,
		cursor:     windows.Handle(cursor),
		background: windows.Handle(brush),
		className:  className,
	}
	wc.size = uint32(unsafe.Sizeof(wc))

	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("RegisterClassEx %q: %w", name, callErr)
	}
	return nil
}

func (s *WindowSystem) CreateWindow(className string, title string) (ports.Window, error) {
	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, fmt.Errorf("encode class name %q: %w", className, err)
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, fmt.Errorf("encode window title %q: %w", title, err)
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(cls)),
		uintptr(unsafe.Pointer(caption)),
		0,
		0, 0, 0, 0,
		0, 0,
		uintptr(s.instance),
		0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("CreateWindowEx %q: %w", className, callErr)
	}

	return &window{hwnd: hwnd, threadID: windows.GetCurrentThreadId()}, nil
}

type window struct {
	hwnd     uintptr
	threadID uint32
}

func (w *window) Loop() error {
	var m msg
	for {
		r, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return fmt.Errorf("GetMessage: %w", callErr)
		case 0:
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (w *window) Quit() error {
	r, _, callErr := procPostThreadMessageW.Call(uintptr(w.threadID), wmQuit, 0, 0)
	if r == 0 {
		return fmt.Errorf("PostThreadMessage: %w", callErr)
	}
	return nil
}

// Destroy must run on the thread that created the window.
func (w *window) Destroy() error {
	if w.hwnd == 0 {
		return nil
	}
	r, _, callErr := procDestroyWindow.Call(w.hwnd)
	w.hwnd = 0
	if r == 0 {
		return fmt.Errorf("DestroyWindow: %w", callErr)
	}
	return nil
}
