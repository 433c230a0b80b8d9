//go:build windows

// Package ddeml binds the user32 DDE Management Library. The library accepts
// one callback per process, so a single Binding may be initialized at a time.
package ddeml

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

const (
	dmlErrNoError = 0
	cpWinANSI     = 1004

	dnsRegister   = 0x0001
	dnsUnregister = 0x0002

	queryBufferLen = 256
)

var (
	modUser32 = windows.NewLazySystemDLL("user32.dll")

	procDdeInitializeA         = modUser32.NewProc("DdeInitializeA")
	procDdeUninitialize        = modUser32.NewProc("DdeUninitialize")
	procDdeCreateStringHandleA = modUser32.NewProc("DdeCreateStringHandleA")
	procDdeFreeStringHandle    = modUser32.NewProc("DdeFreeStringHandle")
	procDdeNameService         = modUser32.NewProc("DdeNameService")
	procDdeQueryStringA        = modUser32.NewProc("DdeQueryStringA")
	procDdeGetData             = modUser32.NewProc("DdeGetData")
)

var ErrAlreadyInitialized = errors.New("ddeml already initialized in this process")

var (
	callbackOnce sync.Once
	callbackPtr  uintptr

	activeMu      sync.Mutex
	activeHandler ports.MessageHandler
	activeInst    uint32
	activeLogger  zerolog.Logger
)

type Binding struct {
	logger zerolog.Logger
}

var _ ports.DDEML = (*Binding)(nil)

func New(logger zerolog.Logger) (*Binding, error) {
	if err := modUser32.Load(); err != nil {
		return nil, fmt.Errorf("load user32: %w", err)
	}
	return &Binding{logger: logger}, nil
}

func (b *Binding) Initialize(handler ports.MessageHandler) (ports.Instance, error) {
	callbackOnce.Do(func() {
		callbackPtr = windows.NewCallback(ddeCallback)
	})

	activeMu.Lock()
	if activeHandler != nil {
		activeMu.Unlock()
		return 0, ErrAlreadyInitialized
	}
	activeHandler = handler
	activeLogger = b.logger
	activeMu.Unlock()

	var inst uint32
	r, _, _ := procDdeInitializeA.Call(uintptr(unsafe.Pointer(&inst)), callbackPtr, 0, 0)
	if r != dmlErrNoError {
		activeMu.Lock()
		activeHandler = nil
		activeMu.Unlock()
		return 0, &domain.InitError{Code: uint32(r)}
	}

	activeMu.Lock()
	activeInst = inst
	activeMu.Unlock()

	return ports.Instance(inst), nil
}

func (b *Binding) CreateStringHandle(inst ports.Instance, value string) (ports.StringHandle, error) {
	p, err := windows.BytePtrFromString(value)
	if err != nil {
		return 0, fmt.Errorf("encode %q: %w", value, err)
	}
	r, _, callErr := procDdeCreateStringHandleA.Call(uintptr(inst), uintptr(unsafe.Pointer(p)), cpWinANSI)
	if r == 0 {
		return 0, fmt.Errorf("DdeCreateStringHandle %q: %w", value, callErr)
	}
	return ports.StringHandle(r), nil
}

func (b *Binding) FreeStringHandle(inst ports.Instance, handle ports.StringHandle) error {
	r, _, callErr := procDdeFreeStringHandle.Call(uintptr(inst), uintptr(handle))
	if r == 0 {
		return fmt.Errorf("DdeFreeStringHandle: %w", callErr)
	}
	return nil
}

func (b *Binding) NameService(inst ports.Instance, service ports.StringHandle, register bool) error {
	cmd := uintptr(dnsUnregister)
	if register {
		cmd = dnsRegister
	}
	r, _, callErr := procDdeNameService.Call(uintptr(inst), uintptr(service), 0, cmd)
	if r == 0 {
		return fmt.Errorf("DdeNameService: %w", callErr)
	}
	return nil
}

func (b *Binding) Uninitialize(inst ports.Instance) error {
	r, _, callErr := procDdeUninitialize.Call(uintptr(inst))

	activeMu.Lock()
	if activeInst == uint32(inst) {
		activeHandler = nil
		activeInst = 0
	}
	activeMu.Unlock()

	if r == 0 {
		return fmt.Errorf("DdeUninitialize: %w", callErr)
	}
	return nil
}

// ddeCallback runs on the thread that called DdeInitialize, from inside its
// message loop.
func ddeCallback(uType, uFmt, hconv, hsz1, hsz2, hdata, dwData1, dwData2 uintptr) (ret uintptr) {
	activeMu.Lock()
	handler := activeHandler
	inst := activeInst
	logger := activeLogger
	activeMu.Unlock()

	if handler == nil {
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("dde callback panicked")
			ret = 0
		}
	}()

	tx := transaction{uType: uint32(uType), hsz1: hsz1, hsz2: hsz2, hdata: hdata}
	return dispatch(handler, tx, instanceResolver(inst))
}

type instanceResolver uint32

func (r instanceResolver) String(hsz uintptr) string {
	return queryString(uint32(r), hsz)
}

func (r instanceResolver) Data(hdata uintptr) domain.Payload {
	return dataPayload(hdata)
}

func queryString(inst uint32, hsz uintptr) string {
	if hsz == 0 {
		return ""
	}
	buf := make([]byte, queryBufferLen)
	n, _, _ := procDdeQueryStringA.Call(uintptr(inst), hsz, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), cpWinANSI)
	if n == 0 {
		return ""
	}
	if int(n) > len(buf)-1 {
		n = uintptr(len(buf) - 1)
	}
	return string(buf[:n])
}

// dataPayload reads transaction data through DdeGetData, which never copies
// more than the destination length.
type dataPayload uintptr

func (h dataPayload) CopyTo(dst []byte) int {
	if h == 0 || len(dst) == 0 {
		return 0
	}
	n, _, _ := procDdeGetData.Call(uintptr(h), uintptr(unsafe.Pointer(&dst[0])), uintptr(len(dst)), 0)
	return int(n)
}
