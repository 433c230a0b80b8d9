package ports

import "github.com/bnema/ddehost/internal/domain"

// Instance is the protocol subsystem's instance identifier.
type Instance uintptr

// StringHandle is a protocol string handle owned by an Instance.
type StringHandle uintptr

// MessageHandler receives every inbound protocol message on the thread that
// initialized the subsystem.
type MessageHandler interface {
	OnProtocolMessage(msg domain.Message) domain.Response
}

// DDEML is the binding to the OS protocol subsystem. All calls must come from
// the thread that owns the message loop.
type DDEML interface {
	Initialize(handler MessageHandler) (Instance, error)
	CreateStringHandle(inst Instance, value string) (StringHandle, error)
	FreeStringHandle(inst Instance, handle StringHandle) error
	NameService(inst Instance, service StringHandle, register bool) error
	Uninitialize(inst Instance) error
}
