package ddeml

import (
	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
)

const (
	xtypConnect = 0x1062
	xtypExecute = 0x4050

	ddeFAck = 0x8000
)

// transaction holds the callback arguments the server reads. For connect and
// execute, hsz1 names the topic and hsz2 the service.
type transaction struct {
	uType uint32
	hsz1  uintptr
	hsz2  uintptr
	hdata uintptr
}

// handleResolver reads the text behind a string handle and the bytes behind a
// data handle.
type handleResolver interface {
	String(hsz uintptr) string
	Data(hdata uintptr) domain.Payload
}

// dispatch hands tx to handler and returns the value the callback must report.
// XTYP_CONNECT carries no data handle, so connects have no payload.
func dispatch(handler ports.MessageHandler, tx transaction, r handleResolver) uintptr {
	msg := toMessage(tx, r)
	return callbackResult(msg.Kind, handler.OnProtocolMessage(msg))
}

func toMessage(tx transaction, r handleResolver) domain.Message {
	switch tx.uType {
	case xtypConnect:
		return domain.Message{
			Kind:    domain.MessageConnect,
			Topic:   r.String(tx.hsz1),
			Service: r.String(tx.hsz2),
		}
	case xtypExecute:
		return domain.Message{
			Kind:    domain.MessageExecute,
			Topic:   r.String(tx.hsz1),
			Service: r.String(tx.hsz2),
			Data:    r.Data(tx.hdata),
		}
	default:
		return domain.Message{Kind: domain.MessageOther}
	}
}

// callbackResult is TRUE for an accepted connect, DDE_FACK for an acknowledged
// execute and 0 otherwise.
func callbackResult(kind domain.MessageKind, resp domain.Response) uintptr {
	switch {
	case kind == domain.MessageConnect && resp == domain.ResponseAccept:
		return 1
	case kind == domain.MessageExecute && resp == domain.ResponseAck:
		return ddeFAck
	default:
		return 0
	}
}
