package domain

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ExecuteBufferCapacity matches the launcher's MAX_PATH sized execute buffer.
const ExecuteBufferCapacity = 260

const (
	ExecuteMethodName = "execute"
	// ExecuteSignature is the runtime descriptor of execute(String): void.
	ExecuteSignature = "(Ljava/lang/String;)V"
)

type ServerIdentity struct {
	ServiceName string
	TopicName   string
}

// Matches is an exact, case-sensitive comparison of both names.
func (id ServerIdentity) Matches(service, topic string) bool {
	return id.ServiceName == service && id.TopicName == topic
}

type CallbackTarget struct {
	QualifiedClassName string
	MethodName         string
	Signature          string
}

func NewCallbackTarget(className string) CallbackTarget {
	return CallbackTarget{
		QualifiedClassName: className,
		MethodName:         ExecuteMethodName,
		Signature:          ExecuteSignature,
	}
}

type MessageKind int

const (
	MessageOther MessageKind = iota
	MessageConnect
	MessageExecute
)

func (k MessageKind) String() string {
	switch k {
	case MessageConnect:
		return "connect"
	case MessageExecute:
		return "execute"
	default:
		return "other"
	}
}

// Payload copies inbound transaction data into dst and returns the byte count.
// Implementations never write past len(dst).
type Payload interface {
	CopyTo(dst []byte) int
}

// BytesPayload is a Payload backed by a byte slice.
type BytesPayload []byte

func (p BytesPayload) CopyTo(dst []byte) int {
	return copy(dst, p)
}

type Message struct {
	Kind    MessageKind
	Service string
	Topic   string
	Data    Payload
}

type Response int

const (
	ResponseNone Response = iota
	ResponseAccept
	ResponseAck
)

func (r Response) String() string {
	switch r {
	case ResponseAccept:
		return "accept"
	case ResponseAck:
		return "ack"
	default:
		return "none"
	}
}

// ExecuteBuffer holds the most recent execute payload, truncated at capacity.
type ExecuteBuffer struct {
	data [ExecuteBufferCapacity]byte
	n    int
}

// Fill overwrites the buffer with the payload. A nil payload empties it.
func (b *ExecuteBuffer) Fill(p Payload) int {
	b.data = [ExecuteBufferCapacity]byte{}
	b.n = 0
	if p == nil {
		return 0
	}
	n := p.CopyTo(b.data[:])
	if n > len(b.data) {
		n = len(b.data)
	}
	if n < 0 {
		n = 0
	}
	b.n = n
	return n
}

func (b *ExecuteBuffer) Len() int {
	return b.n
}

// Text decodes the buffer up to the first NUL. Bytes that are not valid UTF-8
// are treated as Windows-1252, the ANSI code page DDEML converts into.
// An empty buffer yields nil.
func (b *ExecuteBuffer) Text() *string {
	raw := b.data[:b.n]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	} else if b.n == len(b.data) {
		raw = trimPartialRune(raw)
	}
	if len(raw) == 0 {
		return nil
	}

	var text string
	if utf8.Valid(raw) {
		text = string(raw)
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			text = string(raw)
		} else {
			text = string(decoded)
		}
	}

	return &text
}

// trimPartialRune drops a UTF-8 sequence cut short at the end of raw, as long
// as everything before it is valid UTF-8.
func trimPartialRune(raw []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(raw); i++ {
		start := len(raw) - i
		if !utf8.RuneStart(raw[start]) {
			continue
		}
		if utf8.FullRune(raw[start:]) || !utf8.Valid(raw[:start]) {
			return raw
		}
		return raw[:start]
	}
	return raw
}
