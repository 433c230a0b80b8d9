package ddeml

import (
	"testing"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hszTopic   uintptr = 0x10
	hszService uintptr = 0x20
	hData      uintptr = 0x30
)

type fakeResolver struct {
	strings map[uintptr]string
	data    map[uintptr]string
}

func newFakeResolver() fakeResolver {
	return fakeResolver{
		strings: map[uintptr]string{hszTopic: "system", hszService: "Viewer"},
		data:    map[uintptr]string{hData: `[open("a.foo")]`},
	}
}

func (r fakeResolver) String(hsz uintptr) string {
	return r.strings[hsz]
}

func (r fakeResolver) Data(hdata uintptr) domain.Payload {
	return domain.BytesPayload(r.data[hdata])
}

type recordingHandler struct {
	resp domain.Response
	got  []domain.Message
}

func (h *recordingHandler) OnProtocolMessage(msg domain.Message) domain.Response {
	h.got = append(h.got, msg)
	return h.resp
}

func TestDispatchConnectReadsTopicThenService(t *testing.T) {
	t.Parallel()

	handler := &recordingHandler{resp: domain.ResponseAccept}
	ret := dispatch(handler, transaction{uType: xtypConnect, hsz1: hszTopic, hsz2: hszService, hdata: hData}, newFakeResolver())

	assert.Equal(t, uintptr(1), ret)
	require.Len(t, handler.got, 1)
	msg := handler.got[0]
	assert.Equal(t, domain.MessageConnect, msg.Kind)
	assert.Equal(t, "system", msg.Topic)
	assert.Equal(t, "Viewer", msg.Service)
	assert.Nil(t, msg.Data)
}

func TestDispatchRefusedConnectReturnsZero(t *testing.T) {
	t.Parallel()

	handler := &recordingHandler{resp: domain.ResponseNone}
	ret := dispatch(handler, transaction{uType: xtypConnect, hsz1: hszTopic, hsz2: hszService}, newFakeResolver())

	assert.Equal(t, uintptr(0), ret)
}

func TestDispatchExecuteAcksWithFAck(t *testing.T) {
	t.Parallel()

	handler := &recordingHandler{resp: domain.ResponseAck}
	ret := dispatch(handler, transaction{uType: xtypExecute, hsz1: hszTopic, hsz2: hszService, hdata: hData}, newFakeResolver())

	assert.Equal(t, uintptr(ddeFAck), ret)
	require.Len(t, handler.got, 1)
	msg := handler.got[0]
	assert.Equal(t, domain.MessageExecute, msg.Kind)
	assert.Equal(t, "system", msg.Topic)
	assert.Equal(t, "Viewer", msg.Service)

	var buf domain.ExecuteBuffer
	buf.Fill(msg.Data)
	text := buf.Text()
	require.NotNil(t, text)
	assert.Equal(t, `[open("a.foo")]`, *text)
}

func TestDispatchOtherTransactionsReturnZero(t *testing.T) {
	t.Parallel()

	const xtypRequest = 0x20B0
	handler := &recordingHandler{resp: domain.ResponseAccept}
	ret := dispatch(handler, transaction{uType: xtypRequest, hsz1: hszTopic, hsz2: hszService}, newFakeResolver())

	assert.Equal(t, uintptr(0), ret)
	require.Len(t, handler.got, 1)
	assert.Equal(t, domain.MessageOther, handler.got[0].Kind)
	assert.Empty(t, handler.got[0].Service)
}

func TestCallbackResultIgnoresMismatchedResponses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uintptr(0), callbackResult(domain.MessageConnect, domain.ResponseAck))
	assert.Equal(t, uintptr(0), callbackResult(domain.MessageExecute, domain.ResponseAccept))
	assert.Equal(t, uintptr(0), callbackResult(domain.MessageExecute, domain.ResponseNone))
}
