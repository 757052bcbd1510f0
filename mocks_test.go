package dect

import (
	"time"

	"github.com/cordless-go/dect/identity"
	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// mockEventOps records registered file descriptors and timers so
// tests can drive expiry and readability by hand.
type mockEventOps struct {
	fds       []*FD
	timers    map[*Timer]time.Duration
	lastTimer *Timer
}

func newMockEventOps() *mockEventOps {
	return &mockEventOps{timers: make(map[*Timer]time.Duration)}
}

func (m *mockEventOps) RegisterFD(fd *FD, events FDEvents) error {
	m.fds = append(m.fds, fd)
	return nil
}

func (m *mockEventOps) UnregisterFD(fd *FD) {
	for i, f := range m.fds {
		if f == fd {
			m.fds = append(m.fds[:i], m.fds[i+1:]...)
			return
		}
	}
}

func (m *mockEventOps) RegisterTimer(t *Timer, timeout time.Duration) error {
	m.timers[t] = timeout
	m.lastTimer = t
	return nil
}

func (m *mockEventOps) UnregisterTimer(t *Timer) {
	delete(m.timers, t)
}

// sentMsg is one message captured by the mock lower link.
type sentMsg struct {
	pd        Protocol
	tv        uint8
	initiator Role
	msgType   uint8
	wire      []byte
}

// mockLCE captures outbound messages and link releases.
type mockLCE struct {
	sent     []sentMsg
	released int
}

func (m *mockLCE) Send(link *DataLink, pd Protocol, tv uint8, initiator Role, mb *mbuf.Buffer) error {
	wire := make([]byte, mb.Len())
	copy(wire, mb.Data())
	m.sent = append(m.sent, sentMsg{
		pd:        pd,
		tv:        tv,
		initiator: initiator,
		msgType:   mb.Type,
		wire:      wire,
	})
	return nil
}

func (m *mockLCE) Release(link *DataLink, mode ReleaseMode) {
	m.released++
}

// mockCCOps records CC indications.
type mockCCOps struct {
	setupInd   int
	alertInd   int
	connectInd int
	releaseInd int
	releaseCfm int
	rejectInd  int
	infoInd    int

	lastCall    *Call
	hadDisplay  bool
	hadKeypad   bool
	uplaneData  [][]byte
	rejectParam *sfmt.Collection
}

func (m *mockCCOps) MNCCSetupInd(h *Handle, call *Call, param *sfmt.Collection) {
	m.setupInd++
	m.lastCall = call
}

func (m *mockCCOps) MNCCAlertInd(h *Handle, call *Call, param *sfmt.Collection) {
	m.alertInd++
}

func (m *mockCCOps) MNCCConnectInd(h *Handle, call *Call, param *sfmt.Collection) {
	m.connectInd++
}

func (m *mockCCOps) MNCCReleaseInd(h *Handle, call *Call, param *sfmt.Collection) {
	m.releaseInd++
}

func (m *mockCCOps) MNCCReleaseCfm(h *Handle, call *Call, param *sfmt.Collection) {
	m.releaseCfm++
}

func (m *mockCCOps) MNCCRejectInd(h *Handle, call *Call, param *sfmt.Collection) {
	m.rejectInd++
	m.rejectParam = param
}

func (m *mockCCOps) MNCCInfoInd(h *Handle, call *Call, param *sfmt.Collection) {
	m.infoInd++
	m.hadDisplay = param.Get(sfmt.IESingleDisplay) != nil
	m.hadKeypad = param.Get(sfmt.IESingleKeypad) != nil
}

func (m *mockCCOps) DLUDataInd(h *Handle, call *Call, mb *mbuf.Buffer) {
	data := make([]byte, mb.Len())
	copy(data, mb.Data())
	m.uplaneData = append(m.uplaneData, data)
}

// mockMMOps records MM indications and optionally answers them.
type mockMMOps struct {
	locateInd       int
	accessRightsInd int
	authInd         int
	keyAllocateInd  int

	identityAssignCfm    int
	identityAssignAccept bool

	onLocateInd func(h *Handle, mmta *MMTransaction, param *sfmt.Collection)
}

func (m *mockMMOps) MMLocateInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection) {
	m.locateInd++
	if m.onLocateInd != nil {
		m.onLocateInd(h, mmta, param)
	}
}

func (m *mockMMOps) MMAccessRightsInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection) {
	m.accessRightsInd++
}

func (m *mockMMOps) MMIdentityAssignCfm(h *Handle, mmta *MMTransaction, accept bool, param *sfmt.Collection) {
	m.identityAssignCfm++
	m.identityAssignAccept = accept
}

func (m *mockMMOps) MMAuthenticateInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection) {
	m.authInd++
}

func (m *mockMMOps) MMKeyAllocateInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection) {
	m.keyAllocateInd++
}

// testEnv bundles a handle with its mocks.
type testEnv struct {
	h     *Handle
	event *mockEventOps
	lce   *mockLCE
	cc    *mockCCOps
	mm    *mockMMOps
}

func newTestEnv(role Role) *testEnv {
	env := &testEnv{
		event: newMockEventOps(),
		lce:   &mockLCE{},
		cc:    &mockCCOps{},
		mm:    &mockMMOps{},
	}

	fakeFD := 1000
	h, err := New(&Config{
		Role: role,
		PARI: identity.ARI{
			Class: identity.ARIClassA,
			EMC:   0x08ae,
			FPN:   0x2a,
		},
		Ops: &Ops{
			Event: env.event,
			LCE:   env.lce,
			CC:    env.cc,
			MM:    env.mm,
		},
		DialUPlane: func(ulei uint32) (int, error) {
			fakeFD++
			return fakeFD, nil
		},
	})
	if err != nil {
		panic(err)
	}
	env.h = h
	return env
}

func testIPUI() *identity.IPUI {
	return &identity.IPUI{
		Put:  identity.IPUIN,
		Bits: 40,
		IPEI: identity.IPEI{EMC: 0x1234, PSN: 0x6789a},
	}
}

// inbound builds a wire message traveling in dir and wraps it in a
// buffer ready for Receive.
func inbound(msgType uint8, mdesc *sfmt.MsgDesc, dir sfmt.Direction, col *sfmt.Collection) *mbuf.Buffer {
	mb := mbuf.New()
	if err := mb.AppendByte(msgType); err != nil {
		panic(err)
	}
	if col == nil {
		col = sfmt.NewCollection()
		defer sfmt.PutCollection(col)
	}
	if err := sfmt.BuildMessage(mdesc, dir, col, mb); err != nil {
		panic(err)
	}
	return mb
}
