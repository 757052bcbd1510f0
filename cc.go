package dect

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cordless-go/dect/identity"
	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// CC message types.
const (
	ccAlerting      uint8 = 0x01
	ccCallProc      uint8 = 0x02
	ccSetup         uint8 = 0x05
	ccConnect       uint8 = 0x07
	ccSetupAck      uint8 = 0x0d
	ccConnectAck    uint8 = 0x0f
	ccServiceChange uint8 = 0x20
	ccServiceAccept uint8 = 0x21
	ccServiceReject uint8 = 0x23
	ccRelease       uint8 = 0x4d
	ccReleaseCom    uint8 = 0x5a
	ccIWUInfo       uint8 = 0x60
	ccNotify        uint8 = 0x6e
	ccInfo          uint8 = 0x7b
)

// CallState is the Call Control state of a call.
type CallState uint8

const (
	// CallNull is the initial state.
	CallNull CallState = iota
	// CallInitiated is entered on an inbound CC-SETUP.
	CallInitiated
	// CallOverlapSending is entered for overlap sending.
	CallOverlapSending
	// CallProceeding is entered when call establishment proceeds.
	CallProceeding
	// CallDelivered is entered when alerting is delivered end to end.
	CallDelivered
	// CallPresent is entered when an outbound CC-SETUP was sent.
	CallPresent
	// CallReceived is entered when the peer is alerting.
	CallReceived
	// CallConnectPending is entered by a PP awaiting connect
	// acknowledgement.
	CallConnectPending
	// CallActive is the connected state.
	CallActive
	// CallReleasePending is entered awaiting release completion.
	CallReleasePending
	// CallOverlapReceiving is entered for overlap receiving.
	CallOverlapReceiving
	// CallIncomingProceeding is entered when an incoming call
	// proceeds.
	CallIncomingProceeding
)

var callStateNames = map[CallState]string{
	CallNull:               "NULL",
	CallInitiated:          "CALL INITIATED",
	CallOverlapSending:     "OVERLAP SENDING",
	CallProceeding:         "CALL PROCEEDING",
	CallDelivered:          "CALL DELIVERED",
	CallPresent:            "CALL PRESENT",
	CallReceived:           "CALL RECEIVED",
	CallConnectPending:     "CONNECT PENDING",
	CallActive:             "ACTIVE",
	CallReleasePending:     "RELEASE PENDING",
	CallOverlapReceiving:   "OVERLAP RECEIVING",
	CallIncomingProceeding: "INCOMING CALL PROCEEDING",
}

func (s CallState) String() string {
	return callStateNames[s]
}

// CCSetupTimeout is the single-shot setup supervision timeout. If no
// response to an outbound CC-SETUP arrives in time, the call is
// rejected and destroyed.
const CCSetupTimeout = 60 * time.Second

// CCOps is the Call Control indication vector the application
// provides. Parameter collections are reference counted: an
// application keeping an IE beyond the callback must Hold it.
type CCOps interface {
	MNCCSetupInd(h *Handle, call *Call, param *sfmt.Collection)
	MNCCAlertInd(h *Handle, call *Call, param *sfmt.Collection)
	MNCCConnectInd(h *Handle, call *Call, param *sfmt.Collection)
	MNCCReleaseInd(h *Handle, call *Call, param *sfmt.Collection)
	MNCCReleaseCfm(h *Handle, call *Call, param *sfmt.Collection)
	MNCCRejectInd(h *Handle, call *Call, param *sfmt.Collection)
	MNCCInfoInd(h *Handle, call *Call, param *sfmt.Collection)
	DLUDataInd(h *Handle, call *Call, mb *mbuf.Buffer)
}

// Call is the per-transaction Call Control state.
type Call struct {
	// Priv is application scratch storage attached to the call.
	Priv any

	id          uuid.UUID
	state       CallState
	transaction Transaction
	ptID        *sfmt.PortableIdentity
	ftID        *sfmt.FixedIdentity
	setupTimer  *Timer
	luSAP       *FD
}

// State returns the Call Control state of the call.
func (call *Call) State() CallState {
	return call.state
}

// ID returns the call's correlation identifier, stable across its
// lifetime and usable for tracing.
func (call *Call) ID() uuid.UUID {
	return call.id
}

// PortableIdentity returns the portable identity of the call's peer,
// or nil before it is known.
func (call *Call) PortableIdentity() *identity.IPUI {
	if call.ptID == nil {
		return nil
	}
	return &call.ptID.IPUI
}

func (call *Call) log() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"call":  call.id,
		"state": call.state,
	})
}

// NewCall creates a call in the NULL state for an outbound setup.
func (h *Handle) NewCall() *Call {
	call := &Call{
		id:         uuid.New(),
		state:      CallNull,
		setupTimer: &Timer{},
	}
	call.transaction.Data = call
	return call
}

func (h *Handle) destroyCall(call *Call) {
	if call.setupTimer != nil {
		h.stopTimer(call.setupTimer)
	}
	if call.ptID != nil {
		sfmt.Put(call.ptID)
		call.ptID = nil
	}
	if call.ftID != nil {
		sfmt.Put(call.ftID)
		call.ftID = nil
	}
	call.log().Debug("call destroyed")
}

func (h *Handle) ccSendMsg(call *Call, mdesc *sfmt.MsgDesc, col *sfmt.Collection, msgType uint8) error {
	return h.send(&call.transaction, mdesc, col, msgType)
}

// ccParam merges the application's parameters into a fresh collection.
func ccParam(param *sfmt.Collection) *sfmt.Collection {
	col := sfmt.NewCollection()
	if param != nil {
		col.Merge(param)
	}
	return col
}

func (h *Handle) ccSetupTimerExpired(_ *Handle, t *Timer) {
	call := t.data.(*Call)

	call.log().Debug("setup timer expired")
	h.ops.CC.MNCCRejectInd(h, call, nil)
	h.closeTransaction(&call.transaction, ReleaseNormal)
	h.destroyCall(call)
}

// MNCCSetupReq starts an outgoing call to the portable identity ipui.
// The library adds the portable identity and the PARK of the handle's
// PARI to the application parameters, sends CC-SETUP and starts the
// setup supervision timer.
func (h *Handle) MNCCSetupReq(call *Call, ipui *identity.IPUI, param *sfmt.Collection) error {
	call.log().Debug("MNCC_SETUP-req")

	if err := h.openTransaction(&call.transaction, ipui, ProtocolCC); err != nil {
		return err
	}

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	msg.Add(sfmt.IEPortableIdentity, &sfmt.PortableIdentity{
		Type: sfmt.PortableIDIPUI,
		IPUI: *ipui,
	})
	msg.Add(sfmt.IEFixedIdentity, &sfmt.FixedIdentity{
		Type: sfmt.FixedIDPARK,
		ARI:  h.pari,
	})

	if err := h.ccSendMsg(call, &ccSetupMsgDesc, msg, ccSetup); err != nil {
		h.closeTransaction(&call.transaction, ReleaseNormal)
		return err
	}
	call.state = CallPresent

	call.setupTimer.setup(h.ccSetupTimerExpired, call)
	return h.startTimer(call.setupTimer, CCSetupTimeout)
}

// MNCCSetupAckReq acknowledges an inbound setup for overlap receiving.
func (h *Handle) MNCCSetupAckReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_SETUP_ACK-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if call.ptID != nil {
		msg.Add(sfmt.IEPortableIdentity, call.ptID)
	}
	if call.ftID != nil {
		msg.Add(sfmt.IEFixedIdentity, call.ftID)
	}
	if err := h.ccSendMsg(call, &ccSetupAckMsgDesc, msg, ccSetupAck); err != nil {
		return err
	}
	call.state = CallOverlapReceiving
	return nil
}

// MNCCCallProcReq reports that the incoming call is proceeding.
func (h *Handle) MNCCCallProcReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_CALL_PROC-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccCallProcMsgDesc, msg, ccCallProc); err != nil {
		return err
	}
	call.state = CallProceeding
	return nil
}

// MNCCAlertReq reports that the called user is being alerted.
func (h *Handle) MNCCAlertReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_ALERT-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccAlertingMsgDesc, msg, ccAlerting); err != nil {
		return err
	}
	call.state = CallReceived
	return nil
}

// MNCCConnectReq answers an incoming call: CC-CONNECT is sent and the
// U-plane connected.
func (h *Handle) MNCCConnectReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_CONNECT-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccConnectMsgDesc, msg, ccConnect); err != nil {
		return err
	}
	call.state = CallConnectPending
	h.connectUPlane(call)
	return nil
}

// MNCCConnectRes completes call establishment: the U-plane is
// connected, CC-CONNECT-ACK sent and the call becomes active.
func (h *Handle) MNCCConnectRes(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_CONNECT-res")

	h.connectUPlane(call)
	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccConnectAckMsgDesc, msg, ccConnectAck); err != nil {
		h.disconnectUPlane(call)
		return err
	}
	call.state = CallActive
	return nil
}

// MNCCRejectReq rejects an incoming call with CC-RELEASE-COM and
// destroys it.
func (h *Handle) MNCCRejectReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_REJECT-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccReleaseComMsgDesc, msg, ccReleaseCom); err != nil {
		call.log().WithError(err).Debug("reject send failed")
	}
	h.closeTransaction(&call.transaction, ReleaseNormal)
	h.destroyCall(call)
	return nil
}

// MNCCReleaseReq starts call release: CC-RELEASE is sent and the call
// awaits CC-RELEASE-COM.
func (h *Handle) MNCCReleaseReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_RELEASE-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccReleaseMsgDesc, msg, ccRelease); err != nil {
		return err
	}
	call.state = CallReleasePending
	return nil
}

// MNCCReleaseRes completes a peer-initiated release: CC-RELEASE-COM
// is sent, the U-plane disconnected and the call destroyed.
func (h *Handle) MNCCReleaseRes(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_RELEASE-res")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.ccSendMsg(call, &ccReleaseComMsgDesc, msg, ccReleaseCom); err != nil {
		call.log().WithError(err).Debug("release-com send failed")
	}
	h.disconnectUPlane(call)
	h.closeTransaction(&call.transaction, ReleaseNormal)
	h.destroyCall(call)
	return nil
}

// MNCCInfoReq sends mid-call information.
func (h *Handle) MNCCInfoReq(call *Call, param *sfmt.Collection) error {
	call.log().Debug("MNCC_INFO-req")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	return h.ccSendMsg(call, &ccInfoMsgDesc, msg, ccInfo)
}

// stopSetupTimer cancels setup supervision on any valid response to
// the outbound CC-SETUP.
func (h *Handle) stopSetupTimer(call *Call) {
	if call.setupTimer != nil && call.setupTimer.Running() {
		h.stopTimer(call.setupTimer)
	}
}

func (h *Handle) ccRcvAlerting(call *Call, mb *mbuf.Buffer) {
	if call.state != CallPresent {
		call.log().Debug("CC-ALERTING dropped in state")
		return
	}

	msg, err := h.parseMessage(&ccAlertingMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-ALERTING parse failed")
		return
	}
	h.stopSetupTimer(call)

	h.ops.CC.MNCCAlertInd(h, call, msg)
	sfmt.PutCollection(msg)
	call.state = CallReceived
}

func (h *Handle) ccRcvCallProc(call *Call, mb *mbuf.Buffer) {
	if call.state != CallPresent {
		call.log().Debug("CC-CALL-PROC dropped in state")
		return
	}

	msg, err := h.parseMessage(&ccCallProcMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-CALL-PROC parse failed")
		return
	}
	h.stopSetupTimer(call)
	call.state = CallProceeding
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvConnect(call *Call, mb *mbuf.Buffer) {
	if call.state != CallPresent && call.state != CallReceived {
		call.log().Debug("CC-CONNECT dropped in state")
		return
	}

	msg, err := h.parseMessage(&ccConnectMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-CONNECT parse failed")
		return
	}
	h.stopSetupTimer(call)

	h.ops.CC.MNCCConnectInd(h, call, msg)
	sfmt.PutCollection(msg)

	h.connectUPlane(call)
	if h.role == RoleFP {
		call.state = CallActive
	} else {
		call.state = CallConnectPending
	}
}

func (h *Handle) ccRcvSetupAck(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccSetupAckMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-SETUP-ACK parse failed")
		return
	}
	h.stopSetupTimer(call)
	call.state = CallOverlapSending
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvConnectAck(call *Call, mb *mbuf.Buffer) {
	if call.state != CallConnectPending {
		call.log().Debug("CC-CONNECT-ACK dropped in state")
		return
	}

	msg, err := h.parseMessage(&ccConnectAckMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-CONNECT-ACK parse failed")
		return
	}
	call.state = CallActive
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvServiceChange(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccServiceChangeMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-SERVICE-CHANGE parse failed")
		return
	}
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvServiceAccept(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccServiceAcceptMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-SERVICE-ACCEPT parse failed")
		return
	}
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvServiceReject(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccServiceRejectMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-SERVICE-REJECT parse failed")
		return
	}
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvRelease(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccReleaseMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-RELEASE parse failed")
		return
	}
	h.stopSetupTimer(call)

	h.ops.CC.MNCCReleaseInd(h, call, msg)
	sfmt.PutCollection(msg)
	call.state = CallReleasePending
}

func (h *Handle) ccRcvReleaseCom(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccReleaseComMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-RELEASE-COM parse failed")
		return
	}
	h.stopSetupTimer(call)

	if call.state == CallReleasePending {
		h.ops.CC.MNCCReleaseCfm(h, call, msg)
	} else {
		h.ops.CC.MNCCReleaseInd(h, call, msg)
	}
	sfmt.PutCollection(msg)

	h.disconnectUPlane(call)
	h.closeTransaction(&call.transaction, ReleaseNormal)
	h.destroyCall(call)
}

func (h *Handle) ccRcvIWUInfo(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccIWUInfoMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-IWU-INFO parse failed")
		return
	}
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvNotify(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccNotifyMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-NOTIFY parse failed")
		return
	}
	sfmt.PutCollection(msg)
}

func (h *Handle) ccRcvInfo(call *Call, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccInfoMsgDesc, mb)
	if err != nil {
		call.log().WithError(err).Debug("CC-INFO parse failed")
		return
	}

	h.ops.CC.MNCCInfoInd(h, call, msg)
	sfmt.PutCollection(msg)
}

// ccRcv dispatches one inbound CC message for an open call.
func ccRcv(h *Handle, ta *Transaction, mb *mbuf.Buffer) {
	call := ta.Data.(*Call)

	call.log().WithFields(logrus.Fields{
		"type": mb.Type,
	}).Debug("CC receive")

	switch mb.Type {
	case ccAlerting:
		h.ccRcvAlerting(call, mb)
	case ccCallProc:
		h.ccRcvCallProc(call, mb)
	case ccConnect:
		h.ccRcvConnect(call, mb)
	case ccSetupAck:
		h.ccRcvSetupAck(call, mb)
	case ccConnectAck:
		h.ccRcvConnectAck(call, mb)
	case ccServiceChange:
		h.ccRcvServiceChange(call, mb)
	case ccServiceAccept:
		h.ccRcvServiceAccept(call, mb)
	case ccServiceReject:
		h.ccRcvServiceReject(call, mb)
	case ccRelease:
		h.ccRcvRelease(call, mb)
	case ccReleaseCom:
		h.ccRcvReleaseCom(call, mb)
	case ccIWUInfo:
		h.ccRcvIWUInfo(call, mb)
	case ccNotify:
		h.ccRcvNotify(call, mb)
	case ccInfo:
		h.ccRcvInfo(call, mb)
	default:
		call.log().WithFields(logrus.Fields{
			"type": mb.Type,
		}).Debug("unknown CC message dropped")
	}
}

// ccRcvSetup handles an inbound CC-SETUP opening a new call.
func (h *Handle) ccRcvSetup(req *Transaction, mb *mbuf.Buffer) {
	msg, err := h.parseMessage(&ccSetupMsgDesc, mb)
	if err != nil {
		logrus.WithError(err).Debug("CC-SETUP parse failed")
		return
	}
	defer sfmt.PutCollection(msg)

	pt, _ := msg.Get(sfmt.IEPortableIdentity).(*sfmt.PortableIdentity)
	ft, _ := msg.Get(sfmt.IEFixedIdentity).(*sfmt.FixedIdentity)
	if pt == nil || ft == nil {
		logrus.Debug("CC-SETUP without identities dropped")
		return
	}

	call := h.NewCall()
	call.ptID = sfmt.Hold(pt).(*sfmt.PortableIdentity)
	call.ftID = sfmt.Hold(ft).(*sfmt.FixedIdentity)
	call.state = CallInitiated
	h.confirmTransaction(&call.transaction, req)
	call.log().Debug("new call")

	h.ops.CC.MNCCSetupInd(h, call, msg)
}

// ccOpen handles messages for unknown CC transactions.
func ccOpen(h *Handle, req *Transaction, mb *mbuf.Buffer) {
	switch mb.Type {
	case ccSetup:
		h.ccRcvSetup(req, mb)
	case ccRelease, ccReleaseCom:
		// Releases for unknown transactions carry no state to
		// tear down.
	default:
		logrus.WithFields(logrus.Fields{
			"type": mb.Type,
		}).Debug("CC message for unknown transaction dropped")
	}
}

// ccShutdown tears a call down on link failure.
func ccShutdown(h *Handle, ta *Transaction) {
	call := ta.Data.(*Call)

	call.log().Debug("shutdown")
	h.ops.CC.MNCCRejectInd(h, call, nil)
	h.closeTransaction(&call.transaction, ReleaseNormal)
	h.destroyCall(call)
}
