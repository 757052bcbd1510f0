package dect

import (
	"errors"
	"testing"

	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// TestOutgoingCallToActive walks a PP-originated call through alerting
// and connect into the active state, verifying the emitted messages
// and the U-plane lifecycle.
func TestOutgoingCallToActive(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	call := env.h.NewCall()
	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
		t.Fatalf("MNCCSetupReq failed: %v", err)
	}
	sfmt.PutCollection(param)

	if call.State() != CallPresent {
		t.Fatalf("state after setup = %v, want %v", call.State(), CallPresent)
	}
	if len(env.lce.sent) != 1 || env.lce.sent[0].msgType != ccSetup {
		t.Fatalf("expected one CC-SETUP on the wire, got %+v", env.lce.sent)
	}
	if env.event.lastTimer == nil || !env.event.lastTimer.Running() {
		t.Fatal("setup timer not started")
	}

	// The emitted CC-SETUP must carry the identities and basic
	// service and parse cleanly on the FP side.
	wire := mbuf.New()
	if err := wire.Append(env.lce.sent[0].wire[1:]); err != nil {
		t.Fatal(err)
	}
	msg, err := sfmt.ParseMessage(&ccSetupMsgDesc, sfmt.PPToFP, wire)
	if err != nil {
		t.Fatalf("CC-SETUP does not parse: %v", err)
	}
	pi, ok := msg.Get(sfmt.IEPortableIdentity).(*sfmt.PortableIdentity)
	if !ok || !pi.IPUI.Equal(ipui) {
		t.Fatalf("CC-SETUP portable identity = %+v, want %v", pi, ipui)
	}
	if _, ok := msg.Get(sfmt.IEFixedIdentity).(*sfmt.FixedIdentity); !ok {
		t.Fatal("CC-SETUP lacks fixed identity")
	}
	bs, ok := msg.Get(sfmt.IEBasicService).(*sfmt.BasicService)
	if !ok || bs.Class != sfmt.CallClassNormal || bs.Service != sfmt.ServiceBasicSpeech {
		t.Fatalf("CC-SETUP basic service = %+v", bs)
	}
	sfmt.PutCollection(msg)

	tv := call.transaction.TV()

	// FP alerts.
	env.h.Receive(ipui, ProtocolCC, tv, RolePP,
		inbound(ccAlerting, &ccAlertingMsgDesc, sfmt.FPToPP, nil))
	if call.State() != CallReceived {
		t.Fatalf("state after alerting = %v, want %v", call.State(), CallReceived)
	}
	if env.cc.alertInd != 1 {
		t.Fatalf("alert indications = %d, want 1", env.cc.alertInd)
	}
	if env.event.lastTimer.Running() {
		t.Fatal("setup timer still running after response")
	}

	// FP connects: the PP awaits the connect acknowledge and opens
	// the U-plane.
	env.h.Receive(ipui, ProtocolCC, tv, RolePP,
		inbound(ccConnect, &ccConnectMsgDesc, sfmt.FPToPP, nil))
	if call.State() != CallConnectPending {
		t.Fatalf("state after connect = %v, want %v", call.State(), CallConnectPending)
	}
	if env.cc.connectInd != 1 {
		t.Fatalf("connect indications = %d, want 1", env.cc.connectInd)
	}
	if call.luSAP == nil {
		t.Fatal("U-plane not connected")
	}
	if len(env.event.fds) != 1 {
		t.Fatalf("U-plane fd not registered with the event loop")
	}

	// Application accepts.
	if err := env.h.MNCCConnectRes(call, nil); err != nil {
		t.Fatalf("MNCCConnectRes failed: %v", err)
	}
	if call.State() != CallActive {
		t.Fatalf("state after connect-res = %v, want %v", call.State(), CallActive)
	}
	if got := env.lce.sent[len(env.lce.sent)-1].msgType; got != ccConnectAck {
		t.Fatalf("last message type = %#x, want CC-CONNECT-ACK", got)
	}
}

// TestSetupTimeout verifies that an unanswered CC-SETUP yields exactly
// one MNCC_REJECT-ind and removes the transaction.
func TestSetupTimeout(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	call := env.h.NewCall()
	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
		t.Fatalf("MNCCSetupReq failed: %v", err)
	}
	sfmt.PutCollection(param)

	timer := env.event.lastTimer
	if timer == nil {
		t.Fatal("setup timer not registered")
	}
	if env.event.timers[timer] != CCSetupTimeout {
		t.Fatalf("setup timeout = %v, want %v", env.event.timers[timer], CCSetupTimeout)
	}

	env.h.TimerExpired(timer)

	if env.cc.rejectInd != 1 {
		t.Fatalf("reject indications = %d, want 1", env.cc.rejectInd)
	}
	if env.cc.rejectParam != nil {
		t.Fatal("reject indication carries parameters")
	}
	if len(env.h.links) != 0 {
		t.Fatal("transaction still present after timeout")
	}
	if env.lce.released != 1 {
		t.Fatalf("link releases = %d, want 1", env.lce.released)
	}

	// A late second expiry must not deliver another indication.
	env.h.TimerExpired(timer)
	if env.cc.rejectInd != 1 {
		t.Fatalf("reject indications after late expiry = %d, want 1", env.cc.rejectInd)
	}
}

// TestIncomingCallAnswered walks an FP-originated call on the PP from
// CC-SETUP through the application answering.
func TestIncomingCallAnswered(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	col := sfmt.NewCollection()
	col.Add(sfmt.IEPortableIdentity, &sfmt.PortableIdentity{
		Type: sfmt.PortableIDIPUI,
		IPUI: *ipui,
	})
	col.Add(sfmt.IEFixedIdentity, &sfmt.FixedIdentity{
		Type: sfmt.FixedIDPARK,
		ARI:  env.h.PARI(),
	})
	col.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	env.h.Receive(ipui, ProtocolCC, 0, RoleFP,
		inbound(ccSetup, &ccSetupMsgDesc, sfmt.FPToPP, col))
	sfmt.PutCollection(col)

	if env.cc.setupInd != 1 {
		t.Fatalf("setup indications = %d, want 1", env.cc.setupInd)
	}
	call := env.cc.lastCall
	if call == nil || call.State() != CallInitiated {
		t.Fatalf("call state = %v, want %v", call.State(), CallInitiated)
	}
	if !call.PortableIdentity().Equal(ipui) {
		t.Fatalf("call portable identity = %v, want %v", call.PortableIdentity(), ipui)
	}

	if err := env.h.MNCCAlertReq(call, nil); err != nil {
		t.Fatalf("MNCCAlertReq failed: %v", err)
	}
	if call.State() != CallReceived {
		t.Fatalf("state after alert = %v, want %v", call.State(), CallReceived)
	}

	if err := env.h.MNCCConnectRes(call, nil); err != nil {
		t.Fatalf("MNCCConnectRes failed: %v", err)
	}
	if call.State() != CallActive {
		t.Fatalf("state after answer = %v, want %v", call.State(), CallActive)
	}
	if call.luSAP == nil {
		t.Fatal("U-plane not connected")
	}
	if got := env.lce.sent[len(env.lce.sent)-1].msgType; got != ccConnectAck {
		t.Fatalf("last message type = %#x, want CC-CONNECT-ACK", got)
	}
}

// TestSetupWithoutPortableIdentityDropped verifies that a CC-SETUP
// lacking its mandatory portable identity creates no call.
func TestSetupWithoutPortableIdentityDropped(t *testing.T) {
	env := newTestEnv(RoleFP)
	ipui := testIPUI()

	mb := mbuf.New()
	if err := mb.AppendByte(ccSetup); err != nil {
		t.Fatal(err)
	}
	if err := sfmt.BuildIE(sfmt.IEFixedIdentity, &sfmt.FixedIdentity{
		Type: sfmt.FixedIDPARK,
		ARI:  env.h.PARI(),
	}, mb); err != nil {
		t.Fatal(err)
	}
	if err := sfmt.BuildIE(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	}, mb); err != nil {
		t.Fatal(err)
	}

	env.h.Receive(ipui, ProtocolCC, 0, RolePP, mb)

	if env.cc.setupInd != 0 {
		t.Fatal("setup indication for invalid CC-SETUP")
	}
	l := env.h.links[ipui.String()]
	if l != nil && len(l.transactions) != 0 {
		t.Fatal("transaction created for invalid CC-SETUP")
	}
}

// TestCorruptOptionalIEDropped verifies that a corrupt optional keypad
// in CC-INFO is dropped while the valid display is delivered.
func TestCorruptOptionalIEDropped(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	// Establish a call so CC-INFO finds an open transaction.
	call := env.h.NewCall()
	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
		t.Fatalf("MNCCSetupReq failed: %v", err)
	}
	sfmt.PutCollection(param)

	mb := mbuf.New()
	if err := mb.AppendByte(ccInfo); err != nil {
		t.Fatal(err)
	}
	if err := sfmt.BuildIE(sfmt.IESingleDisplay, &sfmt.Display{
		Info: []byte("hello"),
	}, mb); err != nil {
		t.Fatal(err)
	}
	// A correctly framed but over-long MULTI-KEYPAD.
	corrupt := make([]byte, 72)
	corrupt[0] = byte(sfmt.IEMultiKeypad)
	corrupt[1] = 70
	if err := mb.Append(corrupt); err != nil {
		t.Fatal(err)
	}

	env.h.Receive(ipui, ProtocolCC, call.transaction.TV(), RolePP, mb)

	if env.cc.infoInd != 1 {
		t.Fatalf("info indications = %d, want 1", env.cc.infoInd)
	}
	if !env.cc.hadDisplay {
		t.Fatal("display missing from info indication")
	}
	if env.cc.hadKeypad {
		t.Fatal("corrupt keypad delivered")
	}
}

// TestSetupRepeatList verifies that a CC-SETUP carrying two
// IWU-TO-IWU elements serializes them behind a repeat indicator and
// parses back into an equivalent list.
func TestSetupRepeatList(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	call := env.h.NewCall()
	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	l := sfmt.NewList(sfmt.ListNormal)
	l.Add(&sfmt.IWUToIWU{PD: sfmt.IWUToIWUPDUserSpecific, Data: []byte{0x01}})
	l.Add(&sfmt.IWUToIWU{PD: sfmt.IWUToIWUPDUserSpecific, Data: []byte{0x02}})
	param.AddList(sfmt.IEIWUToIWU, l)

	if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
		t.Fatalf("MNCCSetupReq failed: %v", err)
	}
	sfmt.PutCollection(param)

	wire := env.lce.sent[0].wire
	mb := mbuf.New()
	if err := mb.Append(wire[1:]); err != nil {
		t.Fatal(err)
	}
	msg, err := sfmt.ParseMessage(&ccSetupMsgDesc, sfmt.PPToFP, mb)
	if err != nil {
		t.Fatalf("CC-SETUP does not parse: %v", err)
	}
	defer sfmt.PutCollection(msg)

	rl := msg.GetList(sfmt.IEIWUToIWU)
	if rl.Len() != 2 {
		t.Fatalf("IWU-TO-IWU list length = %d, want 2", rl.Len())
	}
	if rl.Kind != sfmt.ListNormal {
		t.Fatalf("list kind = %v, want normal", rl.Kind)
	}
	first := rl.Elems[0].(*sfmt.IWUToIWU)
	second := rl.Elems[1].(*sfmt.IWUToIWU)
	if first.Data[0] != 0x01 || second.Data[0] != 0x02 {
		t.Fatal("list order not preserved")
	}
}

// TestReleaseHandshake verifies release from the active state.
func TestReleaseHandshake(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	call := env.h.NewCall()
	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
		t.Fatalf("MNCCSetupReq failed: %v", err)
	}
	sfmt.PutCollection(param)
	tv := call.transaction.TV()

	env.h.Receive(ipui, ProtocolCC, tv, RolePP,
		inbound(ccConnect, &ccConnectMsgDesc, sfmt.FPToPP, nil))
	if err := env.h.MNCCConnectRes(call, nil); err != nil {
		t.Fatal(err)
	}

	if err := env.h.MNCCReleaseReq(call, nil); err != nil {
		t.Fatalf("MNCCReleaseReq failed: %v", err)
	}
	if call.State() != CallReleasePending {
		t.Fatalf("state after release request = %v, want %v", call.State(), CallReleasePending)
	}

	env.h.Receive(ipui, ProtocolCC, tv, RolePP,
		inbound(ccReleaseCom, &ccReleaseComMsgDesc, sfmt.FPToPP, nil))
	if env.cc.releaseCfm != 1 {
		t.Fatalf("release confirms = %d, want 1", env.cc.releaseCfm)
	}
	if call.luSAP != nil {
		t.Fatal("U-plane still connected after release")
	}
	if len(env.h.links) != 0 {
		t.Fatal("link still present after release")
	}
}

// TestLinkShutdownRejectsCalls verifies the shutdown hook path.
func TestLinkShutdownRejectsCalls(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	call := env.h.NewCall()
	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
		t.Fatal(err)
	}
	sfmt.PutCollection(param)

	env.h.LinkShutdown(ipui)

	if env.cc.rejectInd != 1 {
		t.Fatalf("reject indications = %d, want 1", env.cc.rejectInd)
	}
	if len(env.h.links) != 0 {
		t.Fatal("link still present after shutdown")
	}
}

// TestSetupOverload verifies that transaction identifiers stay unique
// and allocation fails once the Call Control ceiling is reached.
func TestSetupOverload(t *testing.T) {
	env := newTestEnv(RolePP)
	ipui := testIPUI()

	param := sfmt.NewCollection()
	param.Add(sfmt.IEBasicService, &sfmt.BasicService{
		Class:   sfmt.CallClassNormal,
		Service: sfmt.ServiceBasicSpeech,
	})
	defer sfmt.PutCollection(param)

	seen := make(map[uint8]bool)
	for i := 0; i < 7; i++ {
		call := env.h.NewCall()
		if err := env.h.MNCCSetupReq(call, ipui, param); err != nil {
			t.Fatalf("setup %d failed: %v", i, err)
		}
		tv := call.transaction.TV()
		if seen[tv] {
			t.Fatalf("transaction identifier %d allocated twice", tv)
		}
		seen[tv] = true
	}

	call := env.h.NewCall()
	err := env.h.MNCCSetupReq(call, ipui, param)
	if !errors.Is(err, ErrOverload) {
		t.Fatalf("eighth setup error = %v, want ErrOverload", err)
	}
}
