package dect

import (
	"testing"

	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// TestLocateAccept walks an FP through a location registration: the
// application accepts and the emitted LOCATE-ACCEPT carries the
// portable identity and location area exactly once each.
func TestLocateAccept(t *testing.T) {
	env := newTestEnv(RoleFP)
	ipui := testIPUI()

	env.mm.onLocateInd = func(h *Handle, mmta *MMTransaction, param *sfmt.Collection) {
		res := sfmt.NewCollection()
		defer sfmt.PutCollection(res)
		res.Add(sfmt.IEPortableIdentity, param.Get(sfmt.IEPortableIdentity))
		res.Add(sfmt.IELocationArea, &sfmt.LocationArea{Level: 36})
		if err := h.MMLocateRes(mmta, res); err != nil {
			t.Errorf("MMLocateRes failed: %v", err)
		}
	}

	col := sfmt.NewCollection()
	col.Add(sfmt.IEPortableIdentity, &sfmt.PortableIdentity{
		Type: sfmt.PortableIDIPUI,
		IPUI: *ipui,
	})
	env.h.Receive(ipui, ProtocolMM, 0, RolePP,
		inbound(mmLocateRequest, &mmLocateRequestMsgDesc, sfmt.PPToFP, col))
	sfmt.PutCollection(col)

	if env.mm.locateInd != 1 {
		t.Fatalf("locate indications = %d, want 1", env.mm.locateInd)
	}
	if len(env.lce.sent) != 1 || env.lce.sent[0].msgType != mmLocateAccept {
		t.Fatalf("expected one LOCATE-ACCEPT, got %+v", env.lce.sent)
	}

	wire := mbuf.New()
	if err := wire.Append(env.lce.sent[0].wire[1:]); err != nil {
		t.Fatal(err)
	}
	msg, err := sfmt.ParseMessage(&mmLocateAcceptMsgDesc, sfmt.FPToPP, wire)
	if err != nil {
		t.Fatalf("LOCATE-ACCEPT does not parse: %v", err)
	}
	pi, ok := msg.Get(sfmt.IEPortableIdentity).(*sfmt.PortableIdentity)
	if !ok || !pi.IPUI.Equal(ipui) {
		t.Fatalf("LOCATE-ACCEPT portable identity = %+v", pi)
	}
	la, ok := msg.Get(sfmt.IELocationArea).(*sfmt.LocationArea)
	if !ok || la.Level != 36 {
		t.Fatalf("LOCATE-ACCEPT location area = %+v", la)
	}
	sfmt.PutCollection(msg)

	if len(env.h.links) != 0 {
		t.Fatal("transaction still open after locate response")
	}
}

// TestLocateReject verifies that a present reject reason selects
// LOCATE-REJECT.
func TestLocateReject(t *testing.T) {
	env := newTestEnv(RoleFP)
	ipui := testIPUI()

	env.mm.onLocateInd = func(h *Handle, mmta *MMTransaction, param *sfmt.Collection) {
		res := sfmt.NewCollection()
		defer sfmt.PutCollection(res)
		res.Add(sfmt.IERejectReason, &sfmt.RejectReason{
			Reason: sfmt.RejectIPUIUnknown,
		})
		if err := h.MMLocateRes(mmta, res); err != nil {
			t.Errorf("MMLocateRes failed: %v", err)
		}
	}

	col := sfmt.NewCollection()
	col.Add(sfmt.IEPortableIdentity, &sfmt.PortableIdentity{
		Type: sfmt.PortableIDIPUI,
		IPUI: *ipui,
	})
	env.h.Receive(ipui, ProtocolMM, 0, RolePP,
		inbound(mmLocateRequest, &mmLocateRequestMsgDesc, sfmt.PPToFP, col))
	sfmt.PutCollection(col)

	if len(env.lce.sent) != 1 || env.lce.sent[0].msgType != mmLocateReject {
		t.Fatalf("expected one LOCATE-REJECT, got %+v", env.lce.sent)
	}
}

// TestAccessRightsDefaultPARK verifies that an accept without an
// application-provided fixed identity carries the PARK of the
// handle's PARI.
func TestAccessRightsDefaultPARK(t *testing.T) {
	env := newTestEnv(RoleFP)
	ipui := testIPUI()

	col := sfmt.NewCollection()
	col.Add(sfmt.IEPortableIdentity, &sfmt.PortableIdentity{
		Type: sfmt.PortableIDIPUI,
		IPUI: *ipui,
	})
	env.h.Receive(ipui, ProtocolMM, 0, RolePP,
		inbound(mmAccessRightsRequest, &mmAccessRightsRequestMsgDesc, sfmt.PPToFP, col))

	if env.mm.accessRightsInd != 1 {
		t.Fatalf("access rights indications = %d, want 1", env.mm.accessRightsInd)
	}

	// The indication handler did not reply; answer now through the
	// still-open transaction.
	l := env.h.links[ipui.String()]
	if l == nil || len(l.transactions) != 1 {
		t.Fatal("access rights transaction not open")
	}
	var mmta *MMTransaction
	for _, ta := range l.transactions {
		mmta = ta.Data.(*MMTransaction)
	}

	res := sfmt.NewCollection()
	res.Add(sfmt.IEPortableIdentity, col.Get(sfmt.IEPortableIdentity))
	if err := env.h.MMAccessRightsRes(mmta, true, res); err != nil {
		t.Fatalf("MMAccessRightsRes failed: %v", err)
	}
	sfmt.PutCollection(res)
	sfmt.PutCollection(col)

	if len(env.lce.sent) != 1 || env.lce.sent[0].msgType != mmAccessRightsAccept {
		t.Fatalf("expected one ACCESS-RIGHTS-ACCEPT, got %+v", env.lce.sent)
	}

	wire := mbuf.New()
	if err := wire.Append(env.lce.sent[0].wire[1:]); err != nil {
		t.Fatal(err)
	}
	msg, err := sfmt.ParseMessage(&mmAccessRightsAcceptMsgDesc, sfmt.FPToPP, wire)
	if err != nil {
		t.Fatalf("ACCESS-RIGHTS-ACCEPT does not parse: %v", err)
	}
	defer sfmt.PutCollection(msg)

	fis := msg.GetList(sfmt.IEFixedIdentity)
	if fis.Len() != 1 {
		t.Fatalf("fixed identities = %d, want 1", fis.Len())
	}
	fi := fis.Elems[0].(*sfmt.FixedIdentity)
	if fi.Type != sfmt.FixedIDPARK {
		t.Fatalf("fixed identity type = %#x, want PARK", uint8(fi.Type))
	}
	pari := env.h.PARI()
	if !fi.ARI.Equal(&pari) {
		t.Fatalf("fixed identity ARI = %v, want %v", fi.ARI.String(), pari.String())
	}
}

// TestIdentityAssignConfirm verifies the FP side of a temporary
// identity assignment.
func TestIdentityAssignConfirm(t *testing.T) {
	env := newTestEnv(RoleFP)
	ipui := testIPUI()

	mmta, err := env.h.MMIdentityAssignReq(ipui, nil)
	if err != nil {
		t.Fatalf("MMIdentityAssignReq failed: %v", err)
	}
	if len(env.lce.sent) != 1 || env.lce.sent[0].msgType != mmTemporaryIdentityAssign {
		t.Fatalf("expected one TEMPORARY-IDENTITY-ASSIGN, got %+v", env.lce.sent)
	}

	env.h.Receive(ipui, ProtocolMM, mmta.transaction.TV(), RoleFP,
		inbound(mmTemporaryIdentityAssignAck, &mmTemporaryIdentityAssignAckMsgDesc, sfmt.PPToFP, nil))

	if env.mm.identityAssignCfm != 1 {
		t.Fatalf("identity assign confirms = %d, want 1", env.mm.identityAssignCfm)
	}
	if !env.mm.identityAssignAccept {
		t.Fatal("identity assignment not confirmed as accepted")
	}
	if len(env.h.links) != 0 {
		t.Fatal("transaction still open after acknowledgement")
	}
}

// TestMMTransactionCeiling verifies the single-transaction MM limit.
func TestMMTransactionCeiling(t *testing.T) {
	env := newTestEnv(RoleFP)
	ipui := testIPUI()

	if _, err := env.h.MMIdentityAssignReq(ipui, nil); err != nil {
		t.Fatalf("first MM transaction failed: %v", err)
	}
	if _, err := env.h.MMIdentityAssignReq(ipui, nil); err == nil {
		t.Fatal("second concurrent MM transaction succeeded")
	}
}
