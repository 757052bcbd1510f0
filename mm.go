package dect

import (
	"github.com/sirupsen/logrus"

	"github.com/cordless-go/dect/identity"
	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// MM message types.
const (
	mmAuthenticationRequest uint8 = 0x40
	mmAuthenticationReply   uint8 = 0x41
	mmKeyAllocate           uint8 = 0x42
	mmAuthenticationReject  uint8 = 0x43
	mmAccessRightsRequest   uint8 = 0x44
	mmAccessRightsAccept    uint8 = 0x45
	mmAccessRightsReject    uint8 = 0x47
	mmLocateRequest         uint8 = 0x54
	mmLocateAccept          uint8 = 0x55
	mmDetach                uint8 = 0x56
	mmLocateReject          uint8 = 0x57
	mmIdentityRequest       uint8 = 0x58
	mmIdentityReply         uint8 = 0x59
	mmTemporaryIdentityAssign    uint8 = 0x5c
	mmTemporaryIdentityAssignAck uint8 = 0x5d
	mmTemporaryIdentityAssignRej uint8 = 0x5f
)

// MMOps is the Mobility Management indication vector the application
// provides.
type MMOps interface {
	MMLocateInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection)
	MMAccessRightsInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection)
	MMIdentityAssignCfm(h *Handle, mmta *MMTransaction, accept bool, param *sfmt.Collection)
	MMAuthenticateInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection)
	MMKeyAllocateInd(h *Handle, mmta *MMTransaction, param *sfmt.Collection)
}

// MMTransaction is one MM request/response exchange. MM exchanges are
// one-shot: no state persists beyond the transaction.
type MMTransaction struct {
	transaction Transaction
}

// Transaction returns the underlying transaction.
func (mmta *MMTransaction) Transaction() *Transaction {
	return &mmta.transaction
}

func newMMTransaction() *MMTransaction {
	mmta := &MMTransaction{}
	mmta.transaction.Data = mmta
	return mmta
}

func (h *Handle) mmSendMsg(mmta *MMTransaction, mdesc *sfmt.MsgDesc, col *sfmt.Collection, msgType uint8) error {
	return h.send(&mmta.transaction, mdesc, col, msgType)
}

// MMAccessRightsReq starts an access rights (subscription) exchange
// toward the FP.
func (h *Handle) MMAccessRightsReq(ipui *identity.IPUI, param *sfmt.Collection) (*MMTransaction, error) {
	logrus.Debug("MM_ACCESS_RIGHTS-req")

	mmta := newMMTransaction()
	if err := h.openTransaction(&mmta.transaction, ipui, ProtocolMM); err != nil {
		return nil, err
	}

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if msg.Get(sfmt.IEPortableIdentity) == nil {
		msg.Add(sfmt.IEPortableIdentity, &sfmt.PortableIdentity{
			Type: sfmt.PortableIDIPUI,
			IPUI: *ipui,
		})
	}
	if err := h.mmSendMsg(mmta, &mmAccessRightsRequestMsgDesc, msg, mmAccessRightsRequest); err != nil {
		h.closeTransaction(&mmta.transaction, ReleasePartial)
		return nil, err
	}
	return mmta, nil
}

// MMAccessRightsRes answers an access rights request. On accept, a
// FIXED-IDENTITY defaults to the PARK of the handle's PARI when the
// application provided none.
func (h *Handle) MMAccessRightsRes(mmta *MMTransaction, accept bool, param *sfmt.Collection) error {
	logrus.WithFields(logrus.Fields{
		"accept": accept,
	}).Debug("MM_ACCESS_RIGHTS-res")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)

	var err error
	if accept {
		if msg.GetList(sfmt.IEFixedIdentity).Len() == 0 {
			l := sfmt.NewList(sfmt.ListNormal)
			l.Add(&sfmt.FixedIdentity{
				Type: sfmt.FixedIDPARK,
				ARI:  h.pari,
			})
			msg.AddList(sfmt.IEFixedIdentity, l)
		}
		err = h.mmSendMsg(mmta, &mmAccessRightsAcceptMsgDesc, msg, mmAccessRightsAccept)
	} else {
		err = h.mmSendMsg(mmta, &mmAccessRightsRejectMsgDesc, msg, mmAccessRightsReject)
	}

	h.closeTransaction(&mmta.transaction, ReleasePartial)
	return err
}

// MMLocateRes answers a location registration request: a present
// REJECT-REASON selects LOCATE-REJECT, otherwise LOCATE-ACCEPT is
// sent. The transaction closes either way.
func (h *Handle) MMLocateRes(mmta *MMTransaction, param *sfmt.Collection) error {
	logrus.Debug("MM_LOCATE-res")

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)

	var err error
	if param != nil && param.Get(sfmt.IERejectReason) != nil {
		err = h.mmSendMsg(mmta, &mmLocateRejectMsgDesc, msg, mmLocateReject)
	} else {
		err = h.mmSendMsg(mmta, &mmLocateAcceptMsgDesc, msg, mmLocateAccept)
	}

	h.closeTransaction(&mmta.transaction, ReleasePartial)
	return err
}

// MMIdentityAssignReq assigns a temporary identity to a PP. The PP's
// acknowledgement is delivered through MMIdentityAssignCfm.
func (h *Handle) MMIdentityAssignReq(ipui *identity.IPUI, param *sfmt.Collection) (*MMTransaction, error) {
	logrus.Debug("MM_IDENTITY_ASSIGN-req")

	mmta := newMMTransaction()
	if err := h.openTransaction(&mmta.transaction, ipui, ProtocolMM); err != nil {
		return nil, err
	}

	msg := ccParam(param)
	defer sfmt.PutCollection(msg)
	if err := h.mmSendMsg(mmta, &mmTemporaryIdentityAssignMsgDesc, msg, mmTemporaryIdentityAssign); err != nil {
		h.closeTransaction(&mmta.transaction, ReleasePartial)
		return nil, err
	}
	return mmta, nil
}

func (h *Handle) mmRcvAccessRightsRequest(req *Transaction, mb *mbuf.Buffer) {
	logrus.Debug("ACCESS-RIGHTS-REQUEST")
	msg, err := h.parseMessage(&mmAccessRightsRequestMsgDesc, mb)
	if err != nil {
		logrus.WithError(err).Debug("ACCESS-RIGHTS-REQUEST parse failed")
		return
	}
	defer sfmt.PutCollection(msg)

	mmta := newMMTransaction()
	h.confirmTransaction(&mmta.transaction, req)

	h.ops.MM.MMAccessRightsInd(h, mmta, msg)
}

func (h *Handle) mmRcvAccessRightsReject(mmta *MMTransaction, mb *mbuf.Buffer) {
	logrus.Debug("ACCESS-RIGHTS-REJECT")
	msg, err := h.parseMessage(&mmAccessRightsRejectMsgDesc, mb)
	if err != nil {
		return
	}
	sfmt.PutCollection(msg)
	h.closeTransaction(&mmta.transaction, ReleasePartial)
}

func (h *Handle) mmRcvAccessRightsAccept(mmta *MMTransaction, mb *mbuf.Buffer) {
	logrus.Debug("ACCESS-RIGHTS-ACCEPT")
	msg, err := h.parseMessage(&mmAccessRightsAcceptMsgDesc, mb)
	if err != nil {
		return
	}
	sfmt.PutCollection(msg)
	h.closeTransaction(&mmta.transaction, ReleasePartial)
}

func (h *Handle) mmRcvLocateRequest(req *Transaction, mb *mbuf.Buffer) {
	logrus.Debug("LOCATE-REQUEST")
	msg, err := h.parseMessage(&mmLocateRequestMsgDesc, mb)
	if err != nil {
		logrus.WithError(err).Debug("LOCATE-REQUEST parse failed")
		return
	}
	defer sfmt.PutCollection(msg)

	mmta := newMMTransaction()
	h.confirmTransaction(&mmta.transaction, req)

	h.ops.MM.MMLocateInd(h, mmta, msg)
}

func (h *Handle) mmRcvAuthenticationRequest(req *Transaction, mb *mbuf.Buffer) {
	logrus.Debug("AUTHENTICATION-REQUEST")
	msg, err := h.parseMessage(&mmAuthenticationRequestMsgDesc, mb)
	if err != nil {
		logrus.WithError(err).Debug("AUTHENTICATION-REQUEST parse failed")
		return
	}
	defer sfmt.PutCollection(msg)

	mmta := newMMTransaction()
	h.confirmTransaction(&mmta.transaction, req)

	h.ops.MM.MMAuthenticateInd(h, mmta, msg)
}

func (h *Handle) mmRcvKeyAllocate(req *Transaction, mb *mbuf.Buffer) {
	logrus.Debug("KEY-ALLOCATE")
	msg, err := h.parseMessage(&mmKeyAllocateMsgDesc, mb)
	if err != nil {
		logrus.WithError(err).Debug("KEY-ALLOCATE parse failed")
		return
	}
	defer sfmt.PutCollection(msg)

	mmta := newMMTransaction()
	h.confirmTransaction(&mmta.transaction, req)

	h.ops.MM.MMKeyAllocateInd(h, mmta, msg)
}

func (h *Handle) mmRcvTemporaryIdentityAssignAck(mmta *MMTransaction, mb *mbuf.Buffer) {
	logrus.Debug("TEMPORARY-IDENTITY-ASSIGN-ACK")
	msg, err := h.parseMessage(&mmTemporaryIdentityAssignAckMsgDesc, mb)
	if err != nil {
		return
	}

	h.ops.MM.MMIdentityAssignCfm(h, mmta, true, msg)
	sfmt.PutCollection(msg)
	h.closeTransaction(&mmta.transaction, ReleasePartial)
}

func (h *Handle) mmRcvTemporaryIdentityAssignRej(mmta *MMTransaction, mb *mbuf.Buffer) {
	logrus.Debug("TEMPORARY-IDENTITY-ASSIGN-REJ")
	msg, err := h.parseMessage(&mmTemporaryIdentityAssignRejMsgDesc, mb)
	if err != nil {
		return
	}

	h.ops.MM.MMIdentityAssignCfm(h, mmta, false, msg)
	sfmt.PutCollection(msg)
	h.closeTransaction(&mmta.transaction, ReleasePartial)
}

// mmRcv dispatches one inbound MM message for an open transaction.
func mmRcv(h *Handle, ta *Transaction, mb *mbuf.Buffer) {
	mmta := ta.Data.(*MMTransaction)

	switch mb.Type {
	case mmAccessRightsAccept:
		h.mmRcvAccessRightsAccept(mmta, mb)
	case mmAccessRightsReject:
		h.mmRcvAccessRightsReject(mmta, mb)
	case mmTemporaryIdentityAssignAck:
		h.mmRcvTemporaryIdentityAssignAck(mmta, mb)
	case mmTemporaryIdentityAssignRej:
		h.mmRcvTemporaryIdentityAssignRej(mmta, mb)
	default:
		logrus.WithFields(logrus.Fields{
			"type": mb.Type,
		}).Debug("unhandled MM message dropped")
	}
}

// mmOpen handles messages for unknown MM transactions.
func mmOpen(h *Handle, req *Transaction, mb *mbuf.Buffer) {
	switch mb.Type {
	case mmAccessRightsRequest:
		h.mmRcvAccessRightsRequest(req, mb)
	case mmLocateRequest:
		h.mmRcvLocateRequest(req, mb)
	case mmAuthenticationRequest:
		h.mmRcvAuthenticationRequest(req, mb)
	case mmKeyAllocate:
		h.mmRcvKeyAllocate(req, mb)
	default:
		logrus.WithFields(logrus.Fields{
			"type": mb.Type,
		}).Debug("MM message for unknown transaction dropped")
	}
}

// mmShutdown closes an MM transaction on link failure.
func mmShutdown(h *Handle, ta *Transaction) {
	mmta := ta.Data.(*MMTransaction)

	logrus.Debug("MM shutdown")
	h.closeTransaction(&mmta.transaction, ReleaseNormal)
}
