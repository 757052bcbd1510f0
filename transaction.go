package dect

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cordless-go/dect/identity"
	"github.com/cordless-go/dect/limits"
	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// Protocol is an NWK-layer protocol discriminator.
type Protocol uint8

const (
	// ProtocolLCE is the Link Control Entity.
	ProtocolLCE Protocol = 0x0
	// ProtocolCC is Call Control.
	ProtocolCC Protocol = 0x3
	// ProtocolCISS is Call Independent Supplementary Services.
	ProtocolCISS Protocol = 0x4
	// ProtocolMM is Mobility Management.
	ProtocolMM Protocol = 0x5
	// ProtocolCLMS is the Connectionless Message Service.
	ProtocolCLMS Protocol = 0x6
	// ProtocolCOMS is the Connection Oriented Message Service.
	ProtocolCOMS Protocol = 0x7
)

// ReleaseMode selects how a data link is released when the last
// transaction closes.
type ReleaseMode uint8

const (
	// ReleaseNormal releases the link after the release grace
	// period.
	ReleaseNormal ReleaseMode = iota
	// ReleasePartial keeps the link established for other
	// transactions.
	ReleasePartial
)

// LCEOps is the lower signaling capability the application provides:
// delivery of serialized messages to the data link and link release
// requests. The data link itself is negotiated and terminated below
// this library.
type LCEOps interface {
	// Send hands a serialized message to the data link. The message
	// type octet is the first octet of the buffer.
	Send(link *DataLink, pd Protocol, tv uint8, initiator Role, mb *mbuf.Buffer) error
	// Release asks the lower layer to release the data link.
	Release(link *DataLink, mode ReleaseMode)
}

// ErrOverload indicates that no transaction identifier could be
// allocated because the protocol's ceiling is reached.
var ErrOverload = errors.New("transaction overload")

// TransactionState tracks the lifecycle of a transaction.
type TransactionState uint8

const (
	// TransUninitiated is a prospective transaction not yet
	// confirmed by its protocol entity.
	TransUninitiated TransactionState = iota
	// TransOpen is an open transaction routed by identifier.
	TransOpen
)

// transKey identifies a transaction within one data link: protocol
// discriminator, 4 bit transaction value and the role that initiated
// it. The role bit doubles the identifier space.
type transKey struct {
	pd        Protocol
	tv        uint8
	initiator Role
}

// Transaction is one request/response context within a data link.
// Data points back at the owning protocol entity state (a *Call or
// *MMTransaction).
type Transaction struct {
	Data any

	link      *DataLink
	pd        Protocol
	tv        uint8
	initiator Role
	state     TransactionState
}

// TV returns the 4 bit transaction value.
func (ta *Transaction) TV() uint8 {
	return ta.tv
}

// Initiator returns the role that initiated the transaction.
func (ta *Transaction) Initiator() Role {
	return ta.initiator
}

// Link returns the data link the transaction runs on.
func (ta *Transaction) Link() *DataLink {
	return ta.link
}

// DataLink is one signaling association, identified by the portable
// identity it serves. It is created on first use in either direction
// and released when the last transaction closes.
type DataLink struct {
	ipui         identity.IPUI
	transactions map[transKey]*Transaction
}

// IPUI returns the portable identity of the link.
func (l *DataLink) IPUI() *identity.IPUI {
	return &l.ipui
}

// protocol describes one NWK protocol entity in the registry.
type protocol struct {
	name            string
	pd              Protocol
	maxTransactions int

	open     func(h *Handle, req *Transaction, mb *mbuf.Buffer)
	rcv      func(h *Handle, ta *Transaction, mb *mbuf.Buffer)
	shutdown func(h *Handle, ta *Transaction)
}

// registerProtocols populates the protocol registry. Protocols
// without receive handlers are known by name and rejected on arrival.
func (h *Handle) registerProtocols() {
	for _, p := range []*protocol{
		{
			name:            "Link Control",
			pd:              ProtocolLCE,
			maxTransactions: limits.MaxTransactionsLCE,
		},
		{
			name:            "Call Control",
			pd:              ProtocolCC,
			maxTransactions: limits.MaxTransactionsCC,
			open:            ccOpen,
			rcv:             ccRcv,
			shutdown:        ccShutdown,
		},
		{
			name:            "Call Independent Supplementary Services",
			pd:              ProtocolCISS,
			maxTransactions: limits.MaxTransactionsCC,
		},
		{
			name:            "Mobility Management",
			pd:              ProtocolMM,
			maxTransactions: limits.MaxTransactionsMM,
			open:            mmOpen,
			rcv:             mmRcv,
			shutdown:        mmShutdown,
		},
		{
			name:            "Connectionless Message Service",
			pd:              ProtocolCLMS,
			maxTransactions: 1,
		},
		{
			name:            "Connection Oriented Message Service",
			pd:              ProtocolCOMS,
			maxTransactions: 1,
		},
	} {
		h.protocols[p.pd] = p
	}
}

// link returns the data link serving ipui, creating it on first use.
func (h *Handle) link(ipui *identity.IPUI) *DataLink {
	key := ipui.String()
	if l, ok := h.links[key]; ok {
		return l
	}
	l := &DataLink{
		ipui:         *ipui,
		transactions: make(map[transKey]*Transaction),
	}
	h.links[key] = l
	logrus.WithFields(logrus.Fields{
		"ipui": key,
	}).Debug("data link created")
	return l
}

// countTransactions counts open transactions of one protocol and
// initiator role on a link.
func (l *DataLink) countTransactions(pd Protocol, initiator Role) int {
	n := 0
	for k := range l.transactions {
		if k.pd == pd && k.initiator == initiator {
			n++
		}
	}
	return n
}

// openTransaction allocates the next free outbound transaction
// identifier for (link, pd) and opens the transaction. It fails with
// ErrOverload when the protocol's ceiling is reached.
func (h *Handle) openTransaction(ta *Transaction, ipui *identity.IPUI, pd Protocol) error {
	p, ok := h.protocols[pd]
	if !ok {
		return fmt.Errorf("unknown protocol discriminator %#x", uint8(pd))
	}

	l := h.link(ipui)
	if l.countTransactions(pd, h.role) >= p.maxTransactions {
		return fmt.Errorf("%w: %s", ErrOverload, p.name)
	}

	for tv := uint8(0); tv < limits.MaxTransactionValue; tv++ {
		key := transKey{pd: pd, tv: tv, initiator: h.role}
		if _, busy := l.transactions[key]; busy {
			continue
		}
		ta.link = l
		ta.pd = pd
		ta.tv = tv
		ta.initiator = h.role
		ta.state = TransOpen
		l.transactions[key] = ta

		logrus.WithFields(logrus.Fields{
			"protocol":  p.name,
			"tv":        tv,
			"initiator": h.role,
			"ipui":      ipui.String(),
		}).Debug("transaction opened")
		return nil
	}
	return fmt.Errorf("%w: no free transaction identifier", ErrOverload)
}

// confirmTransaction promotes a prospective inbound transaction into
// the open set.
func (h *Handle) confirmTransaction(ta *Transaction, req *Transaction) {
	*ta = Transaction{
		Data:      ta.Data,
		link:      req.link,
		pd:        req.pd,
		tv:        req.tv,
		initiator: req.initiator,
		state:     TransOpen,
	}
	key := transKey{pd: ta.pd, tv: ta.tv, initiator: ta.initiator}
	ta.link.transactions[key] = ta

	logrus.WithFields(logrus.Fields{
		"protocol":  h.protocols[ta.pd].name,
		"tv":        ta.tv,
		"initiator": ta.initiator,
	}).Debug("transaction confirmed")
}

// closeTransaction releases the transaction identifier and requests a
// link release when the last transaction closes.
func (h *Handle) closeTransaction(ta *Transaction, mode ReleaseMode) {
	if ta.link == nil {
		return
	}
	key := transKey{pd: ta.pd, tv: ta.tv, initiator: ta.initiator}
	delete(ta.link.transactions, key)

	logrus.WithFields(logrus.Fields{
		"tv":        ta.tv,
		"initiator": ta.initiator,
	}).Debug("transaction closed")

	if len(ta.link.transactions) == 0 {
		h.ops.LCE.Release(ta.link, mode)
		delete(h.links, ta.link.ipui.String())
	}
	ta.link = nil
}

// send serializes a message through the codec and hands it to the
// lower link: the message type octet followed by the IE stream.
func (h *Handle) send(ta *Transaction, mdesc *sfmt.MsgDesc, col *sfmt.Collection, msgType uint8) error {
	mb := mbuf.New()
	mb.Type = msgType
	if err := mb.AppendByte(msgType); err != nil {
		return err
	}
	if err := sfmt.BuildMessage(mdesc, h.txDirection(), col, mb); err != nil {
		return err
	}
	if err := limits.ValidateMessageSize(mb.Data()); err != nil {
		return err
	}
	return h.ops.LCE.Send(ta.link, ta.pd, ta.tv, ta.initiator, mb)
}

// Receive demultiplexes one inbound message. The buffer starts with
// the message type octet; the protocol discriminator, transaction
// value and initiator role come from the link header decoded below
// this library. Messages for open transactions go to the protocol's
// receive handler; others open a prospective transaction.
func (h *Handle) Receive(ipui *identity.IPUI, pd Protocol, tv uint8, initiator Role, mb *mbuf.Buffer) {
	p, ok := h.protocols[pd]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"pd": fmt.Sprintf("%#x", uint8(pd)),
		}).Debug("message for unknown protocol dropped")
		return
	}

	data, err := mb.Pull(1)
	if err != nil {
		logrus.Debug("message without type octet dropped")
		return
	}
	mb.Type = data[0]

	l := h.link(ipui)
	key := transKey{pd: pd, tv: tv, initiator: initiator}
	if ta, open := l.transactions[key]; open {
		if p.rcv != nil {
			p.rcv(h, ta, mb)
		}
		return
	}

	if p.open == nil {
		logrus.WithFields(logrus.Fields{
			"protocol": p.name,
		}).Debug("message for protocol without open handler dropped")
		return
	}
	if l.countTransactions(pd, initiator) >= p.maxTransactions {
		logrus.WithFields(logrus.Fields{
			"protocol": p.name,
			"tv":       tv,
		}).Debug("inbound transaction rejected: ceiling reached")
		return
	}

	req := &Transaction{
		link:      l,
		pd:        pd,
		tv:        tv,
		initiator: initiator,
		state:     TransUninitiated,
	}
	p.open(h, req, mb)
}

// LinkShutdown tears down a data link: every open transaction's
// shutdown hook runs, letting the protocols deliver failure
// notifications to the application.
func (h *Handle) LinkShutdown(ipui *identity.IPUI) {
	l, ok := h.links[ipui.String()]
	if !ok {
		return
	}
	logrus.WithFields(logrus.Fields{
		"ipui": ipui.String(),
	}).Debug("link shutdown")

	for _, ta := range l.transactions {
		if p, ok := h.protocols[ta.pd]; ok && p.shutdown != nil {
			p.shutdown(h, ta)
		}
	}
}
