package dect

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cordless-go/dect/identity"
	"github.com/cordless-go/dect/mbuf"
	"github.com/cordless-go/dect/sfmt"
)

// Role selects the protocol role of a handle: fixed part or portable
// part. The role decides which direction column of the message
// grammars applies for receive and transmit.
type Role uint8

const (
	// RoleFP is the fixed part (base station) role.
	RoleFP Role = iota
	// RolePP is the portable part (handset) role.
	RolePP
)

func (r Role) String() string {
	if r == RoleFP {
		return "FP"
	}
	return "PP"
}

// Ops bundles the application-provided operation vectors.
type Ops struct {
	Event EventOps
	LCE   LCEOps
	CC    CCOps
	MM    MMOps
}

// Config carries the constructor parameters of a handle.
type Config struct {
	Role Role
	// PARI is the primary access rights identity. Its PARK is the
	// fixed identity MNCCSetupReq sends on either role and the
	// default one an FP's MMAccessRightsRes sends.
	PARI identity.ARI
	Ops  *Ops

	// DialUPlane overrides how per-call U-plane sockets are opened.
	// The default dials the kernel's LU1 SAP.
	DialUPlane func(ulei uint32) (int, error)
}

// Handle is the long-lived library context. It owns the data link
// table, whose links hold the open transactions; the application owns the event
// loop the handle's file descriptors and timers are registered with.
type Handle struct {
	role Role
	pari identity.ARI
	ops  *Ops

	links     map[string]*DataLink
	protocols map[Protocol]*protocol

	dialUPlane func(ulei uint32) (int, error)
}

var errNoOps = errors.New("missing ops vector")

// New creates a handle from the configuration and registers the
// protocol entities.
func New(cfg *Config) (*Handle, error) {
	if cfg == nil || cfg.Ops == nil {
		return nil, errNoOps
	}
	if cfg.Ops.Event == nil || cfg.Ops.LCE == nil {
		return nil, fmt.Errorf("%w: event and LCE ops are required", errNoOps)
	}

	h := &Handle{
		role:      cfg.Role,
		pari:      cfg.PARI,
		ops:       cfg.Ops,
		links:      make(map[string]*DataLink),
		protocols:  make(map[Protocol]*protocol),
		dialUPlane: cfg.DialUPlane,
	}
	h.registerProtocols()

	logrus.WithFields(logrus.Fields{
		"role": h.role,
		"pari": h.pari.String(),
	}).Debug("handle created")
	return h, nil
}

// Role returns the protocol role of the handle.
func (h *Handle) Role() Role {
	return h.role
}

// PARI returns the primary access rights identity of an FP handle.
func (h *Handle) PARI() identity.ARI {
	return h.pari
}

// rxDirection is the direction of messages this handle receives.
func (h *Handle) rxDirection() sfmt.Direction {
	if h.role == RoleFP {
		return sfmt.PPToFP
	}
	return sfmt.FPToPP
}

// txDirection is the direction of messages this handle transmits.
func (h *Handle) txDirection() sfmt.Direction {
	if h.role == RoleFP {
		return sfmt.FPToPP
	}
	return sfmt.PPToFP
}

// parseMessage parses an inbound message against the grammar in the
// handle's receive direction.
func (h *Handle) parseMessage(mdesc *sfmt.MsgDesc, mb *mbuf.Buffer) (*sfmt.Collection, error) {
	return sfmt.ParseMessage(mdesc, h.rxDirection(), mb)
}
