package sfmt

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Type is the wire identifier of an information element.
//
// Fixed-length IEs have the high bit set: single-octet elements encode
// a 3 bit identifier plus a 4 bit value in one octet, the double-octet
// family (0xe0) carries a second value octet, and the extension family
// (0xa0) disambiguates a group of empty single-octet elements through
// the value bits.
type Type uint8

// Fixed-length IE framing.
const (
	ieFixedLen     = 0x80
	ieFixedIDMask  = 0x70
	ieFixedValMask = 0x0f
)

// Fixed-length IE identifiers.
const (
	IEReserved           Type = 0x80
	IEShift              Type = 0x90
	ieExtPrefix          Type = 0xa0
	IESendingComplete    Type = 0xa1
	IEDelimiterRequest   Type = 0xa2
	IEUseTPUI            Type = 0xa3
	IERepeatIndicator    Type = 0xd0
	ieDoubleOctetElement Type = 0xe0
	IEBasicService       Type = 0xe0
	IEReleaseReason      Type = 0xe2
	IESignal             Type = 0xe4
	IETimerRestart       Type = 0xe5
	IETestHookControl    Type = 0xe6
	IESingleDisplay      Type = 0xe8
	IESingleKeypad       Type = 0xe9
)

// Variable-length IE identifiers.
const (
	IEInfoType               Type = 0x01
	IEIdentityType           Type = 0x02
	IEPortableIdentity       Type = 0x05
	IEFixedIdentity          Type = 0x06
	IELocationArea           Type = 0x07
	IENWKAssignedIdentity    Type = 0x09
	IEAuthType               Type = 0x0a
	IEAllocationType         Type = 0x0b
	IERAND                   Type = 0x0c
	IERES                    Type = 0x0d
	IERS                     Type = 0x0e
	IEIWUAttributes          Type = 0x12
	IECallAttributes         Type = 0x13
	IEServiceChangeInfo      Type = 0x16
	IEConnectionAttributes   Type = 0x17
	IECipherInfo             Type = 0x19
	IECallIdentity           Type = 0x1a
	IEConnectionIdentity     Type = 0x1b
	IEFacility               Type = 0x1c
	IEProgressIndicator      Type = 0x1e
	IEMMSGenericHeader       Type = 0x20
	IEMMSObjectHeader        Type = 0x21
	IEMMSExtendedHeader      Type = 0x22
	IETimeDate               Type = 0x23
	IEMultiDisplay           Type = 0x28
	IEMultiKeypad            Type = 0x2c
	IEFeatureActivate        Type = 0x38
	IEFeatureIndicate        Type = 0x39
	IENetworkParameter       Type = 0x41
	IEExtHOIndicator         Type = 0x42
	IEZAPField               Type = 0x52
	IEServiceClass           Type = 0x54
	IEKey                    Type = 0x56
	IERejectReason           Type = 0x60
	IESetupCapability        Type = 0x62
	IETerminalCapability     Type = 0x63
	IEEndToEndCompatibility  Type = 0x64
	IERateParameters         Type = 0x65
	IETransitDelay           Type = 0x66
	IEWindowSize             Type = 0x67
	IECallingPartyNumber     Type = 0x6c
	IECallingPartyName       Type = 0x6d
	IECalledPartyNumber      Type = 0x70
	IECalledPartySubaddr     Type = 0x71
	IEDuration               Type = 0x72
	IESegmentedInfo          Type = 0x75
	IEAlphanumeric           Type = 0x76
	IEIWUToIWU               Type = 0x77
	IEModelIdentifier        Type = 0x78
	IEIWUPacket              Type = 0x7a
	IEEscapeToProprietary    Type = 0x7b
	IECodecList              Type = 0x7c
	IEEventsNotification     Type = 0x7d
	IECallInformation        Type = 0x7e
	IEEscapeForExtension     Type = 0x7f
)

// OctetGroupEnd is the continuation bit terminating an octet group:
// set in the last octet of the group.
const OctetGroupEnd = 0x80

// liveIEs counts parser-allocated IEs that have not yet been released.
// Exposed through LiveIEs for leak accounting in tests.
var liveIEs int64

// Common is embedded in every IE variant and carries its reference
// count. Parser-allocated IEs start with one reference; the count must
// reach zero exactly once.
type Common struct {
	refcnt  int32
	tracked bool
}

func (c *Common) common() *Common { return c }

// Refs returns the current reference count.
func (c *Common) Refs() int32 {
	return atomic.LoadInt32(&c.refcnt)
}

// IE is a parsed or to-be-built information element. The concrete
// variants all live in this package; matching on the concrete type is
// exhaustive.
type IE interface {
	common() *Common
}

// ieInit marks an IE as parser-allocated with one live reference.
func ieInit(ie IE) {
	c := ie.common()
	atomic.StoreInt32(&c.refcnt, 1)
	c.tracked = true
	atomic.AddInt64(&liveIEs, 1)
}

// Hold takes an additional reference on ie and returns it. Holding a
// nil IE is a no-op.
func Hold(ie IE) IE {
	if ie == nil {
		return nil
	}
	atomic.AddInt32(&ie.common().refcnt, 1)
	return ie
}

// Put drops a reference on ie, releasing it when the count reaches
// zero. Application-constructed IEs with no references are unaffected.
func Put(ie IE) {
	if ie == nil {
		return
	}
	c := ie.common()
	if atomic.LoadInt32(&c.refcnt) == 0 {
		return
	}
	switch n := atomic.AddInt32(&c.refcnt, -1); {
	case n == 0:
		if c.tracked {
			atomic.AddInt64(&liveIEs, -1)
		}
	case n < 0:
		logrus.WithFields(logrus.Fields{
			"refcnt": n,
		}).Error("IE released after last reference")
		atomic.StoreInt32(&c.refcnt, 0)
	}
}

// LiveIEs returns the number of parser-allocated IEs that are still
// referenced.
func LiveIEs() int64 {
	return atomic.LoadInt64(&liveIEs)
}
