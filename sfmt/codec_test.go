package sfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordless-go/dect/identity"
	"github.com/cordless-go/dect/mbuf"
)

// testMsgDesc is a small grammar exercising mandatory, optional,
// forbidden and repeating slots.
var testMsgDesc = MsgDesc{
	Name: "TEST-MESSAGE",
	IEs: []IEDesc{
		{Type: IEPortableIdentity, FPPP: IEMandatory, PPFP: IEMandatory},
		{Type: IEBasicService, FPPP: IEMandatory, PPFP: IEMandatory},
		{Type: IETerminalCapability, FPPP: IENone, PPFP: IEOptional},
		{Type: IESingleDisplay, FPPP: IEOptional, PPFP: IENone},
		{Type: IESingleKeypad, FPPP: IENone, PPFP: IEOptional},
		{Type: IERepeatIndicator, FPPP: IEOptional, PPFP: IEOptional},
		{Type: IEIWUToIWU, FPPP: IEOptional, PPFP: IEOptional, Flags: FlagRepeat},
		{Type: IEEscapeToProprietary, FPPP: IEOptional, PPFP: IEOptional},
	},
}

func testPortableIdentity() *PortableIdentity {
	return &PortableIdentity{
		Type: PortableIDIPUI,
		IPUI: identity.IPUI{
			Put:  identity.IPUIN,
			Bits: 40,
			IPEI: identity.IPEI{EMC: 0x1234, PSN: 0x6789a},
		},
	}
}

func TestParseIEHeaderTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{0x77},            // variable length without length octet
		{0x77, 0x05, 0xaa}, // payload shorter than announced
		{0xe0},            // double octet family without value octet
	}
	for _, wire := range cases {
		mb := mbuf.New()
		require.NoError(t, mb.Append(wire))
		var ie RawIE
		assert.Error(t, ParseIEHeader(&ie, mb), "wire %x", wire)
	}
}

func TestParseIEHeaderFraming(t *testing.T) {
	mb := mbuf.New()
	require.NoError(t, mb.Append([]byte{0xa1})) // SENDING-COMPLETE
	var ie RawIE
	require.NoError(t, ParseIEHeader(&ie, mb))
	assert.Equal(t, IESendingComplete, ie.ID)
	assert.Equal(t, 1, ie.Len)

	mb.Reset()
	require.NoError(t, mb.Append([]byte{0xe0 | 0x02, 0x31})) // RELEASE-REASON
	require.NoError(t, ParseIEHeader(&ie, mb))
	assert.Equal(t, IEReleaseReason, ie.ID)
	assert.Equal(t, 2, ie.Len)

	mb.Reset()
	require.NoError(t, mb.Append([]byte{0x77, 0x01, 0xaa})) // IWU-TO-IWU
	require.NoError(t, ParseIEHeader(&ie, mb))
	assert.Equal(t, IEIWUToIWU, ie.ID)
	assert.Equal(t, 3, ie.Len)
}

// roundTripIE builds ie under slot type t, parses the wire image back
// and rebuilds it, requiring bit-exact equality.
func roundTripIE(t *testing.T, slot Type, ie IE) {
	t.Helper()

	mb := mbuf.New()
	require.NoError(t, BuildIE(slot, ie, mb))
	wire := make([]byte, mb.Len())
	copy(wire, mb.Data())

	var raw RawIE
	require.NoError(t, ParseIEHeader(&raw, mb))
	parsed, err := ParseIE(&raw)
	require.NoError(t, err, "parse %s", Name(raw.ID))

	out := mbuf.New()
	require.NoError(t, BuildIE(slot, parsed, out))
	assert.True(t, bytes.Equal(wire, out.Data()),
		"%s round trip: %x != %x", Name(raw.ID), wire, out.Data())
	Put(parsed)
}

func TestIERoundTrips(t *testing.T) {
	samples := []struct {
		name string
		slot Type
		ie   IE
	}{
		{"basic service", IEBasicService, &BasicService{Class: CallClassNormal, Service: ServiceBasicSpeech}},
		{"release reason", IEReleaseReason, &ReleaseReason{Reason: ReleaseUserBusy}},
		{"signal", IESignal, &Signal{Code: SignalAlertingBase + AlertingPattern2}},
		{"sending complete", IESendingComplete, &SendingComplete{}},
		{"single display", IESingleDisplay, &Display{Info: []byte{'7'}}},
		{"multi display", IESingleDisplay, &Display{Info: []byte("hello")}},
		{"single keypad", IESingleKeypad, &Keypad{Info: []byte{'5'}}},
		{"multi keypad", IESingleKeypad, &Keypad{Info: []byte("12345")}},
		{"info type", IEInfoType, &InfoType{Types: []InfoParameter{InfoLocateSuggest, InfoIPv4Address}}},
		{"identity type", IEIdentityType, &IdentityType{Group: IdentityGroupPortable, Type: 0x01}},
		{"portable identity", IEPortableIdentity, testPortableIdentity()},
		{"fixed identity", IEFixedIdentity, &FixedIdentity{
			Type: FixedIDPARK,
			ARI:  identity.ARI{Class: identity.ARIClassA, EMC: 0x08ae, FPN: 0x1ab2f},
		}},
		{"location area", IELocationArea, &LocationArea{Type: 0x1, Level: 36}},
		{"allocation type", IEAllocationType, &AllocationType{AuthID: AuthDSAA, AuthKeyNum: 8, AuthCodeNum: 1}},
		{"auth type", IEAuthType, &AuthType{
			AuthID:       AuthDSAA,
			AuthKeyType:  KeyUserAuthenticationKey,
			AuthKeyNum:   8,
			CipherKeyNum: 1,
		}},
		{"auth type with default cipher key", IEAuthType, &AuthType{
			AuthID:       AuthDSAA,
			AuthKeyType:  KeyAuthenticationCode,
			AuthKeyNum:   8,
			Flags:        AuthFlagDEF,
			CipherKeyNum: 2,
			DefCKIndex:   0x1701,
		}},
		{"rand", IERAND, &AuthValue{Value: 0x0123456789abcdef}},
		{"rs", IERS, &AuthValue{Value: 0xfedcba9876543210}},
		{"res", IERES, &AuthRes{Value: 0xcafe1234}},
		{"cipher info", IECipherInfo, &CipherInfo{
			Enable:        true,
			AlgID:         CipherStandard1,
			CipherKeyType: CipherDerivedKey,
			CipherKeyNum:  8,
		}},
		{"progress indicator", IEProgressIndicator, &ProgressIndicator{
			Location: LocationPrivateNetLocalUser,
			Progress: ProgressInbandNowAvailable,
		}},
		{"time and date", IETimeDate, &TimeDate{
			Coding: TimeDateTimeAndDate,
			Year:   0x26, Month: 0x08, Day: 0x05,
			Hour: 0x14, Minute: 0x30, Second: 0x00, Zone: 0x08,
		}},
		{"date only", IETimeDate, &TimeDate{Coding: TimeDateDate, Year: 0x25, Month: 0x12, Day: 0x31}},
		{"feature activate", IEFeatureActivate, &FeatureActivate{Feature: FeatureRegisterRecall}},
		{"network parameter", IENetworkParameter, &NetworkParameter{
			Discriminator: NetworkParameterDeviceName,
			Data:          []byte("base-7"),
		}},
		{"reject reason", IERejectReason, &RejectReason{Reason: RejectIPUIUnknown}},
		{"setup capability", IESetupCapability, &SetupCapability{PageCapability: 2, SetupCapability: 1}},
		{"terminal capability", IETerminalCapability, &TerminalCapability{
			Display:          DisplayCapabilityFullDisplay,
			Tone:             0x4,
			Echo:             0x2,
			NoiseRejection:   0x2,
			VolumeCtrl:       0x1,
			Slot:             0x09,
			DisplayMemory:    2800,
			DisplayLines:     4,
			DisplayColumns:   16,
			Scrolling:        0x1,
			ProfileIndicator: 0x20 << 56,
			DisplayControl:   0x2,
			DisplayCharsets:  0x01,
		}},
		{"calling party number", IECallingPartyNumber, &CallingPartyNumber{
			Type:         NumberTypeNational,
			NPI:          NPIISDNE164,
			Presentation: PresentationAllowed,
			Screening:    ScreeningNetworkProvided,
			Address:      []byte("5551234"),
		}},
		{"calling party number restricted", IECallingPartyNumber, &CallingPartyNumber{
			Type:         NumberTypeUnknown,
			NPI:          NPIUnknown,
			Presentation: PresentationNotAvailable,
			Address:      []byte{},
		}},
		{"calling party name", IECallingPartyName, &CallingPartyName{
			Presentation: PresentationAllowed,
			Alphabet:     0,
			Screening:    ScreeningUserNotScreened,
			Name:         []byte("Alice"),
		}},
		{"called party number", IECalledPartyNumber, &CalledPartyNumber{
			Type:    NumberTypeSubscriber,
			NPI:     NPIPrivate,
			Address: []byte("42"),
		}},
		{"duration standard", IEDuration, &Duration{Lock: LockNoLimits, Time: TimeLimitStandard}},
		{"duration defined", IEDuration, &Duration{Lock: LockTemporaryUserLimit1, Time: TimeLimitDefined1, Duration: 30}},
		{"iwu to iwu", IEIWUToIWU, &IWUToIWU{SR: true, PD: IWUToIWUPDListAccess, Data: []byte{0x01, 0x02}}},
		{"escape to proprietary", IEEscapeToProprietary, &EscapeToProprietary{
			EMC:     0x1234,
			Content: []byte{0xde, 0xad},
		}},
		{"codec list", IECodecList, &CodecList{
			Negotiation: NegotiationCodec,
			Entries: []CodecEntry{
				{Codec: CodecG726_32kbit, Service: 0x0, Slot: 0x4, CPlane: 0x0},
				{Codec: CodecG722_64kbit, Service: 0x1, Slot: 0x2, CPlane: 0x1},
			},
		}},
	}

	for _, s := range samples {
		t.Run(s.name, func(t *testing.T) {
			roundTripIE(t, s.slot, s.ie)
		})
	}
}

func buildTestMessage(t *testing.T, dir Direction, col *Collection) *mbuf.Buffer {
	t.Helper()
	mb := mbuf.New()
	require.NoError(t, BuildMessage(&testMsgDesc, dir, col, mb))
	return mb
}

func minimalCollection() *Collection {
	col := NewCollection()
	col.Add(IEPortableIdentity, testPortableIdentity())
	col.Add(IEBasicService, &BasicService{Class: CallClassNormal, Service: ServiceBasicSpeech})
	return col
}

func TestMessageRoundTrip(t *testing.T) {
	col := minimalCollection()
	col.Add(IESingleKeypad, &Keypad{Info: []byte("123")})
	mb := buildTestMessage(t, PPToFP, col)
	PutCollection(col)

	wire := make([]byte, mb.Len())
	copy(wire, mb.Data())

	parsed, err := ParseMessage(&testMsgDesc, PPToFP, mb)
	require.NoError(t, err)

	out := mbuf.New()
	require.NoError(t, BuildMessage(&testMsgDesc, PPToFP, parsed, out))
	assert.Equal(t, wire, out.Data())
	PutCollection(parsed)
}

func TestMandatoryIEMissing(t *testing.T) {
	col := NewCollection()
	col.Add(IEBasicService, &BasicService{Class: CallClassNormal, Service: ServiceBasicSpeech})
	mb := mbuf.New()
	err := BuildMessage(&testMsgDesc, PPToFP, col, mb)
	assert.ErrorIs(t, err, ErrMandatoryIEMissing)
	PutCollection(col)

	// A message whose first IE is not the mandatory portable
	// identity is rejected on parse.
	mb.Reset()
	require.NoError(t, BuildIE(IEBasicService, &BasicService{
		Class:   CallClassNormal,
		Service: ServiceBasicSpeech,
	}, mb))
	_, err = ParseMessage(&testMsgDesc, PPToFP, mb)
	assert.ErrorIs(t, err, ErrMandatoryIEMissing)
}

func TestDirectionPolicing(t *testing.T) {
	// TERMINAL-CAPABILITY is forbidden FP to PP in the test grammar.
	col := minimalCollection()
	defer PutCollection(col)
	col.Add(IETerminalCapability, &TerminalCapability{Display: DisplayCapabilityNumeric})

	mb := mbuf.New()
	err := BuildMessage(&testMsgDesc, FPToPP, col, mb)
	assert.ErrorIs(t, err, ErrInvalidIE)

	// The same message is accepted PP to FP, and its wire image is
	// then rejected when parsed as FP to PP traffic.
	mb.Reset()
	require.NoError(t, BuildMessage(&testMsgDesc, PPToFP, col, mb))
	_, err = ParseMessage(&testMsgDesc, FPToPP, mb)
	assert.ErrorIs(t, err, ErrInvalidIE)
}

func TestEmptyVariableLengthIETreatedAsAbsent(t *testing.T) {
	col := minimalCollection()
	mb := buildTestMessage(t, PPToFP, col)
	PutCollection(col)

	// Append an empty IWU-TO-IWU (header only) and a trailing
	// escape to proprietary that must still be reached.
	require.NoError(t, mb.Append([]byte{byte(IEIWUToIWU), 0x00}))
	require.NoError(t, BuildIE(IEEscapeToProprietary, &EscapeToProprietary{
		EMC:     0x0042,
		Content: []byte{0x01},
	}, mb))

	parsed, err := ParseMessage(&testMsgDesc, PPToFP, mb)
	require.NoError(t, err)
	defer PutCollection(parsed)

	assert.Equal(t, 0, parsed.GetList(IEIWUToIWU).Len(), "empty IE not treated as absent")
	assert.NotNil(t, parsed.Get(IEEscapeToProprietary), "IE after empty IE not parsed")
}

func TestRepeatIndicatorFraming(t *testing.T) {
	// A single-element list serializes without a repeat indicator.
	col := minimalCollection()
	l := NewList(ListNormal)
	l.Add(&IWUToIWU{PD: IWUToIWUPDUserSpecific, Data: []byte{0x01}})
	col.AddList(IEIWUToIWU, l)
	mb := buildTestMessage(t, PPToFP, col)
	PutCollection(col)

	for _, octet := range mb.Data() {
		assert.NotEqual(t, byte(IERepeatIndicator), octet&0xf0|octet&0x80,
			"unexpected repeat indicator in single-element serialization")
	}
	parsed, err := ParseMessage(&testMsgDesc, PPToFP, mb)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.GetList(IEIWUToIWU).Len())
	PutCollection(parsed)

	// Two elements are introduced by a repeat indicator.
	col = minimalCollection()
	l = NewList(ListNormal)
	l.Add(&IWUToIWU{PD: IWUToIWUPDUserSpecific, Data: []byte{0x01}})
	l.Add(&IWUToIWU{PD: IWUToIWUPDUserSpecific, Data: []byte{0x02}})
	col.AddList(IEIWUToIWU, l)
	mb = buildTestMessage(t, PPToFP, col)
	PutCollection(col)

	wire := make([]byte, mb.Len())
	copy(wire, mb.Data())

	// Locate the first IWU-TO-IWU: the octet before it must be the
	// repeat indicator.
	idx := bytes.IndexByte(wire, byte(IEIWUToIWU))
	require.Greater(t, idx, 0)
	assert.Equal(t, byte(IERepeatIndicator)|byte(ListNormal), wire[idx-1])

	parsed, err = ParseMessage(&testMsgDesc, PPToFP, mb)
	require.NoError(t, err)
	defer PutCollection(parsed)

	rl := parsed.GetList(IEIWUToIWU)
	require.Equal(t, 2, rl.Len())
	assert.Equal(t, ListNormal, rl.Kind)
	first := rl.Elems[0].(*IWUToIWU)
	second := rl.Elems[1].(*IWUToIWU)
	assert.Equal(t, []byte{0x01}, first.Data, "list order not preserved")
	assert.Equal(t, []byte{0x02}, second.Data, "list order not preserved")

	// And the parsed list round trips to the identical wire image.
	out := mbuf.New()
	require.NoError(t, BuildMessage(&testMsgDesc, PPToFP, parsed, out))
	assert.Equal(t, wire, out.Data())
}

func TestCorruptOptionalIEIgnored(t *testing.T) {
	col := minimalCollection()
	mb := buildTestMessage(t, PPToFP, col)
	PutCollection(col)

	// An over-long keypad is correctly framed but semantically
	// malformed; the parser must tolerate it.
	corrupt := make([]byte, 72)
	corrupt[0] = byte(IEMultiKeypad)
	corrupt[1] = 70
	require.NoError(t, mb.Append(corrupt))

	parsed, err := ParseMessage(&testMsgDesc, PPToFP, mb)
	require.NoError(t, err)
	defer PutCollection(parsed)

	assert.Nil(t, parsed.Get(IESingleKeypad), "corrupt optional IE delivered")
	assert.NotNil(t, parsed.Get(IEPortableIdentity))
}

func TestCorruptMandatoryIERejected(t *testing.T) {
	mb := mbuf.New()
	// A portable identity whose type octet lacks the group-end bit.
	require.NoError(t, mb.Append([]byte{byte(IEPortableIdentity), 0x07, 0x00, 0xa8, 0x11, 0x22, 0x33, 0x44, 0x55}))
	_, err := ParseMessage(&testMsgDesc, PPToFP, mb)
	assert.ErrorIs(t, err, ErrMandatoryIEError)
}

func TestReferenceCounting(t *testing.T) {
	baseline := LiveIEs()

	col := minimalCollection()
	col.Add(IESingleDisplay, &Display{Info: []byte("x")})
	mb := buildTestMessage(t, FPToPP, col)
	PutCollection(col)

	parsed, err := ParseMessage(&testMsgDesc, FPToPP, mb)
	require.NoError(t, err)
	assert.Greater(t, LiveIEs(), baseline)

	// Holding an IE keeps it alive past the collection.
	pi := parsed.Get(IEPortableIdentity)
	Hold(pi)
	PutCollection(parsed)
	assert.Equal(t, baseline+1, LiveIEs())
	assert.Equal(t, int32(1), pi.(*PortableIdentity).Refs())

	Put(pi)
	assert.Equal(t, baseline, LiveIEs(), "allocations do not balance frees")
	assert.Equal(t, int32(0), pi.(*PortableIdentity).Refs())

	// A stray release must not drive the count negative.
	Put(pi)
	assert.Equal(t, baseline, LiveIEs())
}
