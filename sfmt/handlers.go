package sfmt

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cordless-go/dect/identity"
)

// The per-IE codec routines below implement the octet-level semantics
// of EN 300 175-5 section 7. Parse routines receive the full wire
// octets of one IE (header included); build routines fill the value
// bits of octet 0 (single-octet IEs), octet 1 (double-octet IEs) or
// the payload from octet index 2 (variable-length IEs, which also set
// the total length), the identifier and length octets being written
// by the framing layer afterwards.

func parseRepeatIndicator(src *RawIE) (IE, error) {
	kind := ListKind(src.Data[0] & ieFixedValMask)
	switch kind {
	case ListNormal, ListPrioritized:
		return &List{Kind: kind}, nil
	default:
		return nil, fmt.Errorf("invalid list type %#x", uint8(kind))
	}
}

func buildRepeatIndicator(dst *RawIE, ie IE) error {
	l, ok := ie.(*List)
	if !ok {
		return errors.New("repeat indicator requires a list")
	}
	dst.Data[0] = byte(l.Kind)
	return nil
}

func parseSendingComplete(src *RawIE) (IE, error)  { return &SendingComplete{}, nil }
func parseDelimiterRequest(src *RawIE) (IE, error) { return &DelimiterRequest{}, nil }
func parseUseTPUI(src *RawIE) (IE, error)          { return &UseTPUI{}, nil }

func buildEmptySingleOctet(dst *RawIE, ie IE) error {
	dst.Data[0] = 0
	return nil
}

const basicServiceCallClassShift = 4

func parseBasicService(src *RawIE) (IE, error) {
	return &BasicService{
		Class:   CallClass(src.Data[1] >> basicServiceCallClassShift),
		Service: Service(src.Data[1] & 0x0f),
	}, nil
}

func buildBasicService(dst *RawIE, ie IE) error {
	bs, ok := ie.(*BasicService)
	if !ok {
		return errors.New("not a basic service IE")
	}
	dst.Data[1] = byte(bs.Class)<<basicServiceCallClassShift | byte(bs.Service)
	return nil
}

func parseReleaseReason(src *RawIE) (IE, error) {
	return &ReleaseReason{Reason: ReleaseReasonCode(src.Data[1])}, nil
}

func buildReleaseReason(dst *RawIE, ie IE) error {
	rr, ok := ie.(*ReleaseReason)
	if !ok {
		return errors.New("not a release reason IE")
	}
	dst.Data[1] = byte(rr.Reason)
	return nil
}

func parseSignal(src *RawIE) (IE, error) {
	return &Signal{Code: SignalCode(src.Data[1])}, nil
}

func buildSignal(dst *RawIE, ie IE) error {
	s, ok := ie.(*Signal)
	if !ok {
		return errors.New("not a signal IE")
	}
	dst.Data[1] = byte(s.Code)
	return nil
}

func parseTimerRestart(src *RawIE) (IE, error) {
	code := src.Data[1]
	switch code {
	case TimerRestartValue, TimerStopValue:
		return &TimerRestart{Code: code}, nil
	default:
		return nil, fmt.Errorf("invalid timer restart code %#x", code)
	}
}

func parseSingleDisplay(src *RawIE) (IE, error) {
	return &Display{Info: []byte{src.Data[1]}}, nil
}

func buildSingleDisplay(dst *RawIE, ie IE) error {
	d, ok := ie.(*Display)
	if !ok || len(d.Info) == 0 {
		return errors.New("not a single display IE")
	}
	dst.Data[1] = d.Info[0]
	return nil
}

func parseSingleKeypad(src *RawIE) (IE, error) {
	return &Keypad{Info: []byte{src.Data[1]}}, nil
}

func buildSingleKeypad(dst *RawIE, ie IE) error {
	k, ok := ie.(*Keypad)
	if !ok || len(k.Info) == 0 {
		return errors.New("not a single keypad IE")
	}
	dst.Data[1] = k.Info[0]
	return nil
}

// maxInfoLen bounds the character contents of display and keypad IEs.
const maxInfoLen = 64

func parseMultiDisplay(src *RawIE) (IE, error) {
	if src.Len-2 > maxInfoLen {
		return nil, fmt.Errorf("display too long: %d octets", src.Len-2)
	}
	d := &Display{Info: make([]byte, src.Len-2)}
	copy(d.Info, src.Data[2:])
	return d, nil
}

func buildMultiDisplay(dst *RawIE, ie IE) error {
	d, ok := ie.(*Display)
	if !ok {
		return errors.New("not a display IE")
	}
	copy(dst.Data[2:], d.Info)
	dst.Len = len(d.Info) + 2
	return nil
}

func parseMultiKeypad(src *RawIE) (IE, error) {
	if src.Len-2 > maxInfoLen {
		return nil, fmt.Errorf("keypad too long: %d octets", src.Len-2)
	}
	k := &Keypad{Info: make([]byte, src.Len-2)}
	copy(k.Info, src.Data[2:])
	return k, nil
}

func buildMultiKeypad(dst *RawIE, ie IE) error {
	k, ok := ie.(*Keypad)
	if !ok {
		return errors.New("not a keypad IE")
	}
	copy(dst.Data[2:], k.Info)
	dst.Len = len(k.Info) + 2
	return nil
}

func parseInfoType(src *RawIE) (IE, error) {
	it := &InfoType{}
	for n := 2; n < src.Len; n++ {
		it.Types = append(it.Types, InfoParameter(src.Data[n]&^byte(OctetGroupEnd)))
		if src.Data[n]&OctetGroupEnd != 0 {
			break
		}
	}
	return it, nil
}

func buildInfoType(dst *RawIE, ie IE) error {
	it, ok := ie.(*InfoType)
	if !ok || len(it.Types) == 0 {
		return errors.New("not an info type IE")
	}
	n := 2
	for _, t := range it.Types {
		dst.Data[n] = byte(t)
		n++
	}
	dst.Data[n-1] |= OctetGroupEnd
	dst.Len = n
	return nil
}

func parseIdentityType(src *RawIE) (IE, error) {
	if src.Len < 4 {
		return nil, ErrTruncated
	}
	return &IdentityType{
		Group: IdentityGroup(src.Data[2] &^ byte(OctetGroupEnd)),
		Type:  src.Data[3] &^ byte(OctetGroupEnd),
	}, nil
}

func buildIdentityType(dst *RawIE, ie IE) error {
	it, ok := ie.(*IdentityType)
	if !ok {
		return errors.New("not an identity type IE")
	}
	dst.Data[2] = byte(it.Group) | OctetGroupEnd
	dst.Data[3] = it.Type | OctetGroupEnd
	dst.Len = 4
	return nil
}

const portableIdentityMinSize = 4

func parsePortableIdentity(src *RawIE) (IE, error) {
	if src.Len < portableIdentityMinSize {
		return nil, ErrTruncated
	}
	if src.Data[2]&OctetGroupEnd == 0 {
		return nil, errors.New("portable identity: unterminated type octet")
	}
	pi := &PortableIdentity{
		Type: PortableIdentityType(src.Data[2] &^ byte(OctetGroupEnd)),
	}
	if src.Data[3]&OctetGroupEnd == 0 {
		return nil, errors.New("portable identity: unterminated length octet")
	}
	bits := src.Data[3] &^ byte(OctetGroupEnd)

	switch pi.Type {
	case PortableIDIPUI, PortableIDIPEI:
		ipui, err := identity.ParseIPUI(src.Data[4:src.Len], bits)
		if err != nil {
			return nil, err
		}
		pi.IPUI = ipui
		return pi, nil
	case PortableIDTPUI:
		if src.Len < 7 {
			return nil, ErrTruncated
		}
		pi.TPUI.Type = identity.TPUIIndividualAssigned
		pi.TPUI.Value = uint32(src.Data[4])<<16 | uint32(src.Data[5])<<8 | uint32(src.Data[6])
		return pi, nil
	default:
		return nil, fmt.Errorf("portable identity: invalid type %#x", uint8(pi.Type))
	}
}

func buildPortableIdentity(dst *RawIE, ie IE) error {
	pi, ok := ie.(*PortableIdentity)
	if !ok {
		return errors.New("not a portable identity IE")
	}

	var bits uint8
	switch pi.Type {
	case PortableIDIPUI, PortableIDIPEI:
		bits = identity.BuildIPUI(&pi.IPUI, dst.Data[4:])
		if bits == 0 {
			return errors.New("portable identity: cannot encode IPUI")
		}
	case PortableIDTPUI:
		tpui := pi.TPUI.Build()
		dst.Data[4] = byte(tpui >> 16)
		dst.Data[5] = byte(tpui >> 8)
		dst.Data[6] = byte(tpui)
		bits = 20
	default:
		return fmt.Errorf("portable identity: invalid type %#x", uint8(pi.Type))
	}

	dst.Data[3] = OctetGroupEnd | bits
	dst.Data[2] = OctetGroupEnd | byte(pi.Type)
	dst.Len = 4 + int(bits+7)/8
	return nil
}

const fixedIdentityMinSize = 4

func parseFixedIdentity(src *RawIE) (IE, error) {
	if src.Len < fixedIdentityMinSize {
		return nil, ErrTruncated
	}
	if src.Data[2]&OctetGroupEnd == 0 {
		return nil, errors.New("fixed identity: unterminated type octet")
	}
	fi := &FixedIdentity{
		Type: FixedIdentityType(src.Data[2] &^ byte(OctetGroupEnd)),
	}
	if src.Data[3]&OctetGroupEnd == 0 {
		return nil, errors.New("fixed identity: unterminated length octet")
	}

	var v uint64
	for i := 0; i < 8 && 4+i < src.Len; i++ {
		v |= uint64(src.Data[4+i]) << (56 - 8*i)
	}
	ari, _, err := identity.ParseARI(v << 1)
	if err != nil {
		return nil, err
	}
	fi.ARI = ari

	switch fi.Type {
	case FixedIDARI, FixedIDPARK, FixedIDARIRPN, FixedIDARIWRS:
		return fi, nil
	default:
		return nil, fmt.Errorf("fixed identity: invalid type %#x", uint8(fi.Type))
	}
}

func buildFixedIdentity(dst *RawIE, ie IE) error {
	fi, ok := ie.(*FixedIdentity)
	if !ok {
		return errors.New("not a fixed identity IE")
	}
	v, bits := identity.BuildARI(&fi.ARI)
	if bits == 0 {
		return errors.New("fixed identity: cannot encode ARI")
	}
	v >>= 1
	dst.Data[4] = byte(v >> 56)
	dst.Data[5] = byte(v >> 48)
	dst.Data[6] = byte(v >> 40)
	dst.Data[7] = byte(v >> 32)
	dst.Data[8] = byte(v >> 24)
	dst.Data[3] = OctetGroupEnd | byte(bits+1)
	dst.Data[2] = OctetGroupEnd | byte(fi.Type)
	dst.Len = 9
	return nil
}

func parseLocationArea(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	return &LocationArea{
		Type:  (src.Data[2] & locationAreaTypeMask) >> locationAreaTypeShift,
		Level: src.Data[2] & locationLevelMask,
	}, nil
}

func buildLocationArea(dst *RawIE, ie IE) error {
	la, ok := ie.(*LocationArea)
	if !ok {
		return errors.New("not a location area IE")
	}
	dst.Data[2] = la.Type<<locationAreaTypeShift | la.Level
	dst.Len = 3
	return nil
}

func parseAllocationType(src *RawIE) (IE, error) {
	if src.Len < 4 {
		return nil, ErrTruncated
	}
	return &AllocationType{
		AuthID:      AuthAlgorithm(src.Data[2]),
		AuthKeyNum:  (src.Data[3] & 0xf0) >> 4,
		AuthCodeNum: src.Data[3] & 0x0f,
	}, nil
}

func buildAllocationType(dst *RawIE, ie IE) error {
	at, ok := ie.(*AllocationType)
	if !ok {
		return errors.New("not an allocation type IE")
	}
	dst.Data[2] = byte(at.AuthID)
	dst.Data[3] = at.AuthKeyNum<<4 | at.AuthCodeNum
	dst.Len = 4
	return nil
}

func parseAuthType(src *RawIE) (IE, error) {
	at := &AuthType{}
	n := 2

	if src.Len < 5 {
		return nil, ErrTruncated
	}
	at.AuthID = AuthAlgorithm(src.Data[n])
	n++
	if at.AuthID == AuthProprietary {
		if src.Len < n+1 {
			return nil, ErrTruncated
		}
		at.ProprietaryAuthID = src.Data[n]
		n++
	}

	if src.Len < n+2 {
		return nil, ErrTruncated
	}
	at.AuthKeyType = AuthKeyType((src.Data[n] & 0xf0) >> 4)
	at.AuthKeyNum = src.Data[n] & 0x0f
	n++

	at.Flags = src.Data[n] & 0xf0
	at.CipherKeyNum = src.Data[n] & 0x0f
	n++

	// Octets 5a and 5b are only present if the DEF flag is set.
	if at.Flags&AuthFlagDEF != 0 {
		if src.Len < n+2 {
			return nil, ErrTruncated
		}
		at.DefCKIndex = uint16(src.Data[n])<<8 | uint16(src.Data[n+1])
	}
	return at, nil
}

func buildAuthType(dst *RawIE, ie IE) error {
	at, ok := ie.(*AuthType)
	if !ok {
		return errors.New("not an auth type IE")
	}
	n := 2

	dst.Data[n] = byte(at.AuthID)
	n++
	if at.AuthID == AuthProprietary {
		dst.Data[n] = at.ProprietaryAuthID
		n++
	}

	dst.Data[n] = byte(at.AuthKeyType)<<4 | at.AuthKeyNum
	n++
	dst.Data[n] = at.Flags | at.CipherKeyNum
	n++

	// Octets 5a and 5b are only present if the DEF flag is set.
	if at.Flags&AuthFlagDEF != 0 {
		dst.Data[n] = byte(at.DefCKIndex >> 8)
		dst.Data[n+1] = byte(at.DefCKIndex)
		n += 2
	}
	dst.Len = n
	return nil
}

func parseAuthValue(src *RawIE) (IE, error) {
	if src.Len != 10 {
		return nil, fmt.Errorf("auth value: invalid length %d", src.Len)
	}
	return &AuthValue{Value: binary.BigEndian.Uint64(src.Data[2:10])}, nil
}

func buildAuthValue(dst *RawIE, ie IE) error {
	av, ok := ie.(*AuthValue)
	if !ok {
		return errors.New("not an auth value IE")
	}
	binary.BigEndian.PutUint64(dst.Data[2:10], av.Value)
	dst.Len = 10
	return nil
}

func parseAuthRes(src *RawIE) (IE, error) {
	if src.Len != 6 {
		return nil, fmt.Errorf("auth res: invalid length %d", src.Len)
	}
	return &AuthRes{Value: binary.BigEndian.Uint32(src.Data[2:6])}, nil
}

func buildAuthRes(dst *RawIE, ie IE) error {
	ar, ok := ie.(*AuthRes)
	if !ok {
		return errors.New("not an auth res IE")
	}
	binary.BigEndian.PutUint32(dst.Data[2:6], ar.Value)
	dst.Len = 6
	return nil
}

func parseCipherInfo(src *RawIE) (IE, error) {
	if src.Len != 4 {
		return nil, fmt.Errorf("cipher info: invalid length %d", src.Len)
	}
	return &CipherInfo{
		Enable:        src.Data[2]&0x80 != 0,
		AlgID:         CipherAlgorithm(src.Data[2] & 0x7f),
		CipherKeyType: CipherKeyType((src.Data[3] & 0xf0) >> 4),
		CipherKeyNum:  src.Data[3] & 0x0f,
	}, nil
}

func buildCipherInfo(dst *RawIE, ie IE) error {
	ci, ok := ie.(*CipherInfo)
	if !ok {
		return errors.New("not a cipher info IE")
	}
	dst.Data[2] = byte(ci.AlgID)
	if ci.Enable {
		dst.Data[2] |= 0x80
	}
	dst.Data[3] = byte(ci.CipherKeyType)<<4 | ci.CipherKeyNum
	dst.Len = 4
	return nil
}

func parseServiceChangeInfo(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	return &ServiceChangeInfo{
		Master: src.Data[2]&0x40 != 0,
		Mode:   src.Data[2] & 0x0f,
	}, nil
}

func parseFacility(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	f := &Facility{
		Service:    src.Data[2] & 0x1f,
		Components: make([]byte, src.Len-3),
	}
	copy(f.Components, src.Data[3:])
	return f, nil
}

const progressIndicatorLocationMask = 0x0f

func parseProgressIndicator(src *RawIE) (IE, error) {
	if src.Len < 4 {
		return nil, ErrTruncated
	}
	return &ProgressIndicator{
		Location: src.Data[2] & progressIndicatorLocationMask,
		Progress: src.Data[3] &^ byte(OctetGroupEnd),
	}, nil
}

func buildProgressIndicator(dst *RawIE, ie IE) error {
	pi, ok := ie.(*ProgressIndicator)
	if !ok {
		return errors.New("not a progress indicator IE")
	}
	dst.Data[3] = OctetGroupEnd | pi.Progress
	dst.Data[2] = OctetGroupEnd | pi.Location
	dst.Len = 4
	return nil
}

func parseTimeDate(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	td := &TimeDate{
		Coding:         TimeDateCoding(src.Data[2] >> 6),
		Interpretation: src.Data[2] & 0x3f,
	}
	n := 3

	if td.Coding&TimeDateDate != 0 {
		if src.Len < n+3 {
			return nil, ErrTruncated
		}
		td.Year = src.Data[n]
		td.Month = src.Data[n+1]
		td.Day = src.Data[n+2]
		n += 3
	}
	if td.Coding&TimeDateTime != 0 {
		if src.Len < n+4 {
			return nil, ErrTruncated
		}
		td.Hour = src.Data[n]
		td.Minute = src.Data[n+1]
		td.Second = src.Data[n+2]
		td.Zone = src.Data[n+3]
	}
	return td, nil
}

func buildTimeDate(dst *RawIE, ie IE) error {
	td, ok := ie.(*TimeDate)
	if !ok {
		return errors.New("not a time/date IE")
	}
	dst.Data[2] = byte(td.Coding)<<6 | td.Interpretation
	n := 3

	if td.Coding&TimeDateDate != 0 {
		dst.Data[n] = td.Year
		dst.Data[n+1] = td.Month
		dst.Data[n+2] = td.Day
		n += 3
	}
	if td.Coding&TimeDateTime != 0 {
		dst.Data[n] = td.Hour
		dst.Data[n+1] = td.Minute
		dst.Data[n+2] = td.Second
		dst.Data[n+3] = td.Zone
		n += 4
	}
	dst.Len = n
	return nil
}

func parseFeatureActivate(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	return &FeatureActivate{
		Feature: Feature(src.Data[2] &^ byte(OctetGroupEnd)),
	}, nil
}

func buildFeatureActivate(dst *RawIE, ie IE) error {
	fa, ok := ie.(*FeatureActivate)
	if !ok {
		return errors.New("not a feature activate IE")
	}
	dst.Data[2] = byte(fa.Feature) | OctetGroupEnd
	dst.Len = 3
	return nil
}

func parseFeatureIndicate(src *RawIE) (IE, error) {
	if src.Len < 4 {
		return nil, ErrTruncated
	}
	return &FeatureIndicate{
		Feature: Feature(src.Data[2] &^ byte(OctetGroupEnd)),
		Status:  src.Data[3],
	}, nil
}

func parseNetworkParameter(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	np := &NetworkParameter{
		Discriminator: NetworkParameterDisc(src.Data[2]),
		Data:          make([]byte, src.Len-3),
	}
	copy(np.Data, src.Data[3:])
	return np, nil
}

func buildNetworkParameter(dst *RawIE, ie IE) error {
	np, ok := ie.(*NetworkParameter)
	if !ok {
		return errors.New("not a network parameter IE")
	}
	dst.Data[2] = byte(np.Discriminator)
	copy(dst.Data[3:], np.Data)
	dst.Len = len(np.Data) + 3
	return nil
}

func parseRejectReason(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	return &RejectReason{Reason: RejectReasonCode(src.Data[2])}, nil
}

func buildRejectReason(dst *RawIE, ie IE) error {
	rr, ok := ie.(*RejectReason)
	if !ok {
		return errors.New("not a reject reason IE")
	}
	dst.Data[2] = byte(rr.Reason)
	dst.Len = 3
	return nil
}

func parseSetupCapability(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	return &SetupCapability{
		PageCapability:  src.Data[2] & 0x3,
		SetupCapability: (src.Data[2] & 0xc) >> 2,
	}, nil
}

func buildSetupCapability(dst *RawIE, ie IE) error {
	sc, ok := ie.(*SetupCapability)
	if !ok {
		return errors.New("not a setup capability IE")
	}
	dst.Data[2] = sc.PageCapability | sc.SetupCapability<<2 | OctetGroupEnd
	dst.Len = 3
	return nil
}

func parseTerminalCapability(src *RawIE) (IE, error) {
	tc := &TerminalCapability{}
	n := 2

	next := func() (byte, bool) {
		if n >= src.Len {
			return 0, false
		}
		c := src.Data[n]
		n++
		return c, true
	}

	// Octet group 3: display/tone, audio, slot and display geometry
	// octets, each optionally the last of the group.
	c, ok := next()
	if !ok {
		return nil, ErrTruncated
	}
	tc.Display = c & terminalCapabilityDisplayMask
	tc.Tone = (c & terminalCapabilityToneMask) >> terminalCapabilityToneShift
	if c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		tc.Echo = (c & terminalCapabilityEchoMask) >> terminalCapabilityEchoShift
		tc.NoiseRejection = (c & terminalCapabilityNoiseMask) >> terminalCapabilityNoiseShift
		tc.VolumeCtrl = c & terminalCapabilityVolumeMask
	}
	if ok && c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		tc.Slot = c &^ byte(OctetGroupEnd)
	}
	if ok && c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		tc.DisplayMemory = uint32(c &^ byte(OctetGroupEnd))
	}
	if ok && c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		// Display memory continues in 7 bit octet groups.
		tc.DisplayMemory = tc.DisplayMemory<<7 + uint32(c&^byte(OctetGroupEnd))
	}
	if ok && c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		tc.DisplayLines = c &^ byte(OctetGroupEnd)
	}
	if ok && c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		tc.DisplayColumns = c &^ byte(OctetGroupEnd)
	}
	if ok && c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return nil, ErrTruncated
		}
		tc.Scrolling = c &^ byte(OctetGroupEnd)
	}

	// Octet group 4: profile indicator, up to eight octets.
	for i := 0; i < 8; i++ {
		if c, ok = next(); !ok {
			return tc, nil
		}
		tc.ProfileIndicator |= uint64(c&^byte(OctetGroupEnd)) << (64 - 8*(i+1))
		if c&OctetGroupEnd != 0 {
			break
		}
	}

	// Octet group 5: display control and charsets.
	if c, ok = next(); !ok {
		return tc, nil
	}
	tc.DisplayControl = c & 0x7
	if c&OctetGroupEnd == 0 {
		if c, ok = next(); !ok {
			return tc, nil
		}
		tc.DisplayCharsets = c &^ byte(OctetGroupEnd)
	}

	// Octet group 6 may be absent on older equipment.
	if n == src.Len {
		return tc, nil
	}
	if c, _ = next(); c&OctetGroupEnd != 0 {
		return tc, nil
	}
	if c, ok = next(); !ok || c&OctetGroupEnd == 0 {
		return nil, errors.New("terminal capability: unterminated octet group 6")
	}
	return tc, nil
}

func buildTerminalCapability(dst *RawIE, ie IE) error {
	tc, ok := ie.(*TerminalCapability)
	if !ok {
		return errors.New("not a terminal capability IE")
	}
	n := 2

	// Octet group 3
	dst.Data[n] = tc.Display | tc.Tone<<terminalCapabilityToneShift
	n++
	dst.Data[n] = tc.Echo<<terminalCapabilityEchoShift |
		tc.NoiseRejection<<terminalCapabilityNoiseShift | tc.VolumeCtrl
	n++
	dst.Data[n] = tc.Slot
	n++
	dst.Data[n] = byte(tc.DisplayMemory >> 7)
	n++
	dst.Data[n] = byte(tc.DisplayMemory) &^ byte(OctetGroupEnd)
	n++
	dst.Data[n] = tc.DisplayLines
	n++
	dst.Data[n] = tc.DisplayColumns
	n++
	dst.Data[n] = tc.Scrolling | OctetGroupEnd
	n++

	// Octet group 4
	for i := 0; i < 8; i++ {
		dst.Data[n] = byte(tc.ProfileIndicator >> (64 - 8*(i+1)))
		if i == 7 || tc.ProfileIndicator&(^uint64(0)>>(8*(i+1))) == 0 {
			dst.Data[n] |= OctetGroupEnd
			n++
			break
		}
		n++
	}

	// Octet group 5
	dst.Data[n] = tc.DisplayControl
	n++
	dst.Data[n] = tc.DisplayCharsets | OctetGroupEnd
	n++

	dst.Len = n
	return nil
}

func parseCallingPartyNumber(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	cpn := &CallingPartyNumber{
		Type: NumberType((src.Data[2] & 0x70) >> 4),
		NPI:  NPI(src.Data[2] & 0x0f),
	}
	n := 3
	if src.Data[2]&OctetGroupEnd != 0 {
		// Presentation octet omitted: number withheld.
		cpn.Presentation = PresentationNotAvailable
	} else {
		if src.Len < 4 {
			return nil, ErrTruncated
		}
		if src.Data[3]&OctetGroupEnd == 0 {
			return nil, errors.New("calling party number: unterminated octet group")
		}
		cpn.Presentation = Presentation((src.Data[3] >> 5) & 0x3)
		cpn.Screening = Screening(src.Data[3] & 0x3)
		n = 4
	}
	cpn.Address = make([]byte, src.Len-n)
	copy(cpn.Address, src.Data[n:])
	return cpn, nil
}

func buildCallingPartyNumber(dst *RawIE, ie IE) error {
	cpn, ok := ie.(*CallingPartyNumber)
	if !ok {
		return errors.New("not a calling party number IE")
	}
	n := 2
	dst.Data[n] = byte(cpn.Type)<<4 | byte(cpn.NPI)
	if cpn.Presentation == PresentationRestricted ||
		cpn.Presentation == PresentationNotAvailable {
		dst.Data[n] |= OctetGroupEnd
		n++
	} else {
		n++
		dst.Data[n] = byte(cpn.Presentation)<<5 | byte(cpn.Screening) | OctetGroupEnd
		n++
	}
	copy(dst.Data[n:], cpn.Address)
	dst.Len = len(cpn.Address) + n
	return nil
}

func parseCallingPartyName(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	cpn := &CallingPartyName{
		Presentation: Presentation((src.Data[2] >> 5) & 0x3),
		Alphabet:     (src.Data[2] >> 2) & 0x7,
		Screening:    Screening(src.Data[2] & 0x3),
		Name:         make([]byte, src.Len-3),
	}
	copy(cpn.Name, src.Data[3:])
	return cpn, nil
}

func buildCallingPartyName(dst *RawIE, ie IE) error {
	cpn, ok := ie.(*CallingPartyName)
	if !ok {
		return errors.New("not a calling party name IE")
	}
	dst.Data[2] = byte(cpn.Presentation)<<5 | cpn.Alphabet<<2 | byte(cpn.Screening)
	copy(dst.Data[3:], cpn.Name)
	dst.Len = len(cpn.Name) + 3
	return nil
}

func parseCalledPartyNumber(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	cpn := &CalledPartyNumber{
		Type:    NumberType((src.Data[2] & 0x70) >> 4),
		NPI:     NPI(src.Data[2] & 0x0f),
		Address: make([]byte, src.Len-3),
	}
	copy(cpn.Address, src.Data[3:])
	return cpn, nil
}

func buildCalledPartyNumber(dst *RawIE, ie IE) error {
	cpn, ok := ie.(*CalledPartyNumber)
	if !ok {
		return errors.New("not a called party number IE")
	}
	dst.Data[2] = byte(cpn.Type)<<4 | byte(cpn.NPI) | OctetGroupEnd
	copy(dst.Data[3:], cpn.Address)
	dst.Len = len(cpn.Address) + 3
	return nil
}

func parseDuration(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	d := &Duration{
		Lock: LockLimit((src.Data[2] >> 4) & 0x7),
		Time: TimeLimit(src.Data[2] & 0x0f),
	}
	if src.Data[2]&OctetGroupEnd == 0 {
		if src.Len < 4 {
			return nil, ErrTruncated
		}
		d.Duration = src.Data[3]
	}
	return d, nil
}

func buildDuration(dst *RawIE, ie IE) error {
	d, ok := ie.(*Duration)
	if !ok {
		return errors.New("not a duration IE")
	}
	dst.Len = 3
	dst.Data[2] = byte(d.Lock)<<4 | byte(d.Time)
	if d.Time != TimeLimitDefined1 && d.Time != TimeLimitDefined2 {
		dst.Data[2] |= OctetGroupEnd
	} else {
		dst.Data[3] = d.Duration
		dst.Len++
	}
	return nil
}

func parseIWUToIWU(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	if src.Data[2]&OctetGroupEnd == 0 {
		return nil, errors.New("IWU-to-IWU: unterminated discriminator octet")
	}
	iwu := &IWUToIWU{
		SR:   src.Data[2]&0x40 != 0,
		PD:   IWUToIWUPD(src.Data[2] & 0x3f),
		Data: make([]byte, src.Len-3),
	}
	copy(iwu.Data, src.Data[3:])
	return iwu, nil
}

func buildIWUToIWU(dst *RawIE, ie IE) error {
	iwu, ok := ie.(*IWUToIWU)
	if !ok {
		return errors.New("not an IWU-to-IWU IE")
	}
	dst.Data[2] = byte(iwu.PD) | OctetGroupEnd
	if iwu.SR {
		dst.Data[2] |= 0x40
	}
	copy(dst.Data[3:], iwu.Data)
	dst.Len = len(iwu.Data) + 3
	return nil
}

func parseEscapeToProprietary(src *RawIE) (IE, error) {
	if src.Len < 5 {
		return nil, ErrTruncated
	}
	if src.Data[2]&escPropIEDescTypeMask != escPropIEDescEMC {
		return nil, fmt.Errorf("escape to proprietary: invalid discriminator %#x", src.Data[2])
	}
	etp := &EscapeToProprietary{
		EMC:     binary.BigEndian.Uint16(src.Data[3:5]),
		Content: make([]byte, src.Len-5),
	}
	copy(etp.Content, src.Data[5:])
	return etp, nil
}

func buildEscapeToProprietary(dst *RawIE, ie IE) error {
	etp, ok := ie.(*EscapeToProprietary)
	if !ok {
		return errors.New("not an escape to proprietary IE")
	}
	dst.Data[2] = escPropIEDescEMC | OctetGroupEnd
	binary.BigEndian.PutUint16(dst.Data[3:5], etp.EMC)
	copy(dst.Data[5:], etp.Content)
	dst.Len = 5 + len(etp.Content)
	return nil
}

func parseCodecList(src *RawIE) (IE, error) {
	if src.Len < 3 {
		return nil, ErrTruncated
	}
	cl := &CodecList{
		Negotiation: (src.Data[2] &^ byte(OctetGroupEnd)) >> 4,
	}
	for n := 3; src.Len-n >= 3; n += 3 {
		cl.Entries = append(cl.Entries, CodecEntry{
			Codec:   Codec(src.Data[n]),
			Service: src.Data[n+1] & 0x0f,
			CPlane:  (src.Data[n+2] & 0x70) >> 4,
			Slot:    src.Data[n+2] & 0x0f,
		})
	}
	return cl, nil
}

func buildCodecList(dst *RawIE, ie IE) error {
	cl, ok := ie.(*CodecList)
	if !ok {
		return errors.New("not a codec list IE")
	}
	n := 2
	dst.Data[n] = cl.Negotiation<<4 | OctetGroupEnd
	n++
	for _, e := range cl.Entries {
		dst.Data[n] = byte(e.Codec)
		dst.Data[n+1] = e.Service
		dst.Data[n+2] = e.CPlane<<4 | e.Slot
		n += 3
	}
	dst.Data[n-1] |= OctetGroupEnd
	dst.Len = n
	return nil
}

func buildEventsNotification(dst *RawIE, ie IE) error {
	en, ok := ie.(*EventsNotification)
	if !ok {
		return errors.New("not an events notification IE")
	}
	n := 2
	for _, e := range en.Events {
		dst.Data[n] = byte(e.Type)
		dst.Data[n+1] = e.Subtype | OctetGroupEnd
		dst.Data[n+2] = e.Multiplicity | OctetGroupEnd
		n += 3
	}
	dst.Len = n
	return nil
}
