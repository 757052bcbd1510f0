package sfmt

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cordless-go/dect/mbuf"
)

// RawIE is one S-format encoded IE. For parsing, Data holds the full
// wire octets of the IE including its header. For building, Data is a
// scratch area whose first one or two octets are reserved for the
// header and Len is the total encoded length.
type RawIE struct {
	ID   Type
	Len  int
	Data []byte
}

// ParseIEHeader decodes the next IE header from the front of mb
// without consuming it. It verifies that the full IE is available.
func ParseIEHeader(ie *RawIE, mb *mbuf.Buffer) error {
	data := mb.Data()
	if len(data) < 1 {
		return ErrTruncated
	}

	ie.ID = Type(data[0]) & ieFixedLen
	if ie.ID&ieFixedLen != 0 {
		ie.ID |= Type(data[0]) & ieFixedIDMask
		val := Type(data[0]) & ieFixedValMask
		if ie.ID&ieFixedIDMask != ieDoubleOctetElement&ieFixedIDMask {
			ie.Len = 1
			if ie.ID == ieExtPrefix {
				ie.ID |= val
			}
		} else {
			if len(data) < 2 {
				return ErrTruncated
			}
			ie.ID |= val
			ie.Len = 2
		}
	} else {
		if len(data) < 2 || len(data) < 2+int(data[1]) {
			return ErrTruncated
		}
		ie.ID = Type(data[0])
		ie.Len = 2 + int(data[1])
	}
	ie.Data = data[:ie.Len]
	return nil
}

// buildIEHeader writes the IE header into the scratch area and fixes
// up the final length, following the wire framing rules. An empty
// variable-length IE collapses to length zero and is omitted.
func buildIEHeader(dst *RawIE, id Type) {
	if id&ieFixedLen != 0 {
		dst.Data[0] |= byte(id)
		if id&ieFixedIDMask != ieDoubleOctetElement&ieFixedIDMask {
			dst.Len = 1
		} else {
			dst.Len = 2
		}
	} else {
		if dst.Len == 2 {
			dst.Len = 0
		} else {
			dst.Data[1] = byte(dst.Len - 2)
			dst.Data[0] = byte(id)
		}
	}
}

// ParseIE decodes one IE through its catalog handler. Unknown IEs and
// IEs without a parse handler return ErrInvalidIE.
func ParseIE(ie *RawIE) (IE, error) {
	ieh, ok := ieHandlers[ie.ID]
	if !ok || ieh.parse == nil {
		logrus.WithFields(logrus.Fields{
			"ie":   Name(ie.ID),
			"id":   fmt.Sprintf("%#x", uint8(ie.ID)),
			"len":  ie.Len,
		}).Debug("no parse handler for IE")
		return nil, fmt.Errorf("%w: <<%s>>", ErrInvalidIE, Name(ie.ID))
	}

	parsed, err := ieh.parse(ie)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ie":    Name(ie.ID),
			"error": err,
		}).Debug("IE parsing error")
		return nil, err
	}
	ieInit(parsed)

	logrus.WithFields(logrus.Fields{
		"ie":  Name(ie.ID),
		"id":  fmt.Sprintf("%#x", uint8(ie.ID)),
		"len": ie.Len,
	}).Trace("parsed IE")
	return parsed, nil
}

// BuildIE encodes ie under the wire type t and appends it to mb. A
// SINGLE-DISPLAY or SINGLE-KEYPAD slot holding more than one character
// is promoted to its MULTI variant.
func BuildIE(t Type, ie IE, mb *mbuf.Buffer) error {
	if t == IESingleDisplay {
		if d, ok := ie.(*Display); ok && len(d.Info) > 1 {
			t = IEMultiDisplay
		}
	}
	if t == IESingleKeypad {
		if k, ok := ie.(*Keypad); ok && len(k.Info) > 1 {
			t = IEMultiKeypad
		}
	}

	ieh, ok := ieHandlers[t]
	if !ok || ieh.build == nil {
		return fmt.Errorf("%w: no build handler for <<%s>>", ErrInvalidIE, Name(t))
	}

	var scratch [mbuf.Capacity]byte
	dst := RawIE{ID: t, Data: scratch[:]}
	if err := ieh.build(&dst, ie); err != nil {
		return fmt.Errorf("%w: <<%s>>: %v", ErrInvalidIE, Name(t), err)
	}

	buildIEHeader(&dst, t)
	return mb.Append(dst.Data[:dst.Len])
}

// buildIEChecked polices the transmit status of a descriptor slot
// before encoding.
func buildIEChecked(desc *IEDesc, dir Direction, ie IE, mb *mbuf.Buffer) error {
	if desc.status(dir) == IENone {
		logrus.WithFields(logrus.Fields{
			"ie": Name(desc.Type),
		}).Debug("IE not allowed in direction")
		return fmt.Errorf("%w: <<%s>> not allowed", ErrInvalidIE, Name(desc.Type))
	}
	return BuildIE(desc.Type, ie, mb)
}

// descMatches reports whether a wire IE matches a descriptor slot,
// honoring the single/multi display and keypad relaxations.
func descMatches(desc *IEDesc, id Type) bool {
	if desc.Type == id {
		return true
	}
	if desc.Type == IESingleDisplay && id == IEMultiDisplay {
		return true
	}
	if desc.Type == IESingleKeypad && id == IEMultiKeypad {
		return true
	}
	return false
}

// ParseMessage parses the IE stream of mb against the message grammar
// for a message traveling in dir, consuming the buffer. The result
// collection holds one reference per parsed IE.
func ParseMessage(mdesc *MsgDesc, dir Direction, mb *mbuf.Buffer) (*Collection, error) {
	logrus.WithFields(logrus.Fields{
		"msg": mdesc.Name,
		"len": mb.Len(),
	}).Debug("parse message")

	col := NewCollection()
	ies := mdesc.IEs
	i := 0

	// pendingKind carries a parsed REPEAT-INDICATOR forward to the
	// repeating slot that follows it.
	var pendingKind ListKind

	fail := func(err error) (*Collection, error) {
		PutCollection(col)
		return nil, err
	}

	for mb.Len() > 0 {
		var ie RawIE
		if err := ParseIEHeader(&ie, mb); err != nil {
			return fail(err)
		}

		// Locate a matching grammar slot and apply policy checks.
		for {
			if i >= len(ies) {
				goto out
			}
			desc := &ies[i]
			st := desc.status(dir)
			if st == IEMandatory {
				if descMatches(desc, ie.ID) {
					break
				}
				// A repeating slot that already holds elements is satisfied.
				if desc.Flags&FlagRepeat != 0 && col.GetList(desc.Type).Len() > 0 {
					i++
					continue
				}
				return fail(fmt.Errorf("%w: <<%s>> in %s", ErrMandatoryIEMissing,
					Name(desc.Type), mdesc.Name))
			}
			if st == IENone && desc.Type == ie.ID {
				return fail(fmt.Errorf("%w: <<%s>> forbidden in %s", ErrInvalidIE,
					Name(desc.Type), mdesc.Name))
			}
			if st == IEOptional && descMatches(desc, ie.ID) {
				break
			}
			i++
		}

		desc := &ies[i]

		// Treat empty variable-length IEs as absent.
		if ie.ID&ieFixedLen == 0 && ie.Len == 2 {
			logrus.WithFields(logrus.Fields{
				"ie": Name(ie.ID),
			}).Debug("empty IE treated as absent")
			goto next
		}

		if desc.Type == IERepeatIndicator {
			kind := ListKind(ie.Data[0] & ieFixedValMask)
			if kind != ListNormal && kind != ListPrioritized {
				logrus.WithFields(logrus.Fields{
					"kind": kind,
				}).Debug("invalid list type")
				if desc.status(dir) == IEMandatory {
					return fail(ErrMandatoryIEError)
				}
			} else {
				pendingKind = kind
			}
			// The indicator introduces the following repeating
			// slot: consume it and step to that slot, keeping
			// pendingKind for the list.
			if _, err := mb.Pull(ie.Len); err != nil {
				return fail(err)
			}
			i++
			continue
		}

		if parsed, err := ParseIE(&ie); err != nil {
			// Corrupt optional IEs are tolerated.
			if desc.status(dir) == IEMandatory {
				return fail(fmt.Errorf("%w: <<%s>>", ErrMandatoryIEError, Name(desc.Type)))
			}
		} else if desc.Flags&FlagRepeat != 0 {
			l := col.GetList(desc.Type)
			if l == nil {
				kind := pendingKind
				if kind == 0 {
					kind = ListNormal
				}
				l = NewList(kind)
				ieInit(l)
				col.addList(desc.Type, l)
			}
			l.Add(parsed)
		} else {
			col.add(desc.Type, parsed)
		}

	next:
		if _, err := mb.Pull(ie.Len); err != nil {
			return fail(err)
		}
		if desc.Flags&FlagRepeat == 0 {
			i++
			pendingKind = 0
		}
	}

out:
	// Remaining grammar slots must not be mandatory in this direction,
	// unless they are repeating slots that already hold elements.
	for ; i < len(ies); i++ {
		if ies[i].status(dir) == IEMandatory &&
			!(ies[i].Flags&FlagRepeat != 0 && col.GetList(ies[i].Type).Len() > 0) {
			return fail(fmt.Errorf("%w: <<%s>> in %s", ErrMandatoryIEMissing,
				Name(ies[i].Type), mdesc.Name))
		}
	}
	return col, nil
}

// BuildMessage encodes the collection against the message grammar for
// a message traveling in dir, appending the IE stream to mb. A
// repeating list is introduced by a REPEAT-INDICATOR only when it
// holds two or more elements.
func BuildMessage(mdesc *MsgDesc, dir Direction, col *Collection, mb *mbuf.Buffer) error {
	logrus.WithFields(logrus.Fields{
		"msg": mdesc.Name,
	}).Debug("build message")

	ies := mdesc.IEs
	for i := 0; i < len(ies); i++ {
		desc := &ies[i]

		if desc.Type == IERepeatIndicator {
			if i+1 >= len(ies) || ies[i+1].Flags&FlagRepeat == 0 {
				continue
			}
			rdesc := &ies[i+1]
			l := col.GetList(rdesc.Type)
			if l.Len() == 0 {
				if rdesc.status(dir) == IEMandatory {
					return fmt.Errorf("%w: <<%s>> in %s", ErrMandatoryIEMissing,
						Name(rdesc.Type), mdesc.Name)
				}
				i++
				continue
			}
			if l.Len() > 1 {
				if err := buildIEChecked(desc, dir, l, mb); err != nil {
					return err
				}
			}
			for _, elem := range l.Elems {
				if err := buildIEChecked(rdesc, dir, elem, mb); err != nil {
					return err
				}
			}
			i++
			continue
		}

		if ie := col.Get(desc.Type); ie != nil {
			if err := buildIEChecked(desc, dir, ie, mb); err != nil {
				return err
			}
		} else if desc.status(dir) == IEMandatory {
			logrus.WithFields(logrus.Fields{
				"ie":  Name(desc.Type),
				"msg": mdesc.Name,
			}).Debug("mandatory IE missing")
			return fmt.Errorf("%w: <<%s>> in %s", ErrMandatoryIEMissing,
				Name(desc.Type), mdesc.Name)
		}
	}
	return nil
}
