package dect

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"

	"golang.org/x/sys/unix"

	"github.com/cordless-go/dect/limits"
	"github.com/cordless-go/dect/mbuf"
)

// Kernel DECT socket family constants. The address layout is owned by
// the kernel; the library only fills in the ULEI.
const (
	afDECT     = 38
	dectLU1SAP = 1
)

// rawSockaddrDECT mirrors the kernel's DECT socket address. Only the
// U-plane link endpoint identifier is meaningful to this library.
type rawSockaddrDECT struct {
	family uint16
	ulei   uint32
	pad    [8]byte
}

// ULEI derives the U-plane link endpoint identifier from the call's
// transaction: the transaction value plus the initiator role bit.
func (ta *Transaction) ULEI() uint32 {
	ulei := uint32(ta.tv) << 1
	if ta.initiator == RolePP {
		ulei |= 1
	}
	return ulei
}

// dialUPlane opens a non-blocking LU1 stream socket and connects it to
// the call's U-plane endpoint.
func dialUPlane(ulei uint32) (int, error) {
	fd, err := unix.Socket(afDECT, unix.SOCK_STREAM|unix.SOCK_NONBLOCK, dectLU1SAP)
	if err != nil {
		return -1, fmt.Errorf("LU1 socket: %w", err)
	}

	sa := rawSockaddrDECT{
		family: afDECT,
		ulei:   ulei,
	}
	_, _, errno := unix.Syscall(unix.SYS_CONNECT, uintptr(fd),
		uintptr(unsafe.Pointer(&sa)), unsafe.Sizeof(sa))
	if errno != 0 && errno != unix.EINPROGRESS {
		unix.Close(fd)
		return -1, fmt.Errorf("LU1 connect: %w", errno)
	}
	return fd, nil
}

// ccLUEvent delivers U-plane data from the kernel to the application.
func ccLUEvent(h *Handle, f *FD, events FDEvents) {
	call := f.data.(*Call)

	if events&FDRead == 0 {
		return
	}

	buf := make([]byte, limits.MaxUPlaneFrame)
	n, err := unix.Read(f.fd, buf)
	if err != nil || n < 0 {
		return
	}

	mb := mbuf.New()
	if err := mb.Append(buf[:n]); err != nil {
		return
	}
	h.ops.CC.DLUDataInd(h, call, mb)
}

// connectUPlane binds the call's U-plane: a stream socket to the LU1
// SAP, registered with the application's event loop for read events.
func (h *Handle) connectUPlane(call *Call) {
	if call.luSAP != nil {
		return
	}

	dial := h.dialUPlane
	if dial == nil {
		dial = dialUPlane
	}
	fd, err := dial(call.transaction.ULEI())
	if err != nil {
		call.log().WithError(err).Debug("U-plane connect failed")
		return
	}

	f := &FD{fd: fd}
	f.setup(ccLUEvent, call)
	if err := h.registerFD(f, FDRead); err != nil {
		h.closeFD(f)
		call.log().WithError(err).Debug("U-plane register failed")
		return
	}
	call.luSAP = f
	call.log().Debug("U-plane connected")
}

// disconnectUPlane releases the call's U-plane socket.
func (h *Handle) disconnectUPlane(call *Call) {
	if call.luSAP == nil {
		return
	}
	h.unregisterFD(call.luSAP)
	h.closeFD(call.luSAP)
	call.luSAP = nil
	call.log().Debug("U-plane disconnected")
}

// DLUDataReq writes one U-plane frame to the call's LU1 socket.
func (h *Handle) DLUDataReq(call *Call, mb *mbuf.Buffer) error {
	if call.luSAP == nil {
		call.log().Debug("U-plane data request while unconnected")
		return nil
	}
	n, err := unix.Write(call.luSAP.fd, mb.Data())
	if err != nil {
		return fmt.Errorf("U-plane write: %w", err)
	}
	if n != mb.Len() {
		logrus.WithFields(logrus.Fields{
			"call":    call.id,
			"wrote":   n,
			"payload": mb.Len(),
		}).Debug("short U-plane write")
	}
	return nil
}
