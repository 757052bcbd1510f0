// Package dect implements the DECT Network (NWK) layer as specified
// in ETSI EN 300 175-5/6.
//
// The library sits above a kernel-provided DECT socket family and
// below an application driving cordless telephony endpoints, on either
// the fixed part (FP, base station) or portable part (PP, handset)
// side. It provides the S-format message codec, the per-data-link
// transaction multiplexer and the Call Control (CC) and Mobility
// Management (MM) protocol entities with their MNCC and MM primitives.
//
// The library is single threaded and never blocks: file descriptors
// and timers are registered with the application's event loop through
// the EventOps vector, and the application drives the library by
// invoking FDProcess and TimerExpired from its loop. All entry points
// must be called from the thread running that loop.
//
// Example:
//
//	h, err := dect.New(&dect.Config{
//	    Role: dect.RoleFP,
//	    PARI: pari,
//	    Ops: &dect.Ops{
//	        Event: eventOps,
//	        LCE:   lceOps,
//	        CC:    ccOps,
//	        MM:    mmOps,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inbound signaling from the data link:
//	h.Receive(ipui, dect.ProtocolCC, tv, dect.RolePP, mb)
package dect
