// Package mbuf implements the message buffer used to carry NWK-layer
// signaling messages between the transaction layer, the S-format codec
// and the lower data link.
//
// A Buffer is a fixed-capacity byte container. Outbound messages are
// assembled by appending to the tail; inbound messages are consumed by
// pulling from the front. The Type field carries the decoded
// message-type octet once the transaction layer has stripped it from
// the wire data.
package mbuf
