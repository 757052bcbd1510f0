// Package sfmt implements the S-format message codec of the DECT NWK
// layer as specified in ETSI EN 300 175-5.
//
// An S-format message is a message-type octet followed by a stream of
// information elements (IEs). Fixed-length IEs occupy one or two
// octets with the identifier in the high bits; variable-length IEs
// carry an identifier octet, a length octet and a payload. The codec
// parses and builds messages against declarative per-message IE
// grammars (MsgDesc) that state, per direction, whether each IE is
// absent, optional or mandatory.
//
// Parsed IEs are reference counted. Collections returned by the parser
// own one reference per IE; callers that keep an IE beyond the
// collection's lifetime must Hold it and Put it when done.
package sfmt
