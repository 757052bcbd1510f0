// Package identity implements the NWK-layer identities specified in
// ETSI EN 300 175-6: the Access Rights Identity (ARI) and its PARK
// variant, the International Portable User Identity (IPUI) and the
// Temporary Portable User Identity (TPUI).
//
// The codec treats these types as opaque values: they are carried
// inside PORTABLE-IDENTITY and FIXED-IDENTITY information elements and
// compared when routing messages to data links.
package identity
