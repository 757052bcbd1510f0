// Package limits provides centralized protocol limits for the DECT
// NWK layer, used by the transaction layer and the U-plane path.
package limits
