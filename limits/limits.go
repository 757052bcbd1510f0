package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxMessageSize bounds one S-format signaling message including
	// the message-type octet.
	MaxMessageSize = 256

	// MaxTransactionValue is the size of the 4 bit transaction
	// identifier space per data link, protocol and role bit.
	MaxTransactionValue = 16

	// MaxTransactionsCC is the concurrent transaction ceiling of the
	// Call Control protocol per data link.
	MaxTransactionsCC = 7

	// MaxTransactionsMM is the concurrent transaction ceiling of the
	// Mobility Management protocol per data link.
	MaxTransactionsMM = 1

	// MaxTransactionsLCE is the concurrent transaction ceiling of the
	// Link Control Entity per data link.
	MaxTransactionsLCE = 7

	// MaxUPlaneFrame bounds one LU1 U-plane frame read from the
	// kernel's stream SAP.
	MaxUPlaneFrame = 40
)

var (
	// ErrMessageEmpty indicates an empty signaling message.
	ErrMessageEmpty = errors.New("empty message")

	// ErrMessageTooLarge indicates a message exceeding MaxMessageSize.
	ErrMessageTooLarge = errors.New("message too large")
)

// ValidateMessageSize validates a signaling message against
// MaxMessageSize. Returns an error with context including the actual
// and maximum sizes.
func ValidateMessageSize(message []byte) error {
	if len(message) == 0 {
		return ErrMessageEmpty
	}
	if len(message) > MaxMessageSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrMessageTooLarge,
			len(message), MaxMessageSize)
	}
	return nil
}
