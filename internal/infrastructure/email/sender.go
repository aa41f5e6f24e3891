package email

import "context"

// Sender delivers a confirmation code to an address. Implementations must
// not block signup on delivery problems beyond returning the error; the
// caller decides whether delivery failure is fatal.
type Sender interface {
	SendConfirmationCode(ctx context.Context, to, code string) error
}
