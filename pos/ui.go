// Package pos holds the client-side core of the point-of-sale screen:
// cart, order submission, kitchen status board, product management and
// the sales summary, all talking to the backend through the API client.
package pos

// Confirmer asks the operator to approve a destructive action (clearing
// the cart, deleting an order or a product) before it runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier is the single channel every flow reports failures through,
// so error surfacing stays uniform across screens.
type Notifier interface {
	Notify(msg string)
}

type ConfirmFunc func(string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type NotifyFunc func(string)

func (f NotifyFunc) Notify(msg string) { f(msg) }
