package animation

import "time"

// Transaction is an open animation context. Layer property changes made
// while a transaction is open animate with its timing instead of applying
// instantly.
//
// Transactions nest; the innermost open transaction wins. Like everything
// else in the layer system they are main-loop state: open, mutate and
// commit from the same goroutine that steps the layers.
type Transaction struct {
	// Duration is the length of animations started in this transaction.
	Duration time.Duration

	// Delay postpones animations started in this transaction.
	Delay time.Duration

	// Curve eases animations started in this transaction. Nil means linear.
	Curve Curve

	// Disabled suppresses implicit animations while still allowing the
	// transaction to scope other state. Property changes apply instantly.
	Disabled bool
}

// stack holds the open transactions, innermost last.
var stack []*Transaction

// Begin opens a transaction with the given duration and pushes it onto the
// transaction stack. The returned transaction can be tuned (Curve, Delay,
// Disabled) before any property changes are made. Every Begin must be paired
// with a Commit.
func Begin(duration time.Duration) *Transaction {
	tx := &Transaction{Duration: duration}
	stack = append(stack, tx)
	return tx
}

// Commit closes the innermost open transaction. Committing with no open
// transaction is a no-op.
func Commit() {
	if len(stack) == 0 {
		return
	}
	stack = stack[:len(stack)-1]
}

// Current returns the innermost open transaction that can produce
// animations, or nil when changes should apply instantly: no transaction is
// open, the innermost one is disabled, or its duration is not positive.
func Current() *Transaction {
	if len(stack) == 0 {
		return nil
	}
	tx := stack[len(stack)-1]
	if tx.Disabled || tx.Duration <= 0 {
		return nil
	}
	return tx
}

// Animate runs body inside a transaction with the given duration and curve.
// It is the common way to trigger implicit animations:
//
//	animation.Animate(3*time.Second, animation.Linear, func() {
//	    layer.SetAngleDegrees(270)
//	})
func Animate(duration time.Duration, curve Curve, body func()) {
	tx := Begin(duration)
	tx.Curve = curve
	defer Commit()
	body()
}
