package animation

import (
	"testing"
	"time"
)

func TestCurrentWithoutTransaction(t *testing.T) {
	if tx := Current(); tx != nil {
		t.Fatalf("Current() = %+v with no open transaction", tx)
	}
}

func TestBeginCommit(t *testing.T) {
	tx := Begin(time.Second)
	if got := Current(); got != tx {
		t.Errorf("Current() = %p, want %p", got, tx)
	}
	Commit()
	if got := Current(); got != nil {
		t.Errorf("Current() = %+v after Commit", got)
	}
}

func TestNestedTransactionsInnermostWins(t *testing.T) {
	outer := Begin(time.Second)
	inner := Begin(2 * time.Second)
	if got := Current(); got != inner {
		t.Errorf("Current() = %p, want inner %p", got, inner)
	}
	Commit()
	if got := Current(); got != outer {
		t.Errorf("Current() = %p after inner commit, want outer %p", got, outer)
	}
	Commit()
}

func TestDisabledTransaction(t *testing.T) {
	tx := Begin(time.Second)
	tx.Disabled = true
	defer Commit()
	if got := Current(); got != nil {
		t.Errorf("Current() = %+v for disabled transaction", got)
	}
}

func TestZeroDurationTransaction(t *testing.T) {
	Begin(0)
	defer Commit()
	if got := Current(); got != nil {
		t.Errorf("Current() = %+v for zero-duration transaction", got)
	}
}

func TestCommitWithoutBegin(t *testing.T) {
	// Must not panic.
	Commit()
	if got := Current(); got != nil {
		t.Errorf("Current() = %+v", got)
	}
}

func TestAnimateScopesTransaction(t *testing.T) {
	var seen *Transaction
	Animate(250*time.Millisecond, EaseOut, func() {
		seen = Current()
	})
	if seen == nil {
		t.Fatal("no transaction open inside Animate body")
	}
	if seen.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %v", seen.Duration)
	}
	if seen.Curve == nil {
		t.Error("Curve not carried into transaction")
	}
	if Current() != nil {
		t.Error("transaction leaked after Animate returned")
	}
}
