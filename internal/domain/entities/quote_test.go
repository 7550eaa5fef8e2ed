package entities

import "testing"

func TestQuoteStatusIsTerminal(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusPending, QuoteStatusQuoted} {
		if s.IsTerminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
	for _, s := range []QuoteStatus{QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired} {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
}
