package entities

import "testing"

func TestCollapseMarchaStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want ChargeStatus
	}{
		{"waiting_payment", ChargeStatusWaiting},
		{"pending", ChargeStatusWaiting},
		{"approved", ChargeStatusPaid},
		{"paid", ChargeStatusPaid},
		{"refused", ChargeStatusRefused},
		{"in_protest", ChargeStatusRefused},
		{"refunded", ChargeStatusRefunded},
		{"chargeback", ChargeStatusRefunded},
		{"cancelled", ChargeStatusCancelled},
		{"something_new", ChargeStatusUnknown},
		{"", ChargeStatusUnknown},
	}
	for _, tc := range cases {
		if got := CollapseMarchaStatus(tc.raw); got != tc.want {
			t.Fatalf("CollapseMarchaStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestCollapseParadiseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want ChargeStatus
	}{
		{"pending", ChargeStatusWaiting},
		{"approved", ChargeStatusPaid},
		{"failed", ChargeStatusFailed},
		{"refunded", ChargeStatusRefunded},
		{"whatever", ChargeStatusUnknown},
	}
	for _, tc := range cases {
		if got := CollapseParadiseStatus(tc.raw); got != tc.want {
			t.Fatalf("CollapseParadiseStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
