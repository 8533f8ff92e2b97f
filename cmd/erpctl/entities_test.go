package main

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []string
		want    url.Values
		wantErr bool
	}{
		{
			name: "key value pairs",
			raw:  []string{"status=active", "page=2"},
			want: url.Values{"status": {"active"}, "page": {"2"}},
		},
		{
			name: "repeated keys accumulate",
			raw:  []string{"status=active", "status=pending"},
			want: url.Values{"status": {"active", "pending"}},
		},
		{
			name: "empty input yields nil",
			want: nil,
		},
		{
			name:    "missing separator fails",
			raw:     []string{"status"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseParams(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntityCmds(t *testing.T) {
	t.Parallel()

	cmds := entityCmds()

	groups := make(map[string]map[string]bool, len(cmds))
	for _, cmd := range cmds {
		subs := make(map[string]bool, len(cmd.Commands()))
		for _, sub := range cmd.Commands() {
			subs[sub.Name()] = true
		}
		groups[cmd.Name()] = subs
	}

	wantGroups := []string{
		"dashboard", "clients", "vendors", "products", "services", "leads",
		"deals", "jobs", "invoices", "payments", "documents", "inbound",
		"outbound", "warehouses", "inventory", "employees", "vehicles",
		"certificates", "commissions", "accounting", "roles", "users",
		"settings", "reports", "upload",
	}
	for _, want := range wantGroups {
		if _, ok := groups[want]; !ok {
			t.Errorf("entityCmds() missing group %q", want)
		}
	}

	wantSubs := map[string][]string{
		"dashboard":    {"sales-trends", "material-breakdown"},
		"settings":     {"payment-modes", "expense-categories"},
		"reports":      {"deals", "customer-ageing", "commissions", "expenses"},
		"inventory":    {"lots", "adjust", "close", "movements", "valuation"},
		"payments":     {"cheque-status", "post-dated-cheques"},
		"vehicles":     {"status", "fuel-log", "maintenance-log"},
		"certificates": {"verify", "templates", "update-template"},
		"commissions":  {"calculate", "approve", "pay", "reverse", "summary"},
		"accounting":   {"journal-entries", "create-expense", "bank-accounts"},
		"employees":    {"terminate"},
	}
	for group, subs := range wantSubs {
		for _, want := range subs {
			if !groups[group][want] {
				t.Errorf("entityCmds() group %q missing %q", group, want)
			}
		}
	}
}
