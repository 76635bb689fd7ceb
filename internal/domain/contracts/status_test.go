package contracts

import (
	"encoding/json"
	"testing"
)

func TestParseContractStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ContractStatus
		wantErr bool
	}{
		{"Approved", StatusApproved, false},
		{"approvedwaitingconfirmation", StatusApprovedWaitingConfirmation, false},
		{" PublishedToProvider ", StatusPublishedToProvider, false},
		{"6", StatusReplaced, false},
		{"42", 0, true},
		{"4abc", 0, true},
		{"Signed", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseContractStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseContractStatus(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseContractStatus(%q): got=%v err=%v want=%v", tt.in, got, err, tt.want)
		}
	}
}

func TestContractStatusJSON(t *testing.T) {
	raw, err := json.Marshal(StatusWithdrawnByAgency)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"WithdrawnByAgency"` {
		t.Fatalf("unexpected json: %s", raw)
	}

	var byName, byNumber ContractStatus
	if err := json.Unmarshal([]byte(`"Replaced"`), &byName); err != nil || byName != StatusReplaced {
		t.Fatalf("unmarshal name: got=%v err=%v", byName, err)
	}
	if err := json.Unmarshal([]byte(`4`), &byNumber); err != nil || byNumber != StatusApproved {
		t.Fatalf("unmarshal number: got=%v err=%v", byNumber, err)
	}
	var bad ContractStatus
	if err := json.Unmarshal([]byte(`99`), &bad); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestContractStatusString(t *testing.T) {
	for _, s := range AllContractStatuses() {
		if !s.IsValid() {
			t.Fatalf("%d should be valid", int(s))
		}
	}
	if got := ContractStatus(99).String(); got != "ContractStatus(99)" {
		t.Fatalf("unexpected string for unknown status: %q", got)
	}
}
