package models

import "testing"

func TestEscrowState(t *testing.T) {
	tests := []struct {
		name      string
		hackathon Hackathon
		want      EscrowState
	}{
		{
			name:      "no escrow at all",
			hackathon: Hackathon{},
			want:      EscrowStateNone,
		},
		{
			name:      "address without funding details",
			hackathon: Hackathon{EscrowAddress: "GABC"},
			want:      EscrowStateUnfunded,
		},
		{
			name:      "contract only",
			hackathon: Hackathon{ContractID: "CC5F"},
			want:      EscrowStateUnfunded,
		},
		{
			name: "details present but not funded",
			hackathon: Hackathon{
				EscrowAddress: "GABC",
				EscrowDetails: &EscrowDetails{IsFunded: false},
			},
			want: EscrowStateUnfunded,
		},
		{
			name: "funded",
			hackathon: Hackathon{
				EscrowAddress: "GABC",
				EscrowDetails: &EscrowDetails{IsFunded: true, Balance: 9000},
			},
			want: EscrowStateFunded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hackathon.EscrowState(); got != tt.want {
				t.Errorf("EscrowState() = %s, want %s", got, tt.want)
			}
		})
	}
}
