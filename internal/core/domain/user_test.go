package domain

import "testing"

func TestUser_Normalize(t *testing.T) {
	u := User{Role: RoleUser, DealerID: 7}
	u.Normalize()
	if u.DealerID != 0 {
		t.Fatalf("non-dealer must not keep a dealer id, got %d", u.DealerID)
	}

	d := User{Role: RoleDealer, DealerID: 7}
	d.Normalize()
	if d.DealerID != 7 {
		t.Fatalf("dealer id dropped: %d", d.DealerID)
	}
}

func TestUser_CanEditDealer(t *testing.T) {
	cases := []struct {
		name     string
		user     User
		dealerID int
		want     bool
	}{
		{"admin edits any", User{Role: RoleAdmin}, 9, true},
		{"dealer edits own", User{Role: RoleDealer, DealerID: 9}, 9, true},
		{"dealer edits other", User{Role: RoleDealer, DealerID: 3}, 9, false},
		{"plain user", User{Role: RoleUser}, 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.CanEditDealer(tc.dealerID); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleAdmin, RoleDealer} {
		if !ValidRole(role) {
			t.Fatalf("%q should be valid", role)
		}
	}
	for _, role := range []string{"", "root", "Dealer"} {
		if ValidRole(role) {
			t.Fatalf("%q should be invalid", role)
		}
	}
}
