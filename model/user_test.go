package model

import "testing"

func TestUserDisplayName(t *testing.T) {
	withName := &User{Username: "alice", Name: "Alice Almeida"}
	if withName.DisplayName() != "Alice Almeida" {
		t.Errorf("display name was not expected value: '%s'", withName.DisplayName())
	}

	withoutName := &User{Username: "bob"}
	if withoutName.DisplayName() != "bob" {
		t.Errorf("display name was not expected value: '%s'", withoutName.DisplayName())
	}
}
