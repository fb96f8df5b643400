package model

import (
	"errors"
	"testing"
)

func TestChecksumAddress_KnownVectors(t *testing.T) {
	t.Parallel()

	// Reference vectors from EIP-55
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, want := range vectors {
		if got := ChecksumAddress(want); got != want {
			t.Errorf("ChecksumAddress(%s) = %s", want, got)
		}
	}
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"lowercase", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"checksummed", "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", false},
		{"surrounding space", " 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed ", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"bad checksum", "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "", true},
		{"missing prefix", "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "", true},
		{"too short", "0x1234", "", true},
		{"not hex", "0xZZaeb6053f3e94c9b9a09f33669435e7ef1beaed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAddress) {
					t.Errorf("expected ErrInvalidAddress, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAddress() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestShortAddress(t *testing.T) {
	t.Parallel()

	if got := ShortAddress("0x1234567890abcdef1234567890abcdef1234abcd"); got != "0x1234...abcd" {
		t.Errorf("ShortAddress() = %s", got)
	}
	if got := ShortAddress("0x12"); got != "0x12" {
		t.Errorf("short input should be unchanged, got %s", got)
	}
}
