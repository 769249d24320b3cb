package main

import (
	"os"
	"testing"
)

func TestUseProgressUI(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"on", true},
		{"ON", true},
		{" off ", false},
		{"off", false},
	}
	for _, tc := range cases {
		got, err := useProgressUI(tc.value)
		if err != nil {
			t.Fatalf("useProgressUI(%q) error: %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("useProgressUI(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}

	// Auto and the empty default follow terminal detection.
	for _, value := range []string{"", "auto"} {
		got, err := useProgressUI(value)
		if err != nil {
			t.Fatalf("useProgressUI(%q) error: %v", value, err)
		}
		if got != isTerminal(os.Stdout) {
			t.Errorf("useProgressUI(%q) = %v, want terminal detection result", value, got)
		}
	}

	if _, err := useProgressUI("fancy"); err == nil {
		t.Fatal("useProgressUI with an unknown value succeeded, want error")
	}
}
