package utils

import "testing"

func TestParseProbeDuration(t *testing.T) {
	d, err := parseProbeDuration(`{"streams":[],"format":{"filename":"a.mp4","duration":"12.480000"}}`)
	if err != nil || d != 12.48 {
		t.Fatalf("got %v, %v", d, err)
	}
	if d, err := parseProbeDuration(`{"format":{}}`); err != nil || d != 0 {
		t.Fatalf("missing duration: got %v, %v", d, err)
	}
	if _, err := parseProbeDuration(`not json`); err == nil {
		t.Fatal("expected decode error")
	}
}
