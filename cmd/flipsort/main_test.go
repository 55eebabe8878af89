package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/flipsort/internal/registry"
)

func TestLookupListsAvailable(t *testing.T) {
	_, err := lookup("bogoSort")
	if !errors.Is(err, registry.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	for _, id := range registry.IDs() {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error should list %s: %v", id, err)
		}
	}
}

func TestLookupKnown(t *testing.T) {
	alg, err := lookup(registry.Quick)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if alg.Label != "Quick Sort" {
		t.Errorf("unexpected label %q", alg.Label)
	}
}
