package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iudwgerte/Lighthouse/internal/keystore"
	"github.com/iudwgerte/Lighthouse/internal/zobrist"
)

func TestRenderMask(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		mask    string
		shift   string
		marks   int
		wantErr bool
	}{
		{"rank2", "0xff00", "", 8, false},
		{"rank2 double push", "0xFF00", "nn", 8, false},
		{"file h east", "0x8080808080808080", "e", 0, false},
		{"bad hex", "0xzz", "", 0, true},
		{"bad direction", "0xff", "up", 0, true},
	}
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".svg")
			err := renderMask(path, tc.mask, tc.shift, 24, false)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("renderMask: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if got := strings.Count(string(data), "<circle"); got != tc.marks {
				t.Errorf("%d marks, want %d", got, tc.marks)
			}
		})
	}
}

func TestVerifyKeys(t *testing.T) {
	base := t.TempDir()
	keys := zobrist.New()

	if err := verifyKeys(keys, base); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if err := verifyKeys(keys, base); err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if err := verifyKeys(zobrist.NewWithSeed(5), base); !errors.Is(err, keystore.ErrKeyDrift) {
		t.Errorf("verify with other seed: %v, want ErrKeyDrift", err)
	}
}
