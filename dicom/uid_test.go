// Copyright 2026 The ImageJ-DICOM-Writer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestClockUIDProvider(t *testing.T) {
	p := NewClockUIDProvider("1.2.3")
	p.now = func() time.Time { return time.UnixMilli(1700000000123) }

	for _, want := range []string{"1.2.3.1700000000123.1", "1.2.3.1700000000123.2"} {
		got, err := p.NewUID()
		if err != nil {
			t.Fatalf("NewUID: %v", err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestClockUIDProvider_defaultRoot(t *testing.T) {
	got, err := NewClockUIDProvider("").NewUID()
	if err != nil {
		t.Fatalf("NewUID: %v", err)
	}
	if !strings.HasPrefix(got, DefaultUIDRoot+".") {
		t.Fatalf("got %v, want prefix %v", got, DefaultUIDRoot)
	}
}

func TestClockUIDProvider_concurrentUIDsAreUnique(t *testing.T) {
	p := NewClockUIDProvider(DefaultUIDRoot)

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				uid, err := p.NewUID()
				if err != nil {
					t.Errorf("NewUID: %v", err)
					return
				}
				mu.Lock()
				if seen[uid] {
					t.Errorf("duplicate uid %v", uid)
				}
				seen[uid] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}

func TestClockUIDProvider_invalidRoot(t *testing.T) {
	if _, err := NewClockUIDProvider("1.02.a").NewUID(); err == nil {
		t.Fatal("expected error for an invalid root")
	}
}

func TestUUIDProvider(t *testing.T) {
	first, err := UUIDProvider{}.NewUID()
	if err != nil {
		t.Fatalf("NewUID: %v", err)
	}
	second, err := UUIDProvider{}.NewUID()
	if err != nil {
		t.Fatalf("NewUID: %v", err)
	}

	for _, uid := range []string{first, second} {
		if !strings.HasPrefix(uid, "2.25.") {
			t.Fatalf("got %v, want prefix 2.25.", uid)
		}
		if err := ValidateUID(uid); err != nil {
			t.Fatalf("ValidateUID(%v): %v", uid, err)
		}
	}
	if first == second {
		t.Fatalf("expected distinct uids, got %v twice", first)
	}
}

func TestStaticUIDProvider(t *testing.T) {
	got, err := StaticUIDProvider("1.2.3").NewUID()
	if err != nil {
		t.Fatalf("NewUID: %v", err)
	}
	if got != "1.2.3" {
		t.Fatalf("got %v, want 1.2.3", got)
	}
	if _, err := StaticUIDProvider("").NewUID(); err == nil {
		t.Fatal("expected error for an empty uid")
	}
}

func TestValidateUID(t *testing.T) {
	tests := []struct {
		name    string
		uid     string
		wantErr bool
	}{
		{"valid", "1.2.840.10008.1.2.1", false},
		{"zero component", "1.0.2", false},
		{"64 characters", "1." + strings.Repeat("2", 62), false},
		{"empty", "", true},
		{"65 characters", "1." + strings.Repeat("2", 63), true},
		{"leading zero", "1.02", true},
		{"empty component", "1..2", true},
		{"trailing dot", "1.2.", true},
		{"non digit", "1.2a", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUID(tc.uid)
			if (err != nil) != tc.wantErr {
				t.Fatalf("got error %v, want error: %v", err, tc.wantErr)
			}
		})
	}
}
