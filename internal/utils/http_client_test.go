// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient("", 0)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != defaultBaseURL {
		t.Errorf("expected base url %s, got %s", defaultBaseURL, client.BaseURL)
	}
	if client.GetClient().Timeout != defaultClientTimeout {
		t.Errorf("expected timeout %v, got %v", defaultClientTimeout, client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	client := NewHTTPClient("http://example.test:9000/", 3*time.Second)

	if client.BaseURL != "http://example.test:9000" {
		t.Errorf("unexpected base url %s", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("unexpected timeout %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient("", 0)
	c2 := NewHTTPClient("", 0)

	if c1 == c2 || c1.Client == c2.Client {
		t.Fatal("expected independent client instances")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 36 {
			t.Fatalf("unexpected id shape %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
