package sftpclient

import (
	"context"
	"strings"
	"testing"
)

func TestUploadFileRequiresCredentials(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"missing host", Config{User: "u", Pass: "p"}},
		{"missing user", Config{Host: "h", Pass: "p"}},
		{"missing pass", Config{Host: "h", User: "u"}},
	}

	for _, tc := range testCases {
		err := UploadFile(context.Background(), tc.cfg, "file.csv", "file.csv")
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), "missing env") {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestDialRespectsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// unroutable address; the canceled context must win immediately
	_, err := dial(ctx, Config{Host: "192.0.2.1", Port: 22, User: "u", Pass: "p"})
	if err == nil {
		t.Fatal("Expected error for canceled context")
	}
	if !strings.Contains(err.Error(), "canceled") {
		t.Errorf("Expected cancellation error, got %v", err)
	}
}
