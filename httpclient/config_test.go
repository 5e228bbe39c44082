package httpclient

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.Encoding != "utf-8" {
		t.Errorf("expected default encoding utf-8, got %q", cfg.Encoding)
	}
	if cfg.Name != "http" {
		t.Errorf("expected default name http, got %q", cfg.Name)
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Name: "orders", Timeout: 3 * time.Second, Encoding: "gbk"}
	cfg.ApplyDefaults()
	if cfg.Timeout != 3*time.Second || cfg.Encoding != "gbk" || cfg.Name != "orders" {
		t.Errorf("defaults overwrote explicit values: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Timeout: time.Second, Encoding: "utf-8"}, false},
		{"valid base url", Config{BaseURL: "http://x/api", Timeout: time.Second, Encoding: "utf-8"}, false},
		{"legacy encoding", Config{Timeout: time.Second, Encoding: "windows-1252"}, false},
		{"zero timeout", Config{Encoding: "utf-8"}, true},
		{"negative timeout", Config{Timeout: -1, Encoding: "utf-8"}, true},
		{"unknown encoding", Config{Timeout: time.Second, Encoding: "klingon"}, true},
		{"bad base url", Config{BaseURL: "not a url", Timeout: time.Second, Encoding: "utf-8"}, true},
		{"bearer auth", Config{Timeout: time.Second, Encoding: "utf-8", Auth: BearerAuth("t")}, false},
		{"bearer without token", Config{Timeout: time.Second, Encoding: "utf-8", Auth: &AuthConfig{Type: AuthBearer}}, true},
		{"unknown auth type", Config{Timeout: time.Second, Encoding: "utf-8", Auth: &AuthConfig{Type: "digest"}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Encoding: "klingon"}); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}
