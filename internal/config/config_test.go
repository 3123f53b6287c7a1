package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envUploadDir, "")
	t.Setenv(envMaxUpload, "")
	t.Setenv(envLogLevel, "")

	s := Load()
	if s.UploadDir != DefaultUploadDir {
		t.Errorf("UploadDir: got %q, want %q", s.UploadDir, DefaultUploadDir)
	}
	if s.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Errorf("MaxUploadBytes: got %d, want %d", s.MaxUploadBytes, int64(DefaultMaxUploadBytes))
	}
	if s.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", s.LogLevel, DefaultLogLevel)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(envUploadDir, "/tmp/skin-uploads")
	t.Setenv(envMaxUpload, "1024")
	t.Setenv(envLogLevel, "debug")

	s := Load()
	if s.UploadDir != "/tmp/skin-uploads" {
		t.Errorf("UploadDir: got %q", s.UploadDir)
	}
	if s.MaxUploadBytes != 1024 {
		t.Errorf("MaxUploadBytes: got %d, want 1024", s.MaxUploadBytes)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", s.LogLevel)
	}
}

func TestLoad_IgnoresMalformedMaxUpload(t *testing.T) {
	tests := []string{"not-a-number", "-5", "0"}
	for _, v := range tests {
		t.Setenv(envMaxUpload, v)
		if s := Load(); s.MaxUploadBytes != DefaultMaxUploadBytes {
			t.Errorf("MaxUploadBytes for %q: got %d, want default", v, s.MaxUploadBytes)
		}
	}
}
