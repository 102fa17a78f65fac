package core

import (
	"errors"
	"io/fs"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Order(t *testing.T) {
	levels := Levels()
	for i := range levels {
		for j := range levels {
			got := Compare(levels[i], levels[j])
			var want int
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", levels[i], levels[j], got, want)
			}
			if (levels[i] < levels[j]) != (i < j) {
				t.Errorf("%v < %v disagrees with declaration order", levels[i], levels[j])
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"INFO", InfoLevel, false},
		{"info", InfoLevel, false},
		{"Warn", WarnLevel, false},
		{"WARNING", WarnLevel, false},
		{" ERROR ", ErrorLevel, false},
		{"DEBUG", InfoLevel, true},
		{"", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrConfig) {
				t.Errorf("ParseLevel(%q) error %v does not match ErrConfig", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", l, err)
		}
		var got Level
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != l {
			t.Errorf("round trip of %v gave %v", l, got)
		}
	}

	if _, err := Level(9).MarshalText(); err == nil {
		t.Error("MarshalText of an undeclared level should fail")
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	e1.Message = "test"
	e1.Level = ErrorLevel
	e1.Time = time.Now()
	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if !e2.Time.IsZero() {
		t.Errorf("Expected zero time after pool reset, got %v", e2.Time)
	}

	// Must not panic
	PutEntry(nil)
}

func TestErrors(t *testing.T) {
	ioErr := &IOError{Op: "open", Path: "/nope/out.log", Err: fs.ErrPermission}
	if !errors.Is(ioErr, ErrIO) {
		t.Error("IOError should match ErrIO")
	}
	if !errors.Is(ioErr, fs.ErrPermission) {
		t.Error("IOError should unwrap to its cause")
	}
	if errors.Is(ioErr, ErrConfig) {
		t.Error("IOError must not match ErrConfig")
	}

	cfgErr := &ConfigError{Path: "pinelog.toml", Err: fs.ErrNotExist}
	if !errors.Is(cfgErr, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	if !errors.Is(cfgErr, fs.ErrNotExist) {
		t.Error("ConfigError should unwrap to its cause")
	}
	if got := cfgErr.Error(); got != "load settings pinelog.toml: file does not exist" {
		t.Errorf("ConfigError.Error() = %q", got)
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
