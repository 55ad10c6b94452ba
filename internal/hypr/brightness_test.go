package hypr

import (
	"errors"
	"testing"
)

func TestBrightness_ParsesPercentOutput(t *testing.T) {
	tests := []struct {
		name    string
		result  RunResult
		err     error
		percent int
		ok      bool
	}{
		{name: "plain number", result: RunResult{Stdout: "90\n"}, percent: 90, ok: true},
		{name: "percent suffix", result: RunResult{Stdout: "45%\n"}, percent: 45, ok: true},
		{name: "tool missing", err: errors.New("not found"), ok: false},
		{name: "nonzero exit", result: RunResult{ExitCode: 1}, ok: false},
		{name: "garbage output", result: RunResult{Stdout: "current brightness"}, ok: false},
		{name: "out of range", result: RunResult{Stdout: "250"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClientWithRunner(&fakeRunner{result: tt.result, err: tt.err})

			percent, ok := client.Brightness()
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && percent != tt.percent {
				t.Errorf("Expected %d%%, got %d%%", tt.percent, percent)
			}
		})
	}
}

func TestSetBrightness(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClientWithRunner(runner)

	if err := client.SetBrightness(75); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	want := []string{"brightnessctl", "s", "75%", "-q"}
	got := runner.calls[0]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("argv[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSetBrightness_RejectsOutOfRange(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClientWithRunner(runner)

	for _, percent := range []int{0, -5, 101} {
		if err := client.SetBrightness(percent); err == nil {
			t.Errorf("Expected error for %d%%, got nil", percent)
		}
	}
	if len(runner.calls) != 0 {
		t.Errorf("Expected no invocations for invalid input, got %d", len(runner.calls))
	}
}
