package earlyinit

import (
	"os"
	"testing"
)

func TestIsServe(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"nil args", nil, false},
		{"empty args", []string{}, false},
		{"only program name", []string{"codeintel"}, false},
		{"serve", []string{"codeintel", "serve"}, true},
		{"serve with flags", []string{"codeintel", "serve", "--port", "8080"}, true},
		{"other subcommand", []string{"codeintel", "list"}, false},
		{"serve as later arg", []string{"codeintel", "show", "serve"}, false},
		{"flag before serve", []string{"codeintel", "--port", "serve"}, false},
		{"similar but wrong", []string{"codeintel", "server"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsServe(tt.args); got != tt.want {
				t.Errorf("IsServe(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRestore(t *testing.T) {
	prevServing, prevOrig := Serving, OrigTERM
	t.Cleanup(func() { Serving, OrigTERM = prevServing, prevOrig })

	t.Setenv("TERM", "dumb")

	Serving = false
	OrigTERM = "xterm-256color"
	Restore()
	if got := os.Getenv("TERM"); got != "dumb" {
		t.Errorf("Restore without Serving changed TERM to %q", got)
	}

	Serving = true
	Restore()
	if got := os.Getenv("TERM"); got != "xterm-256color" {
		t.Errorf("TERM = %q, want xterm-256color", got)
	}

	OrigTERM = ""
	Restore()
	if _, ok := os.LookupEnv("TERM"); ok {
		t.Error("TERM should be unset when it was unset originally")
	}
}
