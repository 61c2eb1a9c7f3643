package watch

import (
	"testing"

	"github.com/farisv/iconmill/config"
	"github.com/farisv/iconmill/internal/batch"
)

func TestWantsFile(t *testing.T) {
	w := &Watcher{Driver: &batch.Driver{Cfg: config.Default()}}

	tests := []struct {
		path string
		want bool
	}{
		{"/icons/home.svg", true},
		{"/icons/home-active.svg", true},
		{"/icons/home.png", false},
		{"/icons/home_temp.svg", false},
		{"/icons/home-active_temp.svg", false},
		{"/icons/iconmill.yaml", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.wantsFile(tt.path); got != tt.want {
				t.Errorf("wantsFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
