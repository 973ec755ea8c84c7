package links

import (
	"testing"

	"tableflip.dev/crono/pkg/schedule"
)

func TestDefaultsToChannel(t *testing.T) {
	r := New(nil)
	for _, a := range []schedule.Audience{schedule.Everyone, schedule.Youth, schedule.Teens} {
		if got := r.URLFor(a); got != DefaultChannel {
			t.Errorf("URLFor(%s) = %q, want default channel", a, got)
		}
	}
}

func TestOverridesOnlyNonEmpty(t *testing.T) {
	r := New(map[schedule.Audience]string{
		schedule.Youth: "https://example.com/jovens",
		schedule.Teens: "",
	})
	if got := r.URLFor(schedule.Youth); got != "https://example.com/jovens" {
		t.Errorf("expected override, got %q", got)
	}
	if got := r.URLFor(schedule.Teens); got != DefaultChannel {
		t.Errorf("empty override must keep the default, got %q", got)
	}
}
