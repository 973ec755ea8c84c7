// Package links resolves a session's audience to its external video
// URL. The mapping is static configuration, not layout logic.
package links

import "tableflip.dev/crono/pkg/schedule"

// DefaultChannel is the conference YouTube channel every audience maps
// to unless the config overrides it.
const DefaultChannel = "https://www.youtube.com/channel/UCKXmodit6c2irD6w2i3o1wA"

// Resolver maps audiences to URLs.
type Resolver struct {
	urls map[schedule.Audience]string
}

// New builds a resolver from per-audience overrides; empty entries fall
// back to the default channel.
func New(overrides map[schedule.Audience]string) *Resolver {
	urls := map[schedule.Audience]string{
		schedule.Youth:    DefaultChannel,
		schedule.Teens:    DefaultChannel,
		schedule.Everyone: DefaultChannel,
	}
	for aud, u := range overrides {
		if u != "" {
			urls[aud] = u
		}
	}
	return &Resolver{urls: urls}
}

// URLFor returns the link-out target for an audience.
func (r *Resolver) URLFor(a schedule.Audience) string {
	return r.urls[a]
}
