package event

import (
	"regexp"
	"strings"
)

var (
	colonVariantRe = regexp.MustCompile(`[：｜]`)
	hourMinuteRe   = regexp.MustCompile(`時(\d+)分`)
	hourOnlyRe     = regexp.MustCompile(`時$`)
	minuteMarkRe   = regexp.MustCompile(`分$`)
)

// normalizeClockTime canonicalizes a matched time fragment ("9時30分",
// "9：00", "14時") into zero-padded HH:MM. Empty input stays empty.
func normalizeClockTime(t string) string {
	if t == "" {
		return ""
	}
	t = colonVariantRe.ReplaceAllString(t, ":")
	t = hourMinuteRe.ReplaceAllString(t, ":$1")
	t = hourOnlyRe.ReplaceAllString(t, ":00")
	t = minuteMarkRe.ReplaceAllString(t, "")
	return padClock(strings.TrimSpace(t))
}

// padClock zero-pads hour and minute fields. "9:3" becomes "09:03" and a
// missing minute field counts as ":00".
func padClock(t string) string {
	h, m, found := strings.Cut(t, ":")
	if !found {
		return t
	}
	if m == "" {
		m = "00"
	}
	if len(h) == 1 {
		h = "0" + h
	}
	if len(m) == 1 {
		m = "0" + m
	}
	return h + ":" + m
}
