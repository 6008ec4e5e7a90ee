package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/chain/config"
)

type segment struct {
	held  config.Actions
	ticks int
}

// Script replays held-action segments in a loop. A script like
// "right:120,jump+right:1,wait:30" holds right for 120 ticks, then jump and
// right for one tick, then nothing for 30 ticks.
type Script struct {
	segments []segment
	index    int
	elapsed  int
}

// ParseScript parses a comma separated list of "action+action:ticks"
// segments. An empty script holds nothing.
func ParseScript(s string) (*Script, error) {
	script := &Script{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		names, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script segment %q: missing tick count", part)
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("script segment %q: invalid tick count", part)
		}

		var held config.Actions
		for _, name := range strings.Split(names, "+") {
			if strings.TrimSpace(name) == "wait" {
				continue
			}
			id, err := config.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("script segment %q: %w", part, err)
			}
			held = held.With(id)
		}
		script.segments = append(script.segments, segment{held: held, ticks: ticks})
	}
	return script, nil
}

// Next returns the actions held for the coming tick.
func (s *Script) Next() config.Actions {
	if len(s.segments) == 0 {
		return config.Actions{}
	}
	seg := s.segments[s.index]
	s.elapsed++
	if s.elapsed >= seg.ticks {
		s.elapsed = 0
		s.index = (s.index + 1) % len(s.segments)
	}
	return seg.held
}

// Len returns the number of ticks in one pass of the script.
func (s *Script) Len() int {
	total := 0
	for _, seg := range s.segments {
		total += seg.ticks
	}
	return total
}
