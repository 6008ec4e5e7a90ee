package cmd

import (
	"testing"

	"github.com/automoto/chain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript("right:2, jump+right:1,wait:1")
	require.NoError(t, err)
	assert.Equal(t, 4, script.Len())

	right := config.Actions{}.With(config.ActionMoveRight)
	jumpRight := right.With(config.ActionJump)

	want := []config.Actions{right, right, jumpRight, {}, right}
	for i, w := range want {
		assert.Equal(t, w, script.Next(), "tick %d", i)
	}
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := ParseScript("")
	require.NoError(t, err)
	assert.Equal(t, 0, script.Len())
	assert.Equal(t, config.Actions{}, script.Next())
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"missing count", "right", "missing tick count"},
		{"bad count", "right:x", "invalid tick count"},
		{"zero count", "right:0", "invalid tick count"},
		{"unknown action", "fly:3", "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(tt.script)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
