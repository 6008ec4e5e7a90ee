package config

import (
	"fmt"
	"strings"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionAttack
	ActionCast
	ActionNextSpell
	ActionPrevSpell
	ActionSpell1
	ActionSpell2
	ActionSpell3
	ActionSpell4
	ActionSpell5
	ActionToggleInvincible
	ActionSkipLevel
	ActionCount // Must be last - used for array sizing
)

// Actions is the set of action flags held during one tick.
type Actions [ActionCount]bool

// Held reports whether any of the given actions is held.
func (a Actions) Held(ids ...ActionID) bool {
	for _, id := range ids {
		if id > ActionNone && id < ActionCount && a[id] {
			return true
		}
	}
	return false
}

// With returns a copy of a with the given actions held.
func (a Actions) With(ids ...ActionID) Actions {
	for _, id := range ids {
		if id > ActionNone && id < ActionCount {
			a[id] = true
		}
	}
	return a
}

var actionNames = map[string]ActionID{
	"left":       ActionMoveLeft,
	"right":      ActionMoveRight,
	"up":         ActionMoveUp,
	"down":       ActionMoveDown,
	"jump":       ActionJump,
	"attack":     ActionAttack,
	"cast":       ActionCast,
	"next":       ActionNextSpell,
	"prev":       ActionPrevSpell,
	"spell1":     ActionSpell1,
	"spell2":     ActionSpell2,
	"spell3":     ActionSpell3,
	"spell4":     ActionSpell4,
	"spell5":     ActionSpell5,
	"invincible": ActionToggleInvincible,
	"skip":       ActionSkipLevel,
}

// ParseAction maps a script token such as "jump" to its ActionID.
func ParseAction(name string) (ActionID, error) {
	id, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return id, nil
}

// SpellActions lists the direct spell selection actions in slot order.
var SpellActions = [...]ActionID{ActionSpell1, ActionSpell2, ActionSpell3, ActionSpell4, ActionSpell5}
