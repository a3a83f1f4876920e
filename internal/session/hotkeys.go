package session

import "powder-sandbox/internal/sims/powder"

var hotkeys = map[rune]powder.Material{
	'1': powder.Sand,
	'2': powder.Water,
	'3': powder.Stone,
	'4': powder.Wood,
	'5': powder.Fire,
	'6': powder.Oil,
	'7': powder.Lava,
	'8': powder.Plant,
	'9': powder.Gunpowder,
	'0': powder.Acid,
	'W': powder.Wall,
	'L': powder.Lightning,
	'H': powder.Human,
	'h': powder.Human,
	'Z': powder.Zombie,
	'D': powder.Dirt,
}

// Hotkey resolves a material shortcut key.
func Hotkey(r rune) (powder.Material, bool) {
	m, ok := hotkeys[r]
	return m, ok
}

// SelectHotkey selects the material bound to r and reports whether r was a
// material shortcut.
func (s *Session) SelectHotkey(r rune) bool {
	m, ok := Hotkey(r)
	if !ok {
		return false
	}
	return s.SetTool(m)
}
