package powder

import (
	"strconv"

	"powder-sandbox/internal/core"
)

var paramGroupOrder = []string{"Powders", "Liquids", "Gases", "Fire", "Lightning", "Agents", "Growth", "Conduction", "Tools"}

// Parameters describes the world settings and the full rule table.
func (w *World) Parameters() core.ParameterSnapshot {
	w.mu.Lock()
	cfg := w.cfg
	w.mu.Unlock()

	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
				stringParam("preset", "Preset", string(cfg.Preset)),
			},
		},
	}
	for _, name := range paramGroupOrder {
		group := core.ParameterGroup{Name: name}
		for _, f := range paramFields {
			if f.group == name {
				group.Params = append(group.Params, intParam(f.key, f.label, *f.ptr(&cfg.Params)))
			}
		}
		if name == "Agents" {
			group.Params = append(group.Params, boolParam(humanFleeKey, "Humans flee zombies", cfg.Params.HumanFlee))
		}
		groups = append(groups, group)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule-table entries a HUD can nudge.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(paramFields))
	for _, f := range paramFields {
		step := 1
		if f.max > maxPercent {
			step = 5
		}
		controls = append(controls, core.ParameterControl{
			Key:   f.key,
			Label: f.label,
			Step:  step,
			Min:   f.min,
			Max:   f.max,
		})
	}
	return controls
}

// SetIntParameter updates one rule-table entry. Values are clamped to the
// entry's bounds; unknown keys report false.
func (w *World) SetIntParameter(key string, value int) bool {
	f, ok := lookupParamField(key)
	if !ok {
		return false
	}
	value = min(max(value, f.min), f.max)

	w.mu.Lock()
	defer w.mu.Unlock()
	params := w.cfg.Params
	*f.ptr(&params) = value
	params.normalize()
	w.cfg.Params = params
	w.engine.SetParams(params)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
