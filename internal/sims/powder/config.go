package powder

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Params holds every probability (percent), lifetime (ticks), charge level
// and radius the material rules consult.
type Params struct {
	SandSeaweedTicks int `yaml:"sand_seaweed_ticks"`

	LiquidSideDisplaceChance int `yaml:"liquid_side_displace_chance"`
	QuenchSmokeLife          int `yaml:"quench_smoke_life"`
	QuenchSteamChance        int `yaml:"quench_steam_chance"`
	SteamLife                int `yaml:"steam_life"`
	WetDirtMoisture          int `yaml:"wet_dirt_moisture"`
	OilFireLife              int `yaml:"oil_fire_life"`
	AcidToxicChance          int `yaml:"acid_toxic_chance"`
	AcidConsumeChance        int `yaml:"acid_consume_chance"`
	AcidSaltChance           int `yaml:"acid_salt_chance"`
	AcidSteamChance          int `yaml:"acid_steam_chance"`
	ToxicLife                int `yaml:"toxic_life"`
	LavaIgniteLife           int `yaml:"lava_ignite_life"`
	LavaMaxAge               int `yaml:"lava_max_age"`

	GasSideRiseChance   int `yaml:"gas_side_rise_chance"`
	HydrogenRiseSteps   int `yaml:"hydrogen_rise_steps"`
	HydrogenBlastRadius int `yaml:"hydrogen_blast_radius"`
	GasFireLife         int `yaml:"gas_fire_life"`
	ChlorinePlantChance int `yaml:"chlorine_plant_chance"`
	SteamCondenseChance int `yaml:"steam_condense_chance"`
	SmokeAshChance      int `yaml:"smoke_ash_chance"`

	FireRiseChance       int `yaml:"fire_rise_chance"`
	FireIgniteChance     int `yaml:"fire_ignite_chance"`
	FireLifeMin          int `yaml:"fire_life_min"`
	FireLifeMax          int `yaml:"fire_life_max"`
	FireSmokeLife        int `yaml:"fire_smoke_life"`
	FireChargeChance     int `yaml:"fire_charge_chance"`
	FireChargeLevel      int `yaml:"fire_charge_level"`
	GunpowderBlastRadius int `yaml:"gunpowder_blast_radius"`

	LightningLife        int `yaml:"lightning_life"`
	LightningWireCharge  int `yaml:"lightning_wire_charge"`
	LightningWaterCharge int `yaml:"lightning_water_charge"`
	LightningFireMin     int `yaml:"lightning_fire_min"`
	LightningFireMax     int `yaml:"lightning_fire_max"`
	LightningBlastRadius int `yaml:"lightning_blast_radius"`

	AgentSightRadius   int  `yaml:"agent_sight_radius"`
	AgentClimbChance   int  `yaml:"agent_climb_chance"`
	HumanFightChance   int  `yaml:"human_fight_chance"`
	HumanTorchChance   int  `yaml:"human_torch_chance"`
	TorchLifeMin       int  `yaml:"torch_life_min"`
	TorchLifeMax       int  `yaml:"torch_life_max"`
	ZombieInfectChance int  `yaml:"zombie_infect_chance"`
	InfectFireLife     int  `yaml:"infect_fire_life"`
	ZombieDeathLife    int  `yaml:"zombie_death_life"`
	HumanFlee          bool `yaml:"human_flee"`

	PlantFireLife     int `yaml:"plant_fire_life"`
	PlantGrowChance   int `yaml:"plant_grow_chance"`
	SeaweedGrowChance int `yaml:"seaweed_grow_chance"`
	WoodFireLife      int `yaml:"wood_fire_life"`
	CoalFireLife      int `yaml:"coal_fire_life"`

	WireIgniteChance int `yaml:"wire_ignite_chance"`
	WireBlastChance  int `yaml:"wire_blast_chance"`
	IceMeltChance    int `yaml:"ice_melt_chance"`

	BrushGasLife       int `yaml:"brush_gas_life"`
	BrushFireLife      int `yaml:"brush_fire_life"`
	ExplodeFireChance  int `yaml:"explode_fire_chance"`
	ExplodeSmokeChance int `yaml:"explode_smoke_chance"`
	ExplodeFireLifeMin int `yaml:"explode_fire_life_min"`
	ExplodeFireLifeMax int `yaml:"explode_fire_life_max"`
	ExplodeSmokeLife   int `yaml:"explode_smoke_life"`
	ExplodeGasLife     int `yaml:"explode_gas_life"`
}

// DefaultParams returns the stock rule table.
func DefaultParams() Params {
	return Params{
		SandSeaweedTicks: 220,

		LiquidSideDisplaceChance: 50,
		QuenchSmokeLife:          15,
		QuenchSteamChance:        50,
		SteamLife:                20,
		WetDirtMoisture:          300,
		OilFireLife:              25,
		AcidToxicChance:          30,
		AcidConsumeChance:        25,
		AcidSaltChance:           30,
		AcidSteamChance:          30,
		ToxicLife:                25,
		LavaIgniteLife:           25,
		LavaMaxAge:               200,

		GasSideRiseChance:   50,
		HydrogenRiseSteps:   2,
		HydrogenBlastRadius: 4,
		GasFireLife:         12,
		ChlorinePlantChance: 35,
		SteamCondenseChance: 15,
		SmokeAshChance:      8,

		FireRiseChance:       50,
		FireIgniteChance:     40,
		FireLifeMin:          15,
		FireLifeMax:          25,
		FireSmokeLife:        15,
		FireChargeChance:     5,
		FireChargeLevel:      5,
		GunpowderBlastRadius: 5,

		LightningLife:        2,
		LightningWireCharge:  12,
		LightningWaterCharge: 8,
		LightningFireMin:     20,
		LightningFireMax:     30,
		LightningBlastRadius: 6,

		AgentSightRadius:   6,
		AgentClimbChance:   70,
		HumanFightChance:   35,
		HumanTorchChance:   60,
		TorchLifeMin:       10,
		TorchLifeMax:       20,
		ZombieInfectChance: 70,
		InfectFireLife:     10,
		ZombieDeathLife:    15,

		PlantFireLife:     20,
		PlantGrowChance:   2,
		SeaweedGrowChance: 2,
		WoodFireLife:      25,
		CoalFireLife:      35,

		WireIgniteChance: 15,
		WireBlastChance:  35,
		IceMeltChance:    25,

		BrushGasLife:       25,
		BrushFireLife:      20,
		ExplodeFireChance:  50,
		ExplodeSmokeChance: 30,
		ExplodeFireLifeMin: 15,
		ExplodeFireLifeMax: 25,
		ExplodeSmokeLife:   20,
		ExplodeGasLife:     20,
	}
}

// paramField binds one integer tunable to its key, bounds and group.
type paramField struct {
	key   string
	label string
	group string
	min   int
	max   int
	ptr   func(*Params) *int
}

const (
	maxPercent  = 100
	maxLifetime = 10000
	maxRadius   = 32
)

var paramFields = []paramField{
	{"sand_seaweed_ticks", "Sand seaweed ticks", "Powders", 1, maxLifetime, func(p *Params) *int { return &p.SandSeaweedTicks }},

	{"liquid_side_displace_chance", "Liquid side displace %", "Liquids", 0, maxPercent, func(p *Params) *int { return &p.LiquidSideDisplaceChance }},
	{"quench_smoke_life", "Quench smoke life", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.QuenchSmokeLife }},
	{"quench_steam_chance", "Quench steam %", "Liquids", 0, maxPercent, func(p *Params) *int { return &p.QuenchSteamChance }},
	{"steam_life", "Steam life", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.SteamLife }},
	{"wet_dirt_moisture", "Wet dirt moisture", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.WetDirtMoisture }},
	{"oil_fire_life", "Oil fire life", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.OilFireLife }},
	{"acid_toxic_chance", "Acid toxic %", "Liquids", 0, maxPercent, func(p *Params) *int { return &p.AcidToxicChance }},
	{"acid_consume_chance", "Acid consume %", "Liquids", 0, maxPercent, func(p *Params) *int { return &p.AcidConsumeChance }},
	{"acid_salt_chance", "Acid salt %", "Liquids", 0, maxPercent, func(p *Params) *int { return &p.AcidSaltChance }},
	{"acid_steam_chance", "Acid steam %", "Liquids", 0, maxPercent, func(p *Params) *int { return &p.AcidSteamChance }},
	{"toxic_life", "Toxic gas life", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.ToxicLife }},
	{"lava_ignite_life", "Lava ignite life", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.LavaIgniteLife }},
	{"lava_max_age", "Lava max age", "Liquids", 1, maxLifetime, func(p *Params) *int { return &p.LavaMaxAge }},

	{"gas_side_rise_chance", "Gas side rise %", "Gases", 0, maxPercent, func(p *Params) *int { return &p.GasSideRiseChance }},
	{"hydrogen_rise_steps", "Hydrogen rise steps", "Gases", 1, 8, func(p *Params) *int { return &p.HydrogenRiseSteps }},
	{"hydrogen_blast_radius", "Hydrogen blast radius", "Gases", 0, maxRadius, func(p *Params) *int { return &p.HydrogenBlastRadius }},
	{"gas_fire_life", "Gas fire life", "Gases", 1, maxLifetime, func(p *Params) *int { return &p.GasFireLife }},
	{"chlorine_plant_chance", "Chlorine plant %", "Gases", 0, maxPercent, func(p *Params) *int { return &p.ChlorinePlantChance }},
	{"steam_condense_chance", "Steam condense %", "Gases", 0, maxPercent, func(p *Params) *int { return &p.SteamCondenseChance }},
	{"smoke_ash_chance", "Smoke ash %", "Gases", 0, maxPercent, func(p *Params) *int { return &p.SmokeAshChance }},

	{"fire_rise_chance", "Fire rise %", "Fire", 0, maxPercent, func(p *Params) *int { return &p.FireRiseChance }},
	{"fire_ignite_chance", "Fire ignite %", "Fire", 0, maxPercent, func(p *Params) *int { return &p.FireIgniteChance }},
	{"fire_life_min", "Fire life min", "Fire", 1, maxLifetime, func(p *Params) *int { return &p.FireLifeMin }},
	{"fire_life_max", "Fire life max", "Fire", 1, maxLifetime, func(p *Params) *int { return &p.FireLifeMax }},
	{"fire_smoke_life", "Fire smoke life", "Fire", 1, maxLifetime, func(p *Params) *int { return &p.FireSmokeLife }},
	{"fire_charge_chance", "Fire charge %", "Fire", 0, maxPercent, func(p *Params) *int { return &p.FireChargeChance }},
	{"fire_charge_level", "Fire charge level", "Fire", 0, maxLifetime, func(p *Params) *int { return &p.FireChargeLevel }},
	{"gunpowder_blast_radius", "Gunpowder blast radius", "Fire", 0, maxRadius, func(p *Params) *int { return &p.GunpowderBlastRadius }},

	{"lightning_life", "Lightning life", "Lightning", 1, maxLifetime, func(p *Params) *int { return &p.LightningLife }},
	{"lightning_wire_charge", "Lightning wire charge", "Lightning", 0, maxLifetime, func(p *Params) *int { return &p.LightningWireCharge }},
	{"lightning_water_charge", "Lightning water charge", "Lightning", 0, maxLifetime, func(p *Params) *int { return &p.LightningWaterCharge }},
	{"lightning_fire_min", "Lightning fire min", "Lightning", 1, maxLifetime, func(p *Params) *int { return &p.LightningFireMin }},
	{"lightning_fire_max", "Lightning fire max", "Lightning", 1, maxLifetime, func(p *Params) *int { return &p.LightningFireMax }},
	{"lightning_blast_radius", "Lightning blast radius", "Lightning", 0, maxRadius, func(p *Params) *int { return &p.LightningBlastRadius }},

	{"agent_sight_radius", "Agent sight radius", "Agents", 0, maxRadius, func(p *Params) *int { return &p.AgentSightRadius }},
	{"agent_climb_chance", "Agent climb %", "Agents", 0, maxPercent, func(p *Params) *int { return &p.AgentClimbChance }},
	{"human_fight_chance", "Human fight %", "Agents", 0, maxPercent, func(p *Params) *int { return &p.HumanFightChance }},
	{"human_torch_chance", "Human torch %", "Agents", 0, maxPercent, func(p *Params) *int { return &p.HumanTorchChance }},
	{"torch_life_min", "Torch life min", "Agents", 1, maxLifetime, func(p *Params) *int { return &p.TorchLifeMin }},
	{"torch_life_max", "Torch life max", "Agents", 1, maxLifetime, func(p *Params) *int { return &p.TorchLifeMax }},
	{"zombie_infect_chance", "Zombie infect %", "Agents", 0, maxPercent, func(p *Params) *int { return &p.ZombieInfectChance }},
	{"infect_fire_life", "Infect fire life", "Agents", 1, maxLifetime, func(p *Params) *int { return &p.InfectFireLife }},
	{"zombie_death_life", "Zombie death fire life", "Agents", 1, maxLifetime, func(p *Params) *int { return &p.ZombieDeathLife }},

	{"plant_fire_life", "Plant fire life", "Growth", 1, maxLifetime, func(p *Params) *int { return &p.PlantFireLife }},
	{"plant_grow_chance", "Plant grow %", "Growth", 0, maxPercent, func(p *Params) *int { return &p.PlantGrowChance }},
	{"seaweed_grow_chance", "Seaweed grow %", "Growth", 0, maxPercent, func(p *Params) *int { return &p.SeaweedGrowChance }},
	{"wood_fire_life", "Wood fire life", "Growth", 1, maxLifetime, func(p *Params) *int { return &p.WoodFireLife }},
	{"coal_fire_life", "Coal fire life", "Growth", 1, maxLifetime, func(p *Params) *int { return &p.CoalFireLife }},

	{"wire_ignite_chance", "Wire ignite %", "Conduction", 0, maxPercent, func(p *Params) *int { return &p.WireIgniteChance }},
	{"wire_blast_chance", "Wire blast %", "Conduction", 0, maxPercent, func(p *Params) *int { return &p.WireBlastChance }},
	{"ice_melt_chance", "Ice melt %", "Conduction", 0, maxPercent, func(p *Params) *int { return &p.IceMeltChance }},

	{"brush_gas_life", "Brush gas life", "Tools", 1, maxLifetime, func(p *Params) *int { return &p.BrushGasLife }},
	{"brush_fire_life", "Brush fire life", "Tools", 1, maxLifetime, func(p *Params) *int { return &p.BrushFireLife }},
	{"explode_fire_chance", "Explosion fire %", "Tools", 0, maxPercent, func(p *Params) *int { return &p.ExplodeFireChance }},
	{"explode_smoke_chance", "Explosion smoke %", "Tools", 0, maxPercent, func(p *Params) *int { return &p.ExplodeSmokeChance }},
	{"explode_fire_life_min", "Explosion fire life min", "Tools", 1, maxLifetime, func(p *Params) *int { return &p.ExplodeFireLifeMin }},
	{"explode_fire_life_max", "Explosion fire life max", "Tools", 1, maxLifetime, func(p *Params) *int { return &p.ExplodeFireLifeMax }},
	{"explode_smoke_life", "Explosion smoke life", "Tools", 1, maxLifetime, func(p *Params) *int { return &p.ExplodeSmokeLife }},
	{"explode_gas_life", "Explosion gas life", "Tools", 1, maxLifetime, func(p *Params) *int { return &p.ExplodeGasLife }},
}

const humanFleeKey = "human_flee"

func lookupParamField(key string) (paramField, bool) {
	for _, f := range paramFields {
		if f.key == key {
			return f, true
		}
	}
	return paramField{}, false
}

// Validate reports the first out-of-range or inconsistent value.
func (p Params) Validate() error {
	var errs []error
	for _, f := range paramFields {
		v := *f.ptr(&p)
		if v < f.min || v > f.max {
			errs = append(errs, fmt.Errorf("%s=%d outside [%d, %d]", f.key, v, f.min, f.max))
		}
	}
	ranges := [][2]string{
		{"fire_life_min", "fire_life_max"},
		{"lightning_fire_min", "lightning_fire_max"},
		{"torch_life_min", "torch_life_max"},
		{"explode_fire_life_min", "explode_fire_life_max"},
	}
	for _, r := range ranges {
		lo, _ := lookupParamField(r[0])
		hi, _ := lookupParamField(r[1])
		if *lo.ptr(&p) > *hi.ptr(&p) {
			errs = append(errs, fmt.Errorf("%s exceeds %s", r[0], r[1]))
		}
	}
	if p.ExplodeFireChance+p.ExplodeSmokeChance > maxPercent {
		errs = append(errs, errors.New("explode_fire_chance + explode_smoke_chance exceeds 100"))
	}
	return errors.Join(errs...)
}

// normalize keeps every min/max pair ordered after piecemeal overrides.
func (p *Params) normalize() {
	if p.FireLifeMax < p.FireLifeMin {
		p.FireLifeMax = p.FireLifeMin
	}
	if p.LightningFireMax < p.LightningFireMin {
		p.LightningFireMax = p.LightningFireMin
	}
	if p.TorchLifeMax < p.TorchLifeMin {
		p.TorchLifeMax = p.TorchLifeMin
	}
	if p.ExplodeFireLifeMax < p.ExplodeFireLifeMin {
		p.ExplodeFireLifeMax = p.ExplodeFireLifeMin
	}
}

// LoadParams reads a YAML rule table. Keys missing from the file keep their
// default values.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read params file %s: %w", path, err)
	}
	params, err := ParseParams(data)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}

// ParseParams decodes a YAML rule table on top of the defaults.
func ParseParams(data []byte) (Params, error) {
	params := DefaultParams()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return Params{}, fmt.Errorf("failed to parse params YAML: %w", err)
	}
	if err := params.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid params: %w", err)
	}
	return params, nil
}

// Preset names a starting layout applied by Reset.
type Preset string

const (
	PresetEmpty   Preset = "empty"
	PresetTerrain Preset = "terrain"
	PresetForest  Preset = "forest"
)

// Presets lists the known layouts.
func Presets() []Preset { return []Preset{PresetEmpty, PresetTerrain, PresetForest} }

// Config controls the sandbox dimensions, seeding and rule table.
type Config struct {
	Width  int
	Height int

	Seed   int64
	Preset Preset

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 90,
		Seed:   1337,
		Preset: PresetEmpty,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults. The
// "params" key names a YAML rule file loaded before the individual keys are
// applied.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["params"]; ok && v != "" {
		params, err := LoadParams(v)
		if err != nil {
			return c, err
		}
		c.Params = params
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["preset"]; ok {
		for _, p := range Presets() {
			if strings.EqualFold(v, string(p)) {
				c.Preset = p
			}
		}
	}
	if v, ok := cfg[humanFleeKey]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.HumanFlee = parsed
		}
	}
	for _, f := range paramFields {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= f.min && parsed <= f.max {
			*f.ptr(&c.Params) = parsed
		}
	}
	c.Params.normalize()
	return c, nil
}
