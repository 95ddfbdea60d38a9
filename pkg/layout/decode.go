// Package layout implements the codec for the game's versioned level format.
//
// The .layout wire format is an append-only record sequence with no field
// keys: the order fields appear on disk is the contract, and which fields
// appear at all is a pure function of the version integer at the start of the
// stream. The decoder walks the stream strictly forward, consulting the
// version-gate tables in gate.go at every gated site. The embedded bridge
// sub-aggregate carries its own independent version and is decoded by the
// same rules whether it sits inline in a layout or arrives as a raw payload
// extracted from a save slot.
package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/ashduino101/polyparser/pkg/bin"
	"github.com/ashduino101/polyparser/pkg/sanity"
)

// Options configures a decode session. The zero value discards log output
// and uses the default sanity envelopes.
type Options struct {
	// Logger receives decode progress. If nil, output is discarded.
	Logger *log.Logger

	// Guard checks decoded counts and versions. If nil, a guard with the
	// default envelopes is used. Offense state accumulates on the guard, so
	// one decode session should use one guard.
	Guard *sanity.Guard
}

// Normalize fills in the defaults for unset fields.
func (o Options) Normalize() Options {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Guard == nil {
		o.Guard = sanity.NewGuard(sanity.DefaultConfig(), o.Logger)
	}
	return o
}

type decoder struct {
	r       *bin.Reader
	log     *log.Logger
	guard   *sanity.Guard
	version int
}

// Decode decodes a complete .layout stream. It accepts any version from 0
// upward; versions above MaxVersion decode optimistically with a warning.
// A negative raw version marks a modded layout with a trailing mod-data
// block.
func Decode(data []byte, opts Options) (*Layout, error) {
	opts = opts.Normalize()
	d := &decoder{r: bin.NewReader(data), log: opts.Logger, guard: opts.Guard}
	l := d.layout()
	if err := d.r.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// DecodeBridge decodes a bare bridge stream, as embedded in a save slot's
// primitive-array payload.
func DecodeBridge(data []byte, opts Options) (*Bridge, error) {
	opts = opts.Normalize()
	d := &decoder{r: bin.NewReader(data), log: opts.Logger, guard: opts.Guard}
	b := d.bridge()
	if err := d.r.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (d *decoder) has(f field) bool {
	return layoutGates[f].at(d.version)
}

// count reads a record count and checks it against the default envelope. A
// guard error latches onto the cursor so the sticky-error chain unwinds.
func (d *decoder) count(label string) int {
	n := int(d.r.Int32())
	if d.r.Err() != nil {
		return 0
	}
	if err := d.guard.Check(label+" count", n); err != nil {
		d.r.SetErr(err)
		return 0
	}
	d.log.Debugf("%s count: %d", label, n)
	return n
}

func (d *decoder) layout() *Layout {
	l := &Layout{}

	// The raw version comes first; everything after it is gated on it.
	raw := int(d.r.Int32())
	if raw < 0 {
		raw = -raw
		l.IsModded = true
		d.log.Info("using modded layout support")
	}
	l.Version = raw
	d.version = raw

	if err := d.guard.CheckVersion("layout version", raw); err != nil {
		d.r.SetErr(err)
		return l
	}
	d.log.Infof("decoding layout version %d", raw)
	if raw > MaxVersion {
		d.log.Warn("layout saved with a newer version of the layout format, this may cause problems")
	}

	l.StubKey = d.r.String()
	d.log.Infof("layout stub key: %s", l.StubKey)
	d.log.Infof("layout theme name: %s", ThemeName(l.StubKey))

	if d.has(fieldAnchors) {
		n := d.count("anchor")
		for i := 0; i < n; i++ {
			l.Anchors = append(l.Anchors, d.joint())
		}
	}

	if d.has(fieldPhasesEarly) {
		l.Phases = d.phases()
	}

	if d.has(fieldFullBridge) {
		l.Bridge = d.bridge()
	} else {
		// Ancient layouts carry a joint/edge/piston-only bridge inline,
		// with no version of its own.
		d.log.Warn("decoding bridge with version under 5, consider upgrading")
		n := d.count("bridge joint")
		for i := 0; i < n; i++ {
			l.Bridge.Joints = append(l.Bridge.Joints, d.joint())
		}
		n = d.count("bridge edge")
		for i := 0; i < n; i++ {
			l.Bridge.Edges = append(l.Bridge.Edges, d.edge(l.Bridge.Version))
		}
		n = d.count("bridge piston")
		for i := 0; i < n; i++ {
			l.Bridge.Pistons = append(l.Bridge.Pistons, d.piston(l.Bridge.Version))
		}
	}

	if d.has(fieldZAxisVehicles) {
		n := d.count("z-axis vehicle")
		for i := 0; i < n; i++ {
			l.ZAxisVehicles = append(l.ZAxisVehicles, d.zAxisVehicle())
		}
	}

	n := d.count("vehicle")
	for i := 0; i < n; i++ {
		l.Vehicles = append(l.Vehicles, d.vehicle())
	}

	n = d.count("vehicle stop trigger")
	for i := 0; i < n; i++ {
		l.VehicleStopTriggers = append(l.VehicleStopTriggers, d.vehicleStopTrigger())
	}

	if d.has(fieldThemeObjects) {
		d.log.Warn("theme objects are obsolete, consider upgrading the layout version")
		n = d.count("theme object")
		for i := 0; i < n; i++ {
			l.ThemeObjects = append(l.ThemeObjects, ThemeObject{
				Pos:          d.vec2(),
				PrefabName:   d.r.String(),
				UnknownValue: d.r.Bool(),
			})
		}
	}

	n = d.count("event timeline")
	for i := 0; i < n; i++ {
		l.EventTimelines = append(l.EventTimelines, d.eventTimeline())
	}

	n = d.count("checkpoint")
	for i := 0; i < n; i++ {
		l.Checkpoints = append(l.Checkpoints, d.checkpoint())
	}

	n = d.count("terrain island")
	for i := 0; i < n; i++ {
		l.TerrainStretches = append(l.TerrainStretches, d.terrainIsland())
	}

	n = d.count("platform")
	for i := 0; i < n; i++ {
		l.Platforms = append(l.Platforms, d.platform())
	}

	n = d.count("ramp")
	for i := 0; i < n; i++ {
		l.Ramps = append(l.Ramps, d.ramp())
	}

	// In the oldest revisions the hydraulic phases live here instead.
	if d.has(fieldPhasesLate) {
		l.Phases = d.phases()
	}

	n = d.count("vehicle restart phase")
	for i := 0; i < n; i++ {
		l.VehicleRestartPhases = append(l.VehicleRestartPhases, VehicleRestartPhase{
			TimeDelay:   d.r.Float32(),
			GUID:        d.r.String(),
			VehicleGUID: d.r.String(),
		})
	}

	n = d.count("flying object")
	for i := 0; i < n; i++ {
		l.FlyingObjects = append(l.FlyingObjects, FlyingObject{
			Pos:        d.vec3(),
			Scale:      d.vec3(),
			PrefabName: d.r.String(),
		})
	}

	n = d.count("rock")
	for i := 0; i < n; i++ {
		l.Rocks = append(l.Rocks, Rock{
			Pos:        d.vec3(),
			Scale:      d.vec3(),
			PrefabName: d.r.String(),
			Flipped:    d.r.Bool(),
		})
	}

	n = d.count("water block")
	for i := 0; i < n; i++ {
		l.WaterBlocks = append(l.WaterBlocks, d.waterBlock())
	}

	if d.has(fieldLegacyGarbage) {
		d.log.Warn("discarding garbage data with version under 5")
		n = d.count("garbage")
		for i := 0; i < n; i++ {
			_ = d.r.String()
			inner := d.count("garbage string")
			for j := 0; j < inner; j++ {
				_ = d.r.String()
			}
		}
	}

	l.Budget = d.budget()
	l.Settings = d.settings()

	if d.has(fieldCustomShapes) {
		n = d.count("custom shape")
		for i := 0; i < n; i++ {
			l.CustomShapes = append(l.CustomShapes, d.customShape())
		}
	}

	if d.has(fieldWorkshop) {
		l.Workshop = d.workshop()
	}

	if d.has(fieldSupportPillars) {
		n = d.count("support pillar")
		for i := 0; i < n; i++ {
			l.SupportPillars = append(l.SupportPillars, SupportPillar{
				Pos:        d.vec3(),
				Scale:      d.vec3(),
				PrefabName: d.r.String(),
			})
		}
	}

	if d.has(fieldPillars) {
		n = d.count("pillar")
		for i := 0; i < n; i++ {
			l.Pillars = append(l.Pillars, Pillar{
				Pos:        d.vec3(),
				Height:     d.r.Float32(),
				PrefabName: d.r.String(),
			})
		}
	}

	if !l.IsModded {
		return l
	}

	d.log.Info("decoding mod data")
	l.ModData = d.modData()
	return l
}

func (d *decoder) vec2() Vec2 {
	return Vec2{X: d.r.Float32(), Y: d.r.Float32()}
}

func (d *decoder) vec3() Vec3 {
	return Vec3{X: d.r.Float32(), Y: d.r.Float32(), Z: d.r.Float32()}
}

func (d *decoder) quaternion() Quaternion {
	return Quaternion{X: d.r.Float32(), Y: d.r.Float32(), Z: d.r.Float32(), W: d.r.Float32()}
}

// color reads one byte per channel; there is no alpha channel on the wire.
func (d *decoder) color() Color {
	return Color{
		R: float32(d.r.Uint8()) / 255,
		G: float32(d.r.Uint8()) / 255,
		B: float32(d.r.Uint8()) / 255,
		A: 1,
	}
}

func (d *decoder) phases() []HydraulicPhase {
	n := d.count("hydraulic phase")
	phases := make([]HydraulicPhase, 0, max(n, 0))
	for i := 0; i < n; i++ {
		phases = append(phases, HydraulicPhase{
			TimeDelay: d.r.Float32(),
			GUID:      d.r.String(),
		})
	}
	return phases
}

func (d *decoder) zAxisVehicle() ZAxisVehicle {
	v := ZAxisVehicle{
		Pos:        d.vec2(),
		PrefabName: d.r.String(),
		GUID:       d.r.String(),
		TimeDelay:  d.r.Float32(),
	}
	if d.has(fieldZAxisSpeed) {
		v.Speed = d.r.Float32()
	}
	if d.has(fieldZAxisRotation) {
		v.Rot = d.quaternion()
		v.RotationDegrees = d.r.Float32()
	}
	return v
}

func (d *decoder) vehicle() Vehicle {
	v := Vehicle{
		DisplayName:            d.r.String(),
		Pos:                    d.vec2(),
		Rot:                    d.quaternion(),
		PrefabName:             d.r.String(),
		TargetSpeed:            d.r.Float32(),
		Mass:                   d.r.Float32(),
		BrakingForceMultiplier: d.r.Float32(),
		StrengthMethod:         StrengthMethod(d.r.Int32()),
		Acceleration:           d.r.Float32(),
		MaxSlope:               d.r.Float32(),
		DesiredAcceleration:    d.r.Float32(),
		ShocksMultiplier:       d.r.Float32(),
		RotationDegrees:        d.r.Float32(),
		TimeDelay:              d.r.Float32(),
		IdleOnDownhill:         d.r.Bool(),
		Flipped:                d.r.Bool(),
		OrderedCheckpoints:     d.r.Bool(),
		GUID:                   d.r.String(),
	}
	n := d.count("vehicle checkpoint")
	for i := 0; i < n; i++ {
		v.CheckpointGUIDs = append(v.CheckpointGUIDs, d.r.String())
	}
	return v
}

func (d *decoder) vehicleStopTrigger() VehicleStopTrigger {
	return VehicleStopTrigger{
		Pos:             d.vec2(),
		Rot:             d.quaternion(),
		Height:          d.r.Float32(),
		RotationDegrees: d.r.Float32(),
		Flipped:         d.r.Bool(),
		PrefabName:      d.r.String(),
		StopVehicleGUID: d.r.String(),
	}
}

// eventUnit has three historical encodings. From version 7 a single GUID
// string is stored. Earlier revisions store three strings and the last
// non-empty one wins, a quirk the game itself preserves.
func (d *decoder) eventUnit() EventUnit {
	var unit EventUnit
	if d.has(fieldEventUnitGUID) {
		unit.GUID = d.r.String()
		return unit
	}
	for i := 0; i < 3; i++ {
		if text := d.r.String(); text != "" {
			unit.GUID = text
		}
	}
	return unit
}

func (d *decoder) eventTimeline() EventTimeline {
	t := EventTimeline{CheckpointGUID: d.r.String()}
	n := d.count("event stage")
	for i := 0; i < n; i++ {
		var stage EventStage
		units := d.count("event unit")
		for j := 0; j < units; j++ {
			stage.Units = append(stage.Units, d.eventUnit())
		}
		t.Stages = append(t.Stages, stage)
	}
	return t
}

func (d *decoder) checkpoint() Checkpoint {
	return Checkpoint{
		Pos:                     d.vec2(),
		PrefabName:              d.r.String(),
		VehicleGUID:             d.r.String(),
		VehicleRestartPhaseGUID: d.r.String(),
		TriggerTimeline:         d.r.Bool(),
		StopVehicle:             d.r.Bool(),
		ReverseVehicleOnRestart: d.r.Bool(),
		GUID:                    d.r.String(),
	}
}

func (d *decoder) terrainIsland() TerrainIsland {
	t := TerrainIsland{
		Pos:                  d.vec3(),
		PrefabName:           d.r.String(),
		HeightAdded:          d.r.Float32(),
		RightEdgeWaterHeight: d.r.Float32(),
		Type:                 TerrainIslandType(d.r.Int32()),
		VariantIndex:         d.r.Int32(),
		Flipped:              d.r.Bool(),
	}
	if d.has(fieldTerrainLockPosition) {
		t.LockPosition = d.r.Bool()
	}
	return t
}

func (d *decoder) platform() Platform {
	p := Platform{
		Pos:     d.vec2(),
		Width:   d.r.Float32(),
		Height:  d.r.Float32(),
		Flipped: d.r.Bool(),
	}
	if d.has(fieldPlatformSolid) {
		p.Solid = d.r.Bool()
	} else {
		d.r.Int32()
	}
	return p
}

func (d *decoder) ramp() Ramp {
	r := Ramp{Pos: d.vec2()}
	n := d.count("ramp control point")
	for i := 0; i < n; i++ {
		r.ControlPoints = append(r.ControlPoints, d.vec2())
	}
	r.Height = abs32(d.r.Float32())
	r.NumSegments = d.r.Int32()
	r.SplineType = SplineType(d.r.Int32())
	r.FlippedVertical = d.r.Bool()
	r.FlippedHorizontal = d.r.Bool()
	if d.has(fieldRampHideLegs) {
		r.HideLegs = d.r.Bool()
	}
	switch {
	case d.has(fieldRampFlippedLegs):
		r.FlippedLegs = d.r.Bool()
	case d.has(fieldRampLegacyBool):
		d.r.Bool()
	default:
		d.r.Int32()
	}
	if d.has(fieldRampLinePoints) {
		n = d.count("ramp line point")
		for i := 0; i < n; i++ {
			r.LinePoints = append(r.LinePoints, d.vec2())
		}
	}
	return r
}

func (d *decoder) waterBlock() WaterBlock {
	w := WaterBlock{
		Pos:    d.vec3(),
		Width:  d.r.Float32(),
		Height: d.r.Float32(),
	}
	if d.has(fieldWaterLockPosition) {
		w.LockPosition = d.r.Bool()
	}
	return w
}

func (d *decoder) budget() Budget {
	b := Budget{Cash: d.r.Int32()}
	if d.r.Err() == nil {
		if err := d.guard.CheckCurrency("budget cash", int(b.Cash)); err != nil {
			d.r.SetErr(err)
			return b
		}
	}
	d.log.Infof("budget: $%d", b.Cash)
	b.Road = d.r.Int32()
	b.Wood = d.r.Int32()
	b.Steel = d.r.Int32()
	b.Hydraulics = d.r.Int32()
	b.Rope = d.r.Int32()
	b.Cable = d.r.Int32()
	b.Spring = d.r.Int32()
	b.BungeeRope = d.r.Int32()
	b.AllowWood = d.r.Bool()
	b.AllowSteel = d.r.Bool()
	b.AllowHydraulics = d.r.Bool()
	b.AllowRope = d.r.Bool()
	b.AllowCable = d.r.Bool()
	b.AllowSpring = d.r.Bool()
	b.AllowReinforcedRoad = d.r.Bool()
	return b
}

func (d *decoder) settings() Settings {
	s := Settings{
		HydraulicsControllerEnabled: d.r.Bool(),
		Unbreakable:                 d.r.Bool(),
	}
	d.log.Infof("hydraulics controller enabled: %t", s.HydraulicsControllerEnabled)
	d.log.Infof("unbreakable mode: %t", s.Unbreakable)
	return s
}

func (d *decoder) customShape() CustomShape {
	s := CustomShape{
		Pos:              d.vec3(),
		Rot:              d.quaternion(),
		Scale:            d.vec3(),
		Flipped:          d.r.Bool(),
		Dynamic:          d.r.Bool(),
		CollidesWithRoad: d.r.Bool(),
		CollidesWithNodes: d.r.Bool(),
	}
	if d.has(fieldShapeSplitNodes) {
		s.CollidesWithSplitNodes = d.r.Bool()
	}
	s.RotationDegrees = d.r.Float32()
	if d.has(fieldShapeColor) {
		s.Color = d.color()
	} else {
		d.r.Int32()
	}
	if d.has(fieldShapeMass) {
		s.Mass = d.r.Float32()
	} else {
		d.r.Float32()
		s.Mass = 40
	}
	if d.has(fieldShapeBounciness) {
		s.Bounciness = d.r.Float32()
	} else {
		s.Bounciness = 0.5
	}
	if d.has(fieldShapePinMotor) {
		s.PinMotorStrength = d.r.Float32()
		s.PinTargetVelocity = d.r.Float32()
	}

	n := d.count("shape point")
	for i := 0; i < n; i++ {
		s.PointsLocalSpace = append(s.PointsLocalSpace, d.vec2())
	}

	n = d.count("shape static pin")
	for i := 0; i < n; i++ {
		pos := d.vec3()
		pos.Z = StaticPinZ
		s.StaticPins = append(s.StaticPins, pos)
	}

	n = d.count("shape dynamic anchor")
	for i := 0; i < n; i++ {
		s.DynamicAnchorGUIDs = append(s.DynamicAnchorGUIDs, d.r.String())
	}
	return s
}

func (d *decoder) workshop() Workshop {
	w := Workshop{ID: d.r.String()}
	d.log.Infof("workshop id: %s", w.ID)
	if d.has(fieldWorkshopLeaderboard) {
		w.LeaderboardID = d.r.String()
		d.log.Infof("workshop leaderboard id: %s", w.LeaderboardID)
	}
	w.Title = d.r.String()
	d.log.Infof("workshop title: %s", w.Title)
	w.Description = d.r.String()
	w.Autoplay = d.r.Bool()
	n := d.count("workshop tag")
	for i := 0; i < n; i++ {
		w.Tags = append(w.Tags, d.r.String())
	}
	return w
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
