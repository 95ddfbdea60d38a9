package layout

import (
	"github.com/ashduino101/polyparser/pkg/bin"
)

// Encode serializes a Layout at the current format versions (MaxVersion and
// MaxBridgeVersion). Saving is a normalize-to-latest operation: whatever
// version the layout was decoded from, the output carries every current
// field, with gated-out fields filled from their decoded defaults. Obsolete
// records (theme objects) and mod data are not written; the output is always
// an unmodded layout.
func Encode(l *Layout) []byte {
	w := &bin.Writer{}
	e := &encoder{w: w}
	e.layout(l)
	return w.Bytes()
}

type encoder struct {
	w *bin.Writer
}

func (e *encoder) layout(l *Layout) {
	e.w.Int32(MaxVersion)
	e.w.String(l.StubKey)

	e.w.Int32(int32(len(l.Anchors)))
	for _, a := range l.Anchors {
		e.joint(a)
	}

	e.w.Int32(int32(len(l.Phases)))
	for _, p := range l.Phases {
		e.w.Float32(p.TimeDelay)
		e.w.String(p.GUID)
	}

	e.bridge(&l.Bridge)

	e.w.Int32(int32(len(l.ZAxisVehicles)))
	for _, v := range l.ZAxisVehicles {
		e.vec2(v.Pos)
		e.w.String(v.PrefabName)
		e.w.String(v.GUID)
		e.w.Float32(v.TimeDelay)
		e.w.Float32(v.Speed)
		e.quaternion(v.Rot)
		e.w.Float32(v.RotationDegrees)
	}

	e.w.Int32(int32(len(l.Vehicles)))
	for _, v := range l.Vehicles {
		e.w.String(v.DisplayName)
		e.vec2(v.Pos)
		e.quaternion(v.Rot)
		e.w.String(v.PrefabName)
		e.w.Float32(v.TargetSpeed)
		e.w.Float32(v.Mass)
		e.w.Float32(v.BrakingForceMultiplier)
		e.w.Int32(int32(v.StrengthMethod))
		e.w.Float32(v.Acceleration)
		e.w.Float32(v.MaxSlope)
		e.w.Float32(v.DesiredAcceleration)
		e.w.Float32(v.ShocksMultiplier)
		e.w.Float32(v.RotationDegrees)
		e.w.Float32(v.TimeDelay)
		e.w.Bool(v.IdleOnDownhill)
		e.w.Bool(v.Flipped)
		e.w.Bool(v.OrderedCheckpoints)
		e.w.String(v.GUID)

		e.w.Int32(int32(len(v.CheckpointGUIDs)))
		for _, guid := range v.CheckpointGUIDs {
			e.w.String(guid)
		}
	}

	e.w.Int32(int32(len(l.VehicleStopTriggers)))
	for _, t := range l.VehicleStopTriggers {
		e.vec2(t.Pos)
		e.quaternion(t.Rot)
		e.w.Float32(t.Height)
		e.w.Float32(t.RotationDegrees)
		e.w.Bool(t.Flipped)
		e.w.String(t.PrefabName)
		e.w.String(t.StopVehicleGUID)
	}

	e.w.Int32(int32(len(l.EventTimelines)))
	for _, t := range l.EventTimelines {
		e.w.String(t.CheckpointGUID)
		e.w.Int32(int32(len(t.Stages)))
		for _, stage := range t.Stages {
			e.w.Int32(int32(len(stage.Units)))
			for _, unit := range stage.Units {
				e.w.String(unit.GUID)
			}
		}
	}

	e.w.Int32(int32(len(l.Checkpoints)))
	for _, c := range l.Checkpoints {
		e.vec2(c.Pos)
		e.w.String(c.PrefabName)
		e.w.String(c.VehicleGUID)
		e.w.String(c.VehicleRestartPhaseGUID)
		e.w.Bool(c.TriggerTimeline)
		e.w.Bool(c.StopVehicle)
		e.w.Bool(c.ReverseVehicleOnRestart)
		e.w.String(c.GUID)
	}

	e.w.Int32(int32(len(l.TerrainStretches)))
	for _, t := range l.TerrainStretches {
		e.vec3(t.Pos)
		e.w.String(t.PrefabName)
		e.w.Float32(t.HeightAdded)
		e.w.Float32(t.RightEdgeWaterHeight)
		e.w.Int32(int32(t.Type))
		e.w.Int32(t.VariantIndex)
		e.w.Bool(t.Flipped)
		e.w.Bool(t.LockPosition)
	}

	e.w.Int32(int32(len(l.Platforms)))
	for _, p := range l.Platforms {
		e.vec2(p.Pos)
		e.w.Float32(p.Width)
		e.w.Float32(p.Height)
		e.w.Bool(p.Flipped)
		e.w.Bool(p.Solid)
	}

	e.w.Int32(int32(len(l.Ramps)))
	for _, r := range l.Ramps {
		e.vec2(r.Pos)
		e.w.Int32(int32(len(r.ControlPoints)))
		for _, cp := range r.ControlPoints {
			e.vec2(cp)
		}
		e.w.Float32(r.Height)
		e.w.Int32(r.NumSegments)
		e.w.Int32(int32(r.SplineType))
		e.w.Bool(r.FlippedVertical)
		e.w.Bool(r.FlippedHorizontal)
		e.w.Bool(r.HideLegs)
		e.w.Bool(r.FlippedLegs)
		e.w.Int32(int32(len(r.LinePoints)))
		for _, lp := range r.LinePoints {
			e.vec2(lp)
		}
	}

	e.w.Int32(int32(len(l.VehicleRestartPhases)))
	for _, p := range l.VehicleRestartPhases {
		e.w.Float32(p.TimeDelay)
		e.w.String(p.GUID)
		e.w.String(p.VehicleGUID)
	}

	e.w.Int32(int32(len(l.FlyingObjects)))
	for _, o := range l.FlyingObjects {
		e.vec3(o.Pos)
		e.vec3(o.Scale)
		e.w.String(o.PrefabName)
	}

	e.w.Int32(int32(len(l.Rocks)))
	for _, r := range l.Rocks {
		e.vec3(r.Pos)
		e.vec3(r.Scale)
		e.w.String(r.PrefabName)
		e.w.Bool(r.Flipped)
	}

	e.w.Int32(int32(len(l.WaterBlocks)))
	for _, b := range l.WaterBlocks {
		e.vec3(b.Pos)
		e.w.Float32(b.Width)
		e.w.Float32(b.Height)
		e.w.Bool(b.LockPosition)
	}

	e.w.Int32(l.Budget.Cash)
	e.w.Int32(l.Budget.Road)
	e.w.Int32(l.Budget.Wood)
	e.w.Int32(l.Budget.Steel)
	e.w.Int32(l.Budget.Hydraulics)
	e.w.Int32(l.Budget.Rope)
	e.w.Int32(l.Budget.Cable)
	e.w.Int32(l.Budget.Spring)
	e.w.Int32(l.Budget.BungeeRope)
	e.w.Bool(l.Budget.AllowWood)
	e.w.Bool(l.Budget.AllowSteel)
	e.w.Bool(l.Budget.AllowHydraulics)
	e.w.Bool(l.Budget.AllowRope)
	e.w.Bool(l.Budget.AllowCable)
	e.w.Bool(l.Budget.AllowSpring)
	e.w.Bool(l.Budget.AllowReinforcedRoad)

	e.w.Bool(l.Settings.HydraulicsControllerEnabled)
	e.w.Bool(l.Settings.Unbreakable)

	e.w.Int32(int32(len(l.CustomShapes)))
	for _, s := range l.CustomShapes {
		e.vec3(s.Pos)
		e.quaternion(s.Rot)
		e.vec3(s.Scale)
		e.w.Bool(s.Flipped)
		e.w.Bool(s.Dynamic)
		e.w.Bool(s.CollidesWithRoad)
		e.w.Bool(s.CollidesWithNodes)
		e.w.Bool(s.CollidesWithSplitNodes)
		e.w.Float32(s.RotationDegrees)
		e.color(s.Color)
		e.w.Float32(s.Mass)
		e.w.Float32(s.Bounciness)
		e.w.Float32(s.PinMotorStrength)
		e.w.Float32(s.PinTargetVelocity)

		e.w.Int32(int32(len(s.PointsLocalSpace)))
		for _, p := range s.PointsLocalSpace {
			e.vec2(p)
		}
		e.w.Int32(int32(len(s.StaticPins)))
		for _, p := range s.StaticPins {
			e.vec3(p)
		}
		e.w.Int32(int32(len(s.DynamicAnchorGUIDs)))
		for _, guid := range s.DynamicAnchorGUIDs {
			e.w.String(guid)
		}
	}

	e.w.String(l.Workshop.ID)
	e.w.String(l.Workshop.LeaderboardID)
	e.w.String(l.Workshop.Title)
	e.w.String(l.Workshop.Description)
	e.w.Bool(l.Workshop.Autoplay)
	e.w.Int32(int32(len(l.Workshop.Tags)))
	for _, tag := range l.Workshop.Tags {
		e.w.String(tag)
	}

	e.w.Int32(int32(len(l.SupportPillars)))
	for _, p := range l.SupportPillars {
		e.vec3(p.Pos)
		e.vec3(p.Scale)
		e.w.String(p.PrefabName)
	}

	e.w.Int32(int32(len(l.Pillars)))
	for _, p := range l.Pillars {
		e.vec3(p.Pos)
		e.w.Float32(p.Height)
		e.w.String(p.PrefabName)
	}
}

func (e *encoder) bridge(b *Bridge) {
	e.w.Int32(MaxBridgeVersion)

	e.w.Int32(int32(len(b.Joints)))
	for _, j := range b.Joints {
		e.joint(j)
	}

	e.w.Int32(int32(len(b.Edges)))
	for _, edge := range b.Edges {
		e.w.Int32(int32(edge.Material))
		e.w.String(edge.NodeAGUID)
		e.w.String(edge.NodeBGUID)
		e.w.Int32(int32(edge.JointAPart))
		e.w.Int32(int32(edge.JointBPart))
		e.w.String(edge.GUID)
	}

	e.w.Int32(int32(len(b.Springs)))
	for _, s := range b.Springs {
		e.w.Float32(s.NormalizedValue)
		e.w.String(s.NodeAGUID)
		e.w.String(s.NodeBGUID)
		e.w.String(s.GUID)
	}

	e.w.Int32(int32(len(b.Pistons)))
	for _, p := range b.Pistons {
		e.w.Float32(p.NormalizedValue)
		e.w.String(p.NodeAGUID)
		e.w.String(p.NodeBGUID)
		e.w.String(p.GUID)
	}

	e.w.Int32(int32(len(b.Phases)))
	for _, phase := range b.Phases {
		e.w.String(phase.HydraulicsPhaseGUID)
		e.w.Int32(int32(len(phase.PistonGUIDs)))
		for _, guid := range phase.PistonGUIDs {
			e.w.String(guid)
		}
		e.w.Int32(int32(len(phase.BridgeSplitJoints)))
		for _, sj := range phase.BridgeSplitJoints {
			e.w.String(sj.GUID)
			e.w.Int32(int32(sj.State))
		}
		e.w.Bool(phase.DisableNewAdditions)
	}

	e.w.Int32(int32(len(b.Anchors)))
	for _, a := range b.Anchors {
		e.joint(a)
	}
}

func (e *encoder) joint(j BridgeJoint) {
	e.vec3(j.Pos)
	e.w.Bool(j.IsAnchor)
	e.w.Bool(j.IsSplit)
	e.w.String(j.GUID)
}

func (e *encoder) vec2(v Vec2) {
	e.w.Float32(v.X)
	e.w.Float32(v.Y)
}

func (e *encoder) vec3(v Vec3) {
	e.w.Float32(v.X)
	e.w.Float32(v.Y)
	e.w.Float32(v.Z)
}

func (e *encoder) quaternion(q Quaternion) {
	e.w.Float32(q.X)
	e.w.Float32(q.Y)
	e.w.Float32(q.Z)
	e.w.Float32(q.W)
}

func (e *encoder) color(c Color) {
	e.w.Uint8(uint8(c.R * 255))
	e.w.Uint8(uint8(c.G * 255))
	e.w.Uint8(uint8(c.B * 255))
}
