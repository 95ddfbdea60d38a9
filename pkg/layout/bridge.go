package layout

func (d *decoder) bridge() Bridge {
	d.log.Debug("decoding bridge")

	b := Bridge{Version: int(d.r.Int32())}
	if d.r.Err() != nil {
		return b
	}
	if err := d.guard.CheckVersion("bridge version", b.Version); err != nil {
		d.r.SetErr(err)
		return b
	}
	d.log.Infof("bridge version: %d", b.Version)
	if b.Version > MaxBridgeVersion {
		d.log.Warn("bridge saved with a newer version of the bridge format, this may cause problems")
	}

	// Revisions before 2 carry no bridge body at all.
	if !bridgeHas(fieldBridgeBody, b.Version) {
		d.log.Warn("bridge version is less than 2, skipping bridge body")
		return b
	}

	n := d.count("bridge joint")
	for i := 0; i < n; i++ {
		b.Joints = append(b.Joints, d.joint())
	}

	n = d.count("bridge edge")
	for i := 0; i < n; i++ {
		b.Edges = append(b.Edges, d.edge(b.Version))
	}

	if bridgeHas(fieldSprings, b.Version) {
		n = d.count("bridge spring")
		for i := 0; i < n; i++ {
			b.Springs = append(b.Springs, BridgeSpring{
				NormalizedValue: d.r.Float32(),
				NodeAGUID:       d.r.String(),
				NodeBGUID:       d.r.String(),
				GUID:            d.r.String(),
			})
		}
	}

	n = d.count("bridge piston")
	for i := 0; i < n; i++ {
		b.Pistons = append(b.Pistons, d.piston(b.Version))
	}

	n = d.count("bridge hydraulic phase")
	for i := 0; i < n; i++ {
		b.Phases = append(b.Phases, d.hydraulicsPhase(b.Version))
	}

	if bridgeHas(fieldBridgeGarbageStrings, b.Version) {
		d.log.Warn("discarding v5 garbage data")
		n = d.count("garbage string")
		for i := 0; i < n; i++ {
			_ = d.r.String()
		}
	}

	if bridgeHas(fieldBridgeAnchors, b.Version) {
		n = d.count("bridge anchor")
		for i := 0; i < n; i++ {
			b.Anchors = append(b.Anchors, d.joint())
		}
	}

	if bridgeHas(fieldBridgeTrailingBool, b.Version) {
		d.log.Warn("discarding v4-8 garbage data")
		d.r.Bool()
	}

	d.log.Debug("bridge decode complete")
	return b
}

func (d *decoder) joint() BridgeJoint {
	return BridgeJoint{
		Pos:      d.vec3(),
		IsAnchor: d.r.Bool(),
		IsSplit:  d.r.Bool(),
		GUID:     d.r.String(),
	}
}

func (d *decoder) edge(version int) BridgeEdge {
	e := BridgeEdge{
		Material:   BridgeMaterial(d.r.Int32()),
		NodeAGUID:  d.r.String(),
		NodeBGUID:  d.r.String(),
		JointAPart: SplitJointPart(d.r.Int32()),
		JointBPart: SplitJointPart(d.r.Int32()),
	}
	if bridgeHas(fieldEdgeGUID, version) {
		e.GUID = d.r.String()
	}
	return e
}

func (d *decoder) piston(version int) Piston {
	p := Piston{
		NormalizedValue: d.r.Float32(),
		NodeAGUID:       d.r.String(),
		NodeBGUID:       d.r.String(),
		GUID:            d.r.String(),
	}
	if !bridgeHas(fieldPistonRaw, version) {
		p.NormalizedValue = fixPistonValue(p.NormalizedValue)
	}
	return p
}

func (d *decoder) hydraulicsPhase(version int) HydraulicsControllerPhase {
	p := HydraulicsControllerPhase{HydraulicsPhaseGUID: d.r.String()}

	n := d.count("phase piston")
	for i := 0; i < n; i++ {
		p.PistonGUIDs = append(p.PistonGUIDs, d.r.String())
	}

	if bridgeHas(fieldSplitJoints, version) {
		n = d.count("phase split joint")
		for i := 0; i < n; i++ {
			p.BridgeSplitJoints = append(p.BridgeSplitJoints, BridgeSplitJoint{
				GUID:  d.r.String(),
				State: SplitJointState(d.r.Int32()),
			})
		}
	} else {
		n = d.count("phase garbage string")
		for i := 0; i < n; i++ {
			_ = d.r.String()
		}
	}
	if bridgeHas(fieldPhaseDisableAdditions, version) {
		p.DisableNewAdditions = d.r.Bool()
	}
	return p
}

// fixPistonValue remaps a piston's normalized value from the pre-v8 scale.
// Values below 0.25 land in [1.0, 0.5] inverted, values above 0.75 in
// [0.5, 1.0], and the middle band maps the distance from 0.5 into [0.0, 0.5].
func fixPistonValue(value float32) float32 {
	if value < 0.25 {
		return lerp(1.0, 0.5, clamp01(value/0.25))
	}
	if value > 0.75 {
		return lerp(0.5, 1.0, clamp01((value-0.75)/0.25))
	}
	return lerp(0.0, 0.5, clamp01(abs32(value-0.5)/0.25))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
