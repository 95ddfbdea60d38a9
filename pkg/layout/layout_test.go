package layout

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ashduino101/polyparser/pkg/bin"
	"github.com/ashduino101/polyparser/pkg/errors"
	"github.com/ashduino101/polyparser/pkg/sanity"
)

func testOptions() Options {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return Options{
		Logger: logger,
		Guard:  sanity.NewGuard(sanity.DefaultConfig(), logger),
	}
}

// buildMinimal writes a structurally valid layout stream for the given
// version with every collection empty. rawVersion is what goes on the wire,
// so callers can negate it to mark the stream as modded.
func buildMinimal(version int, rawVersion int32) []byte {
	w := &bin.Writer{}
	w.Int32(rawVersion)
	w.String("PineMountains")

	if version >= 19 {
		w.Int32(0) // anchors
	}
	if version >= 5 {
		w.Int32(0) // phases
	}
	if version > 4 {
		writeEmptyBridge(w, MaxBridgeVersion)
	} else {
		w.Int32(0) // joints
		w.Int32(0) // edges
		w.Int32(0) // pistons
	}
	if version >= 7 {
		w.Int32(0) // z-axis vehicles
	}
	w.Int32(0) // vehicles
	w.Int32(0) // stop triggers
	if version < 20 {
		w.Int32(0) // theme objects
	}
	w.Int32(0) // timelines
	w.Int32(0) // checkpoints
	w.Int32(0) // terrain
	w.Int32(0) // platforms
	w.Int32(0) // ramps
	if version < 5 {
		w.Int32(0) // phases (legacy position)
	}
	w.Int32(0) // restart phases
	w.Int32(0) // flying objects
	w.Int32(0) // rocks
	w.Int32(0) // water blocks
	if version < 5 {
		w.Int32(0) // legacy garbage
	}
	writeBudget(w)
	w.Bool(true)  // hydraulics controller
	w.Bool(false) // unbreakable
	if version >= 9 {
		w.Int32(0) // custom shapes
	}
	if version >= 15 {
		w.String("id")
		if version >= 16 {
			w.String("lb")
		}
		w.String("title")
		w.String("desc")
		w.Bool(false)
		w.Int32(0) // tags
	}
	if version >= 17 {
		w.Int32(0) // support pillars
	}
	if version >= 18 {
		w.Int32(0) // pillars
	}
	return w.Bytes()
}

func writeEmptyBridge(w *bin.Writer, version int32) {
	w.Int32(version)
	if version < 2 {
		return
	}
	w.Int32(0) // joints
	w.Int32(0) // edges
	if version >= 7 {
		w.Int32(0) // springs
	}
	w.Int32(0) // pistons
	w.Int32(0) // phases
	if version == 5 {
		w.Int32(0) // garbage strings
	}
	if version >= 6 {
		w.Int32(0) // anchors
	}
	if version >= 4 && version < 9 {
		w.Bool(false)
	}
}

func writeBudget(w *bin.Writer) {
	for i := 0; i < 9; i++ {
		w.Int32(1000)
	}
	for i := 0; i < 7; i++ {
		w.Bool(true)
	}
}

func TestDecodeAllVersions(t *testing.T) {
	for v := 0; v <= MaxVersion; v++ {
		data := buildMinimal(v, int32(v))
		l, err := Decode(data, testOptions())
		if err != nil {
			t.Fatalf("version %d: decode: %v", v, err)
		}
		if l.Version != v {
			t.Errorf("version %d: got version %d", v, l.Version)
		}
		if l.IsModded {
			t.Errorf("version %d: unexpectedly modded", v)
		}
		if l.StubKey != "PineMountains" {
			t.Errorf("version %d: stub key %q", v, l.StubKey)
		}
		if v >= 15 && l.Workshop.ID != "id" {
			t.Errorf("version %d: workshop id %q", v, l.Workshop.ID)
		}
		if v < 16 && l.Workshop.LeaderboardID != "" {
			t.Errorf("version %d: unexpected leaderboard id", v)
		}
	}
}

func TestDecodeNegativeVersionIsModded(t *testing.T) {
	data := buildMinimal(7, -7)
	// A modded layout carries a trailing mod block; empty mod count here.
	w := &bin.Writer{}
	w.Data(data)
	w.Int16(0)

	l, err := Decode(w.Bytes(), testOptions())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.Version != 7 {
		t.Errorf("got version %d, want 7", l.Version)
	}
	if !l.IsModded {
		t.Error("modded flag not set")
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := buildMinimal(26, 26)
	_, err := Decode(data[:len(data)-3], testOptions())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeTruncated) {
		t.Errorf("got %v, want TRUNCATED", err)
	}
	if errors.OffsetOf(err) < 0 {
		t.Error("truncation error carries no offset")
	}
}

func TestDecodeAbsurdCount(t *testing.T) {
	w := &bin.Writer{}
	w.Int32(26)
	w.String("Volcano")
	w.Int32(50000) // anchor count far outside the hard envelope

	cfg := sanity.DefaultConfig()
	cfg.MaxOffenses = 1
	logger := log.NewWithOptions(io.Discard, log.Options{})
	_, err := Decode(w.Bytes(), Options{Logger: logger, Guard: sanity.NewGuard(cfg, logger)})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("got %v, want RANGE", err)
	}
}

func TestPistonCorrection(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0.0, 1.0},
		{0.1, 0.8},
		{0.25, 0.5}, // lower boundary lands on the middle branch
		{0.5, 0.0},
		{0.75, 0.5}, // upper boundary lands on the middle branch
		{0.9, 0.8},
		{1.0, 1.0},
	}
	for _, tt := range tests {
		got := fixPistonValue(tt.in)
		if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("fixPistonValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPistonCorrectionApplied(t *testing.T) {
	// Version 7 is below the threshold, version 8 is not.
	for _, tt := range []struct {
		version int32
		want    float32
	}{
		{7, 0.8},
		{8, 0.1},
	} {
		w := &bin.Writer{}
		w.Int32(tt.version)
		w.Int32(0) // joints
		w.Int32(0) // edges
		w.Int32(0) // springs
		w.Int32(1) // pistons
		w.Float32(0.1)
		w.String("a")
		w.String("b")
		w.String("guid")
		w.Int32(0) // phases
		w.Int32(0) // anchors
		if tt.version < 9 {
			w.Bool(false)
		}

		b, err := DecodeBridge(w.Bytes(), testOptions())
		if err != nil {
			t.Fatalf("version %d: %v", tt.version, err)
		}
		if len(b.Pistons) != 1 {
			t.Fatalf("version %d: %d pistons", tt.version, len(b.Pistons))
		}
		got := b.Pistons[0].NormalizedValue
		if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("version %d: normalized value %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestDecodeBridgeVersionBelowTwo(t *testing.T) {
	w := &bin.Writer{}
	w.Int32(1)
	b, err := DecodeBridge(w.Bytes(), testOptions())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(b.Joints) != 0 || len(b.Edges) != 0 {
		t.Error("version 1 bridge should have no body")
	}
}

func TestDecodeBridgeEdgeGUIDGate(t *testing.T) {
	for _, tt := range []struct {
		version int32
		guid    string
	}{
		{10, ""},
		{11, "edge-guid"},
	} {
		w := &bin.Writer{}
		w.Int32(tt.version)
		w.Int32(0) // joints
		w.Int32(1) // edges
		w.Int32(int32(MaterialWood))
		w.String("a")
		w.String("b")
		w.Int32(int32(PartA))
		w.Int32(int32(PartB))
		if tt.version >= 11 {
			w.String(tt.guid)
		}
		w.Int32(0) // springs
		w.Int32(0) // pistons
		w.Int32(0) // phases
		w.Int32(0) // anchors

		b, err := DecodeBridge(w.Bytes(), testOptions())
		if err != nil {
			t.Fatalf("version %d: %v", tt.version, err)
		}
		if got := b.Edges[0].GUID; got != tt.guid {
			t.Errorf("version %d: edge guid %q, want %q", tt.version, got, tt.guid)
		}
		if b.Edges[0].Material != MaterialWood {
			t.Errorf("version %d: material %d", tt.version, b.Edges[0].Material)
		}
	}
}

func TestEventUnitLegacyEncoding(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	newDec := func(data []byte, version int) *decoder {
		return &decoder{
			r:       bin.NewReader(data),
			log:     logger,
			guard:   sanity.NewGuard(sanity.DefaultConfig(), logger),
			version: version,
		}
	}

	// From version 7 a single GUID string.
	w := &bin.Writer{}
	w.String("the-guid")
	d := newDec(w.Bytes(), 7)
	if got := d.eventUnit().GUID; got != "the-guid" {
		t.Errorf("v7 unit guid %q", got)
	}

	// Below version 7, three strings; the last non-empty one wins.
	w = &bin.Writer{}
	w.String("first")
	w.String("")
	w.String("third")
	d = newDec(w.Bytes(), 6)
	if got := d.eventUnit().GUID; got != "third" {
		t.Errorf("legacy unit guid %q, want %q", got, "third")
	}

	w = &bin.Writer{}
	w.String("only")
	w.String("")
	w.String("")
	d = newDec(w.Bytes(), 6)
	if got := d.eventUnit().GUID; got != "only" {
		t.Errorf("legacy unit guid %q, want %q", got, "only")
	}
}

func TestPlatformSolidGate(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	for _, tt := range []struct {
		version int
		solid   bool
	}{
		{21, false},
		{22, true},
	} {
		w := &bin.Writer{}
		w.Float32(1) // pos
		w.Float32(2)
		w.Float32(3) // width
		w.Float32(4) // height
		w.Bool(false)
		if tt.version >= 22 {
			w.Bool(true)
		} else {
			w.Int32(12345) // discarded
		}
		d := &decoder{
			r:       bin.NewReader(w.Bytes()),
			log:     logger,
			guard:   sanity.NewGuard(sanity.DefaultConfig(), logger),
			version: tt.version,
		}
		p := d.platform()
		if err := d.r.Err(); err != nil {
			t.Fatalf("version %d: %v", tt.version, err)
		}
		if !d.r.AtEnd() {
			t.Errorf("version %d: cursor misaligned", tt.version)
		}
		if p.Solid != tt.solid {
			t.Errorf("version %d: solid = %t", tt.version, p.Solid)
		}
	}
}

func TestCustomShapeStaticPinZ(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	w := &bin.Writer{}
	for i := 0; i < 3; i++ {
		w.Float32(0) // pos
	}
	for i := 0; i < 4; i++ {
		w.Float32(0) // rot
	}
	for i := 0; i < 3; i++ {
		w.Float32(1) // scale
	}
	w.Bool(false) // flipped
	w.Bool(true)  // dynamic
	w.Bool(true)  // collides with road
	w.Bool(true)  // collides with nodes
	w.Bool(false) // collides with split nodes
	w.Float32(0)  // rotation degrees
	w.Uint8(255)  // color
	w.Uint8(128)
	w.Uint8(0)
	w.Float32(12)  // mass
	w.Float32(0.3) // bounciness
	w.Float32(0)   // pin motor strength
	w.Float32(0)   // pin target velocity
	w.Int32(0)     // points
	w.Int32(1)     // static pins
	w.Float32(5)
	w.Float32(6)
	w.Float32(99) // z on the wire, forced after decode
	w.Int32(0)    // dynamic anchors

	d := &decoder{
		r:       bin.NewReader(w.Bytes()),
		log:     logger,
		guard:   sanity.NewGuard(sanity.DefaultConfig(), logger),
		version: 26,
	}
	s := d.customShape()
	if err := d.r.Err(); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.StaticPins) != 1 {
		t.Fatalf("%d static pins", len(s.StaticPins))
	}
	if s.StaticPins[0].Z != StaticPinZ {
		t.Errorf("static pin z = %v, want %v", s.StaticPins[0].Z, StaticPinZ)
	}
	if s.Mass != 12 {
		t.Errorf("mass = %v", s.Mass)
	}
}

func TestModData(t *testing.T) {
	data := buildMinimal(7, -7)

	t.Run("mods only", func(t *testing.T) {
		w := &bin.Writer{}
		w.Data(data)
		w.Int16(2)
		w.String("ModOne֍1.0.0֍settings-blob")
		w.String("ModTwo")

		l, err := Decode(w.Bytes(), testOptions())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(l.ModData.Mods) != 2 {
			t.Fatalf("%d mods", len(l.ModData.Mods))
		}
		if m := l.ModData.Mods[0]; m.Name != "ModOne" || m.Version != "1.0.0" || m.Settings != "settings-blob" {
			t.Errorf("mod 0 = %+v", m)
		}
		if m := l.ModData.Mods[1]; m.Name != "ModTwo" || m.Version != "" || m.Settings != "" {
			t.Errorf("mod 1 = %+v", m)
		}
	})

	t.Run("save data", func(t *testing.T) {
		w := &bin.Writer{}
		w.Data(data)
		w.Int16(1)
		w.String("ModOne֍1.0.0")
		w.Int32(2)
		w.String("ModOne֍1.0.0")
		w.Int32(3)
		w.Data([]byte{1, 2, 3})
		w.String("֍2.0") // empty name, skipped
		// no byte array follows a skipped entry

		l, err := Decode(w.Bytes(), testOptions())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(l.ModData.SaveData) != 1 {
			t.Fatalf("%d save data entries", len(l.ModData.SaveData))
		}
		sd := l.ModData.SaveData[0]
		if sd.Name != "ModOne" || sd.Version != "1.0.0" {
			t.Errorf("save data = %+v", sd)
		}
		if string(sd.Data) != "\x01\x02\x03" {
			t.Errorf("payload = %v", sd.Data)
		}
	})

	t.Run("non-positive byte array", func(t *testing.T) {
		w := &bin.Writer{}
		w.Data(data)
		w.Int16(0)
		w.Int32(1)
		w.String("ModOne")
		w.Int32(0) // invalid payload length

		_, err := Decode(w.Bytes(), testOptions())
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, errors.ErrCodeInvalidLength) {
			t.Errorf("got %v, want INVALID_LENGTH", err)
		}
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	guid := func() string { return uuid.NewString() }
	jointA := BridgeJoint{Pos: Vec3{1, 2, 0}, IsAnchor: true, GUID: guid()}
	jointB := BridgeJoint{Pos: Vec3{3, 2, 0}, IsSplit: true, GUID: guid()}

	in := &Layout{
		Version: MaxVersion,
		StubKey: "ZenGardens",
		Anchors: []BridgeJoint{jointA},
		Phases:  []HydraulicPhase{{TimeDelay: 1.5, GUID: guid()}},
		Bridge: Bridge{
			Version: MaxBridgeVersion,
			Joints:  []BridgeJoint{jointA, jointB},
			Edges: []BridgeEdge{{
				Material:   MaterialSteel,
				NodeAGUID:  jointA.GUID,
				NodeBGUID:  jointB.GUID,
				JointAPart: PartA,
				JointBPart: PartB,
				GUID:       guid(),
			}},
			Springs: []BridgeSpring{{NormalizedValue: 0.5, NodeAGUID: jointA.GUID, NodeBGUID: jointB.GUID, GUID: guid()}},
			Pistons: []Piston{{NormalizedValue: 0.25, NodeAGUID: jointA.GUID, NodeBGUID: jointB.GUID, GUID: guid()}},
			Anchors: []BridgeJoint{jointA},
			Phases: []HydraulicsControllerPhase{{
				HydraulicsPhaseGUID: guid(),
				PistonGUIDs:         []string{guid()},
				BridgeSplitJoints:   []BridgeSplitJoint{{GUID: guid(), State: BSplitOnly}},
				DisableNewAdditions: true,
			}},
		},
		ZAxisVehicles: []ZAxisVehicle{{
			Pos: Vec2{1, 1}, PrefabName: "Boat", GUID: guid(),
			TimeDelay: 2, Speed: 4, Rot: Quaternion{0, 0, 0, 1}, RotationDegrees: 90,
		}},
		Vehicles: []Vehicle{{
			DisplayName: "Car 1", Pos: Vec2{0, 5}, Rot: Quaternion{0, 0, 0, 1},
			PrefabName: "Car", TargetSpeed: 10, Mass: 1200, BrakingForceMultiplier: 1,
			StrengthMethod: StrengthTorquePerWheel, Acceleration: 3, MaxSlope: 30,
			DesiredAcceleration: 3, ShocksMultiplier: 1, RotationDegrees: 0,
			TimeDelay: 0, IdleOnDownhill: true, OrderedCheckpoints: true,
			GUID: guid(), CheckpointGUIDs: []string{guid(), guid()},
		}},
		VehicleStopTriggers: []VehicleStopTrigger{{
			Pos: Vec2{9, 0}, Rot: Quaternion{0, 0, 0, 1}, Height: 2,
			PrefabName: "Trigger", StopVehicleGUID: guid(),
		}},
		EventTimelines: []EventTimeline{{
			CheckpointGUID: guid(),
			Stages:         []EventStage{{Units: []EventUnit{{GUID: guid()}}}},
		}},
		Checkpoints: []Checkpoint{{
			Pos: Vec2{5, 0}, PrefabName: "Checkpoint", VehicleGUID: guid(),
			VehicleRestartPhaseGUID: guid(), TriggerTimeline: true, GUID: guid(),
		}},
		TerrainStretches: []TerrainIsland{{
			Pos: Vec3{-10, 0, 0}, PrefabName: "Bookend", HeightAdded: 1,
			RightEdgeWaterHeight: 0.5, Type: TerrainBookend, VariantIndex: 2,
			Flipped: true, LockPosition: true,
		}},
		Platforms: []Platform{{Pos: Vec2{2, 2}, Width: 4, Height: 1, Solid: true}},
		Ramps: []Ramp{{
			Pos:           Vec2{1, 0},
			ControlPoints: []Vec2{{0, 0}, {1, 1}},
			Height:        2, NumSegments: 8, SplineType: SplineBezier,
			FlippedVertical: true, HideLegs: true, FlippedLegs: true,
			LinePoints: []Vec2{{0, 0}, {0.5, 0.5}, {1, 1}},
		}},
		VehicleRestartPhases: []VehicleRestartPhase{{TimeDelay: 3, GUID: guid(), VehicleGUID: guid()}},
		FlyingObjects:        []FlyingObject{{Pos: Vec3{0, 20, 5}, Scale: Vec3{1, 1, 1}, PrefabName: "Blimp"}},
		Rocks:                []Rock{{Pos: Vec3{4, 0, 0}, Scale: Vec3{2, 2, 2}, PrefabName: "Rock", Flipped: true}},
		WaterBlocks:          []WaterBlock{{Pos: Vec3{0, -1, 0}, Width: 30, Height: 3, LockPosition: true}},
		Budget: Budget{
			Cash: 25000, Road: 100, Wood: 200, Steel: 300, Hydraulics: 400,
			Rope: 500, Cable: 600, Spring: 700, BungeeRope: 800,
			AllowWood: true, AllowSteel: true, AllowHydraulics: true,
			AllowRope: true, AllowCable: true, AllowSpring: true, AllowReinforcedRoad: true,
		},
		Settings: Settings{HydraulicsControllerEnabled: true},
		CustomShapes: []CustomShape{{
			Pos: Vec3{1, 1, 0}, Rot: Quaternion{0, 0, 0, 1}, Scale: Vec3{1, 1, 1},
			Dynamic: true, CollidesWithRoad: true, CollidesWithNodes: true,
			CollidesWithSplitNodes: true, Color: Color{R: 1, G: 0, B: 0, A: 1},
			Mass: 40, Bounciness: 0.5,
			PointsLocalSpace:   []Vec2{{0, 0}, {1, 0}, {0, 1}},
			StaticPins:         []Vec3{{0.5, 0.5, StaticPinZ}},
			DynamicAnchorGUIDs: []string{guid()},
		}},
		Workshop: Workshop{
			ID: "123456", LeaderboardID: "lb-1", Title: "Test Level",
			Description: "round trip fixture", Autoplay: true, Tags: []string{"Vehicles"},
		},
		SupportPillars: []SupportPillar{{Pos: Vec3{2, 0, 0}, Scale: Vec3{1, 3, 1}, PrefabName: "Support"}},
		Pillars:        []Pillar{{Pos: Vec3{6, 0, 0}, Height: 5, PrefabName: "Pillar"}},
	}

	out, err := Decode(Encode(in), testOptions())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.Version != MaxVersion {
		t.Errorf("version = %d", out.Version)
	}
	if out.Bridge.Version != MaxBridgeVersion {
		t.Errorf("bridge version = %d", out.Bridge.Version)
	}
	if out.StubKey != in.StubKey {
		t.Errorf("stub key %q", out.StubKey)
	}
	if len(out.Bridge.Edges) != 1 || out.Bridge.Edges[0] != in.Bridge.Edges[0] {
		t.Errorf("bridge edges = %+v", out.Bridge.Edges)
	}
	if len(out.Vehicles) != 1 {
		t.Fatalf("%d vehicles", len(out.Vehicles))
	}
	if got, want := out.Vehicles[0], in.Vehicles[0]; got.GUID != want.GUID ||
		got.StrengthMethod != want.StrengthMethod ||
		len(got.CheckpointGUIDs) != len(want.CheckpointGUIDs) {
		t.Errorf("vehicle = %+v", got)
	}
	if len(out.Ramps) != 1 || len(out.Ramps[0].LinePoints) != 3 || !out.Ramps[0].FlippedLegs {
		t.Errorf("ramps = %+v", out.Ramps)
	}
	if out.Budget != in.Budget {
		t.Errorf("budget = %+v", out.Budget)
	}
	if out.Settings != in.Settings {
		t.Errorf("settings = %+v", out.Settings)
	}
	if len(out.CustomShapes) != 1 {
		t.Fatalf("%d custom shapes", len(out.CustomShapes))
	}
	if got := out.CustomShapes[0]; got.Color != in.CustomShapes[0].Color || got.Mass != 40 {
		t.Errorf("custom shape = %+v", got)
	}
	if out.Workshop.LeaderboardID != "lb-1" || len(out.Workshop.Tags) != 1 {
		t.Errorf("workshop = %+v", out.Workshop)
	}
	if len(out.SupportPillars) != 1 || len(out.Pillars) != 1 {
		t.Errorf("pillars = %d/%d", len(out.SupportPillars), len(out.Pillars))
	}

	// Encoding is deterministic: a second pass over the decoded tree yields
	// identical bytes.
	first := Encode(in)
	second := Encode(out)
	if len(first) != len(second) {
		t.Fatalf("re-encode length %d != %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-encode differs at byte %d", i)
		}
	}
}

func TestEncodeUpgradesOldVersion(t *testing.T) {
	// Decode an old stream, encode it, decode again: the output is a valid
	// current-version layout with gated fields at their defaults.
	l, err := Decode(buildMinimal(5, 5), testOptions())
	if err != nil {
		t.Fatalf("decode v5: %v", err)
	}
	out, err := Decode(Encode(l), testOptions())
	if err != nil {
		t.Fatalf("decode re-encoded: %v", err)
	}
	if out.Version != MaxVersion {
		t.Errorf("version = %d, want %d", out.Version, MaxVersion)
	}
	if out.IsModded {
		t.Error("re-encoded layout must not be modded")
	}
}

func TestThemeName(t *testing.T) {
	tests := []struct {
		stub, want string
	}{
		{"PineMountains", "Pine Mountains"},
		{"Volcano", "Glowing Gorge"},
		{"Savanna", "Tranquil Oasis"},
		{"Western", "Sanguine Gulch"},
		{"ZenGardens", "Serenity Valley"},
		{"Steampunk", "Steamtown"},
		{"NoSuchTheme", "INVALID"},
	}
	for _, tt := range tests {
		if got := ThemeName(tt.stub); got != tt.want {
			t.Errorf("ThemeName(%q) = %q, want %q", tt.stub, got, tt.want)
		}
	}
}

func TestGateTable(t *testing.T) {
	tests := []struct {
		g    gate
		v    int
		want bool
	}{
		{gate{min: 19}, 18, false},
		{gate{min: 19}, 19, true},
		{gate{max: 20}, 0, true},
		{gate{max: 20}, 19, true},
		{gate{max: 20}, 20, false},
		{gate{min: 22, max: 25}, 21, false},
		{gate{min: 22, max: 25}, 22, true},
		{gate{min: 22, max: 25}, 24, true},
		{gate{min: 22, max: 25}, 25, false},
	}
	for _, tt := range tests {
		if got := tt.g.at(tt.v); got != tt.want {
			t.Errorf("gate%+v.at(%d) = %t, want %t", tt.g, tt.v, got, tt.want)
		}
	}
}
