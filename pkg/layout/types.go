package layout

// Format version ceilings. Decoding tolerates newer versions with a warning;
// encoding always targets these.
const (
	// MaxVersion is the newest fully supported layout format version.
	MaxVersion = 26

	// MaxBridgeVersion is the newest fully supported bridge format version.
	// Bridge versions are numbered independently of layout versions.
	MaxBridgeVersion = 11
)

// StaticPinZ is the fixed z offset forced onto every custom shape static pin
// after decoding, matching the game's own loader.
const StaticPinZ = -1.348

// BridgeMaterial identifies the material of a bridge edge.
type BridgeMaterial int32

// Bridge edge materials.
const (
	MaterialInvalid BridgeMaterial = iota
	MaterialRoad
	MaterialReinforcedRoad
	MaterialWood
	MaterialSteel
	MaterialHydraulics
	MaterialRope
	MaterialCable
	MaterialBungeeRope
	MaterialSpring
)

// SplitJointPart selects which part of a split joint an edge attaches to.
type SplitJointPart int32

// Split joint parts.
const (
	PartA SplitJointPart = iota
	PartB
	PartC
)

// SplitJointState describes which parts of a split joint are split.
type SplitJointState int32

// Split joint states.
const (
	AllSplit SplitJointState = iota
	NoneSplit
	ASplitOnly
	BSplitOnly
	CSplitOnly
)

// StrengthMethod selects how a vehicle's engine strength is specified.
type StrengthMethod int32

// Vehicle strength methods.
const (
	StrengthAcceleration StrengthMethod = iota
	StrengthMaxSlope
	StrengthTorquePerWheel
)

// TerrainIslandType distinguishes bookend terrain from middle stretches.
type TerrainIslandType int32

// Terrain island types.
const (
	TerrainBookend TerrainIslandType = iota
	TerrainMiddle
)

// SplineType selects the interpolation used for ramp control points.
type SplineType int32

// Ramp spline types.
const (
	SplineHermite SplineType = iota
	SplineBSpline
	SplineBezier
	SplineLinear
)

// Vec2 is a 2D position.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D position or scale.
type Vec3 struct {
	X, Y, Z float32
}

// Quaternion is a rotation.
type Quaternion struct {
	X, Y, Z, W float32
}

// Color is an RGBA color with components in [0, 1]. On the wire it is three
// bytes (r, g, b) scaled by 255; alpha is always 1 after decoding.
type Color struct {
	R, G, B, A float32
}

// BridgeJoint is a node of the bridge graph. Anchors are joints too.
type BridgeJoint struct {
	Pos      Vec3
	IsAnchor bool
	IsSplit  bool
	GUID     string
}

// BridgeEdge connects two joints. Joints are referenced by GUID; dangling
// references are accepted silently.
type BridgeEdge struct {
	Material  BridgeMaterial
	NodeAGUID string
	NodeBGUID string
	JointAPart SplitJointPart
	JointBPart SplitJointPart
	GUID      string // present only from bridge version 11
}

// BridgeSpring is a spring element between two joints.
type BridgeSpring struct {
	NormalizedValue float32
	NodeAGUID       string
	NodeBGUID       string
	GUID            string
}

// BridgeSplitJoint records the split state of a joint within a hydraulics
// controller phase.
type BridgeSplitJoint struct {
	GUID  string
	State SplitJointState
}

// Piston is a hydraulic piston between two joints. NormalizedValue is
// remapped when decoding bridge versions below 8 (see fixPistonValue).
type Piston struct {
	NormalizedValue float32
	NodeAGUID       string
	NodeBGUID       string
	GUID            string
}

// HydraulicPhase is a timed phase of the layout-level hydraulics sequence.
type HydraulicPhase struct {
	TimeDelay float32
	GUID      string
}

// HydraulicsControllerPhase binds pistons and split joints to a hydraulics
// phase within a bridge.
type HydraulicsControllerPhase struct {
	HydraulicsPhaseGUID string
	PistonGUIDs         []string
	BridgeSplitJoints   []BridgeSplitJoint
	DisableNewAdditions bool
}

// Bridge is the physics-structure sub-aggregate shared between layout and
// save-slot files. Its version is independent of the layout version.
// Collections gated above the decoded version are left empty, never nil
// versus absent.
type Bridge struct {
	Version int
	Joints  []BridgeJoint
	Edges   []BridgeEdge
	Springs []BridgeSpring
	Pistons []Piston
	Anchors []BridgeJoint
	Phases  []HydraulicsControllerPhase
}

// ZAxisVehicle is a vehicle moving along the z axis (boats, trains).
type ZAxisVehicle struct {
	Pos             Vec2
	PrefabName      string
	GUID            string
	TimeDelay       float32
	Speed           float32 // version 8+
	Rot             Quaternion
	RotationDegrees float32 // rotation fields version 26+
}

// Vehicle is a drivable vehicle with its checkpoint route.
type Vehicle struct {
	DisplayName             string
	Pos                     Vec2
	Rot                     Quaternion
	PrefabName              string
	TargetSpeed             float32
	Mass                    float32
	BrakingForceMultiplier  float32
	StrengthMethod          StrengthMethod
	Acceleration            float32
	MaxSlope                float32
	DesiredAcceleration     float32
	ShocksMultiplier        float32
	RotationDegrees         float32
	TimeDelay               float32
	IdleOnDownhill          bool
	Flipped                 bool
	OrderedCheckpoints      bool
	GUID                    string
	CheckpointGUIDs         []string
}

// VehicleStopTrigger stops a vehicle when touched.
type VehicleStopTrigger struct {
	Pos             Vec2
	Rot             Quaternion
	Height          float32
	RotationDegrees float32
	Flipped         bool
	PrefabName      string
	StopVehicleGUID string
}

// ThemeObject is an obsolete decoration record, present only below layout
// version 20. The game ignores it; it is kept for inspection.
type ThemeObject struct {
	Pos          Vec2
	PrefabName   string
	UnknownValue bool
}

// EventUnit is one event in a timeline stage.
type EventUnit struct {
	GUID string
}

// EventStage groups event units that fire together.
type EventStage struct {
	Units []EventUnit
}

// EventTimeline is a checkpoint-triggered sequence of stages.
type EventTimeline struct {
	CheckpointGUID string
	Stages         []EventStage
}

// Checkpoint is a vehicle checkpoint.
type Checkpoint struct {
	Pos                     Vec2
	PrefabName              string
	VehicleGUID             string
	VehicleRestartPhaseGUID string
	TriggerTimeline         bool
	StopVehicle             bool
	ReverseVehicleOnRestart bool
	GUID                    string
}

// Platform is a flat build surface.
type Platform struct {
	Pos     Vec2
	Width   float32
	Height  float32
	Flipped bool
	Solid   bool // version 22+; earlier versions store a discarded int
}

// TerrainIsland is a terrain stretch.
type TerrainIsland struct {
	Pos                  Vec3
	PrefabName           string
	HeightAdded          float32
	RightEdgeWaterHeight float32
	Type                 TerrainIslandType
	VariantIndex         int32
	Flipped              bool
	LockPosition         bool // version 6+
}

// Ramp is a spline-shaped ramp.
type Ramp struct {
	Pos               Vec2
	ControlPoints     []Vec2
	Height            float32 // stored absolute-valued
	NumSegments       int32
	SplineType        SplineType
	FlippedVertical   bool
	FlippedHorizontal bool
	HideLegs          bool   // version 23+
	FlippedLegs       bool   // version 25+
	LinePoints        []Vec2 // version 13+
}

// VehicleRestartPhase restarts a vehicle after a delay.
type VehicleRestartPhase struct {
	TimeDelay   float32
	GUID        string
	VehicleGUID string
}

// FlyingObject is a decorative flying object (airplanes, blimps).
type FlyingObject struct {
	Pos        Vec3
	Scale      Vec3
	PrefabName string
}

// Rock is a decorative rock.
type Rock struct {
	Pos        Vec3
	Scale      Vec3
	PrefabName string
	Flipped    bool
}

// WaterBlock is a block of water.
type WaterBlock struct {
	Pos          Vec3
	Width        float32
	Height       float32
	LockPosition bool // version 12+
}

// Budget is the level's material budget.
type Budget struct {
	Cash       int32
	Road       int32
	Wood       int32
	Steel      int32
	Hydraulics int32
	Rope       int32
	Cable      int32
	Spring     int32
	BungeeRope int32

	AllowWood           bool
	AllowSteel          bool
	AllowHydraulics     bool
	AllowRope           bool
	AllowCable          bool
	AllowSpring         bool
	AllowReinforcedRoad bool
}

// Settings holds level-wide toggles.
type Settings struct {
	HydraulicsControllerEnabled bool
	Unbreakable                 bool
}

// CustomShape is a user-drawn physics shape.
type CustomShape struct {
	Pos                    Vec3
	Rot                    Quaternion
	Scale                  Vec3
	Flipped                bool
	Dynamic                bool
	CollidesWithRoad       bool
	CollidesWithNodes      bool
	CollidesWithSplitNodes bool // version 25+
	RotationDegrees        float32
	Color                  Color   // version 10+; earlier versions store a discarded int
	Mass                   float32 // version 11+; earlier versions default to 40
	Bounciness             float32 // version 14+; earlier versions default to 0.5
	PinMotorStrength       float32 // version 24+; earlier versions default to 0
	PinTargetVelocity      float32 // version 24+; earlier versions default to 0
	PointsLocalSpace       []Vec2
	StaticPins             []Vec3 // z forced to StaticPinZ after decoding
	DynamicAnchorGUIDs     []string
}

// Workshop is the Steam Workshop metadata block, present from version 15.
type Workshop struct {
	ID            string
	LeaderboardID string // version 16+
	Title         string
	Description   string
	Autoplay      bool
	Tags          []string
}

// SupportPillar is a decorative support pillar, present from version 17.
type SupportPillar struct {
	Pos        Vec3
	Scale      Vec3
	PrefabName string
}

// Pillar is a decorative pillar, present from version 18.
type Pillar struct {
	Pos        Vec3
	Height     float32
	PrefabName string
}

// Mod describes one mod from the PolyTechFramework trailer block.
type Mod struct {
	Name     string
	Version  string
	Settings string
}

// ModSaveData is one mod's opaque save payload.
type ModSaveData struct {
	Name    string
	Version string
	Data    []byte
}

// ModData is the trailing block appended to modded layouts.
type ModData struct {
	Mods     []Mod
	SaveData []ModSaveData
}

// Layout is the decoded representation of a .layout file. Field presence on
// the wire is a pure function of Version; after decoding, gated-out fields
// hold their zero values.
type Layout struct {
	Version  int
	IsModded bool // the raw version was negated by the mod framework
	StubKey  string

	Anchors             []BridgeJoint    // version 19+
	Phases              []HydraulicPhase // version 5+ here, earlier after the ramps
	Bridge              Bridge
	ZAxisVehicles       []ZAxisVehicle // version 7+
	Vehicles            []Vehicle
	VehicleStopTriggers []VehicleStopTrigger
	ThemeObjects        []ThemeObject // below version 20 only
	EventTimelines      []EventTimeline
	Checkpoints         []Checkpoint
	TerrainStretches    []TerrainIsland
	Platforms           []Platform
	Ramps               []Ramp
	VehicleRestartPhases []VehicleRestartPhase
	FlyingObjects       []FlyingObject
	Rocks               []Rock
	WaterBlocks         []WaterBlock
	Budget              Budget
	Settings            Settings
	CustomShapes        []CustomShape // version 9+
	Workshop            Workshop      // version 15+
	SupportPillars      []SupportPillar // version 17+
	Pillars             []Pillar        // version 18+
	ModData             ModData
}

// ThemeName maps a theme stub key to its display name, or "INVALID" for
// unknown keys.
func ThemeName(stubKey string) string {
	switch stubKey {
	case "PineMountains":
		return "Pine Mountains"
	case "Volcano":
		return "Glowing Gorge"
	case "Savanna":
		return "Tranquil Oasis"
	case "Western":
		return "Sanguine Gulch"
	case "ZenGardens":
		return "Serenity Valley"
	case "Steampunk":
		return "Steamtown"
	default:
		return "INVALID"
	}
}
