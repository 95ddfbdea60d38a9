package io

import (
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/ashduino101/polyparser/pkg/layout"
	"github.com/ashduino101/polyparser/pkg/slot"
)

// Document types mirroring the game's serialized field names. Every object
// that carries an undo GUID in the game's own save schema gets a null
// m_UndoGuid placeholder so other tooling reading the same shape accepts
// the output; the value is never meaningful outside the editor session.

type xyDoc struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type xyzDoc struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type quatDoc struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

type colorDoc struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

type jointDoc struct {
	Pos      xyzDoc `json:"m_Pos"`
	IsAnchor bool   `json:"m_IsAnchor"`
	IsSplit  bool   `json:"m_IsSplit"`
	GUID     string `json:"m_Guid"`
}

type edgeDoc struct {
	Material   layout.BridgeMaterial `json:"m_Material"`
	NodeAGUID  string                `json:"m_NodeA_Guid"`
	NodeBGUID  string                `json:"m_NodeB_Guid"`
	JointAPart layout.SplitJointPart `json:"m_JointAPart"`
	JointBPart layout.SplitJointPart `json:"m_JointBPart"`
	GUID       string                `json:"m_Guid"`
}

type springDoc struct {
	GUID            string  `json:"m_Guid"`
	NodeAGUID       string  `json:"m_NodeA_Guid"`
	NodeBGUID       string  `json:"m_NodeB_Guid"`
	NormalizedValue float32 `json:"m_NormalizedValue"`
}

type pistonDoc struct {
	GUID            string  `json:"m_Guid"`
	NodeAGUID       string  `json:"m_NodeA_Guid"`
	NodeBGUID       string  `json:"m_NodeB_Guid"`
	NormalizedValue float32 `json:"m_NormalizedValue"`
}

type splitJointDoc struct {
	BridgeJointGUID string                 `json:"m_BridgeJointGuid"`
	State           layout.SplitJointState `json:"m_SplitJointState"`
}

type controllerPhaseDoc struct {
	HydraulicsPhaseGUID string          `json:"m_HydraulicsPhaseGuid"`
	PistonGUIDs         []string        `json:"m_PistonGuids"`
	BridgeSplitJoints   []splitJointDoc `json:"m_BridgeSplitJoints"`
	DisableNewAdditions bool            `json:"m_DisableNewAdditions"`
}

type hydraulicsControllerDoc struct {
	Phases []controllerPhaseDoc `json:"m_Phases"`
}

type bridgeDoc struct {
	Version              int                     `json:"m_Version"`
	Joints               []jointDoc              `json:"m_BridgeJoints"`
	Edges                []edgeDoc               `json:"m_BridgeEdges"`
	Springs              []springDoc             `json:"m_BridgeSprings"`
	Pistons              []pistonDoc             `json:"m_Pistons"`
	HydraulicsController hydraulicsControllerDoc `json:"m_HydraulicsController"`
	Anchors              []jointDoc              `json:"m_Anchors"`
}

type hydraulicPhaseDoc struct {
	TimeDelay float32 `json:"m_TimeDelaySeconds"`
	GUID      string  `json:"m_Guid"`
}

type zAxisVehicleDoc struct {
	GUID            string  `json:"m_Guid"`
	Pos             xyDoc   `json:"m_Pos"`
	TimeDelay       float32 `json:"m_TimeDelaySeconds"`
	PrefabName      string  `json:"m_PrefabName"`
	Speed           float32 `json:"m_Speed"`
	Rot             quatDoc `json:"m_Rot"`
	RotationDegrees float32 `json:"m_RotationDegrees"`
}

type vehicleDoc struct {
	GUID                   string                `json:"m_Guid"`
	Pos                    xyDoc                 `json:"m_Pos"`
	Rot                    quatDoc               `json:"m_Rot"`
	PrefabName             string                `json:"m_PrefabName"`
	TimeDelay              float32               `json:"m_TimeDelaySeconds"`
	CheckpointGUIDs        []string              `json:"m_CheckpointGuids"`
	Acceleration           float32               `json:"m_Acceleration"`
	Mass                   float32               `json:"m_Mass"`
	BrakingForceMultiplier float32               `json:"m_BrakingForceMultiplier"`
	StrengthMethod         layout.StrengthMethod `json:"m_StrengthMethod"`
	MaxSlope               float32               `json:"m_MaxSlope"`
	DesiredAcceleration    float32               `json:"m_DesiredAcceleration"`
	ShocksMultiplier       float32               `json:"m_ShocksMultiplier"`
	IdleOnDownhill         bool                  `json:"m_IdleOnDownhill"`
	Flipped                bool                  `json:"m_Flipped"`
	OrderedCheckpoints     bool                  `json:"m_OrderedCheckpoints"`
	DisplayName            string                `json:"m_DisplayName"`
	RotationDegrees        float32               `json:"m_RotationDegrees"`
	TargetSpeed            float32               `json:"m_TargetSpeed"`
	UndoGUID               *string               `json:"m_UndoGuid"`
}

type stopTriggerDoc struct {
	Pos             xyDoc   `json:"m_Pos"`
	Rot             quatDoc `json:"m_Rot"`
	PrefabName      string  `json:"m_PrefabName"`
	Height          float32 `json:"m_Height"`
	RotationDegrees float32 `json:"m_RotationDegrees"`
	StopVehicleGUID string  `json:"m_StopVehicleGuid"`
	Flipped         bool    `json:"m_Flipped"`
	UndoGUID        *string `json:"m_UndoGuid"`
}

type eventUnitDoc struct {
	GUID string `json:"m_Guid"`
}

type eventStageDoc struct {
	Units []eventUnitDoc `json:"m_Units"`
}

type eventTimelineDoc struct {
	CheckpointGUID string          `json:"m_CheckpointGuid"`
	Stages         []eventStageDoc `json:"m_Stages"`
}

type checkpointDoc struct {
	GUID                    string  `json:"m_Guid"`
	Pos                     xyDoc   `json:"m_Pos"`
	PrefabName              string  `json:"m_PrefabName"`
	VehicleGUID             string  `json:"m_VehicleGuid"`
	VehicleRestartPhaseGUID string  `json:"m_VehicleRestartPhaseGuid"`
	TriggerTimeline         bool    `json:"m_TriggerTimeline"`
	StopVehicle             bool    `json:"m_StopVehicle"`
	ReverseVehicleOnRestart bool    `json:"m_ReverseVehicleOnRestart"`
	UndoGUID                *string `json:"m_UndoGuid"`
}

type terrainIslandDoc struct {
	Pos                  xyzDoc                   `json:"m_Pos"`
	PrefabName           string                   `json:"m_PrefabName"`
	HeightAdded          float32                  `json:"m_HeightAdded"`
	RightEdgeWaterHeight float32                  `json:"m_RightEdgeWaterHeight"`
	Type                 layout.TerrainIslandType `json:"m_TerrainIslandType"`
	VariantIndex         int32                    `json:"m_VariantIndex"`
	Flipped              bool                     `json:"m_Flipped"`
	LockPosition         bool                     `json:"m_LockPosition"`
	UndoGUID             *string                  `json:"m_UndoGuid"`
}

type pillarDoc struct {
	Pos        xyzDoc  `json:"m_Pos"`
	PrefabName string  `json:"m_PrefabName"`
	Height     float32 `json:"m_Height"`
	UndoGUID   *string `json:"m_UndoGuid"`
}

type platformDoc struct {
	Pos      xyDoc   `json:"m_Pos"`
	Height   float32 `json:"m_Height"`
	Width    float32 `json:"m_Width"`
	Flipped  bool    `json:"m_Flipped"`
	Solid    bool    `json:"m_Solid"`
	UndoGUID *string `json:"m_UndoGuid"`
}

type rampDoc struct {
	Pos               xyDoc             `json:"m_Pos"`
	Height            float32           `json:"m_Height"`
	FlippedVertical   bool              `json:"m_FlippedVertical"`
	FlippedHorizontal bool              `json:"m_FlippedHorizontal"`
	FlippedLegs       bool              `json:"m_FlippedLegs"`
	HideLegs          bool              `json:"m_HideLegs"`
	SplineType        layout.SplineType `json:"m_SplineType"`
	NumSegments       int32             `json:"m_NumSegments"`
	ControlPoints     []xyDoc           `json:"m_ControlPoints"`
	LinePoints        []xyDoc           `json:"m_LinePoints"`
	UndoGUID          *string           `json:"m_UndoGuid"`
}

type restartPhaseDoc struct {
	GUID        string  `json:"m_Guid"`
	VehicleGUID string  `json:"m_VehicleGuid"`
	TimeDelay   float32 `json:"m_TimeDelaySeconds"`
	UndoGUID    *string `json:"m_UndoGuid"`
}

type flyingObjectDoc struct {
	Pos        xyzDoc  `json:"m_Pos"`
	Scale      xyzDoc  `json:"m_Scale"`
	PrefabName string  `json:"m_PrefabName"`
	UndoGUID   *string `json:"m_UndoGuid"`
}

type rockDoc struct {
	Pos        xyzDoc  `json:"m_Pos"`
	Scale      xyzDoc  `json:"m_Scale"`
	PrefabName string  `json:"m_PrefabName"`
	Flipped    bool    `json:"m_Flipped"`
	UndoGUID   *string `json:"m_UndoGuid"`
}

type supportPillarDoc struct {
	Pos        xyzDoc  `json:"m_Pos"`
	Scale      xyzDoc  `json:"m_Scale"`
	PrefabName string  `json:"m_PrefabName"`
	UndoGUID   *string `json:"m_UndoGuid"`
}

type waterBlockDoc struct {
	Pos          xyzDoc  `json:"m_Pos"`
	Width        float32 `json:"m_Width"`
	Height       float32 `json:"m_Height"`
	LockPosition bool    `json:"m_LockPosition"`
	UndoGUID     *string `json:"m_UndoGuid"`
}

type customShapeDoc struct {
	Pos                    xyzDoc   `json:"m_Pos"`
	Scale                  xyzDoc   `json:"m_Scale"`
	Rot                    quatDoc  `json:"m_Rot"`
	Color                  colorDoc `json:"m_Color"`
	Flipped                bool     `json:"m_Flipped"`
	CollidesWithRoad       bool     `json:"m_CollidesWithRoad"`
	CollidesWithNodes      bool     `json:"m_CollidesWithNodes"`
	CollidesWithSplitNodes bool     `json:"m_CollidesWithSplitNodes"`
	Dynamic                bool     `json:"m_Dynamic"`
	RotationDegrees        float32  `json:"m_RotationDegrees"`
	Mass                   float32  `json:"m_Mass"`
	Bounciness             float32  `json:"m_Bounciness"`
	PinMotorStrength       float32  `json:"m_PinMotorStrength"`
	PinTargetVelocity      float32  `json:"m_PinTargetVelocity"`
	PointsLocalSpace       []xyDoc  `json:"m_PointsLocalSpace"`
	StaticPins             []xyzDoc `json:"m_StaticPins"`
	DynamicAnchorGUIDs     []string `json:"m_DynamicAnchorGuids"`
	UndoGUID               *string  `json:"m_UndoGuid"`
}

type budgetDoc struct {
	Cash       int32 `json:"m_CashBudget"`
	Road       int32 `json:"m_RoadBudget"`
	Wood       int32 `json:"m_WoodBudget"`
	Steel      int32 `json:"m_SteelBudget"`
	Hydraulics int32 `json:"m_HydraulicBudget"`
	Rope       int32 `json:"m_RopeBudget"`
	Cable      int32 `json:"m_CableBudget"`
	Spring     int32 `json:"m_SpringBudget"`
	// spelled this way in the game's own schema
	BungeeRope int32 `json:"m_BungieRopeBudget"`

	AllowWood           bool `json:"m_AllowWood"`
	AllowSteel          bool `json:"m_AllowSteel"`
	AllowHydraulics     bool `json:"m_AllowHydraulic"`
	AllowRope           bool `json:"m_AllowRope"`
	AllowCable          bool `json:"m_AllowCable"`
	AllowSpring         bool `json:"m_AllowSpring"`
	AllowReinforcedRoad bool `json:"m_AllowReinforcedRoad"`
}

type settingsDoc struct {
	HydraulicsControllerEnabled bool `json:"m_HydraulicControllerEnabled"`
	Unbreakable                 bool `json:"m_Unbreakable"`
}

type workshopDoc struct {
	ID            string   `json:"m_Id"`
	LeaderboardID string   `json:"m_LeaderboardId"`
	Title         string   `json:"m_Title"`
	Description   string   `json:"m_Description"`
	Autoplay      bool     `json:"m_AutoPlay"`
	Tags          []string `json:"m_Tags"`
}

type modDoc struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Settings string `json:"settings"`
}

type modSaveDataDoc struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Data    string `json:"base64_encoded_data"`
}

type layoutDoc struct {
	Version              int                  `json:"m_Version"`
	StubKey              string               `json:"m_ThemeStubKey"`
	Anchors              []jointDoc           `json:"m_Anchors"`
	HydraulicPhases      []hydraulicPhaseDoc  `json:"m_HydraulicPhases"`
	Bridge               bridgeDoc            `json:"m_Bridge"`
	ZAxisVehicles        []zAxisVehicleDoc    `json:"m_ZedAxisVehicles"`
	Vehicles             []vehicleDoc         `json:"m_Vehicles"`
	VehicleStopTriggers  []stopTriggerDoc     `json:"m_VehicleStopTriggers"`
	EventTimelines       []eventTimelineDoc   `json:"m_EventTimelines"`
	Checkpoints          []checkpointDoc      `json:"m_Checkpoints"`
	TerrainStretches     []terrainIslandDoc   `json:"m_TerrainStretches"`
	Pillars              []pillarDoc          `json:"m_Pillars"`
	Platforms            []platformDoc        `json:"m_Platforms"`
	Ramps                []rampDoc            `json:"m_Ramps"`
	VehicleRestartPhases []restartPhaseDoc    `json:"m_VehicleRestartPhases"`
	FlyingObjects        []flyingObjectDoc    `json:"m_FlyingObjects"`
	Rocks                []rockDoc            `json:"m_Rocks"`
	SupportPillars       []supportPillarDoc   `json:"m_SupportPillars"`
	WaterBlocks          []waterBlockDoc      `json:"m_WaterBlocks"`
	CustomShapes         []customShapeDoc     `json:"m_CustomShapes"`
	Budget               budgetDoc            `json:"m_Budget"`
	Settings             settingsDoc          `json:"m_Settings"`
	Workshop             workshopDoc          `json:"m_Workshop"`
	UndoGUID             *string              `json:"m_UndoGuid"`
	Mods                 []modDoc             `json:"ext_Mods"`
	ModSaveData          []modSaveDataDoc     `json:"ext_ModSaveData"`
}

type slotDoc struct {
	Version            int32     `json:"m_Version"`
	PhysicsVersion     int32     `json:"m_PhysicsVersion"`
	SlotID             int32     `json:"m_SlotID"`
	DisplayName        string    `json:"m_DisplayName"`
	FileName           string    `json:"m_SlotFileName"`
	Budget             int32     `json:"m_Budget"`
	LastWriteTimeTicks int64     `json:"m_LastWriteTimeTicks"`
	Bridge             bridgeDoc `json:"m_Bridge"`
	UnlimitedMaterials bool      `json:"m_UsingUnlimitedMaterials"`
	UnlimitedBudget    bool      `json:"m_UsingUnlimitedBudget"`
}

func xyToDoc(v layout.Vec2) xyDoc      { return xyDoc{v.X, v.Y} }
func xyFromDoc(d xyDoc) layout.Vec2    { return layout.Vec2{X: d.X, Y: d.Y} }
func xyzToDoc(v layout.Vec3) xyzDoc    { return xyzDoc{v.X, v.Y, v.Z} }
func xyzFromDoc(d xyzDoc) layout.Vec3  { return layout.Vec3{X: d.X, Y: d.Y, Z: d.Z} }

func quatToDoc(q layout.Quaternion) quatDoc { return quatDoc{q.X, q.Y, q.Z, q.W} }
func quatFromDoc(d quatDoc) layout.Quaternion {
	return layout.Quaternion{X: d.X, Y: d.Y, Z: d.Z, W: d.W}
}

func xySliceToDoc(vs []layout.Vec2) []xyDoc {
	out := make([]xyDoc, len(vs))
	for i, v := range vs {
		out[i] = xyToDoc(v)
	}
	return out
}

func xySliceFromDoc(ds []xyDoc) []layout.Vec2 {
	out := make([]layout.Vec2, len(ds))
	for i, d := range ds {
		out[i] = xyFromDoc(d)
	}
	return out
}

func jointsToDoc(js []layout.BridgeJoint) []jointDoc {
	out := make([]jointDoc, len(js))
	for i, j := range js {
		out[i] = jointDoc{Pos: xyzToDoc(j.Pos), IsAnchor: j.IsAnchor, IsSplit: j.IsSplit, GUID: j.GUID}
	}
	return out
}

func jointsFromDoc(ds []jointDoc) []layout.BridgeJoint {
	out := make([]layout.BridgeJoint, len(ds))
	for i, d := range ds {
		out[i] = layout.BridgeJoint{Pos: xyzFromDoc(d.Pos), IsAnchor: d.IsAnchor, IsSplit: d.IsSplit, GUID: d.GUID}
	}
	return out
}

func bridgeToDoc(b *layout.Bridge) bridgeDoc {
	doc := bridgeDoc{
		Version: b.Version,
		Joints:  jointsToDoc(b.Joints),
		Edges:   make([]edgeDoc, len(b.Edges)),
		Springs: make([]springDoc, len(b.Springs)),
		Pistons: make([]pistonDoc, len(b.Pistons)),
		Anchors: jointsToDoc(b.Anchors),
	}
	for i, e := range b.Edges {
		doc.Edges[i] = edgeDoc{
			Material:   e.Material,
			NodeAGUID:  e.NodeAGUID,
			NodeBGUID:  e.NodeBGUID,
			JointAPart: e.JointAPart,
			JointBPart: e.JointBPart,
			GUID:       e.GUID,
		}
	}
	for i, s := range b.Springs {
		doc.Springs[i] = springDoc{GUID: s.GUID, NodeAGUID: s.NodeAGUID, NodeBGUID: s.NodeBGUID, NormalizedValue: s.NormalizedValue}
	}
	for i, p := range b.Pistons {
		doc.Pistons[i] = pistonDoc{GUID: p.GUID, NodeAGUID: p.NodeAGUID, NodeBGUID: p.NodeBGUID, NormalizedValue: p.NormalizedValue}
	}
	doc.HydraulicsController.Phases = make([]controllerPhaseDoc, len(b.Phases))
	for i, p := range b.Phases {
		pd := controllerPhaseDoc{
			HydraulicsPhaseGUID: p.HydraulicsPhaseGUID,
			PistonGUIDs:         append([]string{}, p.PistonGUIDs...),
			BridgeSplitJoints:   make([]splitJointDoc, len(p.BridgeSplitJoints)),
			DisableNewAdditions: p.DisableNewAdditions,
		}
		for j, sj := range p.BridgeSplitJoints {
			pd.BridgeSplitJoints[j] = splitJointDoc{BridgeJointGUID: sj.GUID, State: sj.State}
		}
		doc.HydraulicsController.Phases[i] = pd
	}
	return doc
}

func bridgeFromDoc(d *bridgeDoc) layout.Bridge {
	b := layout.Bridge{
		Version: d.Version,
		Joints:  jointsFromDoc(d.Joints),
		Edges:   make([]layout.BridgeEdge, len(d.Edges)),
		Springs: make([]layout.BridgeSpring, len(d.Springs)),
		Pistons: make([]layout.Piston, len(d.Pistons)),
		Anchors: jointsFromDoc(d.Anchors),
		Phases:  make([]layout.HydraulicsControllerPhase, len(d.HydraulicsController.Phases)),
	}
	for i, e := range d.Edges {
		guid := e.GUID
		if guid == "" {
			// older exports carry no edge GUIDs; the binary format needs one
			guid = uuid.NewString()
		}
		b.Edges[i] = layout.BridgeEdge{
			Material:   e.Material,
			NodeAGUID:  e.NodeAGUID,
			NodeBGUID:  e.NodeBGUID,
			JointAPart: e.JointAPart,
			JointBPart: e.JointBPart,
			GUID:       guid,
		}
	}
	for i, s := range d.Springs {
		b.Springs[i] = layout.BridgeSpring{GUID: s.GUID, NodeAGUID: s.NodeAGUID, NodeBGUID: s.NodeBGUID, NormalizedValue: s.NormalizedValue}
	}
	for i, p := range d.Pistons {
		b.Pistons[i] = layout.Piston{GUID: p.GUID, NodeAGUID: p.NodeAGUID, NodeBGUID: p.NodeBGUID, NormalizedValue: p.NormalizedValue}
	}
	for i, p := range d.HydraulicsController.Phases {
		phase := layout.HydraulicsControllerPhase{
			HydraulicsPhaseGUID: p.HydraulicsPhaseGUID,
			PistonGUIDs:         append([]string{}, p.PistonGUIDs...),
			BridgeSplitJoints:   make([]layout.BridgeSplitJoint, len(p.BridgeSplitJoints)),
			DisableNewAdditions: p.DisableNewAdditions,
		}
		for j, sj := range p.BridgeSplitJoints {
			phase.BridgeSplitJoints[j] = layout.BridgeSplitJoint{GUID: sj.BridgeJointGUID, State: sj.State}
		}
		b.Phases[i] = phase
	}
	return b
}

func layoutToDoc(l *layout.Layout) *layoutDoc {
	doc := &layoutDoc{
		Version:         l.Version,
		StubKey:         l.StubKey,
		Anchors:         jointsToDoc(l.Anchors),
		HydraulicPhases: make([]hydraulicPhaseDoc, len(l.Phases)),
		Bridge:          bridgeToDoc(&l.Bridge),
		Budget: budgetDoc{
			Cash:                l.Budget.Cash,
			Road:                l.Budget.Road,
			Wood:                l.Budget.Wood,
			Steel:               l.Budget.Steel,
			Hydraulics:          l.Budget.Hydraulics,
			Rope:                l.Budget.Rope,
			Cable:               l.Budget.Cable,
			Spring:              l.Budget.Spring,
			BungeeRope:          l.Budget.BungeeRope,
			AllowWood:           l.Budget.AllowWood,
			AllowSteel:          l.Budget.AllowSteel,
			AllowHydraulics:     l.Budget.AllowHydraulics,
			AllowRope:           l.Budget.AllowRope,
			AllowCable:          l.Budget.AllowCable,
			AllowSpring:         l.Budget.AllowSpring,
			AllowReinforcedRoad: l.Budget.AllowReinforcedRoad,
		},
		Settings: settingsDoc{
			HydraulicsControllerEnabled: l.Settings.HydraulicsControllerEnabled,
			Unbreakable:                 l.Settings.Unbreakable,
		},
		Workshop: workshopDoc{
			ID:            l.Workshop.ID,
			LeaderboardID: l.Workshop.LeaderboardID,
			Title:         l.Workshop.Title,
			Description:   l.Workshop.Description,
			Autoplay:      l.Workshop.Autoplay,
			Tags:          append([]string{}, l.Workshop.Tags...),
		},
	}
	for i, p := range l.Phases {
		doc.HydraulicPhases[i] = hydraulicPhaseDoc{TimeDelay: p.TimeDelay, GUID: p.GUID}
	}

	doc.ZAxisVehicles = make([]zAxisVehicleDoc, len(l.ZAxisVehicles))
	for i, z := range l.ZAxisVehicles {
		doc.ZAxisVehicles[i] = zAxisVehicleDoc{
			GUID:            z.GUID,
			Pos:             xyToDoc(z.Pos),
			TimeDelay:       z.TimeDelay,
			PrefabName:      z.PrefabName,
			Speed:           z.Speed,
			Rot:             quatToDoc(z.Rot),
			RotationDegrees: z.RotationDegrees,
		}
	}

	doc.Vehicles = make([]vehicleDoc, len(l.Vehicles))
	for i, v := range l.Vehicles {
		doc.Vehicles[i] = vehicleDoc{
			GUID:                   v.GUID,
			Pos:                    xyToDoc(v.Pos),
			Rot:                    quatToDoc(v.Rot),
			PrefabName:             v.PrefabName,
			TimeDelay:              v.TimeDelay,
			CheckpointGUIDs:        append([]string{}, v.CheckpointGUIDs...),
			Acceleration:           v.Acceleration,
			Mass:                   v.Mass,
			BrakingForceMultiplier: v.BrakingForceMultiplier,
			StrengthMethod:         v.StrengthMethod,
			MaxSlope:               v.MaxSlope,
			DesiredAcceleration:    v.DesiredAcceleration,
			ShocksMultiplier:       v.ShocksMultiplier,
			IdleOnDownhill:         v.IdleOnDownhill,
			Flipped:                v.Flipped,
			OrderedCheckpoints:     v.OrderedCheckpoints,
			DisplayName:            v.DisplayName,
			RotationDegrees:        v.RotationDegrees,
			TargetSpeed:            v.TargetSpeed,
		}
	}

	doc.VehicleStopTriggers = make([]stopTriggerDoc, len(l.VehicleStopTriggers))
	for i, t := range l.VehicleStopTriggers {
		doc.VehicleStopTriggers[i] = stopTriggerDoc{
			Pos:             xyToDoc(t.Pos),
			Rot:             quatToDoc(t.Rot),
			PrefabName:      t.PrefabName,
			Height:          t.Height,
			RotationDegrees: t.RotationDegrees,
			StopVehicleGUID: t.StopVehicleGUID,
			Flipped:         t.Flipped,
		}
	}

	doc.EventTimelines = make([]eventTimelineDoc, len(l.EventTimelines))
	for i, tl := range l.EventTimelines {
		td := eventTimelineDoc{CheckpointGUID: tl.CheckpointGUID, Stages: make([]eventStageDoc, len(tl.Stages))}
		for j, st := range tl.Stages {
			sd := eventStageDoc{Units: make([]eventUnitDoc, len(st.Units))}
			for k, u := range st.Units {
				sd.Units[k] = eventUnitDoc{GUID: u.GUID}
			}
			td.Stages[j] = sd
		}
		doc.EventTimelines[i] = td
	}

	doc.Checkpoints = make([]checkpointDoc, len(l.Checkpoints))
	for i, c := range l.Checkpoints {
		doc.Checkpoints[i] = checkpointDoc{
			GUID:                    c.GUID,
			Pos:                     xyToDoc(c.Pos),
			PrefabName:              c.PrefabName,
			VehicleGUID:             c.VehicleGUID,
			VehicleRestartPhaseGUID: c.VehicleRestartPhaseGUID,
			TriggerTimeline:         c.TriggerTimeline,
			StopVehicle:             c.StopVehicle,
			ReverseVehicleOnRestart: c.ReverseVehicleOnRestart,
		}
	}

	doc.TerrainStretches = make([]terrainIslandDoc, len(l.TerrainStretches))
	for i, ts := range l.TerrainStretches {
		doc.TerrainStretches[i] = terrainIslandDoc{
			Pos:                  xyzToDoc(ts.Pos),
			PrefabName:           ts.PrefabName,
			HeightAdded:          ts.HeightAdded,
			RightEdgeWaterHeight: ts.RightEdgeWaterHeight,
			Type:                 ts.Type,
			VariantIndex:         ts.VariantIndex,
			Flipped:              ts.Flipped,
			LockPosition:         ts.LockPosition,
		}
	}

	doc.Pillars = make([]pillarDoc, len(l.Pillars))
	for i, p := range l.Pillars {
		doc.Pillars[i] = pillarDoc{Pos: xyzToDoc(p.Pos), PrefabName: p.PrefabName, Height: p.Height}
	}

	doc.Platforms = make([]platformDoc, len(l.Platforms))
	for i, p := range l.Platforms {
		doc.Platforms[i] = platformDoc{Pos: xyToDoc(p.Pos), Height: p.Height, Width: p.Width, Flipped: p.Flipped, Solid: p.Solid}
	}

	doc.Ramps = make([]rampDoc, len(l.Ramps))
	for i, r := range l.Ramps {
		doc.Ramps[i] = rampDoc{
			Pos:               xyToDoc(r.Pos),
			Height:            r.Height,
			FlippedVertical:   r.FlippedVertical,
			FlippedHorizontal: r.FlippedHorizontal,
			FlippedLegs:       r.FlippedLegs,
			HideLegs:          r.HideLegs,
			SplineType:        r.SplineType,
			NumSegments:       r.NumSegments,
			ControlPoints:     xySliceToDoc(r.ControlPoints),
			LinePoints:        xySliceToDoc(r.LinePoints),
		}
	}

	doc.VehicleRestartPhases = make([]restartPhaseDoc, len(l.VehicleRestartPhases))
	for i, p := range l.VehicleRestartPhases {
		doc.VehicleRestartPhases[i] = restartPhaseDoc{GUID: p.GUID, VehicleGUID: p.VehicleGUID, TimeDelay: p.TimeDelay}
	}

	doc.FlyingObjects = make([]flyingObjectDoc, len(l.FlyingObjects))
	for i, o := range l.FlyingObjects {
		doc.FlyingObjects[i] = flyingObjectDoc{Pos: xyzToDoc(o.Pos), Scale: xyzToDoc(o.Scale), PrefabName: o.PrefabName}
	}

	doc.Rocks = make([]rockDoc, len(l.Rocks))
	for i, r := range l.Rocks {
		doc.Rocks[i] = rockDoc{Pos: xyzToDoc(r.Pos), Scale: xyzToDoc(r.Scale), PrefabName: r.PrefabName, Flipped: r.Flipped}
	}

	doc.SupportPillars = make([]supportPillarDoc, len(l.SupportPillars))
	for i, p := range l.SupportPillars {
		doc.SupportPillars[i] = supportPillarDoc{Pos: xyzToDoc(p.Pos), Scale: xyzToDoc(p.Scale), PrefabName: p.PrefabName}
	}

	doc.WaterBlocks = make([]waterBlockDoc, len(l.WaterBlocks))
	for i, w := range l.WaterBlocks {
		doc.WaterBlocks[i] = waterBlockDoc{Pos: xyzToDoc(w.Pos), Width: w.Width, Height: w.Height, LockPosition: w.LockPosition}
	}

	doc.CustomShapes = make([]customShapeDoc, len(l.CustomShapes))
	for i, s := range l.CustomShapes {
		doc.CustomShapes[i] = customShapeDoc{
			Pos:                    xyzToDoc(s.Pos),
			Scale:                  xyzToDoc(s.Scale),
			Rot:                    quatToDoc(s.Rot),
			Color:                  colorDoc{s.Color.R, s.Color.G, s.Color.B, s.Color.A},
			Flipped:                s.Flipped,
			CollidesWithRoad:       s.CollidesWithRoad,
			CollidesWithNodes:      s.CollidesWithNodes,
			CollidesWithSplitNodes: s.CollidesWithSplitNodes,
			Dynamic:                s.Dynamic,
			RotationDegrees:        s.RotationDegrees,
			Mass:                   s.Mass,
			Bounciness:             s.Bounciness,
			PinMotorStrength:       s.PinMotorStrength,
			PinTargetVelocity:      s.PinTargetVelocity,
			PointsLocalSpace:       xySliceToDoc(s.PointsLocalSpace),
			StaticPins:             make([]xyzDoc, len(s.StaticPins)),
			DynamicAnchorGUIDs:     append([]string{}, s.DynamicAnchorGUIDs...),
		}
		for j, pin := range s.StaticPins {
			doc.CustomShapes[i].StaticPins[j] = xyzToDoc(pin)
		}
	}

	doc.Mods = make([]modDoc, len(l.ModData.Mods))
	for i, m := range l.ModData.Mods {
		doc.Mods[i] = modDoc{Name: m.Name, Version: m.Version, Settings: m.Settings}
	}
	doc.ModSaveData = make([]modSaveDataDoc, len(l.ModData.SaveData))
	for i, m := range l.ModData.SaveData {
		doc.ModSaveData[i] = modSaveDataDoc{
			Name:    m.Name,
			Version: m.Version,
			Data:    base64.StdEncoding.EncodeToString(m.Data),
		}
	}
	return doc
}

func layoutFromDoc(doc *layoutDoc) (*layout.Layout, error) {
	l := &layout.Layout{
		Version: doc.Version,
		StubKey: doc.StubKey,
		Anchors: jointsFromDoc(doc.Anchors),
		Bridge:  bridgeFromDoc(&doc.Bridge),
		Budget: layout.Budget{
			Cash:                doc.Budget.Cash,
			Road:                doc.Budget.Road,
			Wood:                doc.Budget.Wood,
			Steel:               doc.Budget.Steel,
			Hydraulics:          doc.Budget.Hydraulics,
			Rope:                doc.Budget.Rope,
			Cable:               doc.Budget.Cable,
			Spring:              doc.Budget.Spring,
			BungeeRope:          doc.Budget.BungeeRope,
			AllowWood:           doc.Budget.AllowWood,
			AllowSteel:          doc.Budget.AllowSteel,
			AllowHydraulics:     doc.Budget.AllowHydraulics,
			AllowRope:           doc.Budget.AllowRope,
			AllowCable:          doc.Budget.AllowCable,
			AllowSpring:         doc.Budget.AllowSpring,
			AllowReinforcedRoad: doc.Budget.AllowReinforcedRoad,
		},
		Settings: layout.Settings{
			HydraulicsControllerEnabled: doc.Settings.HydraulicsControllerEnabled,
			Unbreakable:                 doc.Settings.Unbreakable,
		},
		Workshop: layout.Workshop{
			ID:            doc.Workshop.ID,
			LeaderboardID: doc.Workshop.LeaderboardID,
			Title:         doc.Workshop.Title,
			Description:   doc.Workshop.Description,
			Autoplay:      doc.Workshop.Autoplay,
			Tags:          append([]string{}, doc.Workshop.Tags...),
		},
	}

	l.Phases = make([]layout.HydraulicPhase, len(doc.HydraulicPhases))
	for i, p := range doc.HydraulicPhases {
		l.Phases[i] = layout.HydraulicPhase{TimeDelay: p.TimeDelay, GUID: p.GUID}
	}

	l.ZAxisVehicles = make([]layout.ZAxisVehicle, len(doc.ZAxisVehicles))
	for i, z := range doc.ZAxisVehicles {
		l.ZAxisVehicles[i] = layout.ZAxisVehicle{
			GUID:            z.GUID,
			Pos:             xyFromDoc(z.Pos),
			TimeDelay:       z.TimeDelay,
			PrefabName:      z.PrefabName,
			Speed:           z.Speed,
			Rot:             quatFromDoc(z.Rot),
			RotationDegrees: z.RotationDegrees,
		}
	}

	l.Vehicles = make([]layout.Vehicle, len(doc.Vehicles))
	for i, v := range doc.Vehicles {
		l.Vehicles[i] = layout.Vehicle{
			GUID:                   v.GUID,
			Pos:                    xyFromDoc(v.Pos),
			Rot:                    quatFromDoc(v.Rot),
			PrefabName:             v.PrefabName,
			TimeDelay:              v.TimeDelay,
			CheckpointGUIDs:        append([]string{}, v.CheckpointGUIDs...),
			Acceleration:           v.Acceleration,
			Mass:                   v.Mass,
			BrakingForceMultiplier: v.BrakingForceMultiplier,
			StrengthMethod:         v.StrengthMethod,
			MaxSlope:               v.MaxSlope,
			DesiredAcceleration:    v.DesiredAcceleration,
			ShocksMultiplier:       v.ShocksMultiplier,
			IdleOnDownhill:         v.IdleOnDownhill,
			Flipped:                v.Flipped,
			OrderedCheckpoints:     v.OrderedCheckpoints,
			DisplayName:            v.DisplayName,
			RotationDegrees:        v.RotationDegrees,
			TargetSpeed:            v.TargetSpeed,
		}
	}

	l.VehicleStopTriggers = make([]layout.VehicleStopTrigger, len(doc.VehicleStopTriggers))
	for i, t := range doc.VehicleStopTriggers {
		l.VehicleStopTriggers[i] = layout.VehicleStopTrigger{
			Pos:             xyFromDoc(t.Pos),
			Rot:             quatFromDoc(t.Rot),
			PrefabName:      t.PrefabName,
			Height:          t.Height,
			RotationDegrees: t.RotationDegrees,
			StopVehicleGUID: t.StopVehicleGUID,
			Flipped:         t.Flipped,
		}
	}

	l.EventTimelines = make([]layout.EventTimeline, len(doc.EventTimelines))
	for i, td := range doc.EventTimelines {
		tl := layout.EventTimeline{CheckpointGUID: td.CheckpointGUID, Stages: make([]layout.EventStage, len(td.Stages))}
		for j, sd := range td.Stages {
			st := layout.EventStage{Units: make([]layout.EventUnit, len(sd.Units))}
			for k, u := range sd.Units {
				st.Units[k] = layout.EventUnit{GUID: u.GUID}
			}
			tl.Stages[j] = st
		}
		l.EventTimelines[i] = tl
	}

	l.Checkpoints = make([]layout.Checkpoint, len(doc.Checkpoints))
	for i, c := range doc.Checkpoints {
		l.Checkpoints[i] = layout.Checkpoint{
			GUID:                    c.GUID,
			Pos:                     xyFromDoc(c.Pos),
			PrefabName:              c.PrefabName,
			VehicleGUID:             c.VehicleGUID,
			VehicleRestartPhaseGUID: c.VehicleRestartPhaseGUID,
			TriggerTimeline:         c.TriggerTimeline,
			StopVehicle:             c.StopVehicle,
			ReverseVehicleOnRestart: c.ReverseVehicleOnRestart,
		}
	}

	l.TerrainStretches = make([]layout.TerrainIsland, len(doc.TerrainStretches))
	for i, ts := range doc.TerrainStretches {
		l.TerrainStretches[i] = layout.TerrainIsland{
			Pos:                  xyzFromDoc(ts.Pos),
			PrefabName:           ts.PrefabName,
			HeightAdded:          ts.HeightAdded,
			RightEdgeWaterHeight: ts.RightEdgeWaterHeight,
			Type:                 ts.Type,
			VariantIndex:         ts.VariantIndex,
			Flipped:              ts.Flipped,
			LockPosition:         ts.LockPosition,
		}
	}

	l.Pillars = make([]layout.Pillar, len(doc.Pillars))
	for i, p := range doc.Pillars {
		l.Pillars[i] = layout.Pillar{Pos: xyzFromDoc(p.Pos), PrefabName: p.PrefabName, Height: p.Height}
	}

	l.Platforms = make([]layout.Platform, len(doc.Platforms))
	for i, p := range doc.Platforms {
		l.Platforms[i] = layout.Platform{Pos: xyFromDoc(p.Pos), Height: p.Height, Width: p.Width, Flipped: p.Flipped, Solid: p.Solid}
	}

	l.Ramps = make([]layout.Ramp, len(doc.Ramps))
	for i, r := range doc.Ramps {
		l.Ramps[i] = layout.Ramp{
			Pos:               xyFromDoc(r.Pos),
			Height:            r.Height,
			FlippedVertical:   r.FlippedVertical,
			FlippedHorizontal: r.FlippedHorizontal,
			FlippedLegs:       r.FlippedLegs,
			HideLegs:          r.HideLegs,
			SplineType:        r.SplineType,
			NumSegments:       r.NumSegments,
			ControlPoints:     xySliceFromDoc(r.ControlPoints),
			LinePoints:        xySliceFromDoc(r.LinePoints),
		}
	}

	l.VehicleRestartPhases = make([]layout.VehicleRestartPhase, len(doc.VehicleRestartPhases))
	for i, p := range doc.VehicleRestartPhases {
		l.VehicleRestartPhases[i] = layout.VehicleRestartPhase{GUID: p.GUID, VehicleGUID: p.VehicleGUID, TimeDelay: p.TimeDelay}
	}

	l.FlyingObjects = make([]layout.FlyingObject, len(doc.FlyingObjects))
	for i, o := range doc.FlyingObjects {
		l.FlyingObjects[i] = layout.FlyingObject{Pos: xyzFromDoc(o.Pos), Scale: xyzFromDoc(o.Scale), PrefabName: o.PrefabName}
	}

	l.Rocks = make([]layout.Rock, len(doc.Rocks))
	for i, r := range doc.Rocks {
		l.Rocks[i] = layout.Rock{Pos: xyzFromDoc(r.Pos), Scale: xyzFromDoc(r.Scale), PrefabName: r.PrefabName, Flipped: r.Flipped}
	}

	l.SupportPillars = make([]layout.SupportPillar, len(doc.SupportPillars))
	for i, p := range doc.SupportPillars {
		l.SupportPillars[i] = layout.SupportPillar{Pos: xyzFromDoc(p.Pos), Scale: xyzFromDoc(p.Scale), PrefabName: p.PrefabName}
	}

	l.WaterBlocks = make([]layout.WaterBlock, len(doc.WaterBlocks))
	for i, w := range doc.WaterBlocks {
		l.WaterBlocks[i] = layout.WaterBlock{Pos: xyzFromDoc(w.Pos), Width: w.Width, Height: w.Height, LockPosition: w.LockPosition}
	}

	l.CustomShapes = make([]layout.CustomShape, len(doc.CustomShapes))
	for i, s := range doc.CustomShapes {
		shape := layout.CustomShape{
			Pos:                    xyzFromDoc(s.Pos),
			Scale:                  xyzFromDoc(s.Scale),
			Rot:                    quatFromDoc(s.Rot),
			Color:                  layout.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A},
			Flipped:                s.Flipped,
			CollidesWithRoad:       s.CollidesWithRoad,
			CollidesWithNodes:      s.CollidesWithNodes,
			CollidesWithSplitNodes: s.CollidesWithSplitNodes,
			Dynamic:                s.Dynamic,
			RotationDegrees:        s.RotationDegrees,
			Mass:                   s.Mass,
			Bounciness:             s.Bounciness,
			PinMotorStrength:       s.PinMotorStrength,
			PinTargetVelocity:      s.PinTargetVelocity,
			PointsLocalSpace:       xySliceFromDoc(s.PointsLocalSpace),
			StaticPins:             make([]layout.Vec3, len(s.StaticPins)),
			DynamicAnchorGUIDs:     append([]string{}, s.DynamicAnchorGUIDs...),
		}
		for j, pin := range s.StaticPins {
			shape.StaticPins[j] = xyzFromDoc(pin)
		}
		l.CustomShapes[i] = shape
	}

	l.ModData.Mods = make([]layout.Mod, len(doc.Mods))
	for i, m := range doc.Mods {
		l.ModData.Mods[i] = layout.Mod{Name: m.Name, Version: m.Version, Settings: m.Settings}
	}
	l.ModData.SaveData = make([]layout.ModSaveData, len(doc.ModSaveData))
	for i, m := range doc.ModSaveData {
		data, err := base64.StdEncoding.DecodeString(m.Data)
		if err != nil {
			return nil, err
		}
		l.ModData.SaveData[i] = layout.ModSaveData{Name: m.Name, Version: m.Version, Data: data}
	}
	l.IsModded = len(l.ModData.Mods) > 0 || len(l.ModData.SaveData) > 0
	return l, nil
}

func slotToDoc(s *slot.SaveSlot) *slotDoc {
	return &slotDoc{
		Version:            s.Version,
		PhysicsVersion:     s.PhysicsVersion,
		SlotID:             s.SlotID,
		DisplayName:        s.DisplayName,
		FileName:           s.FileName,
		Budget:             s.Budget,
		LastWriteTimeTicks: s.LastWriteTimeTicks,
		Bridge:             bridgeToDoc(&s.Bridge),
		UnlimitedMaterials: s.UnlimitedMaterials,
		UnlimitedBudget:    s.UnlimitedBudget,
	}
}
