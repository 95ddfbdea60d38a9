package layout

// field identifies a version-gated site in the layout or bridge stream.
type field int

// Layout-gated fields.
const (
	fieldAnchors field = iota
	fieldPhasesEarly
	fieldFullBridge
	fieldZAxisVehicles
	fieldZAxisSpeed
	fieldZAxisRotation
	fieldThemeObjects
	fieldEventUnitGUID
	fieldTerrainLockPosition
	fieldPlatformSolid
	fieldRampHideLegs
	fieldRampFlippedLegs
	fieldRampLegacyBool
	fieldRampLinePoints
	fieldPhasesLate
	fieldLegacyGarbage
	fieldCustomShapes
	fieldShapeSplitNodes
	fieldShapeColor
	fieldShapeMass
	fieldShapeBounciness
	fieldShapePinMotor
	fieldWorkshop
	fieldWorkshopLeaderboard
	fieldSupportPillars
	fieldPillars
	fieldWaterLockPosition

	// Bridge-gated fields, keyed on the bridge version.
	fieldBridgeBody
	fieldEdgeGUID
	fieldSprings
	fieldPistonRaw
	fieldSplitJoints
	fieldPhaseDisableAdditions
	fieldBridgeGarbageStrings
	fieldBridgeAnchors
	fieldBridgeTrailingBool
)

// gate is a half-open version interval [min, max). A zero max means the field
// never gated out again.
type gate struct {
	min, max int
}

func (g gate) at(v int) bool {
	if v < g.min {
		return false
	}
	return g.max == 0 || v < g.max
}

// layoutGates records, per field, the layout versions that carry it on the
// wire. The table is the single source of truth for both decode and encode;
// the decoder consults it through decoder.has, the encoder writes every field
// because the target version carries them all.
var layoutGates = map[field]gate{
	fieldAnchors:             {min: 19},
	fieldPhasesEarly:         {min: 5},
	fieldFullBridge:          {min: 5},
	fieldZAxisVehicles:       {min: 7},
	fieldZAxisSpeed:          {min: 8},
	fieldZAxisRotation:       {min: 26},
	fieldThemeObjects:        {max: 20},
	fieldEventUnitGUID:       {min: 7},
	fieldTerrainLockPosition: {min: 6},
	fieldPlatformSolid:       {min: 22},
	fieldRampHideLegs:        {min: 23},
	fieldRampFlippedLegs:     {min: 25},
	fieldRampLegacyBool:      {min: 22, max: 25},
	fieldRampLinePoints:      {min: 13},
	fieldPhasesLate:          {max: 5},
	fieldLegacyGarbage:       {max: 5},
	fieldCustomShapes:        {min: 9},
	fieldShapeSplitNodes:     {min: 25},
	fieldShapeColor:          {min: 10},
	fieldShapeMass:           {min: 11},
	fieldShapeBounciness:     {min: 14},
	fieldShapePinMotor:       {min: 24},
	fieldWorkshop:            {min: 15},
	fieldWorkshopLeaderboard: {min: 16},
	fieldSupportPillars:      {min: 17},
	fieldPillars:             {min: 18},
	fieldWaterLockPosition:   {min: 12},
}

// bridgeGates is the same policy for the bridge sub-format, keyed on the
// bridge's own version number.
var bridgeGates = map[field]gate{
	fieldBridgeBody:            {min: 2},
	fieldEdgeGUID:              {min: 11},
	fieldSprings:               {min: 7},
	fieldPistonRaw:             {min: 8},
	fieldSplitJoints:           {min: 3},
	fieldPhaseDisableAdditions: {min: 10},
	fieldBridgeGarbageStrings:  {min: 5, max: 6},
	fieldBridgeAnchors:         {min: 6},
	fieldBridgeTrailingBool:    {min: 4, max: 9},
}

func bridgeHas(f field, version int) bool {
	return bridgeGates[f].at(version)
}
