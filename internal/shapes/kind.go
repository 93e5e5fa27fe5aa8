package shapes

import "trueskate-exporter/internal/geometry"

// Kind enumerates the object types the catalog can generate. New types are
// added by extending this enumeration and the Generate switch, not by
// registering into an open map.
type Kind int

const (
	KindGroundFlat Kind = iota
	KindGroundSlope
	KindQuarterPipe
	KindHalfPipe
	KindKicker
	KindPyramid
	KindRailFlat
	KindRailDown
	KindLedge
	KindManualPad
	KindStairs3
	KindStairs5
	KindStairsHubba
	KindBench
	KindTrashCan
)

// kindNames maps each Kind to the type identifier used in park files.
var kindNames = map[Kind]string{
	KindGroundFlat:  "ground-flat",
	KindGroundSlope: "ground-slope",
	KindQuarterPipe: "quarter-pipe",
	KindHalfPipe:    "half-pipe",
	KindKicker:      "kicker",
	KindPyramid:     "pyramid",
	KindRailFlat:    "rail-flat",
	KindRailDown:    "rail-down",
	KindLedge:       "ledge",
	KindManualPad:   "manual-pad",
	KindStairs3:     "stairs-3",
	KindStairs5:     "stairs-5",
	KindStairsHubba: "stairs-hubba",
	KindBench:       "bench",
	KindTrashCan:    "trash-can",
}

// kindsByName is the reverse of kindNames, built once at init.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the park-file type identifier for k.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindFromString maps a park-file type identifier to its Kind. The second
// return is false for identifiers not in the catalog; callers skip such
// objects rather than failing the export.
func KindFromString(s string) (Kind, bool) {
	k, ok := kindsByName[s]
	return k, ok
}

// Kinds returns all catalog kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(kindNames))
	for k := KindGroundFlat; k <= KindTrashCan; k++ {
		ks = append(ks, k)
	}
	return ks
}

// Built-in generator defaults, used when the shape catalog does not override
// a parameter.
const (
	defaultGroundSize    = 10.0
	defaultSlopeLength   = 5.0
	defaultSlopeHeight   = 2.0
	defaultSlopeWidth    = 5.0
	defaultPipeRadius    = 3.0
	defaultPipeWidth     = 6.0
	defaultPipeSegments  = 12
	defaultKickerLength  = 2.0
	defaultKickerHeight  = 1.5
	defaultKickerWidth   = 3.0
	defaultPyramidHalfW  = 3.0
	defaultPyramidHeight = 2.0
	defaultRailLength    = 6.0
	defaultRailHeight    = 0.8
	defaultRailRadius    = 0.08
	defaultLedgeLength   = 5.0
	defaultLedgeHeight   = 0.6
	defaultLedgeDepth    = 0.8
	defaultPadLength     = 4.0
	defaultPadHeight     = 0.3
	defaultPadWidth      = 2.0
	defaultStepHeight    = 0.4
	defaultStepDepth     = 1.0
	defaultStepWidth     = 3.0
)

// Generate produces k's mesh in local object space, using def for any
// parameters it overrides and built-in defaults for the rest.
//
// Several kinds are documented placeholders that reuse the nearest real
// generator until dedicated geometry exists: half-pipe renders as a single
// quarter pipe, rail-down as a flat rail (no descent angle yet), stairs-hubba
// as a plain 4-step flight, and trash-can as a small box.
func (k Kind) Generate(def ShapeDef) geometry.Mesh {
	switch k {
	case KindGroundFlat:
		return GroundFlat(def.sizeOr(defaultGroundSize))
	case KindGroundSlope:
		return Slope(def.lengthOr(defaultSlopeLength), def.heightOr(defaultSlopeHeight), def.widthOr(defaultSlopeWidth))
	case KindQuarterPipe, KindHalfPipe:
		return QuarterPipe(def.radiusOr(defaultPipeRadius), def.widthOr(defaultPipeWidth), def.segmentsOr(defaultPipeSegments))
	case KindKicker:
		return Kicker(def.lengthOr(defaultKickerLength), def.heightOr(defaultKickerHeight), def.widthOr(defaultKickerWidth))
	case KindPyramid:
		return Pyramid(def.radiusOr(defaultPyramidHalfW), def.heightOr(defaultPyramidHeight))
	case KindRailFlat, KindRailDown:
		return Rail(def.lengthOr(defaultRailLength), def.heightOr(defaultRailHeight), def.radiusOr(defaultRailRadius))
	case KindLedge:
		return Ledge(def.lengthOr(defaultLedgeLength), def.heightOr(defaultLedgeHeight), def.depthOr(defaultLedgeDepth))
	case KindManualPad:
		return ManualPad(def.lengthOr(defaultPadLength), def.heightOr(defaultPadHeight), def.widthOr(defaultPadWidth))
	case KindStairs3:
		return Stairs(def.stepsOr(3), def.heightOr(defaultStepHeight), def.depthOr(defaultStepDepth), def.widthOr(defaultStepWidth))
	case KindStairs5:
		return Stairs(def.stepsOr(5), def.heightOr(defaultStepHeight), def.depthOr(defaultStepDepth), def.widthOr(defaultStepWidth))
	case KindStairsHubba:
		return Stairs(def.stepsOr(4), def.heightOr(defaultStepHeight), def.depthOr(defaultStepDepth), def.widthOr(defaultStepWidth))
	case KindBench:
		return Bench()
	case KindTrashCan:
		return Box(0.6, 0.8, 0.6, geometry.Vec3{Y: 0.4})
	}
	return geometry.Mesh{}
}
