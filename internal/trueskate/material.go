package trueskate

// Material is one entry of the fixed material table. Only the diffuse color
// varies per entry; every other shading field in the output is a format
// constant shared by all six.
type Material struct {
	R, G, B uint8
}

// Materials is the fixed 6-entry material table meshes select from. It is
// process-wide constant data, never derived from input.
var Materials = [6]Material{
	{128, 128, 130}, // 0: ground, gray concrete
	{100, 100, 105}, // 1: ramps, darker gray
	{85, 85, 90},    // 2: pyramid, medium gray
	{180, 180, 180}, // 3: rails, metallic
	{136, 85, 51},   // 4: kicker, wood brown
	{139, 69, 19},   // 5: bench, wood
}
