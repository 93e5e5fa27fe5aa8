package trueskate

import (
	"fmt"
	"io"
)

// modInfoTemplate is the _mod.json descriptor, verbatim from the format the
// game ships with (including its loose quoting and tab layout). It is
// parameterized only by park name and geometry filename.
const modInfoTemplate = `"modWorldInfo":
{
	"name":"%s",
	"fileName":"%s"
	"startPositions":
	[
			"startPosition":
			{ 
				"x":0.0, 
				"y":0.0, 
				"z":5.0
				"angle":0.0
			}
			"startPosition":
			{ 
				"x":10.0, 
				"y":0.0, 
				"z":0.0
				"angle":90.0
			}
	],
	"skyBoxUp":"sky_top.jpg"
	"skyBoxForward":"sky_front.jpg"
	"skyBoxBack":"sky_back.jpg"
	"skyBoxLeft":"sky_left.jpg"
	"skyBoxRight":"sky_right.jpg"

	"specularBoxUp":"sky_top.jpg"
	"specularBoxForward":"sky_front.jpg"
	"specularBoxBack":"sky_back.jpg"
	"specularBoxLeft":"sky_left.jpg"
	"specularBoxRight":"sky_right.jpg"
	"specularBoxDown":"sky_bottom.jpg"

	"skyAngle":90.0
	"gamma":1.0

	"colorBackground": { "r": 0.5, "g": 0.7, "b": 1.0 },
	"colorLightingDirect": { "r": 1.0, "g": 0.95, "b": 0.9},
	"colorLightingAmbient": { "r": 0.4, "g": 0.45, "b": 0.5},
	"lightDirection": { "x": 45.0, "y": 60.0, "z":180.0 }
}`

// ModInfoText renders the _mod.json descriptor for the given park name and
// geometry filename.
func ModInfoText(parkName, geometryFilename string) string {
	return fmt.Sprintf(modInfoTemplate, parkName, geometryFilename)
}

// WriteModInfo writes the _mod.json descriptor to w.
func WriteModInfo(w io.Writer, parkName, geometryFilename string) error {
	if _, err := io.WriteString(w, ModInfoText(parkName, geometryFilename)); err != nil {
		return fmt.Errorf("trueskate: write mod info: %w", err)
	}
	return nil
}
