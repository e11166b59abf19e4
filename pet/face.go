package pet

// Face is the displayed expression derived from the attributes
type Face uint8

const (
	FaceHappy Face = iota
	FaceNeutral
	FaceSad
	FaceTired
	FaceHungry
	FaceDead
)

// Thresholds for the displayed expression
const (
	LowStatThreshold  = 30
	HighStatThreshold = 80
)

var faceGlyphs = [...]string{
	FaceHappy:   "=^.^=",
	FaceNeutral: "=o.o=",
	FaceSad:     "=;.;=",
	FaceTired:   "=-.-=",
	FaceHungry:  "=O.O=",
	FaceDead:    "=x.x=",
}

var faceNames = [...]string{
	FaceHappy:   "happy",
	FaceNeutral: "content",
	FaceSad:     "sad",
	FaceTired:   "tired",
	FaceHungry:  "hungry",
	FaceDead:    "dead",
}

// Face picks an expression, most urgent need first
func (c *Cat) Face() Face {
	switch {
	case !c.alive:
		return FaceDead
	case c.stats.Hunger < LowStatThreshold:
		return FaceHungry
	case c.stats.Energy < LowStatThreshold:
		return FaceTired
	case c.stats.Mood < LowStatThreshold:
		return FaceSad
	case c.stats.Mood >= HighStatThreshold:
		return FaceHappy
	default:
		return FaceNeutral
	}
}

// Glyph returns the ascii face
func (f Face) Glyph() string {
	if int(f) < len(faceGlyphs) {
		return faceGlyphs[f]
	}
	return faceGlyphs[FaceNeutral]
}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "unknown"
}
