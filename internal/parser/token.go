package parser

// Command keywords of the aff grammar. The unqualified parenthesised
// tuple form carries no keyword and is the tap literal.
const (
	tagTap          = "tap"
	tagArc          = "arc"
	tagArcTap       = "arctap"
	tagCamera       = "camera"
	tagFlick        = "flick"
	tagHold         = "hold"
	tagSceneControl = "scenecontrol"
	tagTiming       = "timing"
	tagTimingGroup  = "timinggroup"
)

// Skyline judgment tokens, mapped by the decoder.
const (
	wordSkylineTrue      = "true"
	wordSkylineFalse     = "false"
	wordSkylineDesignant = "designant"
)
