package city

// City layout sampling ranges (world units).
const (
	PosMin    = -100.0
	PosMax    = 100.0
	WidthMin  = 5.0
	WidthMax  = 15.0
	DepthMin  = 5.0
	DepthMax  = 15.0
	HeightMin = 10.0
	HeightMax = 60.0
	ColorMin  = 0.2
	ColorMax  = 0.8
)

// Every LitEvery-th building (0-indexed) gets the bright palette.
const LitEvery = 5

// Ground plane.
const (
	GroundY      = -0.5
	GroundSize   = 250.0
	GroundHeight = 1.0
	GroundShade  = 0.1
)

// Top faces are tinted brighter than bottom faces. Not clamped.
const TopTint = 0.1

// Mesh layout.
const (
	FloatsPerVertex = 6
	VertexStride    = FloatsPerVertex * 4 // bytes
	VerticesPerBox  = 8
	IndicesPerBox   = 36
	FloatsPerBox    = VerticesPerBox * FloatsPerVertex
)

// Run defaults.
const (
	DefaultBuildings  = 100
	DefaultCamSpeed   = 1.0 // world units per frame
	DefaultAudioLevel = 0.12
	ReferenceFrameHz  = 60.0
	MaxFrameDelta     = 0.1 // seconds
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "City Landscape"
)

// Camera defaults.
const (
	CamStartX = 0.0
	CamStartY = 50.0
	CamStartZ = 150.0
	CamFovDeg = 45.0
	CamNear   = 0.1
	CamFar    = 1000.0
)

// Night sky clear colour.
const (
	SkyR = 0.1
	SkyG = 0.1
	SkyB = 0.2
)
