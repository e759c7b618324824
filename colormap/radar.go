package colormap

// "Code BR" reflectivity, one color per dBZ from -15 to +85.
// http://almanydesigns.com/grx/reflectivity/
var reflCodeBRColors = [][3]uint8{
	{6, 0, 8}, {13, 0, 16}, {19, 0, 24}, {25, 1, 32}, {31, 1, 40}, {38, 1, 48}, {44, 1, 55}, {50, 1, 63}, {56, 1, 71}, {61, 3, 78}, // -15 dBZ
	{61, 9, 84}, {62, 16, 89}, {62, 22, 95}, {63, 28, 100}, {63, 35, 106}, {64, 41, 111}, {64, 47, 117}, {64, 53, 123}, {65, 60, 128}, {65, 66, 134}, // -5 dBZ
	{66, 72, 139}, {66, 79, 145}, {66, 85, 150}, {67, 91, 156}, {67, 97, 162}, {73, 113, 171}, {78, 129, 180}, {84, 145, 190}, {89, 161, 199}, {95, 176, 209}, // +5 dBZ
	{100, 192, 218}, {106, 208, 228}, {111, 214, 232}, {92, 214, 185}, {72, 213, 138}, {53, 213, 91}, {17, 213, 24}, {16, 204, 23}, {16, 195, 22}, {15, 186, 21}, // +15 dBZ
	{15, 177, 19}, {14, 168, 18}, {13, 158, 17}, {13, 149, 16}, {12, 140, 15}, {12, 131, 14}, {11, 122, 13}, {10, 113, 12}, {10, 103, 10}, {29, 104, 9}, // +25 dBZ
	{81, 131, 8}, {132, 157, 7}, {183, 184, 5}, {234, 210, 4}, {255, 226, 0}, {255, 217, 0}, {255, 207, 0}, {255, 197, 0}, {255, 187, 0}, {255, 177, 0}, // +35 dBZ
	{255, 167, 0}, {255, 157, 0}, {255, 147, 0}, {255, 137, 0}, {255, 128, 0}, {255, 0, 0}, {240, 0, 0}, {224, 0, 0}, {208, 0, 0}, {192, 0, 0}, // +45 dBZ
	{176, 0, 0}, {160, 0, 0}, {144, 0, 0}, {128, 0, 0}, {113, 0, 0}, {255, 255, 255}, {255, 228, 255}, {255, 200, 255}, {255, 173, 255}, {255, 145, 255}, // +55 dBZ
	{255, 117, 255}, {248, 91, 248}, {241, 65, 241}, {234, 39, 233}, {225, 11, 227}, {178, 0, 255}, {159, 0, 245}, {139, 0, 235}, {119, 0, 224}, {99, 0, 214}, // +65 dBZ
	{5, 236, 241}, {5, 215, 220}, {4, 195, 199}, {4, 175, 178}, {3, 154, 157}, {3, 134, 136}, {2, 114, 115}, {2, 93, 95}, {1, 73, 74}, {1, 53, 53}, // +75 dBZ
}

// reflBase is the level of the first Code BR color.
const reflBase = -15

var (
	reflCodeBRLevels    = arange(-15, 86, 1)
	reflCodeBRMa5Levels = arange(5, 86, 1)
	reflM5To85Levels    = arange(-5, 86, 1)
	reflM5To45Levels    = arange(-5, 46, 1)
	rvelLevels          = arange(-40, 41, 2)
)

// MRMS product viewer tables. https://mrms.nssl.noaa.gov/qvs/product_viewer/
var zdrMRMSColors = [][3]uint8{
	{64, 64, 64}, {156, 156, 156}, {201, 201, 201}, {137, 121, 176},
	{0, 0, 146}, {75, 150, 206}, {130, 252, 212}, {125, 216, 104},
	{255, 255, 122}, {241, 149, 86}, {200, 42, 29}, {158, 31, 20},
	{232, 136, 188}, {255, 255, 255}, {109, 18, 121},
}

var zdrMRMSLevels = []float64{-4, -2, -0.5, 0, 0.3, 0.6, 1, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 20}

var kdpMRMSColors = [][3]uint8{
	{142, 142, 142}, {120, 120, 120}, {50, 50, 50}, {68, 7, 4},
	{149, 31, 48}, {194, 76, 94}, {213, 112, 160}, {160, 126, 181},
	{140, 251, 254}, {90, 187, 173}, {115, 242, 77}, {254, 251, 84},
	{239, 136, 56}, {246, 196, 138}, {110, 18, 120}, {0, 0, 147},
}

var kdpMRMSLevels = []float64{-3, -2, -0.51, -0.5, 0, 0.25, 0.5, 1, 1.5, 2, 2.55, 3, 4, 5, 7.5, 10, 100}

var rhohvLevels = []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.75, 0.8, 0.85, 0.9, 0.91, 0.92, 0.93, 0.94, 0.95, 0.96, 0.97, 0.98, 0.99, 1}

// ReflCodeBR is the full Code BR reflectivity scale, -15 to +85 dBZ.
func ReflCodeBR(opts Options) (*Palette, error) {
	return reflectivity("refl_codebr", -15, 85, opts.levels(reflCodeBRLevels))
}

// ReflCodeBRMa5 is Code BR restricted to +5 to +85 dBZ.
func ReflCodeBRMa5(opts Options) (*Palette, error) {
	return reflectivity("refl_codebr_ma5", 5, 85, opts.levels(reflCodeBRMa5Levels))
}

// ReflCodeBRM5To85 is Code BR restricted to -5 to +85 dBZ.
func ReflCodeBRM5To85(opts Options) (*Palette, error) {
	return reflectivity("refl_codebr_m5_85", -5, 85, opts.levels(reflM5To85Levels))
}

// ReflCodeBRM5To45 is Code BR restricted to -5 to +45 dBZ.
func ReflCodeBRM5To45(opts Options) (*Palette, error) {
	return reflectivity("refl_codebr_m5_45", -5, 45, opts.levels(reflM5To45Levels))
}

// reflectivity slices the Code BR table to the colors between low and high
// dBZ. Values below the first level are transparent.
func reflectivity(name string, low, high int, levels []float64) (*Palette, error) {
	colors := opaque(reflCodeBRColors)[low-reflBase : high-reflBase]
	p, err := New(name, colors, levels)
	if err != nil {
		return nil, err
	}
	p.Under = ptr(transparentWhite)
	return p, nil
}

// RvelBlueRed is a diverging radial velocity scale, -40 to +40 in steps of 2.
func RvelBlueRed(opts Options) (*Palette, error) {
	return diverging("rvel_blue_red", opts.levels(rvelLevels), opts)
}

// ZdrMRMS is differential reflectivity, -4 to 20 dB.
func ZdrMRMS(opts Options) (*Palette, error) {
	return New("zdr_mrms", opaque(zdrMRMSColors), opts.levels(zdrMRMSLevels))
}

// KdpMRMS is specific differential phase, -3 to 100 deg/km.
func KdpMRMS(opts Options) (*Palette, error) {
	return New("kdp_mrms", opaque(kdpMRMSColors), opts.levels(kdpMRMSLevels))
}

// RhohvTurbo is correlation coefficient on the Turbo colormap with MRMS-like
// levels from 0.2 to 1. The colors are drawn from Turbo for whatever number
// of bins the levels define, so any override length is accepted.
func RhohvTurbo(opts Options) (*Palette, error) {
	levels := opts.levels(rhohvLevels)
	return New("rhohv_turbo", Resample(turbo(), max(len(levels)-1, 0)), levels)
}
