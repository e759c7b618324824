package colormap

// Temperature, degF, one color per degree from -60 to +120. Each row is ten
// degrees starting at the commented value.
var temperatureColors = [][3]uint8{
	{255, 255, 255}, {255, 255, 240}, {255, 255, 225}, {255, 255, 210}, {255, 255, 195}, {255, 255, 180}, {255, 255, 165}, {255, 255, 150}, {255, 255, 135}, {255, 255, 121}, // -60F
	{214, 246, 135}, {200, 243, 137}, {186, 241, 139}, {172, 238, 140}, {158, 236, 142}, {145, 234, 144}, {131, 231, 146}, {117, 229, 147}, {103, 226, 149}, {89, 224, 151}, // -50F
	{10, 226, 177}, {21, 229, 181}, {31, 231, 185}, {42, 234, 189}, {52, 236, 193}, {63, 238, 197}, {73, 241, 201}, {83, 243, 205}, {94, 246, 209}, {104, 248, 213}, // -40F
	{85, 232, 218}, {82, 223, 211}, {80, 214, 204}, {77, 205, 198}, {75, 196, 191}, {74, 187, 185}, {73, 178, 178}, {72, 169, 172}, {70, 160, 165}, {69, 151, 158}, // -30F
	{70, 140, 162}, {80, 138, 165}, {91, 132, 168}, {107, 123, 172}, {123, 116, 175}, {139, 114, 178}, {155, 108, 182}, {171, 98, 185}, {177, 87, 188}, {187, 70, 192}, // -20F
	{195, 0, 185}, {188, 0, 179}, {181, 0, 172}, {174, 0, 166}, {167, 0, 160}, {160, 0, 153}, {153, 0, 147}, {146, 0, 140}, {138, 0, 134}, {131, 0, 128}, // -10F
	{116, 1, 131}, {119, 3, 140}, {122, 4, 150}, {125, 6, 159}, {128, 7, 168}, {131, 9, 177}, {134, 10, 186}, {137, 12, 196}, {140, 13, 205}, {143, 15, 214}, // 0F
	{131, 15, 230}, {117, 14, 230}, {102, 12, 231}, {88, 10, 231}, {73, 8, 232}, {58, 7, 232}, {44, 5, 233}, {29, 3, 233}, {15, 2, 234}, {0, 0, 234}, // 10F
	{0, 20, 246}, {0, 40, 248}, {0, 60, 250}, {0, 75, 251}, {0, 90, 252}, {0, 105, 253}, {0, 117, 254}, {0, 129, 255}, {0, 140, 255}, {0, 150, 255}, // 20F
	{0, 195, 255}, {0, 220, 255}, {0, 200, 195}, {0, 190, 165}, {0, 184, 134}, {0, 170, 119}, {0, 155, 103}, {0, 142, 89}, {0, 132, 76}, {0, 122, 63}, // 30F
	{7, 117, 0}, {11, 120, 0}, {15, 123, 0}, {23, 128, 0}, {31, 133, 0}, {39, 137, 0}, {46, 142, 0}, {54, 146, 0}, {62, 151, 0}, {70, 155, 0}, // 40F
	{77, 181, 0}, {86, 188, 0}, {94, 196, 0}, {103, 203, 0}, {111, 211, 0}, {120, 218, 0}, {128, 226, 0}, {137, 233, 0}, {145, 241, 0}, {154, 248, 0}, // 50F
	{195, 255, 0}, {201, 255, 8}, {207, 255, 17}, {213, 255, 25}, {219, 255, 34}, {225, 255, 42}, {231, 255, 51}, {237, 255, 59}, {244, 255, 67}, {250, 255, 76}, // 60F
	{255, 219, 84}, {255, 210, 76}, {255, 201, 67}, {255, 192, 59}, {255, 182, 51}, {255, 173, 42}, {255, 164, 34}, {255, 155, 25}, {255, 145, 17}, {255, 136, 8}, // 70F
	{255, 107, 0}, {251, 97, 0}, {245, 86, 0}, {240, 75, 0}, {235, 64, 0}, {230, 54, 0}, {225, 43, 0}, {220, 32, 0}, {214, 21, 0}, {209, 11, 0}, // 80F
	{205, 0, 136}, {210, 0, 148}, {215, 0, 159}, {220, 0, 171}, {225, 0, 182}, {230, 0, 194}, {235, 0, 205}, {240, 0, 217}, {246, 0, 228}, {251, 0, 240}, // 90F
	{223, 0, 233}, {219, 0, 231}, {211, 0, 229}, {202, 0, 225}, {192, 0, 222}, {183, 0, 219}, {174, 0, 216}, {165, 0, 212}, {155, 0, 209}, {146, 0, 206}, // 100F
	{157, 85, 211}, {168, 104, 216}, {179, 123, 221}, {190, 142, 226}, {201, 161, 231}, {212, 180, 236}, {223, 199, 241}, {234, 218, 246}, {245, 237, 251}, {255, 255, 255}, // 110F
}

// Shared by the temperature advection and radial velocity scales: 20 steps
// each side of zero with a white band at the center.
var divergingColors = [][3]uint8{
	{59, 0, 86}, {64, 0, 101}, {68, 0, 116}, {72, 0, 131}, {76, 0, 146},
	{77, 2, 162}, {69, 10, 182}, {60, 18, 203}, {51, 26, 223}, {42, 34, 243},
	{43, 50, 254}, {54, 73, 254}, {65, 97, 255}, {76, 121, 255}, {87, 145, 255},
	{116, 167, 255}, {151, 189, 255}, {185, 211, 255}, {220, 233, 255}, {255, 255, 255},
	{255, 255, 255}, {255, 233, 220}, {255, 211, 185}, {255, 189, 151}, {255, 167, 116},
	{255, 145, 87}, {255, 121, 76}, {255, 97, 65}, {254, 73, 54}, {254, 50, 43},
	{243, 34, 42}, {223, 26, 51}, {203, 18, 60}, {182, 10, 69}, {162, 2, 77},
	{146, 0, 76}, {131, 0, 72}, {116, 0, 68}, {101, 0, 64}, {86, 0, 59},
}

// Low end of the precipitable water scales, dark to light brown.
var pwatBrownEvery4mm = [][3]uint8{
	{60, 30, 0}, {82, 51, 20}, {105, 71, 40}, {127, 92, 60}, {149, 115, 83},
	{172, 137, 106}, {194, 160, 129}, {215, 182, 151}, {235, 204, 173}, {255, 226, 195},
}

var pwatBrownEvery2mm = [][3]uint8{
	{60, 30, 0}, {71, 40, 10}, {81, 51, 21}, {91, 61, 31}, {101, 71, 41},
	{112, 81, 51}, {122, 92, 62}, {132, 102, 72}, {142, 112, 82}, {153, 122, 93},
	{163, 133, 103}, {173, 143, 113}, {183, 153, 123}, {194, 163, 134}, {204, 174, 144},
	{214, 184, 154}, {224, 194, 165}, {235, 204, 175}, {245, 215, 185}, {255, 225, 195},
}

var (
	temperatureLevels  = arange(-60, 121, 1)
	blueRedLevels      = arange(-5, 5.1, 0.25)
	pwatEvery4mmLevels = arange(0, 73, 4)
	pwat72mmLevels     = arange(0, 73, 2)
)

// Temperature is a one-degree Fahrenheit scale from -60 to +120.
func Temperature(opts Options) (*Palette, error) {
	return New("temperature_m60f_120f", opaque(temperatureColors), opts.levels(temperatureLevels))
}

// BlueRed is a diverging scale for temperature advection, frontogenesis and
// similar signed fields, 20 bins each side of zero. The default levels span
// -5 to +5 in steps of 0.25; -20 to +20 in steps of 1 works as well.
func BlueRed(opts Options) (*Palette, error) {
	return diverging("blue_red", opts.levels(blueRedLevels), opts)
}

func diverging(name string, levels []float64, opts Options) (*Palette, error) {
	colors := opaque(divergingColors)
	if opts.KeepWhite {
		return New(name, colors, levels)
	}
	p, err := New(name, TransparentWhite(colors), levels)
	if err != nil {
		return nil, err
	}
	p.Alpha = true
	return p, nil
}

// PwatEvery4mm is a precipitable water scale from 0 to 72 mm in 4 mm bins:
// browns for dry air running into reversed viridis for moist air.
func PwatEvery4mm(opts Options) (*Palette, error) {
	return pwat("pwat_72mm_every4mm", pwatBrownEvery4mm, 270, 10, opts.levels(pwatEvery4mmLevels))
}

// Pwat72mm is PwatEvery4mm with 2 mm bins.
func Pwat72mm(opts Options) (*Palette, error) {
	return pwat("pwat_72mm", pwatBrownEvery2mm, 260, 5, opts.levels(pwat72mmLevels))
}

// pwat concatenates the brown ramp with every stride-th entry of the first
// n samples of reversed viridis, then spreads that list over the bins.
func pwat(name string, brown [][3]uint8, n, stride int, levels []float64) (*Palette, error) {
	colors := append(opaque(brown), sampleReversed(viridis(), n, stride)...)
	return New(name, Resample(colors, len(levels)-1), levels)
}
