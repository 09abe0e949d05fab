package irradiance

// Small anchor-interpolated colormaps. Each table holds equally spaced RGB
// anchors in [0,1]³; Lookup lerps between the surrounding pair.
type colormap [][3]Real

var (
	// diverging blue-white-red, pairs with the twoslope norm
	coolwarm = colormap{
		{59 / 255.0, 76 / 255.0, 192 / 255.0},
		{124 / 255.0, 159 / 255.0, 249 / 255.0},
		{221 / 255.0, 221 / 255.0, 221 / 255.0},
		{237 / 255.0, 132 / 255.0, 103 / 255.0},
		{180 / 255.0, 4 / 255.0, 38 / 255.0},
	}
	hot = colormap{
		{0, 0, 0},
		{255 / 255.0, 0, 0},
		{255 / 255.0, 255 / 255.0, 0},
		{255 / 255.0, 255 / 255.0, 255 / 255.0},
	}
	viridis = colormap{
		{68 / 255.0, 1 / 255.0, 84 / 255.0},
		{59 / 255.0, 82 / 255.0, 139 / 255.0},
		{33 / 255.0, 145 / 255.0, 140 / 255.0},
		{94 / 255.0, 201 / 255.0, 98 / 255.0},
		{253 / 255.0, 231 / 255.0, 37 / 255.0},
	}
	plasma = colormap{
		{13 / 255.0, 8 / 255.0, 135 / 255.0},
		{126 / 255.0, 3 / 255.0, 168 / 255.0},
		{204 / 255.0, 71 / 255.0, 120 / 255.0},
		{248 / 255.0, 149 / 255.0, 64 / 255.0},
		{240 / 255.0, 249 / 255.0, 33 / 255.0},
	}
)

// mapForNorm pairs each normalization mode with its conventional colormap.
func mapForNorm(mode NormMode) colormap {
	switch mode {
	case NormLog:
		return viridis
	case NormPower:
		return plasma
	case NormTwoSlope:
		return coolwarm
	default:
		return hot
	}
}

// Lookup returns the interpolated color for t in [0,1].
func (c colormap) Lookup(t Real) (r, g, b Real) {
	t = clamp01(t)
	f := t * Real(len(c)-1)
	i := int(f)
	if i >= len(c)-1 {
		last := c[len(c)-1]
		return last[0], last[1], last[2]
	}
	u := f - Real(i)
	a, d := c[i], c[i+1]
	return a[0] + (d[0]-a[0])*u, a[1] + (d[1]-a[1])*u, a[2] + (d[2]-a[2])*u
}
