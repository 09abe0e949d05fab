package irradiance

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SaveFieldPNG renders the field as a 16-bit PNG. Row 0 is drawn at the
// bottom so the image matches the receiver's coordinate frame. PNG is
// lossless; the only quantization is the norm's float -> 16-bit mapping.
func SaveFieldPNG(f *Field, path string, norm DisplayNorm) error {
	n := f.N()
	cm := mapForNorm(norm.Mode)

	toU16 := func(v Real) uint16 {
		x := math.Round(clamp01(v) * 65535.0)
		return uint16(x)
	}

	img := image.NewNRGBA64(image.Rect(0, 0, n, n))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for j := 0; j < n; j++ {
		y := n - 1 - j
		rowOff := y * img.Stride
		for i := 0; i < n; i++ {
			r, g, b := cm.Lookup(norm.Map(f.At(j, i)))
			R, G, B := toU16(r), toU16(g), toU16(b)
			a := uint16(0xFFFF)

			p := rowOff + i*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(R >> 8)
			img.Pix[p+1] = uint8(R)
			img.Pix[p+2] = uint8(G >> 8)
			img.Pix[p+3] = uint8(G)
			img.Pix[p+4] = uint8(B >> 8)
			img.Pix[p+5] = uint8(B)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// framePath builds zero-padded sequence names like prefix_007.png, padded
// for the full frame count.
func framePath(prefix string, idx, total int) string {
	width := 1
	if total > 1 {
		width = int(math.Log10(Real(total-1))) + 1
	}
	return fmt.Sprintf("%s_%0*d.png", prefix, width, idx)
}
