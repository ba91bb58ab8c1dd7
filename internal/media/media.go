// Package media adapts media-library records into overlays. Providers
// (uploads, stock search) differ only in provenance: every asset enters
// the timeline through the same placement contract.
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"

	"github.com/reelkit/reelkit/internal/overlay"
)

// thumbnailMaxDim bounds the inline preview embedded in an asset record.
const thumbnailMaxDim = 128

// Asset is the record shape every media collaborator supplies.
type Asset struct {
	Src       string `json:"src"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// OverlayFromAsset builds an unplaced overlay seed from an asset. Only
// media-backed kinds are valid; row and start frame are left for the
// placement engine.
func OverlayFromAsset(a Asset, kind overlay.Kind, durationInFrames int) (overlay.Overlay, error) {
	switch kind {
	case overlay.KindVideo, overlay.KindImage, overlay.KindWebcam, overlay.KindSound:
	default:
		return overlay.Overlay{}, fmt.Errorf("kind %q cannot be built from a media asset", kind)
	}
	if a.Src == "" {
		return overlay.Overlay{}, fmt.Errorf("asset has no src")
	}
	if durationInFrames <= 0 {
		return overlay.Overlay{}, fmt.Errorf("durationInFrames must be positive, got %d", durationInFrames)
	}

	return overlay.Overlay{
		Type:             kind,
		DurationInFrames: durationInFrames,
		Src:              a.Src,
		Width:            float64(a.Width),
		Height:           float64(a.Height),
		Styles:           overlay.Styles{ObjectFit: "cover"},
	}, nil
}

// ScaleThumbnail downscales src to fit inside maxW x maxH, preserving
// aspect ratio. Images already small enough come back unchanged.
func ScaleThumbnail(src image.Image, maxW, maxH int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

// ShareQR encodes a finished render URL as a QR code and wraps it in an
// asset record with an inline downscaled thumbnail, ready to hand to any
// media consumer. The returned bytes are the full-size PNG.
func ShareQR(url string, size int) (Asset, []byte, error) {
	if size <= 0 {
		size = 256
	}
	code, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return Asset{}, nil, fmt.Errorf("encode share qr: %w", err)
	}

	thumb, err := thumbnailPNG(code)
	if err != nil {
		return Asset{}, nil, fmt.Errorf("thumbnail share qr: %w", err)
	}

	return Asset{
		Src:       url,
		Width:     size,
		Height:    size,
		Thumbnail: "data:image/png;base64," + base64.StdEncoding.EncodeToString(thumb),
	}, code, nil
}

// thumbnailPNG re-encodes a PNG downscaled to the inline preview bounds.
// Images already within bounds pass through unchanged.
func thumbnailPNG(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	scaled := ScaleThumbnail(img, thumbnailMaxDim, thumbnailMaxDim)
	if scaled == img {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
