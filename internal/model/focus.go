package model

// FocusedImage is an image shown in the zoom overlay
type FocusedImage struct {
	Source  string
	Caption string
}

// OverlayTarget names the parts of the zoom overlay a tap can land on
type OverlayTarget int

const (
	TargetBackdrop OverlayTarget = iota
	TargetCloseButton
	TargetImage
)

// String returns a readable name for log output
func (t OverlayTarget) String() string {
	switch t {
	case TargetBackdrop:
		return "backdrop"
	case TargetCloseButton:
		return "close"
	case TargetImage:
		return "image"
	default:
		return "unknown"
	}
}

// ImageFocus is the single application-wide zoom slot.
// The zero value has nothing focused.
type ImageFocus struct {
	current *FocusedImage
}

// Open focuses img, replacing any image already focused
func (f *ImageFocus) Open(img FocusedImage) {
	f.current = &img
}

// Close clears the slot
func (f *ImageFocus) Close() {
	f.current = nil
}

// Current returns the focused image, if any
func (f *ImageFocus) Current() (FocusedImage, bool) {
	if f.current == nil {
		return FocusedImage{}, false
	}
	return *f.current, true
}

// IsOpen reports whether an image is focused
func (f *ImageFocus) IsOpen() bool {
	return f.current != nil
}

// Tap applies a tap on the overlay. Backdrop and close control dismiss the
// image; taps on the image itself are swallowed. Returns true if the slot
// was cleared.
func (f *ImageFocus) Tap(target OverlayTarget) bool {
	if f.current == nil {
		return false
	}
	switch target {
	case TargetBackdrop, TargetCloseButton:
		f.current = nil
		return true
	default:
		return false
	}
}
