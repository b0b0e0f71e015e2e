package style

// Spatial constants in logical pixels. The shell renders at a fixed
// 640x480 logical resolution, so these never rescale.
const (
	ScreenWidth  = 640
	ScreenHeight = 480

	HeaderHeight  = 40
	FooterHeight  = 26
	ListRowHeight = 24
	ListTopY      = HeaderHeight + 8
	ListRows      = 16 // visible rows per page

	Padding      = 10
	SmallSpacing = 4

	// Screenshot pane on the right side of file lists.
	ThumbnailMaxWidth  = 224
	ThumbnailMaxHeight = 168
)
