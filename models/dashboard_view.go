package models

// Frame geometry used by the viewer page. The frame is fixed-height and
// non-scrolling; increase FrameHeight if dashboards get clipped.
const (
	FrameHeight = 950
)

// DashboardView is the render-ready state of one assigned dashboard: the
// normalized frame source plus fixed frame parameters.
type DashboardView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// FrameSrc is the embed URL after iframe extraction and provider
	// display parameters have been applied.
	FrameSrc string `json:"frame_src"`

	// FrameHeight is the fixed pixel height of the embedded frame.
	FrameHeight int `json:"frame_height"`

	// Scrolling is always false: the frame does not scroll.
	Scrolling bool `json:"scrolling"`
}
