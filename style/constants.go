package style

import "time"

// Navigation repeat timing
const (
	NavInitialDelay  = 400 * time.Millisecond // Delay before repeat starts
	NavStartInterval = 200 * time.Millisecond // Initial repeat interval
	NavMinInterval   = 25 * time.Millisecond  // Fastest repeat interval
	NavAcceleration  = 20 * time.Millisecond  // Interval decrease per repeat
)

// Font face metrics of basicfont.Face7x13
const (
	FaceAdvance = 7
	FaceHeight  = 13
)

// Window
const (
	DefaultScale = 4
	MaxScale     = 10
)

// Notification layout
const (
	NotificationPadding  = 6
	NotificationMargin   = 8
	NotificationDuration = 3 * time.Second
)
