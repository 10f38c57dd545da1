package ebitenhost

import (
	"time"

	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/infoscreens/style"
)

// Notification displays temporary messages on screen
type Notification struct {
	message   string
	startTime time.Time
	duration  time.Duration
	textScale float64
	panel     *image.NineSlice
	now       func() time.Time
}

// NewNotification creates a notification drawn with glyphs scaled by textScale.
func NewNotification(textScale float64) *Notification {
	if textScale < 1 {
		textScale = 1
	}
	return &Notification{
		textScale: textScale,
		now:       time.Now,
	}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.message = message
	n.startTime = n.now()
	n.duration = duration
}

// Notify displays message for the default duration.
func (n *Notification) Notify(message string) {
	n.Show(message, style.NotificationDuration)
}

// Message is the text last shown.
func (n *Notification) Message() string {
	return n.message
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	if n.message == "" {
		return false
	}
	return n.now().Sub(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.message = ""
}

// Draw renders the notification at the bottom right of screen.
func (n *Notification) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}

	bounds := screen.Bounds()
	face := FontFace()
	textWidth, textHeight := text.Measure(n.message, face, 0)
	textWidth *= n.textScale
	textHeight *= n.textScale

	padding := style.NotificationPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2
	bgX := bounds.Dx() - bgWidth - style.NotificationMargin
	bgY := bounds.Dy() - bgHeight - style.NotificationMargin

	if n.panel == nil {
		n.panel = panelImage(style.NotificationBackground)
	}
	n.panel.Draw(screen, bgWidth, bgHeight, func(opts *ebiten.DrawImageOptions) {
		opts.GeoM.Translate(float64(bgX), float64(bgY))
	})

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Scale(n.textScale, n.textScale)
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.NotificationText)
	text.Draw(screen, n.message, face, textOpts)
}
