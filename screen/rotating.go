package screen

import (
	"log/slog"
	"time"

	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/logging"
)

var logCtx = logging.PackageCtx("screen")

// MovingSprites configures the sprites animated over the screen.
type MovingSprites struct {
	Images    []engine.Image
	Direction SpriteDirection
	Mode      SpriteMode
	// Speed is in pixels per second. Zero means DefaultSpriteSpeed.
	Speed float64
	// Shuffle picks the next BlankSpace sprite at random instead of in order.
	Shuffle bool
}

// StaticSprite is an image pinned with its centre at X, Y.
type StaticSprite struct {
	Image engine.Image
	X, Y  int
}

// Config describes a rotating screen at construction time. Zero colours,
// fonts and delay fall back to the package defaults.
type Config struct {
	Titles        []string
	TitleColor    engine.Color
	TitleFont     engine.Font
	Headlines     [][]string
	HeadlineColor engine.Color
	HeadlineFont  engine.Font
	MidText       [][]string
	MidTextColor  engine.Color
	MidTextFont   engine.Font
	Footer        string
	FooterColor   engine.Color
	FooterFont    engine.Font
	BackColor     engine.Color
	BackImage     engine.Image
	Delay         time.Duration
	Moving        MovingSprites
	Statics       []StaticSprite
}

// Rotating is the shared core of every information screen: titles at the
// top, a footer at the bottom, mid-text above the footer and one headline
// group at a time between them, rotated on a timer.
type Rotating struct {
	host      engine.Host
	canvas    engine.Image
	backColor engine.Color
	backImage engine.Image
	delay     time.Duration

	titles    TextBlock
	headlines TextGroups
	midText   TextGroups
	footer    TextLine

	moving     MovingSprites
	statics    []StaticSprite
	currSprite int

	rotation Rotation
	layout   Layout
	built    bool

	// Hooks used by the screens that embed Rotating.
	layers    []func(engine.Image)
	onRefresh func()
	onDestroy func()
}

// NewRotating creates a rotating screen drawn through host.
func NewRotating(host engine.Host, cfg Config) *Rotating {
	r := &Rotating{
		host:      host,
		backColor: orColor(cfg.BackColor, DefaultColorBackground),
		backImage: cfg.BackImage,
		delay:     DefaultDelay,
		titles: TextBlock{
			Lines: append([]string(nil), cfg.Titles...),
			Color: orColor(cfg.TitleColor, DefaultColorTitle),
			Font:  orFont(cfg.TitleFont, DefaultFontTitle),
			Y:     DefaultTitlesY,
		},
		headlines: TextGroups{
			Groups: cloneGroups(cfg.Headlines),
			Color:  orColor(cfg.HeadlineColor, DefaultColorHeadline),
			Font:   orFont(cfg.HeadlineFont, DefaultFontHeadline),
		},
		midText: TextGroups{
			Groups: cloneGroups(cfg.MidText),
			Color:  orColor(cfg.MidTextColor, DefaultColorMidText),
			Font:   orFont(cfg.MidTextFont, DefaultFontMidText),
		},
		footer: TextLine{
			Text:  cfg.Footer,
			Color: orColor(cfg.FooterColor, DefaultColorFooter),
			Font:  orFont(cfg.FooterFont, DefaultFontFooter),
		},
		moving:     cfg.Moving,
		statics:    append([]StaticSprite(nil), cfg.Statics...),
		currSprite: -1,
		rotation:   NewRotation(),
	}
	r.moving.Images = append([]engine.Image(nil), cfg.Moving.Images...)
	if r.moving.Speed <= 0 {
		r.moving.Speed = DefaultSpriteSpeed
	}
	if cfg.Delay != 0 {
		r.SetDelay(cfg.Delay)
	}
	return r
}

func orColor(c, def engine.Color) engine.Color {
	if c == engine.Transparent {
		return def
	}
	return c
}

func orFont(f, def engine.Font) engine.Font {
	if f.CharHeight == 0 {
		return def
	}
	return f
}

// Build draws the canvas and creates the sprites. Call it when the screen is
// ready to be shown; sprites left from a previous build are destroyed first.
func (r *Rotating) Build() {
	r.DestroySprites()
	r.Rebuild()
	r.Refresh()
	r.addStaticSprites()
	switch r.moving.Mode {
	case BlankSpace:
		r.currSprite = -1
		r.ShowScrollingSprite()
	case Random:
		r.addAllMovingSprites(true)
	case RandomWillUpdate:
		r.addAllMovingSprites(false)
	}
	r.built = true
	slog.DebugContext(logCtx, "screen built",
		slog.Int("headlines", len(r.headlines.Groups)),
		slog.Int("groups", len(r.midText.Groups)),
		slog.String("mode", r.moving.Mode.String()))
}

// Rebuild redraws the canvas. Call it after changing the configuration of a
// screen that is already showing.
func (r *Rotating) Rebuild() {
	r.createBase()
}

// Refresh draws the current headline and schedules the next rotation.
func (r *Rotating) Refresh() {
	idx := r.rotation.Refresh(len(r.headlines.Groups), r.host.Now(), r.delay)
	r.drawHeadline(idx)
	if r.onRefresh != nil {
		r.onRefresh()
	}
}

// Rotate shows the next headline group.
func (r *Rotating) Rotate() {
	r.rotation.Advance()
	r.Refresh()
}

// Update is the per-frame hook. It rotates the headlines when due and keeps
// a BlankSpace sprite crossing the screen.
func (r *Rotating) Update() {
	if !r.built {
		return
	}
	if r.rotation.Due(r.host.Now()) {
		r.Rotate()
	}
	if r.moving.Mode == BlankSpace && len(r.moving.Images) > 0 &&
		len(r.host.Sprites().AllOfKind(engine.KindMoving)) == 0 {
		r.ShowScrollingSprite()
	}
}

// Release drops the canvas and destroys every sprite the screen created.
func (r *Rotating) Release() {
	r.DestroySprites()
	r.canvas = nil
	r.built = false
	r.host.SetBackground(nil)
}

// DestroySprites removes the moving and static sprites, plus anything the
// embedding screen owns.
func (r *Rotating) DestroySprites() {
	world := r.host.Sprites()
	for _, s := range world.AllOfKind(engine.KindMoving) {
		s.Destroy()
	}
	for _, s := range world.AllOfKind(engine.KindStatic) {
		s.Destroy()
	}
	if r.onDestroy != nil {
		r.onDestroy()
	}
}

// ShowScrollingSprite launches the next moving sprite across the lane
// between the headlines and the mid-text, entering from a random side.
func (r *Rotating) ShowScrollingSprite() {
	n := len(r.moving.Images)
	if n == 0 {
		return
	}
	if r.moving.Shuffle {
		r.currSprite = r.host.IntRange(0, n-1)
	} else {
		r.currSprite++
		if r.currSprite < 0 || r.currSprite >= n {
			r.currSprite = 0
		}
	}

	img := r.moving.Images[r.currSprite].Clone()
	s := r.host.Sprites().Create(img, engine.KindMoving)
	s.SetFlag(engine.FlagGhost, true)
	s.SetFlag(engine.FlagAutoDestroy, true)
	s.Y = float64(r.layout.MovingSpriteY)

	width, _ := r.host.ScreenSize()
	half := float64(img.Width()) / 2
	if r.host.Chance(50) {
		s.X = -half
		s.VX = r.moving.Speed
		if r.moving.Direction == PointsLeft {
			img.FlipX()
		}
	} else {
		s.X = float64(width) + half
		s.VX = -r.moving.Speed
		if r.moving.Direction == PointsRight {
			img.FlipX()
		}
	}
}

// addAllMovingSprites scatters every moving sprite with a random heading.
// Without bounce the caller is responsible for sprites leaving the screen.
func (r *Rotating) addAllMovingSprites(bounce bool) {
	width, height := r.host.ScreenSize()
	speed := int(r.moving.Speed)
	for _, img := range r.moving.Images {
		s := r.host.Sprites().Create(img.Clone(), engine.KindMoving)
		s.SetFlag(engine.FlagBounceOnWall, bounce)
		s.SetFlag(engine.FlagGhost, true)
		s.X = float64(r.host.IntRange(0, width))
		s.Y = float64(r.host.IntRange(0, height))
		vx := r.host.IntRange(0, speed)
		s.VX = float64(vx)
		s.VY = float64(speed - vx)
		if r.host.Chance(50) {
			s.VX = -s.VX
		}
		if r.host.Chance(50) {
			s.VY = -s.VY
		}
	}
}

func (r *Rotating) addStaticSprites() {
	for _, st := range r.statics {
		if st.Image == nil {
			continue
		}
		s := r.host.Sprites().Create(st.Image.Clone(), engine.KindStatic)
		s.SetFlag(engine.FlagGhost, true)
		s.X = float64(st.X)
		s.Y = float64(st.Y)
	}
}

func (r *Rotating) layoutInput() LayoutInput {
	width, height := r.host.ScreenSize()
	in := LayoutInput{
		Width:         width,
		Height:        height,
		TitleFont:     r.titles.Font,
		HeadlineFont:  r.headlines.Font,
		MidTextFont:   r.midText.Font,
		FooterFont:    r.footer.Font,
		TitleLines:    len(r.titles.Lines),
		MidTextGroups: min(len(r.midText.Groups), 3),
	}
	if in.MidTextGroups > 0 {
		in.MidTextRows = len(r.midText.Groups[0])
	}
	if r.backImage != nil {
		in.HasBackImage = true
		in.BackImageHeight = r.backImage.Height()
	}
	return in
}

// createBase draws the static parts of the screen onto the canvas and
// installs it as the host background.
func (r *Rotating) createBase() {
	if r.canvas == nil {
		width, height := r.host.ScreenSize()
		r.canvas = r.host.NewImage(width, height)
	}
	c := r.canvas
	c.Fill(r.backColor)
	if r.backImage != nil {
		c.DrawImage(r.backImage, 0, 0)
	}

	r.layout = ComputeLayout(r.layoutInput())
	printLinesCenter(c, r.titles.Lines, r.layout.TitlesY, r.titles.Color, r.titles.Font)

	r.footer.Y = r.layout.FooterY
	c.PrintCenter(r.footer.Text, r.footer.Y, r.footer.Color, r.footer.Font)

	r.midText.Y = r.layout.MidTextY
	for i, col := range r.layout.Columns {
		lines := r.midText.Groups[i]
		if col.Centered {
			printLinesCenter(c, lines, r.midText.Y, r.midText.Color, r.midText.Font)
		} else {
			printLines(c, lines, col.X, r.midText.Y, r.midText.Color, r.midText.Font)
		}
	}
	r.headlines.Y = r.layout.HeadlinesY

	for _, layer := range r.layers {
		layer(c)
	}
	r.host.SetBackground(c)
}

// drawHeadline clears the headline band and prints group idx. The band is
// as tall as the longest group so no line of an earlier group survives.
func (r *Rotating) drawHeadline(idx int) {
	if r.canvas == nil || idx < 0 || idx >= len(r.headlines.Groups) {
		return
	}
	rows := 0
	for _, g := range r.headlines.Groups {
		rows = max(rows, len(g))
	}
	width, _ := r.host.ScreenSize()
	r.canvas.FillRect(0, r.headlines.Y, width,
		rows*(r.headlines.Font.CharHeight+1), r.backColor)
	printLinesCenter(r.canvas, r.headlines.Groups[idx], r.headlines.Y, r.headlines.Color, r.headlines.Font)
}

// AddHeadlines appends a headline group to the rotation.
func (r *Rotating) AddHeadlines(lines []string) {
	r.headlines.Groups = append(r.headlines.Groups, append([]string(nil), lines...))
}

// SetHeadlines replaces every headline group.
func (r *Rotating) SetHeadlines(groups [][]string) {
	r.headlines.Groups = cloneGroups(groups)
}

// Headlines returns the headline groups.
func (r *Rotating) Headlines() [][]string {
	return cloneGroups(r.headlines.Groups)
}

// AddMidText appends a mid-text group. At most three groups are drawn.
func (r *Rotating) AddMidText(lines []string) {
	r.midText.Groups = append(r.midText.Groups, append([]string(nil), lines...))
}

// MidText returns the mid-text groups.
func (r *Rotating) MidText() [][]string {
	return cloneGroups(r.midText.Groups)
}

// AddMovingSprite appends an image to the moving sprite set.
func (r *Rotating) AddMovingSprite(img engine.Image) {
	r.moving.Images = append(r.moving.Images, img)
}

// ClearMovingSprites empties the moving sprite set. Sprites already on
// screen are left alone.
func (r *Rotating) ClearMovingSprites() {
	r.moving.Images = nil
}

// AddStaticSprite pins an image at a fixed position.
func (r *Rotating) AddStaticSprite(s StaticSprite) {
	r.statics = append(r.statics, s)
}

func (r *Rotating) SetMovingMode(m SpriteMode)           { r.moving.Mode = m }
func (r *Rotating) MovingMode() SpriteMode               { return r.moving.Mode }
func (r *Rotating) SetMovingDirection(d SpriteDirection) { r.moving.Direction = d }
func (r *Rotating) SetShuffle(on bool)                   { r.moving.Shuffle = on }

// SetMovingSpeed sets the sprite speed; values <= 0 restore the default.
func (r *Rotating) SetMovingSpeed(speed float64) {
	if speed <= 0 {
		speed = DefaultSpriteSpeed
	}
	r.moving.Speed = speed
}

// NextTime is the clock reading at which the headline will rotate.
func (r *Rotating) NextTime() time.Duration {
	return r.rotation.NextDue()
}

// CurrentHeadline is the index of the headline group showing.
func (r *Rotating) CurrentHeadline() int {
	return r.rotation.Current()
}

// Delay is the rotation interval.
func (r *Rotating) Delay() time.Duration {
	return r.delay
}

// SetDelay sets the rotation interval. Negative values restore the default.
func (r *Rotating) SetDelay(d time.Duration) {
	if d < 0 {
		d = DefaultDelay
	}
	r.delay = d
}

// SetBackImage copies img to the top left of the canvas on the next
// rebuild and moves the headlines beneath it. nil removes it.
func (r *Rotating) SetBackImage(img engine.Image) {
	r.backImage = img
}

func (r *Rotating) BackImage() engine.Image { return r.backImage }

// SetTitles replaces the title lines.
func (r *Rotating) SetTitles(lines []string) {
	r.titles.Lines = append([]string(nil), lines...)
}

func (r *Rotating) Titles() []string { return append([]string(nil), r.titles.Lines...) }

// SetCanvas makes the screen draw onto img. Screens shown one after
// another may share a canvas this way.
func (r *Rotating) SetCanvas(img engine.Image) {
	r.canvas = img
}

// Canvas is the render target, or nil before the first rebuild.
func (r *Rotating) Canvas() engine.Image {
	return r.canvas
}

func (r *Rotating) SetFooter(text string) { r.footer.Text = text }
func (r *Rotating) Footer() string        { return r.footer.Text }

func (r *Rotating) SetBackColor(c engine.Color) { r.backColor = c }
func (r *Rotating) BackColor() engine.Color     { return r.backColor }

// Layout is the placement computed by the last rebuild.
func (r *Rotating) Layout() Layout {
	return r.layout
}

// Built reports whether Build has run since the last Release.
func (r *Rotating) Built() bool {
	return r.built
}
