// Package screen implements rotating information screens: splash screens
// that show titles and instructions, option screens where a cursor picks
// settings, and collections of option screens switched like tabs.
package screen

// Screen is the capability set shared by Splash, Options and Collection.
type Screen interface {
	Build()
	Rebuild()
	Refresh()
	Rotate()
	// Update is called once per frame.
	Update()
	HandleInput(b Button)
	Release()
	// Finished reports that the screen is ready to be dismissed.
	Finished() bool
}

var (
	_ Screen = (*Splash)(nil)
	_ Screen = (*Options)(nil)
	_ Screen = (*Collection)(nil)
)
