package config

// ScreenOptions holds the character grid settings for the display.
// No terminal library types are exposed here.
type ScreenOptions struct {
	Columns int // cells per row before wrapping
	Rows    int // rows kept before scrolling
}
