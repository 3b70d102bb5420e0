package config

// PlayConfig is the root config for play.json
type PlayConfig struct {
	Display DisplayConfig         `json:"display"`
	Ball    BallConfig            `json:"ball"`
	Bounds  BoundsConfig          `json:"bounds"`
	Modes   map[string]ModeConfig `json:"modes"`
	Audio   AudioConfig           `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	TPS          int    `json:"tps"`
	Resizable    bool   `json:"resizable"`
	Title        string `json:"title"`
}

// BallConfig holds the ball's starting state.
// Speeds are world units per tick.
type BallConfig struct {
	Radius float64 `json:"radius"`
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	SpeedX float64 `json:"speedX"`
	SpeedY float64 `json:"speedY"`
}

type BoundsConfig struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ModeConfig describes one rule set
type ModeConfig struct {
	RoundSeconds int `json:"roundSeconds"`
	// TargetScore ends the game when either side reaches it.
	// 0 means a single round decides the game.
	TargetScore  int     `json:"targetScore"`
	Restart      bool    `json:"restart"`      // Start a new round automatically after game over
	RestartDelay float64 `json:"restartDelay"` // Seconds the result stays up before restart
	OutlinedBall bool    `json:"outlinedBall"`
	Banner       string  `json:"banner"`
}

type AudioConfig struct {
	Enabled     bool    `json:"enabled"`
	SampleRate  int     `json:"sampleRate"`
	DurationMs  int     `json:"durationMs"`
	Volume      float64 `json:"volume"`
	HitFreq     float64 `json:"hitFreq"`
	TimeoutFreq float64 `json:"timeoutFreq"`
	WinFreq     float64 `json:"winFreq"`
	LoseFreq    float64 `json:"loseFreq"`
}

// TerminalConfig is the root config for terminal.toml
type TerminalConfig struct {
	TickMs     int            `toml:"tickMs"`
	CellAspect float64        `toml:"cellAspect"` // Cell height / cell width
	Glyphs     GlyphConfig    `toml:"glyphs"`
	Colors     TerminalColors `toml:"colors"`
}

type GlyphConfig struct {
	Ball       string `toml:"ball"`
	Outline    string `toml:"outline"`
	Horizontal string `toml:"horizontal"`
	Vertical   string `toml:"vertical"`
	Corner     string `toml:"corner"`
}

// TerminalColors are tcell color names or #rrggbb values
type TerminalColors struct {
	Background string `toml:"background"`
	Wall       string `toml:"wall"`
	Ball       string `toml:"ball"`
	Outline    string `toml:"outline"`
	Text       string `toml:"text"`
}
