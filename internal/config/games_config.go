package config

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines physics parameters for Pong.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor"`
}

// PongPaddles defines paddle parameters for Pong.
type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"`
}

// PongGameplay defines gameplay parameters for Pong.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"`
}

// PongCPU defines CPU opponent parameters for Pong.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines physics parameters for Breakout.
// Speeds are fixed-point values scaled by 1000 (e.g., 300 = 0.3 cells per tick).
type BreakoutPhysics struct {
	BallSpeed    int `yaml:"ball_speed"`
	PaddleSpeed  int `yaml:"paddle_speed"`
	MaxBallSpeed int `yaml:"max_ball_speed"`
}

// BreakoutPaddle defines paddle parameters for Breakout.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
}

// BreakoutGameplay defines gameplay parameters for Breakout.
type BreakoutGameplay struct {
	Lives         int `yaml:"lives"`
	BrickPoints   int `yaml:"brick_points"`
	SpeedUpEveryN int `yaml:"speed_up_every_n"`
	SpeedUpAmount int `yaml:"speed_up_amount"`
}
