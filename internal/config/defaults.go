package config

const (
	defaultStateDirFallback = "~/.local/share/assetkit"
	defaultStripperDir      = "public/images/animals-game"
	defaultThreshold        = 240
	defaultVocabInput       = "src/features/picture-match/data/vocab.ts"
	defaultVocabMarker      = "export const VOCAB_LIST: VocabItem[] = ["
	defaultSentinelCategory = "dinosaur"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// DefaultSprites lists the character sprites the stripper rewrites when no
// file list is configured.
func DefaultSprites() []string {
	return []string{
		"rabbit_to_down.png",
		"rabbit_to_left.png",
		"rabbit_to_right.png",
		"rabbit_to_up.png",
		"rabbit_jump.png",
		"rabbit_win.png",
		"dino_down.png",
		"dino_left.png",
		"dino_right.png",
		"dino_up.png",
		"dino_jump.png",
		"dino_win.png",
	}
}

// Default returns a Config populated with repository defaults. The sprite
// directory and vocabulary input stay empty so normalize can tell an explicit
// value from one filled by the environment or the built-in default.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
		Stripper: Stripper{
			Files:     DefaultSprites(),
			Threshold: defaultThreshold,
		},
		Vocab: Vocab{
			Marker:           defaultVocabMarker,
			SentinelCategory: defaultSentinelCategory,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
