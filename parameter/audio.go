package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same type
	MinSoundGap = 50 * time.Millisecond
)

// Spawn Sound: rising chirp
const (
	SpawnSoundDuration = 120 * time.Millisecond
	SpawnSoundFreqLow  = 440.0
	SpawnSoundFreqHigh = 880.0
)

// Death Sound: low buzz
const (
	DeathSoundDuration = 250 * time.Millisecond
	DeathSoundFreq     = 110.0
)

// Score Sound: short bell
const (
	ScoreSoundDuration = 150 * time.Millisecond
	ScoreSoundFreq     = 1320.0
)

// Round Over Sound: long tone
const (
	RoundOverSoundDuration = 600 * time.Millisecond
	RoundOverSoundFreq     = 660.0
)

// SoundVolume scales every effect, 0..1
const SoundVolume = 0.2
