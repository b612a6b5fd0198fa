package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

const (
	effectAttack  = 5 * time.Millisecond
	effectRelease = 40 * time.Millisecond
)

// CreateSpawnSound is a rising chirp for a head entering the arena
func CreateSpawnSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(parameter.SpawnSoundFreqLow, parameter.SpawnSoundFreqHigh, parameter.SpawnSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.SpawnSoundDuration, effectAttack, effectRelease, rate)
	return newVolume(shaped, volume)
}

// CreateDeathSound is a harsh low buzz for a removed head
func CreateDeathSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(parameter.DeathSoundFreq, parameter.DeathSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DeathSoundDuration, effectAttack, 2*effectRelease, rate)
	return newVolume(shaped, volume)
}

// CreateScoreSound is a short bell with an octave overtone
func CreateScoreSound(rate beep.SampleRate, volume float64) beep.Streamer {
	var tone beep.Streamer
	if sine, err := generators.SineTone(rate, parameter.ScoreSoundFreq); err == nil {
		tone = beep.Take(rate.N(parameter.ScoreSoundDuration), sine)
	} else {
		// Frequency above Nyquist for this rate
		tone = NewOscillator(parameter.ScoreSoundFreq, parameter.ScoreSoundDuration, WaveSine, rate)
	}
	fund := NewEnvelope(tone, parameter.ScoreSoundDuration, effectAttack, parameter.ScoreSoundDuration/2, rate)
	over := NewEnvelope(
		NewOscillator(2*parameter.ScoreSoundFreq, parameter.ScoreSoundDuration, WaveSine, rate),
		parameter.ScoreSoundDuration, effectAttack, parameter.ScoreSoundDuration/3, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, volume)
}

// CreateRoundOverSound is a long square tone falling an octave
func CreateRoundOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(parameter.RoundOverSoundFreq, parameter.RoundOverSoundFreq/2, parameter.RoundOverSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.RoundOverSoundDuration, effectAttack, parameter.RoundOverSoundDuration/2, rate)
	return newVolume(shaped, volume)
}

// CreateSound builds the streamer for a sound type, nil for unknown types
func CreateSound(st core.SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch st {
	case core.SoundSpawn:
		return CreateSpawnSound(rate, volume)
	case core.SoundDeath:
		return CreateDeathSound(rate, volume)
	case core.SoundScore:
		return CreateScoreSound(rate, volume)
	case core.SoundRoundOver:
		return CreateRoundOverSound(rate, volume)
	}
	return nil
}
