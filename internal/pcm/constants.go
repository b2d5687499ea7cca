// Package pcm holds the sample-rate, paxel-size, and bit-depth constants
// shared across the rendering core, plus the PCM sample-type
// conversions used at the output boundary.
package pcm

// DefaultSampleRate is the source's 96kHz working rate.
const DefaultSampleRate = 96000

// DefaultPaxelSize is one paxel's sample count — one second at the
// default sample rate.
const DefaultPaxelSize = DefaultSampleRate

// Max24BitInt is the canonical per-partial amplitude ceiling: a signed
// 24-bit value's positive range, stored in a 32-bit int.
const Max24BitInt = 1<<23 - 1

// MinAudioFrequencyHz and MaxAudioFrequencyHz bound the audible working
// range used for validation. Frequencies outside this range are
// accepted by envelope construction; InAudioRange is only an advisory
// check.
const (
	MinAudioFrequencyHz = 20.0
	MaxAudioFrequencyHz = 20000.0
)

// InAudioRange reports whether fHz falls within the audible working
// range. Out-of-range frequencies are not rejected anywhere in this
// module; this is exposed purely for a caller that wants to validate
// before rendering.
func InAudioRange(fHz float64) bool {
	return fHz >= MinAudioFrequencyHz && fHz <= MaxAudioFrequencyHz
}

// SampleType tags the bit-depth/format of a PCM buffer at the external
// boundary.
type SampleType int

const (
	// PaxelFP is FP32 samples in [-1, 1].
	PaxelFP SampleType = iota
	// PaxelInt is the canonical per-partial 24-bit value stored in int32.
	PaxelInt
	// PaxelBundleInt is the full 32-bit range used for mixed sums.
	PaxelBundleInt
	// FullRange is a 64-bit-wide representation for extreme headroom.
	FullRange
	// Scaled derives a 24-bit value from a 32-bit one via ÷4.
	Scaled
)

// String names the sample type.
func (t SampleType) String() string {
	switch t {
	case PaxelFP:
		return "paxelFP"
	case PaxelInt:
		return "paxelInt"
	case PaxelBundleInt:
		return "paxelBundleInt"
	case FullRange:
		return "fullRange"
	case Scaled:
		return "scaled"
	default:
		return "unknown"
	}
}

// BitsPerSample returns the nominal bit depth of the sample type.
func (t SampleType) BitsPerSample() int {
	switch t {
	case PaxelFP:
		return 32
	case PaxelInt, Scaled:
		return 24
	case PaxelBundleInt:
		return 32
	case FullRange:
		return 64
	default:
		return 0
	}
}
