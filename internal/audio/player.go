// Package audio plays a rendered mix buffer out through the system's
// default audio output device. This is a synthesis engine, not a
// capture tool, so only an output stream is ever opened.
package audio

import (
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/rainbohz/paxelsynth/internal/pcm"
	"github.com/rainbohz/paxelsynth/internal/xerr"
)

// FramesPerBuffer is the chunk size written to the output stream on
// each Write call.
const FramesPerBuffer = 1024

// Init initializes PortAudio. Must be called once before NewPlayer.
func Init() error {
	return portaudio.Initialize()
}

// Terminate cleans up PortAudio.
func Terminate() error {
	return portaudio.Terminate()
}

// Player writes a mixed PCM32 buffer to the default output device,
// converting to float32 and chunking the write exactly the way the
// teacher's AudioIO.WriteSamples did for its output stream.
type Player struct {
	mu     sync.Mutex
	stream *portaudio.Stream
	buf    []float32
}

// NewPlayer opens the default output stream at sampleRate with one
// channel.
func NewPlayer(sampleRate int) (*Player, error) {
	p := &Player{buf: make([]float32, FramesPerBuffer)}
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), FramesPerBuffer, p.buf)
	if err != nil {
		return nil, xerr.Wrap(xerr.IoFailure, "outputStream", err)
	}
	p.stream = stream
	if err := stream.Start(); err != nil {
		return nil, xerr.Wrap(xerr.IoFailure, "outputStream.Start", err)
	}
	return p, nil
}

// Play converts samples to [-1,1] float32 via pcm.ToFloat32 and writes
// them to the output stream in FramesPerBuffer-sized chunks, padding
// the final chunk with silence.
func (p *Player) Play(samples []int32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	floats := pcm.ToFloat32(samples)
	for i := 0; i < len(floats); i += FramesPerBuffer {
		end := i + FramesPerBuffer
		if end > len(floats) {
			chunk := make([]float32, FramesPerBuffer)
			copy(chunk, floats[i:])
			if err := p.write(chunk); err != nil {
				return err
			}
			break
		}
		if err := p.write(floats[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) write(chunk []float32) error {
	copy(p.buf, chunk)
	if err := p.stream.Write(); err != nil {
		return xerr.Wrap(xerr.IoFailure, "outputStream.Write", err)
	}
	return nil
}

// Close stops and closes the output stream.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil {
		return nil
	}
	if err := p.stream.Stop(); err != nil {
		return xerr.Wrap(xerr.IoFailure, "outputStream.Stop", err)
	}
	if err := p.stream.Close(); err != nil {
		return xerr.Wrap(xerr.IoFailure, "outputStream.Close", err)
	}
	p.stream = nil
	return nil
}
