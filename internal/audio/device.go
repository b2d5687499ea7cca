package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// OutputDeviceInfo describes an output-capable audio device.
type OutputDeviceInfo struct {
	Name              string
	MaxOutputChannels int
	DefaultSampleRate float64
	IsDefault         bool
}

// ListOutputDevices returns every device with at least one output
// channel, flagging the system default.
func ListOutputDevices() ([]OutputDeviceInfo, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defaultOut, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return nil, fmt.Errorf("default output device: %w", err)
	}

	var result []OutputDeviceInfo
	for _, d := range devices {
		if d.MaxOutputChannels == 0 {
			continue
		}
		result = append(result, OutputDeviceInfo{
			Name:              d.Name,
			MaxOutputChannels: d.MaxOutputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
			IsDefault:         d.Name == defaultOut.Name,
		})
	}
	return result, nil
}
