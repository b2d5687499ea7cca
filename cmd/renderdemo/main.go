// Command renderdemo builds a small additive-synthesis partial group in
// Go, serves it over the render-job HTTP/WebSocket API, and optionally
// plays the mix through the default audio device.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rainbohz/paxelsynth/internal/audio"
	"github.com/rainbohz/paxelsynth/internal/envelope"
	"github.com/rainbohz/paxelsynth/internal/label"
	"github.com/rainbohz/paxelsynth/internal/pcm"
	"github.com/rainbohz/paxelsynth/internal/server"
	"github.com/rainbohz/paxelsynth/internal/synth"
)

func main() {
	addr := flag.String("addr", "0.0.0.0:8080", "Server address")
	play := flag.Bool("play", false, "Render the demo group immediately and play it instead of serving")
	listDevices := flag.Bool("list-devices", false, "List output audio devices and exit")
	flag.Parse()

	if *listDevices {
		if err := audio.Init(); err != nil {
			log.Fatalf("init portaudio: %v", err)
		}
		defer audio.Terminate()
		devices, err := audio.ListOutputDevices()
		if err != nil {
			log.Fatalf("list devices: %v", err)
		}
		for _, d := range devices {
			marker := ""
			if d.IsDefault {
				marker = " [default]"
			}
			fmt.Printf("%s (out:%d rate:%.0f)%s\n", d.Name, d.MaxOutputChannels, d.DefaultSampleRate, marker)
		}
		return
	}

	group, err := demoChord()
	if err != nil {
		log.Fatalf("building demo partial group: %v", err)
	}

	if *play {
		playDemo(group)
		return
	}

	jobs := server.NewJobManager(pcm.DefaultSampleRate, pcm.DefaultPaxelSize)
	jobs.Register("demo-chord", group)

	handlers := server.NewHandlers(jobs, pcm.DefaultSampleRate)
	srv := server.NewServer(*addr, handlers)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		os.Exit(0)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// demoChord builds a three-partial major triad, each partial a
// constant-amplitude, constant-frequency tone held for two seconds.
func demoChord() (synth.PartialGroup, error) {
	notes := []float64{261.63, 329.63, 392.00} // C4, E4, G4
	partials := make([]synth.Partial, 0, len(notes))

	for _, hz := range notes {
		amp, err := envelope.NewAmplitudeEnvelope([]float64{0.3}, nil, nil)
		if err != nil {
			return synth.PartialGroup{}, err
		}
		freq, err := envelope.NewFrequencyEnvelope([]float64{hz}, nil, nil)
		if err != nil {
			return synth.PartialGroup{}, err
		}
		start, err := envelope.NewControlledPhase(0, 0, pcm.DefaultSampleRate)
		if err != nil {
			return synth.PartialGroup{}, err
		}
		end, err := envelope.NewNaturalPhase(2.0, pcm.DefaultSampleRate)
		if err != nil {
			return synth.PartialGroup{}, err
		}
		phases, err := envelope.NewPhaseCoordinates([]envelope.PhaseCoordinate{start, end})
		if err != nil {
			return synth.PartialGroup{}, err
		}
		pe := envelope.NewPartialEnvelopes(amp, freq, phases, label.NewSet(fmt.Sprintf("%.2fHz", hz)))
		partials = append(partials, synth.NewPartial(pe, 0, nil))
	}

	return synth.NewPartialGroup(partials, label.NewSet("demo-chord"), true), nil
}

func playDemo(group synth.PartialGroup) {
	mix, err := synth.RenderGroup(group, pcm.DefaultSampleRate, pcm.DefaultPaxelSize)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if err := audio.Init(); err != nil {
		log.Fatalf("init portaudio: %v", err)
	}
	defer audio.Terminate()

	player, err := audio.NewPlayer(pcm.DefaultSampleRate)
	if err != nil {
		log.Fatalf("open player: %v", err)
	}
	defer player.Close()

	if err := player.Play(mix); err != nil {
		log.Fatalf("play: %v", err)
	}
}
