// This file is part of Gopher6526.
//
// Gopher6526 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6526 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6526.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter records the levels of the CIA output pins to disk as a
// multi-channel WAV file, one sample per bus cycle. The file can be examined
// with any audio editor, which makes for a crude but effective logic
// analyser.
//
// Samples are buffered in memory in their entirety and written to disk by
// End(). It is therefore only suitable for short transcripts.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/ports"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/logger"
)

// Channel of the WAV file.
type Channel int

// List of channels in the order they appear in each frame.
const (
	IRQ Channel = iota
	SP
	CNT
	PC
	PB6
	PB7
	NumChannels
)

var channelNames = []string{"IRQ", "SP", "CNT", "PC", "PB6", "PB7"}

func (ch Channel) String() string {
	if ch < 0 || ch >= NumChannels {
		return "unknown"
	}
	return channelNames[ch]
}

// SampleRate is one sample per cycle of the nominal bus clock.
const SampleRate = int(clocks.Nominal * 1000000)

// BitDepth of each sample.
const BitDepth = 16

// Sample values for the two pin levels.
const (
	High = 0x3fff
	Low  = -0x4000
)

// WavWriter implements the transcript.Observer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, NumChannels*1024),
	}, nil
}

// Observe implements the transcript.Observer interface.
func (aw *WavWriter) Observe(c *cia.CIA) {
	var frame [NumChannels]bool
	frame[IRQ], _ = c.Pin(cia.IRQ)
	frame[SP], _ = c.Pin(cia.SP)
	frame[CNT], _ = c.Pin(cia.CNT)
	frame[PC], _ = c.Pin(cia.PC)

	pb, _ := c.Port(cia.PB)
	frame[PB6] = pb&ports.PB6 == ports.PB6
	frame[PB7] = pb&ports.PB7 == ports.PB7

	for _, l := range frame {
		if l {
			aw.buffer = append(aw.buffer, High)
		} else {
			aw.buffer = append(aw.buffer, Low)
		}
	}
}

// Frames returns the number of frames (bus cycles) recorded.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer) / int(NumChannels)
}

// End writes the recorded samples to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, SampleRate, BitDepth, int(NumChannels), 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(NumChannels),
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d cycles to %s", aw.Frames(), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
