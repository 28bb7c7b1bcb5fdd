package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/prim"
)

// ErrPassOutOfRange is returned by Playback when the recording applies an
// effect pass the target device does not have.
var ErrPassOutOfRange = errors.New("recording: effect pass out of range")

// Recording is an immutable list of recorded device calls.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Stats summarizes the recorded draw calls. Flush reasons are not
// recorded and stay zero.
func (r *Recording) Stats() prim.Stats {
	var s prim.Stats
	for _, c := range r.commands {
		if c.Type != CmdDraw {
			continue
		}
		s.DrawCalls++
		s.Vertices += len(c.Vertices)
		s.Primitives += prim.PrimitiveCount(c.Topology, len(c.Vertices))
	}
	return s
}

// Playback replays the recording on device in recorded order. It stops at
// the first error.
func (r *Recording) Playback(device prim.Device) error {
	var passes []prim.EffectPass
	for i, cmd := range r.commands {
		switch cmd.Type {
		case CmdSetTransforms:
			device.SetTransforms(cmd.Transforms)
		case CmdApply:
			if passes == nil {
				passes = device.Effect().Passes()
			}
			if cmd.Pass < 0 || cmd.Pass >= len(passes) {
				return fmt.Errorf("recording: command %d: pass %d of %d: %w", i, cmd.Pass, len(passes), ErrPassOutOfRange)
			}
			if err := passes[cmd.Pass].Apply(); err != nil {
				return fmt.Errorf("recording: command %d: %w", i, err)
			}
		case CmdDraw:
			if err := device.DrawPrimitives(cmd.Topology, cmd.Vertices); err != nil {
				return fmt.Errorf("recording: command %d: %w", i, err)
			}
		default:
			return fmt.Errorf("recording: command %d: unknown type %d", i, cmd.Type)
		}
	}
	return nil
}
