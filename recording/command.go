package recording

import (
	"fmt"

	"github.com/gogpu/prim"
)

// CommandType identifies the device call a Command captured.
type CommandType uint8

const (
	CmdSetTransforms CommandType = iota // Device.SetTransforms
	CmdApply                            // EffectPass.Apply
	CmdDraw                             // Device.DrawPrimitives
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetTransforms: "SetTransforms",
	CmdApply:         "Apply",
	CmdDraw:          "Draw",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded device call. Only the fields of its Type are
// set.
type Command struct {
	Type CommandType `msgpack:"t"`

	// CmdSetTransforms
	Transforms prim.Transforms `msgpack:"x,omitempty"`

	// CmdApply: index into the effect's passes.
	Pass int `msgpack:"p,omitempty"`

	// CmdDraw
	Topology prim.Topology `msgpack:"g,omitempty"`
	Vertices []prim.Vertex `msgpack:"v,omitempty"`
}

func (c Command) String() string {
	switch c.Type {
	case CmdApply:
		return fmt.Sprintf("Apply(pass %d)", c.Pass)
	case CmdDraw:
		return fmt.Sprintf("Draw(%v, %d vertices)", c.Topology, len(c.Vertices))
	default:
		return c.Type.String()
	}
}
