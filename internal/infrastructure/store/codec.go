// Package store persists the GameState between process runs.
//
// The encoding is protobuf wire format written by hand with protowire:
//
//	GameState { 1: screen (varint)  2: wizzy (bytes, Tween) }
//	Tween     { 1: start (double)  2: target (double)  3: duration (sint64)
//	            4: elapsed (sint64)  5: curve (varint) }
//
// Every field is written, in field order, so equal states encode to equal
// bytes. Unknown fields are skipped on decode.
package store

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/younwookim/wizzy/internal/application/state"
	"github.com/younwookim/wizzy/internal/domain/easing"
	"github.com/younwookim/wizzy/internal/domain/tween"
)

// ErrInvalidState is returned for bytes that do not decode to a GameState
var ErrInvalidState = errors.New("invalid game state")

const (
	fieldScreen protowire.Number = 1
	fieldWizzy  protowire.Number = 2
)

const (
	fieldStart protowire.Number = iota + 1
	fieldTarget
	fieldDuration
	fieldElapsed
	fieldCurve
)

// Marshal encodes st.
func Marshal(st *state.GameState) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldScreen, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(st.Screen))
	b = protowire.AppendTag(b, fieldWizzy, protowire.BytesType)
	b = protowire.AppendBytes(b, marshalTween(st.Wizzy.State()))
	return b
}

func marshalTween(s tween.State) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldStart, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(s.Start))
	b = protowire.AppendTag(b, fieldTarget, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(s.Target))
	b = protowire.AppendTag(b, fieldDuration, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(s.Duration)))
	b = protowire.AppendTag(b, fieldElapsed, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(s.Elapsed)))
	b = protowire.AppendTag(b, fieldCurve, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.Curve))
	return b
}

// Unmarshal decodes a GameState. A missing wizzy field yields the default
// tween; a missing screen field means the title screen.
func Unmarshal(b []byte) (*state.GameState, error) {
	return UnmarshalWith(b, state.Default)
}

// UnmarshalWith decodes a GameState on top of fresh(), so a missing wizzy
// field keeps the tween fresh builds.
func UnmarshalWith(b []byte, fresh func() *state.GameState) (*state.GameState, error) {
	st := fresh()
	st.Screen = state.ScreenTitle

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, wireErr(n)
		}
		b = b[n:]

		switch {
		case num == fieldScreen && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, wireErr(n)
			}
			b = b[n:]
			screen := state.Screen(v)
			if v > math.MaxInt32 || !screen.Valid() {
				return nil, fmt.Errorf("%w: unknown screen tag %d", ErrInvalidState, v)
			}
			st.Screen = screen

		case num == fieldWizzy && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, wireErr(n)
			}
			b = b[n:]
			ts, err := unmarshalTween(v)
			if err != nil {
				return nil, err
			}
			st.Wizzy = tween.Restore(ts)

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, wireErr(n)
			}
			b = b[n:]
		}
	}

	return st, nil
}

func unmarshalTween(b []byte) (tween.State, error) {
	var s tween.State

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return s, wireErr(n)
		}
		b = b[n:]

		switch {
		case (num == fieldStart || num == fieldTarget) && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return s, wireErr(n)
			}
			b = b[n:]
			if num == fieldStart {
				s.Start = math.Float64frombits(v)
			} else {
				s.Target = math.Float64frombits(v)
			}

		case (num == fieldDuration || num == fieldElapsed || num == fieldCurve) && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return s, wireErr(n)
			}
			b = b[n:]
			switch num {
			case fieldDuration:
				s.Duration = int(protowire.DecodeZigZag(v))
			case fieldElapsed:
				s.Elapsed = int(protowire.DecodeZigZag(v))
			default:
				c := easing.Curve(v)
				if v > math.MaxInt32 || !c.Valid() {
					return s, fmt.Errorf("%w: unknown easing curve %d", ErrInvalidState, v)
				}
				s.Curve = c
			}

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return s, wireErr(n)
			}
			b = b[n:]
		}
	}

	return s, nil
}

func wireErr(n int) error {
	return fmt.Errorf("%w: %w", ErrInvalidState, protowire.ParseError(n))
}
