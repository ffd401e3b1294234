// Package actions loads named input actions from a YAML asset and runs them
// as a phase machine over the input engine. An asset describes what the game
// code would otherwise declare by hand on a Builder: which keys, buttons and
// axes feed each action. Loading and compiling are build-phase work; the
// runtime's Tick does no string composition and no allocation.
package actions

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/flintlock-games/bindle/input"
)

// Kind is an action's result shape.
type Kind uint8

const (
	// Button actions are active while any bound source is down.
	Button Kind = iota
	// Axis actions carry a scalar in [-1, 1] from the first live source.
	Axis
	// Vector actions carry two components from the first live source.
	Vector
)

// Phase is the per-tick state of an action.
type Phase uint8

const (
	// Waiting: the action is inactive.
	Waiting Phase = iota
	// Started: the action became active this tick.
	Started
	// Performed: the action has been active for more than one tick.
	Performed
	// Canceled: the action became inactive this tick.
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Started:
		return "started"
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Set is a validated action asset, ready to compile against a device
// boundary.
type Set struct {
	// Deadzone is the asset's suggested stick deadzone, for the caller to
	// hand to the driver. Negative when the asset does not set one.
	Deadzone float64

	actions map[string]*definition
	log     *zap.Logger
}

type definition struct {
	kind Kind

	keys        []string // button: any-of key names
	padButtons  []string // button: any-of standard button names
	mouseButton string   // button: optional mouse button

	negativeKey string // axis: two-key pair
	positiveKey string

	mouseScalar   input.MouseScalar // axis
	hasMouseSc    bool
	gamepadScalar input.GamepadScalar // axis
	hasPadSc      bool

	mouseVector   input.MouseVector // vector
	hasMouseVec   bool
	gamepadVector input.GamepadVector // vector
	hasPadVec     bool

	pad int
}

// Option configures loading.
type Option func(*Set)

// WithLogger attaches a logger for load-time reporting. The runtime never
// logs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Set) { s.log = l }
}

type actionSpec struct {
	Kind           string   `yaml:"kind"`
	Keys           []string `yaml:"keys"`
	GamepadButtons []string `yaml:"gamepad_buttons"`
	MouseButton    string   `yaml:"mouse_button"`
	NegativeKey    string   `yaml:"negative_key"`
	PositiveKey    string   `yaml:"positive_key"`
	Mouse          string   `yaml:"mouse"`
	Gamepad        string   `yaml:"gamepad"`
	Pad            int      `yaml:"pad"`
}

type assetFile struct {
	Deadzone *float64              `yaml:"deadzone"`
	Actions  map[string]actionSpec `yaml:"actions"`
}

// Load parses and validates an action asset. Unknown kinds and property
// names fail here; key and button names fail later, when the set is
// compiled against a boundary that can resolve them.
func Load(r io.Reader, opts ...Option) (*Set, error) {
	s := &Set{
		Deadzone: -1,
		actions:  make(map[string]*definition),
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	var file assetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("actions: decode asset: %w", err)
	}
	if len(file.Actions) == 0 {
		return nil, fmt.Errorf("actions: asset declares no actions")
	}
	if file.Deadzone != nil {
		s.Deadzone = *file.Deadzone
	}

	for name, spec := range file.Actions {
		def, err := parseAction(name, spec)
		if err != nil {
			s.log.Error("invalid action", zap.String("action", name), zap.Error(err))
			return nil, err
		}
		s.actions[name] = def
	}

	s.log.Info("loaded action set",
		zap.Int("actions", len(s.actions)),
		zap.Float64("deadzone", s.Deadzone))
	return s, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string, opts ...Option) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("actions: open asset: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Len reports the number of actions in the set.
func (s *Set) Len() int { return len(s.actions) }

func parseAction(name string, spec actionSpec) (*definition, error) {
	def := &definition{pad: spec.Pad}

	switch spec.Kind {
	case "button":
		def.kind = Button
		def.keys = spec.Keys
		def.padButtons = spec.GamepadButtons
		def.mouseButton = spec.MouseButton
		if def.mouseButton != "" {
			if _, err := parseMouseButton(def.mouseButton); err != nil {
				return nil, fmt.Errorf("actions: %q: %w", name, err)
			}
		}
		if len(def.keys) == 0 && len(def.padButtons) == 0 && def.mouseButton == "" {
			return nil, fmt.Errorf("actions: %q: button action has no sources", name)
		}

	case "axis":
		def.kind = Axis
		if (spec.NegativeKey == "") != (spec.PositiveKey == "") {
			return nil, fmt.Errorf("actions: %q: axis needs both negative_key and positive_key", name)
		}
		def.negativeKey = spec.NegativeKey
		def.positiveKey = spec.PositiveKey
		if spec.Mouse != "" {
			p, err := parseMouseScalar(spec.Mouse)
			if err != nil {
				return nil, fmt.Errorf("actions: %q: %w", name, err)
			}
			def.mouseScalar, def.hasMouseSc = p, true
		}
		if spec.Gamepad != "" {
			p, err := parseGamepadScalar(spec.Gamepad)
			if err != nil {
				return nil, fmt.Errorf("actions: %q: %w", name, err)
			}
			def.gamepadScalar, def.hasPadSc = p, true
		}
		if def.negativeKey == "" && !def.hasMouseSc && !def.hasPadSc {
			return nil, fmt.Errorf("actions: %q: axis action has no sources", name)
		}

	case "vector":
		def.kind = Vector
		if spec.Mouse != "" {
			p, err := parseMouseVector(spec.Mouse)
			if err != nil {
				return nil, fmt.Errorf("actions: %q: %w", name, err)
			}
			def.mouseVector, def.hasMouseVec = p, true
		}
		if spec.Gamepad != "" {
			p, err := parseGamepadVector(spec.Gamepad)
			if err != nil {
				return nil, fmt.Errorf("actions: %q: %w", name, err)
			}
			def.gamepadVector, def.hasPadVec = p, true
		}
		if !def.hasMouseVec && !def.hasPadVec {
			return nil, fmt.Errorf("actions: %q: vector action has no sources", name)
		}

	default:
		return nil, fmt.Errorf("actions: %q: unknown kind %q", name, spec.Kind)
	}

	return def, nil
}
