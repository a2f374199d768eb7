package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed variants.yaml
var variantsYAML []byte

// DefaultVariant is the variant used when none is named.
const DefaultVariant = "classic"

// phaseTolerance bounds how far the satellite phase separation may drift from pi.
const phaseTolerance = 1e-3

// Window describes the native window.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Camera places the perspective camera. Fov is the vertical field of view in degrees.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// Orbit holds the shared orbit of the satellites. Speed is in radians per frame.
type Orbit struct {
	Radius float32 `yaml:"radius"`
	Speed  float32 `yaml:"speed"`
}

// Wave is a sinusoid amplitude·sin(t·frequency).
type Wave struct {
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
}

// Satellite is one orbiting text block.
type Satellite struct {
	Role  game_object.Role `yaml:"role"`
	Text  string           `yaml:"text"`
	YBase float32          `yaml:"ybase"`
	Phase float32          `yaml:"phase"`
	Bob   Wave             `yaml:"bob"`
}

// TextStyle sizes the extruded text geometry.
type TextStyle struct {
	Text  string  `yaml:"text,omitempty"`
	Size  float32 `yaml:"size"`
	Depth float32 `yaml:"depth"`
	Color uint32  `yaml:"color"`
}

// Text groups the text styles.
type Text struct {
	Satellite   TextStyle `yaml:"satellite"`
	Centerpiece TextStyle `yaml:"centerpiece"`
}

// Centerpiece holds the centerpiece's idle motion.
type Centerpiece struct {
	Bob   Wave `yaml:"bob"`
	TiltX Wave `yaml:"tiltx"`
	TiltZ Wave `yaml:"tiltz"`
}

// Highlight holds the hover tuning.
type Highlight struct {
	DefaultSpeed          float32 `yaml:"defaultspeed"`
	BoostSpeed            float32 `yaml:"boostspeed"`
	Damping               float32 `yaml:"damping"`
	CenterpieceRest       float32 `yaml:"centerpiecerest"`
	CenterpieceBoost      float32 `yaml:"centerpieceboost"`
	SatelliteBoost        float32 `yaml:"satelliteboost"`
	CenterpieceHoverScale float32 `yaml:"centerpiecehoverscale"`
	SatelliteHoverScale   float32 `yaml:"satellitehoverscale"`
	AccentIntensity       float32 `yaml:"accentintensity"`
	AccentOffset          float32 `yaml:"accentoffset"`
	AccentRange           float32 `yaml:"accentrange"`
	AccentColor           uint32  `yaml:"accentcolor"`
}

// Spinner is a decorative polyhedron rotating at RateX and RateY radians per second.
type Spinner struct {
	Radius float32 `yaml:"radius"`
	Color  uint32  `yaml:"color"`
	RateX  float32 `yaml:"ratex"`
	RateY  float32 `yaml:"ratey"`
}

// Starfield is the background point cloud.
type Starfield struct {
	Count  int     `yaml:"count"`
	Spread float32 `yaml:"spread"`
	Follow float32 `yaml:"follow"`
	Spin   float32 `yaml:"spin"`
	Seed   int64   `yaml:"seed"`
}

// Decor groups the decorative objects.
type Decor struct {
	Wireframe Spinner   `yaml:"wireframe"`
	Crystal   Spinner   `yaml:"crystal"`
	Starfield Starfield `yaml:"starfield"`
}

// Entrance configures the staggered text entrance.
type Entrance struct {
	Enabled  bool          `yaml:"enabled"`
	Delay    time.Duration `yaml:"delay"`
	Stagger  time.Duration `yaml:"stagger"`
	Duration time.Duration `yaml:"duration"`
}

// Burst is a decorative hook fired once at a fixed clock offset.
type Burst struct {
	Name string        `yaml:"name"`
	At   time.Duration `yaml:"at"`
}

// AmbientLight is the flat fill light.
type AmbientLight struct {
	Color     uint32  `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Color     uint32     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position"`
}

// Lights groups the static scene lights.
type Lights struct {
	Ambient     AmbientLight       `yaml:"ambient"`
	Directional []DirectionalLight `yaml:"directional"`
}

// Layout holds the strict aspect thresholds of the layout flags.
type Layout struct {
	UltraWideAbove float64 `yaml:"ultrawideabove"`
	PortraitBelow  float64 `yaml:"portraitbelow"`
}

// Assets locates the typeface. FontFile, when set, replaces both URLs.
type Assets struct {
	FontPrimary  string `yaml:"fontprimary"`
	FontFallback string `yaml:"fontfallback"`
	FontFile     string `yaml:"fontfile,omitempty"`
}

// Variant is every tunable constant of one scene variant.
type Variant struct {
	Name        string      `yaml:"-"`
	Window      Window      `yaml:"window"`
	Background  [4]float64  `yaml:"background"`
	Camera      Camera      `yaml:"camera"`
	Orbit       Orbit       `yaml:"orbit"`
	Satellites  []Satellite `yaml:"satellites"`
	Text        Text        `yaml:"text"`
	Centerpiece Centerpiece `yaml:"centerpiece"`
	Highlight   Highlight   `yaml:"highlight"`
	Decor       Decor       `yaml:"decor"`
	Entrance    Entrance    `yaml:"entrance"`
	Bursts      []Burst     `yaml:"bursts"`
	Lights      Lights      `yaml:"lights"`
	Layout      Layout      `yaml:"layout"`
	Assets      Assets      `yaml:"assets"`
}

var (
	defaultsOnce sync.Once
	defaults     map[string]Variant
	defaultsErr  error
)

func loadDefaults() (map[string]Variant, error) {
	defaultsOnce.Do(func() {
		defaults = make(map[string]Variant)
		if err := yaml.Unmarshal(variantsYAML, &defaults); err != nil {
			defaultsErr = fmt.Errorf("failed to decode embedded variants: %w", err)
		}
	})
	return defaults, defaultsErr
}

// Names lists the embedded variant names in sorted order.
//
// Returns:
//   - []string: the variant names
func Names() []string {
	vs, err := loadDefaults()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(vs))
	for name := range vs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load resolves a named variant and applies an optional YAML override file on top.
// Keys missing from the override keep the variant's values. The satellites list
// is merged by index: each override entry updates the satellite at the same
// position, entries past the end are appended, and satellites the override does
// not reach are kept.
//
// Parameters:
//   - name: the variant name, DefaultVariant when empty
//   - overridePath: path to a YAML override file, ignored when empty
//
// Returns:
//   - Variant: the resolved and validated variant
//   - error: error if the variant is unknown, the override is unreadable, or validation fails
func Load(name, overridePath string) (Variant, error) {
	if name == "" {
		name = DefaultVariant
	}

	vs, err := loadDefaults()
	if err != nil {
		return Variant{}, err
	}
	base, ok := vs[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q, available: %v", name, Names())
	}

	var v Variant
	if err := copier.CopyWithOption(&v, &base, copier.Option{DeepCopy: true}); err != nil {
		return Variant{}, fmt.Errorf("failed to copy variant %q: %w", name, err)
	}
	v.Name = name

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return Variant{}, fmt.Errorf("failed to read override %s: %w", overridePath, err)
		}
		if err := applyOverride(data, &v); err != nil {
			return Variant{}, fmt.Errorf("failed to decode override %s: %w", overridePath, err)
		}
	}

	if err := v.Validate(); err != nil {
		return Variant{}, fmt.Errorf("variant %q: %w", name, err)
	}
	return v, nil
}

// applyOverride decodes a YAML override onto v, merging satellites by index.
func applyOverride(data []byte, v *Variant) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value != "satellites" {
				continue
			}
			merged, err := mergeSatellites(v.Satellites, root.Content[i+1])
			if err != nil {
				return err
			}
			v.Satellites = merged
			root.Content = append(root.Content[:i:i], root.Content[i+2:]...)
			break
		}
	}
	return root.Decode(v)
}

func mergeSatellites(base []Satellite, seq *yaml.Node) ([]Satellite, error) {
	if seq.ShortTag() == "!!null" {
		return base, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("satellites must be a list, line %d", seq.Line)
	}
	out := append([]Satellite(nil), base...)
	for i, item := range seq.Content {
		var sat Satellite
		if i < len(out) {
			sat = out[i]
		}
		if err := item.Decode(&sat); err != nil {
			return nil, fmt.Errorf("satellite %d: %w", i, err)
		}
		if i < len(out) {
			out[i] = sat
		} else {
			out = append(out, sat)
		}
	}
	return out, nil
}

// Validate reports every constraint the variant violates.
//
// Returns:
//   - error: nil, or the joined violations
func (v Variant) Validate() error {
	var errs []error
	if v.Orbit.Radius <= 0 {
		errs = append(errs, fmt.Errorf("orbit radius must be positive, got %v", v.Orbit.Radius))
	}
	if v.Entrance.Enabled && v.Entrance.Duration <= 0 {
		errs = append(errs, fmt.Errorf("entrance duration must be positive, got %v", v.Entrance.Duration))
	}
	if v.Highlight.Damping <= 0 || v.Highlight.Damping > 1 {
		errs = append(errs, fmt.Errorf("highlight damping must be in (0,1], got %v", v.Highlight.Damping))
	}
	if v.Layout.PortraitBelow >= v.Layout.UltraWideAbove {
		errs = append(errs, fmt.Errorf("portrait threshold %v must be below ultra-wide threshold %v", v.Layout.PortraitBelow, v.Layout.UltraWideAbove))
	}
	if v.Camera.Near <= 0 || v.Camera.Far <= v.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range must satisfy 0 < near < far, got %v..%v", v.Camera.Near, v.Camera.Far))
	}
	if v.Decor.Starfield.Count < 0 {
		errs = append(errs, fmt.Errorf("starfield count must not be negative, got %d", v.Decor.Starfield.Count))
	}
	for i, s := range v.Satellites {
		if !s.Role.Satellite() {
			errs = append(errs, fmt.Errorf("satellite %d has non-orbit role %v", i, s.Role))
		}
	}
	if len(v.Satellites) != 2 {
		errs = append(errs, fmt.Errorf("exactly two satellites are required, got %d", len(v.Satellites)))
	} else {
		a, b := v.Satellites[0], v.Satellites[1]
		if a.Role == b.Role {
			errs = append(errs, fmt.Errorf("satellites must have distinct roles, both are %v", a.Role))
		}
		if sep := math32.Abs(math32.Remainder(b.Phase-a.Phase, 2*math32.Pi)); math32.Abs(sep-math32.Pi) > phaseTolerance {
			errs = append(errs, fmt.Errorf("satellite phases must differ by pi, got %v and %v", a.Phase, b.Phase))
		}
	}
	return errors.Join(errs...)
}
