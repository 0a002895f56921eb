// Package utern builds the 2-D schematic layout of a segregated U-turn canal: lane bands,
// an elliptical turning corridor with its island, median opening, buffer bands, dimension
// annotations and speed-derived animation timing.
//
// Every computation is pure. A Model is produced wholesale from a Configuration and is never
// updated in place.
package utern

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Engine computes layouts with a fixed set of constants
type Engine struct {
	constants   EngineeringConstants
	arcSegments int
	verbose     bool
	cache       *Cache
}

func (engine *Engine) String() string {
	return fmt.Sprintf(`
Layout engine parameters:
	major_axis: %g m
	entry_taper: %g m
	median_opening: %g m
	pixels_per_meter: %g
	reference_speed: %g km/h
	arc_segments: %d
	cache enabled?: %t
	`,
		engine.constants.MajorAxis,
		engine.constants.EntryTaper,
		engine.constants.MedianOpening,
		engine.constants.PixelsPerMeter,
		engine.constants.ReferenceSpeed,
		engine.arcSegments,
		engine.cache != nil,
	)
}

// NewEngine returns engine with default constants, modified by options
func NewEngine(options ...func(*Engine)) *Engine {
	engine := &Engine{
		constants:   DefaultEngineeringConstants(),
		arcSegments: defaultArcSegments,
		verbose:     false,
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

func WithConstants(constants EngineeringConstants) func(*Engine) {
	return func(engine *Engine) {
		engine.constants = constants
	}
}

func WithArcSegments(arcSegments int) func(*Engine) {
	return func(engine *Engine) {
		if arcSegments >= 4 {
			engine.arcSegments = arcSegments
		}
	}
}

func WithVerbose(verbose bool) func(*Engine) {
	return func(engine *Engine) {
		engine.verbose = verbose
	}
}

func WithCache(cache *Cache) func(*Engine) {
	return func(engine *Engine) {
		engine.cache = cache
	}
}

// Constants returns constants used by engine
func (engine *Engine) Constants() EngineeringConstants {
	return engine.constants
}

// Compute is a shorthand for NewEngine(options...).Compute(cfg)
func Compute(cfg Configuration, options ...func(*Engine)) (*Model, error) {
	return NewEngine(options...).Compute(cfg)
}

// Compute validates configuration and derives the full layout.
// Every call returns a model owned by the caller, cached or not.
func (engine *Engine) Compute(cfg Configuration) (*Model, error) {
	key := modelKey{Config: cfg, Constants: engine.constants, ArcSegments: engine.arcSegments}
	if engine.cache != nil {
		if model, ok := engine.cache.get(key); ok {
			if engine.verbose {
				fmt.Printf("Layout %s served from cache\n", model.ID)
			}
			return model, nil
		}
	}
	model, err := engine.compute(key)
	if err != nil {
		return nil, err
	}
	if engine.cache != nil {
		engine.cache.put(key, model)
	}
	return model, nil
}

func (engine *Engine) compute(key modelKey) (*Model, error) {
	cfg, consts := key.Config, key.Constants
	if engine.verbose {
		fmt.Print("Preparing layout...")
	}
	st := time.Now()

	if err := validateConstants(consts); err != nil {
		return nil, err
	}
	if err := cfg.Validate(consts); err != nil {
		return nil, err
	}
	id, err := key.uuid()
	if err != nil {
		return nil, err
	}

	scaled := Scaler{PixelsPerMeter: consts.PixelsPerMeter}.Scale(cfg, consts)
	lanes := computeLaneLayout(scaled)
	path, island, err := generateTurnPath(scaled, lanes, key.ArcSegments)
	if err != nil {
		return nil, errors.Wrap(err, "Can't generate turn path")
	}
	median, err := computeMedian(scaled, lanes, path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't compute median")
	}
	model := &Model{
		ID:          id,
		Config:      cfg,
		Constants:   consts,
		ArcSegments: key.ArcSegments,
		Lanes:       lanes,
		TurnPath:    path,
		Island:      island,
		Median:      median,
		Buffers:     computeBufferBands(scaled, lanes),
		Annotations: computeAnnotations(cfg, consts, lanes, path),
		Width:       scaled.RoadLength + scaled.AnnotationGutter,
		Height:      lanes.TotalHeight,
	}
	if engine.verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	return model, nil
}
