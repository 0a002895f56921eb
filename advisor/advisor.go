// Package advisor describes the boundary to the generative service that writes design
// proposals and renders simulation videos for a U-turn canal configuration.
// It ships no network client: callers plug their own Collaborator in.
package advisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	utern "github.com/sanjeevaacham/Utern"
)

// RequestKind is a kind of artifact requested from collaborator
type RequestKind uint16

const (
	REQUEST_PROPOSAL = RequestKind(iota + 1)
	REQUEST_VIDEO

	REQUEST_UNDEFINED = RequestKind(0)
)

func (iotaIdx RequestKind) String() string {
	return [...]string{"undefined", "proposal", "video"}[iotaIdx]
}

var (
	// ErrRetryable marks transient collaborator failures, e.g. network errors while polling a video
	ErrRetryable = errors.New("retryable collaborator failure")
	// ErrEmptyResponse is returned when collaborator answers with nothing usable
	ErrEmptyResponse = errors.New("empty collaborator response")
)

// Request is a single call to collaborator
type Request struct {
	ID     uuid.UUID
	Kind   RequestKind
	Config utern.Configuration
	Prompt string
}

// Response holds text for proposals and a playable media handle for videos
type Response struct {
	Text     string
	MediaURI string
}

// Collaborator is an external generative service
type Collaborator interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// Retryable reports whether err is a transient collaborator failure
func Retryable(err error) bool {
	return errors.Is(err, ErrRetryable)
}

func meters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "m"
}

// NewRequest validates configuration and prepares prompt for given request kind
func NewRequest(kind RequestKind, cfg utern.Configuration) (Request, error) {
	if err := cfg.Validate(utern.DefaultEngineeringConstants()); err != nil {
		return Request{}, err
	}
	var prompt string
	switch kind {
	case REQUEST_PROPOSAL:
		prompt = proposalPrompt(cfg)
	case REQUEST_VIDEO:
		prompt = videoPrompt(cfg)
	default:
		return Request{}, errors.Errorf("unknown request kind %d", kind)
	}
	return Request{
		ID:     uuid.New(),
		Kind:   kind,
		Config: cfg,
		Prompt: prompt,
	}, nil
}

func proposalPrompt(cfg utern.Configuration) string {
	consts := utern.DefaultEngineeringConstants()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze a 6-lane urban arterial (3+3) focused on ZERO OBSTRUCTION to through-traffic (%s):\n", cfg.TurnType)
	sb.WriteString("- Problem Statement: U-turning vehicles often encroach into outer lanes (L2, L3), causing traffic bottlenecks.\n")
	fmt.Fprintf(&sb, "- Solution: A dedicated %s wide U-turn canal in Lane 1 with a solid high-visibility divider separating it from Lane 2.\n", meters(cfg.L1Width))
	fmt.Fprintf(&sb, "- Lane 2 (%s) and Lane 3 (%s) are designated as \"EXPRESS THROUGH LANES\" and are protected from turning encroachment.\n", meters(cfg.L2Width), meters(cfg.L3Width))
	fmt.Fprintf(&sb, "- Median: %s wide with a %s opening under the turn corridor.\n", meters(cfg.MedianWidth), meters(consts.MedianOpening))
	fmt.Fprintf(&sb, "- Ellipse Dimensions: %s Major Axis and %s Minor Axis transition strictly contained in the %s canal.\n", meters(consts.MajorAxis), meters(consts.MinorAxis), meters(cfg.L1Width))
	fmt.Fprintf(&sb, "- Traffic Dynamics: Through traffic in L2 and L3 maintains %g km/h while L1 turns occur independently.\n\n", cfg.TrafficSpeed)
	sb.WriteString("The proposal MUST address:\n")
	sb.WriteString("1. Through-Lane Protection: the engineering design that ensures L2 and L3 traffic is never forced to brake or swerve for U-turners.\n")
	fmt.Fprintf(&sb, "2. Segregation Mechanism: how the %s wide L1 zone and solid dividers eliminate lane overlap during the %s minor axis sweep.\n", meters(cfg.L1Width), meters(consts.MinorAxis))
	fmt.Fprintf(&sb, "3. Bus Turn Radius: verification that a heavy bus can complete the turn within the %s width without entering L2.\n", meters(cfg.L1Width))
	sb.WriteString("4. IRC Protocol: compliance with IRC:SP:41 guidelines for segregated median turn-arounds.\n")
	return sb.String()
}

func videoPrompt(cfg utern.Configuration) string {
	return fmt.Sprintf("A 4K professional traffic simulation of a %s. A highway with 3 lanes per side. "+
		"Lane 1 is a dedicated %s wide U-turn canal with a bold yellow barrier separating it from Lane 2. "+
		"Large light blue buses are making U-turns within Lane 1. "+
		"Fast cars are moving uninterrupted at %g km/h through Lanes 2 and 3 (Express Through Lanes). "+
		"There is zero braking in the outer lanes. High-contrast road markings and flyover-style lighting.",
		cfg.TurnType, meters(cfg.L1Width), cfg.TrafficSpeed,
	)
}

// Generate calls collaborator and retries transient failures up to given number of attempts,
// waiting backoff between them. Context cancellation stops retries
func Generate(ctx context.Context, collaborator Collaborator, req Request, attempts int, backoff time.Duration) (Response, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := collaborator.Do(ctx, req)
		if err == nil {
			if req.Kind == REQUEST_VIDEO && resp.MediaURI == "" {
				return Response{}, errors.Wrapf(ErrEmptyResponse, "request %s", req.ID)
			}
			if req.Kind == REQUEST_PROPOSAL && resp.Text == "" {
				return Response{}, errors.Wrapf(ErrEmptyResponse, "request %s", req.ID)
			}
			return resp, nil
		}
		if !Retryable(err) {
			return Response{}, errors.Wrapf(err, "Can't generate %s", req.Kind)
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Response{}, errors.Wrapf(ctx.Err(), "Can't generate %s", req.Kind)
		case <-timer.C:
		}
	}
	return Response{}, errors.Wrapf(lastErr, "Can't generate %s after %d attempts", req.Kind, attempts)
}
