package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	utern "github.com/sanjeevaacham/Utern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCollaborator answers with queued errors first, then with response
type scriptedCollaborator struct {
	failures []error
	response Response
	calls    int
}

func (c *scriptedCollaborator) Do(ctx context.Context, req Request) (Response, error) {
	c.calls++
	if len(c.failures) > 0 {
		err := c.failures[0]
		c.failures = c.failures[1:]
		return Response{}, err
	}
	return c.response, nil
}

func TestNewRequest(t *testing.T) {
	cfg := utern.DefaultConfiguration()
	req, err := NewRequest(REQUEST_PROPOSAL, cfg)
	require.NoError(t, err)
	assert.Equal(t, REQUEST_PROPOSAL, req.Kind)
	assert.Equal(t, cfg, req.Config)
	assert.Contains(t, req.Prompt, "7m wide U-turn canal")
	assert.Contains(t, req.Prompt, "64m Major Axis and 28m Minor Axis")
	assert.Contains(t, req.Prompt, "IRC:SP:41")
	assert.Contains(t, req.Prompt, "60 km/h")

	video, err := NewRequest(REQUEST_VIDEO, cfg)
	require.NoError(t, err)
	assert.Contains(t, video.Prompt, "At-Grade Median Pocket")
	assert.NotEqual(t, req.ID, video.ID)
}

func TestNewRequestRejects(t *testing.T) {
	cfg := utern.DefaultConfiguration()
	_, err := NewRequest(REQUEST_UNDEFINED, cfg)
	assert.Error(t, err)

	cfg.TrafficSpeed = 0
	_, err = NewRequest(REQUEST_PROPOSAL, cfg)
	assert.True(t, utern.IsInvalidConfiguration(err))
}

func TestGenerateRetries(t *testing.T) {
	req, err := NewRequest(REQUEST_VIDEO, utern.DefaultConfiguration())
	require.NoError(t, err)
	collaborator := &scriptedCollaborator{
		failures: []error{
			errors.Wrap(ErrRetryable, "operation is not done"),
			errors.Wrap(ErrRetryable, "connection reset"),
		},
		response: Response{MediaURI: "blob:video"},
	}
	resp, err := Generate(context.Background(), collaborator, req, 3, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "blob:video", resp.MediaURI)
	assert.Equal(t, 3, collaborator.calls)
}

func TestGenerateGivesUp(t *testing.T) {
	req, err := NewRequest(REQUEST_VIDEO, utern.DefaultConfiguration())
	require.NoError(t, err)
	collaborator := &scriptedCollaborator{
		failures: []error{ErrRetryable, ErrRetryable, ErrRetryable},
	}
	_, err = Generate(context.Background(), collaborator, req, 2, time.Millisecond)
	assert.True(t, Retryable(err))
	assert.Equal(t, 2, collaborator.calls)
}

func TestGenerateStopsOnPermanentError(t *testing.T) {
	req, err := NewRequest(REQUEST_PROPOSAL, utern.DefaultConfiguration())
	require.NoError(t, err)
	collaborator := &scriptedCollaborator{
		failures: []error{errors.New("missing credentials")},
	}
	_, err = Generate(context.Background(), collaborator, req, 5, time.Millisecond)
	assert.Error(t, err)
	assert.False(t, Retryable(err))
	assert.Equal(t, 1, collaborator.calls)
}

func TestGenerateEmptyResponse(t *testing.T) {
	req, err := NewRequest(REQUEST_PROPOSAL, utern.DefaultConfiguration())
	require.NoError(t, err)
	_, err = Generate(context.Background(), &scriptedCollaborator{}, req, 1, 0)
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestGenerateCancelled(t *testing.T) {
	req, err := NewRequest(REQUEST_VIDEO, utern.DefaultConfiguration())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	collaborator := &scriptedCollaborator{
		failures: []error{ErrRetryable},
		response: Response{MediaURI: "blob:video"},
	}
	_, err = Generate(ctx, collaborator, req, 3, time.Hour)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, collaborator.calls)
}

func TestRetryable(t *testing.T) {
	assert.False(t, Retryable(nil))
	assert.True(t, Retryable(ErrRetryable))
	assert.True(t, Retryable(errors.Wrap(ErrRetryable, "timeout")))
	assert.False(t, Retryable(errors.New("bad request")))
}
