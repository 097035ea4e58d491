package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/kiku/internal/draft"
	"github.com/saulo-duarte/kiku/internal/form"
)

func localSubmitter() form.Submitter {
	return form.ServiceSubmitter(draft.NewService(draft.NewGenerator(true)))
}

func TestNewSession(t *testing.T) {
	s := form.NewSession()

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, form.LifecycleIdle, s.Lifecycle())
	assert.Empty(t, s.Selected())
	assert.Nil(t, s.Result())
	assert.False(t, s.CanSubmit())
}

func TestSessionToggle(t *testing.T) {
	s := form.NewSession()

	s.Toggle(draft.ContextNoContact)
	s.Toggle(draft.ContextBusy)
	s.Toggle(draft.UnheardContext("unknown"))
	assert.Equal(t, []draft.UnheardContext{draft.ContextBusy, draft.ContextNoContact}, s.Selected())

	s.Toggle(draft.ContextBusy)
	assert.Equal(t, []draft.UnheardContext{draft.ContextNoContact}, s.Selected())
}

func TestSessionSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Incomplete", func(t *testing.T) {
		s := form.NewSession()
		s.SetTheme("library usage")
		s.SetBackground("   ")

		_, err := s.Submit(ctx, localSubmitter())
		assert.ErrorIs(t, err, form.ErrIncomplete)
		assert.Equal(t, form.LifecycleIdle, s.Lifecycle())
	})

	t.Run("SendsTrimmedRequest", func(t *testing.T) {
		s := form.NewSession()
		s.SetTheme("  library usage ")
		s.SetBackground(" only some voices are heard\n")
		s.Toggle(draft.ContextUnfamiliar)
		require.True(t, s.CanSubmit())

		var got draft.GenerateRequest
		sub := form.SubmitterFunc(func(ctx context.Context, req draft.GenerateRequest) (*draft.GenerateResponse, error) {
			got = req
			return localSubmitter().Generate(ctx, req)
		})

		resp, err := s.Submit(ctx, sub)
		require.NoError(t, err)
		assert.Equal(t, "library usage", got.Theme)
		assert.Equal(t, "only some voices are heard", got.Background)
		assert.Equal(t, []draft.UnheardContext{draft.ContextUnfamiliar}, got.UnheardContexts)
		assert.Equal(t, draft.ModeLoweredEntry, resp.Mode)
		assert.Same(t, resp, s.Result())
		assert.Equal(t, form.LifecycleIdle, s.Lifecycle())
	})

	t.Run("FailureKeepsInput", func(t *testing.T) {
		s := form.NewSession()
		s.SetTheme("library usage")
		s.SetBackground("only some voices are heard")

		boom := errors.New("boom")
		_, err := s.Submit(ctx, form.SubmitterFunc(func(context.Context, draft.GenerateRequest) (*draft.GenerateResponse, error) {
			return nil, boom
		}))
		require.ErrorIs(t, err, boom)
		assert.Nil(t, s.Result())
		assert.True(t, s.CanSubmit())

		resp, err := s.Submit(ctx, localSubmitter())
		require.NoError(t, err)
		assert.Equal(t, draft.ModeDefault, resp.Mode)
	})

	t.Run("RejectsWhileInFlight", func(t *testing.T) {
		s := form.NewSession()
		s.SetTheme("library usage")
		s.SetBackground("only some voices are heard")

		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			_, err := s.Submit(ctx, form.SubmitterFunc(func(ctx context.Context, req draft.GenerateRequest) (*draft.GenerateResponse, error) {
				close(entered)
				<-release
				return localSubmitter().Generate(ctx, req)
			}))
			done <- err
		}()

		<-entered
		assert.Equal(t, form.LifecycleInFlight, s.Lifecycle())
		assert.False(t, s.CanSubmit())
		_, err := s.Submit(ctx, localSubmitter())
		assert.ErrorIs(t, err, form.ErrInFlight)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, form.LifecycleIdle, s.Lifecycle())
	})
}

func TestSessionReset(t *testing.T) {
	s := form.NewSession()
	s.SetTheme("library usage")
	s.SetBackground("only some voices are heard")
	s.Toggle(draft.ContextBusy)
	_, err := s.Submit(context.Background(), localSubmitter())
	require.NoError(t, err)

	s.Reset()

	assert.Nil(t, s.Result())
	assert.Empty(t, s.Selected())
	assert.False(t, s.CanSubmit())
}

func TestSessionResetDuringFlight(t *testing.T) {
	ctx := context.Background()
	s := form.NewSession()
	s.SetTheme("library usage")
	s.SetBackground("only some voices are heard")

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(ctx, form.SubmitterFunc(func(ctx context.Context, req draft.GenerateRequest) (*draft.GenerateResponse, error) {
			close(entered)
			<-release
			return localSubmitter().Generate(ctx, req)
		}))
		done <- err
	}()

	<-entered
	s.Reset()
	assert.Equal(t, form.LifecycleInFlight, s.Lifecycle())

	s.SetTheme("library usage")
	s.SetBackground("only some voices are heard")
	assert.False(t, s.CanSubmit())
	_, err := s.Submit(ctx, localSubmitter())
	assert.ErrorIs(t, err, form.ErrInFlight)

	close(release)
	require.ErrorIs(t, <-done, form.ErrReset)
	assert.Nil(t, s.Result())
	assert.Equal(t, form.LifecycleIdle, s.Lifecycle())
	assert.True(t, s.CanSubmit())
}

func TestSessionSubmitNilResponse(t *testing.T) {
	s := form.NewSession()
	s.SetTheme("library usage")
	s.SetBackground("only some voices are heard")

	var resp *draft.GenerateResponse
	var err error
	assert.NotPanics(t, func() {
		resp, err = s.Submit(context.Background(), form.SubmitterFunc(func(context.Context, draft.GenerateRequest) (*draft.GenerateResponse, error) {
			return nil, nil
		}))
	})
	assert.ErrorIs(t, err, form.ErrNoResponse)
	assert.Nil(t, resp)
	assert.Nil(t, s.Result())
	assert.True(t, s.CanSubmit())
}
