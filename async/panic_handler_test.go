package async

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	values []any
}

func (h *recordingHandler) HandlePanic(r any) {
	h.values = append(h.values, r)
}

func TestRecover(t *testing.T) {
	handler := &recordingHandler{}

	err := func() (err error) {
		defer Recover(handler, &err)
		panic("there")
	}()

	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	require.Equal(t, "there", panicErr.Value)
	require.NotEmpty(t, panicErr.Stack)
	require.Equal(t, "panic: there", err.Error())
	require.Equal(t, []any{"there"}, handler.values)
}

func TestRecoverWrapsErrors(t *testing.T) {
	boom := errors.New("boom")

	err := func() (err error) {
		defer Recover(NoopPanicHandler{}, &err)
		panic(boom)
	}()

	require.ErrorIs(t, err, boom)
}

func TestRecoverWithoutPanic(t *testing.T) {
	handler := &recordingHandler{}

	require.NotPanics(t, func() {
		err := func() (err error) {
			defer Recover(handler, &err)
			return nil
		}()

		require.NoError(t, err)
	})

	require.Empty(t, handler.values)
}

func TestRecoverNilHandler(t *testing.T) {
	require.NotPanics(t, func() {
		defer Recover(nil, nil)
		panic("everywhere")
	})
}
