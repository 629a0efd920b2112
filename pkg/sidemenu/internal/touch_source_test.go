package internal

import (
	"context"
	"io"
	"syscall"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

func syn() evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}
}

func abs(code evdev.EvCode, value int32) evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_ABS, Code: code, Value: value}
}

func touch(down bool) evdev.InputEvent {
	value := int32(0)
	if down {
		value = 1
	}
	return evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_TOUCH, Value: value}
}

func newTestTranslator() *touchTranslator {
	return newTouchTranslator(map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_MT_POSITION_X: {Minimum: 0, Maximum: 1000},
		evdev.ABS_MT_POSITION_Y: {Minimum: 0, Maximum: 500},
	})
}

func TestTouchTranslatorDownUp(t *testing.T) {
	tr := newTestTranslator()

	assert.Nil(t, tr.Feed(abs(evdev.ABS_MT_POSITION_X, 250)))
	assert.Nil(t, tr.Feed(abs(evdev.ABS_MT_POSITION_Y, 100)))
	assert.Nil(t, tr.Feed(touch(true)))

	out := tr.Feed(syn())
	require.NotNil(t, out)
	down, ok := out.(*sdl.TouchFingerEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(sdl.FINGERDOWN), down.Type)
	assert.InDelta(t, 0.25, down.X, 1e-6)
	assert.InDelta(t, 0.2, down.Y, 1e-6)
	assert.Equal(t, float32(1), down.Pressure)

	// movement without a state change emits nothing
	tr.Feed(abs(evdev.ABS_MT_POSITION_X, 900))
	assert.Nil(t, tr.Feed(syn()))

	tr.Feed(touch(false))
	out = tr.Feed(syn())
	require.NotNil(t, out)
	up := out.(*sdl.TouchFingerEvent)
	assert.Equal(t, uint32(sdl.FINGERUP), up.Type)
	assert.InDelta(t, 0.9, up.X, 1e-6)
	assert.Equal(t, float32(0), up.Pressure)
}

func TestTouchTranslatorSingleTouchAxes(t *testing.T) {
	tr := newTouchTranslator(map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: {Minimum: 100, Maximum: 300},
		evdev.ABS_Y: {Minimum: 0, Maximum: 100},
	})

	tr.Feed(abs(evdev.ABS_X, 200))
	tr.Feed(abs(evdev.ABS_Y, 150))
	tr.Feed(touch(true))

	ev := evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Time: syscall.Timeval{Sec: 2, Usec: 500000}}
	out := tr.Feed(ev).(*sdl.TouchFingerEvent)

	assert.InDelta(t, 0.5, out.X, 1e-6)
	// values past the range are clamped
	assert.InDelta(t, 1.0, out.Y, 1e-6)
	assert.Equal(t, uint32(2500), out.Timestamp)
}

func TestTouchTranslatorIgnoresOtherSyn(t *testing.T) {
	tr := newTestTranslator()
	tr.Feed(touch(true))

	assert.Nil(t, tr.Feed(evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_DROPPED}))
	assert.NotNil(t, tr.Feed(syn()))
}

func TestAxisRangeNormalize(t *testing.T) {
	assert.Equal(t, float32(0), axisRange{}.normalize(10))
	assert.Equal(t, float32(0), axisRange{min: 0, max: 10}.normalize(-5))
	assert.Equal(t, float32(0.5), axisRange{min: 0, max: 10}.normalize(5))
}

func TestPickAxis(t *testing.T) {
	_, err := pickAxis(map[evdev.EvCode]evdev.AbsInfo{}, evdev.ABS_X)
	assert.ErrorIs(t, err, errNoAxis)

	r, err := pickAxis(map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_Y: {Minimum: 1, Maximum: 9},
	}, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	assert.NoError(t, err)
	assert.Equal(t, axisRange{min: 1, max: 9}, r)
}

// fakeReader replays events, then fails with err or, when err is nil, blocks until closed.
type fakeReader struct {
	events []evdev.InputEvent
	err    error
	closed chan struct{}
	closes atomic.Int32
}

func newFakeReader(err error, events ...evdev.InputEvent) *fakeReader {
	return &fakeReader{events: events, err: err, closed: make(chan struct{})}
}

func (r *fakeReader) ReadOne() (*evdev.InputEvent, error) {
	if len(r.events) > 0 {
		ev := r.events[0]
		r.events = r.events[1:]
		return &ev, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	<-r.closed
	return nil, io.EOF
}

func (r *fakeReader) Close() error {
	if r.closes.Inc() == 1 {
		close(r.closed)
	}
	return nil
}

func testAbsInfos() map[evdev.EvCode]evdev.AbsInfo {
	return map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: {Minimum: 0, Maximum: 100},
		evdev.ABS_Y: {Minimum: 0, Maximum: 100},
	}
}

func TestTouchSourceRunStopsOnCancel(t *testing.T) {
	reader := newFakeReader(nil, abs(evdev.ABS_X, 50), abs(evdev.ABS_Y, 25), touch(true), syn())
	ts := newTouchSource(reader, testAbsInfos())

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- ts.Run(ctx) }()

	select {
	case ev := <-ts.Events():
		finger := ev.(*sdl.TouchFingerEvent)
		assert.Equal(t, uint32(sdl.FINGERDOWN), finger.Type)
		assert.InDelta(t, 0.5, finger.X, 1e-6)
	case <-time.After(time.Second):
		t.Fatal("no touch event delivered")
	}

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, open := <-ts.Events()
	assert.False(t, open)
	assert.Equal(t, int32(1), reader.closes.Load())
}

func TestTouchSourceClosesDeviceOnReadError(t *testing.T) {
	reader := newFakeReader(io.ErrUnexpectedEOF)
	ts := newTouchSource(reader, testAbsInfos())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := ts.Run(ctx)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, int32(1), reader.closes.Load())

	_, open := <-ts.Events()
	assert.False(t, open)

	// a later cancel finds the device already closed
	cancel()
	assert.NoError(t, ts.Close())
	assert.Equal(t, int32(1), reader.closes.Load())
}
