package internal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
)

// TouchSource reads a Linux touchscreen through evdev and turns contacts into SDL finger
// events with normalized coordinates, for devices where SDL itself does not see the panel.
type TouchSource struct {
	device     eventReader
	translator *touchTranslator
	events     chan sdl.Event
	closeOnce  sync.Once
}

// eventReader is the part of *evdev.InputDevice the source reads from.
type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

func OpenTouchSource(path string) (*TouchSource, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open touch device %s: %w", path, err)
	}

	absInfos, err := device.AbsInfos()
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("failed to read axis ranges of %s: %w", path, err)
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Opened touch device", "path", path, "name", name)

	return newTouchSource(device, absInfos), nil
}

func newTouchSource(device eventReader, absInfos map[evdev.EvCode]evdev.AbsInfo) *TouchSource {
	return &TouchSource{
		device:     device,
		translator: newTouchTranslator(absInfos),
		events:     make(chan sdl.Event, 32),
	}
}

// Events delivers translated finger events. The channel is closed when Run returns.
func (ts *TouchSource) Events() <-chan sdl.Event {
	return ts.events
}

// Run reads the device until ctx is cancelled or the device fails. Either way the device
// is closed when Run returns.
func (ts *TouchSource) Run(ctx context.Context) error {
	defer close(ts.events)

	done := make(chan struct{})
	defer close(done)

	// ReadOne blocks, so cancellation has to close the device to wake it.
	go func() {
		select {
		case <-ctx.Done():
			ts.Close()
		case <-done:
		}
	}()

	for {
		ev, err := ts.device.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			ts.Close()
			return fmt.Errorf("failed to read touch device: %w", err)
		}

		out := ts.translator.Feed(*ev)
		if out == nil {
			continue
		}

		select {
		case ts.events <- out:
		case <-ctx.Done():
			ts.Close()
			return nil
		}
	}
}

func (ts *TouchSource) Close() error {
	var err error
	ts.closeOnce.Do(func() {
		err = ts.device.Close()
	})
	return err
}

type axisRange struct {
	min, max int32
}

func (a axisRange) normalize(v int32) float32 {
	if a.max <= a.min {
		return 0
	}
	n := float32(v-a.min) / float32(a.max-a.min)
	return min(max(n, 0), 1)
}

// touchTranslator folds an evdev event stream into single-contact down/up events,
// emitted when a SYN_REPORT closes a frame in which the contact state changed.
type touchTranslator struct {
	xRange, yRange axisRange
	x, y           int32
	touching       bool
	reported       bool
}

var errNoAxis = errors.New("axis not reported by device")

func newTouchTranslator(absInfos map[evdev.EvCode]evdev.AbsInfo) *touchTranslator {
	t := &touchTranslator{}
	if r, err := pickAxis(absInfos, evdev.ABS_MT_POSITION_X, evdev.ABS_X); err == nil {
		t.xRange = r
	}
	if r, err := pickAxis(absInfos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y); err == nil {
		t.yRange = r
	}
	return t
}

func pickAxis(absInfos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) (axisRange, error) {
	for _, code := range codes {
		if info, ok := absInfos[code]; ok {
			return axisRange{min: info.Minimum, max: info.Maximum}, nil
		}
	}
	return axisRange{}, errNoAxis
}

func (t *touchTranslator) Feed(ev evdev.InputEvent) sdl.Event {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			t.x = ev.Value
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			t.y = ev.Value
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			t.touching = ev.Value != 0
		}
	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT || t.touching == t.reported {
			return nil
		}
		t.reported = t.touching

		eventType := uint32(sdl.FINGERUP)
		pressure := float32(0)
		if t.touching {
			eventType = sdl.FINGERDOWN
			pressure = 1
		}
		return &sdl.TouchFingerEvent{
			Type:      eventType,
			Timestamp: uint32(int64(ev.Time.Sec)*1000 + int64(ev.Time.Usec)/1000),
			X:         t.xRange.normalize(t.x),
			Y:         t.yRange.normalize(t.y),
			Pressure:  pressure,
		}
	}
	return nil
}
