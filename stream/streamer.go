package stream

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Frames per second sent to the strip.
const frameRate = 30.0

// Streamer that streams RGB data frames to an ledrx device for a
// bounded duration.
type Streamer struct {
	client    mqtt.Client
	topic     string
	animation Animation
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client mqtt.Client, topic string, animation Animation) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.animation = animation

	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	return token.Error()
}

// Stream sends frames at the fixed rate until the duration elapses or
// the context is cancelled.
func (s *Streamer) Stream(ctx context.Context, d time.Duration) error {
	interval := float64(time.Second) / frameRate
	publishTimer := time.NewTicker(time.Duration(interval))
	defer publishTimer.Stop()

	deadline := time.NewTimer(d)
	defer deadline.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return nil
		case <-publishTimer.C:
			if err := s.SendFrame(time.Since(start).Milliseconds()); err != nil {
				return fmt.Errorf("stream: publish: %w", err)
			}
		}
	}
}
