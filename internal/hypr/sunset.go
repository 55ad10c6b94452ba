/*
MIT License

Copyright (c) 2025 Yuval Adar <adary@adary.org>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package hypr

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/adaryorg/dispctl/internal/logging"
)

// Color temperature bounds accepted by hyprsunset.
const (
	MinTemp     = 2500
	MaxTemp     = 6500
	DefaultTemp = 4500
)

// fadeDuration is the hyprsunset -f argument in seconds.
const fadeDuration = "0.5"

// Sunset manages at most one persistent hyprsunset child process. All
// methods are safe for concurrent use, though the UI drives them from a
// single event loop.
type Sunset struct {
	starter    Starter
	hyprsunset string

	mu      sync.Mutex
	proc    Process
	current int
	gen     uint64
}

// NewSunset returns a night light controller that starts real hyprsunset
// processes.
func NewSunset() *Sunset {
	return NewSunsetWithStarter(ExecStarter{})
}

// NewSunsetWithStarter returns a controller using the given Starter.
func NewSunsetWithStarter(starter Starter) *Sunset {
	return &Sunset{
		starter:    starter,
		hyprsunset: "hyprsunset",
		current:    DefaultTemp,
	}
}

// SetTool overrides the hyprsunset binary name (from config).
func (s *Sunset) SetTool(hyprsunset string) {
	if hyprsunset != "" {
		s.hyprsunset = hyprsunset
	}
}

// ClampTemp keeps a color temperature within the range hyprsunset accepts.
func ClampTemp(temp int) int {
	if temp < MinTemp {
		return MinTemp
	}
	if temp > MaxTemp {
		return MaxTemp
	}
	return temp
}

// Enable stops any previous hyprsunset child and starts a persistent one at
// the given temperature.
func (s *Sunset) Enable(temp int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enableLocked(temp)
}

func (s *Sunset) enableLocked(temp int) error {
	temp = ClampTemp(temp)

	s.stopLocked()
	proc, err := s.starter.Start(s.hyprsunset, "-t", strconv.Itoa(temp))
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", s.hyprsunset, err)
	}

	s.proc = proc
	s.current = temp
	s.gen++
	logging.Info("Night light enabled at %dK", temp)
	return nil
}

// Disable kills the persistent hyprsunset child, if any, and invalidates
// any fade re-arm still in flight.
func (s *Sunset) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.gen++
}

// Fade transitions to the given temperature. Cooler targets get a smooth
// fade; warmer targets are applied instantly because hyprsunset flickers
// when fading toward lower Kelvin values.
func (s *Sunset) Fade(temp int) error {
	temp = ClampTemp(temp)

	s.mu.Lock()
	current := s.current
	gen := s.gen
	s.mu.Unlock()

	if temp < current {
		return s.Enable(temp)
	}

	fade, err := s.starter.Start(s.hyprsunset, "-f", fadeDuration, "-t", strconv.Itoa(temp))
	if err != nil {
		return fmt.Errorf("failed to start %s fade: %w", s.hyprsunset, err)
	}

	// Once the fade exits, re-arm the persistent child at the target so the
	// temperature survives the fade process going away. A Disable or Enable
	// issued in the meantime bumps the generation and the stale re-arm is
	// dropped.
	go func() {
		_ = fade.Wait()
		if err := s.rearm(gen, temp); err != nil {
			logging.Warn("Failed to restart night light after fade: %v", err)
		}
	}()

	return nil
}

// rearm restarts the persistent child at temp unless the controller state
// changed since the fade began.
func (s *Sunset) rearm(gen uint64, temp int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	return s.enableLocked(temp)
}

// Current returns the last temperature handed to Enable or Fade.
func (s *Sunset) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Active reports whether a persistent child is running.
func (s *Sunset) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proc != nil
}

func (s *Sunset) stopLocked() {
	if s.proc == nil {
		return
	}
	if err := s.proc.Kill(); err != nil {
		logging.Debug("Failed to kill hyprsunset: %v", err)
	}
	s.proc = nil
}
