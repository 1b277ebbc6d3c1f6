package gameboy

import "github.com/thelolagemann/gbcore/pkg/log"

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables per-instruction tracing.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// WithLogger sets the logger shared by the CPU and the MMU.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM maps the boot ROM over the low addresses until it is
// disabled by the program.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}
