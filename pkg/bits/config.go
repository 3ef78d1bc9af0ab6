package bits

// Config packs a small settings record into one 32-bit word:
//
//	bit  0      enabled
//	bits 1-3    mode
//	bits 4-7    priority
//	bits 8-31   reserved
type Config uint32

const (
	enabledWidth  = 1
	modeWidth     = 3
	priorityWidth = 4
	reservedWidth = 24

	modeShift     = enabledWidth
	priorityShift = modeShift + modeWidth
	reservedShift = priorityShift + priorityWidth
)

// NewConfig builds a Config, truncating each field to its width.
func NewConfig(enabled bool, mode, priority uint32) Config {
	var c Config
	if enabled {
		c = 1
	}
	c |= Config(mode&mask(modeWidth)) << modeShift
	c |= Config(priority&mask(priorityWidth)) << priorityShift
	return c
}

func (c Config) Enabled() bool    { return c&1 != 0 }
func (c Config) Mode() uint32     { return field(c, modeShift, modeWidth) }
func (c Config) Priority() uint32 { return field(c, priorityShift, priorityWidth) }
func (c Config) Reserved() uint32 { return field(c, reservedShift, reservedWidth) }

func field(c Config, shift, width uint) uint32 {
	return uint32(c) >> shift & mask(width)
}

func mask(width uint) uint32 {
	return 1<<width - 1
}
