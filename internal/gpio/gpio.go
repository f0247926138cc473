// Package gpio provides GPIO input reading with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Reader reads the raw electrical level of the button pin.
type Reader interface {
	// Read returns the raw pin level (true = high). No debouncing or
	// polarity translation happens here; that is the caller's job.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Chip is the GPIO character device the button pin lives on.
const Chip = "gpiochip0"

// DefaultPin is the default button pin (BCM numbering). The wiring
// assumption is a button to ground with the internal pull-up keeping the
// line high while released, so a low read means pressed.
const DefaultPin = 26
