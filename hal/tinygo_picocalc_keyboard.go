//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyAlt  byte = 0xA1
	picoCalcKeyCtrl byte = 0xA5
)

// picoCalcKeys maps keyboard MCU codes to key codes. Other codes are
// reported as runes.
var picoCalcKeys = map[byte]KeyCode{
	0xB1: KeyEscape,
	0xB4: KeyLeft,
	0xB7: KeyRight,
	0xB5: KeyUp,
	0xB6: KeyDown,
	0x09: KeyTab,
	0xD1: KeyTab, // Ins
	'\r': KeyEnter,
	'\n': KeyEnter,
}

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (stock PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to answer after boot, so retry briefly.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	switch k.read[0] {
	case 0x01: // key down
		return translatePicoCalcKey(k.read[1], true)
	case 0x03: // key up
		return translatePicoCalcKey(k.read[1], false)
	default:
		// Held keys and idle reads.
		return KeyEvent{}, false
	}
}

func translatePicoCalcKey(code byte, press bool) (KeyEvent, bool) {
	if code == 0 || code == picoCalcKeyAlt || code == picoCalcKeyCtrl {
		return KeyEvent{}, false
	}
	if kc, ok := picoCalcKeys[code]; ok {
		return KeyEvent{Code: kc, Press: press}, true
	}
	if !press {
		return KeyEvent{}, false
	}
	return KeyEvent{Press: true, Rune: rune(code)}, true
}
