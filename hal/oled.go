package hal

// OLEDConfig describes an SSD1306-class panel.
//
// On host builds the panel is reached through the kernel I2C bus named
// by Bus; the controller address there is the fixed SSD1306 default.
// On TinyGo builds the panel sits on the default machine I2C bus at
// Addr.
type OLEDConfig struct {
	Bus      string // i2creg bus name, "" for the first available
	Addr     uint16 // controller address, 0 means 0x3C
	Width    int
	Height   int
	Rotated  bool
	Contrast uint8
	Inverted bool
}

// DefaultOLEDAddr is the usual SSD1306 I2C address.
const DefaultOLEDAddr uint16 = 0x3C
