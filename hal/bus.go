package hal

// I2C addresses outside [ControlBusFirstAddr, ControlBusLastAddr) are reserved.
const (
	ControlBusFirstAddr uint16 = 0x08
	ControlBusLastAddr  uint16 = 0x78
)

// ScanControlBus returns the addresses in [from, to) that acknowledge a
// one-byte read.
func ScanControlBus(bus ControlBus, from, to uint16) []uint16 {
	if bus == nil {
		return nil
	}
	var found []uint16
	var b [1]byte
	for addr := from; addr < to; addr++ {
		if err := bus.Tx(addr, nil, b[:]); err == nil {
			found = append(found, addr)
		}
	}
	return found
}
