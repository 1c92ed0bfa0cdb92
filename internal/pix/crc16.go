package pix

// crc16 computes CRC16/CCITT-FALSE (poly 0x1021, init 0xFFFF, no reflection,
// no final XOR) over the payload bytes, as required by the BR Code manual.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
