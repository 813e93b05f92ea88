package escrow

import "encoding/base32"

// Stellar strkey version byte for ed25519 public keys ('G' prefix).
const versionByteAccountID byte = 6 << 3

var strkeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsValidAddress reports whether addr is a well-formed Stellar account
// address: a 56-character strkey that decodes to a version byte, a 32-byte
// ed25519 public key and a matching CRC16-XModem checksum.
func IsValidAddress(addr string) bool {
	if len(addr) != 56 {
		return false
	}
	raw, err := strkeyEncoding.DecodeString(addr)
	if err != nil {
		return false
	}
	if len(raw) != 35 {
		return false
	}
	if raw[0] != versionByteAccountID {
		return false
	}
	payload := raw[:33]
	want := uint16(raw[33]) | uint16(raw[34])<<8 // checksum is little-endian
	return crc16(payload) == want
}

// crc16 computes the CRC16-XModem checksum (poly 0x1021, init 0x0000).
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
