package icons

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const icoHeaderSize = 6 + 16

// WrapICO stores a single PNG image in an ICO container.
func WrapICO(png []byte, size int) ([]byte, error) {
	if size <= 0 || size > 256 {
		return nil, fmt.Errorf("ico image size %d out of range", size)
	}
	// 0 encodes 256 in the directory entry.
	dim := byte(size % 256)

	var buf bytes.Buffer
	header := struct {
		Reserved uint16
		Type     uint16
		Count    uint16
	}{Type: 1, Count: 1}
	entry := struct {
		Width, Height byte
		Colors        byte
		Reserved      byte
		Planes        uint16
		BitCount      uint16
		Size          uint32
		Offset        uint32
	}{
		Width:    dim,
		Height:   dim,
		Planes:   1,
		BitCount: 32,
		Size:     uint32(len(png)),
		Offset:   icoHeaderSize,
	}

	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
		return nil, err
	}
	buf.Write(png)
	return buf.Bytes(), nil
}
