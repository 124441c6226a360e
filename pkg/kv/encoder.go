package kv

import (
	"github.com/kelindar/binary"
)

type elevationSample struct {
	Ele float64
}

func encodeSample(s elevationSample) ([]byte, error) {
	return binary.Marshal(s)
}

func decodeSample(bb []byte) (elevationSample, error) {
	var s elevationSample
	err := binary.Unmarshal(bb, &s)
	return s, err
}
