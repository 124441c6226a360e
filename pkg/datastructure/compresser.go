package datastructure

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

func CompressData(inData []byte, bbufOut *bytes.Buffer) error {

	inputBuf := bytes.NewBuffer(inData)
	encoder, err := zstd.NewWriter(bbufOut, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	_, err = io.Copy(encoder, inputBuf)
	if err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}

func DecompressData(inData []byte, out io.Writer) error {
	in := bytes.NewBuffer(inData)
	d, err := zstd.NewReader(in)
	if err != nil {
		return err
	}
	defer d.Close()

	_, err = io.Copy(out, d)
	return err
}

// DecompressDataToBytes is DecompressData for callers that want the raw slice.
func DecompressDataToBytes(inData []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := DecompressData(inData, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
