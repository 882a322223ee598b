// Package archive implements the supplemental "archive" command: an
// export of a resolved commit's tracked files into a single
// zstd-compressed container, for handing a working-tree snapshot to
// someone without a gitlet repository. This is unrelated to the
// internal object-store format (which this module never compresses or
// packs, per this system's non-goals) — it operates purely on the
// tracked-path/blob-hash view of a single already-resolved commit.
package archive

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"gitlet/pkg/object"
)

// Export writes every file tracked by c to w, as a sequence of frames
// (path length, path bytes, content length, content bytes), the whole
// stream zstd-compressed. Paths are written in sorted order for
// reproducibility.
func Export(store *object.Store, c *object.Commit, w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("archive export: %w", err)
	}
	defer enc.Close()

	buf := bufio.NewWriter(enc)
	for _, path := range c.SortedPaths() {
		data, err := store.GetBlob(c.Tracked[path])
		if err != nil {
			return fmt.Errorf("archive export: %s: %w", path, err)
		}
		if err := writeFrame(buf, path, data); err != nil {
			return fmt.Errorf("archive export: %s: %w", path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("archive export: %w", err)
	}
	return nil
}

// ExportToFile is a convenience wrapper that creates outPath and calls
// Export.
func ExportToFile(store *object.Store, c *object.Commit, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("archive export: %w", err)
	}
	defer f.Close()
	return Export(store, c, f)
}

func writeFrame(w io.Writer, path string, data []byte) error {
	if err := writeLengthPrefixed(w, []byte(path)); err != nil {
		return err
	}
	return writeLengthPrefixed(w, data)
}

func writeLengthPrefixed(w io.Writer, data []byte) error {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// Entry is one decoded (path, contents) pair from an archive stream.
type Entry struct {
	Path string
	Data []byte
}

// Read decodes every frame from a zstd-compressed archive stream
// produced by Export.
func Read(r io.Reader) ([]Entry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("archive read: %w", err)
	}
	defer dec.Close()

	var entries []Entry
	for {
		path, err := readLengthPrefixed(dec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("archive read: %w", err)
		}
		data, err := readLengthPrefixed(dec)
		if err != nil {
			return nil, fmt.Errorf("archive read: %w", err)
		}
		entries = append(entries, Entry{Path: string(path), Data: data})
	}
	return entries, nil
}

func readLengthPrefixed(r io.Reader) ([]byte, error) {
	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint64(lenBuf[:])
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("truncated frame: %w", err)
	}
	return data, nil
}
