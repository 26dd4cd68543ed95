package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"solver/searcher"
)

const valueSchema = "board_value_v1"

// ValueRow is one exact value from a transposition cache.
//
// Signature is the concatenated boards, one rune per cell ('0' empty,
// 'x' cross, 'o' nought). Moves is the number of marks on the boards.
type ValueRow struct {
	Signature string  `parquet:"signature,dict"`
	Value     float32 `parquet:"value"`
	Moves     int32   `parquet:"moves"`
}

// ValueRows lists the cache in signature order.
func ValueRows(cache *searcher.ValueCache) []ValueRow {
	sigs := cache.Signatures()
	rows := make([]ValueRow, 0, len(sigs))
	for _, sig := range sigs {
		v, _ := cache.Get(sig)
		rows = append(rows, ValueRow{
			Signature: sig,
			Value:     float32(v),
			Moves:     int32(len(sig) - strings.Count(sig, "0")),
		})
	}
	return rows
}

func WriteValueCache(outPath string, cache *searcher.ValueCache) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, ValueRows(cache),
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", valueSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadValueCache restores a cache written by WriteValueCache. The result can
// warm a solver through searcher.WithCache.
func ReadValueCache(path string) (*searcher.ValueCache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}
	if schema, ok := pf.Lookup("schema"); ok && schema != valueSchema {
		return nil, fmt.Errorf("parquet %s has schema %q, want %q", path, schema, valueSchema)
	}

	reader := parquet.NewGenericReader[ValueRow](pf)
	defer reader.Close()

	cache := searcher.NewValueCache()
	rows := make([]ValueRow, 1024)
	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			cache.Store(row.Signature, float64(row.Value))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet %s: %w", path, err)
		}
	}
	return cache, nil
}
