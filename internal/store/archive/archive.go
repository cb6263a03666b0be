// Package archive publishes datasets as a directory of zstd-compressed
// JSONL files, one per table, described by a checksummed manifest. Output
// is written to a staging directory and renamed into place, so readers
// never observe a half-written dataset.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/minio/crc64nvme"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/store"
	"github.com/wolfeidau/taskseed/internal/telemetry"
)

const (
	manifestName  = "manifest.yaml"
	formatVersion = 1
)

// manifest describes one published dataset. Checksums are CRC64-NVME over
// the compressed table files.
type manifest struct {
	FormatVersion int          `yaml:"format_version"`
	Generator     string       `yaml:"generator"`
	Seed          uint64       `yaml:"seed"`
	WindowStart   time.Time    `yaml:"window_start"`
	WindowEnd     time.Time    `yaml:"window_end"`
	GeneratedAt   time.Time    `yaml:"generated_at"`
	Tables        []tableEntry `yaml:"tables"`
}

type tableEntry struct {
	Name     string `yaml:"name"`
	Rows     int    `yaml:"rows"`
	Bytes    int64  `yaml:"bytes"`
	Checksum string `yaml:"checksum"`
}

// Store publishes datasets to a directory and loads them back.
type Store struct {
	dir     string
	metrics *telemetry.Metrics
}

// New returns an archive store rooted at dir. The directory is created on
// publish.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("archive directory is required")
	}
	return &Store{dir: dir, metrics: telemetry.GetMetrics()}, nil
}

// Publish writes the dataset to a staging directory next to the target,
// then swaps it into place. A failed publish leaves the previous dataset
// untouched.
func (s *Store) Publish(ctx context.Context, ds *models.Dataset) error {
	started := time.Now()
	staging := s.dir + ".staging"

	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	if err := s.writeAll(ctx, staging, ds); err != nil {
		os.RemoveAll(staging) //nolint:errcheck // best effort cleanup of partial output
		return err
	}

	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to remove previous archive: %w", err)
	}
	if err := os.Rename(staging, s.dir); err != nil {
		return fmt.Errorf("failed to move archive into place: %w", err)
	}

	s.metrics.RecordPublishDuration(ctx, "archive", time.Since(started))

	log.Info().
		Str("dir", s.dir).
		Int("total_rows", ds.TotalRows()).
		Dur("took", time.Since(started)).
		Msg("Dataset archived")

	return nil
}

func (s *Store) writeAll(ctx context.Context, staging string, ds *models.Dataset) error {
	m := manifest{
		FormatVersion: formatVersion,
		Generator:     "taskseed",
		Seed:          ds.Seed,
		WindowStart:   ds.WindowStart,
		WindowEnd:     ds.WindowEnd,
		GeneratedAt:   ds.GeneratedAt,
	}

	for _, table := range models.TableOrder {
		entry, err := writeTable(staging, table, ds)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", table, err)
		}

		m.Tables = append(m.Tables, entry)
		s.metrics.RecordPublish(ctx, "archive", table, entry.Rows)
		log.Debug().Str("table", table).Int("rows", entry.Rows).Int64("bytes", entry.Bytes).Msg("Table archived")
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := writeFileSync(filepath.Join(staging, manifestName), data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

func writeTable(dir, table string, ds *models.Dataset) (tableEntry, error) {
	switch table {
	case "organizations":
		return writeRows(dir, table, ds.Organizations)
	case "users":
		return writeRows(dir, table, ds.Users)
	case "teams":
		return writeRows(dir, table, ds.Teams)
	case "team_memberships":
		return writeRows(dir, table, ds.TeamMemberships)
	case "projects":
		return writeRows(dir, table, ds.Projects)
	case "sections":
		return writeRows(dir, table, ds.Sections)
	case "tasks":
		return writeRows(dir, table, ds.Tasks)
	case "subtasks":
		return writeRows(dir, table, ds.Subtasks)
	case "comments":
		return writeRows(dir, table, ds.Comments)
	case "custom_field_definitions":
		return writeRows(dir, table, ds.FieldDefinitions)
	case "custom_field_values":
		return writeRows(dir, table, ds.FieldValues)
	case "tags":
		return writeRows(dir, table, ds.Tags)
	case "task_tags":
		return writeRows(dir, table, ds.TaskTags)
	case "attachments":
		return writeRows(dir, table, ds.Attachments)
	default:
		return tableEntry{}, fmt.Errorf("unknown table %q", table)
	}
}

// countingWriter tracks bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeRows streams one table as zstd-compressed JSONL, one row per line.
// The checksum covers the compressed bytes, so loads verify files before
// decoding them. Encoder concurrency is pinned to one lane to keep the
// output bytes reproducible for a given dataset.
func writeRows[T any](dir, table string, rows []T) (tableEntry, error) {
	path := filepath.Join(dir, table+".jsonl.zst")

	f, err := os.Create(path)
	if err != nil {
		return tableEntry{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	crc := crc64nvme.New()
	counted := &countingWriter{w: io.MultiWriter(f, crc)}

	enc, err := zstd.NewWriter(counted,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return tableEntry{}, fmt.Errorf("failed to create encoder: %w", err)
	}

	jenc := json.NewEncoder(enc)
	for i := range rows {
		if err := jenc.Encode(rows[i]); err != nil {
			enc.Close()
			return tableEntry{}, fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}

	if err := enc.Close(); err != nil {
		return tableEntry{}, fmt.Errorf("failed to close encoder: %w", err)
	}
	if err := f.Sync(); err != nil {
		return tableEntry{}, fmt.Errorf("failed to sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		return tableEntry{}, fmt.Errorf("failed to close file: %w", err)
	}

	return tableEntry{
		Name:     table,
		Rows:     len(rows),
		Bytes:    counted.n,
		Checksum: fmt.Sprintf("%016x", crc.Sum64()),
	}, nil
}

func writeFileSync(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads the archived dataset back, verifying every table file against
// the manifest checksum before decoding it.
func (s *Store) Load(_ context.Context) (*models.Dataset, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotSeeded, s.dir)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, manifestName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", store.ErrManifestMissing, s.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.FormatVersion != formatVersion {
		return nil, fmt.Errorf("unsupported archive format version %d", m.FormatVersion)
	}

	ds := &models.Dataset{
		Seed:        m.Seed,
		WindowStart: m.WindowStart,
		WindowEnd:   m.WindowEnd,
		GeneratedAt: m.GeneratedAt,
	}

	for _, entry := range m.Tables {
		if err := readTable(s.dir, entry, ds); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", entry.Name, err)
		}
	}

	log.Debug().Str("dir", s.dir).Int("total_rows", ds.TotalRows()).Msg("Dataset loaded from archive")

	return ds, nil
}

func readTable(dir string, entry tableEntry, ds *models.Dataset) error {
	switch entry.Name {
	case "organizations":
		return readRows(dir, entry, &ds.Organizations)
	case "users":
		return readRows(dir, entry, &ds.Users)
	case "teams":
		return readRows(dir, entry, &ds.Teams)
	case "team_memberships":
		return readRows(dir, entry, &ds.TeamMemberships)
	case "projects":
		return readRows(dir, entry, &ds.Projects)
	case "sections":
		return readRows(dir, entry, &ds.Sections)
	case "tasks":
		return readRows(dir, entry, &ds.Tasks)
	case "subtasks":
		return readRows(dir, entry, &ds.Subtasks)
	case "comments":
		return readRows(dir, entry, &ds.Comments)
	case "custom_field_definitions":
		return readRows(dir, entry, &ds.FieldDefinitions)
	case "custom_field_values":
		return readRows(dir, entry, &ds.FieldValues)
	case "tags":
		return readRows(dir, entry, &ds.Tags)
	case "task_tags":
		return readRows(dir, entry, &ds.TaskTags)
	case "attachments":
		return readRows(dir, entry, &ds.Attachments)
	default:
		return fmt.Errorf("unknown table %q in manifest", entry.Name)
	}
}

func readRows[T any](dir string, entry tableEntry, out *[]T) error {
	data, err := os.ReadFile(filepath.Join(dir, entry.Name+".jsonl.zst"))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	crc := crc64nvme.New()
	crc.Write(data) //nolint:errcheck // hash writes never fail
	if sum := fmt.Sprintf("%016x", crc.Sum64()); sum != entry.Checksum {
		return fmt.Errorf("%w: stored=%s computed=%s", store.ErrChecksumMismatch, entry.Checksum, sum)
	}

	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	defer dec.Close()

	jdec := json.NewDecoder(dec)
	for {
		var row T
		if err := jdec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to decode row %d: %w", len(*out), err)
		}
		*out = append(*out, row)
	}

	if len(*out) != entry.Rows {
		return fmt.Errorf("manifest reports %d rows, file holds %d", entry.Rows, len(*out))
	}

	return nil
}
